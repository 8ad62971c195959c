package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"courtdraft-backend/document"
	"courtdraft-backend/entities"
	"courtdraft-backend/intake"
	"courtdraft-backend/jurisdiction"
	"courtdraft-backend/models"
	"courtdraft-backend/repository"

	"github.com/google/generative-ai-go/genai"
	"github.com/google/uuid"
)

// DraftService handles draft generation: it resolves the forum, prompts the
// generation API, and runs the normalizer and guardrail validator over the
// result before storing it.
type DraftService struct {
	documentRepo  *repository.DocumentRepository
	jobRepo       *repository.GenerationJobRepository
	interviewRepo *repository.InterviewRepository
	geminiClient  *genai.Client
}

// DraftServiceOption is a functional option for DraftService
type DraftServiceOption func(*DraftService)

// DraftWithDocumentRepository sets the document repository
func DraftWithDocumentRepository(repo *repository.DocumentRepository) DraftServiceOption {
	return func(s *DraftService) {
		s.documentRepo = repo
	}
}

// DraftWithGenerationJobRepository sets the generation job repository
func DraftWithGenerationJobRepository(repo *repository.GenerationJobRepository) DraftServiceOption {
	return func(s *DraftService) {
		s.jobRepo = repo
	}
}

// DraftWithInterviewRepository sets the interview repository
func DraftWithInterviewRepository(repo *repository.InterviewRepository) DraftServiceOption {
	return func(s *DraftService) {
		s.interviewRepo = repo
	}
}

// DraftWithGeminiClient sets the Gemini client
func DraftWithGeminiClient(client *genai.Client) DraftServiceOption {
	return func(s *DraftService) {
		s.geminiClient = client
	}
}

// NewDraftService creates a new draft service
func NewDraftService(opts ...DraftServiceOption) *DraftService {
	s := &DraftService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GenerateDraftRequest represents a request to generate a draft
type GenerateDraftRequest struct {
	DocumentID uuid.UUID
}

// GenerateDraftResult represents the result of creating a generation job.
// Reused is true when an active job for the document already existed, in
// which case the caller must not start a second pipeline run.
type GenerateDraftResult struct {
	JobID  uuid.UUID
	Reused bool
}

// GetJobStatusRequest represents a request to get job status
type GetJobStatusRequest struct {
	JobID uuid.UUID
}

// GetJobStatusResult represents the result of getting job status
type GetJobStatusResult struct {
	Job *models.GenerationJob
}

var (
	ErrDocumentNotFound     = errors.New("document not found")
	ErrMissingRequiredData  = errors.New("document missing required data for generation")
	ErrInterviewNotComplete = errors.New("interview is not complete enough to generate a document")
	ErrJobCreationFailed    = errors.New("failed to create generation job")
	ErrGenerationFailed     = errors.New("failed to generate content")
	ErrJobNotFound          = errors.New("generation job not found")
)

const (
	generationAPI  = "https://generativelanguage.googleapis.com/v1beta/models/gemini-3-pro-preview:generateContent"
	maxRetries     = 3
	initialBackoff = time.Second
)

// Pipeline step names, in execution order.
const (
	stepResolveJurisdiction = "Resolving Jurisdiction"
	stepDraftDocument       = "Drafting Document"
	stepNormalizeDocument   = "Normalizing Document"
	stepValidateDocument    = "Validating Document"
)

// GenerateDraft creates a generation job and returns immediately
// This method must complete in <100ms to avoid HTTP timeouts
func (s *DraftService) GenerateDraft(
	ctx context.Context,
	req GenerateDraftRequest,
) (*GenerateDraftResult, error) {
	if s.documentRepo == nil {
		return nil, errors.New("document repository not set")
	}
	if s.jobRepo == nil {
		return nil, errors.New("generation job repository not set")
	}

	// 1. Validate document exists and has required data
	doc, err := s.documentRepo.GetByID(ctx, req.DocumentID)
	if err != nil {
		return nil, ErrDocumentNotFound
	}

	// 2. Validate required fields
	if doc.DocumentType == "" {
		return nil, ErrMissingRequiredData
	}
	if doc.State == "" && doc.CourtName == "" {
		return nil, ErrMissingRequiredData
	}

	// 3. The interview must have reached the can-generate gate
	if doc.InterviewSessionID != nil && s.interviewRepo != nil {
		session, err := s.interviewRepo.GetByID(ctx, *doc.InterviewSessionID)
		if err == nil && !session.State.CanGenerateDocument {
			return nil, ErrInterviewNotComplete
		}
	}

	// 4. Reuse an active job instead of stacking a second pipeline run
	if existing, err := s.jobRepo.GetByDocumentID(ctx, req.DocumentID); err == nil {
		if existing.Status == models.JobStatusPending || existing.Status == models.JobStatusInProgress {
			return &GenerateDraftResult{JobID: existing.ID, Reused: true}, nil
		}
	}

	// 5. Create generation job with initial steps
	job := &models.GenerationJob{
		DocumentID: req.DocumentID,
		Status:     models.JobStatusPending,
		Steps:      initializeSteps(),
	}

	err = s.jobRepo.Create(ctx, job)
	if err != nil {
		return nil, ErrJobCreationFailed
	}

	return &GenerateDraftResult{
		JobID: job.ID,
	}, nil
}

// GetJobStatus retrieves the status of a generation job
func (s *DraftService) GetJobStatus(
	ctx context.Context,
	req GetJobStatusRequest,
) (*GetJobStatusResult, error) {
	if s.jobRepo == nil {
		return nil, errors.New("generation job repository not set")
	}

	job, err := s.jobRepo.GetByID(ctx, req.JobID)
	if err != nil {
		return nil, ErrJobNotFound
	}

	return &GetJobStatusResult{
		Job: job,
	}, nil
}

// initializeSteps creates the pipeline steps for a new generation job
func initializeSteps() models.GenerationSteps {
	names := []string{
		stepResolveJurisdiction,
		stepDraftDocument,
		stepNormalizeDocument,
		stepValidateDocument,
	}

	steps := make(models.GenerationSteps, 0, len(names))
	for _, name := range names {
		steps = append(steps, models.GenerationStep{
			Name:   name,
			Status: "pending",
		})
	}
	return steps
}

// ProcessDraft performs the actual generation work in the background
// This method runs in a goroutine and can take 45-90 seconds
func (s *DraftService) ProcessDraft(
	ctx context.Context,
	jobID uuid.UUID,
) error {
	if s.jobRepo == nil {
		return errors.New("generation job repository not set")
	}
	if s.documentRepo == nil {
		return errors.New("document repository not set")
	}

	// 1. Load job and document
	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return fmt.Errorf("failed to load generation job: %w", err)
	}

	doc, err := s.documentRepo.GetByID(ctx, job.DocumentID)
	if err != nil {
		s.markJobFailed(ctx, jobID, "failed to load document: "+err.Error())
		return err
	}

	err = s.jobRepo.UpdateStatus(ctx, jobID, models.JobStatusInProgress)
	if err != nil {
		return fmt.Errorf("failed to update job status: %w", err)
	}

	// 2. Resolve the forum: court key, rule, captions, conflicts
	err = s.updateStepStatus(ctx, jobID, stepResolveJurisdiction, "in_progress")
	if err != nil {
		s.markJobFailed(ctx, jobID, "failed to update step: "+err.Error())
		return err
	}

	resolved := s.resolveForum(doc)

	err = s.updateStepStatus(ctx, jobID, stepResolveJurisdiction, "completed")
	if err != nil {
		s.markJobFailed(ctx, jobID, "failed to update step: "+err.Error())
		return err
	}

	// 3. Generate the raw draft
	err = s.updateStepStatus(ctx, jobID, stepDraftDocument, "in_progress")
	if err != nil {
		s.markJobFailed(ctx, jobID, "failed to update step: "+err.Error())
		return err
	}

	summary := s.interviewSummary(ctx, doc)
	draft, err := s.generateDraftText(ctx, doc, resolved, summary)
	if err != nil {
		s.markJobFailed(ctx, jobID, fmt.Sprintf("failed to generate draft: %v", err))
		return fmt.Errorf("failed to generate draft: %w", err)
	}

	err = s.updateStepStatus(ctx, jobID, stepDraftDocument, "completed")
	if err != nil {
		s.markJobFailed(ctx, jobID, "failed to update step: "+err.Error())
		return err
	}

	// 4. Normalize the draft into canonical structural form
	err = s.updateStepStatus(ctx, jobID, stepNormalizeDocument, "in_progress")
	if err != nil {
		s.markJobFailed(ctx, jobID, "failed to update step: "+err.Error())
		return err
	}

	normalized := document.Normalize(draft, doc.DocumentType)

	err = s.updateStepStatus(ctx, jobID, stepNormalizeDocument, "completed")
	if err != nil {
		s.markJobFailed(ctx, jobID, "failed to update step: "+err.Error())
		return err
	}

	// 5. Run the guardrail validator; issues are data, never aborts
	err = s.updateStepStatus(ctx, jobID, stepValidateDocument, "in_progress")
	if err != nil {
		s.markJobFailed(ctx, jobID, "failed to update step: "+err.Error())
		return err
	}

	issues := s.validateDraft(doc, normalized, resolved)

	err = s.updateStepStatus(ctx, jobID, stepValidateDocument, "completed")
	if err != nil {
		s.markJobFailed(ctx, jobID, "failed to update step: "+err.Error())
		return err
	}

	// 6. Store result
	err = s.documentRepo.UpdateGeneratedContent(ctx, job.DocumentID, draft, normalized, issues)
	if err != nil {
		s.markJobFailed(ctx, jobID, "failed to store generated content: "+err.Error())
		return err
	}

	// 7. Mark job as completed
	err = s.jobRepo.Complete(ctx, jobID)
	if err != nil {
		return fmt.Errorf("failed to complete job: %w", err)
	}

	return nil
}

// resolvedForum bundles everything jurisdiction resolution produced for one
// generation run.
type resolvedForum struct {
	Key            jurisdiction.CourtKey
	Rule           jurisdiction.CourtRule
	CourtCaption   string
	PartyCaption   string
	LegalStandard  string
	StandardRelief string
	Conflicts      []string
}

// resolveForum maps the document's jurisdiction fields onto a court key,
// rule, and caption text. Resolution is total; an unrecognized forum keeps
// the literal court name under the generic rule.
func (s *DraftService) resolveForum(doc *models.Document) resolvedForum {
	level := jurisdiction.LevelState
	if strings.EqualFold(doc.JurisdictionLevel, "federal") {
		level = jurisdiction.LevelFederal
	}

	state := entities.NormalizeState(doc.State)
	key := jurisdiction.ResolveCourtKey(level, doc.CourtName, state, doc.County)
	rule := jurisdiction.RuleFor(key)

	courtCtx := jurisdiction.CourtContext{
		State:            state,
		County:           doc.County,
		JudicialDistrict: doc.JudicialDistrict,
		CourtName:        doc.CourtName,
		CaseNumber:       doc.CaseNumber,
		Petitioner:       doc.Petitioner,
		Respondent:       doc.Respondent,
		Judge:            doc.Judge,
		Charges:          []string(doc.Charges),
		KeyDates:         []string(doc.KeyDates),
	}

	return resolvedForum{
		Key:            key,
		Rule:           rule,
		CourtCaption:   rule.Caption(courtCtx),
		PartyCaption:   jurisdiction.FormatPartyCaption(courtCtx),
		LegalStandard:  jurisdiction.StateLegalStandard(state, doc.DocumentType),
		StandardRelief: jurisdiction.StandardRelief(doc.DocumentType),
		Conflicts:      s.detectConflicts(doc),
	}
}

// detectConflicts gathers statute references and forum hints from the
// document's extracted data and checks for known jurisdictional conflicts.
func (s *DraftService) detectConflicts(doc *models.Document) []string {
	var statutes, hints []string

	if doc.NormalizedData != nil {
		bundle := entities.ExtractEntities(doc.NormalizedData.RawText)
		statutes = append(statutes, bundle.Statutes...)
		hints = append(hints, bundle.Courts...)
		if doc.NormalizedData.Court != "" {
			hints = append(hints, doc.NormalizedData.Court)
		}
	}
	if doc.CourtName != "" {
		hints = append(hints, doc.CourtName)
	}

	return jurisdiction.DetectJurisdictionConflict(statutes, hints)
}

// interviewSummary loads the linked interview session and renders its
// responses for the prompt. A missing or unreadable session degrades to an
// empty summary rather than failing the run.
func (s *DraftService) interviewSummary(ctx context.Context, doc *models.Document) string {
	if doc.InterviewSessionID == nil || s.interviewRepo == nil {
		return ""
	}

	session, err := s.interviewRepo.GetByID(ctx, *doc.InterviewSessionID)
	if err != nil {
		log.Printf("Warning: failed to load interview session %s: %v. Continuing without interview responses.", *doc.InterviewSessionID, err)
		return ""
	}

	machine := intake.RestoreMachine(intake.State(session.State))
	return machine.InterviewSummary()
}

// generateDraftText builds the prompt and calls the generation API with
// retry and exponential backoff.
func (s *DraftService) generateDraftText(
	ctx context.Context,
	doc *models.Document,
	resolved resolvedForum,
	interviewSummary string,
) (string, error) {
	if s.geminiClient == nil {
		return "", errors.New("gemini client not set")
	}

	prompt := buildDraftPrompt(doc, resolved, interviewSummary)

	systemInstruction := "You are an experienced litigation attorney drafting a court filing on behalf of a client. Use formal legal language. Always advocate for the client; never write as if ruling on the matter."
	fullPrompt := systemInstruction + "\n\n" + prompt

	var content string
	var err error
	backoff := initialBackoff
	for attempt := 0; attempt < maxRetries; attempt++ {
		if attempt > 0 {
			time.Sleep(backoff)
			backoff *= 2
		}

		// Truncate prompt if too long to avoid context limits
		truncatedPrompt := fullPrompt
		if len(fullPrompt) > 30000 {
			truncatedPrompt = fullPrompt[:30000] + "\n\n[Content truncated due to length...]"
			log.Printf("Warning: Prompt too long (%d chars), truncating to 30000 chars", len(fullPrompt))
		}
		content, err = s.callGenerationAPI(ctx, truncatedPrompt, 0.2)
		if err != nil {
			if attempt == maxRetries-1 {
				return "", fmt.Errorf("failed to generate content after %d attempts: %w", maxRetries, err)
			}
			continue
		}

		if content != "" {
			break
		}

		if attempt == maxRetries-1 {
			return "", ErrGenerationFailed
		}
	}

	if content == "" {
		return "", ErrGenerationFailed
	}

	return content, nil
}

// buildDraftPrompt assembles the generation request from the resolved forum
// rules, the document's extracted data, and the interview responses.
func buildDraftPrompt(doc *models.Document, resolved resolvedForum, interviewSummary string) string {
	var extracted strings.Builder
	if doc.NormalizedData != nil {
		n := doc.NormalizedData
		if n.CaseNumber != "" {
			fmt.Fprintf(&extracted, "Case number: %s\n", n.CaseNumber)
		}
		if n.Court != "" {
			fmt.Fprintf(&extracted, "Court of record: %s\n", n.Court)
		}
		if n.OpposingParty != "" {
			fmt.Fprintf(&extracted, "Opposing party: %s\n", n.OpposingParty)
		}
		if n.FilingDate != "" {
			fmt.Fprintf(&extracted, "Filing date: %s\n", n.FilingDate)
		}
		if n.Judge != "" {
			fmt.Fprintf(&extracted, "Judge: %s\n", n.Judge)
		}
		if n.NormalizedText != "" {
			fmt.Fprintf(&extracted, "\nExtracted document text:\n%s\n", n.NormalizedText)
		}
	}
	if extracted.Len() == 0 {
		extracted.WriteString("(no uploaded documents)\n")
	}

	if interviewSummary == "" {
		interviewSummary = "(no interview responses recorded)"
	}

	conflictNote := ""
	if len(resolved.Conflicts) > 0 {
		conflictNote = "\nJURISDICTION CAVEATS:\n" + strings.Join(resolved.Conflicts, "\n") + "\n"
	}

	verification := ""
	if resolved.Rule.IncludeVerification {
		verification = "\n- Include a verification page: a statement signed under penalty of perjury that the facts are true"
	}
	proofOfService := ""
	if resolved.Rule.IncludeProofOfService {
		proofOfService = "\n- Include a certificate of service identifying how and when the document was served"
	}

	return fmt.Sprintf(`Draft a %s for filing in the following court.

COURT CAPTION:
%s

PARTY CAPTION:
%s

CONTROLLING LEGAL STANDARD:
%s

REQUIRED SECTIONS (in this order):
%s

DRAFTING GUIDANCE FOR THIS COURT:
%s
%s
CLIENT FACTS FROM UPLOADED DOCUMENTS:
%s

CLIENT INTERVIEW RESPONSES:
%s

OUTPUT REQUIREMENTS:
- Plain text only, no markdown formatting
- Open with the document title on its own line
- Write every required section listed above with its heading in upper case
- The requested relief must read: %s
- Always advocate for the client; never write language granting or denying relief as if you were the court%s%s
- Use bracketed placeholders like [INSERT DATE] for any fact you do not have; never invent facts

Write the document now:`,
		doc.DocumentType,
		resolved.CourtCaption,
		resolved.PartyCaption,
		resolved.LegalStandard,
		strings.Join(resolved.Rule.RequiredSections, "\n"),
		resolved.Rule.Guidance,
		conflictNote,
		extracted.String(),
		interviewSummary,
		resolved.StandardRelief,
		verification,
		proofOfService,
	)
}

// validateDraft runs every guardrail over the normalized draft and collects
// the issues into one list for the document record.
func (s *DraftService) validateDraft(doc *models.Document, normalized string, resolved resolvedForum) models.StringList {
	issues := models.StringList{}

	quality := document.ValidateDocumentQuality(normalized, doc.DocumentType)
	issues = append(issues, quality.Issues...)

	if document.ViolatesStance(normalized, doc.Petitioner, resolved.StandardRelief) {
		issues = append(issues, "Stance violation: the draft contains adverse-ruling language or never requests relief for the client")
	}

	if !document.ValidateDocumentType(normalized, doc.DocumentType) {
		issues = append(issues, fmt.Sprintf("Document type mismatch: the draft is not consistent with the requested vehicle %q", doc.DocumentType))
	}

	issues = append(issues, resolved.Conflicts...)

	return issues
}

// updateStepStatus updates the status of a specific step in the generation job
func (s *DraftService) updateStepStatus(ctx context.Context, jobID uuid.UUID, stepName, status string) error {
	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return err
	}

	steps := job.Steps
	var currentStep string
	if job.CurrentStep != nil {
		currentStep = *job.CurrentStep
	}

	for i := range steps {
		if steps[i].Name == stepName {
			steps[i].Status = status
			if status == "in_progress" {
				currentStep = stepName
			}
			break
		}
	}

	return s.jobRepo.UpdateProgress(ctx, jobID, currentStep, steps)
}

// markJobFailed marks a job as failed with an error message
func (s *DraftService) markJobFailed(ctx context.Context, jobID uuid.UUID, errorMessage string) {
	err := s.jobRepo.Fail(ctx, jobID, errorMessage)
	if err != nil {
		log.Printf("Warning: failed to mark job %s as failed: %v", jobID, err)
	}
}

// callGenerationAPI calls the Gemini generation API directly via HTTP
func (s *DraftService) callGenerationAPI(ctx context.Context, prompt string, temperature float64) (string, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return "", fmt.Errorf("GEMINI_API_KEY not set")
	}

	reqBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"parts": []map[string]interface{}{
					{"text": prompt},
				},
			},
		},
		"generationConfig": map[string]interface{}{
			"temperature": temperature,
		},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", generationAPI, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", apiKey)

	client := &http.Client{Timeout: 120 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		log.Printf("Gemini API error: Status %d, Body: %s", resp.StatusCode, string(bodyBytes))
		return "", fmt.Errorf("API error: %d - %s", resp.StatusCode, string(bodyBytes))
	}

	var apiResp struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
			FinishReason string `json:"finishReason,omitempty"`
		} `json:"candidates"`
		PromptFeedback struct {
			BlockReason string `json:"blockReason,omitempty"`
		} `json:"promptFeedback,omitempty"`
		Error struct {
			Code    int    `json:"code,omitempty"`
			Message string `json:"message,omitempty"`
		} `json:"error,omitempty"`
	}

	bodyBytes, _ := io.ReadAll(resp.Body)
	if err := json.Unmarshal(bodyBytes, &apiResp); err != nil {
		log.Printf("Failed to decode response. Body: %s", string(bodyBytes))
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if apiResp.Error.Message != "" {
		return "", fmt.Errorf("API error: %s (code: %d)", apiResp.Error.Message, apiResp.Error.Code)
	}

	if apiResp.PromptFeedback.BlockReason != "" {
		return "", fmt.Errorf("API blocked prompt: %s", apiResp.PromptFeedback.BlockReason)
	}

	if len(apiResp.Candidates) == 0 {
		log.Printf("API returned no candidates. Full response: %s", string(bodyBytes))
		return "", fmt.Errorf("API returned no candidates")
	}

	var responseText strings.Builder
	for i, candidate := range apiResp.Candidates {
		if candidate.FinishReason != "" && candidate.FinishReason != "STOP" {
			log.Printf("Warning: Candidate %d finished with reason: %s", i, candidate.FinishReason)
		}

		if len(candidate.Content.Parts) == 0 {
			candidateJSON, _ := json.Marshal(candidate)
			log.Printf("Error: Candidate %d has no parts. Candidate structure: %s", i, string(candidateJSON))
			return "", fmt.Errorf("API candidate has no parts (finish reason: %s)", candidate.FinishReason)
		}

		for j, part := range candidate.Content.Parts {
			if part.Text == "" {
				log.Printf("Warning: Candidate %d, part %d has empty text", i, j)
				continue
			}
			responseText.WriteString(part.Text)
		}
	}

	result := responseText.String()
	if result == "" {
		return "", fmt.Errorf("API returned empty content")
	}

	return result, nil
}
