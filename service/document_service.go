package service

import (
	"context"
	"errors"

	"courtdraft-backend/entities"
	"courtdraft-backend/models"
	"courtdraft-backend/repository"

	"github.com/google/uuid"
)

// DocumentService handles business logic for documents
type DocumentService struct {
	documentRepo *repository.DocumentRepository
}

// DocumentServiceOption is a functional option for DocumentService
type DocumentServiceOption func(*DocumentService)

// WithDocumentRepository sets the document repository
func WithDocumentRepository(repo *repository.DocumentRepository) DocumentServiceOption {
	return func(s *DocumentService) {
		s.documentRepo = repo
	}
}

// NewDocumentService creates a new document service
func NewDocumentService(opts ...DocumentServiceOption) *DocumentService {
	s := &DocumentService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateDocumentRequest represents a request to create a document
type CreateDocumentRequest struct {
	UserID        uuid.UUID
	DocumentType  string
	LegalCategory string
	State         string
	County        string
	CourtName     string
}

// CreateDocumentResult represents the result of creating a document
type CreateDocumentResult struct {
	Document *models.Document
}

// CreateDocument creates a new document, normalizing the caller-supplied
// state and category up front
func (s *DocumentService) CreateDocument(ctx context.Context, req CreateDocumentRequest) (*CreateDocumentResult, error) {
	if s.documentRepo == nil {
		return nil, errors.New("document repository not set")
	}

	doc := &models.Document{
		UserID:            req.UserID,
		Status:            models.DocumentStatusDraft,
		DocumentType:      entities.CleanString(req.DocumentType),
		LegalCategory:     entities.NormalizeCategory(req.LegalCategory),
		JurisdictionLevel: "state",
		State:             entities.NormalizeState(req.State),
		County:            entities.CleanString(req.County),
		CourtName:         entities.CleanString(req.CourtName),
		Charges:           models.StringList{},
		KeyDates:          models.StringList{},
		ValidationIssues:  models.StringList{},
	}

	err := s.documentRepo.Create(ctx, doc)
	if err != nil {
		return nil, err
	}

	return &CreateDocumentResult{Document: doc}, nil
}

// GetDocumentRequest represents a request to get a document
type GetDocumentRequest struct {
	ID uuid.UUID
}

// GetDocumentResult represents the result of getting a document
type GetDocumentResult struct {
	Document *models.Document
}

// GetDocument retrieves a document by ID
func (s *DocumentService) GetDocument(ctx context.Context, req GetDocumentRequest) (*GetDocumentResult, error) {
	if s.documentRepo == nil {
		return nil, errors.New("document repository not set")
	}

	doc, err := s.documentRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	return &GetDocumentResult{Document: doc}, nil
}

// UpdateDocumentRequest represents a request to update a document
type UpdateDocumentRequest struct {
	Document *models.Document
}

// UpdateDocumentResult represents the result of updating a document
type UpdateDocumentResult struct {
	Document *models.Document
}

// UpdateDocument updates a document
func (s *DocumentService) UpdateDocument(ctx context.Context, req UpdateDocumentRequest) (*UpdateDocumentResult, error) {
	if s.documentRepo == nil {
		return nil, errors.New("document repository not set")
	}

	err := s.documentRepo.Update(ctx, req.Document)
	if err != nil {
		return nil, err
	}

	return &UpdateDocumentResult{Document: req.Document}, nil
}

// MergeExtractedDataRequest carries freshly extracted artifact data to fold
// into a document's normalized data
type MergeExtractedDataRequest struct {
	DocumentID uuid.UUID
	Extracted  models.NormalizedDocumentData
}

// MergeExtractedDataResult represents the result of merging extracted data
type MergeExtractedDataResult struct {
	Document *models.Document
}

// MergeExtractedData merges newer extracted fields into the document's
// normalized data; newer non-empty fields win
func (s *DocumentService) MergeExtractedData(ctx context.Context, req MergeExtractedDataRequest) (*MergeExtractedDataResult, error) {
	if s.documentRepo == nil {
		return nil, errors.New("document repository not set")
	}

	doc, err := s.documentRepo.GetByID(ctx, req.DocumentID)
	if err != nil {
		return nil, err
	}

	merged := req.Extracted
	if doc.NormalizedData != nil {
		merged = doc.NormalizedData.Merge(req.Extracted)
	}
	doc.NormalizedData = &merged

	// Promote extracted fields onto the document where it has none yet.
	if doc.CaseNumber == "" {
		doc.CaseNumber = merged.CaseNumber
	}
	if doc.Judge == "" {
		doc.Judge = merged.Judge
	}
	if doc.Respondent == "" {
		doc.Respondent = merged.OpposingParty
	}
	if doc.State == "" && merged.State != "" {
		doc.State = entities.NormalizeState(merged.State)
	}
	if doc.CourtName == "" {
		doc.CourtName = merged.Court
	}

	err = s.documentRepo.Update(ctx, doc)
	if err != nil {
		return nil, err
	}

	return &MergeExtractedDataResult{Document: doc}, nil
}

// ListDocumentsRequest represents a request to list documents
type ListDocumentsRequest struct {
	UserID uuid.UUID
	Status *models.DocumentStatus
	Limit  int
	Offset int
}

// ListDocumentsResult represents the result of listing documents
type ListDocumentsResult struct {
	Documents []*models.Document
}

// ListDocuments lists documents for a user
func (s *DocumentService) ListDocuments(ctx context.Context, req ListDocumentsRequest) (*ListDocumentsResult, error) {
	if s.documentRepo == nil {
		return nil, errors.New("document repository not set")
	}

	docs, err := s.documentRepo.ListByUserID(ctx, req.UserID, req.Status, req.Limit, req.Offset)
	if err != nil {
		return nil, err
	}

	return &ListDocumentsResult{Documents: docs}, nil
}
