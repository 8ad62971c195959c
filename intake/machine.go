package intake

import (
	"fmt"
	"strings"
	"time"

	"courtdraft-backend/entities"
)

// ActionType enumerates the dispatchable interview actions.
type ActionType string

const (
	ActionStartInterview    ActionType = "start_interview"
	ActionAskQuestion       ActionType = "ask_question"
	ActionReceiveAnswer     ActionType = "receive_answer"
	ActionCompletePhase     ActionType = "complete_phase"
	ActionCompleteInterview ActionType = "complete_interview"
	ActionSkipToGeneration  ActionType = "skip_to_generation"
	ActionReset             ActionType = "reset"
)

// Action is one dispatchable interview event. Only the fields relevant to
// the action type are read; the rest are ignored.
type Action struct {
	Type            ActionType       `json:"type"`
	Question        string           `json:"question,omitempty"`
	Answer          string           `json:"answer,omitempty"`
	Phase           int              `json:"phase,omitempty"`
	DocumentContext *DocumentContext `json:"document_context,omitempty"`
}

// DocumentContext carries facts extracted from an uploaded artifact that
// seed the interview (so questions already answered by the document are not
// re-asked).
type DocumentContext struct {
	CaseNumber    string                `json:"case_number,omitempty"`
	Court         string                `json:"court,omitempty"`
	OpposingParty string                `json:"opposing_party,omitempty"`
	FilingDate    string                `json:"filing_date,omitempty"`
	Judge         string                `json:"judge,omitempty"`
	State         string                `json:"state,omitempty"`
	DocumentType  string                `json:"document_type,omitempty"`
	Entities      entities.EntityBundle `json:"entities"`
}

// Response records one answered question with its extracted entities.
type Response struct {
	Question  string                `json:"question"`
	Answer    string                `json:"answer"`
	Phase     int                   `json:"phase"`
	Timestamp time.Time             `json:"timestamp"`
	Entities  entities.EntityBundle `json:"entities"`
}

// PendingQuestion is the question awaiting an answer, if any.
type PendingQuestion struct {
	Question string `json:"question"`
	Phase    int    `json:"phase"`
}

// State is the full interview state. It is owned exclusively by one Machine
// and mutated only through action dispatch.
type State struct {
	CurrentPhase        int              `json:"current_phase"`
	PhaseProgress       map[int]bool     `json:"phase_progress"`
	QuestionsAsked      map[int]int      `json:"questions_asked"`
	Responses           []Response       `json:"responses"`
	CompletedQuestions  []string         `json:"completed_questions"`
	Pending             *PendingQuestion `json:"pending,omitempty"`
	IsComplete          bool             `json:"is_complete"`
	CanGenerateDocument bool             `json:"can_generate_document"`
	LastAnswer          string           `json:"last_answer,omitempty"`
	DocumentContext     *DocumentContext `json:"document_context,omitempty"`
}

// Machine drives one interview session. Invalid actions are no-ops that
// leave state unchanged; the machine is replay-tolerant by design.
type Machine struct {
	state State
	now   func() time.Time
}

// NewMachine returns a machine in the awaiting-start state.
func NewMachine() *Machine {
	return &Machine{state: freshState(), now: time.Now}
}

// RestoreMachine rebuilds a machine from persisted state, re-establishing
// map invariants that may have been lost in serialization.
func RestoreMachine(state State) *Machine {
	if state.PhaseProgress == nil {
		state.PhaseProgress = make(map[int]bool)
	}
	if state.QuestionsAsked == nil {
		state.QuestionsAsked = make(map[int]int)
	}
	if state.Responses == nil {
		state.Responses = []Response{}
	}
	if state.CompletedQuestions == nil {
		state.CompletedQuestions = []string{}
	}
	if state.CurrentPhase < 1 {
		state.CurrentPhase = 1
	}
	return &Machine{state: state, now: time.Now}
}

func freshState() State {
	return State{
		CurrentPhase:       1,
		PhaseProgress:      make(map[int]bool),
		QuestionsAsked:     make(map[int]int),
		Responses:          []Response{},
		CompletedQuestions: []string{},
	}
}

// State returns a copy of the current state. The internal maps and slices
// are cloned so callers cannot mutate machine-owned state.
func (m *Machine) State() State {
	s := m.state
	s.PhaseProgress = make(map[int]bool, len(m.state.PhaseProgress))
	for k, v := range m.state.PhaseProgress {
		s.PhaseProgress[k] = v
	}
	s.QuestionsAsked = make(map[int]int, len(m.state.QuestionsAsked))
	for k, v := range m.state.QuestionsAsked {
		s.QuestionsAsked[k] = v
	}
	s.Responses = append([]Response{}, m.state.Responses...)
	s.CompletedQuestions = append([]string{}, m.state.CompletedQuestions...)
	return s
}

// Dispatch applies one action and returns the resulting state. Unknown
// action types are no-ops.
func (m *Machine) Dispatch(action Action) State {
	switch action.Type {
	case ActionStartInterview:
		m.StartInterview(action.DocumentContext)
	case ActionAskQuestion:
		m.AskQuestion(action.Question, action.Phase)
	case ActionReceiveAnswer:
		m.ReceiveAnswer(action.Answer, action.Question)
	case ActionCompletePhase:
		m.CompletePhase(action.Phase)
	case ActionCompleteInterview:
		m.CompleteInterview()
	case ActionSkipToGeneration:
		m.SkipToGeneration()
	case ActionReset:
		m.Reset()
	}
	return m.State()
}

// StartInterview resets all counters, phases, and responses, seeding the
// document context if one was provided.
func (m *Machine) StartInterview(docCtx *DocumentContext) {
	m.state = freshState()
	m.state.DocumentContext = docCtx
}

// AskQuestion records the pending question and increments the target
// phase's asked-count. Out-of-range phases are no-ops.
func (m *Machine) AskQuestion(question string, phase int) {
	if _, ok := PhaseByOrdinal(phase); !ok {
		return
	}
	if strings.TrimSpace(question) == "" {
		return
	}
	m.state.Pending = &PendingQuestion{Question: question, Phase: phase}
	m.state.QuestionsAsked[phase]++
}

// ReceiveAnswer appends a response for the pending question, clears it, and
// re-evaluates phase completion. Answers with no pending question are no-ops
// so upstream UI races cannot corrupt the interview history.
func (m *Machine) ReceiveAnswer(answer, question string) {
	if m.state.Pending == nil {
		return
	}
	phase := m.state.Pending.Phase
	if question == "" {
		question = m.state.Pending.Question
	}

	m.state.Responses = append(m.state.Responses, Response{
		Question:  question,
		Answer:    answer,
		Phase:     phase,
		Timestamp: m.now(),
		Entities:  entities.ExtractEntities(answer),
	})
	m.state.CompletedQuestions = append(m.state.CompletedQuestions, question)
	m.state.LastAnswer = answer
	m.state.Pending = nil

	m.evaluatePhase(phase)
}

// evaluatePhase marks a phase complete once its asked-count reaches the
// required minimum and advances the cursor.
func (m *Machine) evaluatePhase(phase int) {
	p, ok := PhaseByOrdinal(phase)
	if !ok || m.state.PhaseProgress[phase] {
		return
	}
	if m.state.QuestionsAsked[phase] >= p.RequiredQuestions {
		m.CompletePhase(phase)
	}
}

// CompletePhase marks a phase complete. Completing a phase below 5 advances
// the current phase; completing phase 5 completes the interview. The phase
// cursor never moves backward.
func (m *Machine) CompletePhase(phase int) {
	if _, ok := PhaseByOrdinal(phase); !ok {
		return
	}
	m.state.PhaseProgress[phase] = true
	if phase < len(phases) {
		if next := phase + 1; next > m.state.CurrentPhase {
			m.state.CurrentPhase = next
		}
		return
	}
	m.CompleteInterview()
}

// CompleteInterview marks the interview done and enables generation.
func (m *Machine) CompleteInterview() {
	m.state.IsComplete = true
	m.state.CanGenerateDocument = true
}

// SkipToGeneration force-enables generation without completing every phase.
// Escape hatch for a client who wants to stop early.
func (m *Machine) SkipToGeneration() {
	m.state.CanGenerateDocument = true
}

// Reset returns the machine to the awaiting-start state from anywhere.
func (m *Machine) Reset() {
	docCtx := m.state.DocumentContext
	m.state = freshState()
	m.state.DocumentContext = docCtx
}

// CompletionPercentage is answered questions over the total required across
// all phases. It can exceed 100 when callers ask beyond the minimums; it is
// capped for display.
func (m *Machine) CompletionPercentage() int {
	pct := len(m.state.Responses) * 100 / TotalRequiredQuestions
	if pct > 100 {
		pct = 100
	}
	return pct
}

// InterviewSummary renders the recorded responses grouped by phase, for
// review with the client and for the generation prompt.
func (m *Machine) InterviewSummary() string {
	var b strings.Builder
	for _, p := range phases {
		var lines []string
		for _, r := range m.state.Responses {
			if r.Phase == p.Ordinal {
				lines = append(lines, fmt.Sprintf("Q: %s\nA: %s", r.Question, r.Answer))
			}
		}
		if len(lines) == 0 {
			continue
		}
		fmt.Fprintf(&b, "## Phase %d: %s\n%s\n\n", p.Ordinal, p.Name, strings.Join(lines, "\n"))
	}
	return strings.TrimSpace(b.String())
}
