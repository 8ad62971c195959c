package service

import (
	"context"
	"errors"

	"courtdraft-backend/intake"
	"courtdraft-backend/models"
	"courtdraft-backend/repository"

	"github.com/google/uuid"
)

// InterviewService handles business logic for intake interviews. Each
// request loads the session, rebuilds its state machine, dispatches, and
// re-persists; the caller is responsible for not dispatching to the same
// session concurrently.
type InterviewService struct {
	interviewRepo *repository.InterviewRepository
}

// InterviewServiceOption is a functional option for InterviewService
type InterviewServiceOption func(*InterviewService)

// WithInterviewRepository sets the interview repository
func WithInterviewRepository(repo *repository.InterviewRepository) InterviewServiceOption {
	return func(s *InterviewService) {
		s.interviewRepo = repo
	}
}

// NewInterviewService creates a new interview service
func NewInterviewService(opts ...InterviewServiceOption) *InterviewService {
	s := &InterviewService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var (
	ErrSessionNotFound = errors.New("interview session not found")
)

// StartInterviewRequest represents a request to start an interview
type StartInterviewRequest struct {
	UserID          uuid.UUID
	DocumentContext *intake.DocumentContext
}

// StartInterviewResult represents the result of starting an interview
type StartInterviewResult struct {
	Session *models.InterviewSession
}

// StartInterview creates a session with a freshly started machine
func (s *InterviewService) StartInterview(ctx context.Context, req StartInterviewRequest) (*StartInterviewResult, error) {
	if s.interviewRepo == nil {
		return nil, errors.New("interview repository not set")
	}

	machine := intake.NewMachine()
	machine.StartInterview(req.DocumentContext)

	session := &models.InterviewSession{
		UserID: req.UserID,
		Status: models.InterviewStatusActive,
		State:  models.InterviewState(machine.State()),
	}

	err := s.interviewRepo.Create(ctx, session)
	if err != nil {
		return nil, err
	}

	return &StartInterviewResult{Session: session}, nil
}

// DispatchActionRequest represents a request to dispatch an interview action
type DispatchActionRequest struct {
	SessionID uuid.UUID
	Action    intake.Action
}

// DispatchActionResult represents the result of dispatching an action
type DispatchActionResult struct {
	State                intake.State
	CompletionPercentage int
}

// DispatchAction applies one action to a session's state machine
func (s *InterviewService) DispatchAction(ctx context.Context, req DispatchActionRequest) (*DispatchActionResult, error) {
	if s.interviewRepo == nil {
		return nil, errors.New("interview repository not set")
	}

	session, err := s.interviewRepo.GetByID(ctx, req.SessionID)
	if err != nil {
		return nil, ErrSessionNotFound
	}

	machine := intake.RestoreMachine(intake.State(session.State))
	state := machine.Dispatch(req.Action)

	status := models.InterviewStatusActive
	if state.IsComplete {
		status = models.InterviewStatusComplete
	}

	err = s.interviewRepo.UpdateState(ctx, req.SessionID, status, models.InterviewState(state))
	if err != nil {
		return nil, err
	}

	return &DispatchActionResult{
		State:                state,
		CompletionPercentage: machine.CompletionPercentage(),
	}, nil
}

// LinkDocumentRequest represents a request to bind a session to a document
type LinkDocumentRequest struct {
	SessionID  uuid.UUID
	DocumentID uuid.UUID
}

// LinkDocument binds an interview session to the document it feeds
func (s *InterviewService) LinkDocument(ctx context.Context, req LinkDocumentRequest) error {
	if s.interviewRepo == nil {
		return errors.New("interview repository not set")
	}

	_, err := s.interviewRepo.GetByID(ctx, req.SessionID)
	if err != nil {
		return ErrSessionNotFound
	}

	return s.interviewRepo.LinkDocument(ctx, req.SessionID, req.DocumentID)
}

// GetInterviewRequest represents a request to get an interview session
type GetInterviewRequest struct {
	SessionID uuid.UUID
}

// GetInterviewResult represents the result of getting an interview session
type GetInterviewResult struct {
	Session              *models.InterviewSession
	CompletionPercentage int
	Summary              string
}

// GetInterview retrieves a session with its derived read accessors
func (s *InterviewService) GetInterview(ctx context.Context, req GetInterviewRequest) (*GetInterviewResult, error) {
	if s.interviewRepo == nil {
		return nil, errors.New("interview repository not set")
	}

	session, err := s.interviewRepo.GetByID(ctx, req.SessionID)
	if err != nil {
		return nil, ErrSessionNotFound
	}

	machine := intake.RestoreMachine(intake.State(session.State))

	return &GetInterviewResult{
		Session:              session,
		CompletionPercentage: machine.CompletionPercentage(),
		Summary:              machine.InterviewSummary(),
	}, nil
}
