package repository

import (
	"context"
	"fmt"

	"courtdraft-backend/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// InterviewRepository handles database operations for interview sessions
type InterviewRepository struct {
	db *pgxpool.Pool
}

// NewInterviewRepository creates a new interview repository
func NewInterviewRepository(db *pgxpool.Pool) *InterviewRepository {
	return &InterviewRepository{db: db}
}

// Create creates a new interview session
func (r *InterviewRepository) Create(ctx context.Context, session *models.InterviewSession) error {
	query := `
		INSERT INTO interview_sessions (user_id, document_id, status, state)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRow(
		ctx, query,
		session.UserID,
		session.DocumentID,
		session.Status,
		session.State,
	).Scan(&session.ID, &session.CreatedAt, &session.UpdatedAt)

	return err
}

// GetByID retrieves an interview session by ID
func (r *InterviewRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.InterviewSession, error) {
	session := &models.InterviewSession{}
	query := `
		SELECT id, user_id, document_id, status, state, created_at, updated_at
		FROM interview_sessions
		WHERE id = $1`

	err := r.db.QueryRow(ctx, query, id).Scan(
		&session.ID,
		&session.UserID,
		&session.DocumentID,
		&session.Status,
		&session.State,
		&session.CreatedAt,
		&session.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}

	return session, nil
}

// UpdateState persists the session's machine state and status
func (r *InterviewRepository) UpdateState(ctx context.Context, id uuid.UUID, status models.InterviewStatus, state models.InterviewState) error {
	query := `
		UPDATE interview_sessions SET
			status = $2,
			state = $3,
			updated_at = NOW()
		WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, status, state)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("interview session not found: %s", id)
	}

	return nil
}

// LinkDocument associates a session with the document it will generate
func (r *InterviewRepository) LinkDocument(ctx context.Context, id, documentID uuid.UUID) error {
	query := `
		UPDATE interview_sessions SET
			document_id = $2,
			updated_at = NOW()
		WHERE id = $1`

	_, err := r.db.Exec(ctx, query, id, documentID)
	return err
}
