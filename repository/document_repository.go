package repository

import (
	"context"
	"fmt"

	"courtdraft-backend/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DocumentRepository handles database operations for documents
type DocumentRepository struct {
	db *pgxpool.Pool
}

// NewDocumentRepository creates a new document repository
func NewDocumentRepository(db *pgxpool.Pool) *DocumentRepository {
	return &DocumentRepository{db: db}
}

// Create creates a new document
func (r *DocumentRepository) Create(ctx context.Context, doc *models.Document) error {
	query := `
		INSERT INTO documents (
			user_id, status, document_type, legal_category, jurisdiction_level,
			state, county, court_name, judicial_district,
			case_number, petitioner, respondent, judge, charges, key_dates,
			interview_session_id, normalized_data,
			draft_content, normalized_content, validation_issues
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17, $18, $19, $20
		) RETURNING id, created_at, updated_at`

	err := r.db.QueryRow(
		ctx, query,
		doc.UserID,
		doc.Status,
		doc.DocumentType,
		doc.LegalCategory,
		doc.JurisdictionLevel,
		doc.State,
		doc.County,
		doc.CourtName,
		doc.JudicialDistrict,
		doc.CaseNumber,
		doc.Petitioner,
		doc.Respondent,
		doc.Judge,
		doc.Charges,
		doc.KeyDates,
		doc.InterviewSessionID,
		doc.NormalizedData,
		doc.DraftContent,
		doc.NormalizedContent,
		doc.ValidationIssues,
	).Scan(&doc.ID, &doc.CreatedAt, &doc.UpdatedAt)

	return err
}

// GetByID retrieves a document by ID
func (r *DocumentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Document, error) {
	doc := &models.Document{}
	query := `
		SELECT id, user_id, status, document_type, legal_category, jurisdiction_level,
			state, county, court_name, judicial_district,
			case_number, petitioner, respondent, judge, charges, key_dates,
			interview_session_id, normalized_data,
			draft_content, normalized_content, validation_issues,
			created_at, updated_at, generated_at
		FROM documents
		WHERE id = $1`

	err := r.db.QueryRow(ctx, query, id).Scan(
		&doc.ID,
		&doc.UserID,
		&doc.Status,
		&doc.DocumentType,
		&doc.LegalCategory,
		&doc.JurisdictionLevel,
		&doc.State,
		&doc.County,
		&doc.CourtName,
		&doc.JudicialDistrict,
		&doc.CaseNumber,
		&doc.Petitioner,
		&doc.Respondent,
		&doc.Judge,
		&doc.Charges,
		&doc.KeyDates,
		&doc.InterviewSessionID,
		&doc.NormalizedData,
		&doc.DraftContent,
		&doc.NormalizedContent,
		&doc.ValidationIssues,
		&doc.CreatedAt,
		&doc.UpdatedAt,
		&doc.GeneratedAt,
	)

	if err != nil {
		return nil, err
	}

	return doc, nil
}

// Update updates an existing document
func (r *DocumentRepository) Update(ctx context.Context, doc *models.Document) error {
	query := `
		UPDATE documents SET
			status = $2,
			document_type = $3,
			legal_category = $4,
			jurisdiction_level = $5,
			state = $6,
			county = $7,
			court_name = $8,
			judicial_district = $9,
			case_number = $10,
			petitioner = $11,
			respondent = $12,
			judge = $13,
			charges = $14,
			key_dates = $15,
			interview_session_id = $16,
			normalized_data = $17,
			validation_issues = $18,
			updated_at = NOW()
		WHERE id = $1`

	result, err := r.db.Exec(
		ctx, query,
		doc.ID,
		doc.Status,
		doc.DocumentType,
		doc.LegalCategory,
		doc.JurisdictionLevel,
		doc.State,
		doc.County,
		doc.CourtName,
		doc.JudicialDistrict,
		doc.CaseNumber,
		doc.Petitioner,
		doc.Respondent,
		doc.Judge,
		doc.Charges,
		doc.KeyDates,
		doc.InterviewSessionID,
		doc.NormalizedData,
		doc.ValidationIssues,
	)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("document not found: %s", doc.ID)
	}

	return nil
}

// UpdateGeneratedContent stores the raw draft, the normalized draft, and the
// validation issues from one generation run
func (r *DocumentRepository) UpdateGeneratedContent(ctx context.Context, id uuid.UUID, draft, normalized string, issues models.StringList) error {
	query := `
		UPDATE documents SET
			draft_content = $2,
			normalized_content = $3,
			validation_issues = $4,
			status = $5,
			generated_at = NOW(),
			updated_at = NOW()
		WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, draft, normalized, issues, models.DocumentStatusGenerated)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("document not found: %s", id)
	}

	return nil
}

// ListByUserID lists documents for a user
func (r *DocumentRepository) ListByUserID(ctx context.Context, userID uuid.UUID, status *models.DocumentStatus, limit, offset int) ([]*models.Document, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `
		SELECT id, user_id, status, document_type, legal_category, jurisdiction_level,
			state, county, court_name, judicial_district,
			case_number, petitioner, respondent, judge, charges, key_dates,
			interview_session_id, normalized_data,
			draft_content, normalized_content, validation_issues,
			created_at, updated_at, generated_at
		FROM documents
		WHERE user_id = $1 AND ($2::text IS NULL OR status = $2)
		ORDER BY updated_at DESC
		LIMIT $3 OFFSET $4`

	rows, err := r.db.Query(ctx, query, userID, status, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	docs := make([]*models.Document, 0)
	for rows.Next() {
		doc := &models.Document{}
		err := rows.Scan(
			&doc.ID,
			&doc.UserID,
			&doc.Status,
			&doc.DocumentType,
			&doc.LegalCategory,
			&doc.JurisdictionLevel,
			&doc.State,
			&doc.County,
			&doc.CourtName,
			&doc.JudicialDistrict,
			&doc.CaseNumber,
			&doc.Petitioner,
			&doc.Respondent,
			&doc.Judge,
			&doc.Charges,
			&doc.KeyDates,
			&doc.InterviewSessionID,
			&doc.NormalizedData,
			&doc.DraftContent,
			&doc.NormalizedContent,
			&doc.ValidationIssues,
			&doc.CreatedAt,
			&doc.UpdatedAt,
			&doc.GeneratedAt,
		)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	return docs, rows.Err()
}
