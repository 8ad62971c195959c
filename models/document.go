package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// DocumentStatus represents the status of a drafted document
type DocumentStatus string

const (
	DocumentStatusDraft      DocumentStatus = "draft"
	DocumentStatusGenerating DocumentStatus = "generating"
	DocumentStatusGenerated  DocumentStatus = "generated"
	DocumentStatusReviewed   DocumentStatus = "reviewed"
	DocumentStatusArchived   DocumentStatus = "archived"
)

// StringList is a []string stored as JSONB
type StringList []string

// Value implements driver.Valuer for JSONB
func (l StringList) Value() (driver.Value, error) {
	return json.Marshal(l)
}

// Scan implements sql.Scanner for JSONB
func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		*l = StringList{}
		return nil
	}

	if len(bytes) == 0 {
		*l = StringList{}
		return nil
	}

	return json.Unmarshal(bytes, l)
}

// Document represents a court filing being drafted for a client
type Document struct {
	ID     uuid.UUID      `json:"id"`
	UserID uuid.UUID      `json:"user_id"`
	Status DocumentStatus `json:"status"`

	// What is being drafted and for which forum
	DocumentType      string  `json:"document_type"`
	LegalCategory     string  `json:"legal_category"`
	JurisdictionLevel string  `json:"jurisdiction_level"`
	State             string  `json:"state"`
	County            string  `json:"county"`
	CourtName         string  `json:"court_name"`
	JudicialDistrict  string  `json:"judicial_district"`

	// Parties and case identity
	CaseNumber string     `json:"case_number"`
	Petitioner string     `json:"petitioner"`
	Respondent string     `json:"respondent"`
	Judge      string     `json:"judge"`
	Charges    StringList `json:"charges"`
	KeyDates   StringList `json:"key_dates"`

	// Interview and uploaded-artifact inputs
	InterviewSessionID *uuid.UUID              `json:"interview_session_id,omitempty"`
	NormalizedData     *NormalizedDocumentData `json:"normalized_data,omitempty"`

	// Generation outputs
	DraftContent      *string    `json:"draft_content,omitempty"`
	NormalizedContent *string    `json:"normalized_content,omitempty"`
	ValidationIssues  StringList `json:"validation_issues"`

	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	GeneratedAt *time.Time `json:"generated_at,omitempty"`
}
