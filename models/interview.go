package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"courtdraft-backend/intake"

	"github.com/google/uuid"
)

// InterviewStatus represents the status of an interview session
type InterviewStatus string

const (
	InterviewStatusActive    InterviewStatus = "active"
	InterviewStatusComplete  InterviewStatus = "complete"
	InterviewStatusAbandoned InterviewStatus = "abandoned"
)

// InterviewState wraps the intake state machine's state for JSONB storage
type InterviewState intake.State

// Value implements driver.Valuer for JSONB
func (s InterviewState) Value() (driver.Value, error) {
	return json.Marshal(s)
}

// Scan implements sql.Scanner for JSONB
func (s *InterviewState) Scan(value interface{}) error {
	if value == nil {
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	if len(bytes) == 0 {
		return nil
	}

	return json.Unmarshal(bytes, s)
}

// InterviewSession represents one client's intake interview. Exactly one
// request handler at a time may load, dispatch against, and re-save a
// session; the state column is the single source of truth for the machine.
type InterviewSession struct {
	ID         uuid.UUID       `json:"id"`
	UserID     uuid.UUID       `json:"user_id"`
	DocumentID *uuid.UUID      `json:"document_id,omitempty"`
	Status     InterviewStatus `json:"status"`
	State      InterviewState  `json:"state"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}
