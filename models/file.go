package models

import (
	"time"

	"github.com/google/uuid"
)

// File represents an uploaded case artifact (prior filing, notice, contract)
type File struct {
	ID            uuid.UUID  `json:"id"`
	UserID        uuid.UUID  `json:"user_id"`
	DocumentID    *uuid.UUID `json:"document_id,omitempty"`
	Filename      string     `json:"filename"`
	MimeType      string     `json:"mime_type"`
	Size          int64      `json:"size"`
	StoragePath   string     `json:"storage_path"`
	ExtractedText *string    `json:"extracted_text,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}
