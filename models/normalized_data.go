package models

import (
	"database/sql/driver"
	"encoding/json"
)

// NormalizedDocumentData holds cleaned fields extracted from an uploaded
// artifact or an interview, used to seed jurisdiction resolution and prompt
// building. Every field is best effort and possibly empty.
type NormalizedDocumentData struct {
	CaseNumber     string `json:"case_number,omitempty"`
	Court          string `json:"court,omitempty"`
	OpposingParty  string `json:"opposing_party,omitempty"`
	FilingDate     string `json:"filing_date,omitempty"`
	Judge          string `json:"judge,omitempty"`
	State          string `json:"state,omitempty"`
	DocumentType   string `json:"document_type,omitempty"`
	RawText        string `json:"raw_text,omitempty"`
	NormalizedText string `json:"normalized_text,omitempty"`
}

// Value implements driver.Valuer for JSONB
func (n NormalizedDocumentData) Value() (driver.Value, error) {
	return json.Marshal(n)
}

// Scan implements sql.Scanner for JSONB
func (n *NormalizedDocumentData) Scan(value interface{}) error {
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

	return json.Unmarshal(bytes, n)
}

// Merge combines data from multiple sources; the newer value wins for every
// field it actually carries, and empty fields never clobber known ones.
func (n NormalizedDocumentData) Merge(newer NormalizedDocumentData) NormalizedDocumentData {
	out := n
	if newer.CaseNumber != "" {
		out.CaseNumber = newer.CaseNumber
	}
	if newer.Court != "" {
		out.Court = newer.Court
	}
	if newer.OpposingParty != "" {
		out.OpposingParty = newer.OpposingParty
	}
	if newer.FilingDate != "" {
		out.FilingDate = newer.FilingDate
	}
	if newer.Judge != "" {
		out.Judge = newer.Judge
	}
	if newer.State != "" {
		out.State = newer.State
	}
	if newer.DocumentType != "" {
		out.DocumentType = newer.DocumentType
	}
	if newer.RawText != "" {
		out.RawText = newer.RawText
	}
	if newer.NormalizedText != "" {
		out.NormalizedText = newer.NormalizedText
	}
	return out
}
