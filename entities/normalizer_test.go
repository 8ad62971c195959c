package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeState(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"full name", "California", "CA"},
		{"abbreviation", "ca", "CA"},
		{"mixed case", "TeXaS", "TX"},
		{"padded", "  new york  ", "NY"},
		{"trailing period", "Calif.", "CA"},
		{"dc long form", "District of Columbia", "DC"},
		{"unknown passthrough", "Puerto Rico", "PUERTO RICO"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeState(tt.input); got != tt.want {
				t.Errorf("NormalizeState(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeStateIdempotent(t *testing.T) {
	inputs := []string{"California", "ca", "Puerto Rico", "TX", ""}
	for _, in := range inputs {
		once := NormalizeState(in)
		twice := NormalizeState(once)
		if once != twice {
			t.Errorf("NormalizeState not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestNormalizeCategory(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"exact alias", "eviction", "Housing"},
		{"exact alias mixed case", "Wage Dispute", "Employment"},
		{"substring phrase", "my landlord is evicting me", "Housing"},
		{"habeas phrase", "habeas petition after conviction", "Criminal Defense"},
		{"unknown passthrough", "zoning variance", "zoning variance"},
		{"whitespace cleanup", "  breach   of contract ", "Contract Dispute"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeCategory(tt.input); got != tt.want {
				t.Errorf("NormalizeCategory(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCleanString(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"  hello   world  ", "hello world"},
		{"tabs\tand\nnewlines", "tabs and newlines"},
		{"", ""},
		{"already clean", "already clean"},
	}

	for _, tt := range tests {
		if got := CleanString(tt.input); got != tt.want {
			t.Errorf("CleanString(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestExtractEntities(t *testing.T) {
	text := `On 03/15/2023 Judge Martinez of the Los Angeles Superior Court denied
the motion in case 2:21-cv-04567. Mr. Johnson owes $12,500.00 under
Cal. Penal Code § 1473 and 28 U.S.C. § 2254. The hearing was in
Orange County on January 5, 2024.`

	bundle := ExtractEntities(text)

	assert.Contains(t, bundle.Dates, "03/15/2023")
	assert.Contains(t, bundle.Dates, "January 5, 2024")
	assert.Contains(t, bundle.Names, "Judge Martinez")
	assert.Contains(t, bundle.Names, "Mr. Johnson")
	assert.Contains(t, bundle.Locations, "Orange County")
	assert.Contains(t, bundle.CaseNumbers, "2:21-cv-04567")
	assert.Contains(t, bundle.Amounts, "$12,500.00")
	assert.NotEmpty(t, bundle.Courts)
	assert.NotEmpty(t, bundle.Statutes)
}

func TestExtractEntitiesEmptyInput(t *testing.T) {
	bundle := ExtractEntities("")

	// Absence of matches must yield empty, non-nil slices
	assert.NotNil(t, bundle.Dates)
	assert.NotNil(t, bundle.Names)
	assert.NotNil(t, bundle.Locations)
	assert.NotNil(t, bundle.CaseNumbers)
	assert.NotNil(t, bundle.Courts)
	assert.NotNil(t, bundle.Amounts)
	assert.NotNil(t, bundle.Statutes)
	assert.Empty(t, bundle.Dates)
	assert.Empty(t, bundle.Statutes)
}

func TestExtractEntitiesDeduplicates(t *testing.T) {
	text := "Paid $500 on 01/01/2024, then $500 again on 01/01/2024."
	bundle := ExtractEntities(text)

	assert.Equal(t, []string{"01/01/2024"}, bundle.Dates)
	assert.Equal(t, []string{"$500"}, bundle.Amounts)
}
