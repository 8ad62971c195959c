package document

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestViolatesStance(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{
			name: "adverse ruling language",
			text: "The court affirms the judgment below. The petition is denied.",
			want: true,
		},
		{
			name: "affirmed conviction",
			text: "For these reasons, the conviction is affirmed.",
			want: true,
		},
		{
			name: "proper advocacy",
			text: "WHEREFORE, Petitioner respectfully requests that the Court vacate the judgment.",
			want: false,
		},
		{
			name: "requests relief without wherefore",
			text: "Petitioner respectfully requests that the court grant the motion.",
			want: false,
		},
		{
			name: "no relief language at all",
			text: "This document discusses the facts of the case and nothing else.",
			want: true,
		},
		{
			name: "adverse ruling wins over relief language",
			text: "WHEREFORE Petitioner respectfully requests relief. The petition is hereby denied.",
			want: true,
		},
		{
			name: "empty draft never asks for anything",
			text: "",
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ViolatesStance(tt.text, "petitioner", "vacate the conviction")
			if got != tt.want {
				t.Errorf("ViolatesStance(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestValidateDocumentType(t *testing.T) {
	tests := []struct {
		name          string
		text          string
		requestedType string
		want          bool
	}{
		{
			name:          "motion with motion language",
			text:          "Defendant moves this court to dismiss the complaint.",
			requestedType: "Motion to Dismiss",
			want:          true,
		},
		{
			name:          "petition with petitioner language",
			text:          "Petitioner seeks a writ of habeas corpus.",
			requestedType: "Petition for Writ of Habeas Corpus",
			want:          true,
		},
		{
			name:          "motion containing judicial language",
			text:          "The motion is submitted. IT IS HEREBY ORDERED that relief is granted.",
			requestedType: "Motion to Dismiss",
			want:          false,
		},
		{
			name:          "proposed order may carry order language",
			text:          "IT IS HEREBY ORDERED that the defendant appear. This order is effective immediately.",
			requestedType: "Proposed Order",
			want:          true,
		},
		{
			name:          "protective order petition is not a judicial order",
			text:          "Petitioner requests a protective order. IT IS HEREBY ORDERED that respondent stay away.",
			requestedType: "Petition for Protective Order",
			want:          false,
		},
		{
			name:          "draft missing the vehicle entirely",
			text:          "A narrative about events with no procedural vocabulary.",
			requestedType: "Motion for Summary Judgment",
			want:          false,
		},
		{
			name:          "unrecognized vehicle falls back to type name",
			text:          "This notice of appearance is submitted by counsel.",
			requestedType: "Notice of Appearance",
			want:          true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateDocumentType(tt.text, tt.requestedType)
			if got != tt.want {
				t.Errorf("ValidateDocumentType(%q, %q) = %v, want %v", tt.text, tt.requestedType, got, tt.want)
			}
		})
	}
}

func TestValidateDocumentQuality(t *testing.T) {
	t.Run("fully normalized draft passes", func(t *testing.T) {
		draft := Normalize(sampleDraft(), habeasType)
		// Fill the stub placeholders the normalizer inserted
		filled := placeholderRE.ReplaceAllString(draft, "Content supplied on review.")

		result := ValidateDocumentQuality(filled, habeasType)
		assert.True(t, result.Valid, "issues: %v", result.Issues)
		assert.Empty(t, result.Issues)
	})

	t.Run("missing sections are each reported", func(t *testing.T) {
		result := ValidateDocumentQuality("**MOTION TO DISMISS**\n\nno sections here", "Motion to Dismiss")
		assert.False(t, result.Valid)

		missing := 0
		for _, issue := range result.Issues {
			if strings.HasPrefix(issue, "Missing required section:") {
				missing++
			}
		}
		assert.Equal(t, 9, missing)
	})

	t.Run("placeholders reported", func(t *testing.T) {
		draft := Normalize("", habeasType)
		result := ValidateDocumentQuality(draft, habeasType)
		assert.False(t, result.Valid)

		found := false
		for _, issue := range result.Issues {
			if strings.Contains(issue, "unfilled placeholder") {
				found = true
			}
		}
		assert.True(t, found, "issues: %v", result.Issues)
	})

	t.Run("ai disclosure reported", func(t *testing.T) {
		draft := Normalize("As an AI, I cannot provide legal advice, but here is a draft.", habeasType)
		result := ValidateDocumentQuality(draft, habeasType)

		found := false
		for _, issue := range result.Issues {
			if strings.Contains(issue, "AI self-disclosure") {
				found = true
			}
		}
		assert.True(t, found, "issues: %v", result.Issues)
	})

	t.Run("wrong court name reported", func(t *testing.T) {
		result := ValidateDocumentQuality("filed in the New York District Court", "motion")

		found := false
		for _, issue := range result.Issues {
			if strings.Contains(issue, "Incorrect court name") {
				found = true
			}
		}
		assert.True(t, found, "issues: %v", result.Issues)
	})

	t.Run("missing title reported", func(t *testing.T) {
		result := ValidateDocumentQuality("no bold title here", "motion")

		found := false
		for _, issue := range result.Issues {
			if strings.Contains(issue, "Missing bold upper-case document title") {
				found = true
			}
		}
		assert.True(t, found, "issues: %v", result.Issues)
	})
}
