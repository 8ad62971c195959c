package jurisdiction

import (
	"strings"
	"testing"
)

func TestFormatStateCaptionAllStates(t *testing.T) {
	// Every supported state must render a non-empty caption with and
	// without a county.
	for _, code := range SupportedStates() {
		t.Run(code, func(t *testing.T) {
			withCounty := FormatStateCaption(CourtContext{State: code, County: "Test"})
			if withCounty == "" {
				t.Fatalf("empty caption for %s with county", code)
			}

			withoutCounty := FormatStateCaption(CourtContext{State: code})
			if withoutCounty == "" {
				t.Fatalf("empty caption for %s without county", code)
			}
			// DC has no county subdivision; everywhere else a missing
			// county must surface as a placeholder, never silently vanish.
			if code != "DC" && !strings.Contains(withoutCounty, "[INSERT") {
				t.Errorf("caption for %s without county has no placeholder: %q", code, withoutCounty)
			}
		})
	}
}

func TestFormatStateCaptionQuirks(t *testing.T) {
	tests := []struct {
		name string
		ctx  CourtContext
		want []string
	}{
		{
			name: "california",
			ctx:  CourtContext{State: "CA", County: "Alameda"},
			want: []string{"SUPERIOR COURT OF THE STATE OF CALIFORNIA", "FOR THE COUNTY OF ALAMEDA"},
		},
		{
			name: "louisiana uses parishes",
			ctx:  CourtContext{State: "LA", County: "Orleans", JudicialDistrict: "Civil"},
			want: []string{"PARISH OF ORLEANS", "JUDICIAL DISTRICT COURT"},
		},
		{
			name: "new jersey default division",
			ctx:  CourtContext{State: "NJ", County: "Essex"},
			want: []string{"SUPERIOR COURT OF NEW JERSEY", "LAW DIVISION", "ESSEX COUNTY"},
		},
		{
			name: "vermont unit",
			ctx:  CourtContext{State: "VT", Unit: "Criminal"},
			want: []string{"STATE OF VERMONT", "CRIMINAL UNIT"},
		},
		{
			name: "virginia prefix",
			ctx:  CourtContext{State: "VA", County: "Fairfax"},
			want: []string{"VIRGINIA:", "CIRCUIT COURT OF FAIRFAX COUNTY"},
		},
		{
			name: "maryland uses for",
			ctx:  CourtContext{State: "MD", County: "Montgomery"},
			want: []string{"CIRCUIT COURT FOR MONTGOMERY COUNTY"},
		},
		{
			name: "florida circuit number",
			ctx:  CourtContext{State: "FL", County: "Miami-Dade", Circuit: "Eleventh"},
			want: []string{"ELEVENTH JUDICIAL CIRCUIT", "MIAMI-DADE COUNTY, FLORIDA"},
		},
		{
			name: "unknown state falls back",
			ctx:  CourtContext{State: "GU", County: "Hagatna"},
			want: []string{"STATE OF GU", "HAGATNA COUNTY"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatStateCaption(tt.ctx)
			for _, fragment := range tt.want {
				if !strings.Contains(got, fragment) {
					t.Errorf("caption missing %q:\n%s", fragment, got)
				}
			}
		})
	}
}

func TestFormatStateCaptionCourtNameOverride(t *testing.T) {
	ctx := CourtContext{
		State:     "CA",
		County:    "Alameda",
		CourtName: "Special Tribunal of Record",
	}
	if got := FormatStateCaption(ctx); got != "Special Tribunal of Record" {
		t.Errorf("explicit court name should win, got %q", got)
	}
}

func TestFormatPartyCaption(t *testing.T) {
	t.Run("complete context", func(t *testing.T) {
		got := FormatPartyCaption(CourtContext{
			Petitioner: "Jane Doe",
			Respondent: "Acme Corp",
			CaseNumber: "2:21-cv-04567",
			Judge:      "Smith",
		})
		for _, fragment := range []string{"JANE DOE", "ACME CORP", "Case No. 2:21-cv-04567", "Hon. Smith"} {
			if !strings.Contains(got, fragment) {
				t.Errorf("party caption missing %q:\n%s", fragment, got)
			}
		}
	})

	t.Run("empty context yields placeholders", func(t *testing.T) {
		got := FormatPartyCaption(CourtContext{})
		for _, fragment := range []string{"[INSERT PETITIONER NAME]", "[INSERT RESPONDENT NAME]", "[INSERT CASE NUMBER]"} {
			if !strings.Contains(got, fragment) {
				t.Errorf("party caption missing %q:\n%s", fragment, got)
			}
		}
		if strings.Contains(got, "Hon.") {
			t.Errorf("judge line should be omitted when no judge is set:\n%s", got)
		}
	})
}
