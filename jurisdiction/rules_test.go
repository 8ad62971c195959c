package jurisdiction

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRuleForTotality(t *testing.T) {
	// Known keys return their own rule; unknown keys fall back rather
	// than returning a zero value.
	for key := range Rules() {
		rule := RuleFor(key)
		require.NotNil(t, rule.Caption, "key %s", key)
		require.NotEmpty(t, rule.RequiredSections, "key %s", key)
		require.NotEmpty(t, rule.Guidance, "key %s", key)
	}

	fallback := RuleFor(CourtKey("does_not_exist"))
	assert.NotNil(t, fallback.Caption)
	assert.Equal(t, genericStateGuidance, fallback.Guidance)
}

func TestEveryRuleCaptionRenders(t *testing.T) {
	ctx := CourtContext{State: "CA", County: "Alameda", JudicialDistrict: "Northern District"}
	for key, rule := range Rules() {
		caption := rule.Caption(ctx)
		if strings.TrimSpace(caption) == "" {
			t.Errorf("rule %s rendered an empty caption", key)
		}
	}
}

func TestRequiredSectionsAreCanonical(t *testing.T) {
	require.Len(t, CanonicalSections, 9)
	assert.Equal(t, "INTRODUCTION", CanonicalSections[0])
	assert.Equal(t, "CERTIFICATE OF SERVICE", CanonicalSections[len(CanonicalSections)-1])

	for key, rule := range Rules() {
		assert.Equal(t, CanonicalSections, rule.RequiredSections, "key %s", key)
	}
}

// Adding a court is a pure data addition: a new key with a rule is picked up
// by lookup without touching resolution or formatting code.
func TestRegistryDataAddition(t *testing.T) {
	const testKey = CourtKey("test_municipal")
	rules[testKey] = CourtRule{
		Caption:          func(ctx CourtContext) string { return "TEST MUNICIPAL COURT" },
		RequiredSections: CanonicalSections,
		Guidance:         "test guidance",
	}
	defer delete(rules, testKey)

	rule := RuleFor(testKey)
	assert.Equal(t, "TEST MUNICIPAL COURT", rule.Caption(CourtContext{}))
	assert.Equal(t, "test guidance", rule.Guidance)
}

func TestStateLegalStandard(t *testing.T) {
	tests := []struct {
		name         string
		state        string
		documentType string
		wantFragment string
	}{
		{"california habeas", "CA", "Petition for Writ of Habeas Corpus", "Penal Code § 1473"},
		{"new york vacatur", "NY", "Motion to Vacate Judgment (post-conviction)", "440.10"},
		{"texas habeas", "TX", "post-conviction habeas application", "11.07"},
		{"florida post-conviction", "FL", "Motion for Post-Conviction Relief", "3.850"},
		{"california dismiss", "CA", "Motion to Dismiss", "430.10"},
		{"unknown state falls back", "WY", "Petition for Writ of Habeas Corpus", "28 U.S.C. § 2254"},
		{"unknown type falls back", "CA", "Notice of Appearance", "rules of civil procedure"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StateLegalStandard(tt.state, tt.documentType)
			require.NotEmpty(t, got)
			assert.Contains(t, got, tt.wantFragment)
		})
	}
}

func TestStandardRelief(t *testing.T) {
	tests := []struct {
		documentType string
		wantFragment string
	}{
		{"Petition for Writ of Habeas Corpus", "vacate the judgment of conviction"},
		{"Motion to Dismiss", "dismiss the complaint"},
		{"Motion for Summary Judgment", "summary judgment"},
		{"Petition for Protective Order", "protective order"},
		{"Answer to Unlawful Detainer", "eviction proceeding"},
		{"Some Unknown Filing", "relief sought herein"},
	}

	for _, tt := range tests {
		got := StandardRelief(tt.documentType)
		if !strings.Contains(got, tt.wantFragment) {
			t.Errorf("StandardRelief(%q) = %q, want fragment %q", tt.documentType, got, tt.wantFragment)
		}
	}
}
