package document

import (
	"fmt"
	"regexp"
	"strings"

	"courtdraft-backend/jurisdiction"
)

// ValidationResult reports structural and guardrail findings for a draft.
// Valid is false whenever Issues is non-empty; the issues are human-readable
// and intended for a reviewer, not for programmatic dispatch.
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Issues []string `json:"issues"`
}

// adverseRulingPhrases read as a court ruling against the client. Any hit is
// a stance violation regardless of surrounding content.
var adverseRulingPhrases = []string{
	"petition is denied",
	"petition is hereby denied",
	"motion is denied",
	"the court affirms",
	"the conviction is affirmed",
	"judgment is affirmed",
	"relief is denied",
	"the appeal is dismissed",
	"petitioner is not entitled to relief",
	"the court finds against",
}

// reliefConfirmingPhrases indicate the draft actually asks for something.
var reliefConfirmingPhrases = []string{
	"wherefore",
	"respectfully requests",
	"respectfully prays",
	"prays for relief",
	"requests that the court",
	"requested relief",
	"prayer for relief",
}

// ViolatesStance reports whether the draft reads as ruling against the
// client rather than advocating for them. Either adverse-ruling phrasing or
// the complete absence of relief-request language triggers a violation; the
// check is deliberately high-recall. The clientSide and desiredRelief
// arguments refine the report text only, not the detection.
func ViolatesStance(text, clientSide, desiredRelief string) bool {
	lower := strings.ToLower(text)

	for _, phrase := range adverseRulingPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}

	for _, phrase := range reliefConfirmingPhrases {
		if strings.Contains(lower, phrase) {
			return false
		}
	}
	// No relief language at all: the draft never asks for anything.
	return true
}

// vehicleKeywords map requested document types to keywords that must appear
// somewhere in a draft of that type.
var vehicleKeywords = []struct {
	vehicle  string
	keywords []string
}{
	{"motion", []string{"motion", "moves this court", "movant"}},
	{"brief", []string{"brief", "argument", "statement of the issues"}},
	{"petition", []string{"petition", "petitioner"}},
	{"opposition", []string{"opposition", "opposes", "should be denied"}},
	{"reply", []string{"reply", "in further support"}},
	{"declaration", []string{"declaration", "declare under penalty of perjury"}},
	{"order", []string{"order", "it is hereby ordered"}},
	{"complaint", []string{"complaint", "plaintiff", "causes of action"}},
}

// judicialLanguage is phrasing only a judge issues. A draft that is not a
// proposed order must never contain it.
var judicialLanguage = []string{
	"it is hereby ordered",
	"it is so ordered",
	"judgment is entered",
	"it is adjudged",
	"by order of the court",
}

// ValidateDocumentType reports whether the draft is consistent with the
// requested document vehicle: a matching vehicle keyword must be present,
// and unless an order was requested, the draft must not impersonate a
// judicial ruling.
func ValidateDocumentType(text, requestedType string) bool {
	lower := strings.ToLower(text)
	reqLower := strings.ToLower(requestedType)

	matched := false
	isOrder := strings.Contains(reqLower, "order") && !strings.Contains(reqLower, "protective order") && !strings.Contains(reqLower, "restraining order")
	for _, vk := range vehicleKeywords {
		if !strings.Contains(reqLower, vk.vehicle) {
			continue
		}
		for _, kw := range vk.keywords {
			if strings.Contains(lower, kw) {
				matched = true
				break
			}
		}
		if matched {
			break
		}
	}
	if !matched {
		// Unrecognized vehicles fall back to requiring the type name itself.
		matched = strings.Contains(lower, strings.ToLower(strings.TrimSpace(requestedType)))
	}
	if !matched {
		return false
	}

	if !isOrder {
		for _, phrase := range judicialLanguage {
			if strings.Contains(lower, phrase) {
				return false
			}
		}
	}
	return true
}

// aiDisclosurePhrases are self-disclosures a generated filing must not carry.
var aiDisclosurePhrases = []string{
	"as an ai",
	"i am an ai",
	"language model",
	"i cannot provide legal advice",
	"this is not legal advice",
	"consult a licensed attorney",
}

var placeholderRE = regexp.MustCompile(`\[INSERT [^\]]*\]`)

// wrongCourtPhrases catches state/court-name pairings that do not exist.
var wrongCourtPhrases = []string{
	"california district court",
	"new york district court",
	"california circuit court",
	"texas superior court",
	"florida district court",
	"illinois district court",
}

// ValidateDocumentQuality aggregates every structural quality check for a
// normalized draft and reports all issues found, not just the first.
func ValidateDocumentQuality(text, documentType string) ValidationResult {
	issues := []string{}
	upper := strings.ToUpper(text)
	lower := strings.ToLower(text)

	for _, section := range jurisdiction.CanonicalSections {
		if !strings.Contains(upper, section) {
			issues = append(issues, fmt.Sprintf("Missing required section: %s", section))
		}
	}

	if placeholders := placeholderRE.FindAllString(text, -1); len(placeholders) > 0 {
		issues = append(issues, fmt.Sprintf("Draft contains %d unfilled placeholder(s), e.g. %s", len(placeholders), placeholders[0]))
	}

	if !boldUpperTitlePresent(text) {
		issues = append(issues, "Missing bold upper-case document title")
	}

	for _, phrase := range aiDisclosurePhrases {
		if strings.Contains(lower, phrase) {
			issues = append(issues, fmt.Sprintf("Draft contains AI self-disclosure language: %q", phrase))
		}
	}

	if !strings.Contains(lower, strings.ToLower(reliefTrailer)) {
		issues = append(issues, "Requested relief section is missing the standard relief trailer")
	}

	for _, phrase := range wrongCourtPhrases {
		if strings.Contains(lower, phrase) {
			issues = append(issues, fmt.Sprintf("Incorrect court name for the state: %q", phrase))
		}
	}

	return ValidationResult{Valid: len(issues) == 0, Issues: issues}
}

func boldUpperTitlePresent(text string) bool {
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		return boldTitleRE.MatchString(trimmed)
	}
	return false
}
