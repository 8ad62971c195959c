// Package entities provides pure string normalization and extraction helpers
// for interview answers and uploaded-document text. Nothing in this package
// returns an error: garbage input degrades to empty or identity output, so
// callers must treat every normalized field as best effort.
package entities

import (
	"regexp"
	"sort"
	"strings"
)

// stateCodes maps lower-cased state names and abbreviations to USPS codes.
var stateCodes = map[string]string{
	"alabama": "AL", "al": "AL",
	"alaska": "AK", "ak": "AK",
	"arizona": "AZ", "az": "AZ",
	"arkansas": "AR", "ar": "AR",
	"california": "CA", "ca": "CA", "calif": "CA",
	"colorado": "CO", "co": "CO",
	"connecticut": "CT", "ct": "CT",
	"delaware": "DE", "de": "DE",
	"district of columbia": "DC", "dc": "DC", "washington dc": "DC", "washington, d.c.": "DC",
	"florida": "FL", "fl": "FL",
	"georgia": "GA", "ga": "GA",
	"hawaii": "HI", "hi": "HI",
	"idaho": "ID", "id": "ID",
	"illinois": "IL", "il": "IL",
	"indiana": "IN", "in": "IN",
	"iowa": "IA", "ia": "IA",
	"kansas": "KS", "ks": "KS",
	"kentucky": "KY", "ky": "KY",
	"louisiana": "LA", "la": "LA",
	"maine": "ME", "me": "ME",
	"maryland": "MD", "md": "MD",
	"massachusetts": "MA", "ma": "MA",
	"michigan": "MI", "mi": "MI",
	"minnesota": "MN", "mn": "MN",
	"mississippi": "MS", "ms": "MS",
	"missouri": "MO", "mo": "MO",
	"montana": "MT", "mt": "MT",
	"nebraska": "NE", "ne": "NE",
	"nevada": "NV", "nv": "NV",
	"new hampshire": "NH", "nh": "NH",
	"new jersey": "NJ", "nj": "NJ",
	"new mexico": "NM", "nm": "NM",
	"new york": "NY", "ny": "NY",
	"north carolina": "NC", "nc": "NC",
	"north dakota": "ND", "nd": "ND",
	"ohio": "OH", "oh": "OH",
	"oklahoma": "OK", "ok": "OK",
	"oregon": "OR", "or": "OR",
	"pennsylvania": "PA", "pa": "PA",
	"rhode island": "RI", "ri": "RI",
	"south carolina": "SC", "sc": "SC",
	"south dakota": "SD", "sd": "SD",
	"tennessee": "TN", "tn": "TN",
	"texas": "TX", "tx": "TX",
	"utah": "UT", "ut": "UT",
	"vermont": "VT", "vt": "VT",
	"virginia": "VA", "va": "VA",
	"washington": "WA", "wa": "WA",
	"west virginia": "WV", "wv": "WV",
	"wisconsin": "WI", "wi": "WI",
	"wyoming": "WY", "wy": "WY",
}

// categoryAliases maps lower-cased free-form category phrases to the
// canonical legal categories used by the drafting pipeline.
var categoryAliases = map[string]string{
	"wage dispute":          "Employment",
	"wage theft":            "Employment",
	"unpaid wages":          "Employment",
	"wrongful termination":  "Employment",
	"workplace":             "Employment",
	"discrimination":        "Employment",
	"eviction":              "Housing",
	"landlord":              "Housing",
	"landlord tenant":       "Housing",
	"landlord-tenant":       "Housing",
	"tenant":                "Housing",
	"lease dispute":         "Housing",
	"divorce":               "Family Law",
	"custody":               "Family Law",
	"child support":         "Family Law",
	"restraining order":     "Family Law",
	"protective order":      "Family Law",
	"criminal":              "Criminal Defense",
	"post conviction":       "Criminal Defense",
	"post-conviction":       "Criminal Defense",
	"habeas":                "Criminal Defense",
	"appeal":                "Criminal Defense",
	"expungement":           "Criminal Defense",
	"car accident":          "Personal Injury",
	"slip and fall":         "Personal Injury",
	"medical malpractice":   "Personal Injury",
	"injury":                "Personal Injury",
	"contract":              "Contract Dispute",
	"breach of contract":    "Contract Dispute",
	"small claims":          "Contract Dispute",
	"debt":                  "Debt & Collections",
	"debt collection":       "Debt & Collections",
	"bankruptcy":            "Debt & Collections",
	"immigration":           "Immigration",
	"visa":                  "Immigration",
	"deportation":           "Immigration",
	"estate":                "Estate & Probate",
	"will":                  "Estate & Probate",
	"probate":               "Estate & Probate",
	"guardianship":          "Estate & Probate",
	"benefits":              "Government Benefits",
	"social security":       "Government Benefits",
	"disability benefits":   "Government Benefits",
	"unemployment benefits": "Government Benefits",
}

// EntityBundle holds entities extracted from free text. Every slice is
// deduplicated and non-nil; absence of matches yields an empty slice.
type EntityBundle struct {
	Dates       []string `json:"dates"`
	Names       []string `json:"names"`
	Locations   []string `json:"locations"`
	CaseNumbers []string `json:"case_numbers"`
	Courts      []string `json:"courts"`
	Amounts     []string `json:"amounts"`
	Statutes    []string `json:"statutes"`
}

var (
	dateRE  = regexp.MustCompile(`(?i)\b(?:\d{1,2}[/-]\d{1,2}[/-]\d{2,4}|(?:january|february|march|april|may|june|july|august|september|october|november|december)\s+\d{1,2},?\s+\d{4})\b`)
	nameRE  = regexp.MustCompile(`\b(?:Mr\.|Mrs\.|Ms\.|Dr\.|Judge|Justice|Officer|Detective)\s+[A-Z][a-z]+(?:\s+[A-Z][a-z]+)?`)
	locRE   = regexp.MustCompile(`\b[A-Z][a-z]+(?:\s+[A-Z][a-z]+)?\s+(?:County|Parish|Borough|Township|City)\b`)
	caseRE  = regexp.MustCompile(`\b(?:\d{1,2}:)?\d{2,4}-[A-Za-z]{1,4}-\d{3,8}\b|\b[A-Z]{1,3}\d{5,10}\b`)
	courtRE = regexp.MustCompile(`(?i)\b(?:[A-Z][a-z]+\s+)*(?:Superior|District|Circuit|Supreme|Municipal|Appellate|Family|Probate|Justice)\s+Court(?:\s+of\s+[A-Z][A-Za-z ]+)?`)
	amtRE   = regexp.MustCompile(`\$\s?\d{1,3}(?:,\d{3})*(?:\.\d{2})?`)
	statRE  = regexp.MustCompile(`(?i)\b(?:\d+\s+U\.?S\.?C\.?\s*§+\s*[\d.\w()-]+|[A-Z][a-z]+\.?\s+(?:Penal|Civil|Rev\.?|Gen\.?|Ann\.?)\s*(?:Code|Stat\.?|Laws?)\s*§*\s*[\d.\w()-]+|§\s*[\d.]+[\w()-]*)`)
)

// NormalizeState resolves a free-form state description to a two-letter USPS
// code. Unknown input is upper-cased and returned as-is rather than rejected.
func NormalizeState(input string) string {
	cleaned := strings.ToLower(CleanString(input))
	cleaned = strings.TrimSuffix(cleaned, ".")
	if code, ok := stateCodes[cleaned]; ok {
		return code
	}
	return strings.ToUpper(CleanString(input))
}

// NormalizeCategory resolves a free-form case description to a canonical
// legal category, falling back to the cleaned original string.
func NormalizeCategory(input string) string {
	cleaned := strings.ToLower(CleanString(input))
	if canonical, ok := categoryAliases[cleaned]; ok {
		return canonical
	}
	// Substring pass for phrases like "my landlord is evicting me".
	for alias, canonical := range categoryAliases {
		if strings.Contains(cleaned, alias) {
			return canonical
		}
	}
	return CleanString(input)
}

// ExtractEntities pulls dates, names, locations, case numbers, courts, dollar
// amounts, and statute references out of free text.
func ExtractEntities(text string) EntityBundle {
	return EntityBundle{
		Dates:       dedupe(dateRE.FindAllString(text, -1)),
		Names:       dedupe(nameRE.FindAllString(text, -1)),
		Locations:   dedupe(locRE.FindAllString(text, -1)),
		CaseNumbers: dedupe(caseRE.FindAllString(text, -1)),
		Courts:      dedupe(courtRE.FindAllString(text, -1)),
		Amounts:     dedupe(amtRE.FindAllString(text, -1)),
		Statutes:    dedupe(statRE.FindAllString(text, -1)),
	}
}

// CleanString trims leading/trailing whitespace and collapses internal runs
// of whitespace to a single space.
func CleanString(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// dedupe removes duplicates (after trimming) preserving no particular input
// order; output is sorted for stable downstream comparison.
func dedupe(matches []string) []string {
	seen := make(map[string]bool, len(matches))
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		m = strings.TrimSpace(m)
		if m == "" || seen[m] {
			continue
		}
		seen[m] = true
		out = append(out, m)
	}
	sort.Strings(out)
	return out
}
