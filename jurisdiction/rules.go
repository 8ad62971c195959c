package jurisdiction

import (
	"fmt"
	"strings"
)

// CanonicalSections is the ordered list of sections every court-formatted
// document must contain. The document normalizer inserts stubs for any that
// are missing; the quality validator reports any still absent.
var CanonicalSections = []string{
	"INTRODUCTION",
	"JURISDICTION AND VENUE",
	"STATEMENT OF FACTS",
	"PROCEDURAL HISTORY",
	"LEGAL STANDARD",
	"ARGUMENT",
	"REQUESTED RELIEF",
	"CONCLUSION",
	"CERTIFICATE OF SERVICE",
}

// CourtRule holds the per-court drafting rules: how to build the caption,
// which sections a valid filing must contain, free-text guidance for the
// generation prompt, and flags for verification and proof-of-service pages.
// Rules are static data loaded once and read-only thereafter; adding a court
// is a pure data addition.
type CourtRule struct {
	Caption               func(ctx CourtContext) string
	RequiredSections      []string
	Guidance              string
	IncludeVerification   bool
	IncludeProofOfService bool
}

func circuitCaption(ordinal string) func(CourtContext) string {
	return func(ctx CourtContext) string {
		if name := strings.TrimSpace(ctx.CourtName); name != "" {
			return name
		}
		return fmt.Sprintf("UNITED STATES COURT OF APPEALS\nFOR THE %s CIRCUIT", strings.ToUpper(ordinal))
	}
}

func federalDistrictCaption(ctx CourtContext) string {
	if name := strings.TrimSpace(ctx.CourtName); name != "" {
		return name
	}
	district := strings.TrimSpace(ctx.JudicialDistrict)
	if district == "" {
		district = "[INSERT DISTRICT]"
	}
	return fmt.Sprintf("UNITED STATES DISTRICT COURT\nFOR THE %s OF %s", strings.ToUpper(district), strings.ToUpper(stateName(ctx.State)))
}

func federalGenericCaption(ctx CourtContext) string {
	if name := strings.TrimSpace(ctx.CourtName); name != "" {
		return name
	}
	return "UNITED STATES COURT OF APPEALS\nFOR THE [INSERT CIRCUIT] CIRCUIT"
}

func genericStateCaption(ctx CourtContext) string {
	// The generic rule still renders the literal court name the caller
	// supplied; under-specified jurisdictions are never dropped.
	return FormatStateCaption(ctx)
}

const (
	federalAppellateGuidance = "Address appellate jurisdiction under 28 U.S.C. § 1291 or the applicable habeas provision. Cite the record on appeal. Apply the circuit's standard of review to each issue raised."
	federalDistrictGuidance  = "State subject-matter jurisdiction and venue with statutory citations. Comply with the Federal Rules of Civil Procedure and the district's local rules on formatting and page limits."
	genericStateGuidance     = "Follow the forum's local rules on caption format, paper size, and service. Cite controlling state authority before persuasive authority from other jurisdictions."
)

// rules is the static CourtKey -> CourtRule registry.
var rules = map[CourtKey]CourtRule{
	CourtKeyFirstCircuit:    {Caption: circuitCaption("First"), RequiredSections: CanonicalSections, Guidance: federalAppellateGuidance, IncludeProofOfService: true},
	CourtKeySecondCircuit:   {Caption: circuitCaption("Second"), RequiredSections: CanonicalSections, Guidance: federalAppellateGuidance, IncludeProofOfService: true},
	CourtKeyThirdCircuit:    {Caption: circuitCaption("Third"), RequiredSections: CanonicalSections, Guidance: federalAppellateGuidance, IncludeProofOfService: true},
	CourtKeyFourthCircuit:   {Caption: circuitCaption("Fourth"), RequiredSections: CanonicalSections, Guidance: federalAppellateGuidance, IncludeProofOfService: true},
	CourtKeyFifthCircuit:    {Caption: circuitCaption("Fifth"), RequiredSections: CanonicalSections, Guidance: federalAppellateGuidance, IncludeProofOfService: true},
	CourtKeySixthCircuit:    {Caption: circuitCaption("Sixth"), RequiredSections: CanonicalSections, Guidance: federalAppellateGuidance, IncludeProofOfService: true},
	CourtKeySeventhCircuit:  {Caption: circuitCaption("Seventh"), RequiredSections: CanonicalSections, Guidance: federalAppellateGuidance + " The Seventh Circuit enforces Rule 28 jurisdictional statements strictly; include a complete one.", IncludeProofOfService: true},
	CourtKeyEighthCircuit:   {Caption: circuitCaption("Eighth"), RequiredSections: CanonicalSections, Guidance: federalAppellateGuidance, IncludeProofOfService: true},
	CourtKeyNinthCircuit:    {Caption: circuitCaption("Ninth"), RequiredSections: CanonicalSections, Guidance: federalAppellateGuidance + " For habeas matters, address AEDPA deference under 28 U.S.C. § 2254(d).", IncludeProofOfService: true},
	CourtKeyTenthCircuit:    {Caption: circuitCaption("Tenth"), RequiredSections: CanonicalSections, Guidance: federalAppellateGuidance, IncludeProofOfService: true},
	CourtKeyEleventhCircuit: {Caption: circuitCaption("Eleventh"), RequiredSections: CanonicalSections, Guidance: federalAppellateGuidance, IncludeProofOfService: true},
	CourtKeyDCCircuit:       {Caption: circuitCaption("District of Columbia"), RequiredSections: CanonicalSections, Guidance: federalAppellateGuidance, IncludeProofOfService: true},
	CourtKeyFederalCircuit:  {Caption: circuitCaption("Federal"), RequiredSections: CanonicalSections, Guidance: federalAppellateGuidance, IncludeProofOfService: true},
	CourtKeyFederalDistrict: {Caption: federalDistrictCaption, RequiredSections: CanonicalSections, Guidance: federalDistrictGuidance, IncludeProofOfService: true},
	CourtKeyFederalGeneric:  {Caption: federalGenericCaption, RequiredSections: CanonicalSections, Guidance: federalAppellateGuidance, IncludeProofOfService: true},

	CourtKeyCaliforniaSuperior: {
		Caption:               FormatStateCaption,
		RequiredSections:      CanonicalSections,
		Guidance:              "Comply with the California Rules of Court on formatting. Cite the Code of Civil Procedure or Penal Code as applicable. California motions require a separate memorandum of points and authorities.",
		IncludeProofOfService: true,
	},
	CourtKeyNewYorkSupreme: {
		Caption:             FormatStateCaption,
		RequiredSections:    CanonicalSections,
		Guidance:            "New York's trial court of general jurisdiction is the Supreme Court; do not refer to it as an appellate body. Cite the CPLR for procedure.",
		IncludeVerification: true,
	},
	CourtKeyTexasDistrict: {
		Caption:             FormatStateCaption,
		RequiredSections:    CanonicalSections,
		Guidance:            "Texas petitions plead to a discovery control plan under Rule 190. Include the judicial district number in the caption.",
		IncludeVerification: true,
	},
	CourtKeyFloridaCircuit: {
		Caption:               FormatStateCaption,
		RequiredSections:      CanonicalSections,
		Guidance:              "Florida circuit court captions carry the judicial circuit number. Cite the Florida Rules of Civil Procedure or Criminal Procedure as applicable.",
		IncludeProofOfService: true,
	},
	CourtKeyLouisianaDistrict: {
		Caption:               FormatStateCaption,
		RequiredSections:      CanonicalSections,
		Guidance:              "Louisiana is a civil-law jurisdiction: cite the Civil Code and Code of Civil Procedure by article, not common-law case formulations. Venue lies in the parish.",
		IncludeVerification:   true,
		IncludeProofOfService: true,
	},
	CourtKeyNewJerseySuperior: {
		Caption:               FormatStateCaption,
		RequiredSections:      CanonicalSections,
		Guidance:              "Identify the Superior Court division (Law, Chancery, or Family) in the caption. Cite the New Jersey Court Rules.",
		IncludeProofOfService: true,
	},
	CourtKeyVermontSuperior: {
		Caption:               FormatStateCaption,
		RequiredSections:      CanonicalSections,
		Guidance:              "Vermont Superior Court filings name the unit (civil, criminal, family, probate, environmental), not a county division.",
		IncludeProofOfService: true,
	},
	CourtKeyMarylandCircuit: {
		Caption:               FormatStateCaption,
		RequiredSections:      CanonicalSections,
		Guidance:              "Maryland captions read 'Circuit Court for' a county, not 'of'. Cite the Maryland Rules.",
		IncludeProofOfService: true,
	},
	CourtKeyVirginiaCircuit: {
		Caption:               FormatStateCaption,
		RequiredSections:      CanonicalSections,
		Guidance:              "Virginia captions open with 'VIRGINIA:' on its own line. Distinguish county and independent-city venues.",
		IncludeProofOfService: true,
	},
	CourtKeyPennsylvaniaPleas: {
		Caption:               FormatStateCaption,
		RequiredSections:      CanonicalSections,
		Guidance:              "Pennsylvania's trial court is the Court of Common Pleas. Cite the Pennsylvania Rules of Civil Procedure.",
		IncludeVerification:   true,
		IncludeProofOfService: true,
	},
	CourtKeyOhioPleas: {
		Caption:               FormatStateCaption,
		RequiredSections:      CanonicalSections,
		Guidance:              "Ohio's trial court is the Court of Common Pleas. Cite the Ohio Rules of Civil Procedure.",
		IncludeProofOfService: true,
	},
	CourtKeyDCSuperior: {
		Caption:               FormatStateCaption,
		RequiredSections:      CanonicalSections,
		Guidance:              "The Superior Court of the District of Columbia has no county subdivision. Cite the D.C. Code and Superior Court rules.",
		IncludeProofOfService: true,
	},

	CourtKeyGenericState: {
		Caption:               genericStateCaption,
		RequiredSections:      CanonicalSections,
		Guidance:              genericStateGuidance,
		IncludeProofOfService: true,
	},
}

// RuleFor returns the CourtRule for a key. It is total: unknown keys fall
// back to the generic state rule so callers never handle a missing rule.
func RuleFor(key CourtKey) CourtRule {
	if rule, ok := rules[key]; ok {
		return rule
	}
	return rules[CourtKeyGenericState]
}

// Rules exposes the full registry for enumeration in tests and tooling.
func Rules() map[CourtKey]CourtRule {
	return rules
}
