// Package jurisdiction resolves free-form court, state, and county
// descriptions to a canonical court identity with per-court formatting rules.
// Resolution is total: every input maps to some CourtKey and some caption
// text. Unresolvable input degrades to a generic key that still renders the
// literal court name supplied, never to an error.
package jurisdiction

import "strings"

// JurisdictionLevel distinguishes federal from state court systems.
type JurisdictionLevel string

const (
	LevelFederal JurisdictionLevel = "federal"
	LevelState   JurisdictionLevel = "state"
)

// CourtKey is the canonical identifier for a supported court or venue.
// Every CourtKey maps to exactly one CourtRule in the rules registry.
type CourtKey string

const (
	// Federal appellate courts.
	CourtKeyFirstCircuit    CourtKey = "federal_1st_circuit"
	CourtKeySecondCircuit   CourtKey = "federal_2nd_circuit"
	CourtKeyThirdCircuit    CourtKey = "federal_3rd_circuit"
	CourtKeyFourthCircuit   CourtKey = "federal_4th_circuit"
	CourtKeyFifthCircuit    CourtKey = "federal_5th_circuit"
	CourtKeySixthCircuit    CourtKey = "federal_6th_circuit"
	CourtKeySeventhCircuit  CourtKey = "federal_7th_circuit"
	CourtKeyEighthCircuit   CourtKey = "federal_8th_circuit"
	CourtKeyNinthCircuit    CourtKey = "federal_9th_circuit"
	CourtKeyTenthCircuit    CourtKey = "federal_10th_circuit"
	CourtKeyEleventhCircuit CourtKey = "federal_11th_circuit"
	CourtKeyDCCircuit       CourtKey = "federal_dc_circuit"
	CourtKeyFederalCircuit  CourtKey = "federal_fed_circuit"

	// Federal trial and fallback venues.
	CourtKeyFederalDistrict CourtKey = "federal_district"
	CourtKeyFederalGeneric  CourtKey = "federal_generic"

	// State trial courts with formatting peculiarities.
	CourtKeyCaliforniaSuperior CourtKey = "ca_superior"
	CourtKeyNewYorkSupreme     CourtKey = "ny_supreme"
	CourtKeyTexasDistrict      CourtKey = "tx_district"
	CourtKeyFloridaCircuit     CourtKey = "fl_circuit"
	CourtKeyLouisianaDistrict  CourtKey = "la_district"
	CourtKeyNewJerseySuperior  CourtKey = "nj_superior"
	CourtKeyVermontSuperior    CourtKey = "vt_superior"
	CourtKeyMarylandCircuit    CourtKey = "md_circuit"
	CourtKeyVirginiaCircuit    CourtKey = "va_circuit"
	CourtKeyPennsylvaniaPleas  CourtKey = "pa_common_pleas"
	CourtKeyOhioPleas          CourtKey = "oh_common_pleas"
	CourtKeyDCSuperior         CourtKey = "dc_superior"

	// Neutral fallback whose caption renders the literal court name supplied.
	CourtKeyGenericState CourtKey = "state_generic"
)

// circuitKeywords pairs appellate-circuit name fragments with their keys.
// Ordered so that "eleventh" is tested before "first" never matters: every
// fragment is unambiguous against lower-cased input.
var circuitKeywords = []struct {
	fragment string
	key      CourtKey
}{
	{"first circuit", CourtKeyFirstCircuit},
	{"1st circuit", CourtKeyFirstCircuit},
	{"second circuit", CourtKeySecondCircuit},
	{"2nd circuit", CourtKeySecondCircuit},
	{"third circuit", CourtKeyThirdCircuit},
	{"3rd circuit", CourtKeyThirdCircuit},
	{"fourth circuit", CourtKeyFourthCircuit},
	{"4th circuit", CourtKeyFourthCircuit},
	{"fifth circuit", CourtKeyFifthCircuit},
	{"5th circuit", CourtKeyFifthCircuit},
	{"sixth circuit", CourtKeySixthCircuit},
	{"6th circuit", CourtKeySixthCircuit},
	{"seventh circuit", CourtKeySeventhCircuit},
	{"7th circuit", CourtKeySeventhCircuit},
	{"eighth circuit", CourtKeyEighthCircuit},
	{"8th circuit", CourtKeyEighthCircuit},
	{"ninth circuit", CourtKeyNinthCircuit},
	{"9th circuit", CourtKeyNinthCircuit},
	{"tenth circuit", CourtKeyTenthCircuit},
	{"10th circuit", CourtKeyTenthCircuit},
	{"eleventh circuit", CourtKeyEleventhCircuit},
	{"11th circuit", CourtKeyEleventhCircuit},
	{"d.c. circuit", CourtKeyDCCircuit},
	{"dc circuit", CourtKeyDCCircuit},
	{"federal circuit", CourtKeyFederalCircuit},
}

// stateTrialKeys maps state codes to their specialized trial-court keys.
// States without a specialized key resolve to CourtKeyGenericState.
var stateTrialKeys = map[string]CourtKey{
	"CA": CourtKeyCaliforniaSuperior,
	"NY": CourtKeyNewYorkSupreme,
	"TX": CourtKeyTexasDistrict,
	"FL": CourtKeyFloridaCircuit,
	"LA": CourtKeyLouisianaDistrict,
	"NJ": CourtKeyNewJerseySuperior,
	"VT": CourtKeyVermontSuperior,
	"MD": CourtKeyMarylandCircuit,
	"VA": CourtKeyVirginiaCircuit,
	"PA": CourtKeyPennsylvaniaPleas,
	"OH": CourtKeyOhioPleas,
	"DC": CourtKeyDCSuperior,
}

// ResolveCourtKey maps a jurisdiction level plus free-text court, state, and
// county descriptions to a canonical CourtKey. It is a total function: any
// input yields some key. State matching runs most specific first; inputs that
// match nothing fall through to a generic key whose caption still renders the
// literal court name.
func ResolveCourtKey(level JurisdictionLevel, courtText, state, county string) CourtKey {
	text := strings.ToLower(strings.TrimSpace(courtText))

	if level == LevelFederal {
		for _, ck := range circuitKeywords {
			if strings.Contains(text, ck.fragment) {
				return ck.key
			}
		}
		if strings.Contains(text, "court of appeals") || strings.Contains(text, "appellate") {
			// An appellate reference without a recognizable circuit name.
			return CourtKeyFederalGeneric
		}
		if strings.Contains(text, "district") || strings.Contains(text, "bankruptcy") {
			return CourtKeyFederalDistrict
		}
		return CourtKeyFederalGeneric
	}

	code := strings.ToUpper(strings.TrimSpace(state))
	if key, ok := stateTrialKeys[code]; ok {
		return key
	}

	// Court text can carry the state when the state field is empty or
	// unrecognized ("Superior Court of California, County of Alameda").
	// Match the longest contained state name so "West Virginia" is never
	// read as "Virginia".
	var matchedCode, matchedName string
	for stateCode := range stateNames {
		name := strings.ToLower(stateName(stateCode))
		if !strings.Contains(text, name) {
			continue
		}
		if len(name) > len(matchedName) || (len(name) == len(matchedName) && stateCode < matchedCode) {
			matchedCode = stateCode
			matchedName = name
		}
	}
	if matchedCode != "" {
		if key, ok := stateTrialKeys[matchedCode]; ok {
			return key
		}
	}

	return CourtKeyGenericState
}
