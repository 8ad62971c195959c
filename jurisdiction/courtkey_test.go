package jurisdiction

import "testing"

func TestResolveCourtKeyFederal(t *testing.T) {
	tests := []struct {
		name      string
		courtText string
		want      CourtKey
	}{
		{"ninth circuit by name", "United States Court of Appeals for the Ninth Circuit", CourtKeyNinthCircuit},
		{"ninth circuit ordinal", "9th Circuit", CourtKeyNinthCircuit},
		{"second circuit", "Second Circuit Court of Appeals", CourtKeySecondCircuit},
		{"dc circuit", "D.C. Circuit", CourtKeyDCCircuit},
		{"federal circuit", "Federal Circuit", CourtKeyFederalCircuit},
		{"district court", "United States District Court for the Northern District of California", CourtKeyFederalDistrict},
		{"bankruptcy court", "bankruptcy court", CourtKeyFederalDistrict},
		{"appellate without circuit", "court of appeals", CourtKeyFederalGeneric},
		{"unrecognized", "some federal tribunal", CourtKeyFederalGeneric},
		{"empty", "", CourtKeyFederalGeneric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveCourtKey(LevelFederal, tt.courtText, "", "")
			if got != tt.want {
				t.Errorf("ResolveCourtKey(federal, %q) = %q, want %q", tt.courtText, got, tt.want)
			}
		})
	}
}

func TestResolveCourtKeyState(t *testing.T) {
	tests := []struct {
		name      string
		courtText string
		state     string
		want      CourtKey
	}{
		{"california by code", "", "CA", CourtKeyCaliforniaSuperior},
		{"california lower case", "", "ca", CourtKeyCaliforniaSuperior},
		{"new york", "", "NY", CourtKeyNewYorkSupreme},
		{"texas", "", "TX", CourtKeyTexasDistrict},
		{"louisiana", "", "LA", CourtKeyLouisianaDistrict},
		{"state in court text", "Superior Court of California, County of Alameda", "", CourtKeyCaliforniaSuperior},
		{"virginia in court text", "Circuit Court of Fairfax County, Virginia", "", CourtKeyVirginiaCircuit},
		{"west virginia is not virginia", "Circuit Court of Kanawha County, West Virginia", "WV", CourtKeyGenericState},
		{"west virginia by text alone", "Circuit Court of Kanawha County, West Virginia", "", CourtKeyGenericState},
		{"plain state no specialization", "", "MT", CourtKeyGenericState},
		{"unknown everything", "", "", CourtKeyGenericState},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveCourtKey(LevelState, tt.courtText, tt.state, "")
			if got != tt.want {
				t.Errorf("ResolveCourtKey(state, %q, %q) = %q, want %q", tt.courtText, tt.state, got, tt.want)
			}
		})
	}
}

// Every resolved key must have a rule; resolution plus lookup never dead-ends.
func TestResolveCourtKeyAlwaysRuled(t *testing.T) {
	inputs := []struct {
		level JurisdictionLevel
		text  string
		state string
	}{
		{LevelFederal, "ninth circuit", ""},
		{LevelFederal, "nonsense", ""},
		{LevelState, "", "CA"},
		{LevelState, "", "ZZ"},
		{LevelState, "garbage input !!!", ""},
		{"", "", ""},
	}

	for _, in := range inputs {
		key := ResolveCourtKey(in.level, in.text, in.state, "")
		rule := RuleFor(key)
		if rule.Caption == nil {
			t.Errorf("RuleFor(%q) has nil caption for input %+v", key, in)
		}
		if len(rule.RequiredSections) == 0 {
			t.Errorf("RuleFor(%q) has no required sections for input %+v", key, in)
		}
	}
}
