package jurisdiction

import (
	"fmt"
	"strings"
)

// CourtContext carries the caller-supplied facts needed to render a caption.
// It is an immutable value: the resolver never mutates it. Optional fields
// that only some states use (judicial district, circuit number, division,
// unit) are plain strings left empty when not applicable.
type CourtContext struct {
	State            string   `json:"state"`
	County           string   `json:"county"`
	JudicialDistrict string   `json:"judicial_district,omitempty"`
	Circuit          string   `json:"circuit,omitempty"`
	Division         string   `json:"division,omitempty"`
	Unit             string   `json:"unit,omitempty"`
	CourtName        string   `json:"court_name,omitempty"`
	CaseNumber       string   `json:"case_number,omitempty"`
	Petitioner       string   `json:"petitioner,omitempty"`
	Respondent       string   `json:"respondent,omitempty"`
	Judge            string   `json:"judge,omitempty"`
	Charges          []string `json:"charges,omitempty"`
	KeyDates         []string `json:"key_dates,omitempty"`
}

// stateNames maps USPS codes to full state names for caption rendering.
var stateNames = map[string]string{
	"AL": "Alabama", "AK": "Alaska", "AZ": "Arizona", "AR": "Arkansas",
	"CA": "California", "CO": "Colorado", "CT": "Connecticut", "DE": "Delaware",
	"DC": "District of Columbia", "FL": "Florida", "GA": "Georgia", "HI": "Hawaii",
	"ID": "Idaho", "IL": "Illinois", "IN": "Indiana", "IA": "Iowa",
	"KS": "Kansas", "KY": "Kentucky", "LA": "Louisiana", "ME": "Maine",
	"MD": "Maryland", "MA": "Massachusetts", "MI": "Michigan", "MN": "Minnesota",
	"MS": "Mississippi", "MO": "Missouri", "MT": "Montana", "NE": "Nebraska",
	"NV": "Nevada", "NH": "New Hampshire", "NJ": "New Jersey", "NM": "New Mexico",
	"NY": "New York", "NC": "North Carolina", "ND": "North Dakota", "OH": "Ohio",
	"OK": "Oklahoma", "OR": "Oregon", "PA": "Pennsylvania", "RI": "Rhode Island",
	"SC": "South Carolina", "SD": "South Dakota", "TN": "Tennessee", "TX": "Texas",
	"UT": "Utah", "VT": "Vermont", "VA": "Virginia", "WA": "Washington",
	"WV": "West Virginia", "WI": "Wisconsin", "WY": "Wyoming",
}

// SupportedStates returns the USPS codes of every state with a caption entry.
func SupportedStates() []string {
	out := make([]string, 0, len(stateNames))
	for code := range stateNames {
		out = append(out, code)
	}
	return out
}

func stateName(code string) string {
	if name, ok := stateNames[strings.ToUpper(code)]; ok {
		return name
	}
	return code
}

func countyOr(county, placeholder string) string {
	county = strings.TrimSpace(county)
	if county == "" {
		return placeholder
	}
	return county
}

func orInsert(v, placeholder string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return placeholder
	}
	return v
}

// FormatStateCaption renders the official court caption for a state-court
// filing. An explicit CourtName on the context always wins; otherwise the
// caption is built from an exhaustive per-state dispatch that encodes each
// state's structural quirks (Louisiana parishes, New Jersey divisions,
// Vermont units, Florida circuit numbers, and so on). Unknown state codes
// fall through to a generic STATE OF X / COURT OF Y COUNTY synthesis; the
// result is never empty.
func FormatStateCaption(ctx CourtContext) string {
	if name := strings.TrimSpace(ctx.CourtName); name != "" {
		return name
	}

	state := strings.ToUpper(strings.TrimSpace(ctx.State))
	county := countyOr(ctx.County, "[INSERT COUNTY]")
	countyUpper := strings.ToUpper(county)

	switch state {
	case "AL":
		return fmt.Sprintf("IN THE CIRCUIT COURT OF %s COUNTY, ALABAMA", countyUpper)
	case "AK":
		district := orInsert(ctx.JudicialDistrict, "[INSERT]")
		return fmt.Sprintf("IN THE SUPERIOR COURT FOR THE STATE OF ALASKA\n%s JUDICIAL DISTRICT AT %s", strings.ToUpper(district), countyUpper)
	case "AZ":
		return fmt.Sprintf("SUPERIOR COURT OF THE STATE OF ARIZONA\nIN AND FOR THE COUNTY OF %s", countyUpper)
	case "AR":
		return fmt.Sprintf("IN THE CIRCUIT COURT OF %s COUNTY, ARKANSAS", countyUpper)
	case "CA":
		return fmt.Sprintf("SUPERIOR COURT OF THE STATE OF CALIFORNIA\nFOR THE COUNTY OF %s", countyUpper)
	case "CO":
		return fmt.Sprintf("DISTRICT COURT, %s COUNTY, COLORADO", countyUpper)
	case "CT":
		return fmt.Sprintf("SUPERIOR COURT OF THE STATE OF CONNECTICUT\nJUDICIAL DISTRICT OF %s", countyUpper)
	case "DE":
		return fmt.Sprintf("IN THE SUPERIOR COURT OF THE STATE OF DELAWARE\nIN AND FOR %s COUNTY", countyUpper)
	case "DC":
		return "SUPERIOR COURT OF THE DISTRICT OF COLUMBIA"
	case "FL":
		circuit := orInsert(ctx.Circuit, "[INSERT CIRCUIT NUMBER]")
		return fmt.Sprintf("IN THE CIRCUIT COURT OF THE %s JUDICIAL CIRCUIT\nIN AND FOR %s COUNTY, FLORIDA", strings.ToUpper(circuit), countyUpper)
	case "GA":
		return fmt.Sprintf("IN THE SUPERIOR COURT OF %s COUNTY\nSTATE OF GEORGIA", countyUpper)
	case "HI":
		circuit := orInsert(ctx.Circuit, "[INSERT CIRCUIT]")
		return fmt.Sprintf("IN THE CIRCUIT COURT OF THE %s CIRCUIT\nSTATE OF HAWAII", strings.ToUpper(circuit))
	case "ID":
		district := orInsert(ctx.JudicialDistrict, "[INSERT]")
		return fmt.Sprintf("IN THE DISTRICT COURT OF THE %s JUDICIAL DISTRICT OF\nTHE STATE OF IDAHO, IN AND FOR THE COUNTY OF %s", strings.ToUpper(district), countyUpper)
	case "IL":
		return fmt.Sprintf("IN THE CIRCUIT COURT OF %s COUNTY, ILLINOIS", countyUpper)
	case "IN":
		return fmt.Sprintf("IN THE %s CIRCUIT COURT\nSTATE OF INDIANA", countyUpper)
	case "IA":
		return fmt.Sprintf("IN THE IOWA DISTRICT COURT FOR %s COUNTY", countyUpper)
	case "KS":
		return fmt.Sprintf("IN THE DISTRICT COURT OF %s COUNTY, KANSAS", countyUpper)
	case "KY":
		return fmt.Sprintf("COMMONWEALTH OF KENTUCKY\n%s CIRCUIT COURT", countyUpper)
	case "LA":
		// Louisiana organizes trial courts by parish within numbered
		// judicial districts rather than counties.
		parish := countyOr(ctx.County, "[INSERT PARISH]")
		if district := strings.TrimSpace(ctx.JudicialDistrict); district != "" {
			return fmt.Sprintf("%s JUDICIAL DISTRICT COURT\nPARISH OF %s\nSTATE OF LOUISIANA", strings.ToUpper(district), strings.ToUpper(parish))
		}
		return fmt.Sprintf("DISTRICT COURT\nPARISH OF %s\nSTATE OF LOUISIANA", strings.ToUpper(parish))
	case "ME":
		return fmt.Sprintf("STATE OF MAINE\nSUPERIOR COURT\n%s COUNTY", countyUpper)
	case "MD":
		return fmt.Sprintf("IN THE CIRCUIT COURT FOR %s COUNTY, MARYLAND", countyUpper)
	case "MA":
		return fmt.Sprintf("COMMONWEALTH OF MASSACHUSETTS\n%s COUNTY SUPERIOR COURT", countyUpper)
	case "MI":
		return fmt.Sprintf("STATE OF MICHIGAN\nIN THE CIRCUIT COURT FOR THE COUNTY OF %s", countyUpper)
	case "MN":
		district := orInsert(ctx.JudicialDistrict, "[INSERT]")
		return fmt.Sprintf("STATE OF MINNESOTA\nDISTRICT COURT, %s JUDICIAL DISTRICT\nCOUNTY OF %s", strings.ToUpper(district), countyUpper)
	case "MS":
		return fmt.Sprintf("IN THE CIRCUIT COURT OF %s COUNTY, MISSISSIPPI", countyUpper)
	case "MO":
		return fmt.Sprintf("IN THE CIRCUIT COURT OF %s COUNTY, MISSOURI", countyUpper)
	case "MT":
		district := orInsert(ctx.JudicialDistrict, "[INSERT]")
		return fmt.Sprintf("MONTANA %s JUDICIAL DISTRICT COURT, %s COUNTY", strings.ToUpper(district), countyUpper)
	case "NE":
		return fmt.Sprintf("IN THE DISTRICT COURT OF %s COUNTY, NEBRASKA", countyUpper)
	case "NV":
		district := orInsert(ctx.JudicialDistrict, "[INSERT]")
		return fmt.Sprintf("%s JUDICIAL DISTRICT COURT OF THE STATE OF NEVADA\nIN AND FOR THE COUNTY OF %s", strings.ToUpper(district), countyUpper)
	case "NH":
		return fmt.Sprintf("THE STATE OF NEW HAMPSHIRE\nSUPERIOR COURT\n%s COUNTY", countyUpper)
	case "NJ":
		// New Jersey Superior Court captions carry a division label
		// (Law, Chancery, Family) alongside the county.
		division := orInsert(ctx.Division, "LAW")
		return fmt.Sprintf("SUPERIOR COURT OF NEW JERSEY\n%s DIVISION\n%s COUNTY", strings.ToUpper(division), countyUpper)
	case "NM":
		district := orInsert(ctx.JudicialDistrict, "[INSERT]")
		return fmt.Sprintf("STATE OF NEW MEXICO\nCOUNTY OF %s\n%s JUDICIAL DISTRICT COURT", countyUpper, strings.ToUpper(district))
	case "NY":
		return fmt.Sprintf("SUPREME COURT OF THE STATE OF NEW YORK\nCOUNTY OF %s", countyUpper)
	case "NC":
		return fmt.Sprintf("STATE OF NORTH CAROLINA\nIN THE GENERAL COURT OF JUSTICE\nSUPERIOR COURT DIVISION\n%s COUNTY", countyUpper)
	case "ND":
		district := orInsert(ctx.JudicialDistrict, "[INSERT]")
		return fmt.Sprintf("IN THE DISTRICT COURT OF %s COUNTY, NORTH DAKOTA\n%s JUDICIAL DISTRICT", countyUpper, strings.ToUpper(district))
	case "OH":
		return fmt.Sprintf("IN THE COURT OF COMMON PLEAS\n%s COUNTY, OHIO", countyUpper)
	case "OK":
		return fmt.Sprintf("IN THE DISTRICT COURT OF %s COUNTY\nSTATE OF OKLAHOMA", countyUpper)
	case "OR":
		return fmt.Sprintf("IN THE CIRCUIT COURT OF THE STATE OF OREGON\nFOR THE COUNTY OF %s", countyUpper)
	case "PA":
		return fmt.Sprintf("IN THE COURT OF COMMON PLEAS OF %s COUNTY, PENNSYLVANIA", countyUpper)
	case "RI":
		return fmt.Sprintf("STATE OF RHODE ISLAND\nSUPERIOR COURT\n%s COUNTY", countyUpper)
	case "SC":
		circuit := orInsert(ctx.Circuit, "[INSERT]")
		return fmt.Sprintf("STATE OF SOUTH CAROLINA\nCOUNTY OF %s\nIN THE COURT OF COMMON PLEAS\n%s JUDICIAL CIRCUIT", countyUpper, strings.ToUpper(circuit))
	case "SD":
		circuit := orInsert(ctx.Circuit, "[INSERT]")
		return fmt.Sprintf("STATE OF SOUTH DAKOTA\nCOUNTY OF %s\nIN CIRCUIT COURT, %s JUDICIAL CIRCUIT", countyUpper, strings.ToUpper(circuit))
	case "TN":
		return fmt.Sprintf("IN THE CIRCUIT COURT FOR %s COUNTY, TENNESSEE", countyUpper)
	case "TX":
		district := orInsert(ctx.JudicialDistrict, "[INSERT]")
		return fmt.Sprintf("IN THE DISTRICT COURT OF %s COUNTY, TEXAS\n%s JUDICIAL DISTRICT", countyUpper, strings.ToUpper(district))
	case "UT":
		district := orInsert(ctx.JudicialDistrict, "[INSERT]")
		return fmt.Sprintf("IN THE %s JUDICIAL DISTRICT COURT\nIN AND FOR %s COUNTY, STATE OF UTAH", strings.ToUpper(district), countyUpper)
	case "VT":
		// Vermont Superior Court sits in named units, not counties.
		unit := orInsert(ctx.Unit, countyUpper)
		return fmt.Sprintf("STATE OF VERMONT\nSUPERIOR COURT\n%s UNIT", strings.ToUpper(unit))
	case "VA":
		return fmt.Sprintf("VIRGINIA:\nIN THE CIRCUIT COURT OF %s COUNTY", countyUpper)
	case "WA":
		return fmt.Sprintf("SUPERIOR COURT OF WASHINGTON\nCOUNTY OF %s", countyUpper)
	case "WV":
		return fmt.Sprintf("IN THE CIRCUIT COURT OF %s COUNTY, WEST VIRGINIA", countyUpper)
	case "WI":
		return fmt.Sprintf("STATE OF WISCONSIN\nCIRCUIT COURT\n%s COUNTY", countyUpper)
	case "WY":
		district := orInsert(ctx.JudicialDistrict, "[INSERT]")
		return fmt.Sprintf("IN THE DISTRICT COURT OF THE %s JUDICIAL DISTRICT\nIN AND FOR %s COUNTY, WYOMING", strings.ToUpper(district), countyUpper)
	default:
		return fmt.Sprintf("STATE OF %s\nCOURT OF %s COUNTY", strings.ToUpper(stateName(state)), countyUpper)
	}
}

// FormatPartyCaption renders the petitioner/respondent/case-number block.
// Missing fields become bracketed placeholders rather than failures so a
// partially-known context still yields a fileable skeleton.
func FormatPartyCaption(ctx CourtContext) string {
	petitioner := orInsert(ctx.Petitioner, "[INSERT PETITIONER NAME]")
	respondent := orInsert(ctx.Respondent, "[INSERT RESPONDENT NAME]")
	caseNumber := orInsert(ctx.CaseNumber, "[INSERT CASE NUMBER]")

	var b strings.Builder
	fmt.Fprintf(&b, "%s,\n", strings.ToUpper(petitioner))
	b.WriteString("    Petitioner,\n")
	b.WriteString("v.")
	fmt.Fprintf(&b, "                                Case No. %s\n", caseNumber)
	fmt.Fprintf(&b, "%s,\n", strings.ToUpper(respondent))
	b.WriteString("    Respondent.\n")
	if judge := strings.TrimSpace(ctx.Judge); judge != "" {
		fmt.Fprintf(&b, "\nAssigned to: Hon. %s\n", judge)
	}
	return b.String()
}
