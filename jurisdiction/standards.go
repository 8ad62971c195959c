package jurisdiction

import "strings"

// docPattern is a coarse document-type bucket used to key the legal-standard
// and standard-relief tables. Matching is heuristic substring matching over
// the caller-supplied document type.
type docPattern string

const (
	patternPostConviction  docPattern = "post_conviction"
	patternMotionToDismiss docPattern = "motion_to_dismiss"
	patternSummaryJudgment docPattern = "summary_judgment"
	patternProtectiveOrder docPattern = "protective_order"
	patternEviction        docPattern = "eviction"
	patternDefault         docPattern = "default"
)

func classifyDocumentType(documentType string) docPattern {
	t := strings.ToLower(documentType)
	switch {
	case strings.Contains(t, "post-conviction"), strings.Contains(t, "post conviction"),
		strings.Contains(t, "habeas"), strings.Contains(t, "vacate"):
		return patternPostConviction
	case strings.Contains(t, "dismiss"), strings.Contains(t, "demurrer"):
		return patternMotionToDismiss
	case strings.Contains(t, "summary judgment"), strings.Contains(t, "summary adjudication"):
		return patternSummaryJudgment
	case strings.Contains(t, "protective order"), strings.Contains(t, "restraining"):
		return patternProtectiveOrder
	case strings.Contains(t, "eviction"), strings.Contains(t, "unlawful detainer"),
		strings.Contains(t, "possession"):
		return patternEviction
	default:
		return patternDefault
	}
}

// stateStandards maps document-type buckets to per-state controlling-rule
// citations. States without an entry use the bucket's fallback.
var stateStandards = map[docPattern]map[string]string{
	patternPostConviction: {
		"CA": "Cal. Penal Code § 1473 governs petitions for writ of habeas corpus in California state court.",
		"NY": "N.Y. Crim. Proc. Law § 440.10 governs motions to vacate a judgment of conviction in New York.",
		"TX": "Tex. Code Crim. Proc. art. 11.07 governs post-conviction habeas applications in Texas.",
		"FL": "Fla. R. Crim. P. 3.850 governs motions for post-conviction relief in Florida.",
		"IL": "The Illinois Post-Conviction Hearing Act, 725 ILCS 5/122-1, governs post-conviction petitions in Illinois.",
		"PA": "The Pennsylvania Post Conviction Relief Act, 42 Pa. C.S. § 9541 et seq., governs collateral relief in Pennsylvania.",
	},
	patternMotionToDismiss: {
		"CA": "Cal. Code Civ. Proc. § 430.10 governs demurrers to a complaint in California.",
		"NY": "CPLR 3211 governs motions to dismiss in New York.",
		"TX": "Tex. R. Civ. P. 91a governs dismissal of baseless causes of action in Texas.",
		"FL": "Fla. R. Civ. P. 1.140(b) governs motions to dismiss in Florida.",
	},
	patternSummaryJudgment: {
		"CA": "Cal. Code Civ. Proc. § 437c governs motions for summary judgment in California.",
		"NY": "CPLR 3212 governs motions for summary judgment in New York.",
		"TX": "Tex. R. Civ. P. 166a governs motions for summary judgment in Texas.",
	},
	patternProtectiveOrder: {
		"CA": "Cal. Fam. Code § 6200 et seq. (Domestic Violence Prevention Act) governs protective orders in California.",
		"NY": "N.Y. Fam. Ct. Act art. 8 governs orders of protection in New York Family Court.",
		"TX": "Tex. Fam. Code ch. 85 governs protective orders in Texas.",
	},
	patternEviction: {
		"CA": "Cal. Code Civ. Proc. § 1161 governs unlawful detainer actions in California.",
		"NY": "N.Y. Real Prop. Acts. Law art. 7 governs summary eviction proceedings in New York.",
		"TX": "Tex. Prop. Code ch. 24 governs forcible detainer actions in Texas.",
	},
}

// standardFallbacks supplies the forum-neutral controlling rule when a state
// has no specific entry for a document-type bucket.
var standardFallbacks = map[docPattern]string{
	patternPostConviction:  "28 U.S.C. § 2254 governs federal habeas corpus review of state convictions; state collateral review follows the forum's post-conviction statute.",
	patternMotionToDismiss: "Fed. R. Civ. P. 12(b)(6) and its state analogues require dismissal where the pleading fails to state a claim upon which relief can be granted.",
	patternSummaryJudgment: "Fed. R. Civ. P. 56 and its state analogues permit judgment where there is no genuine dispute as to any material fact.",
	patternProtectiveOrder: "The forum's protective-order statute requires a showing of reasonable proof of past acts and likelihood of future harm.",
	patternEviction:        "The forum's summary eviction statute governs recovery of possession and requires strict compliance with notice requirements.",
	patternDefault:         "The forum's rules of civil procedure govern the form and sufficiency of this filing.",
}

// StateLegalStandard returns the controlling-rule citation to insert into a
// draft for the given state and document type. Total: unknown inputs yield
// the forum-neutral fallback for the closest document-type bucket.
func StateLegalStandard(state, documentType string) string {
	pattern := classifyDocumentType(documentType)
	code := strings.ToUpper(strings.TrimSpace(state))
	if byState, ok := stateStandards[pattern]; ok {
		if standard, ok := byState[code]; ok {
			return standard
		}
	}
	return standardFallbacks[pattern]
}

// standardRelief maps document-type buckets to the relief sentence the
// normalizer writes into the REQUESTED RELIEF section.
var standardRelief = map[docPattern]string{
	patternPostConviction:  "Petitioner respectfully requests that the Court vacate the judgment of conviction and grant such further relief as justice requires.",
	patternMotionToDismiss: "Defendant respectfully requests that the Court dismiss the complaint in its entirety with prejudice.",
	patternSummaryJudgment: "Movant respectfully requests that the Court grant summary judgment in Movant's favor on all claims.",
	patternProtectiveOrder: "Petitioner respectfully requests that the Court issue a protective order restraining Respondent from further contact with Petitioner.",
	patternEviction:        "Respondent respectfully requests that the Court deny possession to the plaintiff and dismiss the eviction proceeding.",
	patternDefault:         "The moving party respectfully requests that the Court grant the relief sought herein.",
}

// StandardRelief returns the standard relief sentence for a document type.
func StandardRelief(documentType string) string {
	return standardRelief[classifyDocumentType(documentType)]
}
