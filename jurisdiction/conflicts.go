package jurisdiction

import (
	"fmt"
	"strings"
)

// statePostConvictionStatutes maps state codes to fragments identifying that
// state's post-conviction statute in a citation. A citation to one of these
// signals the filing belongs in state court.
var statePostConvictionStatutes = map[string][]string{
	"CA": {"penal code § 1473", "penal code §1473", "penal code section 1473"},
	"NY": {"§ 440.10", "cpl 440.10", "crim. proc. law § 440.10"},
	"TX": {"art. 11.07", "article 11.07"},
	"FL": {"rule 3.850", "r. crim. p. 3.850"},
	"IL": {"725 ilcs 5/122", "post-conviction hearing act"},
	"PA": {"42 pa. c.s. § 9541", "post conviction relief act", "pcra"},
}

// federalForumFragments identify references to a federal forum: the federal
// habeas statutes, the named appellate circuits, or a federal trial court.
// Bare "circuit" is deliberately absent; many states call their trial courts
// circuit courts.
var federalForumFragments = buildFederalForumFragments()

func buildFederalForumFragments() []string {
	fragments := []string{
		"28 u.s.c. § 2254",
		"28 u.s.c. § 2255",
		"28 u.s.c. §2254",
		"28 u.s.c. §2255",
		"federal habeas",
		"u.s. circuit",
		"united states district court",
		"united states court of appeals",
		"federal court",
	}
	for _, ck := range circuitKeywords {
		fragments = append(fragments, ck.fragment)
	}
	return fragments
}

// DetectJurisdictionConflict flags the known conflict where a state-only
// post-conviction statute is cited alongside federal-forum hints. The return
// is an advisory list of human-readable issues, empty when no conflict;
// the caller decides whether to halt and clarify or proceed with a caveat.
func DetectJurisdictionConflict(statuteRefs, forumHints []string) []string {
	issues := []string{}

	var stateHits []string
	for _, ref := range statuteRefs {
		lower := strings.ToLower(ref)
		for code, fragments := range statePostConvictionStatutes {
			for _, fragment := range fragments {
				if strings.Contains(lower, fragment) {
					stateHits = append(stateHits, fmt.Sprintf("%s (%s post-conviction statute)", strings.TrimSpace(ref), stateName(code)))
				}
			}
		}
	}
	if len(stateHits) == 0 {
		return issues
	}

	var federalHits []string
	for _, hint := range forumHints {
		lower := strings.ToLower(hint)
		for _, fragment := range federalForumFragments {
			if strings.Contains(lower, fragment) {
				federalHits = append(federalHits, strings.TrimSpace(hint))
				break
			}
		}
	}
	if len(federalHits) == 0 {
		return issues
	}

	for _, stateHit := range stateHits {
		issues = append(issues, fmt.Sprintf(
			"Jurisdiction conflict: %s cited, but the matter references a federal forum (%s). A state post-conviction statute is not a basis for relief in federal court; confirm whether this is a state petition or a federal habeas action.",
			stateHit, strings.Join(federalHits, "; ")))
	}
	return issues
}
