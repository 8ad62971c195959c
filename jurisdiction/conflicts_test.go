package jurisdiction

import (
	"strings"
	"testing"
)

func TestDetectJurisdictionConflict(t *testing.T) {
	tests := []struct {
		name        string
		statuteRefs []string
		forumHints  []string
		wantIssues  bool
	}{
		{
			name:        "state statute with federal circuit",
			statuteRefs: []string{"Cal. Penal Code § 1473"},
			forumHints:  []string{"Ninth Circuit habeas appeal"},
			wantIssues:  true,
		},
		{
			name:        "state statute with federal habeas statute",
			statuteRefs: []string{"N.Y. Crim. Proc. Law § 440.10"},
			forumHints:  []string{"28 U.S.C. § 2254 petition"},
			wantIssues:  true,
		},
		{
			name:        "texas article with district court",
			statuteRefs: []string{"Tex. Code Crim. Proc. art. 11.07"},
			forumHints:  []string{"United States District Court for the Western District of Texas"},
			wantIssues:  true,
		},
		{
			name:        "state statute with state forum",
			statuteRefs: []string{"Cal. Penal Code § 1473"},
			forumHints:  []string{"Superior Court of California, County of Alameda"},
			wantIssues:  false,
		},
		{
			name:        "florida rule in a florida circuit court",
			statuteRefs: []string{"Fla. R. Crim. P. 3.850"},
			forumHints:  []string{"Circuit Court of the Eleventh Judicial Circuit, Miami-Dade County, Florida"},
			wantIssues:  false,
		},
		{
			name:        "illinois act in an illinois circuit court",
			statuteRefs: []string{"725 ILCS 5/122-1"},
			forumHints:  []string{"Circuit Court of Cook County, Illinois"},
			wantIssues:  false,
		},
		{
			name:        "federal forum without state statute",
			statuteRefs: []string{"28 U.S.C. § 1983"},
			forumHints:  []string{"Ninth Circuit"},
			wantIssues:  false,
		},
		{
			name:        "no statutes at all",
			statuteRefs: nil,
			forumHints:  []string{"Ninth Circuit"},
			wantIssues:  false,
		},
		{
			name:        "no forum hints",
			statuteRefs: []string{"Cal. Penal Code § 1473"},
			forumHints:  nil,
			wantIssues:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues := DetectJurisdictionConflict(tt.statuteRefs, tt.forumHints)
			if issues == nil {
				t.Fatal("issues must be a non-nil slice")
			}
			if tt.wantIssues && len(issues) == 0 {
				t.Errorf("expected a conflict, got none")
			}
			if !tt.wantIssues && len(issues) > 0 {
				t.Errorf("expected no conflict, got %v", issues)
			}
		})
	}
}

func TestDetectJurisdictionConflictMessage(t *testing.T) {
	issues := DetectJurisdictionConflict(
		[]string{"Cal. Penal Code § 1473"},
		[]string{"Ninth Circuit"},
	)
	if len(issues) != 1 {
		t.Fatalf("expected one issue, got %d", len(issues))
	}
	msg := issues[0]
	for _, fragment := range []string{"Jurisdiction conflict", "California", "Ninth Circuit", "state petition or a federal habeas"} {
		if !strings.Contains(msg, fragment) {
			t.Errorf("issue missing %q:\n%s", fragment, msg)
		}
	}
}
