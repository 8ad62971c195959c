package document

import (
	"strings"
	"testing"

	"courtdraft-backend/jurisdiction"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const habeasType = "Petition for Writ of Habeas Corpus"

func sampleDraft() string {
	return `Petition for Writ of Habeas Corpus

Introduction

Petitioner was convicted in 2019 and now seeks relief.

Jurisdiction & Venue

This Court has jurisdiction over the petition.

Statement of the Facts

Petitioner was arrested on 03/15/2019.

The trial concluded on 09/01/2019.

Argument

The conviction rests on inadmissible evidence.

Prayer for Relief

Petitioner asks the court for relief.

Conclusion

For the foregoing reasons the petition should be granted.`
}

func TestNormalizeCanonicalizesStructure(t *testing.T) {
	got := Normalize(sampleDraft(), habeasType)

	// Title is bold upper case on the first line
	first := strings.SplitN(got, "\n", 2)[0]
	assert.Equal(t, "**PETITION FOR WRIT OF HABEAS CORPUS**", first)

	// Every canonical section is present exactly once
	for _, section := range jurisdiction.CanonicalSections {
		count := strings.Count(got, "\n"+section+"\n")
		if strings.HasPrefix(got, section+"\n") {
			count++
		}
		assert.Equal(t, 1, count, "section %s should appear exactly once:\n%s", section, got)
	}

	// Variant headings were rewritten, not duplicated
	assert.NotContains(t, got, "Prayer for Relief")
	assert.NotContains(t, got, "Jurisdiction & Venue")
	assert.NotContains(t, got, "Statement of the Facts")

	// Missing sections got stubs
	assert.Contains(t, got, "[INSERT PROCEDURAL HISTORY CONTENT]")
	assert.Contains(t, got, "[INSERT LEGAL STANDARD CONTENT]")
	assert.Contains(t, got, "[INSERT CERTIFICATE OF SERVICE CONTENT]")

	// Relief was standardized with the trailer
	assert.Contains(t, got, "vacate the judgment of conviction")
	assert.Contains(t, got, "Any other relief this Court deems just and proper.")
}

func TestNormalizeIdempotent(t *testing.T) {
	drafts := []string{
		sampleDraft(),
		"",
		"just some text with no structure at all",
		"INTRODUCTION\n\nAlready canonical.\n\nCONCLUSION\n\nDone.",
	}

	for _, draft := range drafts {
		once := Normalize(draft, habeasType)
		twice := Normalize(once, habeasType)
		require.Equal(t, once, twice, "Normalize is not a fixed point on its own output for draft %q", draft)
	}
}

func TestNormalizeSectionOrdering(t *testing.T) {
	got := Normalize(sampleDraft(), habeasType)

	// Stubbed body sections land before CONCLUSION; the certificate of
	// service goes last.
	conclusionIdx := strings.Index(got, "CONCLUSION")
	historyIdx := strings.Index(got, "PROCEDURAL HISTORY")
	certIdx := strings.Index(got, "CERTIFICATE OF SERVICE")

	require.GreaterOrEqual(t, conclusionIdx, 0)
	require.GreaterOrEqual(t, historyIdx, 0)
	require.GreaterOrEqual(t, certIdx, 0)
	assert.Less(t, historyIdx, conclusionIdx)
	assert.Greater(t, certIdx, conclusionIdx)
}

func TestNormalizeEmptyDraft(t *testing.T) {
	got := Normalize("", habeasType)

	assert.True(t, strings.HasPrefix(got, "**PETITION FOR WRIT OF HABEAS CORPUS**"))
	for _, section := range jurisdiction.CanonicalSections {
		assert.Contains(t, got, section)
	}
}

func TestNormalizeReliefReplacement(t *testing.T) {
	draft := `Motion to Dismiss

REQUESTED RELIEF

Give me everything I want plus damages and attorney fees.

CONCLUSION

Done.`

	got := Normalize(draft, "Motion to Dismiss")

	assert.NotContains(t, got, "Give me everything I want")
	assert.Contains(t, got, "dismiss the complaint in its entirety with prejudice")
	assert.Equal(t, 1, strings.Count(got, "Any other relief this Court deems just and proper."))
}

func TestNormalizeCollapsesDuplicateTrailers(t *testing.T) {
	draft := `Motion to Dismiss

REQUESTED RELIEF

Relief body.
Any other relief this Court deems just and proper.
Any other relief this Court deems just and proper.

CONCLUSION

Done.`

	got := Normalize(draft, "Motion to Dismiss")
	assert.Equal(t, 1, strings.Count(got, "Any other relief this Court deems just and proper."))
}

func TestNormalizeStripsStrayLabels(t *testing.T) {
	draft := `Motion to Dismiss

Title: Motion to Dismiss
Type: motion

INTRODUCTION

Body text.`

	got := Normalize(draft, "Motion to Dismiss")
	assert.NotContains(t, got, "Title:")
	assert.NotContains(t, got, "Type:")
}

func TestNormalizeFixesCourtNames(t *testing.T) {
	draft := `Motion to Dismiss

INTRODUCTION

This motion is filed in the California District Court.`

	got := Normalize(draft, "Motion to Dismiss")
	assert.Contains(t, got, "California Superior Court")
	assert.NotContains(t, got, "California District Court")
}

func TestNormalizeNumbersFactParagraphs(t *testing.T) {
	draft := `Petition for Writ of Habeas Corpus

STATEMENT OF FACTS

Petitioner was arrested without a warrant.

The arrest occurred at night.

ARGUMENT

The arrest was unlawful.

CONCLUSION

Done.`

	got := Normalize(draft, habeasType)
	assert.Contains(t, got, "1. Petitioner was arrested without a warrant.")
	assert.Contains(t, got, "2. The arrest occurred at night.")
	assert.Contains(t, got, "1. The arrest was unlawful.")

	// Re-normalizing keeps the numbering stable
	again := Normalize(got, habeasType)
	assert.Equal(t, got, again)
	assert.NotContains(t, again, "1. 1.")
}
