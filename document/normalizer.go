// Package document post-processes generated draft text into canonical
// court-filing form and checks it against client-advocacy guardrails. All
// functions are pure over their string inputs and safe to call concurrently
// for different drafts.
package document

import (
	"fmt"
	"regexp"
	"strings"

	"courtdraft-backend/jurisdiction"
)

// reliefTrailer is the constant sentence appended to every requested-relief
// section.
const reliefTrailer = "Any other relief this Court deems just and proper."

// transform is one step of the normalization pipeline. Each transform must
// be idempotent so the composed Normalize is a fixed point on its own output.
type transform func(text, documentType string) string

// pipeline is the ordered transform list. Heading canonicalization runs
// before section completion so that a recognized variant heading ("Statement
// of facts") counts as present and is not duplicated by a stub.
var pipeline = []transform{
	normalizeTitle,
	normalizeHeadings,
	completeSections,
	normalizeRelief,
	stripStrayLabels,
	cleanupFormatting,
}

// Normalize rewrites a raw draft into canonical structural form for the
// given document type. Running Normalize on its own output changes nothing.
func Normalize(draft, documentType string) string {
	text := draft
	for _, t := range pipeline {
		text = t(text, documentType)
	}
	return text
}

var boldTitleRE = regexp.MustCompile(`^\*\*[^a-z*]+\*\*$`)

// normalizeTitle locates the first line acting as a title, or synthesizes
// one from the document type, and renders it upper-case, bold, and set off
// by blank lines.
func normalizeTitle(text, documentType string) string {
	lines := strings.Split(text, "\n")

	idx := -1
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if boldTitleRE.MatchString(trimmed) {
			// Already normalized.
			return text
		}
		// A short first line that is not a canonical section heading is
		// treated as the title.
		if len(trimmed) <= 80 && !isCanonicalHeading(trimmed) {
			idx = i
		}
		break
	}

	if idx == -1 {
		title := strings.ToUpper(strings.TrimSpace(documentType))
		if title == "" {
			title = "LEGAL DOCUMENT"
		}
		return "**" + title + "**\n\n" + strings.TrimLeft(text, "\n")
	}

	title := strings.ToUpper(strings.Trim(strings.TrimSpace(lines[idx]), "*# "))
	rest := strings.TrimLeft(strings.Join(lines[idx+1:], "\n"), "\n")
	return "**" + title + "**\n\n" + rest
}

func isCanonicalHeading(line string) bool {
	upper := strings.ToUpper(strings.TrimSpace(line))
	for _, section := range jurisdiction.CanonicalSections {
		if upper == section {
			return true
		}
	}
	return false
}

// headingVariants maps known heading spellings to their canonical all-caps
// form. Patterns anchor to whole lines, tolerating roman-numeral prefixes
// and trailing colons.
var headingVariants = []struct {
	re        *regexp.Regexp
	canonical string
}{
	{regexp.MustCompile(`(?mi)^\s*(?:[IVX]+\.\s*)?introduction\s*:?\s*$`), "INTRODUCTION"},
	{regexp.MustCompile(`(?mi)^\s*(?:[IVX]+\.\s*)?jurisdiction\s*(?:and|&)\s*venue\s*:?\s*$`), "JURISDICTION AND VENUE"},
	{regexp.MustCompile(`(?mi)^\s*(?:[IVX]+\.\s*)?statement\s+of\s+(?:the\s+)?facts\s*:?\s*$`), "STATEMENT OF FACTS"},
	{regexp.MustCompile(`(?mi)^\s*(?:[IVX]+\.\s*)?(?:facts)\s*:?\s*$`), "STATEMENT OF FACTS"},
	{regexp.MustCompile(`(?mi)^\s*(?:[IVX]+\.\s*)?procedural\s+history\s*:?\s*$`), "PROCEDURAL HISTORY"},
	{regexp.MustCompile(`(?mi)^\s*(?:[IVX]+\.\s*)?legal\s+standard\s*:?\s*$`), "LEGAL STANDARD"},
	{regexp.MustCompile(`(?mi)^\s*(?:[IVX]+\.\s*)?argument\s*:?\s*$`), "ARGUMENT"},
	{regexp.MustCompile(`(?mi)^\s*(?:[IVX]+\.\s*)?(?:requested\s+relief|relief\s+requested|prayer\s+for\s+relief)\s*:?\s*$`), "REQUESTED RELIEF"},
	{regexp.MustCompile(`(?mi)^\s*(?:[IVX]+\.\s*)?conclusion\s*:?\s*$`), "CONCLUSION"},
	{regexp.MustCompile(`(?mi)^\s*(?:[IVX]+\.\s*)?certificate\s+of\s+service\s*:?\s*$`), "CERTIFICATE OF SERVICE"},
}

// normalizeHeadings rewrites recognized heading variants to canonical
// all-caps form.
func normalizeHeadings(text, _ string) string {
	for _, hv := range headingVariants {
		text = hv.re.ReplaceAllString(text, hv.canonical)
	}
	return text
}

// completeSections inserts a stub for every canonical section missing from
// the draft. Body sections go before the CONCLUSION heading when one exists;
// the CERTIFICATE OF SERVICE and any stub with no conclusion to anchor on
// are appended at the end. Re-running never duplicates a section.
func completeSections(text, _ string) string {
	upper := strings.ToUpper(text)

	for _, section := range jurisdiction.CanonicalSections {
		if strings.Contains(upper, section) {
			continue
		}
		stub := fmt.Sprintf("%s\n\n[INSERT %s CONTENT]\n", section, section)

		conclusionIdx := strings.Index(upper, "CONCLUSION")
		if section != "CERTIFICATE OF SERVICE" && conclusionIdx >= 0 {
			// Anchor to the start of the conclusion heading's line.
			lineStart := strings.LastIndex(text[:conclusionIdx], "\n") + 1
			text = text[:lineStart] + stub + "\n" + text[lineStart:]
		} else {
			text = strings.TrimRight(text, "\n") + "\n\n" + stub
		}
		upper = strings.ToUpper(text)
	}
	return text
}

// normalizeRelief replaces the body of the REQUESTED RELIEF section with the
// standard relief sentence for the document type plus the constant trailer,
// collapsing any duplicate trailers left by earlier passes.
func normalizeRelief(text, documentType string) string {
	lines := strings.Split(text, "\n")

	start := -1
	for i, line := range lines {
		if strings.TrimSpace(line) == "REQUESTED RELIEF" {
			start = i
			break
		}
	}
	if start == -1 {
		return text
	}

	end := len(lines)
	for i := start + 1; i < len(lines); i++ {
		if isCanonicalHeading(lines[i]) {
			end = i
			break
		}
	}

	body := []string{"", jurisdiction.StandardRelief(documentType), "", reliefTrailer, ""}

	out := make([]string, 0, len(lines))
	out = append(out, lines[:start+1]...)
	out = append(out, body...)
	out = append(out, lines[end:]...)
	result := strings.Join(out, "\n")

	// Collapse accidental runs of duplicate trailers.
	return duplicateTrailerRE.ReplaceAllString(result, reliefTrailer)
}

var duplicateTrailerRE = regexp.MustCompile(regexp.QuoteMeta(reliefTrailer) + `(\s*` + regexp.QuoteMeta(reliefTrailer) + `)+`)

var strayLabelRE = regexp.MustCompile(`(?m)^\s*(?:Document\s+Title|Title|Type|Document\s+Type)\s*:\s*.*$\n?`)

// stripStrayLabels removes leftover scaffolding labels the generator
// sometimes emits above the document body.
func stripStrayLabels(text, _ string) string {
	return strayLabelRE.ReplaceAllString(text, "")
}

// courtNameFixes corrects known wrong court-name renderings for states whose
// trial court is not a "District Court" (or not a "Superior Court").
var courtNameFixes = []struct {
	wrong *regexp.Regexp
	right string
}{
	{regexp.MustCompile(`(?i)California District Court`), "California Superior Court"},
	{regexp.MustCompile(`(?i)District Court of California`), "Superior Court of California"},
	{regexp.MustCompile(`(?i)New York District Court`), "New York Supreme Court"},
	{regexp.MustCompile(`(?i)California Circuit Court`), "California Superior Court"},
	{regexp.MustCompile(`(?i)Texas Superior Court`), "Texas District Court"},
	{regexp.MustCompile(`(?i)Florida District Court`), "Florida Circuit Court"},
	{regexp.MustCompile(`(?i)Illinois District Court`), "Illinois Circuit Court"},
	{regexp.MustCompile(`(?i)Pennsylvania District Court`), "Pennsylvania Court of Common Pleas"},
}

var blankRunRE = regexp.MustCompile(`\n{4,}`)

// cleanupFormatting applies the final mechanical fixes: court-name
// corrections, paragraph numbering in the facts and argument sections,
// heading spacing, and blank-line collapsing.
func cleanupFormatting(text, _ string) string {
	for _, fix := range courtNameFixes {
		text = fix.wrong.ReplaceAllString(text, fix.right)
	}

	text = numberSectionParagraphs(text, "STATEMENT OF FACTS")
	text = numberSectionParagraphs(text, "ARGUMENT")
	text = spaceHeadings(text)
	text = blankRunRE.ReplaceAllString(text, "\n\n\n")
	return text
}

var numberedRE = regexp.MustCompile(`^\d+\.\s`)

// numberSectionParagraphs numbers the paragraphs of one canonical section.
// Already-numbered paragraphs keep their numbers, so a second pass is a
// no-op when the first pass numbered everything.
func numberSectionParagraphs(text, section string) string {
	lines := strings.Split(text, "\n")

	start := -1
	for i, line := range lines {
		if strings.TrimSpace(line) == section {
			start = i
			break
		}
	}
	if start == -1 {
		return text
	}

	end := len(lines)
	for i := start + 1; i < len(lines); i++ {
		if isCanonicalHeading(lines[i]) {
			end = i
			break
		}
	}

	n := 0
	newParagraph := true
	for i := start + 1; i < end; i++ {
		trimmed := strings.TrimSpace(lines[i])
		if trimmed == "" {
			newParagraph = true
			continue
		}
		if strings.HasPrefix(trimmed, "[INSERT") {
			newParagraph = false
			continue
		}
		if newParagraph {
			n++
			if !numberedRE.MatchString(trimmed) {
				lines[i] = fmt.Sprintf("%d. %s", n, trimmed)
			}
			newParagraph = false
		}
	}
	return strings.Join(lines, "\n")
}

// spaceHeadings guarantees exactly one blank line before and after each
// canonical heading.
func spaceHeadings(text string) string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	for i, line := range lines {
		if isCanonicalHeading(line) {
			if len(out) > 0 && strings.TrimSpace(out[len(out)-1]) != "" {
				out = append(out, "")
			}
			out = append(out, strings.TrimSpace(line))
			if i+1 < len(lines) && strings.TrimSpace(lines[i+1]) != "" {
				out = append(out, "")
			}
			continue
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}
