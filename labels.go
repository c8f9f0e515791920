package latexhooks

import (
	"fmt"
	"strings"
)

// SkipLabelMarker inside a section's trailing comment suppresses
// wrong-label findings for that one section. Any comment containing the
// text counts, it does not have to be a directive of its own.
const SkipLabelMarker = "skip-label"

// FindingKind classifies a Finding.
type FindingKind int

const (
	// A section-like construct whose title could not be delimited. A
	// warning, not a mismatch.
	Unprocessable FindingKind = iota
	// A section without a following \label.
	MissingLabel
	// A section whose \label differs from the canonical slug.
	WrongLabel
)

// Finding is one reportable condition of a label check.
type Finding struct {
	// 1-based line of the section in the checked document.
	Line int
	Kind FindingKind
	// Observed label, set for WrongLabel findings.
	Label string
	// Expected slug, set for MissingLabel and WrongLabel findings.
	Want string
}

func (f Finding) String() string {
	switch f.Kind {
	case MissingLabel:
		return fmt.Sprintf(`Missing Label, use \label{%s}`, f.Want)
	case WrongLabel:
		return fmt.Sprintf(`Wrong Label '%s', use \label{%s}`, f.Label, f.Want)
	}
	return "Unprocessable Section"
}

// LabelCheck verifies that sections carry their canonical label. The zero
// value is valid and can be reused for more than one document. It must not
// be used concurrently.
type LabelCheck struct {
	// OnFinding is called for each finding in document order. A nil
	// OnFinding only computes the result.
	OnFinding func(Finding)
}

// Text checks one document and reports whether it contains a label
// mismatch. Unprocessable sections are passed to OnFinding but do not count
// as mismatch; a document without sections passes.
func (chk *LabelCheck) Text(text string) (mismatch bool) {
	scn := ScanSections(text)
	for m, ok := scn.Next(); ok; m, ok = scn.Next() {
		line := lineAt(text, m.Offset)
		if m.Kind == 0 {
			chk.finding(Finding{Line: line, Kind: Unprocessable})
			continue
		}
		want := SlugifyLabel(m.Kind, m.Title)
		switch {
		case !m.HasLabel:
			mismatch = true
			chk.finding(Finding{Line: line, Kind: MissingLabel, Want: want})
		case m.Label != want:
			if strings.Contains(m.Comment, SkipLabelMarker) {
				break
			}
			mismatch = true
			chk.finding(Finding{
				Line:  line,
				Kind:  WrongLabel,
				Label: m.Label,
				Want:  want,
			})
		}
	}
	return mismatch
}

func (chk *LabelCheck) finding(f Finding) {
	if chk.OnFinding != nil {
		chk.OnFinding(f)
	}
}

// lineAt maps a byte offset to its 1-based line number. Offsets up to and
// including len(text) are valid; anything beyond is a contract violation by
// the caller.
func lineAt(text string, offset int) int {
	if offset > len(text) {
		panic(fmt.Sprintf("lineAt: offset %d beyond text length %d",
			offset, len(text)))
	}
	return strings.Count(text[:offset], "\n") + 1
}
