package latexhooks

import "strings"

// SectionKind is the nesting level of a sectioning command.
type SectionKind int

const (
	KindSection SectionKind = iota + 1
	KindSubsection
	KindSubsubsection
)

func (k SectionKind) String() string {
	switch k {
	case KindSection:
		return "section"
	case KindSubsection:
		return "subsection"
	case KindSubsubsection:
		return "subsubsection"
	}
	return "unknown"
}

// SectionMatch is one sectioning construct found in a document. Either Kind
// and Title are set, or the construct could not be delimited reliably and
// Unparsable holds its raw text up to the end of the line, with Kind zero.
type SectionMatch struct {
	// Byte position of the sectioning command's backslash.
	Offset int
	Kind   SectionKind
	// Raw title text, possibly still containing LaTeX commands.
	Title string
	// Trailing comment on the title line, including the '%'. Empty when
	// there is none.
	Comment string
	// Label identifier of the \label directly following the section, if
	// any. A present but empty identifier sets HasLabel with Label "".
	Label    string
	HasLabel bool
	// Raw text of a section-like construct whose title could not be
	// extracted. Set iff Kind is zero.
	Unparsable string
}

// ScanSections returns a scanner that yields the sectioning constructs of
// text in document order. Rescanning is starting over with a new scanner.
func ScanSections(text string) *SectionScanner {
	return &SectionScanner{text: text}
}

// SectionScanner is a lazy, finite sequence of SectionMatch values. It
// tolerates any input; constructs it cannot delimit come out as unparsable
// matches, never as errors.
type SectionScanner struct {
	text string
	pos  int
}

// Title braces plus two levels of nesting inside. Deeper titles are refused
// rather than guessed at.
const maxTitleDepth = 3

// Longest name first so that \subsection is not taken for \section.
var sectionCommands = []struct {
	name string
	kind SectionKind
}{
	{"subsubsection", KindSubsubsection},
	{"subsection", KindSubsection},
	{"section", KindSection},
}

// Next returns the next sectioning construct, if any.
func (sc *SectionScanner) Next() (SectionMatch, bool) {
	for sc.pos < len(sc.text) {
		rel := strings.IndexByte(sc.text[sc.pos:], '\\')
		if rel < 0 {
			break
		}
		at := sc.pos + rel
		kind, n := sectionCommandAt(sc.text, at)
		if kind == 0 || !onlySpaceBefore(sc.text, at) {
			sc.pos = at + 1
			continue
		}
		m, resume := capture(sc.text, at, kind, at+1+n)
		sc.pos = resume
		return m, true
	}
	sc.pos = len(sc.text)
	return SectionMatch{}, false
}

func sectionCommandAt(text string, at int) (SectionKind, int) {
	rest := text[at+1:]
	for _, c := range sectionCommands {
		if strings.HasPrefix(rest, c.name) {
			return c.kind, len(c.name)
		}
	}
	return 0, 0
}

// capture reads one sectioning construct whose command name ends before p.
// It returns the match and the position scanning continues at.
func capture(text string, start int, kind SectionKind, p int) (SectionMatch, int) {
	m := SectionMatch{Offset: start}
	if p < len(text) && text[p] == '*' {
		p++
	}
	for p < len(text) && text[p] == ' ' {
		p++
	}
	title, end, ok := braceGroup(text, p)
	if !ok {
		eol := endOfLine(text, p)
		m.Unparsable = text[p:eol]
		return m, eol
	}
	m.Kind = kind
	m.Title = title
	q := end
	for q < len(text) && isLineSpace(text[q]) {
		q++
	}
	if q < len(text) && text[q] == '%' {
		eol := endOfLine(text, q)
		m.Comment = text[q:eol]
		q = eol
	}
	if label, lend, ok := labelAt(text, q); ok {
		m.Label = label
		m.HasLabel = true
		return m, lend
	}
	return m, q
}

// braceGroup extracts the content of the brace group starting at p. The
// group may contain groups nested two levels deep at most; content may span
// lines. ok is false when text[p] is no opening brace, when the nesting goes
// deeper, or when the group never closes.
func braceGroup(text string, p int) (content string, end int, ok bool) {
	if p >= len(text) || text[p] != '{' {
		return "", 0, false
	}
	depth := 0
	for i := p; i < len(text); i++ {
		switch text[i] {
		case '{':
			if depth++; depth > maxTitleDepth {
				return "", 0, false
			}
		case '}':
			if depth--; depth == 0 {
				return text[p+1 : i], i + 1, true
			}
		}
	}
	return "", 0, false
}

// labelAt looks for a \label{...} directly after position q, on the same
// line or, after a single line break, on the next one. The identifier runs
// to the last '}' of the label's line, which must be its final character.
func labelAt(text string, q int) (label string, end int, ok bool) {
	r := q
	if r < len(text) && text[r] == '\n' {
		r++
	}
	for r < len(text) && isLineSpace(text[r]) {
		r++
	}
	const tok = `\label{`
	if !strings.HasPrefix(text[r:], tok) {
		return "", 0, false
	}
	r += len(tok)
	eol := endOfLine(text, r)
	if eol == r || text[eol-1] != '}' {
		return "", 0, false
	}
	return text[r : eol-1], eol, true
}

// onlySpaceBefore tells whether position at is preceded only by non-newline
// whitespace on its line.
func onlySpaceBefore(text string, at int) bool {
	for i := at - 1; i >= 0; i-- {
		if text[i] == '\n' {
			return true
		}
		if !isLineSpace(text[i]) {
			return false
		}
	}
	return true
}

func isLineSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\v', '\f':
		return true
	}
	return false
}

func endOfLine(text string, p int) int {
	if i := strings.IndexByte(text[p:], '\n'); i >= 0 {
		return p + i
	}
	return len(text)
}
