package latexhooks

import (
	"regexp"
	"strings"

	"git.fractalqb.de/fractalqb/icontainer/islist"
)

// reLabelDef matches one \label definition; group 1 is the identifier with
// surrounding whitespace trimmed.
var reLabelDef = regexp.MustCompile(`\\label\{\s*([^\s}]*?)\s*\}`)

// LabelUse is one \label definition found in a file.
type LabelUse struct {
	File string
	// 1-based line of the definition.
	Line int
	// Span of the definition within the context line.
	Start, End int
	// The full line containing the definition.
	Context string

	lsNext *LabelUse
}

// ListNext to implement intrusive singly linked list
func (u *LabelUse) ListNext() islist.Node { return u.lsNext }

// SetListNext to implement intrusive singly linked list
func (u *LabelUse) SetListNext(n islist.Node) {
	if n == nil {
		u.lsNext = nil
	} else {
		u.lsNext = n.(*LabelUse)
	}
}

// LabelIndex collects \label definitions over any number of files and finds
// identifiers that are defined more than once. The zero value is ready for
// use.
type LabelIndex struct {
	names []string // identifiers in order of first definition
	uses  map[string]*islist.List
}

// AddFile records all \label definitions of one document.
func (ix *LabelIndex) AddFile(file, text string) {
	if ix.uses == nil {
		ix.uses = make(map[string]*islist.List)
	}
	for i, line := range strings.Split(text, "\n") {
		for _, m := range reLabelDef.FindAllStringSubmatchIndex(line, -1) {
			use := &LabelUse{
				File:    file,
				Line:    i + 1,
				Start:   m[0],
				End:     m[1],
				Context: line,
			}
			id := line[m[2]:m[3]]
			if ls := ix.uses[id]; ls == nil {
				ix.uses[id] = islist.New(use)
				ix.names = append(ix.names, id)
			} else {
				ls.PushBack(use)
			}
		}
	}
}

// Duplicates calls fn for every identifier with more than one definition,
// in order of first definition, and reports whether there were any. The
// uses passed to fn keep the order the definitions were added in.
func (ix *LabelIndex) Duplicates(fn func(label string, uses []*LabelUse)) (found bool) {
	for _, id := range ix.names {
		ls := ix.uses[id]
		if ls.Len() < 2 {
			continue
		}
		found = true
		if fn == nil {
			continue
		}
		uses := make([]*LabelUse, 0, ls.Len())
		for u := ls.Front().(*LabelUse); u != nil; u = u.lsNext {
			uses = append(uses, u)
		}
		fn(id, uses)
	}
	return found
}
