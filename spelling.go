package latexhooks

import (
	"fmt"
	"regexp"
	"strings"
)

// SpellingRule names a set of spelling variants, given as a regular
// expression that matches all of them.
type SpellingRule struct {
	Name    string
	Pattern *regexp.Regexp
}

// EmphRule builds the rule that phrase appears consistently with or without
// a surrounding \emph{...}. "et al." may be written as "et al." or as
// "\emph{et al.}", but not both.
func EmphRule(phrase string) SpellingRule {
	return SpellingRule{
		Name: phrase,
		Pattern: regexp.MustCompile(
			`(?:\\emph\{)?(?:` + regexp.QuoteMeta(phrase) + `)(?:\})?`),
	}
}

// RegexRule compiles a custom rule from a user-supplied pattern.
func RegexRule(name, pattern string) (SpellingRule, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return SpellingRule{}, fmt.Errorf("rule %s: %w", name, err)
	}
	return SpellingRule{Name: name, Pattern: re}, nil
}

// SpellingMatch is one occurrence of a rule's phrase.
type SpellingMatch struct {
	File string
	// 1-based line of the occurrence.
	Line int
	// Span of the occurrence within the context line.
	Start, End int
	// The matched variant.
	Text string
	// The full line containing the occurrence.
	Context string
}

// Spelling searches documents for the variants of its rules. Set Rules,
// feed documents with AddFile, then ask for Inconsistencies. Not for
// concurrent use.
type Spelling struct {
	Rules []SpellingRule

	names   []string // rule names in order of first match
	matches map[string][]SpellingMatch
}

// AddFile records all rule matches of one document.
func (sp *Spelling) AddFile(file, text string) {
	if sp.matches == nil {
		sp.matches = make(map[string][]SpellingMatch)
	}
	for i, line := range strings.Split(text, "\n") {
		for _, rule := range sp.Rules {
			for _, m := range rule.Pattern.FindAllStringIndex(line, -1) {
				if _, ok := sp.matches[rule.Name]; !ok {
					sp.names = append(sp.names, rule.Name)
				}
				sp.matches[rule.Name] = append(sp.matches[rule.Name], SpellingMatch{
					File:    file,
					Line:    i + 1,
					Start:   m[0],
					End:     m[1],
					Text:    line[m[0]:m[1]],
					Context: line,
				})
			}
		}
	}
}

// Inconsistencies calls fn for each rule whose occurrences are not all
// spelled the same and reports whether there were any. Matches keep the
// order they were added in.
func (sp *Spelling) Inconsistencies(fn func(name string, ms []SpellingMatch)) (found bool) {
	for _, name := range sp.names {
		ms := sp.matches[name]
		variants := make(map[string]bool)
		for _, m := range ms {
			variants[m.Text] = true
		}
		if len(variants) < 2 {
			continue
		}
		found = true
		if fn != nil {
			fn(name, ms)
		}
	}
	return found
}

// VariantIDs numbers the distinct spellings of ms in order of first
// occurrence, for stable presentation.
func VariantIDs(ms []SpellingMatch) map[string]int {
	ids := make(map[string]int)
	for _, m := range ms {
		if _, ok := ids[m.Text]; !ok {
			ids[m.Text] = len(ids)
		}
	}
	return ids
}
