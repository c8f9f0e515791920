package latexhooks

import (
	"regexp"

	slugify "github.com/mozillazg/go-slugify"
)

func (k SectionKind) labelPrefix() string {
	switch k {
	case KindSection:
		return "sec"
	case KindSubsection:
		return "ssec"
	case KindSubsubsection:
		return "sssec"
	}
	return "unknwn"
}

// reCommand matches a LaTeX command invocation with one required and one
// optional brace argument; the required argument may contain one more level
// of brace groups. Group 1 is the first argument.
var reCommand = regexp.MustCompile(
	`\\\w+\{([^{}]*(?:\{[^{}]*\}[^{}]*)*)\}(?:\{[^{}]*(?:\{[^{}]*\}[^{}]*)*\})?`)

// SlugifyLabel derives the canonical label for a section title: the kind
// prefix, a colon, and the title lowercased, transliterated to ASCII and
// hyphenated. Embedded LaTeX commands are reduced to their first argument
// beforehand.
func SlugifyLabel(kind SectionKind, title string) string {
	return kind.labelPrefix() + ":" + slugify.Slugify(stripCommands(title))
}

// stripCommands rewrites every LaTeX command invocation to its first
// argument until the title no longer changes. Commands with a second brace
// argument lose it; \texorpdfstring{full}{short} keeps "full". The
// iteration cap guards against input the rewriting does not converge on.
func stripCommands(title string) string {
	for i := len(title) + 1; i > 0; i-- {
		next := reCommand.ReplaceAllString(title, "$1")
		if next == title {
			break
		}
		title = next
	}
	return title
}
