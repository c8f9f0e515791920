package latextest

import (
	"os"
	"path/filepath"
	"testing"
)

func writeDoc(t *testing.T, name, content string) string {
	t.Helper()
	file := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(file, []byte(content), 0666); err != nil {
		t.Fatal(err)
	}
	return file
}

func TestEnsureLabels(t *testing.T) {
	doc := writeDoc(t, "doc.tex", `\section{Hello World}
\label{sec:hello-world}

\subsection{Greetings}
\label{ssec:greetings}
`)
	EnsureLabels(t, doc)
}

func TestUniqueLabels(t *testing.T) {
	a := writeDoc(t, "a.tex", "\\section{One}\n\\label{sec:one}\n")
	b := writeDoc(t, "b.tex", "\\section{Two}\n\\label{sec:two}\n")
	UniqueLabels(t, a, b)
}
