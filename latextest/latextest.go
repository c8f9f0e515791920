// Package latextest supports enforcing latexhooks checks in Go tests, e.g.
// for repositories that embed LaTeX documentation:
//
//	func TestDocs(t *testing.T) {
//		latextest.EnsureLabels(t, "../doc/paper.tex")
//	}
package latextest

import (
	"os"
	"testing"

	"github.com/latexhooks/latexhooks"
)

// EnsureLabels fails t with one error per labeling finding in the given
// LaTeX files. Unprocessable sections are logged but do not fail the test.
func EnsureLabels(t *testing.T, files ...string) {
	t.Helper()
	for _, file := range files {
		raw, err := os.ReadFile(file)
		if err != nil {
			t.Error(err)
			continue
		}
		chk := latexhooks.LabelCheck{OnFinding: func(f latexhooks.Finding) {
			if f.Kind == latexhooks.Unprocessable {
				t.Logf("%s:%d %s", file, f.Line, f)
			} else {
				t.Errorf("%s:%d %s", file, f.Line, f)
			}
		}}
		chk.Text(string(raw))
	}
}

// UniqueLabels fails t when a \label identifier is defined more than once
// over the given files.
func UniqueLabels(t *testing.T, files ...string) {
	t.Helper()
	var ix latexhooks.LabelIndex
	for _, file := range files {
		raw, err := os.ReadFile(file)
		if err != nil {
			t.Error(err)
			continue
		}
		ix.AddFile(file, string(raw))
	}
	ix.Duplicates(func(label string, uses []*latexhooks.LabelUse) {
		for _, u := range uses {
			t.Errorf("%s:%d multiple definitions of label %s", u.File, u.Line, label)
		}
	})
}
