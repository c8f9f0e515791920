package latexhooks

import "testing"

func TestLabelIndex(t *testing.T) {
	t.Run("duplicate across files", func(t *testing.T) {
		var ix LabelIndex
		ix.AddFile("a.tex", "\\section{One}\n\\label{sec:one}\n")
		ix.AddFile("b.tex", "text\n\\label{sec:one} more\n")
		var label string
		var uses []*LabelUse
		if !ix.Duplicates(func(l string, us []*LabelUse) {
			label, uses = l, us
		}) {
			t.Fatal("expect duplicates")
		}
		if label != "sec:one" {
			t.Errorf("unexpected label %q", label)
		}
		if len(uses) != 2 {
			t.Fatalf("expect 2 uses, got %d", len(uses))
		}
		if u := uses[0]; u.File != "a.tex" || u.Line != 2 || u.Start != 0 || u.End != 15 {
			t.Errorf("unexpected 1st use: %+v", u)
		}
		if u := uses[1]; u.File != "b.tex" || u.Line != 2 || u.Context != `\label{sec:one} more` {
			t.Errorf("unexpected 2nd use: %+v", u)
		}
	})
	t.Run("no duplicates", func(t *testing.T) {
		var ix LabelIndex
		ix.AddFile("a.tex", "\\label{sec:one}\n\\label{sec:two}\n")
		if ix.Duplicates(func(l string, _ []*LabelUse) {
			t.Errorf("unexpected duplicate %s", l)
		}) {
			t.Error("unexpected duplicates")
		}
	})
	t.Run("identifier whitespace is trimmed", func(t *testing.T) {
		var ix LabelIndex
		ix.AddFile("a.tex", "\\label{ sec:x }\n\\label{sec:x}\n")
		found := ix.Duplicates(func(l string, us []*LabelUse) {
			if l != "sec:x" {
				t.Errorf("unexpected label %q", l)
			}
			if len(us) != 2 {
				t.Errorf("expect 2 uses, got %d", len(us))
			}
		})
		if !found {
			t.Error("expect duplicates")
		}
	})
	t.Run("first definition order", func(t *testing.T) {
		var ix LabelIndex
		ix.AddFile("a.tex",
			"\\label{sec:b}\n\\label{sec:a}\n\\label{sec:a}\n\\label{sec:b}\n")
		var order []string
		ix.Duplicates(func(l string, _ []*LabelUse) { order = append(order, l) })
		if len(order) != 2 || order[0] != "sec:b" || order[1] != "sec:a" {
			t.Errorf("unexpected report order %v", order)
		}
	})
}
