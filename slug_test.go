package latexhooks

import "testing"

func TestSlugifyLabel(t *testing.T) {
	check := func(t *testing.T, kind SectionKind, title, want string) {
		t.Helper()
		if got := SlugifyLabel(kind, title); got != want {
			t.Errorf("SlugifyLabel(%s, %q) = %q, want %q", kind, title, got, want)
		}
	}

	t.Run("simple ascii", func(t *testing.T) {
		check(t, KindSection, "Word", "sec:word")
		check(t, KindSection, "Hello World", "sec:hello-world")
		check(t, KindSubsubsection, "Many Many words here",
			"sssec:many-many-words-here")
	})
	t.Run("nested commands", func(t *testing.T) {
		check(t, KindSection, `\texttt{Abc}`, "sec:abc")
		check(t, KindSubsection, `Something \emph{very} important`,
			"ssec:something-very-important")
	})
	t.Run("double nested commands", func(t *testing.T) {
		check(t, KindSubsubsection,
			`Formalization of \texorpdfstring{\acs{knn}}{k-NN}`,
			"sssec:formalization-of-knn")
	})
	t.Run("unknown kind", func(t *testing.T) {
		check(t, SectionKind(0), "Word", "unknwn:word")
	})
	t.Run("empty title", func(t *testing.T) {
		check(t, KindSection, "", "sec:")
		check(t, KindSection, `\mbox{}`, "sec:")
	})
	t.Run("transliteration", func(t *testing.T) {
		check(t, KindSection, "Überblick", "sec:uberblick")
	})
}

func TestStripCommands(t *testing.T) {
	check := func(t *testing.T, title, want string) {
		t.Helper()
		if got := stripCommands(title); got != want {
			t.Errorf("stripCommands(%q) = %q, want %q", title, got, want)
		}
	}

	t.Run("plain text is a fixpoint", func(t *testing.T) {
		check(t, "Hello World", "Hello World")
	})
	t.Run("second argument is dropped", func(t *testing.T) {
		check(t, `\texorpdfstring{full}{short}`, "full")
	})
	t.Run("rewrites to fixpoint", func(t *testing.T) {
		check(t, `\texorpdfstring{\acs{knn}}{k-NN}`, "knn")
	})
	t.Run("command without braces stays", func(t *testing.T) {
		check(t, `A \& B`, `A \& B`)
	})
}
