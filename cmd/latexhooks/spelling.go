package main

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/latexhooks/latexhooks"
)

func init() {
	spellCmd.Run = checkSpelling
	spellCmd.Flags().StringArrayVarP(&spellCmd.emph, "emph", "e", nil,
		"Check that the phrase appears with and without \\emph{..} consistently")
	spellCmd.Flags().StringArrayVarP(&spellCmd.regex, "regex", "r", nil,
		"Add a name=regex rule matching all variants of a phrase")
	spellCmd.Flags().StringVarP(&spellCmd.rules, "rules", "R", "",
		"Load rules from a YAML file")
	rootCmd.AddCommand(&spellCmd.Command)
}

var spellCmd = struct {
	cobra.Command
	emph  []string
	regex []string
	rules string
}{
	Command: cobra.Command{
		Use:   "consistent-spelling [flags] file...",
		Short: "Check that phrases are spelled consistently",
		Args:  cobra.ArbitraryArgs,
	},
}

// One color per spelling variant, cycling.
var variantColors = []*color.Color{
	color.New(color.FgRed),
	color.New(color.FgGreen),
	color.New(color.FgYellow),
	color.New(color.FgBlue),
	color.New(color.FgMagenta),
	color.New(color.FgCyan),
}

func checkSpelling(cmd *cobra.Command, files []string) {
	sp := latexhooks.Spelling{Rules: spellingRules()}
	if len(sp.Rules) == 0 {
		fmt.Fprintln(os.Stderr, "No rules specified. See --help for how to use them.")
		os.Exit(1)
	}
	files = slices.Clone(files)
	slices.Sort(files)
	fail := false
	for _, file := range files {
		raw, err := os.ReadFile(file)
		if err != nil {
			fail = true
			reportFileError(os.Stderr, file, errors.WithMessage(err, "reading document"))
			continue
		}
		sp.AddFile(file, string(raw))
	}
	found := sp.Inconsistencies(func(name string, ms []latexhooks.SpellingMatch) {
		ids := latexhooks.VariantIDs(ms)
		fmt.Printf("Found different spellings for: %s\n", name)
		file := ""
		for _, m := range ms {
			if m.File != file {
				file = m.File
				fmt.Println(file)
			}
			c := variantColors[ids[m.Text]%len(variantColors)]
			fmt.Printf("%s | %s\n      | %s%s\n",
				c.Sprintf("%5d", m.Line),
				m.Context,
				strings.Repeat(" ", m.Start),
				c.Sprint(strings.Repeat("^", m.End-m.Start)))
		}
		fmt.Println()
	})
	if found {
		fmt.Fprintln(os.Stderr, "Found different spellings")
	}
	if found || fail {
		os.Exit(1)
	}
}

func spellingRules() []latexhooks.SpellingRule {
	var rules []latexhooks.SpellingRule
	for _, p := range spellCmd.emph {
		rules = append(rules, latexhooks.EmphRule(p))
	}
	for _, nr := range spellCmd.regex {
		name, pattern, ok := strings.Cut(nr, "=")
		if !ok {
			fmt.Fprintf(os.Stderr, "invalid rule '%s', need name=regex\n", nr)
			os.Exit(1)
		}
		rule, err := latexhooks.RegexRule(name, pattern)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		rules = append(rules, rule)
	}
	if spellCmd.rules != "" {
		fromFile, err := latexhooks.LoadRules(spellCmd.rules)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		rules = append(rules, fromFile...)
	}
	return rules
}
