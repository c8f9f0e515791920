package main

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/latexhooks/latexhooks"
)

func init() {
	uniqueCmd.Run = uniqueLabels
	rootCmd.AddCommand(&uniqueCmd.Command)
}

var uniqueCmd = struct {
	cobra.Command
}{
	Command: cobra.Command{
		Use:   "unique-labels [flags] file...",
		Short: "Check that no \\label identifier is defined twice",
		Args:  cobra.ArbitraryArgs,
	},
}

func uniqueLabels(cmd *cobra.Command, files []string) {
	files = slices.Clone(files)
	slices.Sort(files)
	fail := false
	var ix latexhooks.LabelIndex
	for _, file := range files {
		raw, err := os.ReadFile(file)
		if err != nil {
			fail = true
			reportFileError(os.Stderr, file, errors.WithMessage(err, "reading document"))
			continue
		}
		ix.AddFile(file, string(raw))
	}
	dup := ix.Duplicates(func(label string, uses []*latexhooks.LabelUse) {
		fmt.Printf("Found multiple definitions for label %s\n", label)
		file := ""
		for _, u := range uses {
			if u.File != file {
				file = u.File
				fmt.Println(file)
			}
			fmt.Printf("%5d | %s\n      | %s%s\n",
				u.Line, u.Context,
				strings.Repeat(" ", u.Start),
				strings.Repeat("^", u.End-u.Start))
		}
		fmt.Println()
	})
	if dup {
		fmt.Fprintln(os.Stderr, "Found multiple definitions of the same label")
	}
	if dup || fail {
		os.Exit(1)
	}
}
