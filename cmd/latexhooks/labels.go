package main

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/latexhooks/latexhooks"
)

func init() {
	ensureCmd.Run = ensureLabels
	rootCmd.AddCommand(&ensureCmd.Command)
}

var ensureCmd = struct {
	cobra.Command
}{
	Command: cobra.Command{
		Use:   "ensure-labels [flags] file...",
		Short: "Check that sections are followed by their canonical label",
		Long: `Check that every \section, \subsection and \subsubsection is
immediately followed by a \label matching the canonical slug of its title.
Findings go to stdout as "file:line message"; files that cannot be read are
reported on stderr. The command exits non-zero when any file has a label
mismatch or could not be processed. Unprocessable sections are warnings
only.`,
		Args: cobra.ArbitraryArgs,
	},
}

type fileStatus int

const (
	allLabelsMatch fileStatus = iota
	foundMismatch
)

func ensureLabels(cmd *cobra.Command, files []string) {
	if !ensureFiles(files, os.Stdout, os.Stderr) {
		os.Exit(1)
	}
}

// ensureFiles checks each file independently: a file that cannot be read or
// does not pass never stops the remaining ones. It reports whether every
// file could be read and all labels match.
func ensureFiles(files []string, out, errOut io.Writer) (pass bool) {
	pass = true
	for _, file := range files {
		switch status, err := ensureFile(file, out); {
		case err != nil:
			pass = false
			reportFileError(errOut, file, err)
		case status == foundMismatch:
			pass = false
		}
	}
	return pass
}

func ensureFile(file string, out io.Writer) (fileStatus, error) {
	raw, err := os.ReadFile(file)
	if err != nil {
		return allLabelsMatch, errors.WithMessage(err, "reading document")
	}
	chk := latexhooks.LabelCheck{OnFinding: func(f latexhooks.Finding) {
		fmt.Fprintf(out, "%s:%d %s\n", file, f.Line, f)
	}}
	if chk.Text(string(raw)) {
		return foundMismatch, nil
	}
	return allLabelsMatch, nil
}

// reportFileError prints err and its cause chain, one line per cause.
// Wrappers therefore add plain messages, not extra chain nodes.
func reportFileError(w io.Writer, file string, err error) {
	fmt.Fprintf(w, "Error in file %s\n  %s\n", file, err)
	for c := stderrors.Unwrap(err); c != nil; c = stderrors.Unwrap(c) {
		fmt.Fprintf(w, "  Caused by: %s\n", c)
	}
}
