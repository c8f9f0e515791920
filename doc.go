/*
Package latexhooks checks LaTeX sources the way pre-commit hooks do: each
check reads one or more documents, reports human-readable findings and tells
whether the documents pass. The package contains the checks themselves; the
latexhooks command in cmd/latexhooks wires them to the command line and the
latextest package wires them into Go tests.

# Section Labels

The central check verifies that every sectioning command is immediately
followed by a \label whose identifier is the canonical slug of the section
title. The slug is the section kind prefix ("sec", "ssec" or "sssec"), a
colon, and the title text lowercased, transliterated to ASCII and hyphenated.
For

	\section{Hello World}

the expected label is

	\label{sec:hello-world}

Titles may contain LaTeX commands. They are stripped down to their first
argument before slugification, repeatedly, so that wrappers around commands
that themselves take arguments resolve too:

	\subsubsection{Formalization of \texorpdfstring{\acs{knn}}{k-NN}}
	\label{sssec:formalization-of-knn}

Sections are located by a small lexical scanner, not a LaTeX parser. The
scanner understands braces nested up to two levels deep inside a title.
Anything deeper cannot be delimited reliably; such a construct is reported as
an unprocessable section instead of being mis-read. An unprocessable section
is a warning, not a failure.

A trailing comment on the section line that contains the text "skip-label"
suppresses a wrong-label finding for that one section:

	\section{Hello World} % historic name, skip-label
	\label{sec:greeting}

# Unique Labels

LabelIndex collects every \label definition across a set of files and
reports identifiers that are defined more than once, with the defining lines
and the exact position of each definition.

# Consistent Spelling

Spelling checks that a phrase is always written the same way across a
document set. A rule is a regular expression matching all variants of the
phrase; the check fails when the matched texts differ. EmphRule builds the
common case of a phrase that must consistently appear with or without a
surrounding \emph{...}.
*/
package latexhooks
