// Package report renders scan results as plain text listings: the token
// stream, scanner statistics, the symbol table, and the error listing.
//
// Every function writes to an io.Writer so the CLI, the REPL, and tests
// share one rendering path. The formats are fixed; nothing here is
// configurable, because the listings are part of the scanner's observable
// contract and tests assert on them.
package report

import (
	"fmt"
	"io"

	"github.com/hassan/scanner/internal/diag"
	"github.com/hassan/scanner/internal/lexer"
	"github.com/hassan/scanner/internal/symtab"
)

// Tokens writes one line per token in source order.
func Tokens(w io.Writer, tokens []lexer.Token) {
	for _, tok := range tokens {
		fmt.Fprintln(w, tok)
	}
}

// Statistics writes the summary block: total tokens, lines processed, and
// per-type counts. Types with zero occurrences are omitted; the rest appear
// in declaration order so the output is deterministic.
func Statistics(w io.Writer, s *lexer.Scanner) {
	fmt.Fprintln(w, "Scanner Statistics:")
	fmt.Fprintf(w, "  Total tokens: %d\n", s.TotalTokens())
	fmt.Fprintf(w, "  Lines processed: %d\n", s.LinesProcessed())
	fmt.Fprintln(w, "  Count per token type:")

	counts := s.TokenCounts()
	for _, tt := range lexer.TokenTypes() {
		if counts[tt] > 0 {
			fmt.Fprintf(w, "    %s: %d\n", tt, counts[tt])
		}
	}
}

// SymbolTable writes the identifier table in first-occurrence order.
func SymbolTable(w io.Writer, t *symtab.Table) {
	fmt.Fprintln(w, "Symbol Table:")
	entries := t.Entries()
	if len(entries) == 0 {
		fmt.Fprintln(w, "  (empty)")
		return
	}

	fmt.Fprintln(w, "  Name | Type | First Occurrence | Frequency")
	for _, e := range entries {
		fmt.Fprintf(w, "  %s | %s | Line %d, Col %d | %d\n",
			e.Name, e.Kind, e.FirstLine, e.FirstColumn, e.Frequency)
	}
}

// Errors writes the lexical error listing in encounter order.
func Errors(w io.Writer, c *diag.Collector) {
	fmt.Fprintln(w, "Lexical Errors:")
	if !c.HasErrors() {
		fmt.Fprintln(w, "  (none)")
		return
	}
	for _, e := range c.Errors() {
		fmt.Fprintf(w, "  %s\n", e)
	}
}
