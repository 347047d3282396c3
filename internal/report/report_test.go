package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hassan/scanner/internal/diag"
	"github.com/hassan/scanner/internal/lexer"
	"github.com/hassan/scanner/internal/symtab"
)

func scanFixture(t *testing.T) *lexer.Scanner {
	t.Helper()
	s := lexer.New("A A badVar\n1 2.5", "test.src")
	s.ScanTokens()
	return s
}

func TestTokensListing(t *testing.T) {
	s := scanFixture(t)
	var buf bytes.Buffer
	Tokens(&buf, s.ScanTokens())

	expected := "IDENTIFIER(A) at test.src:1:1\n" +
		"IDENTIFIER(A) at test.src:1:3\n" +
		"INTEGER_LITERAL(1) at test.src:2:1\n" +
		"FLOATING_POINT_LITERAL(2.5) at test.src:2:3\n"
	assert.Equal(t, expected, buf.String())
}

func TestStatistics(t *testing.T) {
	s := scanFixture(t)
	var buf bytes.Buffer
	Statistics(&buf, s)

	expected := "Scanner Statistics:\n" +
		"  Total tokens: 4\n" +
		"  Lines processed: 2\n" +
		"  Count per token type:\n" +
		"    IDENTIFIER: 2\n" +
		"    FLOATING_POINT_LITERAL: 1\n" +
		"    INTEGER_LITERAL: 1\n"
	assert.Equal(t, expected, buf.String())
}

func TestSymbolTableListing(t *testing.T) {
	s := scanFixture(t)
	var buf bytes.Buffer
	SymbolTable(&buf, s.SymbolTable())

	expected := "Symbol Table:\n" +
		"  Name | Type | First Occurrence | Frequency\n" +
		"  A | identifier | Line 1, Col 1 | 2\n"
	assert.Equal(t, expected, buf.String())
}

func TestSymbolTableListingEmpty(t *testing.T) {
	var buf bytes.Buffer
	SymbolTable(&buf, symtab.NewTable())
	assert.Equal(t, "Symbol Table:\n  (empty)\n", buf.String())
}

func TestErrorsListing(t *testing.T) {
	s := scanFixture(t)
	require.True(t, s.Errors().HasErrors())

	var buf bytes.Buffer
	Errors(&buf, s.Errors())

	expected := "Lexical Errors:\n" +
		"  ErrorType=InvalidIdentifier, Line=1, Col=5, Lexeme=\"badVar\", " +
		"Reason=Identifier must start with an uppercase letter.\n"
	assert.Equal(t, expected, buf.String())
}

func TestErrorsListingEmpty(t *testing.T) {
	var buf bytes.Buffer
	Errors(&buf, diag.NewCollector())
	assert.Equal(t, "Lexical Errors:\n  (none)\n", buf.String())
}
