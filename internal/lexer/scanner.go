package lexer

import (
	"strings"
	"unicode/utf8"

	"github.com/hassan/scanner/internal/diag"
	"github.com/hassan/scanner/internal/symtab"
)

// Scanner performs lexical analysis on source code, converting it into a
// stream of classified tokens while recording identifier occurrences and
// collecting recoverable lexical errors.
//
// DESIGN PHILOSOPHY:
// Unlike a switch-on-first-character lexer, this scanner runs a set of
// competing matchers at every position and arbitrates between them:
//  1. Each of the eight matchers proposes at most one candidate
//  2. The longest candidate wins; equal lengths fall back to priority
//  3. The winner is emitted as a token, recorded as an error, or dropped
//     (comments)
//
// The arbitration step is what makes disambiguation policy explicit: an
// eleven-character malformed float beats the three-digit integer hiding at
// its front purely on length, so error recovery consumes the whole lexeme.
//
// The scan is total: every loop iteration consumes at least one character,
// so scanning terminates with the cursor exactly at the end of the buffer
// for any input.
//
// DESIGN CHOICE: We use a struct with methods rather than a functional
// approach because:
// - State management is clearer (current position, line, column)
// - The matchers need shared access to the cursor and buffer
// - It matches Go idioms (similar to bufio.Scanner)
type Scanner struct {
	// source is the complete source text being scanned. We store the whole
	// buffer rather than streaming because the matchers need arbitrary
	// lookahead within a lexeme and positions are byte offsets into it.
	source string

	// filename is the name of the source file (for positions in reports).
	filename string

	// index is the byte offset currently being examined.
	index int

	// line and column are the 1-based coordinates of index. The scanner
	// maintains them incrementally: every consumed newline bumps line and
	// resets column to 1; every other character bumps column.
	line   int
	column int

	// tokens is the output sequence, in source order, comments excluded.
	tokens []Token

	// counts tracks how many tokens of each type were emitted.
	counts [numTokenTypes]int

	// symbols records every valid identifier occurrence.
	symbols *symtab.Table

	// errors accumulates classified lexical faults in encounter order.
	errors *diag.Collector

	// linesProcessed is the line count of the source, computed up front.
	linesProcessed int

	// scanned guards against running the scan loop twice.
	scanned bool
}

// New creates a Scanner for the given source text.
//
// Each Scanner owns its own cursor, symbol table, and error collector, so
// independent buffers can be scanned concurrently by giving each its own
// Scanner; a single Scanner is not safe for concurrent use.
func New(source, filename string) *Scanner {
	return &Scanner{
		source:         source,
		filename:       filename,
		line:           1,
		column:         1,
		symbols:        symtab.NewTable(),
		errors:         diag.NewCollector(),
		linesProcessed: countLines(source),
	}
}

// ScanTokens runs the scan to completion and returns the token sequence in
// source order, with comments excluded. Calling it again returns the same
// sequence without rescanning.
//
// Errors never stop the scan: the caller gets a best-effort token stream
// plus whatever the error collector accumulated. The returned slice is
// owned by the scanner and must not be modified.
func (s *Scanner) ScanTokens() []Token {
	if s.scanned {
		return s.tokens
	}
	s.scanned = true

	// A plain loop, not recursion: whitespace and comment runs of any
	// length cost no call-stack depth.
	for !s.isAtEnd() {
		if isWhitespace(s.peek()) {
			s.consumeWhitespace()
			continue
		}

		startPos := s.position()
		best, ok := s.chooseBestMatch()

		if !ok {
			// No matcher applies. Consume one full character (a rune, so
			// multi-byte input is reported once, not per byte) and record
			// it as an invalid character. The scan never blocks.
			lexeme := s.consumeRune()
			s.errors.Add(
				diag.InvalidCharacter,
				startPos.Line,
				startPos.Column,
				lexeme,
				"Character does not start any recognized token class.",
			)
			continue
		}

		if best.length <= 0 {
			// A matcher produced a non-positive winning length. That is a
			// bug in the scanner, not in the input; record it defensively
			// and force progress by one character.
			s.errors.Add(
				diag.InternalScannerError,
				startPos.Line,
				startPos.Column,
				"",
				"Zero-length match produced by scanner.",
			)
			s.consume(1)
			continue
		}

		end := s.index + best.length
		if end > len(s.source) {
			end = len(s.source)
		}
		lexeme := s.source[s.index:end]
		s.consume(best.length)

		if best.isError {
			s.errors.Add(best.errorKind, startPos.Line, startPos.Column, lexeme, best.reason)
			continue
		}

		if best.tokenType == TokenComment {
			// Comments win their span like any other match but are never
			// emitted or counted.
			continue
		}

		s.tokens = append(s.tokens, Token{
			Type:     best.tokenType,
			Lexeme:   lexeme,
			Position: startPos,
			Length:   len(lexeme),
		})
		s.counts[best.tokenType]++

		if best.tokenType == TokenIdentifier {
			s.symbols.RecordOccurrence(lexeme, startPos.Line, startPos.Column)
		}
	}

	return s.tokens
}

// chooseBestMatch evaluates all eight matchers at the current position and
// arbitrates: greatest length wins, ties go to the lowest priority number.
// Returns false if no matcher applies at all.
//
// Error candidates compete on exactly the same terms as valid ones, which
// is what lets a classified fault claim its full recovery span.
func (s *Scanner) chooseBestMatch() (matchCandidate, bool) {
	var candidates [8]matchCandidate
	n := 0
	consider := func(c matchCandidate, ok bool) {
		if ok {
			candidates[n] = c
			n++
		}
	}

	consider(s.matchComment())
	consider(s.matchBoolean())
	consider(s.matchIdentifier())
	consider(s.matchFloat())
	consider(s.matchInteger())
	consider(s.matchOperator())
	consider(s.matchPunctuator())
	consider(s.matchInvalidIdentifier())

	if n == 0 {
		return matchCandidate{}, false
	}

	best := candidates[0]
	for _, current := range candidates[1:n] {
		if current.length > best.length {
			best = current
			continue
		}
		if current.length == best.length && current.priority < best.priority {
			best = current
		}
	}
	return best, true
}

// consume advances the cursor by n bytes, one at a time, updating line and
// column. A newline bumps line and resets column to 1; anything else bumps
// column. Consumption stops at the end of the buffer rather than reading
// past it.
func (s *Scanner) consume(n int) {
	for consumed := 0; consumed < n && !s.isAtEnd(); consumed++ {
		c := s.source[s.index]
		s.index++
		if c == '\n' {
			s.line++
			s.column = 1
		} else {
			s.column++
		}
	}
}

// consumeRune advances past one UTF-8 character and returns it. Only the
// invalid-character path needs this; every token class is ASCII. The column
// advances by one regardless of how many bytes the character occupies.
func (s *Scanner) consumeRune() string {
	_, size := utf8.DecodeRuneInString(s.source[s.index:])
	if size == 0 {
		return ""
	}
	lexeme := s.source[s.index : s.index+size]
	s.index += size
	s.column++
	return lexeme
}

// consumeWhitespace skips the maximal run of spaces, tabs, carriage
// returns, and newlines, keeping line/column tracking intact.
func (s *Scanner) consumeWhitespace() {
	for !s.isAtEnd() && isWhitespace(s.peek()) {
		s.consume(1)
	}
}

// isAtEnd returns true once the whole buffer has been consumed.
func (s *Scanner) isAtEnd() bool {
	return s.index >= len(s.source)
}

// peek returns the current byte without advancing, or 0 at end of input.
func (s *Scanner) peek() byte {
	if s.isAtEnd() {
		return 0
	}
	return s.source[s.index]
}

// startsWith reports whether the unconsumed input begins with text.
func (s *Scanner) startsWith(text string) bool {
	return strings.HasPrefix(s.source[s.index:], text)
}

// position captures the current cursor location as a Position value.
func (s *Scanner) position() Position {
	return Position{
		Filename: s.filename,
		Line:     s.line,
		Column:   s.column,
		Offset:   s.index,
	}
}

// SymbolTable returns the identifier table populated by the scan.
func (s *Scanner) SymbolTable() *symtab.Table {
	return s.symbols
}

// Errors returns the error collector populated by the scan.
func (s *Scanner) Errors() *diag.Collector {
	return s.errors
}

// TokenCounts returns the number of emitted tokens per token type.
// Every type is present in the map, including zero counts.
func (s *Scanner) TokenCounts() map[TokenType]int {
	counts := make(map[TokenType]int, numTokenTypes)
	for i, n := range s.counts {
		counts[TokenType(i)] = n
	}
	return counts
}

// TotalTokens returns the number of emitted tokens.
func (s *Scanner) TotalTokens() int {
	return len(s.tokens)
}

// LinesProcessed returns the number of source lines.
func (s *Scanner) LinesProcessed() int {
	return s.linesProcessed
}

// Offset returns the current cursor offset. After ScanTokens it equals the
// buffer length; exposed so callers (and tests) can observe termination.
func (s *Scanner) Offset() int {
	return s.index
}

// countLines computes the line count of a buffer: empty input has zero
// lines; otherwise one more line than there are newlines, except that a
// trailing newline does not start a new empty line.
func countLines(text string) int {
	if len(text) == 0 {
		return 0
	}

	count := 1
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			count++
		}
	}
	if text[len(text)-1] == '\n' {
		count--
	}
	if count < 1 {
		return 1
	}
	return count
}
