// Package diag collects classified lexical errors produced during scanning.
//
// DESIGN PHILOSOPHY:
// Lexical faults are data, not control flow. The scanner never aborts on a
// bad lexeme; it classifies the fault, records it here, and keeps going.
// The caller gets the full list at the end, the way a compiler produces a
// diagnostic listing rather than stopping at the first problem.
//
// Errors in this package are values (LexicalError), not Go errors. They
// carry enough context (position, offending lexeme, reason) to render a
// complete diagnostic without access to the scanner state that produced them.
package diag

import "strings"

// ErrorKind classifies a lexical error.
//
// DESIGN CHOICE: We use an int-based enum (via iota) rather than strings because:
// 1. Faster comparisons (integer vs string comparison)
// 2. Type safety (compiler catches typos)
// 3. The String() method gives us stable labels for reports
type ErrorKind int

const (
	// InvalidCharacter means the character starts no recognized token class.
	InvalidCharacter ErrorKind = iota

	// InvalidIdentifier covers identifiers that break the lexical rules:
	// wrong starting case, forbidden tail characters, or excessive length.
	InvalidIdentifier

	// MalformedLiteral covers numeric literals that start like a number but
	// violate the literal grammar (missing fraction digits, too many
	// fraction digits, repeated decimal points, empty exponent).
	MalformedLiteral

	// InternalScannerError flags a self-consistency violation inside the
	// scanner itself, such as a zero-length winning match. It must never
	// occur in a correct implementation, but the scanner records it and
	// moves on instead of crashing.
	InternalScannerError
)

// String returns the stable label used in diagnostic listings.
func (k ErrorKind) String() string {
	switch k {
	case InvalidCharacter:
		return "InvalidCharacter"
	case InvalidIdentifier:
		return "InvalidIdentifier"
	case MalformedLiteral:
		return "MalformedLiteral"
	case InternalScannerError:
		return "InternalScannerError"
	default:
		return "Unknown"
	}
}

// LexicalError is a single classified fault at a source position.
//
// DESIGN CHOICE: LexicalError is a value type (not pointer) because:
// 1. It's small and immutable once created
// 2. Copying is cheap and avoids aliasing surprises
// 3. The collector can hand out slices without exposing shared state
type LexicalError struct {
	// Kind classifies the fault.
	Kind ErrorKind

	// Line and Column are the 1-based position of the first offending
	// character.
	Line   int
	Column int

	// Lexeme is the offending source text. It may be empty (for example,
	// an internal consistency error has nothing to show).
	Lexeme string

	// Reason is a human-readable explanation suitable for a listing.
	Reason string
}

// String renders the error in the diagnostic listing format.
// Format: `ErrorType=KIND, Line=L, Col=C, Lexeme="...", Reason=...`
func (e LexicalError) String() string {
	return "ErrorType=" + e.Kind.String() +
		", Line=" + itoa(e.Line) +
		", Col=" + itoa(e.Column) +
		", Lexeme=\"" + escape(e.Lexeme) + "\"" +
		", Reason=" + e.Reason
}

// escape makes control characters and quotes visible in a one-line listing.
func escape(value string) string {
	r := strings.NewReplacer(
		"\\", "\\\\",
		"\"", "\\\"",
		"\n", "\\n",
		"\r", "\\r",
		"\t", "\\t",
	)
	return r.Replace(value)
}

// itoa is a minimal positive-int formatter so String() stays allocation-light.
func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := false
	if n < 0 {
		neg = true
		n = -n
	}
	buf := make([]byte, 0, 12)
	for n > 0 {
		buf = append(buf, byte('0'+n%10))
		n /= 10
	}
	if neg {
		buf = append(buf, '-')
	}
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return string(buf)
}

// Collector accumulates lexical errors in encounter order.
//
// The collector is append-only: errors are never removed or reordered, so
// the listing always reflects the order faults were found in the source.
type Collector struct {
	errors []LexicalError
}

// NewCollector creates an empty error collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Add appends a classified error to the collection.
func (c *Collector) Add(kind ErrorKind, line, column int, lexeme, reason string) {
	c.errors = append(c.errors, LexicalError{
		Kind:   kind,
		Line:   line,
		Column: column,
		Lexeme: lexeme,
		Reason: reason,
	})
}

// Errors returns the collected errors in encounter order.
// The returned slice is a copy; callers can keep or modify it freely.
func (c *Collector) Errors() []LexicalError {
	out := make([]LexicalError, len(c.errors))
	copy(out, c.errors)
	return out
}

// HasErrors reports whether any error was collected.
func (c *Collector) HasErrors() bool {
	return len(c.errors) > 0
}

// Len returns the number of collected errors.
func (c *Collector) Len() int {
	return len(c.errors)
}
