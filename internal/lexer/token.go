package lexer

// TokenType represents the type of a token.
//
// DESIGN CHOICE: We use an int-based enum (via iota) rather than strings because:
// 1. Faster comparisons (integer vs string comparison)
// 2. Less memory (1 int vs string pointer + length + data)
// 3. Type safety (compiler catches typos)
//
// The String() method provides the stable labels used in every textual
// rendering (reports, statistics, tests), so the labels are part of the
// external contract even though the enum values are not.
type TokenType int

const (
	// TokenComment is a single-line comment introduced by "##" and running
	// to the end of the line. The scanner recognizes comments so they
	// participate in longest-match selection, but it discards them instead
	// of emitting them; they never appear in the output token sequence.
	TokenComment TokenType = iota

	// TokenBoolean is one of the exact keywords "true" or "false",
	// terminated by a word boundary ("trueX" is not a boolean).
	TokenBoolean

	// TokenIdentifier starts with an uppercase ASCII letter followed by
	// zero or more lowercase letters, digits, or underscores, at most 31
	// characters in total.
	TokenIdentifier

	// TokenFloat is a floating-point literal: optional sign, at least one
	// digit, a decimal point, one to six fraction digits, and an optional
	// exponent part ([eE][+-]?digits).
	TokenFloat

	// TokenInteger is an integer literal: optional sign, at least one digit.
	TokenInteger

	// TokenOperator is a single-character operator: + - * / % < > = !
	TokenOperator

	// TokenPunctuator is a single-character punctuator: ( ) { } [ ] , ; :
	TokenPunctuator
)

// numTokenTypes is the number of token classes; used to size count tables.
const numTokenTypes = int(TokenPunctuator) + 1

// String returns the stable label of the token type.
func (tt TokenType) String() string {
	switch tt {
	case TokenComment:
		return "SINGLE_LINE_COMMENT"
	case TokenBoolean:
		return "BOOLEAN_LITERAL"
	case TokenIdentifier:
		return "IDENTIFIER"
	case TokenFloat:
		return "FLOATING_POINT_LITERAL"
	case TokenInteger:
		return "INTEGER_LITERAL"
	case TokenOperator:
		return "SINGLE_CHAR_OPERATOR"
	case TokenPunctuator:
		return "PUNCTUATOR"
	default:
		return "UNKNOWN"
	}
}

// TokenTypes returns all token types in declaration order.
// Reports iterate this instead of ranging over a map so the per-type
// statistics come out in a deterministic order.
func TokenTypes() []TokenType {
	types := make([]TokenType, numTokenTypes)
	for i := range types {
		types[i] = TokenType(i)
	}
	return types
}

// IsLiteral returns true if the token type is a literal value.
func (tt TokenType) IsLiteral() bool {
	return tt == TokenBoolean || tt == TokenFloat || tt == TokenInteger
}

// Token represents a single lexical token.
//
// DESIGN CHOICE: Token is a value type (not pointer) because:
// 1. Tokens are small and cheap to copy
// 2. No need for sharing/mutation after creation
// 3. Avoids GC pressure (no allocations for token values)
type Token struct {
	// Type is the token type.
	Type TokenType

	// Lexeme is the exact text matched from the source code.
	Lexeme string

	// Position is where the first character of this token appears.
	Position Position

	// Length is the length of the token in bytes.
	Length int
}

// String returns a human-readable representation of the token.
// Format: "TYPE(lexeme) at position"
// Example: "IDENTIFIER(Count_2) at input.src:1:14"
func (t Token) String() string {
	return t.Type.String() + "(" + t.Lexeme + ") at " + t.Position.String()
}

// Span returns the source span covered by this token.
func (t Token) Span() Span {
	return Span{
		Start: t.Position,
		End: Position{
			Filename: t.Position.Filename,
			Line:     t.Position.Line,
			Column:   t.Position.Column + runeCount(t.Lexeme),
			Offset:   t.Position.Offset + t.Length,
		},
	}
}

// runeCount returns the number of runes in s. Columns are counted in
// characters, not bytes, so span arithmetic uses rune counts.
func runeCount(s string) int {
	count := 0
	for range s {
		count++
	}
	return count
}
