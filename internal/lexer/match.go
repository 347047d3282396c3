package lexer

import "github.com/hassan/scanner/internal/diag"

// Matcher priorities, 1 = highest. When two candidates match the same
// number of characters, the lower priority number wins.
//
// DESIGN CHOICE: Fixed integer priorities rather than relying on matcher
// evaluation order because:
// 1. The tie-break rule is explicit data, not an accident of a loop
// 2. Candidates can be compared pairwise without knowing their origin
// 3. Tests can assert on the priority table directly
const (
	priorityComment = iota + 1
	priorityBoolean
	priorityIdentifier
	priorityFloat
	priorityInteger
	priorityOperator
	priorityPunctuator
	priorityInvalidIdentifier
)

// Lexical limits of the language.
const (
	// maxIdentifierLength caps the total identifier length (head + tail).
	maxIdentifierLength = 31

	// maxFractionDigits caps the digits allowed after the decimal point.
	maxFractionDigits = 6
)

// singleCharOperators and punctuators are the fixed character sets of the
// language. They are package-level immutable tables, never mutated after
// initialization.
var singleCharOperators = map[byte]bool{
	'+': true, '-': true, '*': true, '/': true, '%': true,
	'<': true, '>': true, '=': true, '!': true,
}

var punctuators = map[byte]bool{
	'(': true, ')': true, '{': true, '}': true, '[': true, ']': true,
	',': true, ';': true, ':': true,
}

// matchCandidate is the outcome one matcher proposes at the current
// scan position. Exactly one of the token/error halves is meaningful,
// selected by isError.
//
// Candidates are transient: the arbiter compares them, picks one winner,
// and they are gone. Nothing persists them.
type matchCandidate struct {
	// length is the number of source bytes the candidate consumes.
	// A valid candidate always has length > 0; matchers that cannot
	// start a match at the current character return no candidate at all
	// rather than a zero-length one.
	length int

	// priority breaks ties between candidates of equal length.
	priority int

	// tokenType is the resulting token class when isError is false.
	tokenType TokenType

	// isError marks a classified lexical fault. An error candidate still
	// competes on length: a long malformed literal beats a short valid
	// token that matches a prefix of it.
	isError   bool
	errorKind diag.ErrorKind
	reason    string
}

func tokenMatch(length int, tokenType TokenType, priority int) matchCandidate {
	return matchCandidate{length: length, priority: priority, tokenType: tokenType}
}

func errorMatch(length, priority int, kind diag.ErrorKind, reason string) matchCandidate {
	return matchCandidate{
		length:    length,
		priority:  priority,
		isError:   true,
		errorKind: kind,
		reason:    reason,
	}
}

// matchComment recognizes a "##" single-line comment running through (but
// not including) the next newline or end of input. Priority 1: once the
// "##" prefix is present the comment always wins its span.
func (s *Scanner) matchComment() (matchCandidate, bool) {
	if !s.startsWith("##") {
		return matchCandidate{}, false
	}
	i := s.index + 2
	for i < len(s.source) && s.source[i] != '\n' {
		i++
	}
	return tokenMatch(i-s.index, TokenComment, priorityComment), true
}

// matchBoolean recognizes the exact keywords "true" and "false", but only
// when followed by a word boundary, so "trueX" is left to other matchers.
func (s *Scanner) matchBoolean() (matchCandidate, bool) {
	if s.startsWith("false") && s.isWordBoundary(s.index+5) {
		return tokenMatch(5, TokenBoolean, priorityBoolean), true
	}
	if s.startsWith("true") && s.isWordBoundary(s.index+4) {
		return tokenMatch(4, TokenBoolean, priorityBoolean), true
	}
	return matchCandidate{}, false
}

// matchIdentifier recognizes identifiers starting with an uppercase ASCII
// letter. The matcher first takes the maximal identifier-like run, then
// validates it, so a bad identifier is reported once over its whole span
// and the scan resumes after it rather than inside it.
//
// Failure modes, both classified as InvalidIdentifier:
// - total length over maxIdentifierLength
// - a tail character outside [a-z0-9_] (an uppercase tail letter, say)
func (s *Scanner) matchIdentifier() (matchCandidate, bool) {
	if !isUpperASCII(s.peek()) {
		return matchCandidate{}, false
	}

	i := s.index + 1
	for i < len(s.source) && isIdentifierLike(s.source[i]) {
		i++
	}

	length := i - s.index
	if length > maxIdentifierLength {
		return errorMatch(
			length,
			priorityIdentifier,
			diag.InvalidIdentifier,
			"Identifier exceeds maximum length of 31 characters.",
		), true
	}

	for j := s.index + 1; j < i; j++ {
		if !isIdentifierTail(s.source[j]) {
			return errorMatch(
				length,
				priorityIdentifier,
				diag.InvalidIdentifier,
				"Identifier tail allows only lowercase letters, digits, or underscore.",
			), true
		}
	}

	return tokenMatch(length, TokenIdentifier, priorityIdentifier), true
}

// matchFloat recognizes floating-point literals: optional sign, at least
// one digit, a decimal point, one to six fraction digits, and an optional
// exponent part. When the input has digits but no decimal point the
// matcher declines so the integer matcher can claim it.
//
// Malformed shapes are classified as MalformedLiteral over a best-effort
// span (see malformedNumericEnd) so the scan resumes past the whole mess:
// - a sign directly followed by ".digits" (no digits before the point)
// - no digits after the decimal point
// - more than maxFractionDigits digits after the decimal point
// - a second decimal point right after a valid fraction
// - an exponent marker with no digits
func (s *Scanner) matchFloat() (matchCandidate, bool) {
	i := s.index
	hasSign := false
	if i < len(s.source) && (s.source[i] == '+' || s.source[i] == '-') {
		hasSign = true
		i++
	}

	digitsBeforeDot := 0
	for i < len(s.source) && isDigitASCII(s.source[i]) {
		i++
		digitsBeforeDot++
	}

	if digitsBeforeDot == 0 {
		if hasSign &&
			i < len(s.source) && s.source[i] == '.' &&
			i+1 < len(s.source) && isDigitASCII(s.source[i+1]) {
			end := s.malformedNumericEnd()
			return errorMatch(
				end-s.index,
				priorityFloat,
				diag.MalformedLiteral,
				"Floating literal must contain digits before decimal point.",
			), true
		}
		return matchCandidate{}, false
	}

	if i >= len(s.source) || s.source[i] != '.' {
		// Digits with no decimal point: integer territory.
		return matchCandidate{}, false
	}
	i++

	digitsAfterDot := 0
	for i < len(s.source) && isDigitASCII(s.source[i]) {
		i++
		digitsAfterDot++
	}

	if digitsAfterDot == 0 {
		end := s.malformedNumericEnd()
		return errorMatch(
			end-s.index,
			priorityFloat,
			diag.MalformedLiteral,
			"Floating literal requires at least one digit after decimal point.",
		), true
	}

	if digitsAfterDot > maxFractionDigits {
		end := s.malformedNumericEnd()
		return errorMatch(
			end-s.index,
			priorityFloat,
			diag.MalformedLiteral,
			"Floating literal allows at most 6 digits after decimal point.",
		), true
	}

	if i < len(s.source) && s.source[i] == '.' {
		end := s.malformedNumericEnd()
		return errorMatch(
			end-s.index,
			priorityFloat,
			diag.MalformedLiteral,
			"Floating literal contains multiple decimal points.",
		), true
	}

	if i < len(s.source) && (s.source[i] == 'e' || s.source[i] == 'E') {
		exp := i + 1
		if exp < len(s.source) && (s.source[exp] == '+' || s.source[exp] == '-') {
			exp++
		}

		exponentDigits := 0
		for exp < len(s.source) && isDigitASCII(s.source[exp]) {
			exp++
			exponentDigits++
		}

		if exponentDigits == 0 {
			end := s.malformedNumericEnd()
			return errorMatch(
				end-s.index,
				priorityFloat,
				diag.MalformedLiteral,
				"Exponent part must contain at least one digit.",
			), true
		}

		i = exp
	}

	return tokenMatch(i-s.index, TokenFloat, priorityFloat), true
}

// matchInteger recognizes integer literals: optional sign, at least one
// digit. It never consumes a trailing decimal point and never fails; a
// digit run is always at least a valid integer.
func (s *Scanner) matchInteger() (matchCandidate, bool) {
	i := s.index
	if i < len(s.source) && (s.source[i] == '+' || s.source[i] == '-') {
		i++
	}

	digits := 0
	for i < len(s.source) && isDigitASCII(s.source[i]) {
		i++
		digits++
	}

	if digits == 0 {
		return matchCandidate{}, false
	}

	return tokenMatch(i-s.index, TokenInteger, priorityInteger), true
}

// matchOperator recognizes a single-character operator.
func (s *Scanner) matchOperator() (matchCandidate, bool) {
	if singleCharOperators[s.peek()] {
		return tokenMatch(1, TokenOperator, priorityOperator), true
	}
	return matchCandidate{}, false
}

// matchPunctuator recognizes a single-character punctuator.
func (s *Scanner) matchPunctuator() (matchCandidate, bool) {
	if punctuators[s.peek()] {
		return tokenMatch(1, TokenPunctuator, priorityPunctuator), true
	}
	return matchCandidate{}, false
}

// matchInvalidIdentifier catches identifier-shaped text starting with a
// lowercase letter, which this language forbids. It consumes the maximal
// identifier-like run so the whole bad name is reported as one error.
//
// The matcher declines on the exact texts "true" and "false". The boolean
// matcher produces an equal-length candidate for those and would win the
// tie on priority anyway; declining here as well keeps the two matchers
// independent of the tie-break.
func (s *Scanner) matchInvalidIdentifier() (matchCandidate, bool) {
	if !isLowerASCII(s.peek()) {
		return matchCandidate{}, false
	}

	i := s.index
	for i < len(s.source) && isIdentifierLike(s.source[i]) {
		i++
	}

	candidate := s.source[s.index:i]
	if candidate == "true" || candidate == "false" {
		return matchCandidate{}, false
	}

	return errorMatch(
		i-s.index,
		priorityInvalidIdentifier,
		diag.InvalidIdentifier,
		"Identifier must start with an uppercase letter.",
	), true
}

// malformedNumericEnd returns the end offset of the best-effort recovery
// span for a malformed numeric literal: an optional leading sign followed
// by the maximal run of digits, letters, dots, and signs. The span is at
// least one byte so the scan always makes progress.
func (s *Scanner) malformedNumericEnd() int {
	i := s.index
	if i < len(s.source) && (s.source[i] == '+' || s.source[i] == '-') {
		i++
	}

	for i < len(s.source) {
		c := s.source[i]
		if isDigitASCII(c) || isLowerASCII(c) || isUpperASCII(c) ||
			c == '.' || c == '+' || c == '-' {
			i++
			continue
		}
		break
	}

	if i < s.index+1 {
		return s.index + 1
	}
	return i
}

// isWordBoundary reports whether pos does not continue an identifier-like
// run. End of input is a boundary.
func (s *Scanner) isWordBoundary(pos int) bool {
	if pos >= len(s.source) {
		return true
	}
	return !isIdentifierLike(s.source[pos])
}

// Character classification. The token grammar is pure ASCII, so these are
// byte predicates; multi-byte input only ever reaches the invalid-character
// path in the scan driver.

func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

func isLowerASCII(c byte) bool {
	return c >= 'a' && c <= 'z'
}

func isUpperASCII(c byte) bool {
	return c >= 'A' && c <= 'Z'
}

func isDigitASCII(c byte) bool {
	return c >= '0' && c <= '9'
}

// isIdentifierTail matches the characters allowed after an identifier's
// leading uppercase letter.
func isIdentifierTail(c byte) bool {
	return isLowerASCII(c) || isDigitASCII(c) || c == '_'
}

// isIdentifierLike matches any character that continues an identifier-shaped
// run, valid or not. Used for maximal-run consumption and word boundaries.
func isIdentifierLike(c byte) bool {
	return isLowerASCII(c) || isUpperASCII(c) || isDigitASCII(c) || c == '_'
}
