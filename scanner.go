package mdlgraph

import (
	"strconv"

	"go.uber.org/zap"
)

// scanner is a forward-only cursor over the source text. It owns no state
// beyond its position and exposes the five primitive readers the rest of the
// parser is built from: trivia skipping, keywords, quoted strings, numbers,
// and brace-delimited numeric arrays. It never backtracks past the position
// it has already consumed; callers that need lookahead peek a character at a
// time via peekChar. log receives the driver's trace of skipped blocks and
// is never nil (Parse defaults it to a no-op logger).
type scanner struct {
	src string
	pos int
	log *zap.Logger
}

const scanEOF = rune(-1)

func newScanner(src string, log *zap.Logger) *scanner {
	s := &scanner{src: src, log: log}
	s.skipTrivia()
	return s
}

// peekChar returns the byte at the cursor, or scanEOF past the end of input.
// The grammar is ASCII-oriented (keywords, symbols, numbers), so byte-level
// inspection is sufficient; quoted strings and the rest of the source simply
// pass through as substrings regardless of encoding.
func (s *scanner) peekChar() rune {
	if s.pos >= len(s.src) {
		return scanEOF
	}
	return rune(s.src[s.pos])
}

func (s *scanner) peekAt(offset int) rune {
	if s.pos+offset >= len(s.src) {
		return scanEOF
	}
	return rune(s.src[s.pos+offset])
}

// skipTrivia advances past whitespace and `//` line comments. Comments are
// permitted between any two tokens, at top level or nested inside blocks.
func (s *scanner) skipTrivia() {
	for {
		c := s.peekChar()
		if c == ' ' || c == '\t' || c == '\r' || c == '\n' {
			s.pos++
			continue
		}
		if c == '/' && s.peekAt(1) == '/' {
			for s.peekChar() != scanEOF && s.peekChar() != '\n' {
				s.pos++
			}
			continue
		}
		return
	}
}

func isLetter(c rune) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

func isAlnum(c rune) bool {
	return isLetter(c) || (c >= '0' && c <= '9')
}

// keyword consumes a run of [A-Za-z0-9] starting with a letter, then trivia.
// It returns ("", false) without consuming anything if the cursor isn't
// positioned at a letter.
func (s *scanner) keyword() (string, bool) {
	if !isLetter(s.peekChar()) {
		return "", false
	}
	start := s.pos
	for isAlnum(s.peekChar()) {
		s.pos++
	}
	word := s.src[start:s.pos]
	s.skipTrivia()
	return word, true
}

// expectSymbol consumes the single-byte symbol c, failing with a SyntaxError
// carrying the current offset if the cursor isn't positioned at it.
func (s *scanner) expectSymbol(c rune) error {
	if s.peekChar() != c {
		return newSyntaxError(s.pos, "expected %q, found %q", c, s.describeCurrent())
	}
	s.pos++
	s.skipTrivia()
	return nil
}

// maybeSymbol consumes c if present and reports whether it did; it never
// fails.
func (s *scanner) maybeSymbol(c rune) bool {
	if s.peekChar() != c {
		return false
	}
	s.pos++
	s.skipTrivia()
	return true
}

func (s *scanner) describeCurrent() string {
	if s.peekChar() == scanEOF {
		return "<eof>"
	}
	return string(s.peekChar())
}

// quotedString consumes a double-quoted string with no escape interpretation
// (the closing quote is the first `"` encountered) and returns its inner
// contents, then trivia. ok is false, without consuming anything, if the
// cursor isn't positioned at `"`.
func (s *scanner) quotedString() (string, bool, error) {
	if s.peekChar() != '"' {
		return "", false, nil
	}
	start := s.pos + 1
	i := start
	for {
		if i >= len(s.src) {
			return "", false, newSyntaxError(s.pos, "unterminated string")
		}
		if s.src[i] == '"' {
			break
		}
		i++
	}
	str := s.src[start:i]
	s.pos = i + 1
	s.skipTrivia()
	return str, true, nil
}

func isNumStart(c rune) bool {
	return c == '-' || c == '+' || (c >= '0' && c <= '9') || c == '.'
}

// number consumes a sign, digits, an optional decimal point and exponent
// (characters in `-+.0-9eE`), returning the parsed double, then trivia. The
// first character must be in `[-0-9]`; a leading `+` or bare `.` is rejected
// to match the scanner's documented entrypoint, though arrays feed individual
// elements through the more permissive numberAny below.
func (s *scanner) number() (float64, error) {
	c := s.peekChar()
	if c != '-' && !(c >= '0' && c <= '9') {
		return 0, newSyntaxError(s.pos, "expected number, found %q", s.describeCurrent())
	}
	return s.numberAny()
}

// numberAny consumes the same character class as number but additionally
// accepts a leading `+` or `.`, as used inside arrays and relaxed contexts.
func (s *scanner) numberAny() (float64, error) {
	start := s.pos
	if !isNumStart(s.peekChar()) {
		return 0, newSyntaxError(s.pos, "expected number, found %q", s.describeCurrent())
	}
	if s.peekChar() == '-' || s.peekChar() == '+' {
		s.pos++
	}
	for s.peekChar() >= '0' && s.peekChar() <= '9' {
		s.pos++
	}
	if s.peekChar() == '.' {
		s.pos++
		for s.peekChar() >= '0' && s.peekChar() <= '9' {
			s.pos++
		}
	}
	if s.peekChar() == 'e' || s.peekChar() == 'E' {
		mark := s.pos
		s.pos++
		if s.peekChar() == '-' || s.peekChar() == '+' {
			s.pos++
		}
		if s.peekChar() >= '0' && s.peekChar() <= '9' {
			for s.peekChar() >= '0' && s.peekChar() <= '9' {
				s.pos++
			}
		} else {
			s.pos = mark
		}
	}
	text := s.src[start:s.pos]
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, newSyntaxError(start, "malformed number %q", text)
	}
	s.skipTrivia()
	return v, nil
}

// array reads `{ number (, number)* ,? }`, tolerating a trailing comma, and
// appends each element to dst. It returns ok=false without consuming
// anything if the cursor isn't positioned at `{`.
func (s *scanner) array(dst *[]float64) (bool, error) {
	if s.peekChar() != '{' {
		return false, nil
	}
	s.pos++
	s.skipTrivia()
	for s.peekChar() != '}' {
		v, err := s.numberAny()
		if err != nil {
			return false, err
		}
		*dst = append(*dst, v)
		if s.maybeSymbol(',') {
			continue
		}
		break
	}
	if err := s.expectSymbol('}'); err != nil {
		return false, err
	}
	return true, nil
}

// arrayOrScalar behaves like array, except a bare number (no braces) is
// accepted and stored as the array's sole element.
func (s *scanner) arrayOrScalar(dst *[]float64) error {
	if s.peekChar() == '{' {
		_, err := s.array(dst)
		return err
	}
	v, err := s.number()
	if err != nil {
		return err
	}
	*dst = append(*dst, v)
	return nil
}

// skipBalanced consumes a `{ ... }` region with correctly nested braces,
// used by the driver to tolerate unrecognized top-level blocks. The opening
// brace must be the current character.
func (s *scanner) skipBalanced() error {
	if err := s.expectSymbol('{'); err != nil {
		return err
	}
	depth := 1
	for depth > 0 {
		switch s.peekChar() {
		case scanEOF:
			return newSyntaxError(s.pos, "unexpected end of input inside skipped block")
		case '"':
			if _, _, err := s.quotedString(); err != nil {
				return err
			}
			continue
		case '{':
			depth++
		case '}':
			depth--
		}
		s.pos++
	}
	s.skipTrivia()
	return nil
}

// atEOF reports whether the cursor has no more non-trivia input.
func (s *scanner) atEOF() bool {
	return s.peekChar() == scanEOF
}
