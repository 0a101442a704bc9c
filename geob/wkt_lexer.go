package geob

import (
	"strconv"
	"strings"

	"github.com/beetlebugorg/geob/geoberr"
)

// scanner is a byte-cursor lexer over WKT source text. WKT's grammar is
// pure ASCII (keywords, digits, punctuation), so byte indexing doubles as
// rune indexing and no UTF-8 decoding is needed.
type scanner struct {
	s   string
	pos int
}

func (sc *scanner) eof() bool { return sc.pos >= len(sc.s) }

func (sc *scanner) peek() byte {
	if sc.eof() {
		return 0
	}
	return sc.s[sc.pos]
}

func (sc *scanner) skipSpace() {
	for !sc.eof() && isSpace(sc.s[sc.pos]) {
		sc.pos++
	}
}

func isSpace(b byte) bool { return b == ' ' || b == '\t' || b == '\n' || b == '\r' }
func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// expectWS consumes mandatory whitespace, required between the two numbers
// of a coordinate pair per the grammar's ws production.
func (sc *scanner) expectWS() error {
	start := sc.pos
	sc.skipSpace()
	if sc.pos == start {
		return geoberr.NewFormatError(sc.pos, "expected whitespace")
	}
	return nil
}

func (sc *scanner) expectByte(b byte) error {
	if sc.eof() || sc.s[sc.pos] != b {
		return geoberr.NewFormatError(sc.pos, "expected %q", b)
	}
	sc.pos++
	return nil
}

// is reports whether lit appears at the cursor without consuming it.
func (sc *scanner) is(lit string) bool {
	return strings.HasPrefix(sc.s[sc.pos:], lit)
}

func (sc *scanner) expectLiteral(lit string) error {
	if !sc.is(lit) {
		return geoberr.NewFormatError(sc.pos, "expected %q", lit)
	}
	sc.pos += len(lit)
	return nil
}

func (sc *scanner) parseUint32() (uint32, error) {
	start := sc.pos
	for !sc.eof() && isDigit(sc.s[sc.pos]) {
		sc.pos++
	}
	if sc.pos == start {
		return 0, geoberr.NewFormatError(start, "expected integer")
	}
	n, err := strconv.ParseUint(sc.s[start:sc.pos], 10, 32)
	if err != nil {
		return 0, geoberr.NewFormatError(start, "srid out of range: %v", err)
	}
	return uint32(n), nil
}

// parseFloat scans a decimal float token: an optional sign, digits, an
// optional fractional part, and an optional exponent.
func (sc *scanner) parseFloat() (float64, error) {
	start := sc.pos
	if !sc.eof() && (sc.s[sc.pos] == '+' || sc.s[sc.pos] == '-') {
		sc.pos++
	}
	sawDigits := false
	for !sc.eof() && isDigit(sc.s[sc.pos]) {
		sc.pos++
		sawDigits = true
	}
	if !sc.eof() && sc.s[sc.pos] == '.' {
		sc.pos++
		for !sc.eof() && isDigit(sc.s[sc.pos]) {
			sc.pos++
			sawDigits = true
		}
	}
	if !sawDigits {
		sc.pos = start
		return 0, geoberr.NewFormatError(start, "expected number")
	}
	if !sc.eof() && (sc.s[sc.pos] == 'e' || sc.s[sc.pos] == 'E') {
		save := sc.pos
		sc.pos++
		if !sc.eof() && (sc.s[sc.pos] == '+' || sc.s[sc.pos] == '-') {
			sc.pos++
		}
		expDigits := false
		for !sc.eof() && isDigit(sc.s[sc.pos]) {
			sc.pos++
			expDigits = true
		}
		if !expDigits {
			sc.pos = save
		}
	}
	f, err := strconv.ParseFloat(sc.s[start:sc.pos], 64)
	if err != nil {
		return 0, geoberr.NewFormatError(start, "invalid number: %v", err)
	}
	return f, nil
}
