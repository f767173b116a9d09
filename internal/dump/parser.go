package dump

import (
	"regexp"
	"strings"
)

// TupleArity is the fixed field count of one vendor catalog row.
const TupleArity = 28

// Positions of the fields the normalizer consumes. The trailing fields past
// fieldResale are carried by the vendor but unused here.
const (
	fieldURL = iota
	fieldMake
	fieldModel
	fieldYear
	fieldImage1
	fieldImage2
	fieldPriceUAE
	fieldPriceKSA
	fieldOrigin
	fieldClass
	fieldBody
	fieldWeight
	fieldPros
	fieldCons
	fieldOverview
	fieldReliability
	fieldResale
)

// Tuple is one raw vendor row: exactly TupleArity positional text fields.
type Tuple [TupleArity]string

// tuplePattern recognizes one literal tuple: quoted fields separated by
// commas inside parentheses, with the year field constrained to four digits.
// Anything that does not match this shape (comment lines, rows from unrelated
// tables) is skipped, which is the intended best-effort behavior for this
// dump format, not an error condition.
var tuplePattern = regexp.MustCompile(
	`\('([^']*)',\s*'([^']*)',\s*'([^']*)',\s*'(\d{4})'` +
		strings.Repeat(`,\s*'([^']*)'`, TupleArity-4) +
		`\)`)

// Scanner walks dump text and yields tuples lazily, in dump order. Scanning
// the same bytes twice yields the same sequence; a Scanner holds no state
// beyond its position.
type Scanner struct {
	rest string
}

func NewScanner(content string) *Scanner {
	return &Scanner{rest: content}
}

// Next returns the next tuple in the dump, or false when the text is
// exhausted.
func (s *Scanner) Next() (Tuple, bool) {
	var t Tuple
	loc := tuplePattern.FindStringSubmatchIndex(s.rest)
	if loc == nil {
		s.rest = ""
		return t, false
	}
	for i := 0; i < TupleArity; i++ {
		start, end := loc[2*(i+1)], loc[2*(i+1)+1]
		t[i] = s.rest[start:end]
	}
	s.rest = s.rest[loc[1]:]
	return t, true
}
