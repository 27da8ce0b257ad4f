package board

import (
	"fmt"
	"math"
)

// Score is a position evaluation that doubles as a terminal-state sentinel.
//
// Ordinary values are finite float32s: positive favors Red, negative favors
// Black. Three additional states are encoded as specific NaN bit patterns
// ("NaN boxing") so that a single Score value can flow through search
// without a separate tag: RedWon, BlackWon, and Invalid. Equality and
// ordering are defined over the bit pattern, not IEEE-754 semantics, so
// that e.g. Invalid == Invalid holds.
type Score struct {
	bits uint32
}

// nanBase is the base pattern for a quiet NaN with a nonzero payload.
const nanBase uint32 = 0b0_11111111_100_00000_00000_00000_00000

// Payload bits layered on top of nanBase to distinguish the three
// sentinel kinds. These are arbitrary but distinct and nonzero.
const (
	redWonPayload   uint32 = 0b0_00000000_010_00000_00000_00000_00000
	blackWonPayload uint32 = 0b0_00000000_001_00000_00000_00000_00000
	invalidPayload  uint32 = 0b0_00000000_011_00000_00000_00000_00000
)

// RedWon is the sentinel Score for a position where Red has a forced win.
var RedWon = Score{bits: nanBase | redWonPayload}

// BlackWon is the sentinel Score for a position where Black has a forced win.
var BlackWon = Score{bits: nanBase | blackWonPayload}

// Invalid marks an uninitialized evaluation, an ill-formed position, or an
// alpha-beta sentinel bound. It must never be produced by evaluating a
// well-formed position.
var Invalid = Score{bits: nanBase | invalidPayload}

// NewScore wraps a finite evaluation as a Score. The caller is responsible
// for ensuring val is finite; NewScore does not itself produce sentinels.
func NewScore(val float32) Score {
	return Score{bits: math.Float32bits(val)}
}

// Float returns the underlying float32, which is only meaningful when the
// Score is not one of the three sentinels.
func (s Score) Float() float32 {
	return math.Float32frombits(s.bits)
}

// IsFinite reports whether s is an ordinary evaluation rather than one of
// the three sentinel states.
func (s Score) IsFinite() bool {
	return s != RedWon && s != BlackWon && s != Invalid
}

// Eq reports bitwise equality: two Scores are equal iff they carry the same
// 32-bit pattern. This is why Invalid == Invalid holds, unlike default
// IEEE-754 NaN comparison.
func (s Score) Eq(other Score) bool {
	return s.bits == other.bits
}

// Ordering is the result of comparing two Scores.
type Ordering int

const (
	// Less means the receiver sorts below the argument.
	Less Ordering = -1
	// Equal means the receiver and the argument are the same sentinel/value.
	Equal Ordering = 0
	// Greater means the receiver sorts above the argument.
	Greater Ordering = 1
)

// Cmp orders two Scores: BlackWon < any finite value < RedWon, and
// sentinel/sentinel compares Equal iff they are the same kind. The second
// return value is false when either operand is Invalid, in which case the
// Ordering is meaningless and must not be relied upon.
func (s Score) Cmp(other Score) (Ordering, bool) {
	if s == Invalid || other == Invalid {
		return Equal, false
	}
	if s == other {
		return Equal, true
	}
	if s == RedWon {
		return Greater, true
	}
	if other == RedWon {
		return Less, true
	}
	if s == BlackWon {
		return Less, true
	}
	if other == BlackWon {
		return Greater, true
	}
	a, b := s.Float(), other.Float()
	if a < b {
		return Less, true
	}
	return Greater, true
}

// Less reports whether s sorts strictly below other. Comparisons that
// involve Invalid always return false, consistent with Cmp's undefined
// ordering for Invalid.
func (s Score) Less(other Score) bool {
	ord, ok := s.Cmp(other)
	return ok && ord == Less
}

// String renders the Score for display: the two forced-win sentinels and
// Invalid each get a fixed phrase, everything else prints as a float.
func (s Score) String() string {
	switch s {
	case RedWon:
		return "Red Wins"
	case BlackWon:
		return "Black Wins"
	case Invalid:
		return "Invalid position"
	default:
		return fmt.Sprintf("%g", s.Float())
	}
}

// Binary renders the underlying 32-bit pattern, mainly useful for debugging
// the NaN-boxing scheme itself.
func (s Score) Binary() string {
	return fmt.Sprintf("%032b", s.bits)
}
