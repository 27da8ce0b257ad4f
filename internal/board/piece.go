package board

import "fmt"

// PieceType is the closed set of Xiangqi piece kinds.
type PieceType uint8

const (
	Pawn PieceType = iota
	Advisor
	Elephant
	Horse
	Cannon
	Rook
	King
)

// Piece is a single piece: its kind, its color, and its board location.
// isRed=true is Red (moves first, uppercase FEN letters); false is Black.
type Piece struct {
	Type  PieceType
	IsRed bool
	Loc   PackedCoord
}

// pieceChars maps a PieceType to its lowercase (Black) FEN character.
var pieceChars = [...]byte{
	Pawn:     'p',
	Advisor:  'a',
	Elephant: 'e',
	Horse:    'h',
	Cannon:   'c',
	Rook:     'r',
	King:     'k',
}

// Char returns the FEN character for this piece: uppercase for Red,
// lowercase for Black.
func (p Piece) Char() byte {
	c := pieceChars[p.Type]
	if p.IsRed {
		c -= 'a' - 'A'
	}
	return c
}

// String renders the piece as its single FEN character.
func (p Piece) String() string {
	return string([]byte{p.Char()})
}

// pieceTypeFromFENChar parses a FEN piece letter (accepting the n/N and
// b/B aliases for Horse and Elephant per §4.3.1) into a PieceType and
// color. ok is false for any character that is not a recognized piece
// letter.
func pieceTypeFromFENChar(c byte) (pt PieceType, isRed bool, ok bool) {
	isRed = c >= 'A' && c <= 'Z'
	lower := c
	if isRed {
		lower = c + ('a' - 'A')
	}
	switch lower {
	case 'p':
		return Pawn, isRed, true
	case 'a':
		return Advisor, isRed, true
	case 'e', 'b':
		return Elephant, isRed, true
	case 'h', 'n':
		return Horse, isRed, true
	case 'c':
		return Cannon, isRed, true
	case 'r':
		return Rook, isRed, true
	case 'k':
		return King, isRed, true
	default:
		return 0, false, false
	}
}

// PieceSet is a fixed-capacity roster of one color's pieces, indexed by
// slot rather than scanned from the grid. A captured piece's slot holds
// DeadPackedCoord. The roster and the Board's grid are kept mutually
// consistent; either can be derived from the other.
type PieceSet struct {
	King      PackedCoord
	Rooks     [2]PackedCoord
	Cannons   [2]PackedCoord
	Horses    [2]PackedCoord
	Elephants [2]PackedCoord
	Advisors  [2]PackedCoord
	Pawns     [5]PackedCoord
}

// NewPieceSet returns a PieceSet with every slot dead, ready to be
// populated during FEN ingest.
func NewPieceSet() PieceSet {
	return PieceSet{
		King:      DeadPackedCoord,
		Rooks:     [2]PackedCoord{DeadPackedCoord, DeadPackedCoord},
		Cannons:   [2]PackedCoord{DeadPackedCoord, DeadPackedCoord},
		Horses:    [2]PackedCoord{DeadPackedCoord, DeadPackedCoord},
		Elephants: [2]PackedCoord{DeadPackedCoord, DeadPackedCoord},
		Advisors:  [2]PackedCoord{DeadPackedCoord, DeadPackedCoord},
		Pawns:     [5]PackedCoord{DeadPackedCoord, DeadPackedCoord, DeadPackedCoord, DeadPackedCoord, DeadPackedCoord},
	}
}

// put places loc into the first dead slot of the given type's roster.
// Returns false if every slot of that type is already occupied, which
// indicates a malformed FEN (too many pieces of one type).
func (ps *PieceSet) put(pt PieceType, loc PackedCoord) bool {
	switch pt {
	case King:
		if !ps.King.IsDead() {
			return false
		}
		ps.King = loc
		return true
	case Rook:
		return putSlot(ps.Rooks[:], loc)
	case Cannon:
		return putSlot(ps.Cannons[:], loc)
	case Horse:
		return putSlot(ps.Horses[:], loc)
	case Elephant:
		return putSlot(ps.Elephants[:], loc)
	case Advisor:
		return putSlot(ps.Advisors[:], loc)
	case Pawn:
		return putSlot(ps.Pawns[:], loc)
	default:
		return false
	}
}

func putSlot(slots []PackedCoord, loc PackedCoord) bool {
	for i, s := range slots {
		if s.IsDead() {
			slots[i] = loc
			return true
		}
	}
	return false
}

// remove marks the slot holding loc as dead (the piece has been
// captured). It is a no-op if loc is not found, which can legitimately
// happen when a non-piece square is overwritten.
func (ps *PieceSet) remove(loc PackedCoord) {
	if ps.King == loc {
		ps.King = DeadPackedCoord
		return
	}
	for _, slots := range [][]PackedCoord{ps.Rooks[:], ps.Cannons[:], ps.Horses[:], ps.Elephants[:], ps.Advisors[:], ps.Pawns[:]} {
		for i, s := range slots {
			if s == loc {
				slots[i] = DeadPackedCoord
				return
			}
		}
	}
}

// relocate moves a piece's recorded slot from `from` to `to`, used by
// Branch when applying a move. It is a no-op if `from` is not present in
// any slot (which would indicate a PieceSet/grid desync).
func (ps *PieceSet) relocate(from, to PackedCoord) {
	if ps.King == from {
		ps.King = to
		return
	}
	for _, slots := range [][]PackedCoord{ps.Rooks[:], ps.Cannons[:], ps.Horses[:], ps.Elephants[:], ps.Advisors[:], ps.Pawns[:]} {
		for i, s := range slots {
			if s == from {
				slots[i] = to
				return
			}
		}
	}
}

// LivePieces returns every live piece in this roster, tagged with the
// given color, in a fixed enumeration order (rooks, cannons, horses,
// elephants, pawns, king, advisors). Dead slots are skipped. It is
// read-only; Board.LegalMoves and Board.IsInCheck iterate it to find the
// pieces whose moves they generate, so this order is also the order in
// which LegalMoves lists moves.
func (ps *PieceSet) LivePieces(isRed bool) []Piece {
	var out []Piece
	appendSlots := func(pt PieceType, slots []PackedCoord) {
		for _, s := range slots {
			if !s.IsDead() {
				out = append(out, Piece{Type: pt, IsRed: isRed, Loc: s})
			}
		}
	}
	appendSlots(Rook, ps.Rooks[:])
	appendSlots(Cannon, ps.Cannons[:])
	appendSlots(Horse, ps.Horses[:])
	appendSlots(Elephant, ps.Elephants[:])
	appendSlots(Pawn, ps.Pawns[:])
	if !ps.King.IsDead() {
		out = append(out, Piece{Type: King, IsRed: isRed, Loc: ps.King})
	}
	appendSlots(Advisor, ps.Advisors[:])
	return out
}

// Verify that PieceType values stay within the array bound used by
// pieceChars; a panic here on an out-of-range type is a programmer error.
func init() {
	if int(King) >= len(pieceChars) {
		panic(fmt.Sprintf("PieceType King (%d) exceeds pieceChars bound", King))
	}
}
