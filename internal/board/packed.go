package board

import "fmt"

// Coord is a board coordinate: X is the file (0-8, 9 files), Y is the rank
// (0-9, 10 ranks). DeadX/DeadY denote a captured or off-board piece.
type Coord struct {
	X, Y int
}

// DeadX and DeadY form the sentinel "dead piece" coordinate: a piece that
// has been captured, or is otherwise not on the board.
const (
	DeadX = 15
	DeadY = 15
)

// DeadCoord is the sentinel coordinate for a piece not on the board.
var DeadCoord = Coord{X: DeadX, Y: DeadY}

// PackedCoord is an 8-bit encoding of a Coord: high nibble is X, low nibble
// is Y. The literal byte 0xFF is the dead-piece sentinel.
type PackedCoord uint8

// DeadPackedCoord is the byte 0xFF, PackedCoord's dead-piece sentinel.
const DeadPackedCoord PackedCoord = 0xFF

// PackCoord packs a Coord into a PackedCoord. Only the low 4 bits of each
// axis survive, which is exact for any in-bounds Coord (X<9, Y<10) and for
// DeadCoord (15,15).
func PackCoord(c Coord) PackedCoord {
	return PackedCoord(((c.X & 0xF) << 4) | (c.Y & 0xF))
}

// Coord unpacks a PackedCoord back into its (x,y) pair.
func (p PackedCoord) Coord() Coord {
	return Coord{X: int((p >> 4) & 0xF), Y: int(p & 0xF)}
}

// IsDead reports whether p is the dead-piece sentinel.
func (p PackedCoord) IsDead() bool {
	return p == DeadPackedCoord
}

// PackedMove is a 16-bit encoding of a move: high byte is the starting
// PackedCoord, low byte is the ending PackedCoord.
type PackedMove uint16

// NewPackedMove encodes a move from start to end. The two coordinates must
// differ; callers constructing moves from generated move lists already
// guarantee this, and it is checked here rather than silently accepted.
func NewPackedMove(start, end Coord) PackedMove {
	if start == end {
		panic(fmt.Sprintf("NewPackedMove: start and end squares are identical: %v", start))
	}
	return PackedMove(uint16(PackCoord(start))<<8 | uint16(PackCoord(end)))
}

// NewPackedMoveFromPacked builds a PackedMove directly from two already
// packed coordinates, used when applying a move whose destination is the
// dead-piece sentinel (a capture removing a piece from play).
func NewPackedMoveFromPacked(start, end PackedCoord) PackedMove {
	return PackedMove(uint16(start)<<8 | uint16(end))
}

// Start returns the move's starting PackedCoord.
func (m PackedMove) Start() PackedCoord {
	return PackedCoord(m >> 8)
}

// End returns the move's ending PackedCoord.
func (m PackedMove) End() PackedCoord {
	return PackedCoord(m & 0xFF)
}

// KillsPiece reports whether the move's destination is the dead-piece
// sentinel, i.e. whether this encoded move represents removing a captured
// piece from its owner's PieceSet rather than a move across the grid.
func (m PackedMove) KillsPiece() bool {
	return m.End() == DeadPackedCoord
}

// rankLetters maps a Y coordinate (0-9, the ten ranks) to the letter used
// in a move's textual rendering below.
var rankLetters = [...]byte{'a', 'b', 'c', 'd', 'e', 'f', 'g', 'h', 'i', 'j'}

// String renders a move in the textual form "<file><rank><file><rank>",
// e.g. "a1b1". Preserving the source engine's exact encoding: the letter is
// taken from each endpoint's Y coordinate and the number from X+1 (not the
// more natural X-as-file/Y-as-rank split) — this is the rendering the
// reference engine and its test suite use, and callers round-trip through
// it, so it is kept as-is rather than "corrected".
func (m PackedMove) String() string {
	start, end := m.Start().Coord(), m.End().Coord()
	return string([]byte{
		letterOrDash(start.Y),
		numberOrDash(start.X),
		letterOrDash(end.Y),
		numberOrDash(end.X),
	})
}

func letterOrDash(y int) byte {
	if y < 0 || y >= len(rankLetters) {
		return '-'
	}
	return rankLetters[y]
}

func numberOrDash(x int) byte {
	if x < 0 || x > 8 {
		return '-'
	}
	return byte('1' + x)
}

// ParseMoveText parses the four-character move notation produced by
// String back into a PackedMove. It is the exact inverse of String,
// including the letter-indexes-Y / number-indexes-X convention.
func ParseMoveText(s string) (PackedMove, error) {
	if len(s) != 4 {
		return 0, fmt.Errorf("move text must be 4 characters, got %q", s)
	}
	startY, err := letterToY(s[0])
	if err != nil {
		return 0, err
	}
	startX, err := numberToX(s[1])
	if err != nil {
		return 0, err
	}
	endY, err := letterToY(s[2])
	if err != nil {
		return 0, err
	}
	endX, err := numberToX(s[3])
	if err != nil {
		return 0, err
	}
	start := Coord{X: startX, Y: startY}
	end := Coord{X: endX, Y: endY}
	if start == end {
		return 0, fmt.Errorf("move text %q has identical start and end squares", s)
	}
	return NewPackedMove(start, end), nil
}

func letterToY(c byte) (int, error) {
	for y, letter := range rankLetters {
		if letter == c {
			return y, nil
		}
	}
	return 0, fmt.Errorf("invalid file/rank letter %q", c)
}

func numberToX(c byte) (int, error) {
	if c < '1' || c > '9' {
		return 0, fmt.Errorf("invalid rank/file digit %q", c)
	}
	return int(c - '1'), nil
}
