// Package board implements Xiangqi position representation, FEN ingest
// and emission, legal move generation, move application, and static
// position evaluation.
package board

import (
	"fmt"
	"strconv"
	"strings"
)

// Board-wide constants, per the data model: back ranks and the river
// line that governs pawn and elephant movement.
const (
	RedRow     = 0 // Y index of Red's back rank.
	BlackRow   = 9 // Y index of Black's back rank.
	RedRiver   = 4 // Inclusive max Y for Red pawns before crossing the river.
	BlackRiver = 5 // Inclusive min Y for Black pawns before crossing the river.
)

// StartingPositionFEN is the standard Xiangqi starting position.
const StartingPositionFEN = "rheakaehr/9/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/9/RHEAKAEHR w - - 0 1"

// Board is the complete state of a Xiangqi position: a 10x9 grid of
// tiles, whose turn it is, the zero-indexed ply counter, and both
// sides' PieceSets, kept consistent with the grid at all times.
type Board struct {
	// Grid is indexed [y][x]: 10 ranks (y=0 Red's back rank, y=9
	// Black's), 9 files.
	Grid [10][9]Tile

	// IsRedTurn is true when it is Red's move.
	IsRedTurn bool

	// PlyNumber is zero-indexed; Red moves on even ply, Black on odd.
	PlyNumber int

	RedPieces   PieceSet
	BlackPieces PieceSet
}

// NewBoard returns the standard Xiangqi starting position.
func NewBoard() *Board {
	b, err := BoardFromFEN(StartingPositionFEN)
	if err != nil {
		panic(fmt.Sprintf("starting position FEN is malformed: %v", err))
	}
	return b
}

// BoardFromFEN parses a Xiangqi FEN string into a Board. A FEN is ten
// '/'-separated rank groups (top rank, y=9, first), then the
// side-to-move token, then (optionally) two placeholder tokens, a
// half-move counter, and a 1-indexed full-move number.
//
// Digits '1'-'9' within a rank denote consecutive empty files; the
// letters n/N and b/B are accepted as aliases for Horse and Elephant
// respectively. Any other non-piece, non-digit, non-'/' character is
// silently skipped (the file cursor still advances) rather than
// rejected outright. A missing king for either side is a hard failure.
func BoardFromFEN(fen string) (*Board, error) {
	fields := strings.Fields(fen)
	if len(fields) < 2 {
		return nil, fmt.Errorf("FEN missing side-to-move field: %q", fen)
	}

	b := &Board{
		RedPieces:   NewPieceSet(),
		BlackPieces: NewPieceSet(),
	}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 10 {
		return nil, fmt.Errorf("FEN board must have 10 ranks, got %d", len(ranks))
	}

	for rankIdx, rankStr := range ranks {
		y := 9 - rankIdx
		x := 0
		for i := 0; i < len(rankStr); i++ {
			c := rankStr[i]
			if c >= '1' && c <= '9' {
				x += int(c - '0')
				continue
			}
			if x >= 9 {
				return nil, fmt.Errorf("FEN rank %d has too many squares", y)
			}
			pt, isRed, ok := pieceTypeFromFENChar(c)
			if !ok {
				// Invalid piece character: advance the cursor, place nothing.
				x++
				continue
			}
			loc := PackCoord(Coord{X: x, Y: y})
			set := b.pieceSet(isRed)
			if !set.put(pt, loc) {
				return nil, fmt.Errorf("FEN has too many pieces of type %v for %s", pt, colorName(isRed))
			}
			b.Grid[y][x] = Tile{ch: c}
			x++
		}
		if x != 9 {
			return nil, fmt.Errorf("FEN rank %d has %d squares, expected 9", y, x)
		}
	}

	sideTok := fields[1]
	switch {
	case len(sideTok) == 1 && strings.ContainsAny(sideTok, "wWrR"):
		b.IsRedTurn = true
	case len(sideTok) == 1 && strings.ContainsAny(sideTok, "bB"):
		b.IsRedTurn = false
	default:
		return nil, fmt.Errorf("FEN has unrecognized side-to-move token %q", sideTok)
	}

	fullMove := 1
	if len(fields) >= 6 {
		if n, err := strconv.Atoi(fields[5]); err == nil {
			fullMove = n
		}
	}
	b.PlyNumber = (fullMove - 1) * 2
	if !b.IsRedTurn {
		b.PlyNumber++
	}

	if b.RedPieces.King.IsDead() {
		return nil, fmt.Errorf("FEN is missing the Red king")
	}
	if b.BlackPieces.King.IsDead() {
		return nil, fmt.Errorf("FEN is missing the Black king")
	}

	return b, nil
}

func colorName(isRed bool) string {
	if isRed {
		return "Red"
	}
	return "Black"
}

// pieceSet returns the PieceSet belonging to the given color.
func (b *Board) pieceSet(isRed bool) *PieceSet {
	if isRed {
		return &b.RedPieces
	}
	return &b.BlackPieces
}

// WriteFEN renders the board back into FEN form: board layout, side to
// move, the two placeholder fields, a zero half-move clock, and the
// 1-indexed full-move number derived from PlyNumber.
func (b *Board) WriteFEN() string {
	var sb strings.Builder
	for y := 9; y >= 0; y-- {
		empties := 0
		for x := 0; x < 9; x++ {
			tile := b.Grid[y][x]
			if tile.Empty() {
				empties++
				continue
			}
			if empties != 0 {
				sb.WriteByte(byte('0' + empties))
				empties = 0
			}
			sb.WriteByte(tile.Char())
		}
		if empties != 0 {
			sb.WriteByte(byte('0' + empties))
		}
		if y != 0 {
			sb.WriteByte('/')
		}
	}
	sb.WriteByte(' ')
	if b.IsRedTurn {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	fmt.Fprintf(&sb, " - - 0 %d", b.PlyNumber/2+1)
	return sb.String()
}

// Display renders a human-readable view of the board: the position
// value, then an ASCII grid (top rank first, '-' for empty squares).
func (b *Board) Display() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Position value: %s\n", b.GetValue())
	for y := 9; y >= 0; y-- {
		for x := 0; x < 9; x++ {
			tile := b.Grid[y][x]
			if tile.Empty() {
				sb.WriteByte('-')
				continue
			}
			sb.WriteByte(tile.Char())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// GetValue returns the static evaluation of the position: per-piece
// material and positional contributions (Red positive, Black negative),
// overridden by a forced-win sentinel if either king is missing, plus a
// small side-to-move bonus otherwise.
func (b *Board) GetValue() Score {
	var sum float32
	for y := 0; y < 10; y++ {
		for x := 0; x < 9; x++ {
			tile := b.Grid[y][x]
			if tile.Empty() {
				continue
			}
			pt, isRed, ok := tile.PieceType()
			if !ok {
				continue
			}
			v := pieceValue(pt, isRed, x, y)
			if !isRed {
				v = -v
			}
			sum += v
		}
	}

	if b.RedPieces.King.IsDead() {
		return BlackWon
	}
	if b.BlackPieces.King.IsDead() {
		return RedWon
	}
	if b.IsRedTurn {
		sum += 0.125
	}
	return NewScore(sum)
}

// pieceValue returns the magnitude of a piece's contribution, per the
// table in §4.3.3: base value plus a positional adjustment that depends
// on the piece's side and location.
func pieceValue(pt PieceType, isRed bool, x, y int) float32 {
	switch pt {
	case Pawn:
		crossed := (isRed && y >= BlackRiver) || (!isRed && y <= RedRiver)
		if crossed {
			return 2.0
		}
		return 1.0
	case Advisor:
		backRank := (isRed && y == RedRow) || (!isRed && y == BlackRow)
		if backRank {
			return 1.75
		}
		return 2.0
	case Elephant:
		return 2.0
	case Horse:
		if x == 0 || x == 8 {
			return 3.5
		}
		return 4.0
	case Cannon:
		return 4.5
	case Rook:
		enemyBackRank := (isRed && y == BlackRow) || (!isRed && y == RedRow)
		if enemyBackRank {
			return 9.0
		}
		return 8.5
	case King:
		return 0.0
	default:
		return 0.0
	}
}

// StartTile returns the tile at m's starting square.
func (b *Board) StartTile(m PackedMove) Tile {
	c := m.Start().Coord()
	return b.Grid[c.Y][c.X]
}

// EndTile returns the tile at m's destination square.
func (b *Board) EndTile(m PackedMove) Tile {
	c := m.End().Coord()
	return b.Grid[c.Y][c.X]
}

// Branch returns a new Board with m applied: the turn flipped and the
// ply incremented. If the destination square is occupied, that piece is
// removed from its owner's PieceSet before the mover is placed.
func (b *Board) Branch(m PackedMove) *Board {
	next := *b // Board is POD-like: a value copy deep-copies Grid and both PieceSets.

	start, end := m.Start().Coord(), m.End().Coord()
	startTile := next.StartTile(m)

	if endTile := next.EndTile(m); !endTile.Empty() {
		capturedIsRed := endTile.Char() >= 'A' && endTile.Char() <= 'Z'
		next.pieceSet(capturedIsRed).remove(m.End())
	}

	next.pieceSet(next.IsRedTurn).relocate(m.Start(), m.End())
	next.Grid[start.Y][start.X] = Tile{}
	next.Grid[end.Y][end.X] = startTile

	next.IsRedTurn = !next.IsRedTurn
	next.PlyNumber++

	return &next
}

// HasKing reports whether the side to move's king is still on the
// board. The engine uses this to short-circuit once a king has been
// captured.
func (b *Board) HasKing() bool {
	return !b.pieceSet(b.IsRedTurn).King.IsDead()
}

// LivePieces returns every live piece belonging to the given color.
func (b *Board) LivePieces(isRed bool) []Piece {
	return b.pieceSet(isRed).LivePieces(isRed)
}

// isPalace reports whether (x,y) lies within either side's palace.
func isPalace(x, y int) bool {
	if x < 3 || x > 5 {
		return false
	}
	return (y >= 0 && y <= 2) || (y >= 7 && y <= 9)
}

// isSameColor reports whether the tile at (x,y) holds a piece of the
// given color. Out-of-range coordinates are never same-colored.
func (b *Board) isSameColor(x, y int, isRed bool) bool {
	if x < 0 || x > 8 || y < 0 || y > 9 {
		return false
	}
	tile := b.Grid[y][x]
	if tile.Empty() {
		return false
	}
	_, tileIsRed, ok := tile.PieceType()
	return ok && tileIsRed == isRed
}

// tryMove appends (x,y) to out as a legal target if it is on the board
// and not occupied by a piece of the mover's own color.
func (b *Board) tryMove(x, y int, isRed bool, out *[]Coord) {
	if x < 0 || x > 8 || y < 0 || y > 9 {
		return
	}
	if b.isSameColor(x, y, isRed) {
		return
	}
	*out = append(*out, Coord{X: x, Y: y})
}
