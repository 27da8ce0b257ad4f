package search

import "github.com/liyu-xiangqi/xiangqi/internal/board"

// capturePriority ranks a move by the type of piece it captures: taking
// a King ends the game outright, so it dominates every other capture.
var capturePriority = map[board.PieceType]int{
	board.King:     999,
	board.Rook:     6,
	board.Cannon:   5,
	board.Horse:    4,
	board.Elephant: 3,
	board.Advisor:  2,
	board.Pawn:     1,
}

// checkMovePriority ranks a quiet move made while the side to move is in
// check, by the type of the piece being moved, lower values searched first.
var checkMovePriority = map[board.PieceType]int{
	board.King:     1,
	board.Advisor:  2,
	board.Rook:     3,
	board.Horse:    4,
	board.Cannon:   5,
	board.Elephant: 6,
	board.Pawn:     7,
}

// movePriority is the fallback ordering for a quiet, non-checking move,
// favoring the pieces most likely to matter early in a line: Cannons
// and Horses before slower-developing pieces.
var movePriority = map[board.PieceType]int{
	board.Cannon:   1,
	board.Horse:    2,
	board.Pawn:     3,
	board.Rook:     4,
	board.Elephant: 5,
	board.Advisor:  6,
	board.King:     7,
}

// orderMoves sorts moves so the strongest-looking candidates are
// searched first, maximizing alpha-beta cutoffs: the prior iteration's
// best move leads, then captures (ranked by what they take, tie-broken
// by the cheapest attacker), then — if the side to move is already in
// check — check-evasion priority, then everything else by piece type.
// Whether the side to move is in check is computed once per node, not
// once per candidate: IsInCheck walks every opposing pseudo-legal move,
// so re-deriving it per move (by branching each candidate) would repeat
// that cost dozens of times over for no benefit.
func orderMoves(b *board.Board, moves []board.PackedMove, priorBest board.PackedMove) []board.PackedMove {
	inCheck := b.IsInCheck()

	keyed := make([]struct {
		move board.PackedMove
		key  int
	}, len(moves))

	for i, m := range moves {
		keyed[i] = struct {
			move board.PackedMove
			key  int
		}{move: m, key: moveKey(b, m, priorBest, inCheck)}
	}

	// Simple insertion sort: move lists are small (a few dozen at most)
	// and this keeps the ordering stable without pulling in sort just
	// for a few dozen elements.
	for i := 1; i < len(keyed); i++ {
		j := i
		for j > 0 && keyed[j-1].key < keyed[j].key {
			keyed[j-1], keyed[j] = keyed[j], keyed[j-1]
			j--
		}
	}

	out := make([]board.PackedMove, len(keyed))
	for i, k := range keyed {
		out[i] = k.move
	}
	return out
}

func moveKey(b *board.Board, m board.PackedMove, priorBest board.PackedMove, inCheck bool) int {
	if priorBest != 0 && m == priorBest {
		return 1_000_000
	}

	startTile := b.StartTile(m)
	movingType, _, ok := startTile.PieceType()
	if !ok {
		return 0
	}

	endTile := b.EndTile(m)
	if !endTile.Empty() {
		if capturedType, _, ok := endTile.PieceType(); ok {
			// MVV-LVA: rank by victim first, then prefer the cheapest
			// attacker among equal-value victims.
			return 100_000 + capturePriority[capturedType]*1_000 - capturePriority[movingType]
		}
	}

	if inCheck {
		return 10_000 + (8-checkMovePriority[movingType])*100
	}

	return 1_000 - movePriority[movingType]
}
