// Package search implements iterative-deepening alpha-beta evaluation
// of Xiangqi positions on top of the board package.
package search

import (
	"log"
	"time"

	"github.com/liyu-xiangqi/xiangqi/internal/board"
)

// Engine runs a depth-bounded search over a single position. It is not
// safe for concurrent use by multiple goroutines; internal/analyze runs
// one Engine per worker.
type Engine struct {
	// Logger receives one line per completed iterative-deepening depth.
	// A nil Logger disables this output.
	Logger *log.Logger

	// OnDepth, if set, is called synchronously after each completed
	// iterative-deepening depth, before the next depth begins. It lets a
	// caller (internal/tui) stream progress without re-running the
	// search at each intermediate depth.
	OnDepth func(depth int, nodes uint64, elapsed time.Duration, score Score, pv []board.PackedMove)

	nodes uint64
}

// Result is the outcome of evaluating a position to some depth: the
// position's score from Red's perspective, and the principal variation
// (best line found), root move first.
type Result struct {
	Score Score
	PV    []board.PackedMove
	Nodes uint64
}

// Score is re-exported for callers that only need the search package.
type Score = board.Score

// EvalToDepth runs iterative deepening from depth 1 up to maxDepth,
// reusing each completed depth's best line to order the next depth's
// root moves. It returns the deepest completed iteration's result.
func (e *Engine) EvalToDepth(b *board.Board, maxDepth int) Result {
	var last Result
	var priorBest board.PackedMove

	for depth := 1; depth <= maxDepth; depth++ {
		start := time.Now()
		e.nodes = 0

		score, pv := e.searchRoot(b, depth, priorBest)
		elapsed := time.Since(start)

		last = Result{Score: score, PV: pv, Nodes: e.nodes}
		if len(pv) > 0 {
			priorBest = pv[0]
		}

		if e.Logger != nil {
			nps := float64(e.nodes)
			if elapsed > 0 {
				nps = float64(e.nodes) / elapsed.Seconds()
			}
			e.Logger.Printf("depth=%d nodes=%d nodes/sec=%.0f score=%s", depth, e.nodes, nps, score)
		}

		if e.OnDepth != nil {
			e.OnDepth(depth, e.nodes, elapsed, score, pv)
		}

		if !score.IsFinite() {
			// A forced win or loss was found; deeper search cannot
			// change the outcome, only how quickly it arrives.
			break
		}
	}

	return last
}

// searchRoot evaluates every root move at the given depth and returns
// the best score along with the principal variation from the winning
// line.
func (e *Engine) searchRoot(b *board.Board, depth int, priorBest board.PackedMove) (Score, []board.PackedMove) {
	moves := b.LegalMoves()
	if len(moves) == 0 {
		return terminalScore(b), nil
	}
	moves = orderMoves(b, moves, priorBest)

	isRed := b.IsRedTurn
	var best Score
	var bestMove board.PackedMove
	var bestChildPV []board.PackedMove
	haveBest := false

	alpha, beta := board.BlackWon, board.RedWon

	for _, m := range moves {
		child := b.Branch(m)
		childScore, childPV := e.childOutcome(child, isRed, depth, alpha, beta)

		if !haveBest || preferred(isRed, childScore, best) {
			best = childScore
			bestMove = m
			bestChildPV = childPV
			haveBest = true
		}
		if isRed {
			if preferred(true, childScore, alpha) {
				alpha = childScore
			}
		} else {
			if preferred(false, childScore, beta) {
				beta = childScore
			}
		}
		if isRed && best.Eq(board.RedWon) {
			break
		}
		if !isRed && best.Eq(board.BlackWon) {
			break
		}
	}

	pv := append([]board.PackedMove{bestMove}, bestChildPV...)
	return best, pv
}

// search is the recursive alpha-beta node, tracking separate Red and
// Black bounds rather than negating the score between plies.
func (e *Engine) search(b *board.Board, depth int, alpha, beta Score) (Score, []board.PackedMove) {
	e.nodes++

	if depth == 0 {
		return b.GetValue(), nil
	}

	moves := b.LegalMoves()
	if len(moves) == 0 {
		return terminalScore(b), nil
	}
	moves = orderMoves(b, moves, 0)

	isRed := b.IsRedTurn
	var best Score
	var bestPV []board.PackedMove
	haveBest := false

	for _, m := range moves {
		child := b.Branch(m)
		childScore, childPV := e.childOutcome(child, isRed, depth, alpha, beta)

		if !haveBest || preferred(isRed, childScore, best) {
			best = childScore
			bestPV = append([]board.PackedMove{m}, childPV...)
			haveBest = true
		}

		if isRed {
			if preferred(true, childScore, alpha) {
				alpha = childScore
			}
			if best.Eq(board.RedWon) {
				break
			}
		} else {
			if preferred(false, childScore, beta) {
				beta = childScore
			}
			if best.Eq(board.BlackWon) {
				break
			}
		}

		if !boundsAllowContinuing(alpha, beta) {
			break
		}
	}

	return best, bestPV
}

// childOutcome evaluates a branched position reached by moverIsRed's
// move. Branch never filters pseudo-legal moves for king safety, so a
// capture can take the opposing king before depth runs out; child's
// side to move is whoever didn't just move, so if that side's king is
// already dead the result is decided right here rather than recursing
// further and risking both kings ending up dead in the same subtree
// (GetValue would then resolve the tie arbitrarily in Black's favor).
func (e *Engine) childOutcome(child *board.Board, moverIsRed bool, depth int, alpha, beta Score) (Score, []board.PackedMove) {
	if !child.HasKing() {
		e.nodes++
		if moverIsRed {
			return board.RedWon, nil
		}
		return board.BlackWon, nil
	}
	return e.search(child, depth-1, alpha, beta)
}

// terminalScore returns the forced outcome when the side to move has no
// legal moves: the other side has won.
func terminalScore(b *board.Board) Score {
	if b.IsRedTurn {
		return board.BlackWon
	}
	return board.RedWon
}

// preferred reports whether candidate improves on current from the
// given side's perspective: higher is better for Red, lower for Black.
func preferred(isRed bool, candidate, current Score) bool {
	if isRed {
		return current.Less(candidate)
	}
	return candidate.Less(current)
}

// boundsAllowContinuing reports whether the search window [alpha,beta]
// is still open; once Red's floor meets or passes Black's ceiling,
// further moves at this node cannot change the outcome.
func boundsAllowContinuing(alpha, beta Score) bool {
	return alpha.Less(beta)
}
