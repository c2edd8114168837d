// Package perft counts leaf nodes of the legal-move game tree to a fixed
// depth, the standard correctness and performance benchmark for a move
// generator.
package perft

import (
	"github.com/corvid-chess/chesscore/movegen"
	"github.com/corvid-chess/chesscore/position"
)

// Count returns the number of leaf positions reachable from p in exactly
// depth plies. Count(p, 0) is always 1, the empty-move leaf itself.
func Count(p position.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	moves := movegen.Generate(&p)
	if depth == 1 {
		return uint64(moves.Len())
	}
	var total uint64
	for i := 0; i < moves.Len(); i++ {
		next := p.MakeMove(moves.At(i))
		total += Count(next, depth-1)
	}
	return total
}

// Divide splits a depth-`depth` perft by root move: for each legal root
// move it reports Count of the position that move leads to at depth-1, so
// the values sum to Count(p, depth). Depth 0 yields an empty map. This is the
// standard debugging aid for isolating which root move's subtree disagrees
// with a reference engine.
func Divide(p position.Position, depth int) map[string]uint64 {
	result := make(map[string]uint64)
	if depth == 0 {
		return result
	}
	moves := movegen.Generate(&p)
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		next := p.MakeMove(m)
		result[m.String()] = Count(next, depth-1)
	}
	return result
}
