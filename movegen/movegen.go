// Package movegen implements legal move generation. Every move it returns
// is already legal: it uses the attack-info pass from package attacks to
// reason about checks, pins, and x-rays up front, so there is no
// post-generation legality filter (no copy-make-and-recheck).
package movegen

import (
	"github.com/corvid-chess/chesscore/attacks"
	"github.com/corvid-chess/chesscore/bitboard"
	"github.com/corvid-chess/chesscore/position"
	"github.com/corvid-chess/chesscore/types"
)

// Generate returns every legal move available to the side to move in p.
func Generate(p *position.Position) types.MoveList {
	var list types.MoveList

	side := p.SideToMove
	us := p.Board.Side(side)
	them := p.Board.Side(side.Other())
	kingSq := us.KingSquare()
	occupancy := p.Occupancy()
	usOccupancy := us.Occupancy()

	info := attacks.Compute(side.Other(), them, kingSq, usOccupancy, occupancy)

	genKingMoves(&list, p, side, kingSq, info, usOccupancy)

	checkerCount := info.Checkers.Count()
	if checkerCount > 1 {
		// Double check: only the king may move.
		return list
	}

	var allowed bitboard.Bitboard
	if checkerCount == 0 {
		allowed = bitboard.All
	} else {
		checkerSq := info.Checkers.AsSquare()
		allowed = bitboard.FromSquare(checkerSq)
		if checkerKind, ok := them.BitboardForContains(checkerSq); ok && isSlider(checkerKind) {
			allowed |= attacks.Between(checkerSq, kingSq)
		}
	}

	genPawnMoves(&list, p, side, info, kingSq, occupancy, allowed)
	genPieceMoves(&list, p, side, types.Knight, info, kingSq, occupancy, usOccupancy, allowed, func(sq types.Square, _ bitboard.Bitboard) bitboard.Bitboard {
		return attacks.Knight(sq)
	})
	genPieceMoves(&list, p, side, types.Bishop, info, kingSq, occupancy, usOccupancy, allowed, attacks.Bishop)
	genPieceMoves(&list, p, side, types.Rook, info, kingSq, occupancy, usOccupancy, allowed, attacks.Rook)
	genPieceMoves(&list, p, side, types.Queen, info, kingSq, occupancy, usOccupancy, allowed, attacks.Queen)

	return list
}

func isSlider(kind types.PieceKind) bool {
	return kind == types.Bishop || kind == types.Rook || kind == types.Queen
}

func genKingMoves(list *types.MoveList, p *position.Position, side types.Player, kingSq types.Square, info attacks.Info, usOccupancy bitboard.Bitboard) {
	destinations := info.SafeKingSquares
	destinations.Iter(func(to types.Square) {
		list.Push(types.Move{From: kingSq, To: to})
	})

	if info.Checkers.HasAny() {
		return
	}

	rights := p.CastleRights
	occupancy := p.Occupancy()
	if side == types.White {
		if rights.Has(types.WhiteShort) &&
			occupancy.Intersect(attacks.WhiteShortRookWalk).IsEmpty() &&
			info.Attacks.Intersect(attacks.WhiteShortKingWalk).IsEmpty() {
			list.Push(types.Move{From: kingSq, To: types.G1})
		}
		if rights.Has(types.WhiteLong) &&
			occupancy.Intersect(attacks.WhiteLongRookWalk).IsEmpty() &&
			info.Attacks.Intersect(attacks.WhiteLongKingWalk).IsEmpty() {
			list.Push(types.Move{From: kingSq, To: types.C1})
		}
	} else {
		if rights.Has(types.BlackShort) &&
			occupancy.Intersect(attacks.BlackShortRookWalk).IsEmpty() &&
			info.Attacks.Intersect(attacks.BlackShortKingWalk).IsEmpty() {
			list.Push(types.Move{From: kingSq, To: types.G8})
		}
		if rights.Has(types.BlackLong) &&
			occupancy.Intersect(attacks.BlackLongRookWalk).IsEmpty() &&
			info.Attacks.Intersect(attacks.BlackLongKingWalk).IsEmpty() {
			list.Push(types.Move{From: kingSq, To: types.C8})
		}
	}
}

// genPieceMoves handles knights and sliders uniformly: attackFn computes a
// piece's pseudo-legal destination set given its square and the full board
// occupancy (knights ignore the occupancy argument).
func genPieceMoves(
	list *types.MoveList,
	p *position.Position,
	side types.Player,
	kind types.PieceKind,
	info attacks.Info,
	kingSq types.Square,
	occupancy, usOccupancy bitboard.Bitboard,
	allowed bitboard.Bitboard,
	attackFn func(types.Square, bitboard.Bitboard) bitboard.Bitboard,
) {
	us := p.Board.Side(side)
	pieces := us.BitboardFor(kind)

	pieces.Iter(func(from types.Square) {
		destinations := attackFn(from, occupancy).Without(usOccupancy).Intersect(allowed)
		if info.Pins.Contains(from) {
			destinations = destinations.Intersect(pinRay(occupancy, kingSq, from))
		}
		destinations.Iter(func(to types.Square) {
			list.Push(types.Move{From: from, To: to})
		})
	})
}

// pinRay returns the set of squares a piece pinned against kingSq from
// pieceSq may legally move to: the squares between the king and the piece
// (sliding closer without breaking the pin), plus the squares from the
// piece away from the king up to and including the first occupied square
// (the pinning slider, which may be captured to lift the pin).
func pinRay(occupancy bitboard.Bitboard, kingSq, pieceSq types.Square) bitboard.Bitboard {
	ray := attacks.Between(kingSq, pieceSq)

	df := fileStep(kingSq, pieceSq)
	dr := rankStep(kingSq, pieceSq)
	f, r := int(pieceSq.File())+df, int(pieceSq.Rank())+dr
	for f >= 0 && f <= 7 && r >= 0 && r <= 7 {
		sq := types.SquareFromFileRank(types.File(f), types.Rank(r))
		ray |= bitboard.FromSquare(sq)
		if occupancy.Contains(sq) {
			break
		}
		f += df
		r += dr
	}
	return ray
}

func fileStep(from, to types.Square) int {
	return sign(int(to.File()) - int(from.File()))
}

func rankStep(from, to types.Square) int {
	return sign(int(to.Rank()) - int(from.Rank()))
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
