package movegen

import (
	"github.com/corvid-chess/chesscore/attacks"
	"github.com/corvid-chess/chesscore/bitboard"
	"github.com/corvid-chess/chesscore/position"
	"github.com/corvid-chess/chesscore/types"
)

var promotionKinds = [4]types.Promotion{
	types.PromotionQueen, types.PromotionRook, types.PromotionBishop, types.PromotionKnight,
}

func genPawnMoves(list *types.MoveList, p *position.Position, side types.Player, info attacks.Info, kingSq types.Square, occupancy bitboard.Bitboard, allowed bitboard.Bitboard) {
	us := p.Board.Side(side)
	them := p.Board.Side(side.Other())
	pawns := us.Pawns

	var startRank, promoteRank types.Rank
	var forward int
	if side == types.White {
		startRank, promoteRank, forward = types.Rank2, types.Rank8, 1
	} else {
		startRank, promoteRank, forward = types.Rank7, types.Rank1, -1
	}

	pawns.Iter(func(from types.Square) {
		pinned := info.Pins.Contains(from)
		var restrict bitboard.Bitboard
		if pinned {
			restrict = pinRay(occupancy, kingSq, from)
		}

		emit := func(to types.Square, promo bool) {
			if !allowed.Contains(to) {
				return
			}
			if pinned && !restrict.Contains(to) {
				return
			}
			if promo {
				for _, pr := range promotionKinds {
					list.Push(types.Move{From: from, To: to, Promotion: pr})
				}
			} else {
				list.Push(types.Move{From: from, To: to})
			}
		}

		// Single and double push.
		oneStep, ok := pawnStep(from, forward)
		if ok && !occupancy.Contains(oneStep) {
			emit(oneStep, oneStep.Rank() == promoteRank)
			if from.Rank() == startRank {
				twoStep, ok := pawnStep(oneStep, forward)
				if ok && !occupancy.Contains(twoStep) {
					emit(twoStep, false)
				}
			}
		}

		// Captures, including en passant.
		for _, df := range [2]int{-1, 1} {
			to, ok := pawnCaptureTarget(from, forward, df)
			if !ok {
				continue
			}
			if them.Occupancy().Contains(to) {
				emit(to, to.Rank() == promoteRank)
				continue
			}
			if p.EnPassant != nil && to == *p.EnPassant {
				capturedSq := epCapturedPawnRankSquare(to, side)
				// A double-pushed pawn can itself be the sole checker,
				// giving check from capturedSq while the en passant target
				// square (to) is a different square entirely: the ordinary
				// allowed mask (built from checkerSq) must be checked
				// against the captured pawn's square too, not just the
				// landing square.
				if !allowed.Contains(to) && !allowed.Contains(capturedSq) {
					continue
				}
				if pinned && !restrict.Contains(to) {
					continue
				}
				if legalEnPassant(p, side, from, to, kingSq) {
					list.Push(types.Move{From: from, To: to})
				}
			}
		}
	})
}

// pawnStep returns the square one rank forward (forward=+1 white, -1 black)
// from sq, or false if that would fall off the board.
func pawnStep(sq types.Square, forward int) (types.Square, bool) {
	r := int(sq.Rank()) + forward
	if r < 0 || r > 7 {
		return 0, false
	}
	return types.SquareFromFileRank(sq.File(), types.Rank(r)), true
}

func pawnCaptureTarget(sq types.Square, forward, df int) (types.Square, bool) {
	f := int(sq.File()) + df
	r := int(sq.Rank()) + forward
	if f < 0 || f > 7 || r < 0 || r > 7 {
		return 0, false
	}
	return types.SquareFromFileRank(types.File(f), types.Rank(r)), true
}

// epCapturedPawnRankSquare returns the square of the pawn an en passant
// capture to the given target square removes: the same file as to, one rank
// back toward the side that just double-pushed.
func epCapturedPawnRankSquare(to types.Square, side types.Player) types.Square {
	if side == types.White {
		return types.SquareFromFileRank(to.File(), types.Rank5)
	}
	return types.SquareFromFileRank(to.File(), types.Rank4)
}

// legalEnPassant applies the one special-case check en passant captures
// need beyond the ordinary pin/check masking: removing both the capturing
// and captured pawns from the board can itself expose the king to a rook or
// queen along the rank, a discovery no ordinary pin ray would catch because
// neither pawn was individually pinned. This is checked directly against the
// resulting occupancy rather than folded into the pin machinery.
func legalEnPassant(p *position.Position, side types.Player, from, to types.Square, kingSq types.Square) bool {
	capturedSq := epCapturedPawnRankSquare(to, side)

	occ := p.Occupancy()
	occ = occ.Without(bitboard.FromSquare(from))
	occ = occ.Without(bitboard.FromSquare(capturedSq))
	occ |= bitboard.FromSquare(to)

	enemy := p.Board.Side(side.Other())
	rookLike := enemy.Rooks | enemy.Queens
	if attacks.Rook(kingSq, occ).Intersect(rookLike).HasAny() {
		return false
	}
	return true
}
