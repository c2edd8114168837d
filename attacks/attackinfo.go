package attacks

import (
	"github.com/corvid-chess/chesscore/bitboard"
	"github.com/corvid-chess/chesscore/board"
	"github.com/corvid-chess/chesscore/types"
)

// Info is the result of one traversal of the enemy side's pieces: every
// square it attacks, which of its pieces check our king, which of our own
// pieces are pinned, which enemy pieces sit in an x-ray (discovered-attack)
// blocking position, and which squares our king may safely step to.
//
// An enemy attacker contributes to at most one of Checkers or a pin/xray
// classification, never both: if a slider directly attacks the king, no
// blocker analysis is performed for it.
type Info struct {
	Attacks         bitboard.Bitboard
	Checkers        bitboard.Bitboard
	Pins            bitboard.Bitboard
	Xrays           bitboard.Bitboard
	SafeKingSquares bitboard.Bitboard
}

// Compute runs the attack-info pass: `they` is the enemy color, `their` is
// the enemy's piece sets, `king` is our king's square, `ourOccupancy` is
// the union of our own pieces, and `occupancy` is the full board
// occupancy (both sides).
func Compute(they types.Player, their *board.Pieces, king types.Square, ourOccupancy, occupancy bitboard.Bitboard) Info {
	var info Info
	info.SafeKingSquares = King(king).Without(ourOccupancy)

	occupancyWithoutKing := occupancy.Without(bitboard.FromSquare(king))

	// King.
	info.Attacks |= King(their.KingSquare())

	// Knights.
	their.Knights.Iter(func(sq types.Square) {
		targets := Knight(sq)
		info.Attacks |= targets
		if targets.Contains(king) {
			info.Checkers |= bitboard.FromSquare(sq)
		}
	})

	// Pawns.
	their.Pawns.Iter(func(sq types.Square) {
		targets := Pawn(sq, they)
		info.Attacks |= targets
		if targets.Contains(king) {
			info.Checkers |= bitboard.FromSquare(sq)
		}
	})

	// Sliders: queens, bishops, rooks. Each contributes either a checker or
	// a pin/xray classification against our king, via its own ray table.
	sliderPass(&info, their.Queens, king, ourOccupancy, occupancy, occupancyWithoutKing, Queen, Between)
	sliderPass(&info, their.Bishops, king, ourOccupancy, occupancy, occupancyWithoutKing, Bishop, DiagonalBetween)
	sliderPass(&info, their.Rooks, king, ourOccupancy, occupancy, occupancyWithoutKing, Rook, OrthogonalBetween)

	info.SafeKingSquares = info.SafeKingSquares.Without(info.Attacks)
	return info
}

// sliderPass handles one kind of slider (queen, bishop, or rook): attackFn
// computes its attack set against a given occupancy, and rayFn gives the
// squares strictly between two squares along that slider's own geometry
// (used to find the unique blocker between the slider and our king, if
// there is no direct check).
func sliderPass(
	info *Info,
	sliders bitboard.Bitboard,
	king types.Square,
	ourOccupancy, occupancy, occupancyWithoutKing bitboard.Bitboard,
	attackFn func(types.Square, bitboard.Bitboard) bitboard.Bitboard,
	rayFn func(types.Square, types.Square) bitboard.Bitboard,
) {
	sliders.Iter(func(sq types.Square) {
		targets := attackFn(sq, occupancy)
		info.Attacks |= targets
		if targets.Contains(king) {
			info.Checkers |= bitboard.FromSquare(sq)
			info.SafeKingSquares = info.SafeKingSquares.Without(attackFn(sq, occupancyWithoutKing))
			return
		}
		ray := rayFn(sq, king)
		blocker := ray.Intersect(occupancy).Without(bitboard.FromSquare(sq))
		if blocker.Count() == 1 {
			if blocker.Intersect(ourOccupancy).HasAny() {
				info.Pins |= blocker
			} else {
				info.Xrays |= blocker
			}
		}
	})
}
