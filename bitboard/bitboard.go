// Package bitboard implements the 64-bit set-of-squares representation that
// the rest of the chess core is built on.
package bitboard

import (
	"math/bits"
	"strings"

	"github.com/corvid-chess/chesscore/types"
)

// Bitboard is a 64-bit unsigned integer interpreted as a subset of the 64
// board squares: bit i set means square i is a member. It is a pure value
// type; every operation below except PopLSB returns a new Bitboard rather
// than mutating in place.
type Bitboard uint64

// Empty is the bitboard with no squares set.
const Empty Bitboard = 0

// All is the bitboard with every square set.
const All Bitboard = 0xFFFFFFFFFFFFFFFF

// FromSquare returns the singleton bitboard containing only sq.
func FromSquare(sq types.Square) Bitboard {
	return Bitboard(1) << sq
}

// FromSquares returns the bitboard containing exactly the given squares.
func FromSquares(squares ...types.Square) Bitboard {
	var b Bitboard
	for _, sq := range squares {
		b |= FromSquare(sq)
	}
	return b
}

// Union returns the set union (bitwise OR) of b and other.
func (b Bitboard) Union(other Bitboard) Bitboard { return b | other }

// Intersect returns the set intersection (bitwise AND) of b and other.
func (b Bitboard) Intersect(other Bitboard) Bitboard { return b & other }

// SymmetricDifference returns the bitwise XOR of b and other.
func (b Bitboard) SymmetricDifference(other Bitboard) Bitboard { return b ^ other }

// Complement returns the set of all squares not in b.
func (b Bitboard) Complement() Bitboard { return ^b }

// Without returns b with every square in other removed (relative
// complement, b \ other).
func (b Bitboard) Without(other Bitboard) Bitboard { return b &^ other }

// Contains reports whether sq is a member of b.
func (b Bitboard) Contains(sq types.Square) bool {
	return b&FromSquare(sq) != 0
}

// IsEmpty reports whether b has no members.
func (b Bitboard) IsEmpty() bool { return b == 0 }

// HasAny reports whether b has at least one member.
func (b Bitboard) HasAny() bool { return b != 0 }

// Count returns the number of set squares (population count).
func (b Bitboard) Count() int { return bits.OnesCount64(uint64(b)) }

// ShiftUp shifts every square up a rank (toward rank 8), discarding any
// squares that would fall off the top of the board. Callers that shift in
// other directions are responsible for masking off the file(s) that would
// wrap around an edge before shifting.
func (b Bitboard) ShiftUp() Bitboard { return b << 8 }

// ShiftDown shifts every square down a rank (toward rank 1), discarding any
// squares that would fall off the bottom of the board.
func (b Bitboard) ShiftDown() Bitboard { return b >> 8 }

// AsSquare returns the single square set in b. It requires exactly one bit
// to be set; callers must ensure that invariant, typically via Count() == 1
// or HasAny() in a context where uniqueness is already known.
func (b Bitboard) AsSquare() types.Square {
	if b.Count() != 1 {
		panic("bitboard: AsSquare requires exactly one set bit")
	}
	return types.Square(bits.TrailingZeros64(uint64(b)))
}

// PopLSB removes and returns the least-significant set square from *b. It
// panics if b is empty; callers drive iteration with HasAny()/IsEmpty().
func (b *Bitboard) PopLSB() types.Square {
	if *b == 0 {
		panic("bitboard: PopLSB on an empty bitboard")
	}
	sq := types.Square(bits.TrailingZeros64(uint64(*b)))
	*b &= *b - 1
	return sq
}

// Iter calls f for every square set in b, from least to most significant,
// without mutating b.
func (b Bitboard) Iter(f func(types.Square)) {
	bb := b
	for bb.HasAny() {
		f(bb.PopLSB())
	}
}

// Squares materializes b's members into a slice, least to most significant.
func (b Bitboard) Squares() []types.Square {
	out := make([]types.Square, 0, b.Count())
	b.Iter(func(sq types.Square) { out = append(out, sq) })
	return out
}

// String renders b as an 8x8 grid, rank 8 at the top, rank 1 at the bottom,
// '1' for an occupied square and '.' for empty, matching the layout used
// throughout this package's tests for easy diffing.
func (b Bitboard) String() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			sq := types.SquareFromFileRank(types.File(file), types.Rank(rank))
			if b.Contains(sq) {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('.')
			}
			if file != 7 {
				sb.WriteByte(' ')
			}
		}
		if rank != 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
