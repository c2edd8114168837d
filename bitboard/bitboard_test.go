package bitboard

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/corvid-chess/chesscore/types"
)

func TestFromSquare(t *testing.T) {
	require.Equal(t, Bitboard(1), FromSquare(types.A1))
	require.Equal(t, Bitboard(1)<<63, FromSquare(types.H8))
}

func TestSetAlgebra(t *testing.T) {
	a := FromSquares(types.A1, types.B1, types.C1)
	b := FromSquares(types.B1, types.C1, types.D1)

	require.Equal(t, FromSquares(types.A1, types.B1, types.C1, types.D1), a.Union(b))
	require.Equal(t, FromSquares(types.B1, types.C1), a.Intersect(b))
	require.Equal(t, FromSquares(types.A1, types.D1), a.SymmetricDifference(b))
	require.Equal(t, FromSquares(types.A1), a.Without(b))
	require.Equal(t, All.Without(a), a.Complement())
}

func TestCountAndIter(t *testing.T) {
	b := FromSquares(types.A1, types.H8, types.D4)
	require.Equal(t, 3, b.Count())

	var seen []types.Square
	b.Iter(func(sq types.Square) { seen = append(seen, sq) })
	require.Equal(t, []types.Square{types.A1, types.D4, types.H8}, seen)
	require.Equal(t, seen, b.Squares())
}

func TestAsSquarePanicsOnNonSingleton(t *testing.T) {
	require.Panics(t, func() {
		FromSquares(types.A1, types.B1).AsSquare()
	})
	require.Equal(t, types.E4, FromSquare(types.E4).AsSquare())
}

func TestPopLSB(t *testing.T) {
	b := FromSquares(types.D4, types.A1)
	sq := b.PopLSB()
	require.Equal(t, types.A1, sq)
	require.Equal(t, FromSquare(types.D4), b)
}

func TestStringRendersTopRankFirst(t *testing.T) {
	b := FromSquares(types.A8, types.H1)
	want := "1 . . . . . . .\n" +
		". . . . . . . .\n" +
		". . . . . . . .\n" +
		". . . . . . . .\n" +
		". . . . . . . .\n" +
		". . . . . . . .\n" +
		". . . . . . . .\n" +
		". . . . . . . 1"
	require.Equal(t, want, b.String())
}
