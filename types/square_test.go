package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSquareFromString(t *testing.T) {
	cases := []struct {
		s    string
		want Square
	}{
		{"a1", A1},
		{"h8", H8},
		{"e4", E4},
	}
	for _, c := range cases {
		got, err := SquareFromString(c.s)
		require.NoError(t, err)
		require.Equal(t, c.want, got)
		require.Equal(t, c.s, got.String())
	}
}

func TestSquareFromStringRejectsGarbage(t *testing.T) {
	for _, s := range []string{"", "a", "a9", "i1", "abc"} {
		_, err := SquareFromString(s)
		require.Error(t, err, "input %q", s)
	}
}

func TestFileAndRank(t *testing.T) {
	require.Equal(t, FileE, E4.File())
	require.Equal(t, Rank4, E4.Rank())
	require.Equal(t, E4, SquareFromFileRank(FileE, Rank4))
}

func TestCastleRightsRoundTrip(t *testing.T) {
	for _, s := range []string{"-", "K", "KQ", "KQkq", "Qk"} {
		rights, err := CastleRightsFromString(s)
		require.NoError(t, err)
		require.Equal(t, s, rights.String())
	}
}

func TestCastleRightsRejectsOutOfOrder(t *testing.T) {
	for _, s := range []string{"Kk Q", "qQ", "KK", "x"} {
		_, err := CastleRightsFromString(s)
		require.Error(t, err, "input %q", s)
	}
}

func TestMoveUCIRoundTrip(t *testing.T) {
	cases := []string{"e2e4", "e7e8q", "a1h8"}
	for _, s := range cases {
		m, err := MoveFromUCI(s)
		require.NoError(t, err)
		require.Equal(t, s, m.String())
	}
}
