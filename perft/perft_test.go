package perft

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/corvid-chess/chesscore/position"
)

func TestCountDepthZeroIsOne(t *testing.T) {
	p := position.Starting()
	require.Equal(t, uint64(1), Count(p, 0))
}

// Reference node counts from the standard perft results table
// (https://www.chessprogramming.org/Perft_Results).
func TestCountStartingPosition(t *testing.T) {
	p := position.Starting()
	cases := []struct {
		depth int
		want  uint64
	}{
		{1, 20},
		{2, 400},
		{3, 8902},
		{4, 197281},
	}
	for _, c := range cases {
		require.Equal(t, c.want, Count(p, c.depth), "depth %d", c.depth)
	}
}

func TestCountKiwipeteDepthOneAndTwo(t *testing.T) {
	p, err := position.FromFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	require.Equal(t, uint64(48), Count(p, 1))
	require.Equal(t, uint64(2039), Count(p, 2))
}

func TestDivideSumsToCount(t *testing.T) {
	p := position.Starting()
	breakdown := Divide(p, 3)
	var total uint64
	for _, n := range breakdown {
		total += n
	}
	require.Equal(t, Count(p, 3), total)
	require.Equal(t, 20, len(breakdown))
}
