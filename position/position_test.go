package position

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/corvid-chess/chesscore/types"
)

func TestStartingFENRoundTrip(t *testing.T) {
	p := Starting()
	require.Equal(t, StartFEN, p.FEN())
}

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", // Kiwipete
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
	}
	for _, fen := range fens {
		p, err := FromFEN(fen)
		require.NoError(t, err, "fen %q", fen)
		require.Equal(t, fen, p.FEN())
	}
}

func TestFromFENRejectsMalformedInput(t *testing.T) {
	cases := []string{
		"",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0",       // too few fields
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq - 0 1",              // 7 ranks
		"rnbqkbnr/ppppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",    // rank sums to 9
		"8/8/8/8/8/8/8/8 w KQkq - 0 1",                                 // no kings
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1",     // bad side
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w XQkq - 0 1",     // bad castle rights
	}
	for _, fen := range cases {
		_, err := FromFEN(fen)
		require.Error(t, err, "fen %q", fen)
	}
}

func TestTryFromAcceptsEPDAndPrefixes(t *testing.T) {
	p1, err := TryFrom("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -")
	require.NoError(t, err)
	require.Equal(t, StartFEN, p1.FEN())

	p2, err := TryFrom("fen " + StartFEN)
	require.NoError(t, err)
	require.Equal(t, StartFEN, p2.FEN())
}

func TestMakeMoveQuietPawnPush(t *testing.T) {
	p := Starting()
	next := p.MakeMove(types.Move{From: types.E2, To: types.E4})
	require.Equal(t, "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1", next.FEN())
}

func TestMakeMoveCastlingMovesRook(t *testing.T) {
	p, err := FromFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	next := p.MakeMove(types.Move{From: types.E1, To: types.G1})
	piece, ok := next.Board.PieceAt(types.F1)
	require.True(t, ok)
	require.Equal(t, types.Rook, piece.Kind)
	require.False(t, next.CastleRights.Has(types.WhiteShort))
	require.False(t, next.CastleRights.Has(types.WhiteLong))
}

func TestMakeMoveEnPassantRemovesCapturedPawn(t *testing.T) {
	p, err := FromFEN("rnbqkbnr/ppp1pppp/8/8/1Pp5/5N2/P1PP1PPP/RNBQK2R b KQkq b3 0 1")
	require.NoError(t, err)
	next := p.MakeMove(types.Move{From: types.C4, To: types.B3})
	_, onB4 := next.Board.PieceAt(types.B4)
	require.False(t, onB4, "captured pawn should be removed from b4")
	piece, ok := next.Board.PieceAt(types.B3)
	require.True(t, ok)
	require.Equal(t, types.Pawn, piece.Kind)
	require.Equal(t, types.Black, piece.Player)
}

func TestMakeMovePromotion(t *testing.T) {
	p, err := FromFEN("8/P7/8/8/8/8/8/k6K w - - 0 1")
	require.NoError(t, err)
	next := p.MakeMove(types.Move{From: types.A7, To: types.A8, Promotion: types.PromotionQueen})
	piece, ok := next.Board.PieceAt(types.A8)
	require.True(t, ok)
	require.Equal(t, types.Queen, piece.Kind)
}

func TestHashStableAcrossTranspositions(t *testing.T) {
	p1 := Starting()
	p1 = p1.MakeMove(types.Move{From: types.G1, To: types.F3})
	p1 = p1.MakeMove(types.Move{From: types.G8, To: types.F6})
	p1 = p1.MakeMove(types.Move{From: types.B1, To: types.C3})
	p1 = p1.MakeMove(types.Move{From: types.B8, To: types.C6})

	p2 := Starting()
	p2 = p2.MakeMove(types.Move{From: types.B1, To: types.C3})
	p2 = p2.MakeMove(types.Move{From: types.B8, To: types.C6})
	p2 = p2.MakeMove(types.Move{From: types.G1, To: types.F3})
	p2 = p2.MakeMove(types.Move{From: types.G8, To: types.F6})

	require.Equal(t, p1.Hash(), p2.Hash())
}

func TestHashDiffersOnEnPassantFileOnly(t *testing.T) {
	p1, err := FromFEN("rnbqkbnr/pppppppp/8/8/3PP3/8/PPP2PPP/RNBQKBNR b KQkq e3 0 1")
	require.NoError(t, err)
	p2, err := FromFEN("rnbqkbnr/pppppppp/8/8/3PP3/8/PPP2PPP/RNBQKBNR b KQkq d3 0 1")
	require.NoError(t, err)
	require.NotEqual(t, p1.Hash(), p2.Hash())
}
