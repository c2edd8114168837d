package movegen

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/corvid-chess/chesscore/position"
	"github.com/corvid-chess/chesscore/types"
)

func TestGenerateStartingPositionMoveCount(t *testing.T) {
	p := position.Starting()
	moves := Generate(&p)
	require.Equal(t, 20, moves.Len())
}

func TestGenerateNoLegalFilterNeeded(t *testing.T) {
	// Every move Generate returns must leave our own king safe: replaying
	// each move and recomputing attack info for the side that just moved
	// must show it isn't in check, with no second legality pass involved.
	p := position.Starting()
	moves := Generate(&p)
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		next := p.MakeMove(m)
		info := next.AttackInfo(p.SideToMove)
		require.True(t, info.Checkers.IsEmpty(), "move %s left the mover's king in check", m)
	}
}

func TestGenerateDoubleCheckOnlyKingMoves(t *testing.T) {
	// Black king e8 is double-checked by a white rook on e1 along the e-file
	// and a white bishop on the a4-e8 diagonal; only king moves may be legal,
	// even though the black knight on g8 could otherwise block on e7.
	p, err := position.FromFEN("4k1n1/8/8/8/B7/8/8/4RK2 b - - 0 1")
	require.NoError(t, err)
	moves := Generate(&p)
	for i := 0; i < moves.Len(); i++ {
		require.Equal(t, types.E8, moves.At(i).From, "non-king move generated during double check")
	}
}

func TestGeneratePinnedPieceCannotMoveOffRay(t *testing.T) {
	// White king e1, white bishop e4 pinned by black rook e8 along the
	// e-file: a bishop can never move along a file, so it has zero legal
	// moves here.
	p, err := position.FromFEN("4r2k/8/8/8/4B3/8/8/4K3 w - - 0 1")
	require.NoError(t, err)
	moves := Generate(&p)
	for i := 0; i < moves.Len(); i++ {
		require.NotEqual(t, types.E4, moves.At(i).From, "pinned bishop has no legal moves but one was generated")
	}
}

func TestGenerateEnPassantDiscoveredCheckIsIllegal(t *testing.T) {
	// White king h5, black pawn f5 just double-pushed (ep target f6), a
	// white pawn stands on e5 adjacent to it. Capturing en passant would
	// clear both pawns off the fifth rank, exposing the king to the black
	// rook on a5 along that rank.
	p, err := position.FromFEN("8/8/8/r3Pp1K/8/8/8/6k1 w - f6 0 1")
	require.NoError(t, err)
	moves := Generate(&p)
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		require.False(t, m.From == types.E5 && m.To == types.F6, "illegal en passant capture e5xf6 was generated")
	}
}

func TestGenerateEnPassantCapturesTheCheckingPawn(t *testing.T) {
	// Black pawn c5 just double-pushed from c7 and checks the white king on
	// d4 directly (a black pawn attacks diagonally toward rank 1). The en
	// passant capture b5xc6 resolves the check by removing the checking
	// pawn, even though its landing square c6 is not the checker's square
	// c5 itself — the allowed-squares mask must accept this move by
	// checking the captured pawn's square, not just the destination.
	p, err := position.FromFEN("7k/8/8/1Pp5/3K4/8/8/8 w - c6 0 1")
	require.NoError(t, err)
	moves := Generate(&p)
	found := false
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		if m.From == types.B5 && m.To == types.C6 {
			found = true
		}
	}
	require.True(t, found, "en passant capture of the checking pawn was not generated")
}

func TestGenerateCastlingRequiresRight(t *testing.T) {
	p, err := position.FromFEN("r3k2r/8/8/8/8/8/8/R3K2R w Qkq - 0 1")
	require.NoError(t, err)
	moves := Generate(&p)
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		require.False(t, m.From == types.E1 && m.To == types.G1, "white short castle generated without the right")
	}
}

func TestGenerateCastlingBlockedWhenSquareAttacked(t *testing.T) {
	// Black rook on f8 attacks f1, one of the squares the white king must
	// pass through to castle short; short castling should not be offered.
	p, err := position.FromFEN("4kr2/8/8/8/8/8/8/4K2R w K - 0 1")
	require.NoError(t, err)
	moves := Generate(&p)
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		require.False(t, m.From == types.E1 && m.To == types.G1, "white short castle generated through an attacked square")
	}
}
