package attacks

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/corvid-chess/chesscore/bitboard"
	"github.com/corvid-chess/chesscore/board"
	"github.com/corvid-chess/chesscore/types"
)

func TestKnightAttacksCorner(t *testing.T) {
	got := Knight(types.A1)
	want := bitboard.FromSquares(types.B3, types.C2)
	require.Equal(t, want, got)
}

func TestKingAttacksCenter(t *testing.T) {
	got := King(types.E4)
	want := bitboard.FromSquares(
		types.D3, types.E3, types.F3,
		types.D4, types.F4,
		types.D5, types.E5, types.F5,
	)
	require.Equal(t, want, got)
}

func TestPawnAttacksAreColorDependent(t *testing.T) {
	require.Equal(t, bitboard.FromSquares(types.D3, types.F3), Pawn(types.E4, types.Black))
	require.Equal(t, bitboard.FromSquares(types.D5, types.F5), Pawn(types.E4, types.White))
}

func TestRookAttacksStopAtBlockers(t *testing.T) {
	occ := bitboard.FromSquares(types.A4, types.D1, types.D7)
	got := Rook(types.D4, occ)
	want := bitboard.FromSquares(
		types.A4, types.B4, types.C4, types.E4, types.F4, types.G4, types.H4, // rank
		types.D1, types.D2, types.D3, types.D5, types.D6, types.D7, // file
	)
	require.Equal(t, want, got)
}

func TestBishopAttacksStopAtBlockers(t *testing.T) {
	occ := bitboard.FromSquares(types.B2, types.G7)
	got := Bishop(types.D4, occ)
	want := bitboard.FromSquares(
		types.C3, types.B2, // southwest, stops at blocker (inclusive)
		types.E3, types.F2, types.G1, // southeast
		types.C5, types.B6, types.A7, // northwest
		types.E5, types.F6, types.G7, // northeast, stops at blocker (inclusive)
	)
	require.Equal(t, want, got)
}

func TestPextSoftwareMatchesHardwareShape(t *testing.T) {
	src := uint64(0b1011_0110)
	mask := uint64(0b1111_0000)
	require.Equal(t, pextSoftware(src, mask), pext(src, mask))
}

func TestBetweenIsEmptyForAdjacentAndSelf(t *testing.T) {
	require.True(t, Between(types.E4, types.E4).IsEmpty())
	require.True(t, Between(types.E4, types.E5).IsEmpty())
	require.Equal(t, bitboard.FromSquares(types.E5, types.E6), Between(types.E4, types.E7))
}

func TestBetweenEmptyWhenNotAligned(t *testing.T) {
	require.True(t, Between(types.A1, types.B3).IsEmpty())
}

func TestCastleWalkMasks(t *testing.T) {
	require.Equal(t, bitboard.FromSquares(types.F1, types.G1), WhiteShortKingWalk)
	require.Equal(t, bitboard.FromSquares(types.B1, types.C1, types.D1), WhiteLongRookWalk)
}

// TestComputeXray mirrors the scenario exercised by the original
// attack-info test suite: an enemy bishop's diagonal to our king is blocked
// by exactly one enemy piece (its own king), which is classified as an
// x-ray rather than a pin since the blocker belongs to the attacking side.
func TestComputeXray(t *testing.T) {
	// Our king e8; black bishop c6 aims at e8 along the a4-e8 diagonal, with
	// the black king standing on d7, the one square between them.
	their := &board.Pieces{
		Kings:   bitboard.FromSquare(types.D7),
		Bishops: bitboard.FromSquare(types.C6),
	}
	ourOccupancy := bitboard.FromSquares(types.E8)
	occupancy := ourOccupancy | their.Occupancy()

	info := Compute(types.Black, their, types.E8, ourOccupancy, occupancy)
	require.True(t, info.Checkers.IsEmpty())
	require.True(t, info.Pins.IsEmpty())
	require.True(t, info.Xrays.Contains(types.D7), "the black king blocking its own bishop's diagonal should be x-rayed")
}

// TestComputeRookCheckMatchesWholeInfoShape pins down every field of Info
// at once for a single-checker position, so a future change to any one
// field's computation shows up as a readable structural diff rather than a
// single failed bool assertion.
func TestComputeRookCheckMatchesWholeInfoShape(t *testing.T) {
	// Our king e1, black rook e8 gives check along the open e-file.
	their := &board.Pieces{
		Kings: bitboard.FromSquare(types.G8),
		Rooks: bitboard.FromSquare(types.E8),
	}
	ourOccupancy := bitboard.FromSquare(types.E1)
	occupancy := ourOccupancy | their.Occupancy()

	got := Compute(types.Black, their, types.E1, ourOccupancy, occupancy)
	attacks := King(types.G8) | Rook(types.E8, occupancy)
	want := Info{
		Attacks:         attacks,
		Checkers:        bitboard.FromSquare(types.E8),
		Pins:            bitboard.Empty,
		Xrays:           bitboard.Empty,
		SafeKingSquares: King(types.E1).Without(ourOccupancy).Without(attacks),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Info mismatch (-want +got):\n%s", diff)
	}
}
