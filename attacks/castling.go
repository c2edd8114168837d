package attacks

import "github.com/corvid-chess/chesscore/bitboard"

// Castle-walk masks: KingWalk is the set of squares the king passes over
// or lands on (none of which may be attacked); RookWalk is the set of
// squares that must be entirely empty for the rook to reach its castled
// square (a superset of KingWalk on the queenside, where the rook's path
// includes the square next to it that the king never passes over).
const (
	WhiteShortKingWalk = bitboard.Bitboard(0x0000_0000_0000_0060) // f1, g1
	WhiteShortRookWalk = bitboard.Bitboard(0x0000_0000_0000_0060)
	WhiteLongKingWalk  = bitboard.Bitboard(0x0000_0000_0000_000C) // c1, d1
	WhiteLongRookWalk  = bitboard.Bitboard(0x0000_0000_0000_000E) // b1, c1, d1
	BlackShortKingWalk = bitboard.Bitboard(0x6000_0000_0000_0000) // f8, g8
	BlackShortRookWalk = bitboard.Bitboard(0x6000_0000_0000_0000)
	BlackLongKingWalk  = bitboard.Bitboard(0x0C00_0000_0000_0000) // c8, d8
	BlackLongRookWalk  = bitboard.Bitboard(0x0E00_0000_0000_0000) // b8, c8, d8
)
