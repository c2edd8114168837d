// Package types defines the core value types of the chess core: squares,
// files, ranks, players, piece kinds, castle rights, promotions, and moves.
//
// Every type here is a small value type (an integer under the hood) with
// bounds-checked construction: a Square, File, or Rank built from raw input
// either is in range or construction reports an error, so downstream code
// never has to re-validate a square index before indexing a table with it.
package types

import "fmt"

// Square is a board square in little-endian rank-file order: A1 = 0, the
// file increases first (A1, B1, ..., H1), then the rank (A2, B2, ...).
type Square uint8

const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

// BoardSize is the number of squares on a chessboard.
const BoardSize = 64

// NewSquare validates idx as a square index and returns the corresponding
// Square, or an error if idx is out of the 0..63 range.
func NewSquare(idx int) (Square, error) {
	if idx < 0 || idx >= BoardSize {
		return 0, fmt.Errorf("square index out of range: got %d, want 0..63", idx)
	}
	return Square(idx), nil
}

// File returns the file (0 = 'a', 7 = 'h') this square lies on.
func (s Square) File() File {
	return File(s % 8)
}

// Rank returns the rank (0 = '1', 7 = '8') this square lies on.
func (s Square) Rank() Rank {
	return Rank(s / 8)
}

// SquareFromFileRank builds a square from its file and rank.
func SquareFromFileRank(f File, r Rank) Square {
	return Square(int(r)*8 + int(f))
}

// SquareFromString parses an algebraic square name such as "e4".
func SquareFromString(s string) (Square, error) {
	if len(s) != 2 {
		return 0, fmt.Errorf("square should be a two-character algebraic name, got %q", s)
	}
	f, err := FileFromByte(s[0])
	if err != nil {
		return 0, fmt.Errorf("square %q: %w", s, err)
	}
	r, err := RankFromByte(s[1])
	if err != nil {
		return 0, fmt.Errorf("square %q: %w", s, err)
	}
	return SquareFromFileRank(f, r), nil
}

// String renders the square in algebraic notation, e.g. "e4".
func (s Square) String() string {
	return string([]byte{'a' + byte(s.File()), '1' + byte(s.Rank())})
}

// File is a board file, 0 ('a') through 7 ('h').
type File uint8

const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

// fileMasks holds the precomputed bitboard mask for each file, as a plain
// uint64 to avoid an import cycle with package bitboard.
var fileMasks = [8]uint64{
	0x0101010101010101,
	0x0202020202020202,
	0x0404040404040404,
	0x0808080808080808,
	0x1010101010101010,
	0x2020202020202020,
	0x4040404040404040,
	0x8080808080808080,
}

// Mask returns the 64-bit mask of squares on this file.
func (f File) Mask() uint64 {
	return fileMasks[f]
}

// FileFromByte parses a file letter ('a'..'h', case-insensitive).
func FileFromByte(b byte) (File, error) {
	if b >= 'a' && b <= 'h' {
		return File(b - 'a'), nil
	}
	if b >= 'A' && b <= 'H' {
		return File(b - 'A'), nil
	}
	return 0, fmt.Errorf("file should be within 'a'..'h', got %q", b)
}

// String renders the file as its lowercase letter.
func (f File) String() string {
	return string([]byte{'a' + byte(f)})
}

// Rank is a board rank, 0 ('1') through 7 ('8').
type Rank uint8

const (
	Rank1 Rank = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
)

var rankMasks = [8]uint64{
	0x00000000000000FF,
	0x000000000000FF00,
	0x0000000000FF0000,
	0x00000000FF000000,
	0x000000FF00000000,
	0x0000FF0000000000,
	0x00FF000000000000,
	0xFF00000000000000,
}

// Mask returns the 64-bit mask of squares on this rank.
func (r Rank) Mask() uint64 {
	return rankMasks[r]
}

// RankFromByte parses a rank digit ('1'..'8').
func RankFromByte(b byte) (Rank, error) {
	if b < '1' || b > '8' {
		return 0, fmt.Errorf("rank should be within '1'..'8', got %q", b)
	}
	return Rank(b - '1'), nil
}

// String renders the rank as its digit.
func (r Rank) String() string {
	return string([]byte{'1' + byte(r)})
}
