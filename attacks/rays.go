package attacks

import (
	"github.com/corvid-chess/chesscore/bitboard"
	"github.com/corvid-chess/chesscore/types"
)

// Between returns the squares strictly between from and to when they share
// a rank, file, or diagonal; it is empty otherwise, and empty when
// from == to.
func Between(from, to types.Square) bitboard.Bitboard {
	return rays[int(from)*64+int(to)]
}

// DiagonalBetween is like Between but only ever non-empty for squares that
// share a diagonal.
func DiagonalBetween(from, to types.Square) bitboard.Bitboard {
	return diagonalRays[int(from)*64+int(to)]
}

// OrthogonalBetween is like Between but only ever non-empty for squares
// that share a rank or file.
func OrthogonalBetween(from, to types.Square) bitboard.Bitboard {
	return orthogonalRays[int(from)*64+int(to)]
}

var diagonalRays = initDiagonalRays()
var orthogonalRays = initOrthogonalRays()
var rays = initRays()

func initDiagonalRays() (out [64 * 64]bitboard.Bitboard) {
	for from := 0; from < 64; from++ {
		for _, step := range [4]int{9, 7, -7, -9} {
			between := uint64(0)
			file := from % 8
			cur := from
			for {
				prevFile := file
				cur += step
				if cur < 0 || cur > 63 {
					break
				}
				file = cur % 8
				if abs(file-prevFile) != 1 {
					break
				}
				out[from*64+cur] = bitboard.Bitboard(between)
				between |= uint64(1) << cur
			}
		}
	}
	return out
}

func initOrthogonalRays() (out [64 * 64]bitboard.Bitboard) {
	for from := 0; from < 64; from++ {
		rank, file := from/8, from%8
		// East.
		between := uint64(0)
		for f := file + 1; f <= 7; f++ {
			to := rank*8 + f
			out[from*64+to] = bitboard.Bitboard(between)
			between |= uint64(1) << to
		}
		// West.
		between = 0
		for f := file - 1; f >= 0; f-- {
			to := rank*8 + f
			out[from*64+to] = bitboard.Bitboard(between)
			between |= uint64(1) << to
		}
		// North.
		between = 0
		for r := rank + 1; r <= 7; r++ {
			to := r*8 + file
			out[from*64+to] = bitboard.Bitboard(between)
			between |= uint64(1) << to
		}
		// South.
		between = 0
		for r := rank - 1; r >= 0; r-- {
			to := r*8 + file
			out[from*64+to] = bitboard.Bitboard(between)
			between |= uint64(1) << to
		}
	}
	return out
}

func initRays() (out [64 * 64]bitboard.Bitboard) {
	for i := range out {
		out[i] = diagonalRays[i] | orthogonalRays[i]
	}
	return out
}
