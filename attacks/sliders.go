package attacks

import (
	"math/bits"

	"github.com/corvid-chess/chesscore/bitboard"
	"github.com/corvid-chess/chesscore/types"
)

// Bishop and Rook return the slider's attack set from sq given the full
// board occupancy. Queen is their union.
func Bishop(sq types.Square, occupancy bitboard.Bitboard) bitboard.Bitboard {
	idx := bishopAttackOffsets[sq] + int(pext(uint64(occupancy), bishopRelevantOccupancy[sq]))
	return bishopAttackTable[idx]
}

func Rook(sq types.Square, occupancy bitboard.Bitboard) bitboard.Bitboard {
	idx := rookAttackOffsets[sq] + int(pext(uint64(occupancy), rookRelevantOccupancy[sq]))
	return rookAttackTable[idx]
}

func Queen(sq types.Square, occupancy bitboard.Bitboard) bitboard.Bitboard {
	return Bishop(sq, occupancy) | Rook(sq, occupancy)
}

// bishopBitCount and rookBitCount are the number of relevant-occupancy bits
// per square, fixing the exact table sizes: bishop tables sum to 5,248
// entries, rook tables to 102,400.
var bishopBitCount = [64]int{
	6, 5, 5, 5, 5, 5, 5, 6,
	5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 7, 7, 7, 7, 5, 5,
	5, 5, 7, 9, 9, 7, 5, 5,
	5, 5, 7, 9, 9, 7, 5, 5,
	5, 5, 7, 7, 7, 7, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5,
	6, 5, 5, 5, 5, 5, 5, 6,
}

var rookBitCount = [64]int{
	12, 11, 11, 11, 11, 11, 11, 12,
	11, 10, 10, 10, 10, 10, 10, 11,
	11, 10, 10, 10, 10, 10, 10, 11,
	11, 10, 10, 10, 10, 10, 10, 11,
	11, 10, 10, 10, 10, 10, 10, 11,
	11, 10, 10, 10, 10, 10, 10, 11,
	11, 10, 10, 10, 10, 10, 10, 11,
	12, 11, 11, 11, 11, 11, 11, 12,
}

var bishopRelevantOccupancy = initBishopRelevantOccupancy()
var rookRelevantOccupancy = initRookRelevantOccupancy()

// bishopAttackOffsets/rookAttackOffsets map a square to the start of its
// slice within the dense attack tables below, computed from the per-square
// relevant-occupancy bit counts (2^bits entries per square).
var bishopAttackOffsets = initOffsets(bishopBitCount[:])
var rookAttackOffsets = initOffsets(rookBitCount[:])

var bishopAttackTable = initBishopAttacks()
var rookAttackTable = initRookAttacks()

func initOffsets(bitCount []int) (out [64]int) {
	offset := 0
	for sq := 0; sq < 64; sq++ {
		out[sq] = offset
		offset += 1 << bitCount[sq]
	}
	return out
}

const (
	not1stRank = ^uint64(0x00000000000000FF)
	not8thRank = ^uint64(0xFF00000000000000)
)

func initBishopRelevantOccupancy() (out [64]uint64) {
	innerBoard := notAFile & notHFile & not1stRank & not8thRank
	for sq := 0; sq < 64; sq++ {
		out[sq] = rayScan(sq, -9, innerBoard) | rayScan(sq, -7, innerBoard) |
			rayScan(sq, 7, innerBoard) | rayScan(sq, 9, innerBoard)
	}
	return out
}

func initRookRelevantOccupancy() (out [64]uint64) {
	for sq := 0; sq < 64; sq++ {
		var occ uint64
		rank, file := sq/8, sq%8
		for r := rank + 1; r <= 6; r++ {
			occ |= uint64(1) << (r*8 + file)
		}
		for r := rank - 1; r >= 1; r-- {
			occ |= uint64(1) << (r*8 + file)
		}
		for f := file + 1; f <= 6; f++ {
			occ |= uint64(1) << (rank*8 + f)
		}
		for f := file - 1; f >= 1; f-- {
			occ |= uint64(1) << (rank*8 + f)
		}
		out[sq] = occ
	}
	return out
}

// rayScan walks from sq in fixed knight-free steps of `step` squares on the
// 1-D board index, stopping before crossing a file edge, and masks the walk
// against boundsMask (used to exclude the final ray square, which is never
// a "relevant" occupancy square since a piece there doesn't block anything
// further).
func rayScan(sq int, step int, boundsMask uint64) uint64 {
	var occ uint64
	file := sq % 8
	cur := sq
	for {
		prevFile := file
		cur += step
		if cur < 0 || cur > 63 {
			break
		}
		file = cur % 8
		// A diagonal step must change file by exactly 1; catches wraparound.
		if abs(file-prevFile) != 1 {
			break
		}
		bit := uint64(1) << cur
		if bit&boundsMask == 0 {
			break
		}
		occ |= bit
	}
	return occ
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// genOccupancy expands key (a relevantBitCount-bit integer) into a concrete
// blocker bitboard by distributing its bits across relevantOccupancy's set
// squares, least-significant square first.
func genOccupancy(key, relevantBitCount int, relevantOccupancy uint64) uint64 {
	var occupancy uint64
	remaining := relevantOccupancy
	for i := 0; i < relevantBitCount; i++ {
		sq := bits.TrailingZeros64(remaining)
		remaining &= remaining - 1
		if key&(1<<i) != 0 {
			occupancy |= uint64(1) << sq
		}
	}
	return occupancy
}

// slowBishopAttacks/slowRookAttacks compute a slider's attack set from
// scratch by ray-walking against a concrete occupancy; used only to
// populate the dense PEXT-indexed tables at package load.
func slowBishopAttacks(sq int, occupancy uint64) bitboard.Bitboard {
	var attacks uint64
	for _, step := range [4]int{9, 7, -7, -9} {
		attacks |= walkRay(sq, step, occupancy)
	}
	return bitboard.Bitboard(attacks)
}

func slowRookAttacks(sq int, occupancy uint64) bitboard.Bitboard {
	var attacks uint64
	rank, file := sq/8, sq%8
	for r := rank + 1; r <= 7; r++ {
		s := r*8 + file
		attacks |= uint64(1) << s
		if occupancy&(uint64(1)<<s) != 0 {
			break
		}
	}
	for r := rank - 1; r >= 0; r-- {
		s := r*8 + file
		attacks |= uint64(1) << s
		if occupancy&(uint64(1)<<s) != 0 {
			break
		}
	}
	for f := file + 1; f <= 7; f++ {
		s := rank*8 + f
		attacks |= uint64(1) << s
		if occupancy&(uint64(1)<<s) != 0 {
			break
		}
	}
	for f := file - 1; f >= 0; f-- {
		s := rank*8 + f
		attacks |= uint64(1) << s
		if occupancy&(uint64(1)<<s) != 0 {
			break
		}
	}
	return bitboard.Bitboard(attacks)
}

func walkRay(sq int, step int, occupancy uint64) uint64 {
	var attacks uint64
	file := sq % 8
	cur := sq
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
		bit := uint64(1) << cur
		attacks |= bit
		if occupancy&bit != 0 {
			break
		}
	}
	return attacks
}

func initBishopAttacks() []bitboard.Bitboard {
	total := bishopAttackOffsets[63] + (1 << bishopBitCount[63])
	table := make([]bitboard.Bitboard, total)
	for sq := 0; sq < 64; sq++ {
		bitCount := bishopBitCount[sq]
		for j := 0; j < 1<<bitCount; j++ {
			occupancy := genOccupancy(j, bitCount, bishopRelevantOccupancy[sq])
			idx := bishopAttackOffsets[sq] + int(pext(occupancy, bishopRelevantOccupancy[sq]))
			table[idx] = slowBishopAttacks(sq, occupancy)
		}
	}
	return table
}

func initRookAttacks() []bitboard.Bitboard {
	total := rookAttackOffsets[63] + (1 << rookBitCount[63])
	table := make([]bitboard.Bitboard, total)
	for sq := 0; sq < 64; sq++ {
		bitCount := rookBitCount[sq]
		for j := 0; j < 1<<bitCount; j++ {
			occupancy := genOccupancy(j, bitCount, rookRelevantOccupancy[sq])
			idx := rookAttackOffsets[sq] + int(pext(occupancy, rookRelevantOccupancy[sq]))
			table[idx] = slowRookAttacks(sq, occupancy)
		}
	}
	return table
}
