package position

import (
	"math/rand/v2"

	"github.com/corvid-chess/chesscore/types"
)

// Zobrist keys: one per (piece kind, color, square), one per castle-rights
// bit pattern, one per en passant FILE (not square, per the external hash
// contract so that two positions differing only in which square along a
// file the en passant target denotes alias to the same key component when
// irrelevant), and one side-to-move key.
//
// Keys are generated once, at package load, with a fixed seed so that
// hashes are reproducible across runs of the same binary build — handy
// for perft divide output and for tests that assert hash stability.
var (
	pieceKeys     = initPieceKeys()
	castleKeys    = initCastleKeys()
	enPassantKeys = initEnPassantFileKeys()
	sideToMoveKey = rngFor(0xC0FFEE).Uint64()
)

func rngFor(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15))
}

func initPieceKeys() (keys [12][64]uint64) {
	r := rngFor(1)
	for i := 0; i < 12; i++ {
		for sq := 0; sq < 64; sq++ {
			keys[i][sq] = r.Uint64()
		}
	}
	return keys
}

func initCastleKeys() (keys [16]uint64) {
	r := rngFor(2)
	for i := range keys {
		keys[i] = r.Uint64()
	}
	return keys
}

func initEnPassantFileKeys() (keys [8]uint64) {
	r := rngFor(3)
	for i := range keys {
		keys[i] = r.Uint64()
	}
	return keys
}

// Hash returns a Zobrist-style position key derived from piece placement,
// side to move, castle rights, and en passant file only. Positions that
// are identical in those terms hash equally regardless of the move history
// that reached them, which is exactly the property transposition tables
// and repetition detection in an external search rely on.
func (p *Position) Hash() uint64 {
	var h uint64

	for _, player := range [2]types.Player{types.White, types.Black} {
		pieces := p.Board.Side(player)
		for _, kind := range [6]types.PieceKind{types.Pawn, types.Knight, types.Bishop, types.Rook, types.Queen, types.King} {
			piece := types.Piece{Kind: kind, Player: player}
			pieces.BitboardFor(kind).Iter(func(sq types.Square) {
				h ^= pieceKeys[piece.Index()][sq]
			})
		}
	}

	h ^= castleKeys[p.CastleRights]
	if p.EnPassant != nil {
		h ^= enPassantKeys[p.EnPassant.File()]
	}
	if p.SideToMove == types.Black {
		h ^= sideToMoveKey
	}

	return h
}
