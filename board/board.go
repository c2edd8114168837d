// Package board implements the piece-centric storage layer: six bitboards
// per player, plus the combined two-player Board.
package board

import (
	"github.com/corvid-chess/chesscore/bitboard"
	"github.com/corvid-chess/chesscore/types"
)

// Pieces holds one bitboard per piece kind for a single player. The six
// bitboards are pairwise disjoint: no square is a member of more than one.
type Pieces struct {
	Kings   bitboard.Bitboard
	Queens  bitboard.Bitboard
	Rooks   bitboard.Bitboard
	Bishops bitboard.Bitboard
	Knights bitboard.Bitboard
	Pawns   bitboard.Bitboard
}

// Occupancy returns the union of all six piece bitboards: every square this
// player occupies.
func (p *Pieces) Occupancy() bitboard.Bitboard {
	return p.Kings | p.Queens | p.Rooks | p.Bishops | p.Knights | p.Pawns
}

// BitboardFor returns the bitboard that stores pieces of the given kind.
func (p *Pieces) BitboardFor(kind types.PieceKind) bitboard.Bitboard {
	switch kind {
	case types.Pawn:
		return p.Pawns
	case types.Knight:
		return p.Knights
	case types.Bishop:
		return p.Bishops
	case types.Rook:
		return p.Rooks
	case types.Queen:
		return p.Queens
	case types.King:
		return p.Kings
	}
	panic("board: unknown piece kind")
}

// BitboardForContains reports which piece kind, if any, occupies sq among
// this player's pieces.
func (p *Pieces) BitboardForContains(sq types.Square) (types.PieceKind, bool) {
	for _, kind := range [6]types.PieceKind{types.Pawn, types.Knight, types.Bishop, types.Rook, types.Queen, types.King} {
		if p.BitboardFor(kind).Contains(sq) {
			return kind, true
		}
	}
	return 0, false
}

// Place adds a piece of the given kind on sq.
func (p *Pieces) Place(kind types.PieceKind, sq types.Square) {
	bb := p.bitboardPtr(kind)
	*bb |= bitboard.FromSquare(sq)
}

// Remove clears sq from the given kind's bitboard.
func (p *Pieces) Remove(kind types.PieceKind, sq types.Square) {
	bb := p.bitboardPtr(kind)
	*bb = bb.Without(bitboard.FromSquare(sq))
}

func (p *Pieces) bitboardPtr(kind types.PieceKind) *bitboard.Bitboard {
	switch kind {
	case types.Pawn:
		return &p.Pawns
	case types.Knight:
		return &p.Knights
	case types.Bishop:
		return &p.Bishops
	case types.Rook:
		return &p.Rooks
	case types.Queen:
		return &p.Queens
	case types.King:
		return &p.Kings
	}
	panic("board: unknown piece kind")
}

// KingSquare returns the square this player's (unique) king stands on. It
// requires Pieces.Kings to have exactly one member.
func (p *Pieces) KingSquare() types.Square {
	return p.Kings.AsSquare()
}

// Board is the full two-player piece layout.
type Board struct {
	White Pieces
	Black Pieces
}

// Side returns a pointer to the Pieces belonging to player.
func (b *Board) Side(player types.Player) *Pieces {
	if player == types.White {
		return &b.White
	}
	return &b.Black
}

// Occupancy returns the union of every square occupied by either player.
func (b *Board) Occupancy() bitboard.Bitboard {
	return b.White.Occupancy() | b.Black.Occupancy()
}

// PieceAt returns the piece standing on sq and true, or the zero Piece and
// false if sq is empty.
func (b *Board) PieceAt(sq types.Square) (types.Piece, bool) {
	mask := bitboard.FromSquare(sq)
	for _, player := range [2]types.Player{types.White, types.Black} {
		pieces := b.Side(player)
		for _, kind := range [6]types.PieceKind{types.Pawn, types.Knight, types.Bishop, types.Rook, types.Queen, types.King} {
			if pieces.BitboardFor(kind)&mask != 0 {
				return types.Piece{Kind: kind, Player: player}, true
			}
		}
	}
	return types.Piece{}, false
}

// Place puts piece on sq.
func (b *Board) Place(piece types.Piece, sq types.Square) {
	b.Side(piece.Player).Place(piece.Kind, sq)
}

// Remove takes piece off sq.
func (b *Board) Remove(piece types.Piece, sq types.Square) {
	b.Side(piece.Player).Remove(piece.Kind, sq)
}
