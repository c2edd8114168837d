// Package position implements the full game-state type: piece placement,
// castle rights, side to move, en passant, and the two move clocks, along
// with FEN/EPD parsing, formatting, validation, make-move, and hashing.
package position

import (
	"github.com/corvid-chess/chesscore/bitboard"
	"github.com/corvid-chess/chesscore/board"
	"github.com/corvid-chess/chesscore/types"
)

// Position is a complete, self-contained chess position. It is a pure
// value type: MakeMove produces a new Position rather than mutating
// shared state, so independent goroutines may each hold and advance their
// own Position with no synchronization.
type Position struct {
	Board          board.Board
	SideToMove     types.Player
	CastleRights   types.CastleRights
	EnPassant      *types.Square // nil when there is no en passant target.
	HalfmoveClock  uint8
	FullmoveNumber uint16 // always >= 1.
}

// Starting returns the standard chess starting position.
func Starting() Position {
	p, err := FromFEN(StartFEN)
	if err != nil {
		// The starting FEN is a compile-time constant; a failure here is a
		// bug in this package, not a data-driven condition.
		panic("position: starting FEN failed to parse: " + err.Error())
	}
	return p
}

// StartFEN is the FEN string for the standard chess starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Occupancy returns the union of every occupied square.
func (p *Position) Occupancy() bitboard.Bitboard {
	return p.Board.Occupancy()
}

// Us returns the Pieces belonging to the side to move.
func (p *Position) Us() *board.Pieces {
	return p.Board.Side(p.SideToMove)
}

// Them returns the Pieces belonging to the side not to move.
func (p *Position) Them() *board.Pieces {
	return p.Board.Side(p.SideToMove.Other())
}

// MakeMove applies m to p and returns the resulting position. m is assumed
// to be legal (i.e. obtained from movegen); calling MakeMove with an
// illegal move produces an unspecified result, per the move generator's
// contract that it never hands out illegal moves.
func (p Position) MakeMove(m types.Move) Position {
	mover, ok := p.Board.PieceAt(m.From)
	if !ok {
		panic("position: MakeMove called with no piece on the origin square")
	}

	isEnPassant := mover.Kind == types.Pawn && p.EnPassant != nil && m.To == *p.EnPassant && m.From.File() != m.To.File()
	isCastle := mover.Kind == types.King && absFile(m.From.File(), m.To.File()) == 2

	captured, hadCapture := p.Board.PieceAt(m.To)
	if isEnPassant {
		hadCapture = true
	}

	next := p
	next.Board.Remove(mover, m.From)
	if hadCapture && !isEnPassant {
		next.Board.Remove(captured, m.To)
	}

	placed := mover
	if m.Promotion != types.PromotionNone {
		placed = types.Piece{Kind: m.Promotion.Kind(), Player: mover.Player}
	}
	next.Board.Place(placed, m.To)

	if isEnPassant {
		capturedSq := epCapturedPawnSquare(m.To, mover.Player)
		next.Board.Remove(types.Piece{Kind: types.Pawn, Player: mover.Player.Other()}, capturedSq)
	}

	if isCastle {
		rookFrom, rookTo := castleRookSquares(m.To)
		next.Board.Remove(types.Piece{Kind: types.Rook, Player: mover.Player}, rookFrom)
		next.Board.Place(types.Piece{Kind: types.Rook, Player: mover.Player}, rookTo)
	}

	// En passant target: only set on a fresh double pawn push.
	next.EnPassant = nil
	if mover.Kind == types.Pawn && absRank(m.From.Rank(), m.To.Rank()) == 2 {
		midRank := (int(m.From.Rank()) + int(m.To.Rank())) / 2
		sq := types.SquareFromFileRank(m.From.File(), types.Rank(midRank))
		next.EnPassant = &sq
	}

	// Castle rights: king move clears both of that color's flags; a rook
	// moving from, or being captured on, its origin square clears the
	// matching flag.
	next.CastleRights = updateCastleRights(next.CastleRights, mover, m.From)
	if hadCapture {
		capturedKind := captured.Kind
		capturedPlayer := captured.Player
		if isEnPassant {
			capturedKind = types.Pawn
			capturedPlayer = mover.Player.Other()
		}
		next.CastleRights = updateCastleRights(next.CastleRights, types.Piece{Kind: capturedKind, Player: capturedPlayer}, m.To)
	}

	if hadCapture || mover.Kind == types.Pawn {
		next.HalfmoveClock = 0
	} else {
		next.HalfmoveClock++
	}

	if p.SideToMove == types.Black {
		next.FullmoveNumber++
	}
	next.SideToMove = p.SideToMove.Other()

	return next
}

func absFile(a, b types.File) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}

func absRank(a, b types.Rank) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}

func epCapturedPawnSquare(to types.Square, mover types.Player) types.Square {
	if mover == types.White {
		return types.SquareFromFileRank(to.File(), to.Rank()-1)
	}
	return types.SquareFromFileRank(to.File(), to.Rank()+1)
}

func castleRookSquares(kingTo types.Square) (from, to types.Square) {
	switch kingTo {
	case types.G1:
		return types.H1, types.F1
	case types.C1:
		return types.A1, types.D1
	case types.G8:
		return types.H8, types.F8
	case types.C8:
		return types.A8, types.D8
	}
	panic("position: castleRookSquares called with a non-castling king destination")
}

func updateCastleRights(rights types.CastleRights, piece types.Piece, from types.Square) types.CastleRights {
	switch piece.Kind {
	case types.King:
		if piece.Player == types.White {
			return rights.Clear(types.WhiteShort | types.WhiteLong)
		}
		return rights.Clear(types.BlackShort | types.BlackLong)
	case types.Rook:
		switch from {
		case types.A1:
			return rights.Clear(types.WhiteLong)
		case types.H1:
			return rights.Clear(types.WhiteShort)
		case types.A8:
			return rights.Clear(types.BlackLong)
		case types.H8:
			return rights.Clear(types.BlackShort)
		}
	}
	return rights
}
