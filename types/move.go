package types

import "fmt"

// Move is a single chess move: where a piece starts, where it ends, and
// what it promotes to (if anything).
//
// Castling has no dedicated representation: it is the king's own two-square
// move (e1g1, e1c1, e8g8, e8c8). En passant likewise has no dedicated flag:
// it is a pawn's diagonal move onto an empty square.
type Move struct {
	From      Square
	To        Square
	Promotion Promotion
}

// MaxMoves is a generous upper bound on the number of legal moves any
// position can have; 218 is the known practical maximum.
const MaxMoves = 256

// MoveList is a fixed-capacity, stack-allocated list of moves. It never
// grows past MaxMoves and never allocates on the heap.
type MoveList struct {
	moves [MaxMoves]Move
	n     int
}

// Push appends m to the list. Panics if the list is already at capacity,
// which should never happen for a legal chess position.
func (l *MoveList) Push(m Move) {
	if l.n >= MaxMoves {
		panic("types: MoveList overflow, more than MaxMoves legal moves generated")
	}
	l.moves[l.n] = m
	l.n++
}

// Len returns the number of moves currently in the list.
func (l *MoveList) Len() int {
	return l.n
}

// At returns the i'th move in the list.
func (l *MoveList) At(i int) Move {
	return l.moves[i]
}

// Slice returns the moves currently stored as a plain slice backed by the
// list's internal array. The slice is invalidated by further Push calls.
func (l *MoveList) Slice() []Move {
	return l.moves[:l.n]
}

// Contains reports whether m (compared by From, To, and Promotion) is
// already present in the list.
func (l *MoveList) Contains(m Move) bool {
	for i := 0; i < l.n; i++ {
		if l.moves[i] == m {
			return true
		}
	}
	return false
}

// String renders the move in UCI long algebraic notation, e.g. "e2e4" or
// "e7e8q".
func (m Move) String() string {
	if m.Promotion == PromotionNone {
		return m.From.String() + m.To.String()
	}
	return m.From.String() + m.To.String() + string(m.Promotion.Letter())
}

// MoveFromUCI parses a UCI long-algebraic move string such as "e2e4" or
// "e7e8q". It performs only syntactic validation; whether the move is legal
// in a given position is a matter for move generation.
func MoveFromUCI(s string) (Move, error) {
	if len(s) != 4 && len(s) != 5 {
		return Move{}, fmt.Errorf("UCI move %q should be 4 or 5 characters long", s)
	}
	from, err := SquareFromString(s[0:2])
	if err != nil {
		return Move{}, fmt.Errorf("UCI move %q: invalid origin square: %w", s, err)
	}
	to, err := SquareFromString(s[2:4])
	if err != nil {
		return Move{}, fmt.Errorf("UCI move %q: invalid destination square: %w", s, err)
	}
	promo := PromotionNone
	if len(s) == 5 {
		promo, err = PromotionFromLetter(s[4])
		if err != nil {
			return Move{}, fmt.Errorf("UCI move %q: %w", s, err)
		}
	}
	return Move{From: from, To: to, Promotion: promo}, nil
}
