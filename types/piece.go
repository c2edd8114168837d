package types

import "fmt"

// Player identifies a side to move.
type Player uint8

const (
	White Player = iota
	Black
)

// Other returns the opposing player.
func (p Player) Other() Player {
	return p ^ 1
}

// String renders the player as "white" or "black".
func (p Player) String() string {
	if p == White {
		return "white"
	}
	return "black"
}

// PieceKind is the kind of a chess piece, independent of color.
type PieceKind uint8

const (
	Pawn PieceKind = iota
	Knight
	Bishop
	Rook
	Queen
	King
)

// String renders the piece kind as its uppercase (White) FEN letter.
func (k PieceKind) String() string {
	return string(pieceKindLetters[k])
}

var pieceKindLetters = [6]byte{'P', 'N', 'B', 'R', 'Q', 'K'}

// Piece is a piece kind owned by a player, e.g. "white knight".
type Piece struct {
	Kind   PieceKind
	Player Player
}

// NewPiece constructs a Piece.
func NewPiece(kind PieceKind, player Player) Piece {
	return Piece{Kind: kind, Player: player}
}

// Index returns a dense 0..11 index suitable for indexing per-piece tables:
// white pieces 0..5 (pawn..king), black pieces 6..11.
func (p Piece) Index() int {
	return int(p.Player)*6 + int(p.Kind)
}

// PieceFromIndex is the inverse of Piece.Index.
func PieceFromIndex(i int) Piece {
	return Piece{Kind: PieceKind(i % 6), Player: Player(i / 6)}
}

// Letter renders the piece as its FEN letter (uppercase for White, lowercase
// for Black).
func (p Piece) Letter() byte {
	letter := pieceKindLetters[p.Kind]
	if p.Player == Black {
		letter += 'a' - 'A'
	}
	return letter
}

// PieceFromLetter parses a FEN piece letter into a Piece.
func PieceFromLetter(b byte) (Piece, error) {
	player := White
	upper := b
	if b >= 'a' && b <= 'z' {
		player = Black
		upper = b - ('a' - 'A')
	}
	for kind, letter := range pieceKindLetters {
		if letter == upper {
			return Piece{Kind: PieceKind(kind), Player: player}, nil
		}
	}
	return Piece{}, fmt.Errorf("unknown piece symbol %q", b)
}

// Promotion is the piece kind a pawn promotes to. PromotionNone means the
// move is not a promotion.
type Promotion uint8

const (
	PromotionNone Promotion = iota
	PromotionKnight
	PromotionBishop
	PromotionRook
	PromotionQueen
)

// Kind converts a non-empty Promotion into the corresponding PieceKind.
func (pr Promotion) Kind() PieceKind {
	switch pr {
	case PromotionKnight:
		return Knight
	case PromotionBishop:
		return Bishop
	case PromotionRook:
		return Rook
	case PromotionQueen:
		return Queen
	}
	panic("types: Kind called on PromotionNone")
}

// Letter renders the promotion as its lowercase UCI suffix letter, or 0 if
// this is not a promotion.
func (pr Promotion) Letter() byte {
	switch pr {
	case PromotionKnight:
		return 'n'
	case PromotionBishop:
		return 'b'
	case PromotionRook:
		return 'r'
	case PromotionQueen:
		return 'q'
	}
	return 0
}

// PromotionFromLetter parses a UCI promotion suffix letter.
func PromotionFromLetter(b byte) (Promotion, error) {
	switch b {
	case 'n':
		return PromotionKnight, nil
	case 'b':
		return PromotionBishop, nil
	case 'r':
		return PromotionRook, nil
	case 'q':
		return PromotionQueen, nil
	}
	return PromotionNone, fmt.Errorf("unknown promotion letter %q", b)
}

// CastleRights tracks which castling moves are still available for each
// side. The four flags are independent and are cleared monotonically as the
// game progresses; they are never set again once cleared.
type CastleRights uint8

const (
	WhiteShort CastleRights = 1 << iota
	WhiteLong
	BlackShort
	BlackLong
)

// Has reports whether every flag in want is set.
func (c CastleRights) Has(want CastleRights) bool {
	return c&want == want
}

// Clear returns c with the given flags removed.
func (c CastleRights) Clear(flags CastleRights) CastleRights {
	return c &^ flags
}

// String renders castle rights in the canonical "KQkq" order, or "-" if
// none remain.
func (c CastleRights) String() string {
	if c == 0 {
		return "-"
	}
	b := make([]byte, 0, 4)
	if c.Has(WhiteShort) {
		b = append(b, 'K')
	}
	if c.Has(WhiteLong) {
		b = append(b, 'Q')
	}
	if c.Has(BlackShort) {
		b = append(b, 'k')
	}
	if c.Has(BlackLong) {
		b = append(b, 'q')
	}
	return string(b)
}

// CastleRightsFromString parses a castle-rights field. "-" means no rights.
// Any other input must be a subsequence of "KQkq" in that order, with no
// repeats and no unknown characters.
func CastleRightsFromString(s string) (CastleRights, error) {
	if s == "-" {
		return 0, nil
	}
	if s == "" {
		return 0, fmt.Errorf("castle rights field is empty, want \"-\" or a subsequence of \"KQkq\"")
	}
	order := "KQkq"
	flags := [4]CastleRights{WhiteShort, WhiteLong, BlackShort, BlackLong}
	var result CastleRights
	pos := 0
	for i := 0; i < len(s); i++ {
		idx := -1
		for j := pos; j < len(order); j++ {
			if order[j] == s[i] {
				idx = j
				break
			}
		}
		if idx < 0 {
			return 0, fmt.Errorf("castle rights %q: unexpected or out-of-order character %q", s, s[i])
		}
		result |= flags[idx]
		pos = idx + 1
	}
	return result, nil
}
