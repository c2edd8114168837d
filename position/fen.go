package position

import (
	"strconv"
	"strings"

	"github.com/corvid-chess/chesscore/types"
)

// FromFEN parses s as exactly six whitespace-separated FEN tokens:
// <piece-placement> <side> <castle> <ep> <halfmove> <fullmove>, and
// validates the resulting position against every §3 invariant. Parsing
// failures are reported as *ParseError carrying the offending token;
// validation failures as *ValidationError describing the violated invariant.
func FromFEN(s string) (Position, error) {
	if !isASCII(s) {
		return Position{}, newParseError(s, "FEN string contains non-ASCII input")
	}
	trimmed := strings.TrimSpace(s)
	if strings.ContainsAny(trimmed, "\n\r") {
		return Position{}, newParseError(s, "FEN string must be a single line")
	}

	fields := strings.Fields(trimmed)
	if len(fields) != 6 {
		return Position{}, newParseError(s, "FEN string must have exactly 6 whitespace-separated fields, got "+strconv.Itoa(len(fields)))
	}

	var p Position

	if err := parsePlacement(fields[0], &p); err != nil {
		return Position{}, err
	}

	switch fields[1] {
	case "w":
		p.SideToMove = types.White
	case "b":
		p.SideToMove = types.Black
	default:
		return Position{}, newParseError(fields[1], "active color must be \"w\" or \"b\"")
	}

	rights, err := types.CastleRightsFromString(fields[2])
	if err != nil {
		return Position{}, newParseError(fields[2], err.Error())
	}
	p.CastleRights = rights

	if fields[3] != "-" {
		sq, err := types.SquareFromString(fields[3])
		if err != nil {
			return Position{}, newParseError(fields[3], "invalid en passant square: "+err.Error())
		}
		p.EnPassant = &sq
	}

	halfmove, err := strconv.ParseUint(fields[4], 10, 8)
	if err != nil {
		return Position{}, newParseError(fields[4], "halfmove clock must be a non-negative integer")
	}
	p.HalfmoveClock = uint8(halfmove)

	fullmove, err := strconv.ParseUint(fields[5], 10, 16)
	if err != nil || fullmove == 0 {
		return Position{}, newParseError(fields[5], "fullmove number must be a positive integer")
	}
	p.FullmoveNumber = uint16(fullmove)

	if err := p.Validate(); err != nil {
		return Position{}, err
	}

	return p, nil
}

// TryFrom is the tolerant entry point: it accepts an optional leading "fen"
// or "epd" keyword, collapses internal whitespace, and accepts a 4-token
// EPD (no move clocks) by appending the defaults "0 1".
func TryFrom(s string) (Position, error) {
	trimmed := strings.TrimSpace(s)
	trimmed = strings.TrimPrefix(trimmed, "fen ")
	trimmed = strings.TrimPrefix(trimmed, "epd ")
	trimmed = strings.TrimSpace(trimmed)

	fields := strings.Fields(trimmed)
	switch len(fields) {
	case 6:
		return FromFEN(strings.Join(fields, " "))
	case 4:
		return FromFEN(strings.Join(fields, " ") + " 0 1")
	default:
		return Position{}, newParseError(s, "expected 6-token FEN or 4-token EPD, optionally prefixed with \"fen\"/\"epd\"")
	}
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > 127 {
			return false
		}
	}
	return true
}

func parsePlacement(placement string, p *Position) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return newParseError(placement, "piece placement must have 8 ranks separated by 7 '/' characters")
	}

	// Placement is written rank 8 first.
	for i, rankStr := range ranks {
		rank := types.Rank(7 - i)
		file := 0
		for j := 0; j < len(rankStr); j++ {
			c := rankStr[j]
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			piece, err := types.PieceFromLetter(c)
			if err != nil {
				return newParseError(placement, err.Error())
			}
			if file > 7 {
				return newParseError(rankStr, "rank has more than 8 files")
			}
			sq := types.SquareFromFileRank(types.File(file), rank)
			p.Board.Place(piece, sq)
			file++
		}
		if file != 8 {
			return newParseError(rankStr, "rank does not sum to exactly 8 files")
		}
	}
	return nil
}

// FEN renders p as its canonical 6-token FEN string. Formatting is exactly
// invertible: FromFEN(p.FEN()) == p for every position p that FromFEN can
// produce.
func (p Position) FEN() string {
	var b strings.Builder
	b.Grow(64)

	b.WriteString(p.placementFEN())
	b.WriteByte(' ')
	if p.SideToMove == types.White {
		b.WriteByte('w')
	} else {
		b.WriteByte('b')
	}
	b.WriteByte(' ')
	b.WriteString(p.CastleRights.String())
	b.WriteByte(' ')
	if p.EnPassant == nil {
		b.WriteByte('-')
	} else {
		b.WriteString(p.EnPassant.String())
	}
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(int(p.HalfmoveClock)))
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(int(p.FullmoveNumber)))

	return b.String()
}

func (p Position) placementFEN() string {
	var b strings.Builder
	b.Grow(72)

	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			sq := types.SquareFromFileRank(types.File(file), types.Rank(rank))
			piece, ok := p.Board.PieceAt(sq)
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				b.WriteByte('0' + byte(empty))
				empty = 0
			}
			b.WriteByte(piece.Letter())
		}
		if empty > 0 {
			b.WriteByte('0' + byte(empty))
		}
		if rank != 0 {
			b.WriteByte('/')
		}
	}

	return b.String()
}
