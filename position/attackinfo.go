package position

import (
	"github.com/corvid-chess/chesscore/attacks"
	"github.com/corvid-chess/chesscore/types"
)

// AttackInfo runs the attack-info pass for the given king's owner: side is
// the player whose king and pieces are "ours"; the pass is computed from
// the opposing player's pieces.
func (p *Position) AttackInfo(side types.Player) attacks.Info {
	return attackInfoAgainst(p, side)
}

func attackInfoAgainst(p *Position, side types.Player) attacks.Info {
	them := side.Other()
	ours := p.Board.Side(side)
	theirs := p.Board.Side(them)
	return attacks.Compute(them, theirs, ours.KingSquare(), ours.Occupancy(), p.Occupancy())
}
