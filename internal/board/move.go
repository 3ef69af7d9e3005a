package board

import (
	"fmt"

	"checkers/internal/core"
)

// forward is the row step a regular piece of p takes
func forward(p core.Player) int {
	if p == core.Player1 {
		return 1
	}
	return -1
}

// promotionRow is the far row for p
func promotionRow(p core.Player) int {
	if p == core.Player1 {
		return Size - 1
	}
	return 0
}

// ValidateMove checks m for mover without touching the board. Every
// rejection wraps core.ErrIllegalMove.
func (b *Board) ValidateMove(m Move, mover core.Player) error {
	if !m.From.InBounds() || !m.To.InBounds() {
		return fmt.Errorf("%w: %v is off the board", core.ErrIllegalMove, m)
	}

	piece, ok := b.At(m.From).Occupant()
	if !ok {
		return fmt.Errorf("%w: no piece on %v", core.ErrIllegalMove, m.From)
	}
	if piece.Owner != mover {
		return fmt.Errorf("%w: piece on %v belongs to %s", core.ErrIllegalMove, m.From, piece.Owner)
	}
	if !b.At(m.To).IsEmpty() {
		return fmt.Errorf("%w: %v is occupied", core.ErrIllegalMove, m.To)
	}

	dRow := m.To.Row - m.From.Row
	dCol := m.To.Col - m.From.Col
	if (dCol != 1 && dCol != -1) || (dRow != 1 && dRow != -1) {
		return fmt.Errorf("%w: %v is not a single diagonal step", core.ErrIllegalMove, m)
	}
	if piece.Rank == Regular && dRow != forward(mover) {
		return fmt.Errorf("%w: regular pieces only move forward", core.ErrIllegalMove)
	}
	return nil
}

func (b *Board) IsMoveValid(m Move, mover core.Player) bool {
	return b.ValidateMove(m, mover) == nil
}

// TryMove applies m for mover if it is valid, promoting a regular piece that
// lands on the far row. On error the board is unchanged.
func (b *Board) TryMove(m Move, mover core.Player) (promoted bool, err error) {
	if err := b.ValidateMove(m, mover); err != nil {
		return false, err
	}

	piece, _ := b.squares[m.From.Row][m.From.Col].Occupant()
	b.squares[m.To.Row][m.To.Col] = b.squares[m.From.Row][m.From.Col]
	b.squares[m.From.Row][m.From.Col] = Empty()

	if piece.Rank == Regular && m.To.Row == promotionRow(piece.Owner) {
		b.squares[m.To.Row][m.To.Col] = Occupied(Piece{Owner: piece.Owner, Rank: King})
		promoted = true
	}
	return promoted, nil
}
