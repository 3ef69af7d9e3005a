package board

import (
	"fmt"
	"strings"

	"checkers/internal/core"
)

var layoutChars = map[rune]Piece{
	'x': {Owner: core.Player1, Rank: Regular},
	'X': {Owner: core.Player1, Rank: King},
	'o': {Owner: core.Player2, Rank: Regular},
	'O': {Owner: core.Player2, Rank: King},
}

// ParseLayout builds a board from layout notation: 8 rows separated by '/',
// row 0 first, '.' for an empty square, x/X for Player 1 regular/king and
// o/O for Player 2 regular/king.
func ParseLayout(layout string) (*Board, error) {
	rows := strings.Split(layout, "/")
	if len(rows) != Size {
		return nil, fmt.Errorf("invalid layout: expected %d rows, got %d", Size, len(rows))
	}

	b := &Board{}
	for r, row := range rows {
		if len(row) != Size {
			return nil, fmt.Errorf("invalid layout: row %d has %d squares", r, len(row))
		}
		for c, ch := range row {
			if ch == '.' {
				continue
			}
			p, ok := layoutChars[ch]
			if !ok {
				return nil, fmt.Errorf("invalid layout: unknown square %q in row %d", ch, r)
			}
			b.squares[r][c] = Occupied(p)
		}
	}
	return b, nil
}

// Layout encodes the board in the notation read by ParseLayout
func (b *Board) Layout() string {
	var sb strings.Builder
	for row := 0; row < Size; row++ {
		if row > 0 {
			sb.WriteByte('/')
		}
		for col := 0; col < Size; col++ {
			sb.WriteByte(layoutChar(b.squares[row][col]))
		}
	}
	return sb.String()
}

func layoutChar(s Square) byte {
	p, ok := s.Occupant()
	if !ok {
		return '.'
	}
	var ch byte = 'x'
	if p.Owner == core.Player2 {
		ch = 'o'
	}
	if p.Rank == King {
		ch -= 'a' - 'A'
	}
	return ch
}
