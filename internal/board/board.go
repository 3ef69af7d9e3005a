package board

import (
	"fmt"
	"strings"

	"checkers/internal/core"
)

const (
	Size = 8

	// StartingLayout is the opening position, row 0 first
	StartingLayout = ".x.x.x.x/x.x.x.x./.x.x.x.x/......../......../o.o.o.o./.o.o.o.o/o.o.o.o."
)

type Rank byte

const (
	Regular Rank = iota + 1
	King
)

func (r Rank) String() string {
	switch r {
	case Regular:
		return "regular"
	case King:
		return "king"
	default:
		return "-"
	}
}

// Piece is the occupant of a square
type Piece struct {
	Owner core.Player
	Rank  Rank
}

func (p Piece) Valid() bool {
	return p.Owner.Valid() && (p.Rank == Regular || p.Rank == King)
}

// Square is either empty or holds exactly one valid piece. The zero value is empty.
type Square struct {
	piece    Piece
	occupied bool
}

// Empty returns an unoccupied square
func Empty() Square {
	return Square{}
}

// Occupied returns a square holding p. It panics if p has no real owner or rank.
func Occupied(p Piece) Square {
	if !p.Valid() {
		panic(fmt.Sprintf("board: invalid piece %+v", p))
	}
	return Square{piece: p, occupied: true}
}

func (s Square) IsEmpty() bool {
	return !s.occupied
}

// Occupant returns the piece on the square and whether there is one
func (s Square) Occupant() (Piece, bool) {
	return s.piece, s.occupied
}

// Label is the fixed-width text cell for the square
func (s Square) Label() string {
	if !s.occupied {
		return " .  "
	}
	if s.piece.Rank == King {
		return fmt.Sprintf(" K%d ", s.piece.Owner)
	}
	return fmt.Sprintf(" %s ", s.piece.Owner.Tag())
}

type Board struct {
	squares [Size][Size]Square
}

// New returns a board in the opening position
func New() *Board {
	b := &Board{}
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if (row+col)%2 == 0 {
				continue
			}
			switch {
			case row < 3:
				b.squares[row][col] = Occupied(Piece{Owner: core.Player1, Rank: Regular})
			case row > 4:
				b.squares[row][col] = Occupied(Piece{Owner: core.Player2, Rank: Regular})
			}
		}
	}
	return b
}

// At returns a copy of the square at c, empty when c is off the board
func (b *Board) At(c Coord) Square {
	if !c.InBounds() {
		return Empty()
	}
	return b.squares[c.Row][c.Col]
}

// Place puts p on c, replacing whatever was there
func (b *Board) Place(c Coord, p Piece) error {
	if !c.InBounds() {
		return fmt.Errorf("square %v is off the board", c)
	}
	if !p.Valid() {
		return fmt.Errorf("invalid piece: owner %s, rank %s", p.Owner, p.Rank)
	}
	b.squares[c.Row][c.Col] = Occupied(p)
	return nil
}

// Clear empties c
func (b *Board) Clear(c Coord) {
	if c.InBounds() {
		b.squares[c.Row][c.Col] = Empty()
	}
}

// Clone returns an independent copy of the board
func (b *Board) Clone() *Board {
	c := *b
	return &c
}

// PieceCount returns how many pieces p has on the board
func (b *Board) PieceCount(p core.Player) int {
	n := 0
	for row := range b.squares {
		for _, sq := range b.squares[row] {
			if piece, ok := sq.Occupant(); ok && piece.Owner == p {
				n++
			}
		}
	}
	return n
}

// IsGameOver reports whether either side has run out of pieces.
// A side with pieces but no legal move does not end the game.
func (b *Board) IsGameOver() bool {
	return b.PieceCount(core.Player1) == 0 || b.PieceCount(core.Player2) == 0
}

// String renders the grid as 8 lines of 8 fixed-width cells, row 0 first
func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			sb.WriteString(b.squares[row][col].Label())
		}
		if row < Size-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
