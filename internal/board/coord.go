package board

import (
	"fmt"
	"strings"

	"checkers/internal/core"
)

// Coord addresses a square by 0-indexed row and column. Row 0 is rank 8.
type Coord struct {
	Row int
	Col int
}

func (c Coord) InBounds() bool {
	return c.Row >= 0 && c.Row < Size && c.Col >= 0 && c.Col < Size
}

// String returns the square in file/rank notation, e.g. "a8" for (0,0)
func (c Coord) String() string {
	if !c.InBounds() {
		return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
	}
	return fmt.Sprintf("%c%c", 'a'+c.Col, '8'-c.Row)
}

type Move struct {
	From Coord
	To   Coord
}

func (m Move) String() string {
	return m.From.String() + " " + m.To.String()
}

// ParseCoord reads a two-character square such as "a3": file a-h is the
// column, rank 1-8 maps to row 8-rank.
func ParseCoord(token string) (Coord, error) {
	if len(token) != 2 {
		return Coord{}, fmt.Errorf("%w: %q is not a square", core.ErrMalformedCoordinate, token)
	}

	c := Coord{
		Col: int(token[0]) - 'a',
		Row: Size - (int(token[1]) - '0'),
	}
	if !c.InBounds() {
		return Coord{}, fmt.Errorf("%w: %q is not a square", core.ErrMalformedCoordinate, token)
	}
	return c, nil
}

// ParseMove reads a "<from> <to>" line. Tokens past the second are ignored.
func ParseMove(line string) (Move, error) {
	parts := strings.Fields(line)
	if len(parts) < 2 {
		return Move{}, fmt.Errorf("%w: expected two squares, e.g. 'a3 b4'", core.ErrMalformedCoordinate)
	}

	from, err := ParseCoord(parts[0])
	if err != nil {
		return Move{}, err
	}
	to, err := ParseCoord(parts[1])
	if err != nil {
		return Move{}, err
	}
	return Move{From: from, To: to}, nil
}
