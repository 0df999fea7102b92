package mines

import (
	"fmt"
	"math/rand/v2"
)

type Outcome int8

const (
	Unchanged Outcome = iota
	Continue
	Loss
	Win
)

func (o Outcome) String() string {
	switch o {
	case Unchanged:
		return "unchanged"
	case Continue:
		return "continue"
	case Loss:
		return "loss"
	case Win:
		return "win"
	default:
		return fmt.Sprintf("Outcome(%d)", int8(o))
	}
}

type GameState struct {
	Dead, Won  bool
	PlayerGrid Grid /* player knowledge */
	*Board          /* real mine points */
}

func NewGame(params GameParams, r *rand.Rand) (*GameState, error) {
	board, err := NewBoard(params, r)
	if err != nil {
		return nil, err
	}
	state := &GameState{
		Board:      board,
		PlayerGrid: newGrid(params.Size),
	}
	return state, nil
}

func (s *GameState) Terminal() bool {
	return s.Dead || s.Won
}

// Reveal opens exactly one cell. Zero-count cells do not cascade into
// their neighbours.
func (s *GameState) Reveal(row, col int) (Outcome, error) {
	if !s.PointInBounds(row, col) {
		return Unchanged, fmt.Errorf("%w: %d:%d", ErrOutOfBounds, row, col)
	}
	if s.Terminal() {
		return Unchanged, ErrGameOver
	}

	i := row*s.Size + col
	if s.PlayerGrid[i].Revealed() {
		return Unchanged, nil
	}

	if s.Mines[i] {
		s.Dead = true
		s.PlayerGrid[i] = ExplodedMine
		return Loss, nil
	}

	s.PlayerGrid[i] = CellState(s.Counts[i])

	if s.Revealed() == s.SafeCells() {
		s.Won = true
		return Win, nil
	}

	return Continue, nil
}

// Revealed returns the number of safe cells the player has opened.
func (s *GameState) Revealed() int {
	n := 0
	for i, c := range s.PlayerGrid {
		if c.Revealed() && !s.Mines[i] {
			n++
		}
	}
	return n
}
