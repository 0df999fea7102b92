package mines

import "math/rand/v2"

// Board is the ground truth of a game: where the mines are and how many
// mines surround every other cell.
type Board struct {
	Mines  []bool
	Counts []int8
	GameParams
}

// NewBoard places p.MineCount mines by drawing random cells until enough
// distinct ones are mined, then counts neighbours for the rest.
func NewBoard(p GameParams, r *rand.Rand) (*Board, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	size, mineCount := p.Unpack()
	b := &Board{
		Mines:      make([]bool, size*size),
		Counts:     make([]int8, size*size),
		GameParams: p,
	}

	for placed := 0; placed < mineCount; {
		i := r.IntN(size)*size + r.IntN(size)
		if b.Mines[i] {
			continue
		}
		b.Mines[i] = true
		placed++
	}

	for row := range size {
		for col := range size {
			i := row*size + col
			if b.Mines[i] {
				continue
			}
			var n int8
			p.neighbours(row, col, func(r, c int) {
				if b.Mines[r*size+c] {
					n++
				}
			})
			b.Counts[i] = n
		}
	}

	return b, nil
}

func (b *Board) IsMine(row, col int) bool {
	return b.Mines[row*b.Size+col]
}

// Count returns the number of mines around (row, col). Mine cells have no
// meaningful count.
func (b *Board) Count(row, col int) int {
	return int(b.Counts[row*b.Size+col])
}

func (b *Board) PlacedMines() int {
	n := 0
	for _, m := range b.Mines {
		if m {
			n++
		}
	}
	return n
}
