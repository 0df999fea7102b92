package mines

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGame(t *testing.T) *GameState {
	t.Helper()
	g, err := NewGame(DefaultParams(), rand.New(rand.NewPCG(1, 2)))
	require.NoError(t, err)
	return g
}

func findCell(g *GameState, mine bool) (int, int) {
	for row := range g.Size {
		for col := range g.Size {
			if g.IsMine(row, col) == mine {
				return row, col
			}
		}
	}
	panic("no such cell")
}

func TestNewGameIsHidden(t *testing.T) {
	g := newTestGame(t)
	require.Len(t, g.PlayerGrid, 64)
	for _, c := range g.PlayerGrid {
		assert.Equal(t, Unknown, c)
	}
	assert.False(t, g.Terminal())
	assert.Equal(t, 0, g.Revealed())
	assert.Equal(t, 54, g.SafeCells())
}

func TestRevealMineIsLoss(t *testing.T) {
	g := newTestGame(t)
	row, col := findCell(g, true)

	outcome, err := g.Reveal(row, col)
	require.NoError(t, err)
	assert.Equal(t, Loss, outcome)
	assert.True(t, g.Dead)
	assert.False(t, g.Won)
	assert.Equal(t, ExplodedMine, g.PlayerGrid[row*g.Size+col])

	before := g.PlayerGrid.Clone()
	for r := range g.Size {
		for c := range g.Size {
			outcome, err := g.Reveal(r, c)
			assert.ErrorIs(t, err, ErrGameOver)
			assert.Equal(t, Unchanged, outcome)
		}
	}
	assert.Equal(t, before, g.PlayerGrid)
}

func TestRevealAllSafeCellsIsWin(t *testing.T) {
	g := newTestGame(t)

	revealed := 0
	for row := range g.Size {
		for col := range g.Size {
			if g.IsMine(row, col) {
				continue
			}
			outcome, err := g.Reveal(row, col)
			require.NoError(t, err)
			revealed++
			if revealed == g.SafeCells() {
				assert.Equal(t, Win, outcome)
			} else {
				require.Equal(t, Continue, outcome, "premature %s at %d:%d", outcome, row, col)
			}
		}
	}

	assert.True(t, g.Won)
	assert.False(t, g.Dead)
	assert.Equal(t, 54, g.Revealed())
	for i, c := range g.PlayerGrid {
		if g.Mines[i] {
			assert.Equal(t, Unknown, c)
		} else {
			assert.NotEqual(t, ExplodedMine, c)
		}
	}
}

func TestRevealShowsCount(t *testing.T) {
	g := newTestGame(t)
	row, col := findCell(g, false)

	outcome, err := g.Reveal(row, col)
	require.NoError(t, err)
	assert.Equal(t, Continue, outcome)
	assert.Equal(t, CellState(g.Count(row, col)), g.PlayerGrid[row*g.Size+col])
}

func TestRevealDoesNotFloodFill(t *testing.T) {
	g, err := NewGame(GameParams{Size: 5, MineCount: 1}, rand.New(rand.NewPCG(1, 2)))
	require.NoError(t, err)

	for row := range g.Size {
		for col := range g.Size {
			if g.IsMine(row, col) || g.Count(row, col) != 0 {
				continue
			}
			outcome, err := g.Reveal(row, col)
			require.NoError(t, err)
			assert.Equal(t, Continue, outcome)
			assert.Equal(t, 1, g.Revealed())
			assert.Equal(t, CellState(0), g.PlayerGrid[row*g.Size+col])
			return
		}
	}
	t.Fatal("no zero cell on the board")
}

func TestRevealTwiceIsUnchanged(t *testing.T) {
	g := newTestGame(t)
	row, col := findCell(g, false)

	_, err := g.Reveal(row, col)
	require.NoError(t, err)
	before := g.PlayerGrid.Clone()

	outcome, err := g.Reveal(row, col)
	require.NoError(t, err)
	assert.Equal(t, Unchanged, outcome)
	assert.Equal(t, before, g.PlayerGrid)
}

func TestRevealOutOfBounds(t *testing.T) {
	g := newTestGame(t)
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {8, 0}, {0, 8}} {
		_, err := g.Reveal(p[0], p[1])
		assert.ErrorIs(t, err, ErrOutOfBounds)
	}
}

func TestGridToString(t *testing.T) {
	g := Grid{Unknown, 0, 3, ExplodedMine}
	assert.Equal(t, "  0 \n3 * \n", g.ToString(2))
}
