package mines

import "fmt"

const (
	DefaultSize      = 8
	DefaultMineCount = 10
)

type GameParams struct {
	Size, MineCount int
}

func DefaultParams() GameParams {
	return GameParams{Size: DefaultSize, MineCount: DefaultMineCount}
}

func (p GameParams) Unpack() (size int, mc int) {
	return p.Size, p.MineCount
}

func (p GameParams) Seed() string {
	return fmt.Sprintf("%d:%d", p.Size, p.MineCount)
}

// Validate reports [ErrInvalidParams] unless there is at least one cell and
// at least one cell is left free of mines.
func (p GameParams) Validate() error {
	if p.Size <= 0 {
		return fmt.Errorf("%w: size %d", ErrInvalidParams, p.Size)
	}
	if p.MineCount < 0 || p.MineCount >= p.Size*p.Size {
		return fmt.Errorf(
			"%w: %d mines on a %dx%d board",
			ErrInvalidParams, p.MineCount, p.Size, p.Size,
		)
	}
	return nil
}

func (p GameParams) PointInBounds(row, col int) bool {
	return 0 <= row && row < p.Size && 0 <= col && col < p.Size
}

func (p GameParams) SafeCells() int {
	return p.Size*p.Size - p.MineCount
}
