package mines

// neighbours calls fn for every cell of the Moore neighbourhood of
// (row, col) that lies on the board.
func (p GameParams) neighbours(row, col int, fn func(r, c int)) {
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			if p.PointInBounds(row+dr, col+dc) {
				fn(row+dr, col+dc)
			}
		}
	}
}
