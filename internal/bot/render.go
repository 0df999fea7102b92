package bot

import (
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/vancomm/minesweeper-bot/internal/mines"
)

const (
	HiddenGlyph   = "⬜"
	ZeroGlyph     = "✅"
	ExplodedGlyph = "💥"
)

func Glyph(c mines.CellState) string {
	switch {
	case c == mines.ExplodedMine:
		return ExplodedGlyph
	case c == 0:
		return ZeroGlyph
	case 1 <= c && c <= 8:
		return strconv.Itoa(int(c))
	default:
		return HiddenGlyph
	}
}

// Keyboard renders the player grid as one button per cell, one keyboard row
// per board row.
func Keyboard(owner int64, grid mines.Grid, size int) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, size)
	for row := range size {
		buttons := make([]tgbotapi.InlineKeyboardButton, 0, size)
		for col := range size {
			buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonData(
				Glyph(grid[row*size+col]), EncodeCallback(owner, row, col),
			))
		}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(buttons...))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}
