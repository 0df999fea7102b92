package bot

const (
	startText = "🎮 Minesweeper! Tap the buttons to reveal cells."

	helpText = "🎮 Minesweeper\n" +
		"Use /start to begin a new game.\n" +
		"Tap the buttons to reveal cells.\n" +
		HiddenGlyph + ": hidden cell\n" +
		ZeroGlyph + ": safe cell with no mines around it\n" +
		ExplodedGlyph + ": mine (you lose)\n" +
		"Numbers show how many mines are adjacent."

	hintText         = "Use /start to play or /help for the rules."
	newGameText      = "Start a new game with /start"
	lossText         = "💥 A mine exploded! Game over. Start a new game with /start"
	winText          = "🎉 You won! Every safe cell is revealed. Start a new game with /start"
	foreignBoardText = "This board belongs to another player."
)
