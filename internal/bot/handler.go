package bot

import (
	"errors"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper-bot/internal/mines"
	"github.com/vancomm/minesweeper-bot/internal/session"
)

type Handler struct {
	log   logrus.FieldLogger
	store *session.Store
}

func NewHandler(log logrus.FieldLogger, store *session.Store) *Handler {
	return &Handler{log: log, store: store}
}

// HandleUpdate processes a single update. Returned errors come from the Bot
// API and mean the connection should be dropped.
func (h *Handler) HandleUpdate(bot Client, update tgbotapi.Update) error {
	switch {
	case update.Message != nil:
		return h.handleMessage(bot, update.Message)
	case update.CallbackQuery != nil:
		return h.handleCallback(bot, update.CallbackQuery)
	}
	return nil
}

func (h *Handler) handleMessage(bot Client, msg *tgbotapi.Message) error {
	if msg.From == nil || msg.Chat == nil {
		return nil
	}

	log := h.log.WithFields(logrus.Fields{
		"user_id": msg.From.ID,
		"chat_id": msg.Chat.ID,
	})

	if !msg.IsCommand() {
		log.Debug("received plain message")
		return h.send(bot, msg.Chat.ID, hintText)
	}

	log.WithField("command", msg.Command()).Info("received command")

	switch msg.Command() {
	case "start":
		return h.start(bot, log, msg)
	case "help":
		return h.send(bot, msg.Chat.ID, helpText)
	default:
		return h.send(bot, msg.Chat.ID, hintText)
	}
}

func (h *Handler) start(bot Client, log logrus.FieldLogger, msg *tgbotapi.Message) error {
	userID := msg.From.ID

	game, err := h.store.Start(userID)
	if err != nil {
		return err
	}

	grid, _ := game.Snapshot()
	reply := tgbotapi.NewMessage(msg.Chat.ID, startText)
	reply.ReplyMarkup = Keyboard(userID, grid, h.store.Params().Size)

	sent, err := bot.Send(reply)
	if err != nil {
		return fmt.Errorf("unable to send board: %w", err)
	}
	h.store.Attach(game, sent.MessageID)

	log.WithFields(logrus.Fields{
		"message_id": sent.MessageID,
		"params":     h.store.Params().Seed(),
		"sessions":   h.store.Len(),
	}).Info("started new game")
	return nil
}

func (h *Handler) handleCallback(bot Client, q *tgbotapi.CallbackQuery) error {
	if q.From == nil {
		return nil
	}

	log := h.log.WithFields(logrus.Fields{
		"user_id": q.From.ID,
		"data":    q.Data,
	})
	log.Debug("button clicked")

	owner, row, col, err := DecodeCallback(q.Data)
	if err != nil {
		log.WithError(err).Warn("ignoring callback")
		return h.answer(bot, q.ID, "")
	}

	if owner != q.From.ID {
		log.WithField("owner_id", owner).Info("click on a foreign board")
		return h.answer(bot, q.ID, foreignBoardText)
	}

	if err := h.answer(bot, q.ID, ""); err != nil {
		return err
	}

	// Inline-mode messages carry no chat to reply to.
	if q.Message == nil || q.Message.Chat == nil {
		return nil
	}
	chatID, messageID := q.Message.Chat.ID, q.Message.MessageID

	move, err := h.store.Reveal(q.From.ID, messageID, row, col)
	switch {
	case errors.Is(err, session.ErrNoSession),
		errors.Is(err, session.ErrStaleBoard),
		errors.Is(err, mines.ErrGameOver):
		log.WithError(err).Info("rejected move")
		return h.send(bot, chatID, newGameText)
	case err != nil:
		log.WithError(err).Warn("invalid move")
		return nil
	}

	log = log.WithField("outcome", move.Outcome.String())
	if move.Outcome == mines.Unchanged {
		log.Debug("cell already revealed")
		return nil
	}

	edit := tgbotapi.NewEditMessageReplyMarkup(
		chatID, messageID, Keyboard(owner, move.Grid, move.Size),
	)
	if _, err := bot.Request(edit); err != nil {
		return fmt.Errorf("unable to update board: %w", err)
	}

	switch move.Outcome {
	case mines.Loss:
		log.Info("game lost")
		return h.send(bot, chatID, lossText)
	case mines.Win:
		log.Info("game won")
		return h.send(bot, chatID, winText)
	}
	return nil
}

func (h *Handler) send(bot Client, chatID int64, text string) error {
	if _, err := bot.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		return fmt.Errorf("unable to send message to chat %d: %w", chatID, err)
	}
	return nil
}

func (h *Handler) answer(bot Client, queryID, text string) error {
	if _, err := bot.Request(tgbotapi.NewCallback(queryID, text)); err != nil {
		return fmt.Errorf("unable to answer callback query: %w", err)
	}
	return nil
}
