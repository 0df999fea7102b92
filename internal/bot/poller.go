package bot

import (
	"context"
	"errors"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

var errUpdatesClosed = errors.New("updates channel closed")

// Poller receives updates over long polling and hands them to the Handler
// one at a time.
type Poller struct {
	log     logrus.FieldLogger
	connect Connect
	handler *Handler
	timeout int
	offset  int
}

func NewPoller(log logrus.FieldLogger, connect Connect, handler *Handler, timeout int) *Poller {
	return &Poller{
		log:     log,
		connect: connect,
		handler: handler,
		timeout: timeout,
	}
}

// Run polls until ctx is cancelled (returning nil) or the Bot API fails.
// Offsets carry over between runs so a failed update is not retried.
func (p *Poller) Run(ctx context.Context) error {
	bot, err := p.connect()
	if err != nil {
		return fmt.Errorf("unable to connect to telegram: %w", err)
	}

	u := tgbotapi.NewUpdate(p.offset)
	u.Timeout = p.timeout
	updates := bot.GetUpdatesChan(u)
	defer bot.StopReceivingUpdates()

	p.log.WithField("offset", p.offset).Info("telegram polling started")

	for {
		select {
		case <-ctx.Done():
			p.log.Info("telegram polling stopped")
			return nil
		case update, ok := <-updates:
			if !ok {
				return errUpdatesClosed
			}
			p.offset = update.UpdateID + 1
			if err := p.handler.HandleUpdate(bot, update); err != nil {
				return fmt.Errorf("unable to handle update %d: %w", update.UpdateID, err)
			}
		}
	}
}
