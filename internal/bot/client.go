package bot

import (
	"net/http"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Client defines the methods required for Telegram bot interactions.
type Client interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// Updater is a Client that can also long-poll for updates.
type Updater interface {
	Client
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}

// Connect opens a new connection to the Bot API. A stopped Updater cannot
// be restarted, so every poller run connects anew.
type Connect func() (Updater, error)

// Dial returns a Connect that authenticates with token. The Bot API client
// checks the token with getMe before returning.
func Dial(token string, debug bool) Connect {
	// Long polling keeps requests open for the poll timeout, so the client
	// timeout has to be larger than that.
	httpClient := &http.Client{
		Timeout: 90 * time.Second,
		Transport: &http.Transport{
			TLSHandshakeTimeout: 10 * time.Second,
			IdleConnTimeout:     30 * time.Second,
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			ForceAttemptHTTP2:   true,
		},
	}

	return func() (Updater, error) {
		api, err := tgbotapi.NewBotAPIWithClient(token, tgbotapi.APIEndpoint, httpClient)
		if err != nil {
			return nil, err
		}
		api.Debug = debug
		return api, nil
	}
}
