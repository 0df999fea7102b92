package app

import (
	"hash/maphash"
	"math/rand/v2"
	"net/http"

	"github.com/vancomm/minesweeper-bot/internal/handlers"
	"github.com/vancomm/minesweeper-bot/internal/middleware"
)

func createRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

func (a *App) handler() http.Handler {
	status := handlers.NewStatusHandler(
		a.log.WithField("component", "http"), a.status, a.store,
	)
	return middleware.Wrap(
		status.ServeMux(),
		middleware.Cors(),
		middleware.Logging(a.log.WithField("component", "http")),
	)
}
