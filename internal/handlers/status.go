package handlers

import (
	"net/http"

	"github.com/gorilla/schema"
	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper-bot/internal/status"
)

const aliveMessage = "Minesweeper Bot is running!"

// SessionCounter reports how many game sessions are held in memory.
type SessionCounter interface {
	Len() int
}

type StatusHandler struct {
	log      logrus.FieldLogger
	status   *status.Status
	sessions SessionCounter
	dec      *schema.Decoder
}

func NewStatusHandler(
	log logrus.FieldLogger,
	st *status.Status,
	sessions SessionCounter,
) *StatusHandler {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)

	return &StatusHandler{
		log:      log,
		status:   st,
		sessions: sessions,
		dec:      dec,
	}
}

// Alive answers the hosting platform's uptime probe.
func (h StatusHandler) Alive(w http.ResponseWriter, r *http.Request) {
	h.log.Debug("received liveness probe")
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := w.Write([]byte(aliveMessage)); err != nil {
		h.log.WithError(err).Error("unable to send liveness response")
	}
}

type StatusQueryDTO struct {
	Verbose bool `schema:"verbose"`
}

type StatusDTO struct {
	OK       bool                     `json:"ok"`
	Workers  map[string]status.Worker `json:"workers"`
	Sessions *int                     `json:"sessions,omitempty"`
}

func (h StatusHandler) Status(w http.ResponseWriter, r *http.Request) {
	var query StatusQueryDTO
	if err := h.dec.Decode(&query, r.URL.Query()); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, h.log, wrapError(err))
		return
	}

	dto := StatusDTO{
		OK:      h.status.Healthy(),
		Workers: h.status.Snapshot(),
	}
	if query.Verbose {
		n := h.sessions.Len()
		dto.Sessions = &n
	}

	if !dto.OK {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	sendJSONOrLog(w, h.log, dto)
}

func (h StatusHandler) ServeMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", h.Alive)
	mux.HandleFunc("GET /status", h.Status)
	return mux
}
