package session

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/vancomm/minesweeper-bot/internal/mines"
)

var (
	ErrNoSession  = errors.New("no game session")
	ErrStaleBoard = errors.New("board message is not the current game")
)

type Session struct {
	mu        sync.Mutex
	OwnerID   int64
	MessageID int
	StartedAt time.Time
	game      *mines.GameState
}

// Move is the result of a reveal together with the player grid as it was
// right after the reveal was applied.
type Move struct {
	Outcome mines.Outcome
	Grid    mines.Grid
	Size    int
}

// Snapshot returns a copy of the player grid and whether the game is over.
func (s *Session) Snapshot() (mines.Grid, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.PlayerGrid.Clone(), s.game.Terminal()
}

// Store keeps one game per player. Starting a game replaces the previous
// one; entries are never expired.
type Store struct {
	mu       sync.RWMutex
	rndMu    sync.Mutex
	params   mines.GameParams
	rnd      *rand.Rand
	now      func() time.Time
	sessions map[int64]*Session
}

func NewStore(params mines.GameParams, rnd *rand.Rand) (*Store, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	s := &Store{
		params:   params,
		rnd:      rnd,
		now:      time.Now,
		sessions: make(map[int64]*Session),
	}
	return s, nil
}

func (s *Store) Params() mines.GameParams {
	return s.params
}

func (s *Store) newGame() (*mines.GameState, error) {
	s.rndMu.Lock()
	defer s.rndMu.Unlock()
	return mines.NewGame(s.params, s.rnd)
}

// Start creates a fresh game for userID, discarding any previous one.
func (s *Store) Start(userID int64) (*Session, error) {
	game, err := s.newGame()
	if err != nil {
		return nil, fmt.Errorf("unable to generate a new game: %w", err)
	}

	session := &Session{
		OwnerID:   userID,
		StartedAt: s.now(),
		game:      game,
	}

	s.mu.Lock()
	s.sessions[userID] = session
	s.mu.Unlock()

	return session, nil
}

func (s *Store) Get(userID int64) (*Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[userID]
	return session, ok
}

// Attach records the message that displays the board of session. Callbacks
// from any other message are rejected as stale.
func (s *Store) Attach(session *Session, messageID int) {
	session.mu.Lock()
	defer session.mu.Unlock()
	session.MessageID = messageID
}

// Reveal opens (row, col) in userID's game. Reveals on the same session are
// applied one at a time. A messageID of 0 skips the stale board check.
func (s *Store) Reveal(userID int64, messageID int, row, col int) (Move, error) {
	session, ok := s.Get(userID)
	if !ok {
		return Move{}, ErrNoSession
	}

	session.mu.Lock()
	defer session.mu.Unlock()

	if messageID != 0 && session.MessageID != messageID {
		return Move{}, ErrStaleBoard
	}

	outcome, err := session.game.Reveal(row, col)
	if err != nil {
		return Move{}, err
	}

	move := Move{
		Outcome: outcome,
		Grid:    session.game.PlayerGrid.Clone(),
		Size:    session.game.Size,
	}
	return move, nil
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
