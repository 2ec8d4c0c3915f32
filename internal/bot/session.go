package bot

import (
	"log/slog"
	"sync"

	"termjack/internal/game"
	"termjack/internal/player"
)

// Session is one chat's table: a round controller and its running tally.
type Session struct {
	mu    sync.Mutex
	round *game.Round
	tally player.Player
}

func newSession(logger *slog.Logger, opts ...game.Option) *Session {
	s := &Session{}
	opts = append(opts,
		game.WithLogger(logger),
		game.OnResolve(func(res game.Result) {
			s.tally.Record(res.Outcome)
		}),
	)
	s.round = game.NewRound(opts...)
	return s
}

// Manager keeps the in-memory sessions of all chats.
type Manager struct {
	sessions map[int64]*Session
	mu       sync.RWMutex
	logger   *slog.Logger
	opts     []game.Option
}

// NewManager returns an empty manager. opts are passed to every round it
// creates.
func NewManager(logger *slog.Logger, opts ...game.Option) *Manager {
	return &Manager{
		sessions: make(map[int64]*Session),
		logger:   logger,
		opts:     opts,
	}
}

func (m *Manager) Get(chatID int64) *Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sessions[chatID]
}

// Open returns the chat's session, creating it if needed. created reports
// whether a fresh hand was just dealt.
func (m *Manager) Open(chatID int64) (s *Session, created bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[chatID]; ok {
		return s, false
	}
	s = newSession(m.logger.With("chat", chatID), m.opts...)
	m.sessions[chatID] = s
	return s, true
}

func (m *Manager) Delete(chatID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, chatID)
}

// With runs fn with exclusive access to the session's round. Updates for one
// chat arrive on separate goroutines, so all round access goes through here.
func (s *Session) With(fn func(r *game.Round, tally *player.Player)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.round, &s.tally)
}
