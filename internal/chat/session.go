package chat

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/colonyops/chatcolor/internal/core/players"
	"github.com/colonyops/chatcolor/internal/core/recolor"
	"github.com/colonyops/chatcolor/internal/core/roster"
	"github.com/colonyops/chatcolor/internal/core/styledtext"
)

// Session is one connection to a chat server: messages arrive, names get
// colored, and on disconnect every name without an explicit color is
// forgotten.
type Session struct {
	ID string

	store         *players.Store
	recolorer     *recolor.Recolorer
	roster        *roster.Roster
	dropUnmatched bool
	log           zerolog.Logger
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithDropUnmatched hides messages that mention no known name.
func WithDropUnmatched(v bool) SessionOption {
	return func(s *Session) { s.dropUnmatched = v }
}

// WithLogger sets the session logger. The session ID is added to it.
func WithLogger(l zerolog.Logger) SessionOption {
	return func(s *Session) { s.log = l }
}

// NewSession returns a session with a fresh ID.
func NewSession(store *players.Store, rc *recolor.Recolorer, r *roster.Roster, opts ...SessionOption) *Session {
	s := &Session{
		ID:        uuid.NewString(),
		store:     store,
		recolorer: rc,
		roster:    r,
		log:       zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With().Str("session", s.ID).Logger()
	return s
}

// Roster returns the session's online names.
func (s *Session) Roster() *roster.Roster { return s.roster }

// Receive processes one incoming message. It returns the text to display and
// whether anything should be displayed at all: a recolored message when a
// name matched, otherwise the original message, or nothing when unmatched
// messages are dropped.
func (s *Session) Receive(msg styledtext.Text) (styledtext.Text, bool) {
	s.populate()

	out, matched := s.recolorer.Recolor(msg, s.roster)
	if matched {
		return out.Compact(), true
	}
	if s.dropUnmatched {
		return nil, false
	}
	return msg, true
}

// populate tracks everyone online the first time a message arrives, so a
// player who never speaks still has a color when their leave message shows
// up. Nobody online means the host hasn't sent the player list yet; retry on
// the next message.
func (s *Session) populate() {
	if s.store.Populated() {
		return
	}
	names := s.roster.ActiveNames()
	if len(names) == 0 {
		return
	}
	added := s.store.Track(names...)
	s.store.MarkPopulated(true)
	s.log.Debug().Int("online", len(names)).Int("added", added).Msg("tracked online players")
}

// Join marks names online.
func (s *Session) Join(names ...string) {
	s.roster.Join(names...)
}

// Leave marks name offline. Its color is kept until the session ends.
func (s *Session) Leave(name string) bool {
	return s.roster.Leave(name)
}

// End forgets every name without an explicit color.
func (s *Session) End() {
	removed := s.store.OnSessionEnd()
	s.log.Info().Int("forgotten", removed).Msg("session ended")
}
