package players

import (
	"context"
	"errors"
	"slices"
	"strings"
	"sync"

	"github.com/colonyops/chatcolor/internal/core/rgb"
	"github.com/rs/zerolog"
)

// Store owns the color record of every tracked name. All methods are safe for
// concurrent use; a single mutex serializes reads and writes so that two
// callers never assign different ephemeral colors to the same new name.
type Store struct {
	mu        sync.Mutex
	players   map[string]*Player
	populated bool

	backend  Backend
	generate rgb.Generator
	log      zerolog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithGenerator replaces the ephemeral color generator.
func WithGenerator(g rgb.Generator) Option {
	return func(s *Store) { s.generate = g }
}

// WithLogger sets the logger used for persistence warnings.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Store) { s.log = l }
}

// NewStore creates an empty store. A nil backend keeps explicit colors in
// memory only.
func NewStore(backend Backend, opts ...Option) *Store {
	if backend == nil {
		backend = NewMemoryBackend()
	}

	s := &Store{
		players:  make(map[string]*Player),
		backend:  backend,
		generate: rgb.Random,
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load replaces the explicit colors with the backend's saved data. Missing
// data leaves the store empty. Unreadable or malformed data is logged and
// also leaves the store empty, so startup never fails on a bad file.
// It returns the number of explicit colors loaded.
func (s *Store) Load(ctx context.Context) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	colors, ok := s.read(ctx)

	s.players = make(map[string]*Player, len(colors))
	s.populated = false
	if !ok {
		return 0
	}
	for name, c := range colors {
		p := s.newPlayer()
		p.SetExplicit(c)
		s.players[name] = p
	}

	s.log.Info().Int("count", len(colors)).Msg("loaded player colors")
	return len(colors)
}

// Reload merges saved explicit colors into the running store. Names missing
// from the saved data lose their explicit color; ephemeral colors are kept.
// When the saved data cannot be read the store is left untouched and false
// is returned.
//
// The read happens under the store mutex, so a concurrent SetExplicit either
// lands before the read (and is in the saved data) or after the merge.
func (s *Store) Reload(ctx context.Context) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	colors, ok := s.read(ctx)
	if !ok {
		return false
	}

	for name, p := range s.players {
		if c, saved := colors[name]; saved {
			p.SetExplicit(c)
		} else {
			p.UnsetExplicit()
		}
	}
	for name, c := range colors {
		if _, exists := s.players[name]; !exists {
			p := s.newPlayer()
			p.SetExplicit(c)
			s.players[name] = p
		}
	}

	s.log.Debug().Int("count", len(colors)).Msg("reloaded player colors")
	return true
}

// read loads the saved colors. Callers hold s.mu.
func (s *Store) read(ctx context.Context) (map[string]rgb.RGB, bool) {
	data, err := s.backend.Read(ctx)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			s.log.Info().Msg("no saved player colors")
			return map[string]rgb.RGB{}, true
		}
		s.log.Warn().Err(err).Msg("failed to read player colors, continuing in memory")
		return nil, false
	}

	colors, err := Decode(data)
	if err != nil {
		s.log.Warn().Err(err).Msg("failed to load player colors, continuing in memory")
		return nil, false
	}
	return colors, true
}

// flush writes every explicit color to the backend. Callers hold s.mu.
// A failed write is logged; the in-memory state stays authoritative.
func (s *Store) flush(ctx context.Context) {
	colors := make(map[string]rgb.RGB)
	for name, p := range s.players {
		if p.HasExplicit() {
			colors[name] = *p.Explicit
		}
	}

	data, err := Encode(colors)
	if err == nil {
		err = s.backend.Write(ctx, data)
	}
	if err != nil {
		s.log.Warn().Err(err).Msg("failed to save player colors")
		return
	}

	s.log.Debug().Int("count", len(colors)).Msg("saved player colors")
}

func (s *Store) newPlayer() *Player {
	return &Player{Ephemeral: s.generate()}
}

// lookupOrCreate returns the record for name, creating it with a fresh
// ephemeral color. Callers hold s.mu.
func (s *Store) lookupOrCreate(name string) *Player {
	p, ok := s.players[name]
	if !ok {
		p = s.newPlayer()
		s.players[name] = p
	}
	return p
}

// EffectiveColor returns the explicit color of name if set, otherwise its
// ephemeral color. An untracked name is tracked first, so every displayed
// name keeps one color for the rest of the session.
func (s *Store) EffectiveColor(name string) rgb.RGB {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lookupOrCreate(name).Effective()
}

// Get returns a copy of the record for name.
func (s *Store) Get(name string) (Player, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.players[name]
	if !ok {
		return Player{}, false
	}

	cp := *p
	if p.HasExplicit() {
		c := *p.Explicit
		cp.Explicit = &c
	}
	return cp, true
}

// SetExplicit sets the durable color of name, tracking it if needed, and
// saves.
func (s *Store) SetExplicit(ctx context.Context, name string, c rgb.RGB) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lookupOrCreate(name).SetExplicit(c)
	s.flush(ctx)
}

// UnsetExplicit clears the durable color of name and saves. The record and
// its ephemeral color are kept. It returns false, without saving, when name
// had no explicit color.
func (s *Store) UnsetExplicit(ctx context.Context, name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.players[name]
	if !ok || !p.UnsetExplicit() {
		return false
	}
	s.flush(ctx)
	return true
}

// ListExplicit returns every name with an explicit color, sorted by name.
func (s *Store) ListExplicit() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := make([]Entry, 0, len(s.players))
	for name, p := range s.players {
		if p.HasExplicit() {
			entries = append(entries, Entry{Name: name, Color: *p.Explicit})
		}
	}
	slices.SortFunc(entries, func(a, b Entry) int {
		return strings.Compare(a.Name, b.Name)
	})
	return entries
}

// IsKnownName reports whether name is tracked by the store or active in the
// roster. A nil roster counts as empty.
func (s *Store) IsKnownName(name string, roster Roster) bool {
	s.mu.Lock()
	_, tracked := s.players[name]
	s.mu.Unlock()

	if tracked {
		return true
	}
	return roster != nil && roster.Has(name)
}

// Track adds an ephemeral record for every name not already tracked and
// returns how many were added.
func (s *Store) Track(names ...string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	added := 0
	for _, name := range names {
		if name == "" {
			continue
		}
		if _, ok := s.players[name]; !ok {
			s.players[name] = s.newPlayer()
			added++
		}
	}
	return added
}

// Populated reports whether the active population has been tracked for the
// current session.
func (s *Store) Populated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.populated
}

// MarkPopulated records whether the active population has been tracked.
func (s *Store) MarkPopulated(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.populated = v
}

// OnSessionEnd forgets every name without an explicit color and clears the
// populated flag, so names from the previous session are not recolored after
// reconnecting elsewhere. It returns the number of records removed.
func (s *Store) OnSessionEnd() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for name, p := range s.players {
		if !p.HasExplicit() {
			delete(s.players, name)
			removed++
		}
	}
	s.populated = false
	return removed
}

// RandomizeAllEphemeral assigns a fresh ephemeral color to every record,
// including those with an explicit color.
func (s *Store) RandomizeAllEphemeral() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.players {
		p.Ephemeral = s.generate()
	}
}

// Names returns every tracked name, sorted.
func (s *Store) Names() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	names := make([]string, 0, len(s.players))
	for name := range s.players {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// ExplicitNames returns every name with an explicit color, sorted.
func (s *Store) ExplicitNames() []string {
	entries := s.ListExplicit()
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}

// Len returns the number of tracked names.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.players)
}
