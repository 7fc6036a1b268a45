package players

import (
	"context"
	"errors"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/colonyops/chatcolor/internal/core/rgb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRoster []string

func (f fakeRoster) Has(name string) bool  { return slices.Contains(f, name) }
func (f fakeRoster) ActiveNames() []string { return f }

// failingBackend returns errors for every operation.
type failingBackend struct {
	readErr  error
	writeErr error
	writes   int
}

func (f *failingBackend) Read(context.Context) ([]byte, error) { return nil, f.readErr }

func (f *failingBackend) Write(context.Context, []byte) error {
	f.writes++
	return f.writeErr
}

// staticBackend returns fixed bytes.
type staticBackend []byte

func (b staticBackend) Read(context.Context) ([]byte, error) { return b, nil }
func (b staticBackend) Write(context.Context, []byte) error  { return nil }

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(nil, WithGenerator(rgb.NewGenerator(1, 1)))
}

func TestEffectiveColor_StableWithinSession(t *testing.T) {
	s := newTestStore(t)

	first := s.EffectiveColor("Alice")
	second := s.EffectiveColor("Alice")

	assert.Equal(t, first, second)
	assert.Equal(t, 1, s.Len(), "lookup tracks the name")

	p, ok := s.Get("Alice")
	require.True(t, ok)
	assert.False(t, p.HasExplicit())
	assert.Equal(t, first, p.Ephemeral)
}

func TestExplicitColor_TakesPrecedence(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	ephemeral := s.EffectiveColor("Bob")
	s.SetExplicit(ctx, "Bob", 0x112233)
	assert.Equal(t, rgb.RGB(0x112233), s.EffectiveColor("Bob"))

	assert.True(t, s.UnsetExplicit(ctx, "Bob"))
	assert.Equal(t, ephemeral, s.EffectiveColor("Bob"), "unset falls back to the kept ephemeral color")

	_, ok := s.Get("Bob")
	assert.True(t, ok, "unset keeps the record")
}

func TestUnsetExplicit_NoColor(t *testing.T) {
	ctx := context.Background()
	backend := &failingBackend{}
	s := NewStore(backend)

	assert.False(t, s.UnsetExplicit(ctx, "nobody"))

	s.EffectiveColor("Carol")
	assert.False(t, s.UnsetExplicit(ctx, "Carol"))
	assert.Equal(t, 0, backend.writes, "no-op unset must not save")
}

func TestSetExplicit_NewName(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	s.SetExplicit(ctx, "Dave", 0xABCDEF)

	p, ok := s.Get("Dave")
	require.True(t, ok)
	require.NotNil(t, p.Explicit)
	assert.Equal(t, rgb.RGB(0xABCDEF), *p.Explicit)
	assert.True(t, s.IsKnownName("Dave", nil))
}

func TestListExplicit_Sorted(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	s.SetExplicit(ctx, "zed", 0x000001)
	s.SetExplicit(ctx, "Amy", 0x000002)
	s.SetExplicit(ctx, "bob", 0x000003)
	s.EffectiveColor("ephemeral_only")

	assert.Equal(t, []Entry{
		{Name: "Amy", Color: 0x000002},
		{Name: "bob", Color: 0x000003},
		{Name: "zed", Color: 0x000001},
	}, s.ListExplicit())
	assert.Equal(t, []string{"Amy", "bob", "zed"}, s.ExplicitNames())
}

func TestIsKnownName(t *testing.T) {
	s := newTestStore(t)
	roster := fakeRoster{"Online"}

	assert.True(t, s.IsKnownName("Online", roster))
	assert.False(t, s.IsKnownName("online", roster), "names are case-sensitive")
	assert.False(t, s.IsKnownName("Stranger", roster))
	assert.False(t, s.IsKnownName("Stranger", nil))

	s.EffectiveColor("Stranger")
	assert.True(t, s.IsKnownName("Stranger", nil))
}

func TestOnSessionEnd(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	s.SetExplicit(ctx, "Keep", 0x123456)
	s.EffectiveColor("Drop1")
	s.EffectiveColor("Drop2")
	s.MarkPopulated(true)

	removed := s.OnSessionEnd()

	assert.Equal(t, 2, removed)
	assert.Equal(t, []string{"Keep"}, s.Names())
	assert.False(t, s.Populated())
}

func TestRandomizeAllEphemeral(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	s.Track("a", "b", "c", "d", "e")
	s.SetExplicit(ctx, "a", 0x010101)

	before := map[string]rgb.RGB{}
	for _, n := range s.Names() {
		p, _ := s.Get(n)
		before[n] = p.Ephemeral
	}

	s.RandomizeAllEphemeral()

	changed := 0
	for _, n := range s.Names() {
		p, _ := s.Get(n)
		if p.Ephemeral != before[n] {
			changed++
		}
	}
	assert.Positive(t, changed)
	assert.Equal(t, rgb.RGB(0x010101), s.EffectiveColor("a"), "explicit color still wins")
}

func TestTrack(t *testing.T) {
	s := newTestStore(t)

	assert.Equal(t, 2, s.Track("a", "b", ""))
	assert.Equal(t, 1, s.Track("a", "c"))
	assert.Equal(t, []string{"a", "b", "c"}, s.Names())
}

func TestPersistence_RoundTrip(t *testing.T) {
	ctx := context.Background()
	backend := NewMemoryBackend()

	s := NewStore(backend)
	s.SetExplicit(ctx, "Bob", 0xAABBCC)
	s.SetExplicit(ctx, "Alice", 0x00AEFF)
	s.SetExplicit(ctx, "Gone", 0x000001)
	s.UnsetExplicit(ctx, "Gone")
	s.EffectiveColor("EphemeralOnly")

	reloaded := NewStore(backend)
	assert.Equal(t, 2, reloaded.Load(ctx))

	assert.Equal(t, s.ListExplicit(), reloaded.ListExplicit())
	assert.Equal(t, []string{"Alice", "Bob"}, reloaded.Names(), "ephemeral-only names are not persisted")
}

func TestLoad_Missing(t *testing.T) {
	s := NewStore(NewMemoryBackend())
	assert.Equal(t, 0, s.Load(context.Background()))
	assert.Empty(t, s.Names())
}

func TestLoad_Malformed(t *testing.T) {
	s := NewStore(staticBackend(`{"players": [}`))
	s.Track("before")

	assert.Equal(t, 0, s.Load(context.Background()))
	assert.Empty(t, s.Names())
}

func TestLoad_ReadError(t *testing.T) {
	s := NewStore(&failingBackend{readErr: errors.New("permission denied")})
	assert.Equal(t, 0, s.Load(context.Background()))
	assert.Empty(t, s.Names())
}

func TestLoad_NumericColors(t *testing.T) {
	s := NewStore(staticBackend(`{"players": {"Bob": {"color": 11189196}}}`))
	require.Equal(t, 1, s.Load(context.Background()))
	assert.Equal(t, rgb.RGB(0xAABBCC), s.EffectiveColor("Bob"))
}

func TestWriteFailure_KeepsMemoryState(t *testing.T) {
	ctx := context.Background()
	backend := &failingBackend{writeErr: errors.New("disk full")}
	s := NewStore(backend)

	s.SetExplicit(ctx, "Bob", 0x112233)

	assert.Equal(t, 1, backend.writes)
	assert.Equal(t, rgb.RGB(0x112233), s.EffectiveColor("Bob"))
	assert.Equal(t, []Entry{{Name: "Bob", Color: 0x112233}}, s.ListExplicit())
}

func TestReload(t *testing.T) {
	ctx := context.Background()
	backend := NewMemoryBackend()
	s := NewStore(backend)

	s.SetExplicit(ctx, "Bob", 0x111111)
	s.SetExplicit(ctx, "Carol", 0x222222)
	bob, _ := s.Get("Bob")

	// Another process rewrites the file.
	other := NewStore(backend)
	other.Load(ctx)
	other.UnsetExplicit(ctx, "Bob")
	other.SetExplicit(ctx, "Carol", 0x333333)
	other.SetExplicit(ctx, "Dan", 0x444444)

	require.True(t, s.Reload(ctx))

	assert.Equal(t, bob.Ephemeral, s.EffectiveColor("Bob"), "ephemeral color survives reload")
	assert.Equal(t, rgb.RGB(0x333333), s.EffectiveColor("Carol"))
	assert.Equal(t, rgb.RGB(0x444444), s.EffectiveColor("Dan"))
}

func TestReload_BadDataKeepsState(t *testing.T) {
	s := NewStore(staticBackend(`not json`))
	s.Track("x")

	assert.False(t, s.Reload(context.Background()))
	assert.Equal(t, []string{"x"}, s.Names())
}

// gatedBackend takes its snapshot, then blocks Read until release is closed.
type gatedBackend struct {
	Backend
	reading chan struct{}
	release chan struct{}
}

func (g *gatedBackend) Read(ctx context.Context) ([]byte, error) {
	data, err := g.Backend.Read(ctx)
	close(g.reading)
	<-g.release
	return data, err
}

func TestReload_ConcurrentSetExplicitSurvives(t *testing.T) {
	ctx := context.Background()
	backend := &gatedBackend{
		Backend: NewMemoryBackend(),
		reading: make(chan struct{}),
		release: make(chan struct{}),
	}
	s := NewStore(backend)

	reloaded := make(chan bool)
	go func() { reloaded <- s.Reload(ctx) }()
	<-backend.reading

	set := make(chan struct{})
	go func() {
		s.SetExplicit(ctx, "Bob", 0xAABBCC)
		close(set)
	}()

	// Give SetExplicit the chance to run while the stale snapshot is held.
	time.Sleep(50 * time.Millisecond)
	close(backend.release)

	require.True(t, <-reloaded)
	<-set

	assert.Equal(t, []Entry{{Name: "Bob", Color: 0xAABBCC}}, s.ListExplicit())

	fresh := NewStore(backend.Backend)
	assert.Equal(t, 1, fresh.Load(ctx))
}

func TestEffectiveColor_Concurrent(t *testing.T) {
	s := NewStore(nil)

	const workers = 16
	results := make([]rgb.RGB, workers)

	var wg sync.WaitGroup
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = s.EffectiveColor("Racer")
		}()
	}
	wg.Wait()

	for _, c := range results {
		assert.Equal(t, results[0], c)
	}
}

func TestDecode(t *testing.T) {
	colors, err := Decode(nil)
	require.NoError(t, err)
	assert.Empty(t, colors)

	_, err = Decode([]byte(`{"players": {"": {"color": "#000000"}}}`))
	require.Error(t, err)

	_, err = Decode([]byte(`{"players": {"a": {"color": "#GG0000"}}}`))
	require.ErrorIs(t, err, rgb.ErrInvalidFormat)

	for _, entry := range []string{`{}`, `{"color":null}`, `{"setColor":1}`} {
		_, err = Decode([]byte(`{"players": {"Bob": ` + entry + `}}`))
		require.Error(t, err, entry)
		assert.Contains(t, err.Error(), `"Bob" has no color`, entry)
	}

	colors, err = Decode([]byte(`{"players": {"Bob": {"color": "#000000"}}}`))
	require.NoError(t, err)
	assert.Equal(t, map[string]rgb.RGB{"Bob": rgb.Black}, colors)
}

func TestLoad_EntryWithoutColorStartsEmpty(t *testing.T) {
	ctx := context.Background()
	backend := NewMemoryBackend()
	require.NoError(t, backend.Write(ctx, []byte(`{"players": {"Bob": {"color": null}, "Alice": {"color": "#00AEFF"}}}`)))

	s := NewStore(backend)
	assert.Equal(t, 0, s.Load(ctx))
	assert.Empty(t, s.ListExplicit())
}
