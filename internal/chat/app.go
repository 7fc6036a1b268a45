// Package chat wires the color store, roster and recolorer into chat
// sessions.
package chat

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/colonyops/chatcolor/internal/core/config"
	"github.com/colonyops/chatcolor/internal/core/players"
	"github.com/colonyops/chatcolor/internal/core/recolor"
	"github.com/colonyops/chatcolor/internal/store/boltdb"
	"github.com/colonyops/chatcolor/internal/store/jsonfile"
)

// App holds the long-lived state shared by every session: the loaded store
// and the recolorer built from config.
type App struct {
	Config    *config.Config
	Store     *players.Store
	Recolorer *recolor.Recolorer

	backend players.Backend
	closer  func() error
	log     zerolog.Logger
}

// Open selects the configured backend, loads saved colors and returns a ready
// App. Unreadable saved colors are logged and the store starts empty.
func Open(ctx context.Context, cfg *config.Config, log zerolog.Logger, opts ...players.Option) (*App, error) {
	backend, closer, err := openBackend(cfg)
	if err != nil {
		return nil, err
	}

	opts = append([]players.Option{players.WithLogger(log.With().Str("component", "players").Logger())}, opts...)
	store := players.NewStore(backend, opts...)
	store.Load(ctx)

	rc := recolor.New(store,
		recolor.WithIgnore(cfg.Recolor.Ignore...),
		recolor.WithLogger(log.With().Str("component", "recolor").Logger()),
	)

	return &App{
		Config:    cfg,
		Store:     store,
		Recolorer: rc,
		backend:   backend,
		closer:    closer,
		log:       log,
	}, nil
}

func openBackend(cfg *config.Config) (players.Backend, func() error, error) {
	path := cfg.StoragePath()
	switch cfg.Storage.Backend {
	case config.BackendBolt:
		db, err := boltdb.Open(path)
		if err != nil {
			return nil, nil, fmt.Errorf("open bolt store: %w", err)
		}
		return db, db.Close, nil
	default:
		return jsonfile.NewColorsFile(path), func() error { return nil }, nil
	}
}

// Backend returns the storage the store persists to.
func (a *App) Backend() players.Backend {
	return a.backend
}

// Close releases the backend.
func (a *App) Close() error {
	return a.closer()
}

// Watch reloads explicit colors whenever another process rewrites the JSON
// colors file. It is a no-op for other backends. The returned function stops
// watching.
func (a *App) Watch(ctx context.Context) (func(), error) {
	file, ok := a.backend.(*jsonfile.ColorsFile)
	if !ok {
		return func() {}, nil
	}

	w, err := jsonfile.Watch(ctx, file.Path(), a.log, func() {
		if a.Store.Reload(ctx) {
			a.log.Info().Str("path", file.Path()).Msg("player colors changed on disk")
		}
	})
	if err != nil {
		return nil, fmt.Errorf("watch %s: %w", file.Path(), err)
	}
	return func() { _ = w.Close() }, nil
}
