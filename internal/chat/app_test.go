package chat

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/chatcolor/internal/core/config"
	"github.com/colonyops/chatcolor/internal/core/players"
	"github.com/colonyops/chatcolor/internal/core/rgb"
	"github.com/colonyops/chatcolor/internal/store/jsonfile"
)

func testConfig(t *testing.T, backend string) *config.Config {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.DataDir = t.TempDir()
	cfg.Storage.Backend = backend
	return &cfg
}

func TestOpen_PersistsAcrossRestarts(t *testing.T) {
	for _, backend := range []string{config.BackendJSON, config.BackendBolt} {
		t.Run(backend, func(t *testing.T) {
			ctx := context.Background()
			cfg := testConfig(t, backend)

			app, err := Open(ctx, cfg, zerolog.Nop())
			require.NoError(t, err)
			app.Store.SetExplicit(ctx, "Bob", 0xAABBCC)
			app.Store.Track("Ephemeral")
			require.NoError(t, app.Close())

			app, err = Open(ctx, cfg, zerolog.Nop())
			require.NoError(t, err)
			defer app.Close() //nolint:errcheck

			assert.Equal(t, []players.Entry{{Name: "Bob", Color: 0xAABBCC}}, app.Store.ListExplicit())
			assert.Equal(t, 1, app.Store.Len())
		})
	}
}

func TestApp_NewHostUsesConfig(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t, config.BackendJSON)
	cfg.Roster = []string{"Steve"}
	cfg.Recolor.DropUnmatched = true
	cfg.Recolor.Ignore = []string{"Server*"}

	app, err := Open(ctx, cfg, zerolog.Nop(), players.WithGenerator(rgb.NewGenerator(5, 6)))
	require.NoError(t, err)
	defer app.Close() //nolint:errcheck

	h := app.NewHost("Alex")
	assert.Equal(t, []string{"Alex", "Steve"}, h.Session().Roster().ActiveNames())

	assert.Nil(t, h.HandleLine(ctx, "hello"))
	h.HandleLine(ctx, "/join ServerBot")
	assert.Nil(t, h.HandleLine(ctx, "ServerBot says hi"))
}

func TestApp_WatchReloadsExternalChanges(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cfg := testConfig(t, config.BackendJSON)
	app, err := Open(ctx, cfg, zerolog.Nop())
	require.NoError(t, err)
	defer app.Close() //nolint:errcheck

	stop, err := app.Watch(ctx)
	require.NoError(t, err)
	defer stop()

	other := players.NewStore(jsonfile.NewColorsFile(cfg.StoragePath()))
	other.SetExplicit(ctx, "Bob", 0x00FF00)

	require.Eventually(t, func() bool {
		return len(app.Store.ListExplicit()) == 1
	}, 3*time.Second, 20*time.Millisecond)
}

func TestApp_WatchNoopForBolt(t *testing.T) {
	ctx := context.Background()
	app, err := Open(ctx, testConfig(t, config.BackendBolt), zerolog.Nop())
	require.NoError(t, err)
	defer app.Close() //nolint:errcheck

	stop, err := app.Watch(ctx)
	require.NoError(t, err)
	stop()
}
