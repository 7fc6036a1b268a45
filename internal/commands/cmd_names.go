package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/chatcolor/internal/chat"
	"github.com/colonyops/chatcolor/internal/core/players"
	"github.com/colonyops/chatcolor/internal/core/roster"
)

type NamesCmd struct {
	flags *Flags
	app   *chat.App

	// flags
	active   bool
	explicit bool
}

// NewNamesCmd creates a new names command
func NewNamesCmd(flags *Flags, app *chat.App) *NamesCmd {
	return &NamesCmd{flags: flags, app: app}
}

// Register adds the names command to the application
func (cmd *NamesCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "names",
		Usage:     "Suggest player names",
		UsageText: "chatcolor names [--active|--explicit] [prefix]",
		Description: `Prints known player names starting with prefix, ignoring case. By default
names come from the configured roster and from saved colors.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "active",
				Usage:       "only names in the configured roster",
				Destination: &cmd.active,
			},
			&cli.BoolFlag{
				Name:        "explicit",
				Usage:       "only names with a saved color",
				Destination: &cmd.explicit,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *NamesCmd) run(ctx context.Context, c *cli.Command) error {
	scope := players.ScopeAll
	switch {
	case cmd.active && cmd.explicit:
		return errors.New("--active and --explicit are mutually exclusive")
	case cmd.active:
		scope = players.ScopeActive
	case cmd.explicit:
		scope = players.ScopeExplicit
	}

	r, err := configuredRoster(cmd.app)
	if err != nil {
		return err
	}

	for _, name := range cmd.app.Store.Suggest(r, scope, c.Args().First()) {
		_, _ = fmt.Fprintln(c.Root().Writer, name)
	}
	return nil
}

// configuredRoster returns the static roster from config plus the roster
// file, if one is set.
func configuredRoster(app *chat.App, extra ...string) (*roster.Roster, error) {
	r := roster.New(app.Config.Roster...)
	r.Join(extra...)

	if path := app.Config.RosterFilePath(); path != "" {
		names, err := roster.ReadFile(path)
		if err != nil {
			return nil, err
		}
		r.Join(names...)
	}
	return r, nil
}

func readRosterFile(path string) ([]string, error) {
	names, err := roster.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("roster file: %w", err)
	}
	return names, nil
}
