package commands

import (
	"context"
	"fmt"
	"slices"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/chatcolor/internal/chat"
	"github.com/colonyops/chatcolor/internal/core/players"
	"github.com/colonyops/chatcolor/pkg/iojson"
)

type ImportCmd struct {
	flags *Flags
	app   *chat.App
	fr    *iojson.FileReader[players.ColorsFile]
}

// NewImportCmd creates a new import command
func NewImportCmd(flags *Flags, app *chat.App) *ImportCmd {
	return &ImportCmd{
		flags: flags,
		app:   app,
		fr:    &iojson.FileReader[players.ColorsFile]{},
	}
}

// Register adds the import command to the application
func (cmd *ImportCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "import",
		Usage:     "Import saved colors from another colors file",
		UsageText: "chatcolor import [-f file]",
		Description: `Merges the colors of a players.json file, e.g. copied from another
machine, into the saved colors. Existing colors for the same names are
replaced.

Input format:
  {"players": {"Steve": {"color": "#FFAA00"}}}`,
		Flags: []cli.Flag{
			cmd.fr.Flag(),
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *ImportCmd) run(ctx context.Context, c *cli.Command) error {
	if cmd.fr.Stdin == nil {
		cmd.fr.Stdin = inReader(c)
	}

	file, err := cmd.fr.Read()
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	colors, err := file.Colors()
	if err != nil {
		return fmt.Errorf("invalid input: %w", err)
	}

	names := make([]string, 0, len(colors))
	for name := range colors {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		cmd.app.Store.SetExplicit(ctx, name, colors[name])
	}
	imported := len(names)
	log.Debug().Int("count", imported).Msg("imported player colors")

	r := cmd.flags.renderer(c)
	_, _ = fmt.Fprintln(c.Root().Writer, r.Success(fmt.Sprintf("Imported %d player color(s)", imported)))
	return nil
}
