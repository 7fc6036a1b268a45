package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/chatcolor/internal/chat"
	"github.com/colonyops/chatcolor/internal/core/players"
	"github.com/colonyops/chatcolor/internal/core/rgb"
)

type SetCmd struct {
	flags *Flags
	app   *chat.App
}

// NewSetCmd creates a new set command
func NewSetCmd(flags *Flags, app *chat.App) *SetCmd {
	return &SetCmd{flags: flags, app: app}
}

// Register adds the set command to the application
func (cmd *SetCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "set",
		Usage:     "Set a player's chat color",
		UsageText: "chatcolor set <player> <#HEX>",
		Description: `Saves a color that is used for the player in every session.

The color is six hex digits with an optional "#" or "0x" prefix:
  chatcolor set Steve "#FFAA00"
  chatcolor set Alex 55ff55`,
		ShellComplete: NameCompleter(cmd.app, players.ScopeAll),
		Action:        cmd.run,
	})

	return app
}

func (cmd *SetCmd) run(ctx context.Context, c *cli.Command) error {
	if c.Args().Len() < 2 {
		return fmt.Errorf("usage: %s", c.UsageText)
	}

	name := c.Args().First()
	hex := strings.TrimSpace(strings.Join(c.Args().Slice()[1:], " "))

	color, err := rgb.ParseHex(hex)
	if err != nil {
		return fmt.Errorf("invalid hex color: %s", hex)
	}

	cmd.app.Store.SetExplicit(ctx, name, color)

	r := cmd.flags.renderer(c)
	_, _ = fmt.Fprintf(c.Root().Writer, "Set custom color for %s to %s\n", r.Color(color, name), hex)
	return nil
}
