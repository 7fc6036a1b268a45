package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/chatcolor/internal/chat"
	"github.com/colonyops/chatcolor/internal/core/players"
)

type UnsetCmd struct {
	flags *Flags
	app   *chat.App
}

// NewUnsetCmd creates a new unset command
func NewUnsetCmd(flags *Flags, app *chat.App) *UnsetCmd {
	return &UnsetCmd{flags: flags, app: app}
}

// Register adds the unset command to the application
func (cmd *UnsetCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:          "unset",
		Usage:         "Remove a player's chat color",
		UsageText:     "chatcolor unset <player>",
		Description:   "Removes the saved color. The player falls back to a random color.",
		ShellComplete: NameCompleter(cmd.app, players.ScopeExplicit),
		Action:        cmd.run,
	})

	return app
}

func (cmd *UnsetCmd) run(ctx context.Context, c *cli.Command) error {
	if c.Args().Len() != 1 {
		return fmt.Errorf("usage: %s", c.UsageText)
	}

	msg := chat.NewCommands(cmd.app.Store).UnsetColor(ctx, c.Args().First())
	_, _ = fmt.Fprintln(c.Root().Writer, cmd.flags.renderer(c).Render(msg))
	return nil
}
