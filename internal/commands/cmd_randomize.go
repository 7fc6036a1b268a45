package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/chatcolor/internal/chat"
)

type RandomizeCmd struct {
	flags *Flags
	app   *chat.App
}

// NewRandomizeCmd creates a new randomize command
func NewRandomizeCmd(flags *Flags, app *chat.App) *RandomizeCmd {
	return &RandomizeCmd{flags: flags, app: app}
}

// Register adds the randomize command to the application
func (cmd *RandomizeCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "randomize",
		Usage:     "Randomize all random player colors",
		UsageText: "chatcolor randomize",
		Description: `Picks a new random color for every player without a saved color.

Random colors only live for one session, so outside "chatcolor recolor" this
only acknowledges the request. Inside a recolor session send "/randomize".`,
		Action: cmd.run,
	})

	return app
}

func (cmd *RandomizeCmd) run(ctx context.Context, c *cli.Command) error {
	msg := chat.NewCommands(cmd.app.Store).RandomizeColors()
	_, _ = fmt.Fprintln(c.Root().Writer, cmd.flags.renderer(c).Render(msg))
	return nil
}
