package commands

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/chatcolor/internal/chat"
	"github.com/colonyops/chatcolor/pkg/iojson"
)

type LsCmd struct {
	flags *Flags
	app   *chat.App

	// flags
	jsonOutput bool
}

// NewLsCmd creates a new ls command
func NewLsCmd(flags *Flags, app *chat.App) *LsCmd {
	return &LsCmd{flags: flags, app: app}
}

// Register adds the ls command to the application
func (cmd *LsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "ls",
		Usage:     "List players with a saved color",
		UsageText: "chatcolor ls [--json]",
		Description: `Displays every player with a saved color, sorted by name. Each name is
drawn in its color when the output is a terminal.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON lines",
				Destination: &cmd.jsonOutput,
			},
		},
		Action: cmd.run,
	})

	return app
}

// entryJSON is one line of `ls --json`. Color is six uppercase hex digits
// without a prefix, matching the table output.
type entryJSON struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

func (cmd *LsCmd) run(ctx context.Context, c *cli.Command) error {
	entries := cmd.app.Store.ListExplicit()
	out := c.Root().Writer

	if cmd.jsonOutput {
		for _, e := range entries {
			if err := iojson.WriteLine(out, entryJSON{Name: e.Name, Color: e.Color.Hex()}); err != nil {
				return fmt.Errorf("encode entry: %w", err)
			}
		}
		return nil
	}

	if len(entries) == 0 {
		_, _ = fmt.Fprintln(errWriter(c), "No player colors set")
		return nil
	}

	r := cmd.flags.renderer(c)

	// Colored text goes last so escape codes don't skew column widths.
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "COLOR\tNAME")
	for _, e := range entries {
		_, _ = fmt.Fprintf(w, "%s\t%s\n", e.Color.Hex(), r.Color(e.Color, e.Name))
	}

	return w.Flush()
}
