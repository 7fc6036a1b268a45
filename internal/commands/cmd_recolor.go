package commands

import (
	"bufio"
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/chatcolor/internal/chat"
	"github.com/colonyops/chatcolor/pkg/iojson"
)

type RecolorCmd struct {
	flags *Flags
	app   *chat.App

	// flags
	roster        []string
	rosterFile    string
	follow        bool
	dropUnmatched bool
	output        string
}

// Output formats for recolored lines.
const (
	outputTerminal = "terminal"
	outputLegacy   = "legacy"
)

// NewRecolorCmd creates a new recolor command
func NewRecolorCmd(flags *Flags, app *chat.App) *RecolorCmd {
	return &RecolorCmd{flags: flags, app: app}
}

// Register adds the recolor command to the application
func (cmd *RecolorCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "recolor",
		Usage:     "Color player names in chat lines read from stdin",
		UsageText: "chatcolor recolor [--roster <name>]... [--roster-file <path>] [--follow] [--drop-unmatched] [--output terminal|legacy]",
		Description: `Reads one chat message per line, colors every known player name and writes
the result. Messages may carry Minecraft § formatting codes.

Lines starting with a command control the session instead of being shown:
  /join <name>...             players came online
  /leave <name>...            players went offline
  /disconnect                 end the session, forgetting random colors
  /randomize                  pick new random colors
  /chatincolor <subcommand>   setColor, unsetColor, getSetColors, randomizeColors, help

With --output legacy the result is written back as § codes, with "§x" codes
for player colors, so it can be fed to anything that reads Minecraft formatting.

Examples:
  tail -f latest.log | chatcolor recolor --roster Steve --roster Alex
  chatcolor recolor --roster-file online.txt --follow < chat.txt`,
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:        "roster",
				Aliases:     []string{"r"},
				Usage:       "player online at session start (repeatable)",
				Destination: &cmd.roster,
			},
			&cli.StringFlag{
				Name:        "roster-file",
				Usage:       "file with one online player per line",
				Destination: &cmd.rosterFile,
			},
			&cli.BoolFlag{
				Name:        "follow",
				Usage:       "reload saved colors when another process changes them",
				Destination: &cmd.follow,
			},
			&cli.BoolFlag{
				Name:        "drop-unmatched",
				Usage:       "hide messages that mention no player (default from config)",
				Destination: &cmd.dropUnmatched,
			},
			&cli.StringFlag{
				Name:        "output",
				Aliases:     []string{"o"},
				Usage:       "output format (terminal, legacy)",
				Value:       outputTerminal,
				Destination: &cmd.output,
				Validator: func(s string) error {
					if s != outputTerminal && s != outputLegacy {
						return fmt.Errorf("unknown output format %q, want %s or %s", s, outputTerminal, outputLegacy)
					}
					return nil
				},
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *RecolorCmd) run(ctx context.Context, c *cli.Command) error {
	names := append([]string{}, cmd.roster...)
	if cmd.rosterFile != "" {
		fromFile, err := readRosterFile(cmd.rosterFile)
		if err != nil {
			return err
		}
		names = append(names, fromFile...)
	}

	if c.IsSet("drop-unmatched") {
		cmd.app.Config.Recolor.DropUnmatched = cmd.dropUnmatched
	}

	r, err := configuredRoster(cmd.app, names...)
	if err != nil {
		return err
	}
	host := cmd.app.NewHost(r.ActiveNames()...)
	log.Info().Str("session", host.Session().ID).Int("online", host.Session().Roster().Len()).Msg("recolor session started")

	if cmd.follow {
		stop, err := cmd.app.Watch(ctx)
		if err != nil {
			return err
		}
		defer stop()
	}

	in := inReader(c)
	if iojson.IsTerminal(in) {
		_, _ = fmt.Fprintln(errWriter(c), "Reading chat lines from the terminal, press Ctrl-D to finish")
	}

	var (
		out      = c.Root().Writer
		renderer = cmd.flags.renderer(c)
		sc       = bufio.NewScanner(in)
	)
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		for _, line := range host.HandleLine(ctx, sc.Text()) {
			if cmd.output == outputLegacy {
				_, _ = fmt.Fprintln(out, line.Legacy())
				continue
			}
			_, _ = fmt.Fprintln(out, renderer.Render(line))
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	host.Session().End()
	return nil
}
