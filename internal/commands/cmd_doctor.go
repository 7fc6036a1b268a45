package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/chatcolor/internal/chat"
	"github.com/colonyops/chatcolor/internal/core/doctor"
	"github.com/colonyops/chatcolor/pkg/iojson"
)

type DoctorCmd struct {
	flags  *Flags
	app    *chat.App
	format string
}

func NewDoctorCmd(flags *Flags, app *chat.App) *DoctorCmd {
	return &DoctorCmd{flags: flags, app: app}
}

func (cmd *DoctorCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:        "doctor",
		Usage:       "Run health checks on your chatcolor setup",
		UsageText:   "chatcolor doctor [options]",
		Description: "Runs diagnostic checks on configuration, saved colors, and the roster.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "format",
				Usage:       "output format (text, json)",
				Value:       "text",
				Destination: &cmd.format,
			},
		},
		Action: cmd.run,
	})
	return app
}

func (cmd *DoctorCmd) run(ctx context.Context, c *cli.Command) error {
	cfg := cmd.app.Config
	checks := []doctor.Check{
		doctor.NewConfigCheck(cfg, cmd.flags.ConfigPath),
		doctor.NewStorageCheck(cmd.app.Backend(), cfg.StoragePath()),
		doctor.NewRosterCheck(cfg.Roster, cfg.RosterFilePath()),
	}

	results := doctor.RunAll(ctx, checks)

	if cmd.format == "json" {
		return cmd.outputJSON(c, results)
	}

	return cmd.outputText(c, results)
}

func (cmd *DoctorCmd) outputJSON(c *cli.Command, results []doctor.Result) error {
	passed, warned, failed := doctor.Summary(results)

	out := struct {
		Healthy bool            `json:"healthy"`
		Summary summaryJSON     `json:"summary"`
		Checks  []doctor.Result `json:"checks"`
	}{
		Healthy: failed == 0,
		Summary: summaryJSON{Passed: passed, Warned: warned, Failed: failed},
		Checks:  results,
	}

	if err := iojson.WriteWith(c.Root().Writer, errWriter(c), out); err != nil {
		return err
	}
	if failed > 0 {
		return cli.Exit("", 1)
	}
	return nil
}

type summaryJSON struct {
	Passed int `json:"passed"`
	Warned int `json:"warned"`
	Failed int `json:"failed"`
}

func (cmd *DoctorCmd) outputText(c *cli.Command, results []doctor.Result) error {
	var (
		w = c.Root().Writer
		r = cmd.flags.renderer(c)
	)

	_, _ = fmt.Fprintln(w, r.Header("chatcolor doctor"))
	_, _ = fmt.Fprintln(w, r.Muted(strings.Repeat("─", 40)))
	_, _ = fmt.Fprintln(w)

	for _, result := range results {
		_, _ = fmt.Fprintln(w, result.Name)

		for _, item := range result.Items {
			var detail string
			if item.Detail != "" {
				detail = " " + r.Muted(item.Detail)
			}

			var icon string
			switch item.Status {
			case doctor.StatusPass:
				icon = r.Success("✔")
			case doctor.StatusWarn:
				icon = r.Warning("●")
			case doctor.StatusFail:
				icon = r.Error("✘")
			}

			_, _ = fmt.Fprintf(w, "  %s %s%s\n", icon, item.Label, detail)
		}

		_, _ = fmt.Fprintln(w)
	}

	passed, warned, failed := doctor.Summary(results)
	_, _ = fmt.Fprintf(w, "%s  %s  %s\n",
		r.Success(fmt.Sprintf("%d passed", passed)),
		r.Warning(fmt.Sprintf("%d warnings", warned)),
		r.Error(fmt.Sprintf("%d failed", failed)),
	)

	if failed > 0 {
		return cli.Exit("", 1)
	}

	return nil
}
