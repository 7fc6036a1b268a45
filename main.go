package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/colonyops/chatcolor/internal/chat"
	"github.com/colonyops/chatcolor/internal/commands"
	"github.com/colonyops/chatcolor/internal/core/config"
	"github.com/colonyops/chatcolor/internal/core/styles"
	"github.com/colonyops/chatcolor/pkg/logutils"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	// When installed via `go install module@version`, init() populates
	// these from runtime/debug.BuildInfo instead.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	v, c, d := version, commit, date

	// When installed via `go install module@version`, ldflags aren't set
	// so version remains "dev". Fall back to runtime/debug.BuildInfo which
	// Go populates automatically with the module version and VCS metadata.
	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if mv := info.Main.Version; mv != "" && mv != "(devel)" {
				v = mv
			}
			for _, s := range info.Settings {
				switch s.Key {
				case "vcs.revision":
					c = s.Value
				case "vcs.time":
					d = s.Value
				}
			}
		}
	}

	short := c
	if len(c) > 7 {
		short = c[:7]
	}

	return fmt.Sprintf("%s (%s) %s", v, short, d)
}

func main() {
	ctx := context.Background()

	// A .env in the working directory may set CHATCOLOR_* variables.
	_ = godotenv.Load()

	var (
		logCloser func()
		chatApp   = &chat.App{}
		storeOpen bool
	)

	flags := &commands.Flags{}

	app := &cli.Command{
		Name:      "chatcolor",
		Usage:     "Color player names in chat",
		UsageText: "chatcolor [global options] command [command options]",
		Description: `chatcolor gives every player in a chat a color and paints their name with
it wherever it shows up: in their own messages, in join and leave notices,
and in other players' messages.

Players get a random color for the session unless you save one with
'chatcolor set'. Run 'chatcolor recolor' to color chat lines from stdin.`,
		Version:               build(),
		EnableShellCompletion: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("CHATCOLOR_LOG_LEVEL"),
				Value:       "info",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file (\"-\" or empty for stderr)",
				Sources:     cli.EnvVars("CHATCOLOR_LOG_FILE"),
				Value:       commands.DefaultLogFile(),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("CHATCOLOR_CONFIG"),
				Value:       commands.DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
			&cli.StringFlag{
				Name:        "data-dir",
				Usage:       "path to data directory",
				Sources:     cli.EnvVars("CHATCOLOR_DATA_DIR"),
				Value:       commands.DefaultDataDir(),
				Destination: &flags.DataDir,
			},
			&cli.StringFlag{
				Name:        "color",
				Usage:       "when to color output (" + strings.Join(styles.ColorModes, ", ") + ")",
				Sources:     cli.EnvVars("CHATCOLOR_COLOR"),
				Value:       string(styles.ColorAuto),
				Destination: &flags.Color,
				Validator: func(s string) error {
					_, err := styles.ParseColorMode(s)
					return err
				},
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			logFile := flags.LogFile
			if logFile == "-" {
				logFile = ""
			}

			pretty := term.IsTerminal(int(os.Stderr.Fd()))
			logger, closer, err := logutils.New(flags.LogLevel, logFile, pretty)
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			log.Logger = logger
			logCloser = closer

			cfg, err := config.Load(flags.ConfigPath, flags.DataDir)
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}
			flags.Config = cfg

			a, err := chat.Open(ctx, cfg, log.With().Str("component", "chat").Logger())
			if err != nil {
				return ctx, fmt.Errorf("open color store: %w", err)
			}

			// Populate the pre-allocated App struct (commands already hold a pointer to it)
			*chatApp = *a
			storeOpen = true

			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if storeOpen {
				if err := chatApp.Close(); err != nil {
					log.Error().Err(err).Msg("failed to close color store")
					return err
				}
			}

			// Close log file
			if logCloser != nil {
				logCloser()
			}
			return nil
		},
	}

	app = commands.NewSetCmd(flags, chatApp).Register(app)
	app = commands.NewUnsetCmd(flags, chatApp).Register(app)
	app = commands.NewLsCmd(flags, chatApp).Register(app)
	app = commands.NewRandomizeCmd(flags, chatApp).Register(app)
	app = commands.NewNamesCmd(flags, chatApp).Register(app)
	app = commands.NewRecolorCmd(flags, chatApp).Register(app)
	app = commands.NewImportCmd(flags, chatApp).Register(app)
	app = commands.NewConfigValidateCmd(flags).Register(app)
	app = commands.NewDoctorCmd(flags, chatApp).Register(app)

	exitCode := 0
	if runErr := app.Run(ctx, os.Args); runErr != nil {
		if msg := runErr.Error(); msg != "" {
			fmt.Fprintln(os.Stderr, msg)
		}
		exitCode = 1
	}

	os.Exit(exitCode)
}
