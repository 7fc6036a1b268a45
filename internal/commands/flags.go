package commands

import (
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/chatcolor/internal/core/config"
	"github.com/colonyops/chatcolor/internal/core/styles"
)

type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string
	DataDir    string
	Color      string

	// Config is loaded in the Before hook and available to all commands
	Config *config.Config
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "chatcolor", "config.yaml")
}

// DefaultDataDir returns the default data directory using XDG_DATA_HOME.
func DefaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "chatcolor")
}

// DefaultLogFile returns the default log file path using the system's state directory.
// On macOS: ~/Library/Logs/chatcolor/chatcolor.log
// On Linux: $XDG_STATE_HOME/chatcolor/chatcolor.log (defaults to ~/.local/state/chatcolor/chatcolor.log)
func DefaultLogFile() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome != "" {
		return filepath.Join(stateHome, "chatcolor", "chatcolor.log")
	}

	home, _ := os.UserHomeDir()

	if runtime.GOOS == "darwin" {
		return filepath.Join(home, "Library", "Logs", "chatcolor", "chatcolor.log")
	}

	return filepath.Join(home, ".local", "state", "chatcolor", "chatcolor.log")
}

// renderer builds a renderer for the root command's writer honoring --color
// and the configured theme.
func (f *Flags) renderer(c *cli.Command) *styles.Renderer {
	mode, err := styles.ParseColorMode(f.Color)
	if err != nil {
		mode = styles.ColorAuto
	}

	palette, _ := styles.GetPalette(styles.DefaultTheme)
	if f.Config != nil {
		palette = f.Config.Palette()
	}
	return styles.NewRenderer(c.Root().Writer, mode, palette)
}

func errWriter(c *cli.Command) io.Writer {
	if w := c.Root().ErrWriter; w != nil {
		return w
	}
	return os.Stderr
}

func inReader(c *cli.Command) io.Reader {
	if r := c.Root().Reader; r != nil {
		return r
	}
	return os.Stdin
}
