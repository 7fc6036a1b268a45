package chat

import (
	"context"
	"fmt"
	"strings"

	"github.com/colonyops/chatcolor/internal/core/players"
	"github.com/colonyops/chatcolor/internal/core/rgb"
	"github.com/colonyops/chatcolor/internal/core/styledtext"
)

// CommandPrefix starts an in-chat command line.
const CommandPrefix = "/chatincolor"

// Subcommand names accepted after CommandPrefix.
const (
	SubSetColor        = "setColor"
	SubUnsetColor      = "unsetColor"
	SubGetSetColors    = "getSetColors"
	SubRandomizeColors = "randomizeColors"
	SubHelp            = "help"
)

var subcommands = []string{SubGetSetColors, SubHelp, SubRandomizeColors, SubSetColor, SubUnsetColor}

var helpLines = []string{
	CommandPrefix + " setColor <player> <#HEX> - Set a player's color",
	CommandPrefix + " unsetColor <player> - Remove a player's custom color",
	CommandPrefix + " getSetColors - List all players with custom colors",
	CommandPrefix + " randomizeColors - Randomize all random colors. Does not affect players with set colors",
}

// Commands implements the in-chat color commands. Every method returns the
// feedback lines to show the user; none of them fail.
type Commands struct {
	store *players.Store
}

// NewCommands returns commands operating on store.
func NewCommands(store *players.Store) *Commands {
	return &Commands{store: store}
}

// SetColor parses hex and assigns it to name.
func (c *Commands) SetColor(ctx context.Context, name, hex string) styledtext.Text {
	hex = strings.TrimSpace(hex)
	color, err := rgb.ParseHex(hex)
	if err != nil {
		return styledtext.Plain("Invalid hex color: " + hex)
	}
	c.store.SetExplicit(ctx, name, color)
	return styledtext.Plain(fmt.Sprintf("Set custom color for %s to %s", name, hex))
}

// UnsetColor removes the explicit color of name.
func (c *Commands) UnsetColor(ctx context.Context, name string) styledtext.Text {
	if c.store.UnsetExplicit(ctx, name) {
		return styledtext.Plain("Unset custom color for " + name)
	}
	return styledtext.Plain("No custom color was set for " + name)
}

// GetSetColors lists every explicit color, each line drawn in its color.
func (c *Commands) GetSetColors() []styledtext.Text {
	entries := c.store.ListExplicit()
	if len(entries) == 0 {
		return []styledtext.Text{styledtext.Plain("No player colors set")}
	}

	lines := make([]styledtext.Text, 0, len(entries)+1)
	lines = append(lines, styledtext.Plain("Player colors:"))
	for _, e := range entries {
		lines = append(lines, styledtext.Colored(e.Name+" #"+e.Color.Hex(), e.Color))
	}
	return lines
}

// RandomizeColors regenerates every ephemeral color.
func (c *Commands) RandomizeColors() styledtext.Text {
	c.store.RandomizeAllEphemeral()
	return styledtext.Plain("Randomized all player colors")
}

// Help lists the available commands.
func (c *Commands) Help() []styledtext.Text {
	white := styledtext.Empty.WithColor(rgb.White)
	lines := make([]styledtext.Text, len(helpLines))
	for i, l := range helpLines {
		lines[i] = styledtext.Text{{Style: white, Text: l}}
	}
	return lines
}

// Exec runs the command line args, which excludes CommandPrefix. The color
// argument of setColor takes the rest of the line.
func (c *Commands) Exec(ctx context.Context, args []string) []styledtext.Text {
	if len(args) == 0 {
		return c.Help()
	}

	switch args[0] {
	case SubSetColor:
		if len(args) < 3 {
			return usage(SubSetColor, "<player> <#HEX>")
		}
		return []styledtext.Text{c.SetColor(ctx, args[1], strings.Join(args[2:], " "))}
	case SubUnsetColor:
		if len(args) != 2 {
			return usage(SubUnsetColor, "<player>")
		}
		return []styledtext.Text{c.UnsetColor(ctx, args[1])}
	case SubGetSetColors:
		return c.GetSetColors()
	case SubRandomizeColors:
		return []styledtext.Text{c.RandomizeColors()}
	case SubHelp:
		return c.Help()
	default:
		return []styledtext.Text{styledtext.Plain(fmt.Sprintf("Unknown command %q, see %s help", args[0], CommandPrefix))}
	}
}

// Complete suggests the next word of a command line. setColor completes
// any known or online name; unsetColor only names with an explicit color.
func (c *Commands) Complete(roster players.Roster, args []string) []string {
	switch len(args) {
	case 0:
		return players.FilterPrefix("", subcommands)
	case 1:
		return players.FilterPrefix(args[0], subcommands)
	case 2:
		switch args[0] {
		case SubSetColor:
			return c.store.Suggest(roster, players.ScopeAll, args[1])
		case SubUnsetColor:
			return c.store.Suggest(roster, players.ScopeExplicit, args[1])
		}
	}
	return []string{}
}

func usage(sub, params string) []styledtext.Text {
	return []styledtext.Text{styledtext.Plain(fmt.Sprintf("Usage: %s %s %s", CommandPrefix, sub, params))}
}
