package chat

import (
	"context"
	"strings"

	"github.com/colonyops/chatcolor/internal/core/players"
	"github.com/colonyops/chatcolor/internal/core/recolor"
	"github.com/colonyops/chatcolor/internal/core/roster"
	"github.com/colonyops/chatcolor/internal/core/styledtext"
)

// Control lines understood by Host in addition to CommandPrefix commands.
const (
	CtrlDisconnect = "/disconnect"
	CtrlRandomize  = "/randomize"
	CtrlJoin       = "/join"
	CtrlLeave      = "/leave"
)

// Host drives sessions from a line-oriented stream, standing in for a game
// client: ordinary lines are chat messages in legacy § format, and control
// lines emulate connection and player list events.
type Host struct {
	store     *players.Store
	recolorer *recolor.Recolorer
	commands  *Commands
	seed      []string
	opts      []SessionOption
	roster    *roster.Roster

	session *Session
}

// NewHost returns a host whose sessions start with the seed names online.
func NewHost(store *players.Store, rc *recolor.Recolorer, seed []string, opts ...SessionOption) *Host {
	h := &Host{
		store:     store,
		recolorer: rc,
		commands:  NewCommands(store),
		seed:      seed,
		opts:      opts,
		roster:    roster.New(),
	}
	h.session = h.newSession()
	return h
}

// NewHost returns a host using the app's store, recolorer and settings.
// names are added to the configured roster.
func (a *App) NewHost(names ...string) *Host {
	seed := append(append([]string{}, a.Config.Roster...), names...)
	return NewHost(a.Store, a.Recolorer, seed,
		WithDropUnmatched(a.Config.Recolor.DropUnmatched),
		WithLogger(a.log),
	)
}

// newSession resets the player list to the seed names, as a reconnect
// replaces the server's player list.
func (h *Host) newSession() *Session {
	h.roster.Reset(h.seed...)
	return NewSession(h.store, h.recolorer, h.roster, h.opts...)
}

// Session returns the current session.
func (h *Host) Session() *Session { return h.session }

// Commands returns the in-chat command handler.
func (h *Host) Commands() *Commands { return h.commands }

// HandleLine processes one input line and returns the lines to display.
func (h *Host) HandleLine(ctx context.Context, line string) []styledtext.Text {
	fields := strings.Fields(line)
	if len(fields) > 0 {
		switch fields[0] {
		case CommandPrefix:
			return h.commands.Exec(ctx, fields[1:])
		case CtrlDisconnect:
			h.Disconnect()
			return nil
		case CtrlRandomize:
			return []styledtext.Text{h.commands.RandomizeColors()}
		case CtrlJoin:
			h.session.Join(fields[1:]...)
			return nil
		case CtrlLeave:
			for _, name := range fields[1:] {
				h.session.Leave(name)
			}
			return nil
		}
	}

	out, show := h.session.Receive(styledtext.ParseLegacy(line))
	if !show {
		return nil
	}
	return []styledtext.Text{out}
}

// Disconnect ends the current session and starts a new one.
func (h *Host) Disconnect() {
	h.session.End()
	h.session = h.newSession()
}
