// Package recolor rewrites styled chat text so that player names are shown
// in their assigned colors.
package recolor

import (
	"github.com/bmatcuk/doublestar/v4"
	"github.com/colonyops/chatcolor/internal/core/players"
	"github.com/colonyops/chatcolor/internal/core/styledtext"
	"github.com/colonyops/chatcolor/internal/core/tokenize"
	"github.com/rs/zerolog"
)

// Recolorer finds known names in styled text and overrides their color.
type Recolorer struct {
	store  *players.Store
	ignore []string
	log    zerolog.Logger
}

// Option configures a Recolorer.
type Option func(*Recolorer)

// WithIgnore skips names matching any of the glob patterns, e.g. "Server*".
// Invalid patterns never match.
func WithIgnore(patterns ...string) Option {
	return func(r *Recolorer) { r.ignore = append(r.ignore, patterns...) }
}

// WithLogger sets the logger.
func WithLogger(l zerolog.Logger) Option {
	return func(r *Recolorer) { r.log = l }
}

// New returns a Recolorer backed by store.
func New(store *players.Store, opts ...Option) *Recolorer {
	r := &Recolorer{store: store, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Recolor returns a copy of in in which every name-candidate token that is
// known to the store or active in roster has its color replaced by the name's
// effective color. Every other style attribute, and every other token, is
// copied unchanged. The output shares no storage with in. Each token becomes its own output run; empty runs produce
// nothing. matched reports whether at least one name was recolored.
//
// Recolor tracks each matched name in the store, so a name keeps its color
// for the rest of the session.
func (r *Recolorer) Recolor(in styledtext.Text, roster players.Roster) (out styledtext.Text, matched bool) {
	out = make(styledtext.Text, 0, len(in))

	for _, run := range in {
		for _, tok := range tokenize.Split(run.Text) {
			if tok.Candidate && r.isName(tok.Text, roster) {
				matched = true
				c := r.store.EffectiveColor(tok.Text)
				out = append(out, styledtext.Run{Style: run.Style.WithColor(c), Text: tok.Text})
				continue
			}
			out = append(out, styledtext.Run{Style: run.Style.Clone(), Text: tok.Text})
		}
	}

	if matched {
		r.log.Debug().Int("runs", len(out)).Msg("recolored message")
	}
	return out, matched
}

func (r *Recolorer) isName(token string, roster players.Roster) bool {
	if r.ignored(token) {
		return false
	}
	return r.store.IsKnownName(token, roster)
}

func (r *Recolorer) ignored(name string) bool {
	for _, p := range r.ignore {
		if ok, err := doublestar.Match(p, name); err == nil && ok {
			return true
		}
	}
	return false
}

// ValidPattern reports whether p is a usable ignore pattern.
func ValidPattern(p string) bool {
	return p != "" && doublestar.ValidatePattern(p)
}
