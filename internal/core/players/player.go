// Package players assigns and persists display colors for player names.
//
// Each tracked name has one Player record holding an optional explicit color,
// which is durable, and an ephemeral color that lives only for the current
// session. The effective color is the explicit color when set.
package players

import "github.com/colonyops/chatcolor/internal/core/rgb"

// Player is the color record for a single name.
type Player struct {
	Explicit  *rgb.RGB
	Ephemeral rgb.RGB
}

// Effective returns the explicit color if set, otherwise the ephemeral color.
func (p *Player) Effective() rgb.RGB {
	if p.Explicit != nil {
		return *p.Explicit
	}
	return p.Ephemeral
}

// HasExplicit reports whether an explicit color is set.
func (p *Player) HasExplicit() bool {
	return p.Explicit != nil
}

// SetExplicit overwrites the explicit color.
func (p *Player) SetExplicit(c rgb.RGB) {
	p.Explicit = &c
}

// UnsetExplicit clears the explicit color. It returns false when no explicit
// color was set.
func (p *Player) UnsetExplicit() bool {
	if p.Explicit == nil {
		return false
	}
	p.Explicit = nil
	return true
}

// Entry pairs a name with a color for listings.
type Entry struct {
	Name  string  `json:"name"`
	Color rgb.RGB `json:"color"`
}

// Roster reports which names are currently active. Implementations may be
// empty and must be safe to query from the store's callers.
type Roster interface {
	Has(name string) bool
	ActiveNames() []string
}
