// Package styles renders styled chat text and CLI output with lipgloss.
package styles

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/colonyops/chatcolor/internal/core/rgb"
	"github.com/colonyops/chatcolor/internal/core/styledtext"
)

// ColorMode controls whether output carries ANSI escapes.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ColorModes lists the accepted values for the --color flag.
var ColorModes = []string{string(ColorAuto), string(ColorAlways), string(ColorNever)}

// ParseColorMode parses a --color flag value.
func ParseColorMode(s string) (ColorMode, error) {
	switch m := ColorMode(strings.ToLower(strings.TrimSpace(s))); m {
	case "", ColorAuto:
		return ColorAuto, nil
	case ColorAlways, ColorNever:
		return m, nil
	default:
		return "", fmt.Errorf("invalid color mode %q (must be one of: %s)", s, strings.Join(ColorModes, ", "))
	}
}

// Renderer turns styled text into terminal output for a single writer.
type Renderer struct {
	r       *lipgloss.Renderer
	palette Palette

	header  lipgloss.Style
	muted   lipgloss.Style
	success lipgloss.Style
	warning lipgloss.Style
	errorS  lipgloss.Style
}

// NewRenderer returns a renderer for w. ColorAuto detects the profile from
// w, so buffers and pipes get plain text.
func NewRenderer(w io.Writer, mode ColorMode, p Palette) *Renderer {
	lr := lipgloss.NewRenderer(w)
	switch mode {
	case ColorAlways:
		lr.SetColorProfile(termenv.TrueColor)
	case ColorNever:
		lr.SetColorProfile(termenv.Ascii)
	}

	return &Renderer{
		r:       lr,
		palette: p,
		header: lr.NewStyle().
			Foreground(p.Primary).
			Bold(true),
		muted: lr.NewStyle().
			Foreground(p.Muted),
		success: lr.NewStyle().
			Foreground(p.Success),
		warning: lr.NewStyle().
			Foreground(p.Warning),
		errorS: lr.NewStyle().
			Foreground(p.Error),
	}
}

// Palette returns the theme palette in use.
func (r *Renderer) Palette() Palette { return r.palette }

// Render renders every run of t with its own style.
func (r *Renderer) Render(t styledtext.Text) string {
	var b strings.Builder
	for _, run := range t {
		b.WriteString(r.runStyle(run.Style).Render(run.Text))
	}
	return b.String()
}

func (r *Renderer) runStyle(s styledtext.Style) lipgloss.Style {
	st := r.r.NewStyle().
		Bold(s.Bold).
		Italic(s.Italic).
		Underline(s.Underlined).
		Strikethrough(s.Strikethrough).
		Blink(s.Obfuscated).
		TabWidth(lipgloss.NoTabConversion)
	if s.Color != nil {
		st = st.Foreground(lipgloss.Color(s.Color.Colorful().Hex()))
	}
	return st
}

// Color renders s in color c.
func (r *Renderer) Color(c rgb.RGB, s string) string {
	return r.r.NewStyle().Foreground(lipgloss.Color(c.Colorful().Hex())).Render(s)
}

// Swatch renders a small block of color c, used next to hex values.
func (r *Renderer) Swatch(c rgb.RGB) string {
	return r.Color(c, "■")
}

func (r *Renderer) Header(s string) string  { return r.header.Render(s) }
func (r *Renderer) Muted(s string) string   { return r.muted.Render(s) }
func (r *Renderer) Success(s string) string { return r.success.Render(s) }
func (r *Renderer) Warning(s string) string { return r.warning.Render(s) }
func (r *Renderer) Error(s string) string   { return r.errorS.Render(s) }
