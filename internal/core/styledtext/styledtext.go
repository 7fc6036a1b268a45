// Package styledtext models formatted chat text as an ordered list of
// (style, literal text) runs.
package styledtext

import (
	"strings"

	"github.com/colonyops/chatcolor/internal/core/rgb"
)

// Style holds the formatting applied to a run. A nil Color means the run uses
// the renderer's default foreground.
type Style struct {
	Color         *rgb.RGB
	Bold          bool
	Italic        bool
	Underlined    bool
	Strikethrough bool
	Obfuscated    bool
}

// Empty is the zero style.
var Empty = Style{}

// WithColor returns a copy of s with only the color replaced.
func (s Style) WithColor(c rgb.RGB) Style {
	s.Color = &c
	return s
}

// Clone returns a copy of s that shares no color storage with it.
func (s Style) Clone() Style {
	if s.Color != nil {
		c := *s.Color
		s.Color = &c
	}
	return s
}

// IsZero reports whether the style carries no formatting.
func (s Style) IsZero() bool {
	return s.Color == nil && !s.Bold && !s.Italic && !s.Underlined && !s.Strikethrough && !s.Obfuscated
}

// Equal compares styles by value, including the pointed-to color.
func (s Style) Equal(o Style) bool {
	if (s.Color == nil) != (o.Color == nil) {
		return false
	}
	if s.Color != nil && *s.Color != *o.Color {
		return false
	}
	return s.Bold == o.Bold &&
		s.Italic == o.Italic &&
		s.Underlined == o.Underlined &&
		s.Strikethrough == o.Strikethrough &&
		s.Obfuscated == o.Obfuscated
}

// Run is literal text with a single style.
type Run struct {
	Style Style
	Text  string
}

// Text is an ordered sequence of runs.
type Text []Run

// Plain wraps s in a single unstyled run. Empty input returns an empty Text.
func Plain(s string) Text {
	if s == "" {
		return nil
	}
	return Text{{Text: s}}
}

// Colored wraps s in a single run with the given color.
func Colored(s string, c rgb.RGB) Text {
	return Text{{Style: Empty.WithColor(c), Text: s}}
}

// Append adds a run, merging it into the previous run when the styles match.
// Empty strings are dropped.
func (t Text) Append(style Style, text string) Text {
	if text == "" {
		return t
	}
	if n := len(t); n > 0 && t[n-1].Style.Equal(style) {
		t[n-1].Text += text
		return t
	}
	return append(t, Run{Style: style, Text: text})
}

// Concat appends every run of o to t.
func (t Text) Concat(o Text) Text {
	for _, r := range o {
		t = t.Append(r.Style, r.Text)
	}
	return t
}

// Compact returns a copy of t with empty runs removed and adjacent runs of
// equal style merged.
func (t Text) Compact() Text {
	var out Text
	return out.Concat(t)
}

// String returns the literal text with all styling removed.
func (t Text) String() string {
	var b strings.Builder
	for _, r := range t {
		b.WriteString(r.Text)
	}
	return b.String()
}

// Len returns the byte length of the literal text.
func (t Text) Len() int {
	n := 0
	for _, r := range t {
		n += len(r.Text)
	}
	return n
}
