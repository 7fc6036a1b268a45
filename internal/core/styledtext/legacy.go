package styledtext

import (
	"strings"

	"github.com/colonyops/chatcolor/internal/core/rgb"
)

// SectionSign introduces a legacy formatting code, e.g. "§c" for red.
const SectionSign = '§'

// legacyColors maps the sixteen legacy color codes to their RGB values.
var legacyColors = map[rune]rgb.RGB{
	'0': 0x000000, // black
	'1': 0x0000AA, // dark blue
	'2': 0x00AA00, // dark green
	'3': 0x00AAAA, // dark aqua
	'4': 0xAA0000, // dark red
	'5': 0xAA00AA, // dark purple
	'6': 0xFFAA00, // gold
	'7': 0xAAAAAA, // gray
	'8': 0x555555, // dark gray
	'9': 0x5555FF, // blue
	'a': 0x55FF55, // green
	'b': 0x55FFFF, // aqua
	'c': 0xFF5555, // red
	'd': 0xFF55FF, // light purple
	'e': 0xFFFF55, // yellow
	'f': 0xFFFFFF, // white
}

// ParseLegacy converts text containing legacy "§" formatting codes into
// styled text. Color codes reset all formatting, "§r" resets to the empty
// style, and "§x§R§R§G§G§B§B" selects an arbitrary RGB color. Unknown codes
// are dropped; a trailing lone "§" is kept as literal text.
func ParseLegacy(s string) Text {
	var (
		out   Text
		style Style
		buf   strings.Builder
	)

	flush := func() {
		out = out.Append(style, buf.String())
		buf.Reset()
	}

	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r != SectionSign || i+1 >= len(runes) {
			buf.WriteRune(r)
			continue
		}

		code := toLower(runes[i+1])
		i++

		if code == 'x' {
			if c, ok := parseLegacyHex(runes[i+1:]); ok {
				flush()
				style = Empty.WithColor(c)
				i += 12
			}
			continue
		}

		if c, ok := legacyColors[code]; ok {
			flush()
			style = Empty.WithColor(c)
			continue
		}

		next, ok := applyFormat(style, code)
		if !ok {
			continue
		}
		flush()
		style = next
	}

	flush()
	return out
}

// parseLegacyHex reads the six "§<digit>" pairs that follow "§x".
func parseLegacyHex(rest []rune) (rgb.RGB, bool) {
	if len(rest) < 12 {
		return 0, false
	}

	var digits [6]rune
	for j := range digits {
		if rest[2*j] != SectionSign {
			return 0, false
		}
		digits[j] = rest[2*j+1]
	}

	c, err := rgb.ParseHex(string(digits[:]))
	if err != nil {
		return 0, false
	}
	return c, true
}

func applyFormat(s Style, code rune) (Style, bool) {
	switch code {
	case 'k':
		s.Obfuscated = true
	case 'l':
		s.Bold = true
	case 'm':
		s.Strikethrough = true
	case 'n':
		s.Underlined = true
	case 'o':
		s.Italic = true
	case 'r':
		s = Empty
	default:
		return s, false
	}
	return s, true
}

// Legacy encodes the text back into "§" codes. Each run starts with "§r"
// unless it is the first run and unstyled. Colors from the legacy palette use
// their single-character code; any other color uses the "§x" form.
func (t Text) Legacy() string {
	var b strings.Builder

	for i, r := range t {
		if i > 0 || !r.Style.IsZero() {
			b.WriteString("§r")
		}
		if r.Style.Color != nil {
			b.WriteString(legacyColorCode(*r.Style.Color))
		}
		for _, f := range []struct {
			on   bool
			code string
		}{
			{r.Style.Obfuscated, "§k"},
			{r.Style.Bold, "§l"},
			{r.Style.Strikethrough, "§m"},
			{r.Style.Underlined, "§n"},
			{r.Style.Italic, "§o"},
		} {
			if f.on {
				b.WriteString(f.code)
			}
		}
		b.WriteString(r.Text)
	}

	return b.String()
}

func legacyColorCode(c rgb.RGB) string {
	for code, v := range legacyColors {
		if v == c {
			return "§" + string(code)
		}
	}

	var b strings.Builder
	b.WriteString("§x")
	for _, d := range c.Hex() {
		b.WriteRune(SectionSign)
		b.WriteRune(toLower(d))
	}
	return b.String()
}

func toLower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}
