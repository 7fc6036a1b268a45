package styledtext

import (
	"testing"

	"github.com/colonyops/chatcolor/internal/core/rgb"
	"github.com/stretchr/testify/assert"
)

func TestParseLegacy(t *testing.T) {
	red := Empty.WithColor(0xFF5555)
	gold := Empty.WithColor(0xFFAA00)

	tests := []struct {
		name  string
		input string
		want  Text
	}{
		{
			name:  "plain",
			input: "<Bob> hello",
			want:  Text{{Text: "<Bob> hello"}},
		},
		{
			name:  "empty",
			input: "",
			want:  nil,
		},
		{
			name:  "color then reset",
			input: "§cwarning§r done",
			want: Text{
				{Style: red, Text: "warning"},
				{Text: " done"},
			},
		},
		{
			name:  "uppercase codes",
			input: "§Cwarning",
			want:  Text{{Style: red, Text: "warning"}},
		},
		{
			name:  "formats stack",
			input: "§6§lgold §obold italic",
			want: Text{
				{Style: Style{Color: gold.Color, Bold: true}, Text: "gold "},
				{Style: Style{Color: gold.Color, Bold: true, Italic: true}, Text: "bold italic"},
			},
		},
		{
			name:  "color resets formats",
			input: "§l§nbold§cred",
			want: Text{
				{Style: Style{Bold: true, Underlined: true}, Text: "bold"},
				{Style: red, Text: "red"},
			},
		},
		{
			name:  "hex color",
			input: "§x§0§0§a§e§f§fsky",
			want:  Text{{Style: Empty.WithColor(0x00AEFF), Text: "sky"}},
		},
		{
			name:  "truncated hex color is ignored",
			input: "§x§0§0sky",
			want:  Text{{Style: Empty.WithColor(0x000000), Text: "sky"}},
		},
		{
			name:  "unknown code dropped",
			input: "a§zb",
			want:  Text{{Text: "ab"}},
		},
		{
			name:  "trailing section sign kept",
			input: "50§",
			want:  Text{{Text: "50§"}},
		},
		{
			name:  "strike and obfuscated",
			input: "§m§kx",
			want:  Text{{Style: Style{Strikethrough: true, Obfuscated: true}, Text: "x"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLegacy(tt.input))
		})
	}
}

func TestLegacy_RoundTrip(t *testing.T) {
	texts := []Text{
		{{Text: "plain"}},
		{
			{Text: "<"},
			{Style: Empty.WithColor(0xAABBCC), Text: "Bob"},
			{Text: "> hi "},
			{Style: Style{Color: ptr(0x55FF55), Bold: true, Italic: true}, Text: "green"},
		},
		{
			{Style: Style{Underlined: true, Strikethrough: true, Obfuscated: true}, Text: "x"},
			{Style: Empty.WithColor(0x00AEFF), Text: "y"},
		},
	}

	for _, txt := range texts {
		encoded := txt.Legacy()
		assert.Equal(t, txt, ParseLegacy(encoded), "encoded as %q", encoded)
	}
}

func TestLegacy_Encoding(t *testing.T) {
	txt := Text{
		{Text: "a"},
		{Style: Empty.WithColor(0xFF5555), Text: "b"},
		{Style: Empty.WithColor(0x00AEFF), Text: "c"},
	}
	assert.Equal(t, "a§r§cb§r§x§0§0§a§e§f§fc", txt.Legacy())
}

func TestParseLegacy_UppercaseCodes(t *testing.T) {
	assert.Equal(t, Text{
		{Style: Empty.WithColor(0xFFFF55), Text: "yellow"},
		{Style: Style{Bold: true}, Text: "bold"},
	}, ParseLegacy("§Eyellow§R§Lbold"))
}

func ptr(c rgb.RGB) *rgb.RGB { return &c }
