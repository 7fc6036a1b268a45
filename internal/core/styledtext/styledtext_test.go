package styledtext

import (
	"testing"

	"github.com/colonyops/chatcolor/internal/core/rgb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStyle_WithColor(t *testing.T) {
	base := Style{Bold: true, Italic: true}
	colored := base.WithColor(0x112233)

	require.NotNil(t, colored.Color)
	assert.Equal(t, rgb.RGB(0x112233), *colored.Color)
	assert.True(t, colored.Bold)
	assert.True(t, colored.Italic)
	assert.Nil(t, base.Color, "original style must not change")

	recolored := colored.WithColor(0x445566)
	assert.Equal(t, rgb.RGB(0x112233), *colored.Color, "copies must not share color storage")
	assert.Equal(t, rgb.RGB(0x445566), *recolored.Color)
}

func TestStyle_Clone(t *testing.T) {
	s := Style{Bold: true}.WithColor(0x112233)
	c := s.Clone()

	assert.True(t, c.Equal(s))
	*c.Color = 0x445566
	assert.Equal(t, rgb.RGB(0x112233), *s.Color)

	assert.Nil(t, Empty.Clone().Color)
}

func TestStyle_Equal(t *testing.T) {
	a := Empty.WithColor(0xAABBCC)
	b := Empty.WithColor(0xAABBCC)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(Empty))
	assert.False(t, a.Equal(Empty.WithColor(0xAABBCD)))
	assert.False(t, Empty.Equal(Style{Underlined: true}))
	assert.True(t, Empty.IsZero())
	assert.False(t, a.IsZero())
}

func TestText_Append(t *testing.T) {
	bold := Style{Bold: true}

	var txt Text
	txt = txt.Append(Empty, "Hello")
	txt = txt.Append(Empty, " ")
	txt = txt.Append(bold, "")
	txt = txt.Append(bold, "world")

	assert.Equal(t, Text{
		{Style: Empty, Text: "Hello "},
		{Style: bold, Text: "world"},
	}, txt)
	assert.Equal(t, "Hello world", txt.String())
	assert.Equal(t, 11, txt.Len())
}

func TestText_Compact(t *testing.T) {
	in := Text{
		{Text: "a"},
		{Text: ""},
		{Text: "b"},
		{Style: Empty.WithColor(0x010203), Text: "c"},
		{Style: Empty.WithColor(0x010203), Text: "d"},
	}

	out := in.Compact()

	assert.Equal(t, Text{
		{Text: "ab"},
		{Style: Empty.WithColor(0x010203), Text: "cd"},
	}, out)
	assert.Equal(t, "a", in[0].Text, "input must not be modified")
}

func TestPlain(t *testing.T) {
	assert.Nil(t, Plain(""))
	assert.Equal(t, Text{{Text: "hi"}}, Plain("hi"))
}
