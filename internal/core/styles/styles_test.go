package styles

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/chatcolor/internal/core/rgb"
	"github.com/colonyops/chatcolor/internal/core/styledtext"
)

func defaultPalette(t *testing.T) Palette {
	t.Helper()
	p, ok := GetPalette(DefaultTheme)
	require.True(t, ok)
	return p
}

func TestParseColorMode(t *testing.T) {
	tests := []struct {
		in      string
		want    ColorMode
		wantErr bool
	}{
		{in: "", want: ColorAuto},
		{in: "auto", want: ColorAuto},
		{in: " Always ", want: ColorAlways},
		{in: "never", want: ColorNever},
		{in: "sometimes", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColorMode(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRender_NeverIsPlain(t *testing.T) {
	r := NewRenderer(&bytes.Buffer{}, ColorNever, defaultPalette(t))

	text := styledtext.Text{
		{Style: styledtext.Style{Bold: true}, Text: "Hello "},
		{Style: styledtext.Empty.WithColor(0xAABBCC), Text: "Bob"},
	}
	assert.Equal(t, "Hello Bob", r.Render(text))
	assert.Equal(t, "Bob", r.Color(0xAABBCC, "Bob"))
}

func TestRender_AutoOnBufferIsPlain(t *testing.T) {
	r := NewRenderer(&bytes.Buffer{}, ColorAuto, defaultPalette(t))
	assert.Equal(t, "Bob", r.Render(styledtext.Colored("Bob", rgb.White)))
}

func TestRender_AlwaysEmitsTrueColor(t *testing.T) {
	r := NewRenderer(&bytes.Buffer{}, ColorAlways, defaultPalette(t))

	out := r.Render(styledtext.Colored("Bob", 0xAABBCC))
	assert.Contains(t, out, "38;2;170;187;204")
	assert.Contains(t, out, "Bob")

	plain := r.Render(styledtext.Plain("hi\tthere"))
	assert.Contains(t, plain, "\t", "tabs are preserved")
}

func TestThemes(t *testing.T) {
	names := ThemeNames()
	assert.Contains(t, names, DefaultTheme)
	assert.IsNonDecreasing(t, names)

	_, ok := GetPalette("nope")
	assert.False(t, ok)
}
