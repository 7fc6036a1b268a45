// Package rgb provides the 24-bit color value used for player name colors,
// along with the hex codec and the saturated color generator.
package rgb

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB is a 24-bit color packed as 0xRRGGBB. There is no alpha channel.
type RGB uint32

const (
	Black RGB = 0x000000
	White RGB = 0xFFFFFF
)

// New packs three 8-bit channels into an RGB value.
func New(r, g, b uint8) RGB {
	return RGB(uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

func (c RGB) R() uint8 { return uint8(c >> 16) }
func (c RGB) G() uint8 { return uint8(c >> 8) }
func (c RGB) B() uint8 { return uint8(c) }

// Channels returns the red, green and blue channels in order.
func (c RGB) Channels() [3]uint8 {
	return [3]uint8{c.R(), c.G(), c.B()}
}

// Hex formats the color as six uppercase hex digits without a prefix,
// e.g. 0x00AEFF becomes "00AEFF".
func (c RGB) Hex() string {
	return fmt.Sprintf("%06X", uint32(c)&0xFFFFFF)
}

// String returns the color as "#RRGGBB".
func (c RGB) String() string {
	return "#" + c.Hex()
}

// Colorful converts the color to a go-colorful value for rendering and
// color-space math.
func (c RGB) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R()) / 255,
		G: float64(c.G()) / 255,
		B: float64(c.B()) / 255,
	}
}

// MarshalText encodes the color as "#RRGGBB".
func (c RGB) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText accepts any input ParseHex accepts.
func (c *RGB) UnmarshalText(text []byte) error {
	v, err := ParseHex(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// UnmarshalJSON accepts either a hex string or a plain integer, so files
// written with numeric colors still load.
func (c *RGB) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return fmt.Errorf("%w: null", ErrInvalidFormat)
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		return c.UnmarshalText([]byte(s))
	}

	var n uint32
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidFormat, data)
	}
	if n > uint32(White) {
		return fmt.Errorf("%w: %d exceeds 24 bits", ErrInvalidFormat, n)
	}
	*c = RGB(n)
	return nil
}
