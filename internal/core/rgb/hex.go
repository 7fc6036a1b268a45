package rgb

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidFormat is returned when a string cannot be parsed as a hex color.
var ErrInvalidFormat = errors.New("invalid hex color")

// maxHexDigits bounds the parsed value to 24 bits.
const maxHexDigits = 6

// ParseHex parses a user supplied hex color. Surrounding whitespace is trimmed
// and at most one of the prefixes "#", "0x" or "0X" is removed. The remainder
// must be 1 to 6 hex digits; "5" parses to 0x000005 and "fff" to 0x000FFF.
//
// The returned error wraps ErrInvalidFormat and echoes the original input.
func ParseHex(input string) (RGB, error) {
	s := strings.TrimSpace(input)

	switch {
	case strings.HasPrefix(s, "#"):
		s = s[1:]
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		s = s[2:]
	}

	if s == "" || len(s) > maxHexDigits {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, input)
	}

	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, input)
	}

	return RGB(v), nil
}
