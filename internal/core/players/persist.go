package players

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/colonyops/chatcolor/internal/core/rgb"
)

// ErrNotFound is returned by a Backend when nothing has been saved yet.
var ErrNotFound = errors.New("no saved player colors")

// Backend reads and writes the serialized explicit colors under a single
// fixed key. Write must replace the previous contents atomically.
type Backend interface {
	Read(ctx context.Context) ([]byte, error)
	Write(ctx context.Context, data []byte) error
}

// ColorsFile is the on-disk layout. Only explicit colors are stored.
type ColorsFile struct {
	Players map[string]SavedPlayer `json:"players"`
}

// SavedPlayer is the persisted form of a Player. Color is required.
type SavedPlayer struct {
	Color *rgb.RGB `json:"color"`
}

// Colors validates every entry and returns the explicit colors by name.
func (f ColorsFile) Colors() (map[string]rgb.RGB, error) {
	colors := make(map[string]rgb.RGB, len(f.Players))
	for name, p := range f.Players {
		if name == "" {
			return nil, fmt.Errorf("empty player name")
		}
		if p.Color == nil {
			return nil, fmt.Errorf("player %q has no color", name)
		}
		colors[name] = *p.Color
	}
	return colors, nil
}

// Encode serializes explicit colors.
func Encode(colors map[string]rgb.RGB) ([]byte, error) {
	file := ColorsFile{Players: make(map[string]SavedPlayer, len(colors))}
	for name, c := range colors {
		file.Players[name] = SavedPlayer{Color: &c}
	}
	return json.MarshalIndent(file, "", "  ")
}

// Decode parses data written by Encode. Empty input decodes to an empty map.
func Decode(data []byte) (map[string]rgb.RGB, error) {
	if len(data) == 0 {
		return map[string]rgb.RGB{}, nil
	}

	var file ColorsFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode player colors: %w", err)
	}

	colors, err := file.Colors()
	if err != nil {
		return nil, fmt.Errorf("decode player colors: %w", err)
	}
	return colors, nil
}

// memoryBackend keeps the serialized data in memory. It backs stores created
// without a persistence layer and is handy in tests.
type memoryBackend struct {
	data []byte
}

// NewMemoryBackend returns a Backend that never touches disk.
func NewMemoryBackend() Backend {
	return &memoryBackend{}
}

func (m *memoryBackend) Read(context.Context) ([]byte, error) {
	if m.data == nil {
		return nil, ErrNotFound
	}
	return append([]byte(nil), m.data...), nil
}

func (m *memoryBackend) Write(_ context.Context, data []byte) error {
	m.data = append([]byte(nil), data...)
	return nil
}
