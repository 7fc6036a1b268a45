// Package roster tracks the names currently active in a chat, e.g. the
// players connected to a server.
package roster

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/colonyops/chatcolor/pkg/kv"
)

// Roster is a thread-safe set of active names. The zero value is not usable;
// call New.
type Roster struct {
	names *kv.Store[string, struct{}]
}

// New returns a roster containing names.
func New(names ...string) *Roster {
	r := &Roster{names: kv.New[string, struct{}]()}
	r.Join(names...)
	return r
}

// Has reports whether name is active. Matching is exact and case-sensitive.
func (r *Roster) Has(name string) bool {
	return r.names.Has(name)
}

// ActiveNames returns the active names, sorted.
func (r *Roster) ActiveNames() []string {
	return r.names.Keys()
}

// Join marks names as active. Blank names are ignored.
func (r *Roster) Join(names ...string) {
	for _, n := range names {
		if n = strings.TrimSpace(n); n != "" {
			r.names.Set(n, struct{}{})
		}
	}
}

// Leave marks name as inactive and reports whether it was active.
func (r *Roster) Leave(name string) bool {
	return r.names.Delete(strings.TrimSpace(name))
}

// Reset replaces the active set with names.
func (r *Roster) Reset(names ...string) {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		if n = strings.TrimSpace(n); n != "" {
			set[n] = struct{}{}
		}
	}
	r.names.Replace(set)
}

// Len returns the number of active names.
func (r *Roster) Len() int {
	return r.names.Len()
}

// Read parses one name per line. Blank lines and lines starting with "#"
// are skipped.
func Read(rd io.Reader) ([]string, error) {
	var names []string

	sc := bufio.NewScanner(rd)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		names = append(names, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read roster: %w", err)
	}
	return names, nil
}

// ReadFile reads a roster file in the format accepted by Read.
func ReadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open roster: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Read(f)
}
