package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validConfig returns a Config with all required fields set for testing.
func validConfig(t *testing.T) *Config {
	t.Helper()
	cfg := DefaultConfig()
	cfg.DataDir = t.TempDir()
	return &cfg
}

func TestValidateDeep_ValidConfig(t *testing.T) {
	cfg := validConfig(t)
	cfg.Roster = []string{"Steve", "Alex_2"}
	cfg.Recolor.Ignore = []string{"Server*", "bot_{a,b}"}

	assert.NoError(t, cfg.ValidateDeep(""))
}

func TestValidateDeep_InvalidIgnorePattern(t *testing.T) {
	cfg := validConfig(t)
	cfg.Recolor.Ignore = []string{"ok*", "[broken", ""}

	err := cfg.ValidateDeep("")

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Len(t, fieldErrs, 2)
	assert.Equal(t, "recolor.ignore[1]", fieldErrs[0].Field)
	assert.Contains(t, fieldErrs[0].Err.Error(), "invalid glob pattern")
}

func TestValidateDeep_InvalidRosterName(t *testing.T) {
	cfg := validConfig(t)
	cfg.Roster = []string{"Steve", "two words", "<bob>"}

	err := cfg.ValidateDeep("")

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Len(t, fieldErrs, 2)
	assert.Equal(t, "roster[1]", fieldErrs[0].Field)
	assert.Equal(t, "roster[2]", fieldErrs[1].Field)
}

func TestValidateDeep_ConfigFileIsDirectory(t *testing.T) {
	cfg := validConfig(t)

	err := cfg.ValidateDeep(t.TempDir())

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Equal(t, "config_file", fieldErrs[0].Field)
}

func TestValidateDeep_DataDirIsFile(t *testing.T) {
	cfg := validConfig(t)
	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, nil, 0o644))
	cfg.DataDir = file

	err := cfg.ValidateDeep("")

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Equal(t, "data_dir", fieldErrs[0].Field)
}

func TestValidateDeep_MissingRosterFile(t *testing.T) {
	cfg := validConfig(t)
	cfg.Recolor.RosterFile = "online.txt"

	err := cfg.ValidateDeep("")

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Equal(t, "recolor.roster_file", fieldErrs[0].Field)
}

func TestWarnings_IgnoredRosterName(t *testing.T) {
	cfg := validConfig(t)
	cfg.Roster = []string{"ServerBot", "Steve"}
	cfg.Recolor.Ignore = []string{"Server*"}

	warnings := cfg.Warnings()
	require.Len(t, warnings, 1)
	assert.Equal(t, "Roster", warnings[0].Category)
	assert.Equal(t, "ServerBot", warnings[0].Item)
}
