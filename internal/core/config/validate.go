package config

import (
	"fmt"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/hay-kot/criterio"

	"github.com/colonyops/chatcolor/internal/core/recolor"
	"github.com/colonyops/chatcolor/internal/core/tokenize"
)

// ValidationWarning represents a non-fatal configuration issue.
type ValidationWarning struct {
	Category string `json:"category"`
	Item     string `json:"item,omitempty"`
	Message  string `json:"message"`
}

// ValidateDeep performs comprehensive validation of the configuration including
// ignore patterns, roster names, and file accessibility. The configPath argument
// specifies the config file location to validate (empty string skips config file check).
// This calls Validate() first for basic structural validation, then adds I/O checks.
func (c *Config) ValidateDeep(configPath string) error {
	if err := c.Validate(); err != nil {
		return err
	}

	return criterio.ValidateStruct(
		c.validateFileAccess(configPath),
		c.validateIgnorePatterns(),
		c.validateRoster(),
	)
}

// Warnings returns non-fatal configuration issues.
func (c *Config) Warnings() []ValidationWarning {
	var warnings []ValidationWarning

	for _, name := range c.Roster {
		for _, p := range c.Recolor.Ignore {
			if ok, err := doublestar.Match(p, name); err == nil && ok {
				warnings = append(warnings, ValidationWarning{
					Category: "Roster",
					Item:     name,
					Message:  fmt.Sprintf("name is never recolored, it matches ignore pattern %q", p),
				})
				break
			}
		}
	}

	return warnings
}

// validateFileAccess checks the config file, data directory, and roster file.
func (c *Config) validateFileAccess(configPath string) error {
	return criterio.ValidateStruct(
		validateConfigFile(configPath),
		criterio.Run("data_dir", c.DataDir, isDirectoryOrNotExist),
		criterio.Run("storage.path", c.StoragePath(), isFileOrNotExist),
		criterio.Run("recolor.roster_file", c.RosterFilePath(), fileExists),
	)
}

func validateConfigFile(configPath string) error {
	if configPath == "" {
		return nil
	}

	info, err := os.Stat(configPath)
	if os.IsNotExist(err) {
		return nil // not found is fine, using defaults
	}
	if err != nil {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("cannot access: %w", err))
	}
	if info.IsDir() {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("%s is a directory, not a file", configPath))
	}
	return nil
}

// isDirectoryOrNotExist validates that a path is a directory or doesn't exist.
func isDirectoryOrNotExist(path string) error {
	if path == "" {
		return nil
	}
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil // will be created
	}
	if err != nil {
		return fmt.Errorf("cannot access: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("exists but is not a directory")
	}
	return nil
}

func isFileOrNotExist(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("cannot access: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory, not a file", path)
	}
	return nil
}

func fileExists(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("file not found: %s", path)
	}
	return nil
}

func (c *Config) validateIgnorePatterns() error {
	var errs criterio.FieldErrorsBuilder
	for i, p := range c.Recolor.Ignore {
		if !recolor.ValidPattern(p) {
			errs = errs.Append(fmt.Sprintf("recolor.ignore[%d]", i), fmt.Errorf("invalid glob pattern %q", p))
		}
	}
	return errs.ToError()
}

// validateRoster checks that every roster entry is a single name token, since
// anything else could never match a word in chat.
func (c *Config) validateRoster() error {
	var errs criterio.FieldErrorsBuilder
	for i, name := range c.Roster {
		segs := tokenize.Split(name)
		if len(segs) != 1 || !segs[0].Candidate {
			errs = errs.Append(fmt.Sprintf("roster[%d]", i), fmt.Errorf("%q is not a valid player name", name))
		}
	}
	return errs.ToError()
}
