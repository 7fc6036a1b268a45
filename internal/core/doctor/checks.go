package doctor

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/hay-kot/criterio"

	"github.com/colonyops/chatcolor/internal/core/config"
	"github.com/colonyops/chatcolor/internal/core/players"
	"github.com/colonyops/chatcolor/internal/core/roster"
)

// ConfigCheck reports configuration errors and warnings.
type ConfigCheck struct {
	cfg        *config.Config
	configPath string
}

// NewConfigCheck creates a new configuration check.
func NewConfigCheck(cfg *config.Config, configPath string) *ConfigCheck {
	return &ConfigCheck{cfg: cfg, configPath: configPath}
}

func (c *ConfigCheck) Name() string {
	return "Configuration"
}

func (c *ConfigCheck) Run(_ context.Context) Result {
	result := Result{Name: c.Name()}

	item := CheckItem{Label: "config file", Status: StatusPass, Detail: c.configPath}
	if _, err := os.Stat(c.configPath); c.configPath == "" || os.IsNotExist(err) {
		item.Detail = "not found, using defaults"
	}
	result.Items = append(result.Items, item)

	if err := c.cfg.ValidateDeep(c.configPath); err != nil {
		var fieldErrs criterio.FieldErrors
		if errors.As(err, &fieldErrs) {
			for _, fe := range fieldErrs {
				result.Items = append(result.Items, CheckItem{Label: fe.Field, Status: StatusFail, Detail: fe.Err.Error()})
			}
		} else {
			result.Items = append(result.Items, CheckItem{Label: "config", Status: StatusFail, Detail: err.Error()})
		}
	}

	for _, w := range c.cfg.Warnings() {
		label := w.Category
		if w.Item != "" {
			label = w.Item
		}
		result.Items = append(result.Items, CheckItem{Label: label, Status: StatusWarn, Detail: w.Message})
	}

	return result
}

// StorageCheck verifies that saved colors can be read and decoded.
type StorageCheck struct {
	backend players.Backend
	label   string
}

// NewStorageCheck creates a storage check. label names the storage location.
func NewStorageCheck(backend players.Backend, label string) *StorageCheck {
	return &StorageCheck{backend: backend, label: label}
}

func (c *StorageCheck) Name() string {
	return "Saved Colors"
}

func (c *StorageCheck) Run(ctx context.Context) Result {
	result := Result{Name: c.Name()}

	data, err := c.backend.Read(ctx)
	switch {
	case errors.Is(err, players.ErrNotFound):
		result.Items = append(result.Items, CheckItem{Label: c.label, Status: StatusPass, Detail: "no colors saved yet"})
		return result
	case err != nil:
		result.Items = append(result.Items, CheckItem{Label: c.label, Status: StatusFail, Detail: fmt.Sprintf("unreadable: %v", err)})
		return result
	}

	colors, err := players.Decode(data)
	if err != nil {
		result.Items = append(result.Items, CheckItem{
			Label:  c.label,
			Status: StatusFail,
			Detail: fmt.Sprintf("malformed, saved colors are ignored until it is rewritten: %v", err),
		})
		return result
	}

	result.Items = append(result.Items, CheckItem{
		Label:  c.label,
		Status: StatusPass,
		Detail: fmt.Sprintf("%d saved color(s)", len(colors)),
	})
	return result
}

// RosterCheck verifies the configured roster file can be read.
type RosterCheck struct {
	names []string
	file  string
}

// NewRosterCheck creates a roster check for the static names and roster file.
func NewRosterCheck(names []string, file string) *RosterCheck {
	return &RosterCheck{names: names, file: file}
}

func (c *RosterCheck) Name() string {
	return "Roster"
}

func (c *RosterCheck) Run(_ context.Context) Result {
	result := Result{Name: c.Name()}

	result.Items = append(result.Items, CheckItem{
		Label:  "roster",
		Status: StatusPass,
		Detail: fmt.Sprintf("%d static name(s)", len(c.names)),
	})

	if c.file == "" {
		return result
	}

	names, err := roster.ReadFile(c.file)
	switch {
	case err != nil:
		result.Items = append(result.Items, CheckItem{Label: c.file, Status: StatusFail, Detail: err.Error()})
	case len(names) == 0:
		result.Items = append(result.Items, CheckItem{Label: c.file, Status: StatusWarn, Detail: "file lists no names"})
	default:
		result.Items = append(result.Items, CheckItem{Label: c.file, Status: StatusPass, Detail: fmt.Sprintf("%d name(s)", len(names))})
	}

	return result
}
