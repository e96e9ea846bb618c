package driving

import "github.com/custodia-labs/htmlmerge/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current settings, filling unset keys with defaults.
	Get() (*domain.AppSettings, error)

	// Set parses and stores a single setting given as text.
	Set(key, value string) error

	// Values returns every stored key with its value, sorted by key.
	Values() []SettingValue

	// Path returns where settings are persisted.
	Path() string
}

// SettingValue is a stored configuration entry.
type SettingValue struct {
	Key   string
	Value any
}
