package services

import (
	"fmt"
	"strconv"
	"time"

	"github.com/custodia-labs/htmlmerge/internal/core/domain"
	"github.com/custodia-labs/htmlmerge/internal/core/ports/driven"
	"github.com/custodia-labs/htmlmerge/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()
	if s.configStore == nil {
		return &defaults, nil
	}

	interval, err := s.getDuration(domain.KeyWatchInterval, defaults.Watch.Interval)
	if err != nil {
		return nil, err
	}

	settings := &domain.AppSettings{
		Merge: domain.MergeSettings{
			Output:    s.configStore.GetString(domain.KeyMergeOutput),
			Pattern:   s.configStore.GetString(domain.KeyMergePattern),
			Separator: s.getRawString(domain.KeyMergeSeparator, defaults.Merge.Separator),
			Clean:     s.getBool(domain.KeyMergeClean, defaults.Merge.Clean),
		},
		Watch: domain.WatchSettings{
			Interval: interval,
		},
		History: domain.HistorySettings{
			Enabled: s.getBool(domain.KeyHistoryEnabled, defaults.History.Enabled),
			Limit:   s.getInt(domain.KeyHistoryLimit, defaults.History.Limit),
		},
	}

	return settings, nil
}

// Set parses value according to the key's type and stores it.
func (s *SettingsService) Set(key, value string) error {
	if s.configStore == nil {
		return domain.ErrNotImplemented
	}

	kind, ok := domain.SettingKeys[key]
	if !ok {
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}

	var parsed any
	switch kind {
	case domain.SettingString:
		parsed = value
	case domain.SettingBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: %s expects true or false", domain.ErrInvalidInput, key)
		}
		parsed = b
	case domain.SettingInt:
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return fmt.Errorf("%w: %s expects a non-negative integer", domain.ErrInvalidInput, key)
		}
		parsed = n
	case domain.SettingDuration:
		d, err := time.ParseDuration(value)
		if err != nil || d <= 0 {
			return fmt.Errorf("%w: %s expects a positive duration such as 500ms", domain.ErrInvalidInput, key)
		}
		parsed = value
	}

	if err := s.configStore.Set(key, parsed); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Values returns every stored key with its value.
func (s *SettingsService) Values() []driving.SettingValue {
	if s.configStore == nil {
		return nil
	}
	keys := s.configStore.Keys()
	values := make([]driving.SettingValue, 0, len(keys))
	for _, k := range keys {
		v, _ := s.configStore.Get(k)
		values = append(values, driving.SettingValue{Key: k, Value: v})
	}
	return values
}

// Path returns the configuration file path.
func (s *SettingsService) Path() string {
	if s.configStore == nil {
		return ""
	}
	return s.configStore.Path()
}

// Helper methods for reading config with defaults.

// getRawString returns the stored value even when it is empty.
func (s *SettingsService) getRawString(key, defaultVal string) string {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetString(key)
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	val := s.configStore.GetInt(key)
	if val == 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}

func (s *SettingsService) getDuration(key string, defaultVal time.Duration) (time.Duration, error) {
	str := s.configStore.GetString(key)
	if str == "" {
		return defaultVal, nil
	}
	d, err := time.ParseDuration(str)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return d, nil
}
