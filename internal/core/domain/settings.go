package domain

import "time"

// Configuration keys for settings storage.
const (
	KeyMergeOutput     = "merge.output"
	KeyMergePattern    = "merge.pattern"
	KeyMergeSeparator  = "merge.separator"
	KeyMergeClean      = "merge.clean"
	KeyWatchInterval   = "watch.interval"
	KeyHistoryEnabled  = "history.enabled"
	KeyHistoryLimit    = "history.limit"
	defaultHistorySize = 20
)

// SettingKind is the value type of a configuration key.
type SettingKind int

// Setting value types.
const (
	SettingString SettingKind = iota
	SettingBool
	SettingInt
	SettingDuration
)

// SettingKeys maps every recognised configuration key to its value type.
var SettingKeys = map[string]SettingKind{
	KeyMergeOutput:    SettingString,
	KeyMergePattern:   SettingString,
	KeyMergeSeparator: SettingString,
	KeyMergeClean:     SettingBool,
	KeyWatchInterval:  SettingDuration,
	KeyHistoryEnabled: SettingBool,
	KeyHistoryLimit:   SettingInt,
}

// MergeSettings holds defaults for merge invocations.
type MergeSettings struct {
	// Output is the default output path. Empty means derived per merge.
	Output string

	// Pattern filters directory listings by file name glob.
	Pattern string

	// Separator is placed between fragments.
	Separator string

	// Clean deletes sources after merging.
	Clean bool
}

// WatchSettings holds watch mode settings.
type WatchSettings struct {
	// Interval is the minimum time between two merges.
	Interval time.Duration
}

// HistorySettings holds merge history settings.
type HistorySettings struct {
	// Enabled records each merge in the history database.
	Enabled bool

	// Limit is the default number of entries shown.
	Limit int
}

// AppSettings contains all user-configurable settings.
type AppSettings struct {
	Merge   MergeSettings
	Watch   WatchSettings
	History HistorySettings
}

// DefaultAppSettings returns settings with sensible defaults.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Merge: MergeSettings{
			Separator: DefaultSeparator,
		},
		Watch: WatchSettings{
			Interval: 500 * time.Millisecond,
		},
		History: HistorySettings{
			Enabled: true,
			Limit:   defaultHistorySize,
		},
	}
}
