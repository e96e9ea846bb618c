package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultAppSettings(t *testing.T) {
	s := DefaultAppSettings()

	assert.Empty(t, s.Merge.Output)
	assert.Empty(t, s.Merge.Pattern)
	assert.Equal(t, DefaultSeparator, s.Merge.Separator)
	assert.False(t, s.Merge.Clean)
	assert.Equal(t, 500*time.Millisecond, s.Watch.Interval)
	assert.True(t, s.History.Enabled)
	assert.Equal(t, 20, s.History.Limit)
}

func TestSettingKeys(t *testing.T) {
	tests := []struct {
		key  string
		kind SettingKind
	}{
		{KeyMergeOutput, SettingString},
		{KeyMergePattern, SettingString},
		{KeyMergeSeparator, SettingString},
		{KeyMergeClean, SettingBool},
		{KeyWatchInterval, SettingDuration},
		{KeyHistoryEnabled, SettingBool},
		{KeyHistoryLimit, SettingInt},
	}

	assert.Len(t, SettingKeys, len(tests))
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			kind, ok := SettingKeys[tt.key]
			assert.True(t, ok)
			assert.Equal(t, tt.kind, kind)
		})
	}
}
