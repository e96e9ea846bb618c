package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/htmlmerge/internal/core/domain"
	"github.com/custodia-labs/htmlmerge/internal/core/ports/driving"
)

func TestConfigCmd_Use(t *testing.T) {
	assert.Equal(t, "config", configCmd.Use)
}

func TestConfigCmd_HasSubcommands(t *testing.T) {
	commands := configCmd.Commands()
	names := make([]string, 0, len(commands))
	for _, cmd := range commands {
		names = append(names, cmd.Name())
	}
	assert.Contains(t, names, "show")
	assert.Contains(t, names, "set")
}

func TestConfigCmd_ErrorsWithoutServices(t *testing.T) {
	withServices(t, nil)

	_, err := executeCommand(t, "config", "show")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}

func TestConfigShowCmd(t *testing.T) {
	settings := newMockSettings()
	settings.settings.Merge.Pattern = "*.html"
	settings.values = []driving.SettingValue{
		{Key: domain.KeyMergePattern, Value: "*.html"},
		{Key: "search.mode", Value: "hybrid"},
	}
	withServices(t, &Services{Settings: settings})

	out, err := executeCommand(t, "config")

	require.NoError(t, err)
	assert.Contains(t, out, "Config file: /home/user/.htmlmerge/config.toml")
	assert.Contains(t, out, "pattern: *.html")
	assert.Contains(t, out, `separator: "\n"`)
	assert.Contains(t, out, "interval: 500ms")
	assert.Contains(t, out, "limit: 20")
	assert.Contains(t, out, "unrecognised keys in config: [search.mode]")
}

func TestConfigSetCmd(t *testing.T) {
	t.Run("sets value", func(t *testing.T) {
		settings := newMockSettings()
		withServices(t, &Services{Settings: settings})

		out, err := executeCommand(t, "config", "set", "merge.clean", "true")

		require.NoError(t, err)
		assert.Equal(t, "true", settings.set["merge.clean"])
		assert.Contains(t, out, `Set merge.clean = "true"`)
	})

	t.Run("requires two args", func(t *testing.T) {
		withServices(t, &Services{Settings: newMockSettings()})
		_, err := executeCommand(t, "config", "set", "merge.clean")
		assert.Error(t, err)
	})

	t.Run("propagates validation error", func(t *testing.T) {
		settings := newMockSettings()
		settings.setErr = domain.ErrInvalidInput
		withServices(t, &Services{Settings: settings})

		_, err := executeCommand(t, "config", "set", "merge.clean", "maybe")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestOrDefault(t *testing.T) {
	assert.Equal(t, "x", orDefault("x", "fallback"))
	assert.Equal(t, "(fallback)", orDefault("", "fallback"))
}
