package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/custodia-labs/htmlmerge/internal/core/domain"
	"github.com/custodia-labs/htmlmerge/internal/core/ports/driving"
)

// executeCommand runs rootCmd with args after resetting every flag, and
// returns the combined output.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

// withServices installs services for the duration of a test.
func withServices(t *testing.T, s *Services) {
	t.Helper()
	oldMerge, oldHistory, oldSettings := mergeService, historyService, settingsService
	SetServices(s)
	t.Cleanup(func() {
		mergeService, historyService, settingsService = oldMerge, oldHistory, oldSettings
	})
}

// mockMergeService records the configuration it was run with.
type mockMergeService struct {
	result  *domain.MergeResult
	err     error
	calls   int
	gotCfg  driving.MergeConfig
	gotOpts domain.MergeOptions
	onRun   func()
}

func (m *mockMergeService) Resolve(_ driving.MergeConfig) (*domain.MergeRequest, error) {
	return nil, m.err
}

func (m *mockMergeService) Merge(
	_ context.Context,
	_ *domain.MergeRequest,
	_ domain.MergeOptions,
) (*domain.MergeResult, error) {
	return m.result, m.err
}

func (m *mockMergeService) Run(
	_ context.Context,
	cfg driving.MergeConfig,
	opts domain.MergeOptions,
) (*domain.MergeResult, error) {
	m.calls++
	m.gotCfg = cfg
	m.gotOpts = opts
	if m.onRun != nil {
		m.onRun()
	}
	if m.err != nil {
		return nil, m.err
	}
	return m.result, nil
}

// mockHistoryService returns fixed records.
type mockHistoryService struct {
	records  []domain.MergeRecord
	record   *domain.MergeRecord
	err      error
	gotLimit int
}

func (m *mockHistoryService) List(_ context.Context, limit int) ([]domain.MergeRecord, error) {
	m.gotLimit = limit
	return m.records, m.err
}

func (m *mockHistoryService) Get(_ context.Context, _ string) (*domain.MergeRecord, error) {
	return m.record, m.err
}

// mockSettingsService serves fixed settings and records Set calls.
type mockSettingsService struct {
	settings *domain.AppSettings
	values   []driving.SettingValue
	getErr   error
	setErr   error
	set      map[string]string
}

func newMockSettings() *mockSettingsService {
	defaults := domain.DefaultAppSettings()
	return &mockSettingsService{settings: &defaults, set: map[string]string{}}
}

func (m *mockSettingsService) Get() (*domain.AppSettings, error) {
	return m.settings, m.getErr
}

func (m *mockSettingsService) Set(key, value string) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.set[key] = value
	return nil
}

func (m *mockSettingsService) Values() []driving.SettingValue {
	return m.values
}

func (m *mockSettingsService) Path() string {
	return "/home/user/.htmlmerge/config.toml"
}
