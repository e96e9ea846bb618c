package mcp

import (
	"context"

	"github.com/custodia-labs/htmlmerge/internal/core/domain"
	"github.com/custodia-labs/htmlmerge/internal/core/ports/driving"
)

// mockMergeService is a mock implementation of driving.MergeService.
type mockMergeService struct {
	result  *domain.MergeResult
	err     error
	gotCfg  driving.MergeConfig
	gotOpts domain.MergeOptions
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
	m.gotCfg = cfg
	m.gotOpts = opts
	return m.result, m.err
}

// mockHistoryService is a mock implementation of driving.HistoryService.
type mockHistoryService struct {
	records []domain.MergeRecord
	record  *domain.MergeRecord
	err     error
}

func (m *mockHistoryService) List(_ context.Context, _ int) ([]domain.MergeRecord, error) {
	return m.records, m.err
}

func (m *mockHistoryService) Get(_ context.Context, _ string) (*domain.MergeRecord, error) {
	return m.record, m.err
}
