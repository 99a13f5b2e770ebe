package commands_test

import (
	"context"

	"shiprates/internal/core/application/usecases/commands"
	"shiprates/internal/core/domain/model/kernel"
	"shiprates/internal/core/domain/model/settings"
	"shiprates/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

// Mock implementations for testing.
type MockFilterSettingsRepository struct {
	mock.Mock
}

func (m *MockFilterSettingsRepository) Get(ctx context.Context) (settings.FilterSettings, error) {
	args := m.Called(ctx)
	return args.Get(0).(settings.FilterSettings), args.Error(1)
}

func (m *MockFilterSettingsRepository) Save(ctx context.Context, s settings.FilterSettings) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

type MockPriceAdjustmentRepository struct {
	mock.Mock
}

func (m *MockPriceAdjustmentRepository) Get(ctx context.Context) (settings.PriceAdjustment, error) {
	args := m.Called(ctx)
	return args.Get(0).(settings.PriceAdjustment), args.Error(1)
}

func (m *MockPriceAdjustmentRepository) Save(ctx context.Context, a settings.PriceAdjustment) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

type MockRouteRuleRepository struct {
	mock.Mock
}

func (m *MockRouteRuleRepository) List(ctx context.Context) ([]*settings.RouteRule, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*settings.RouteRule), args.Error(1)
}

func (m *MockRouteRuleRepository) Add(ctx context.Context, rule *settings.RouteRule) error {
	args := m.Called(ctx, rule)
	return args.Error(0)
}

func (m *MockRouteRuleRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockSettingsUoW struct {
	mock.Mock
}

func (m *MockSettingsUoW) Begin(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockSettingsUoW) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockSettingsUoW) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockSettingsUoW) FilterSettingsRepository() ports.FilterSettingsRepository {
	return m.Called().Get(0).(ports.FilterSettingsRepository)
}

func (m *MockSettingsUoW) PriceAdjustmentRepository() ports.PriceAdjustmentRepository {
	return m.Called().Get(0).(ports.PriceAdjustmentRepository)
}

func (m *MockSettingsUoW) RouteRuleRepository() ports.RouteRuleRepository {
	return m.Called().Get(0).(ports.RouteRuleRepository)
}

type MockSettingsUoWFactory struct {
	mock.Mock
}

func (m *MockSettingsUoWFactory) Create() commands.SettingsUoW {
	return m.Called().Get(0).(commands.SettingsUoW)
}
