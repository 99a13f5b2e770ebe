package commands_test

import (
	"errors"
	"testing"

	"shiprates/internal/core/application/usecases/commands"
	"shiprates/internal/core/domain/model/settings"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateFilterSettingsCommandFromCSV(t *testing.T) {
	cmd := commands.NewUpdateFilterSettingsCommandFromCSV("fedex, usps,", " ground ")

	require.NoError(t, cmd.Validate())
	assert.Equal(t, []string{"fedex", "usps"}, cmd.Settings().PositiveKeywords())
	assert.Equal(t, []string{"ground"}, cmd.Settings().NegativeKeywords())
}

func TestUpdateFilterSettingsCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd := commands.NewUpdateFilterSettingsCommand([]string{"fedex"}, nil)

	mockRepo := new(MockFilterSettingsRepository)
	mockUoW := new(MockSettingsUoW)
	mockFactory := new(MockSettingsUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("FilterSettingsRepository").Return(mockRepo).Once(),
		mockRepo.On("Save", ctx, settings.NewFilterSettings([]string{"fedex"}, nil)).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewUpdateFilterSettingsCommandHandler(mockFactory)

	// Act
	err := handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestUpdateFilterSettingsCommandHandler_Handle_InvalidCommand(t *testing.T) {
	mockFactory := new(MockSettingsUoWFactory)
	handler := commands.NewUpdateFilterSettingsCommandHandler(mockFactory)

	err := handler.Handle(t.Context(), commands.UpdateFilterSettingsCommand{})

	require.ErrorIs(t, err, commands.ErrUpdateFilterSettingsCommandIsNotConstructed)
	mockFactory.AssertNotCalled(t, "Create")
}

func TestUpdateFilterSettingsCommandHandler_Handle_SaveErrorRollsBack(t *testing.T) {
	// Arrange
	ctx := t.Context()
	expectedError := errors.New("save failed")

	mockRepo := new(MockFilterSettingsRepository)
	mockUoW := new(MockSettingsUoW)
	mockFactory := new(MockSettingsUoWFactory)

	mock.InOrder(
		mockFactory.On("Create").Return(mockUoW).Once(),
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("FilterSettingsRepository").Return(mockRepo).Once(),
		mockRepo.On("Save", ctx, mock.Anything).Return(expectedError).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewUpdateFilterSettingsCommandHandler(mockFactory)

	// Act
	err := handler.Handle(ctx, commands.NewUpdateFilterSettingsCommand(nil, []string{"ground"}))

	// Assert
	require.ErrorIs(t, err, expectedError)
	mockUoW.AssertNotCalled(t, "Commit", ctx)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}
