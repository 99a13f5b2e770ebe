package commands

import (
	"errors"

	"shiprates/internal/core/domain/model/settings"
	"shiprates/internal/pkg/guard"
)

var ErrUpdateFilterSettingsCommandIsNotConstructed = errors.New(
	"UpdateFilterSettingsCommand must be created via NewUpdateFilterSettingsCommand constructor",
)

// UpdateFilterSettingsCommand replaces the operator keyword allow/deny lists.
// Keywords are trimmed and empty entries dropped; both lists may end up empty.
type UpdateFilterSettingsCommand struct { //nolint:recvcheck //using for validation
	settings settings.FilterSettings

	guard guard.ConstructorGuard
}

// NewUpdateFilterSettingsCommand creates the command from already split keyword lists.
func NewUpdateFilterSettingsCommand(positive, negative []string) UpdateFilterSettingsCommand {
	return UpdateFilterSettingsCommand{
		settings: settings.NewFilterSettings(positive, negative),
		guard:    guard.NewConstructorGuard(),
	}
}

// NewUpdateFilterSettingsCommandFromCSV creates the command from comma-separated admin input.
func NewUpdateFilterSettingsCommandFromCSV(positive, negative string) UpdateFilterSettingsCommand {
	return NewUpdateFilterSettingsCommand(settings.ParseKeywords(positive), settings.ParseKeywords(negative))
}

// Validate ensures the command was created through the constructor.
func (c UpdateFilterSettingsCommand) Validate() error {
	return c.guard.Validate(ErrUpdateFilterSettingsCommandIsNotConstructed)
}

func (c UpdateFilterSettingsCommand) Settings() settings.FilterSettings {
	return c.settings
}
