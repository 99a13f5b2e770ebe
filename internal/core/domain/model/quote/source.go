package quote

import (
	"fmt"

	"shiprates/internal/pkg/errs"
)

// Source labels which provider produced a quote list.
type Source int

const (
	// SourceUnknown catches uninitialized Source values.
	SourceUnknown Source = iota

	// SourcePrimary is the live multi-carrier rate API.
	SourcePrimary

	// SourceSecondary is the best-effort alternate rate API.
	SourceSecondary

	// SourceMock is the synthesized rate table.
	SourceMock

	// SourceDefault is the hardcoded reference-shipment mock set served after a failure.
	SourceDefault
)

func getSourceStrings() map[Source]string {
	return map[Source]string{
		SourceUnknown:   "unknown",
		SourcePrimary:   "primary",
		SourceSecondary: "secondary",
		SourceMock:      "mock",
		SourceDefault:   "default",
	}
}

// Validate checks if the Source value is one of the known providers.
func (s Source) Validate() error {
	if s == SourceUnknown {
		return errs.NewValueIsInvalidErrorWithCause("source", fmt.Errorf("%d is not a valid source", s))
	}
	if _, ok := getSourceStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("source", fmt.Errorf("%d is not a valid source", s))
	}
	return nil
}

// String returns the wire name of the source, or "unknown".
func (s Source) String() string {
	if str, ok := getSourceStrings()[s]; ok {
		return str
	}
	return "unknown"
}
