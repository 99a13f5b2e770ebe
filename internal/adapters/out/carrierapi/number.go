package carrierapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Number is a JSON value that may arrive as a number, a numeric string or null.
// Empty strings and null decode to zero.
type Number float64

func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*n = 0
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*n = 0
			return nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("number %q: %w", s, err)
		}
		*n = Number(f)
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*n = Number(f)
	return nil
}

// Float64 returns the decoded value.
func (n Number) Float64() float64 {
	return float64(n)
}

// Int truncates the decoded value.
func (n Number) Int() int {
	return int(n)
}

// IsSet reports a non-zero value, the way the upstream APIs mark absent fields.
func (n Number) IsSet() bool {
	return n != 0
}

// FirstSet returns the first non-zero value, or zero.
func FirstSet(values ...Number) Number {
	for _, v := range values {
		if v.IsSet() {
			return v
		}
	}
	return 0
}

// Text is a JSON identifier that may arrive as a string or a number.
type Text string

func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*t = ""
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = Text(s)
	default:
		var num json.Number
		if err := json.Unmarshal(data, &num); err != nil {
			return err
		}
		*t = Text(num.String())
	}
	return nil
}

// FirstNonEmpty returns the first non-blank string, or fallback.
func FirstNonEmpty(fallback string, values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return fallback
}
