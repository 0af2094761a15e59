package types

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// FlexString absorbs JSON values that storefront forms send inconsistently:
// catalog IDs arrive as strings or numbers depending on the theme. Values of
// any other shape decode to the empty string rather than failing the request.
type FlexString string

func (s *FlexString) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*s = ""
		return nil
	}
	if trimmed[0] == '"' {
		var v string
		if err := json.Unmarshal(trimmed, &v); err != nil {
			return err
		}
		*s = FlexString(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(trimmed, &n); err != nil {
		*s = ""
		return nil
	}
	*s = FlexString(n.String())
	return nil
}

func (s FlexString) String() string {
	return string(s)
}

// Empty reports whether the value is blank after trimming.
func (s FlexString) Empty() bool {
	return strings.TrimSpace(string(s)) == ""
}

// FlexNumber absorbs numbers sent as JSON numbers or numeric strings.
// Valid is false when the value was absent, null, or not parseable.
type FlexNumber struct {
	Value decimal.Decimal
	Valid bool
}

func (n *FlexNumber) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*n = FlexNumber{}
		return nil
	}
	raw := string(trimmed)
	if trimmed[0] == '"' {
		var v string
		if err := json.Unmarshal(trimmed, &v); err != nil {
			*n = FlexNumber{}
			return nil
		}
		raw = strings.TrimSpace(v)
	}
	value, err := decimal.NewFromString(raw)
	if err != nil {
		*n = FlexNumber{}
		return nil
	}
	*n = FlexNumber{Value: value, Valid: true}
	return nil
}
