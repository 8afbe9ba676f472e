package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
)

// jsonNumber matches a JSON number literal.
var jsonNumber = regexp.MustCompile(`^-?(0|[1-9][0-9]*)(\.[0-9]+)?([eE][+-]?[0-9]+)?$`)

// Identifier is an opaque token referencing a note or tag. It is never validated;
// its only job is to reach the server as the same JSON scalar it was given.
type Identifier struct {
	text    string
	numeric bool
}

// StringID returns an identifier that is always sent as a JSON string.
func StringID(s string) Identifier {
	return Identifier{text: s}
}

// NumberID returns an identifier that is sent as a JSON number.
func NumberID(n int64) Identifier {
	return Identifier{text: strconv.FormatInt(n, 10), numeric: true}
}

// ParseIdentifier treats s as a number when it is a JSON number literal and as a
// string otherwise. "42" becomes 42, while "007" and "abc123" stay strings.
func ParseIdentifier(s string) Identifier {
	if jsonNumber.MatchString(s) {
		return Identifier{text: s, numeric: true}
	}
	return StringID(s)
}

func (id Identifier) String() string {
	return id.text
}

// MarshalJSON implements json.Marshaler.
func (id Identifier) MarshalJSON() ([]byte, error) {
	if id.numeric {
		return []byte(id.text), nil
	}
	return json.Marshal(id.text)
}

// UnmarshalJSON implements json.Unmarshaler.
// Strings and numbers are accepted; numbers keep their literal text, so ids
// wider than a float64 mantissa reach the server unchanged. null is rejected.
func (id *Identifier) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return fmt.Errorf("identifier is required")
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*id = StringID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("identifier must be a string or number: %w", err)
	}
	*id = Identifier{text: n.String(), numeric: true}
	return nil
}
