package models

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Age holds an age that may arrive as either a JSON string ("29") or a JSON
// number (29). Both representations are kept as-is: marshaling re-emits the
// form the value was created with, and Equal compares by logical value.
type Age struct {
	text    string
	numeric bool
}

// AgeFromString returns an Age carrying the string representation.
func AgeFromString(s string) Age {
	return Age{text: s}
}

// AgeFromInt returns an Age carrying the numeric representation.
func AgeFromInt(n int) Age {
	return Age{text: strconv.Itoa(n), numeric: true}
}

// IsZero reports whether the age was never set.
func (a Age) IsZero() bool {
	return a.text == ""
}

// String returns the textual form regardless of representation.
func (a Age) String() string {
	return a.text
}

// Equal compares two ages by logical value: "29" and 29 are equal, while
// representations that do not parse as numbers compare textually.
func (a Age) Equal(b Age) bool {
	if a.text == b.text {
		return true
	}
	af, aerr := strconv.ParseFloat(a.text, 64)
	bf, berr := strconv.ParseFloat(b.text, 64)
	return aerr == nil && berr == nil && af == bf
}

func (a *Age) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("age: empty input")
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("age: %w", err)
		}
		*a = Age{text: s}
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("age: expected string or number: %w", err)
	}
	*a = Age{text: n.String(), numeric: true}
	return nil
}

func (a Age) MarshalJSON() ([]byte, error) {
	if a.numeric {
		return []byte(a.text), nil
	}
	return json.Marshal(a.text)
}
