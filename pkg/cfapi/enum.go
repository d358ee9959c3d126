package cfapi

import (
	"strings"
)

// Enum is an open string enumeration. Known values are exposed as named
// constants next to the resource models that use them, but any literal the
// server returns decodes successfully and round-trips verbatim. Comparison
// against a named constant is case-insensitive; the literal itself is
// preserved exactly as received.
type Enum struct {
	value string
}

// EnumOf constructs an Enum from its literal value.
func EnumOf(value string) Enum {
	return Enum{value: value}
}

// Value returns the literal value as received or constructed.
func (e Enum) Value() string {
	return e.value
}

// String implements fmt.Stringer.
func (e Enum) String() string {
	return e.value
}

// Key returns the case-normalized form, suitable for map keys and indexing.
// Values differing only by case share one key.
func (e Enum) Key() string {
	return strings.ToLower(e.value)
}

// IsZero reports whether the enum is the empty default, distinguishable from
// every named constant. A null wire value decodes to the zero Enum.
func (e Enum) IsZero() bool {
	return e.value == ""
}

// Equal compares two enums case-insensitively.
func (e Enum) Equal(other Enum) bool {
	return strings.EqualFold(e.value, other.value)
}

// Is compares the enum against a literal case-insensitively.
func (e Enum) Is(value string) bool {
	return strings.EqualFold(e.value, value)
}

// MarshalJSON emits the literal value unchanged.
func (e Enum) MarshalJSON() ([]byte, error) {
	return jsonCodec.Marshal(e.value)
}

// UnmarshalJSON accepts any string literal, preserving it verbatim. A JSON
// null yields the zero Enum rather than a decode failure.
func (e *Enum) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		e.value = ""

		return nil
	}

	var value string

	err := jsonCodec.Unmarshal(data, &value)
	if err != nil {
		return &DecodeError{Reason: "open enum value", Err: err}
	}

	e.value = value

	return nil
}

// MarshalYAML emits the literal value, for CLI output.
func (e Enum) MarshalYAML() (interface{}, error) {
	return e.value, nil
}
