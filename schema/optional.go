package schema

import (
	"bytes"
	"encoding/json"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// OptionalString tracks presence and value for a nullable patch field:
//   - Present=false: field absent from JSON (don't change)
//   - Present=true, Value=nil: field is JSON null (set to NULL)
//   - Present=true, Value=&"": empty string (also set to NULL)
//   - Present=true, Value=&"text": new value
type OptionalString struct {
	Present bool
	Value   *string
	// wrongType is set when the JSON value was neither a string nor null.
	wrongType bool
}

// SetString returns a present OptionalString holding s.
func SetString(s string) OptionalString {
	return OptionalString{Present: true, Value: &s}
}

// NullString returns a present OptionalString holding JSON null.
func NullString() OptionalString {
	return OptionalString{Present: true}
}

// UnmarshalJSON is only called when the field was present in the JSON.
func (o *OptionalString) UnmarshalJSON(data []byte) error {
	o.Present = true

	if string(bytes.TrimSpace(data)) == "null" {
		o.Value = nil
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		// reported against the field by validation, which knows its name
		o.wrongType = true
		return nil
	}
	o.Value = &s
	return nil
}

// Clears reports whether the field asks for the column to become NULL.
func (o OptionalString) Clears() bool {
	return o.Present && (o.Value == nil || *o.Value == "")
}

// whenSet applies rules to the string value of an OptionalString, if any.
func whenSet(rules ...validation.Rule) validation.Rule {
	return validation.By(func(value interface{}) error {
		o, ok := value.(OptionalString)
		if !ok {
			return nil
		}
		if o.wrongType {
			return validation.NewError("validation_is_string", "must be of type string")
		}
		if o.Value == nil {
			return nil
		}
		return validation.Validate(*o.Value, rules...)
	})
}
