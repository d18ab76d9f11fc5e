// Package schema decodes and validates request payloads for the four
// portfolio record types before they reach storage.
package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/abdhesh369/my-portfolio/errs"
)

// Field length limits, counted in characters.
const (
	MaxTitleLen        = 255
	MaxTextLen         = 5000
	MaxURLLen          = 500
	MaxCategoryLen     = 100
	MaxTechItemLen     = 100
	MaxSkillNameLen    = 100
	MaxIconLen         = 100
	MaxRoleLen         = 255
	MaxOrganizationLen = 255
	MaxPeriodLen       = 100
	MaxTypeLen         = 100
	MaxSenderNameLen   = 255
	MaxEmailLen        = 255
	MaxSubjectLen      = 500
	MaxMessageLen      = 5000
)

// BodyField is the field reported when the request body itself cannot be
// decoded.
const BodyField = "body"

// hostRequired rejects URLs such as "http://" that parse but name no host.
var hostRequired = validation.By(func(value interface{}) error {
	value, isNil := validation.Indirect(value)
	if isNil || validation.IsEmpty(value) {
		return nil
	}
	s, ok := value.(string)
	if !ok {
		return nil
	}
	u, err := url.Parse(s)
	if err != nil || u.Host == "" {
		return validation.NewError("validation_url_host", "must include a host")
	}
	return nil
})

// Entity names a record type the way it appears in the URL.
type Entity string

const (
	Projects    Entity = "projects"
	Skills      Entity = "skills"
	Experiences Entity = "experiences"
	Messages    Entity = "messages"
)

// ValidateInsert decodes and validates an insert payload for the entity. The
// returned value is a *ProjectInsert, *SkillInsert, *ExperienceInsert or
// *MessageInsert.
func ValidateInsert(entity Entity, raw []byte) (interface{}, error) {
	switch entity {
	case Projects:
		return ParseProjectInsert(raw)
	case Skills:
		return ParseSkillInsert(raw)
	case Experiences:
		return ParseExperienceInsert(raw)
	case Messages:
		return ParseMessageInsert(raw)
	default:
		return nil, fmt.Errorf("schema: unknown entity %q", entity)
	}
}

// Validatable is implemented by every payload type.
type Validatable interface {
	Validate() error
}

// parse decodes raw into dst and runs its rules.
func parse(raw []byte, dst Validatable) error {
	if err := decode(raw, dst); err != nil {
		return err
	}
	return Check(dst)
}

// Check runs a payload's rules and reports violations as an
// *errs.ValidationError.
func Check(v Validatable) error {
	return toValidationError(v.Validate())
}

func decode(raw []byte, dst interface{}) error {
	err := json.Unmarshal(raw, dst)
	if err == nil {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		if i := strings.IndexByte(field, '.'); i >= 0 {
			field = field[:i]
		}
		if field == "" {
			return errs.NewValidationError(errs.FieldError{Field: BodyField, Message: "must be a JSON object"})
		}
		return errs.NewValidationError(errs.FieldError{
			Field:   field,
			Message: fmt.Sprintf("must be of type %s", jsonKind(typeErr.Type.String())),
		})
	}

	return errs.NewValidationError(errs.FieldError{Field: BodyField, Message: "must be valid JSON"})
}

func jsonKind(goType string) string {
	switch {
	case strings.HasSuffix(goType, "[]string"):
		return "array of strings"
	case strings.HasSuffix(goType, "string"):
		return "string"
	default:
		return goType
	}
}

// toValidationError flattens ozzo errors into field errors sorted by field.
func toValidationError(err error) error {
	if err == nil {
		return nil
	}

	var fieldErrs validation.Errors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	var out []errs.FieldError
	flatten("", fieldErrs, &out)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Field < out[j].Field })

	return errs.NewValidationError(out...)
}

func flatten(prefix string, fieldErrs validation.Errors, out *[]errs.FieldError) {
	for key, err := range fieldErrs {
		if err == nil {
			continue
		}
		field := key
		if prefix != "" {
			field = prefix + "." + key
		}
		var nested validation.Errors
		if errors.As(err, &nested) {
			flatten(field, nested, out)
			continue
		}
		*out = append(*out, errs.FieldError{Field: field, Message: err.Error()})
	}
}

// blankToNil turns an empty optional string into an absent one.
func blankToNil(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	return s
}
