package schema

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// MessageInsert is a contact-form submission.
type MessageInsert struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Subject *string `json:"subject"`
	Message string  `json:"message"`
}

func (m MessageInsert) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.Name, validation.Required, validation.RuneLength(1, MaxSenderNameLen)),
		validation.Field(&m.Email, validation.Required, validation.RuneLength(1, MaxEmailLen), is.EmailFormat),
		validation.Field(&m.Subject, validation.RuneLength(0, MaxSubjectLen)),
		validation.Field(&m.Message, validation.Required, validation.RuneLength(1, MaxMessageLen)),
	)
}

// ParseMessageInsert decodes and validates a submission. Email is checked
// for format only.
func ParseMessageInsert(raw []byte) (*MessageInsert, error) {
	var m MessageInsert
	if err := parse(raw, &m); err != nil {
		return nil, err
	}
	return &m, nil
}
