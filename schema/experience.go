package schema

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type ExperienceInsert struct {
	Role         string  `json:"role"`
	Organization string  `json:"organization"`
	Period       string  `json:"period"`
	Description  string  `json:"description"`
	Type         *string `json:"type"`
}

func (e ExperienceInsert) Validate() error {
	return validation.ValidateStruct(&e,
		validation.Field(&e.Role, validation.Required, validation.RuneLength(1, MaxRoleLen)),
		validation.Field(&e.Organization, validation.Required, validation.RuneLength(1, MaxOrganizationLen)),
		validation.Field(&e.Period, validation.Required, validation.RuneLength(1, MaxPeriodLen)),
		validation.Field(&e.Description, validation.Required, validation.RuneLength(1, MaxTextLen)),
		validation.Field(&e.Type, validation.RuneLength(0, MaxTypeLen)),
	)
}

func ParseExperienceInsert(raw []byte) (*ExperienceInsert, error) {
	var e ExperienceInsert
	if err := parse(raw, &e); err != nil {
		return nil, err
	}
	e.Type = blankToNil(e.Type)
	return &e, nil
}

type ExperiencePatch struct {
	Role         *string `json:"role"`
	Organization *string `json:"organization"`
	Period       *string `json:"period"`
	Description  *string `json:"description"`
	Type         *string `json:"type"`
}

func (e ExperiencePatch) Validate() error {
	return validation.ValidateStruct(&e,
		validation.Field(&e.Role, validation.NilOrNotEmpty, validation.RuneLength(1, MaxRoleLen)),
		validation.Field(&e.Organization, validation.NilOrNotEmpty, validation.RuneLength(1, MaxOrganizationLen)),
		validation.Field(&e.Period, validation.NilOrNotEmpty, validation.RuneLength(1, MaxPeriodLen)),
		validation.Field(&e.Description, validation.NilOrNotEmpty, validation.RuneLength(1, MaxTextLen)),
		validation.Field(&e.Type, validation.RuneLength(0, MaxTypeLen)),
	)
}

func (e ExperiencePatch) IsEmpty() bool {
	return e == ExperiencePatch{}
}

func ParseExperiencePatch(raw []byte) (*ExperiencePatch, error) {
	var e ExperiencePatch
	if err := parse(raw, &e); err != nil {
		return nil, err
	}
	return &e, nil
}
