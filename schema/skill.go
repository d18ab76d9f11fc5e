package schema

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type SkillInsert struct {
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Icon     *string `json:"icon"`
}

func (s SkillInsert) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Name, validation.Required, validation.RuneLength(1, MaxSkillNameLen)),
		validation.Field(&s.Category, validation.Required, validation.RuneLength(1, MaxCategoryLen)),
		validation.Field(&s.Icon, validation.RuneLength(0, MaxIconLen)),
	)
}

// ParseSkillInsert decodes and validates a new skill. A blank icon comes back
// as nil so storage applies the default.
func ParseSkillInsert(raw []byte) (*SkillInsert, error) {
	var s SkillInsert
	if err := parse(raw, &s); err != nil {
		return nil, err
	}
	s.Icon = blankToNil(s.Icon)
	return &s, nil
}

type SkillPatch struct {
	Name     *string `json:"name"`
	Category *string `json:"category"`
	Icon     *string `json:"icon"`
}

func (s SkillPatch) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Name, validation.NilOrNotEmpty, validation.RuneLength(1, MaxSkillNameLen)),
		validation.Field(&s.Category, validation.NilOrNotEmpty, validation.RuneLength(1, MaxCategoryLen)),
		validation.Field(&s.Icon, validation.RuneLength(0, MaxIconLen)),
	)
}

func (s SkillPatch) IsEmpty() bool {
	return s == SkillPatch{}
}

func ParseSkillPatch(raw []byte) (*SkillPatch, error) {
	var s SkillPatch
	if err := parse(raw, &s); err != nil {
		return nil, err
	}
	return &s, nil
}
