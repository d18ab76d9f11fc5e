package schema

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

type ProjectInsert struct {
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	TechStack        []string `json:"techStack"`
	ImageURL         string   `json:"imageUrl"`
	GithubURL        *string  `json:"githubUrl"`
	LiveURL          *string  `json:"liveUrl"`
	Category         string   `json:"category"`
	ProblemStatement *string  `json:"problemStatement"`
	Motivation       *string  `json:"motivation"`
	SystemDesign     *string  `json:"systemDesign"`
	Challenges       *string  `json:"challenges"`
	Learnings        *string  `json:"learnings"`
}

func (p ProjectInsert) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Title, validation.Required, validation.RuneLength(1, MaxTitleLen)),
		validation.Field(&p.Description, validation.Required, validation.RuneLength(1, MaxTextLen)),
		validation.Field(&p.TechStack, validation.Each(validation.Required, validation.RuneLength(1, MaxTechItemLen))),
		validation.Field(&p.ImageURL, validation.Required, validation.RuneLength(1, MaxURLLen), is.RequestURL, hostRequired),
		validation.Field(&p.GithubURL, validation.RuneLength(0, MaxURLLen), is.RequestURL, hostRequired),
		validation.Field(&p.LiveURL, validation.RuneLength(0, MaxURLLen), is.RequestURL, hostRequired),
		validation.Field(&p.Category, validation.Required, validation.RuneLength(1, MaxCategoryLen)),
		validation.Field(&p.ProblemStatement, validation.RuneLength(0, MaxTextLen)),
		validation.Field(&p.Motivation, validation.RuneLength(0, MaxTextLen)),
		validation.Field(&p.SystemDesign, validation.RuneLength(0, MaxTextLen)),
		validation.Field(&p.Challenges, validation.RuneLength(0, MaxTextLen)),
		validation.Field(&p.Learnings, validation.RuneLength(0, MaxTextLen)),
	)
}

// ParseProjectInsert decodes and validates a new project. Blank optional
// URLs come back as nil and a missing techStack as an empty list.
func ParseProjectInsert(raw []byte) (*ProjectInsert, error) {
	var p ProjectInsert
	if err := parse(raw, &p); err != nil {
		return nil, err
	}
	p.GithubURL = blankToNil(p.GithubURL)
	p.LiveURL = blankToNil(p.LiveURL)
	if p.TechStack == nil {
		p.TechStack = []string{}
	}
	return &p, nil
}

// ProjectPatch carries the fields of a partial project update. An absent field
// is left unchanged. Null or an empty string on a nullable field clears it.
type ProjectPatch struct {
	Title            *string        `json:"title"`
	Description      *string        `json:"description"`
	TechStack        *[]string      `json:"techStack"`
	ImageURL         *string        `json:"imageUrl"`
	GithubURL        OptionalString `json:"githubUrl"`
	LiveURL          OptionalString `json:"liveUrl"`
	Category         *string        `json:"category"`
	ProblemStatement OptionalString `json:"problemStatement"`
	Motivation       OptionalString `json:"motivation"`
	SystemDesign     OptionalString `json:"systemDesign"`
	Challenges       OptionalString `json:"challenges"`
	Learnings        OptionalString `json:"learnings"`
}

func (p ProjectPatch) Validate() error {
	var techStack []string
	if p.TechStack != nil {
		techStack = *p.TechStack
	}
	return validation.ValidateStruct(&p,
		validation.Field(&p.Title, validation.NilOrNotEmpty, validation.RuneLength(1, MaxTitleLen)),
		validation.Field(&p.Description, validation.NilOrNotEmpty, validation.RuneLength(1, MaxTextLen)),
		validation.Field(&p.TechStack, validation.By(func(interface{}) error {
			return validation.Validate(techStack, validation.Each(validation.Required, validation.RuneLength(1, MaxTechItemLen)))
		})),
		validation.Field(&p.ImageURL, validation.NilOrNotEmpty, validation.RuneLength(1, MaxURLLen), is.RequestURL, hostRequired),
		validation.Field(&p.GithubURL, whenSet(validation.RuneLength(0, MaxURLLen), is.RequestURL, hostRequired)),
		validation.Field(&p.LiveURL, whenSet(validation.RuneLength(0, MaxURLLen), is.RequestURL, hostRequired)),
		validation.Field(&p.Category, validation.NilOrNotEmpty, validation.RuneLength(1, MaxCategoryLen)),
		validation.Field(&p.ProblemStatement, whenSet(validation.RuneLength(0, MaxTextLen))),
		validation.Field(&p.Motivation, whenSet(validation.RuneLength(0, MaxTextLen))),
		validation.Field(&p.SystemDesign, whenSet(validation.RuneLength(0, MaxTextLen))),
		validation.Field(&p.Challenges, whenSet(validation.RuneLength(0, MaxTextLen))),
		validation.Field(&p.Learnings, whenSet(validation.RuneLength(0, MaxTextLen))),
	)
}

// IsEmpty reports whether the patch changes nothing.
func (p ProjectPatch) IsEmpty() bool {
	return p == ProjectPatch{}
}

func ParseProjectPatch(raw []byte) (*ProjectPatch, error) {
	var p ProjectPatch
	if err := parse(raw, &p); err != nil {
		return nil, err
	}
	return &p, nil
}
