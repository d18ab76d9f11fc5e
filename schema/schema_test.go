package schema

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdhesh369/my-portfolio/errs"
)

func requireFieldErrors(t *testing.T, err error, fields ...string) *errs.ValidationError {
	t.Helper()
	var verr *errs.ValidationError
	require.True(t, errors.As(err, &verr), "expected validation error, got %v", err)
	for _, f := range fields {
		assert.True(t, verr.HasField(f), "expected error on %q, got %+v", f, verr.Errors)
	}
	return verr
}

const validProject = `{
	"title": "Calculator Application",
	"description": "A calculator",
	"techStack": ["React", "CSS"],
	"imageUrl": "https://images.unsplash.com/photo-1",
	"githubUrl": "",
	"liveUrl": null,
	"category": "Utility"
}`

func TestParseProjectInsert(t *testing.T) {
	p, err := ParseProjectInsert([]byte(validProject))
	require.NoError(t, err)

	assert.Equal(t, "Calculator Application", p.Title)
	assert.Equal(t, []string{"React", "CSS"}, p.TechStack)
	assert.Nil(t, p.GithubURL)
	assert.Nil(t, p.LiveURL)
}

func TestParseProjectInsertDefaultsTechStack(t *testing.T) {
	p, err := ParseProjectInsert([]byte(`{"title":"t","description":"d","imageUrl":"https://x.dev/i.png","category":"c"}`))
	require.NoError(t, err)
	assert.Equal(t, []string{}, p.TechStack)
}

func TestParseProjectInsertCollectsEveryViolation(t *testing.T) {
	_, err := ParseProjectInsert([]byte(`{"imageUrl":"not a url","githubUrl":"also bad"}`))

	verr := requireFieldErrors(t, err, "title", "description", "category", "imageUrl", "githubUrl")
	assert.Len(t, verr.Errors, 5)
	for i := 1; i < len(verr.Errors); i++ {
		assert.LessOrEqual(t, verr.Errors[i-1].Field, verr.Errors[i].Field)
	}
}

func TestParseProjectInsertLimits(t *testing.T) {
	long := strings.Repeat("a", MaxTitleLen+1)
	_, err := ParseProjectInsert([]byte(`{"title":"` + long + `","description":"d","imageUrl":"https://x.dev","category":"c","techStack":["` + strings.Repeat("b", MaxTechItemLen+1) + `"]}`))

	requireFieldErrors(t, err, "title", "techStack.0")
}

func TestParseProjectInsertRejectsHostlessURLs(t *testing.T) {
	for _, raw := range []string{"http://", "https:///x"} {
		t.Run(raw, func(t *testing.T) {
			_, err := ParseProjectInsert([]byte(`{"title":"t","description":"d","category":"c","imageUrl":"` + raw + `","liveUrl":"` + raw + `"}`))
			verr := requireFieldErrors(t, err, "imageUrl", "liveUrl")
			assert.Len(t, verr.Errors, 2)
		})
	}
}

func TestParseProjectInsertRejectsBlankTechItems(t *testing.T) {
	_, err := ParseProjectInsert([]byte(`{"title":"t","description":"d","imageUrl":"https://x.dev","category":"c","techStack":["Go",null,""]}`))

	verr := requireFieldErrors(t, err, "techStack.1", "techStack.2")
	assert.Len(t, verr.Errors, 2)
}

func TestParseProjectPatchRejectsBlankTechItems(t *testing.T) {
	_, err := ParseProjectPatch([]byte(`{"techStack":["Go",null]}`))
	requireFieldErrors(t, err, "techStack.1")
}

func TestParseProjectInsertTypeMismatch(t *testing.T) {
	_, err := ParseProjectInsert([]byte(`{"title":"t","techStack":"React"}`))

	verr := requireFieldErrors(t, err, "techStack")
	assert.Len(t, verr.Errors, 1)
}

func TestMalformedBody(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "syntax", raw: `{"title":`},
		{name: "empty", raw: ``},
		{name: "array", raw: `[1,2]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSkillInsert([]byte(tt.raw))
			verr := requireFieldErrors(t, err, BodyField)
			assert.Len(t, verr.Errors, 1)
		})
	}
}

func TestParseProjectPatch(t *testing.T) {
	p, err := ParseProjectPatch([]byte(`{}`))
	require.NoError(t, err)
	assert.True(t, p.IsEmpty())

	p, err = ParseProjectPatch([]byte(`{"techStack":["Go"],"liveUrl":""}`))
	require.NoError(t, err)
	assert.False(t, p.IsEmpty())
	require.NotNil(t, p.TechStack)
	assert.Equal(t, []string{"Go"}, *p.TechStack)
	assert.True(t, p.LiveURL.Present)
	assert.True(t, p.LiveURL.Clears())
	assert.False(t, p.GithubURL.Present)
	assert.Nil(t, p.Title)
}

func TestParseProjectPatchNullClearsNullableField(t *testing.T) {
	p, err := ParseProjectPatch([]byte(`{"githubUrl":null,"learnings":"Profiling"}`))
	require.NoError(t, err)

	assert.False(t, p.IsEmpty())
	assert.True(t, p.GithubURL.Present)
	assert.Nil(t, p.GithubURL.Value)
	assert.True(t, p.GithubURL.Clears())
	require.NotNil(t, p.Learnings.Value)
	assert.Equal(t, "Profiling", *p.Learnings.Value)
	assert.False(t, p.Learnings.Clears())
	assert.False(t, p.LiveURL.Present)
}

func TestParseProjectPatchNullableFieldWrongType(t *testing.T) {
	_, err := ParseProjectPatch([]byte(`{"githubUrl":42,"motivation":["x"]}`))

	verr := requireFieldErrors(t, err, "githubUrl", "motivation")
	assert.Len(t, verr.Errors, 2)
	assert.Equal(t, "must be of type string", verr.Errors[0].Message)
}

func TestParseProjectPatchChecksNullableURL(t *testing.T) {
	_, err := ParseProjectPatch([]byte(`{"liveUrl":"http://","githubUrl":"notaurl"}`))
	requireFieldErrors(t, err, "liveUrl", "githubUrl")
}

func TestParseProjectPatchRejectsBlankRequiredField(t *testing.T) {
	_, err := ParseProjectPatch([]byte(`{"title":"","imageUrl":"not a url"}`))
	requireFieldErrors(t, err, "title", "imageUrl")
}

func TestParseProjectPatchChecksTechStackItems(t *testing.T) {
	_, err := ParseProjectPatch([]byte(`{"techStack":["ok","` + strings.Repeat("x", MaxTechItemLen+1) + `"]}`))
	requireFieldErrors(t, err, "techStack.1")
}

func TestParseSkillInsert(t *testing.T) {
	s, err := ParseSkillInsert([]byte(`{"name":"Rust","category":"Languages"}`))
	require.NoError(t, err)
	assert.Nil(t, s.Icon)

	s, err = ParseSkillInsert([]byte(`{"name":"Rust","category":"Languages","icon":""}`))
	require.NoError(t, err)
	assert.Nil(t, s.Icon)

	_, err = ParseSkillInsert([]byte(`{"name":"","category":"Languages"}`))
	requireFieldErrors(t, err, "name")
}

func TestParseSkillPatch(t *testing.T) {
	s, err := ParseSkillPatch([]byte(`{"icon":"Cpu"}`))
	require.NoError(t, err)
	require.NotNil(t, s.Icon)
	assert.Equal(t, "Cpu", *s.Icon)
	assert.Nil(t, s.Name)

	_, err = ParseSkillPatch([]byte(`{"name":""}`))
	requireFieldErrors(t, err, "name")
}

func TestParseExperienceInsert(t *testing.T) {
	e, err := ParseExperienceInsert([]byte(`{"role":"Student","organization":"TU","period":"2024 – 2028","description":"B.E."}`))
	require.NoError(t, err)
	assert.Nil(t, e.Type)

	_, err = ParseExperienceInsert([]byte(`{"role":"Student"}`))
	requireFieldErrors(t, err, "organization", "period", "description")
}

func TestParseExperiencePatch(t *testing.T) {
	e, err := ParseExperiencePatch([]byte(`{"type":"Education"}`))
	require.NoError(t, err)
	assert.False(t, e.IsEmpty())

	_, err = ParseExperiencePatch([]byte(`{"period":"` + strings.Repeat("9", MaxPeriodLen+1) + `"}`))
	requireFieldErrors(t, err, "period")
}

func TestParseMessageInsert(t *testing.T) {
	m, err := ParseMessageInsert([]byte(`{"name":"Ada","email":"ada@example.com","message":"Hello"}`))
	require.NoError(t, err)
	assert.Nil(t, m.Subject)
}

func TestParseMessageInsertRejectsInvalidEmail(t *testing.T) {
	_, err := ParseMessageInsert([]byte(`{"name":"Ada","email":"not-an-email","message":"Hello"}`))

	verr := requireFieldErrors(t, err, "email")
	assert.Len(t, verr.Errors, 1)
}

func TestParseMessageInsertRejectsOverlongMessage(t *testing.T) {
	body := `{"name":"Ada","email":"ada@example.com","message":"` + strings.Repeat("m", MaxMessageLen+1) + `"}`

	_, err := ParseMessageInsert([]byte(body))

	requireFieldErrors(t, err, "message")
}

func TestMessageLengthCountsCharacters(t *testing.T) {
	body := `{"name":"Ada","email":"ada@example.com","message":"` + strings.Repeat("é", MaxMessageLen) + `"}`

	_, err := ParseMessageInsert([]byte(body))

	assert.NoError(t, err)
}

func TestValidateInsertDispatch(t *testing.T) {
	v, err := ValidateInsert(Skills, []byte(`{"name":"Go","category":"Languages"}`))
	require.NoError(t, err)
	assert.IsType(t, &SkillInsert{}, v)

	v, err = ValidateInsert(Messages, []byte(`{"name":"Ada","email":"ada@example.com","message":"hi"}`))
	require.NoError(t, err)
	assert.IsType(t, &MessageInsert{}, v)

	_, err = ValidateInsert(Experiences, []byte(`{}`))
	assert.True(t, errs.IsValidation(err))

	_, err = ValidateInsert(Entity("blog"), []byte(`{}`))
	assert.Error(t, err)
	assert.False(t, errs.IsValidation(err))
}
