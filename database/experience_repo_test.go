package database

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdhesh369/my-portfolio/cache"
	"github.com/abdhesh369/my-portfolio/errs"
	"github.com/abdhesh369/my-portfolio/models"
	"github.com/abdhesh369/my-portfolio/schema"
)

func sampleExperience() *schema.ExperienceInsert {
	return &schema.ExperienceInsert{
		Role:         "Student",
		Organization: "Tribhuvan University",
		Period:       "2024 – 2028",
		Description:  "B.E. in Electronics & Communication Engineering",
	}
}

func TestExperienceRepo_CreateDefaultsType(t *testing.T) {
	repo := NewExperienceRepo(newTestDB(t), nil)
	ctx := context.Background()

	created, err := repo.Create(ctx, sampleExperience())
	require.NoError(t, err)
	assert.Equal(t, models.DefaultExperienceType, created.Type)

	in := sampleExperience()
	in.Type = strPtr("Education")
	education, err := repo.Create(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, "Education", education.Type)
}

func TestExperienceRepo_UpdateAndCache(t *testing.T) {
	db := newTestDB(t)
	repo := NewExperienceRepo(db, cache.New[models.Experience](time.Hour))
	ctx := context.Background()
	created, err := repo.Create(ctx, sampleExperience())
	require.NoError(t, err)

	listed, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)

	updated, err := repo.Update(ctx, created.ID, &schema.ExperiencePatch{Period: strPtr("2024 – present")})
	require.NoError(t, err)
	assert.Equal(t, "2024 – present", updated.Period)
	assert.Equal(t, created.Role, updated.Role)

	listed, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2024 – present", listed[0].Period)
}

func TestExperienceRepo_EmptyPatch(t *testing.T) {
	repo := NewExperienceRepo(newTestDB(t), nil)
	ctx := context.Background()
	created, err := repo.Create(ctx, sampleExperience())
	require.NoError(t, err)

	same, err := repo.Update(ctx, created.ID, &schema.ExperiencePatch{})
	require.NoError(t, err)
	assert.Equal(t, created, same)
}

func TestExperienceRepo_Delete(t *testing.T) {
	repo := NewExperienceRepo(newTestDB(t), nil)
	ctx := context.Background()
	created, err := repo.Create(ctx, sampleExperience())
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, created.ID))
	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.True(t, errs.IsNotFound(repo.Delete(ctx, created.ID)))
}
