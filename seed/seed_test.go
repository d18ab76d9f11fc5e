package seed

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/abdhesh369/my-portfolio/database"
)

func newTestDatabase(t *testing.T) database.Database {
	t.Helper()
	dsn := fmt.Sprintf("file:seed_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	d := database.New(db, database.Options{})
	require.NoError(t, d.Migrate())
	return d
}

func TestLoad_EmbeddedFile(t *testing.T) {
	data, err := Load()
	require.NoError(t, err)
	assert.Len(t, data.Projects, 5)
	assert.Len(t, data.Skills, 8)
	assert.Len(t, data.Experiences, 1)
	assert.Equal(t, []string{"8085", "Assembly"}, data.Projects[2].TechStack)
}

func TestParse_Malformed(t *testing.T) {
	_, err := Parse([]byte("projects: [unterminated"))
	require.Error(t, err)
}

func TestSeed_EmptyStore(t *testing.T) {
	ctx := context.Background()
	db := newTestDatabase(t)

	seeded, err := Seed(ctx, db)
	require.NoError(t, err)
	assert.True(t, seeded)

	projects, err := db.ProjectRepo().List(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 5)
	assert.Equal(t, "Calculator Application", projects[0].Title)
	assert.Equal(t, []string{"React", "CSS"}, projects[0].TechStack)
	assert.Nil(t, projects[0].LiveURL)

	skills, err := db.SkillRepo().List(ctx)
	require.NoError(t, err)
	require.Len(t, skills, 8)
	assert.Equal(t, "Code2", skills[1].Icon)

	experiences, err := db.ExperienceRepo().List(ctx)
	require.NoError(t, err)
	require.Len(t, experiences, 1)
	assert.Equal(t, "Education", experiences[0].Type)
}

func TestSeed_SkipsWhenProjectsExist(t *testing.T) {
	ctx := context.Background()
	db := newTestDatabase(t)

	seeded, err := Seed(ctx, db)
	require.NoError(t, err)
	require.True(t, seeded)

	seeded, err = Seed(ctx, db)
	require.NoError(t, err)
	assert.False(t, seeded)

	n, err := db.ProjectRepo().Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 5, n)
}

func TestApply_RejectsInvalidEntry(t *testing.T) {
	db := newTestDatabase(t)
	data := &Data{Projects: []ProjectEntry{{Title: "No image", Description: "d", Category: "c"}}}

	_, err := Apply(context.Background(), db, data)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `seed project "No image"`)
}

func TestApply_InvalidEntryRollsBackEarlierWrites(t *testing.T) {
	ctx := context.Background()
	db := newTestDatabase(t)
	data := &Data{
		Projects: []ProjectEntry{{
			Title:       "Valid",
			Description: "d",
			TechStack:   []string{"Go"},
			ImageURL:    "https://example.com/a.png",
			Category:    "c",
		}},
		Skills: []SkillEntry{{Name: "", Category: "Backend"}},
	}

	seeded, err := Apply(ctx, db, data)
	require.Error(t, err)
	assert.False(t, seeded)
	assert.Contains(t, err.Error(), `seed skill ""`)

	n, err := db.ProjectRepo().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	// The rolled-back attempt must not block a later seed.
	data.Skills[0].Name = "Go"
	seeded, err = Apply(ctx, db, data)
	require.NoError(t, err)
	assert.True(t, seeded)

	skills, err := db.SkillRepo().List(ctx)
	require.NoError(t, err)
	require.Len(t, skills, 1)
	assert.Equal(t, "Go", skills[0].Name)
}
