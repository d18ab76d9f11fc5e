// Package seed fills an empty portfolio with the starter content shipped in
// seed.yaml.
package seed

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/abdhesh369/my-portfolio/database"
	"github.com/abdhesh369/my-portfolio/schema"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var seedFile []byte

type ProjectEntry struct {
	Title            string   `yaml:"title"`
	Description      string   `yaml:"description"`
	TechStack        []string `yaml:"techStack"`
	ImageURL         string   `yaml:"imageUrl"`
	GithubURL        string   `yaml:"githubUrl"`
	LiveURL          string   `yaml:"liveUrl"`
	Category         string   `yaml:"category"`
	ProblemStatement string   `yaml:"problemStatement"`
	Motivation       string   `yaml:"motivation"`
	SystemDesign     string   `yaml:"systemDesign"`
	Challenges       string   `yaml:"challenges"`
	Learnings        string   `yaml:"learnings"`
}

type SkillEntry struct {
	Name     string `yaml:"name"`
	Category string `yaml:"category"`
	Icon     string `yaml:"icon"`
}

type ExperienceEntry struct {
	Role         string `yaml:"role"`
	Organization string `yaml:"organization"`
	Period       string `yaml:"period"`
	Description  string `yaml:"description"`
	Type         string `yaml:"type"`
}

// Data is the decoded content of a seed file.
type Data struct {
	Projects    []ProjectEntry    `yaml:"projects"`
	Skills      []SkillEntry      `yaml:"skills"`
	Experiences []ExperienceEntry `yaml:"experiences"`
}

// Load decodes the embedded seed file.
func Load() (*Data, error) {
	return Parse(seedFile)
}

func Parse(raw []byte) (*Data, error) {
	var data Data
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal seed data: %w", err)
	}
	return &data, nil
}

// Seed inserts the embedded content when the projects table is empty. It
// reports whether anything was written.
func Seed(ctx context.Context, db database.Database) (bool, error) {
	data, err := Load()
	if err != nil {
		return false, err
	}
	return Apply(ctx, db, data)
}

// Apply writes data through the repositories so every entry is validated
// the same way API input is. Everything runs in one transaction: an invalid
// entry leaves the store as it was.
func Apply(ctx context.Context, db database.Database, data *Data) (bool, error) {
	seeded := false
	err := db.Transaction(ctx, func(tx database.Database) error {
		count, err := tx.ProjectRepo().Count(ctx)
		if err != nil {
			return err
		}
		if count > 0 {
			log.Debug().Int64("projects", count).Msg("store already has projects, skipping seed")
			return nil
		}

		log.Info().Msg("Seeding database...")
		if err := apply(ctx, tx, data); err != nil {
			return err
		}
		seeded = true
		return nil
	})
	if err != nil {
		return false, err
	}
	if seeded {
		log.Info().
			Int("projects", len(data.Projects)).
			Int("skills", len(data.Skills)).
			Int("experiences", len(data.Experiences)).
			Msg("Database seeded successfully")
	}
	return seeded, nil
}

func apply(ctx context.Context, tx database.Database, data *Data) error {
	for _, p := range data.Projects {
		in := &schema.ProjectInsert{
			Title:            p.Title,
			Description:      p.Description,
			TechStack:        p.TechStack,
			ImageURL:         p.ImageURL,
			GithubURL:        optional(p.GithubURL),
			LiveURL:          optional(p.LiveURL),
			Category:         p.Category,
			ProblemStatement: optional(p.ProblemStatement),
			Motivation:       optional(p.Motivation),
			SystemDesign:     optional(p.SystemDesign),
			Challenges:       optional(p.Challenges),
			Learnings:        optional(p.Learnings),
		}
		if in.TechStack == nil {
			in.TechStack = []string{}
		}
		if _, err := tx.ProjectRepo().Create(ctx, in); err != nil {
			return fmt.Errorf("seed project %q: %w", p.Title, err)
		}
	}

	for _, s := range data.Skills {
		in := &schema.SkillInsert{Name: s.Name, Category: s.Category, Icon: optional(s.Icon)}
		if _, err := tx.SkillRepo().Create(ctx, in); err != nil {
			return fmt.Errorf("seed skill %q: %w", s.Name, err)
		}
	}

	for _, e := range data.Experiences {
		in := &schema.ExperienceInsert{
			Role:         e.Role,
			Organization: e.Organization,
			Period:       e.Period,
			Description:  e.Description,
			Type:         optional(e.Type),
		}
		if _, err := tx.ExperienceRepo().Create(ctx, in); err != nil {
			return fmt.Errorf("seed experience %q: %w", e.Role, err)
		}
	}
	return nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
