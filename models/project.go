package models

import "gorm.io/datatypes"

// ProjectRow is a project as persisted. TechStack holds the JSON-encoded list.
type ProjectRow struct {
	ID               int            `db:"id" gorm:"primaryKey;autoIncrement"`
	Title            string         `db:"title" gorm:"type:text;not null"`
	Description      string         `db:"description" gorm:"type:text;not null"`
	TechStack        datatypes.JSON `db:"tech_stack" gorm:"column:tech_stack;type:text;not null;default:'[]'"`
	ImageURL         string         `db:"image_url" gorm:"column:image_url;type:text;not null"`
	GithubURL        *string        `db:"github_url" gorm:"column:github_url;type:text"`
	LiveURL          *string        `db:"live_url" gorm:"column:live_url;type:text"`
	Category         string         `db:"category" gorm:"type:text;not null"`
	ProblemStatement *string        `db:"problem_statement" gorm:"column:problem_statement;type:text"`
	Motivation       *string        `db:"motivation" gorm:"type:text"`
	SystemDesign     *string        `db:"system_design" gorm:"column:system_design;type:text"`
	Challenges       *string        `db:"challenges" gorm:"type:text"`
	Learnings        *string        `db:"learnings" gorm:"type:text"`
}

func (ProjectRow) TableName() string {
	return "projects"
}

// Project is the shape served to clients.
type Project struct {
	ID               int      `json:"id"`
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

// NormalizeProject converts a stored row into its client shape. Nullable
// text stays nil when absent or blank; techStack is always a list.
func NormalizeProject(row ProjectRow) Project {
	return Project{
		ID:               row.ID,
		Title:            row.Title,
		Description:      row.Description,
		TechStack:        DecodeTechStack(row.TechStack),
		ImageURL:         row.ImageURL,
		GithubURL:        nilIfBlank(row.GithubURL),
		LiveURL:          nilIfBlank(row.LiveURL),
		Category:         row.Category,
		ProblemStatement: nilIfBlank(row.ProblemStatement),
		Motivation:       nilIfBlank(row.Motivation),
		SystemDesign:     nilIfBlank(row.SystemDesign),
		Challenges:       nilIfBlank(row.Challenges),
		Learnings:        nilIfBlank(row.Learnings),
	}
}

func nilIfBlank(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	v := *s
	return &v
}

func valueOr(s *string, fallback string) string {
	if s == nil || *s == "" {
		return fallback
	}
	return *s
}
