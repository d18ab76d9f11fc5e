package database

import (
	"context"

	"gorm.io/gorm"

	"github.com/abdhesh369/my-portfolio/errs"
	"github.com/abdhesh369/my-portfolio/models"
	"github.com/abdhesh369/my-portfolio/schema"
)

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// GetDB returns the underlying database connection for debugging purposes
func (r *ProjectRepo) GetDB() *gorm.DB {
	return r.db
}

// List returns all projects ordered by id.
func (r *ProjectRepo) List(ctx context.Context) ([]models.Project, error) {
	var rows []models.ProjectRow
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, fault(errs.KindFetchFailed, entityProject, err)
	}

	projects := make([]models.Project, 0, len(rows))
	for _, row := range rows {
		projects = append(projects, models.NormalizeProject(row))
	}
	return projects, nil
}

// GetByID returns nil, nil when no project has the id.
func (r *ProjectRepo) GetByID(ctx context.Context, id int) (*models.Project, error) {
	var row models.ProjectRow
	found, err := findRow(r.db.WithContext(ctx), &row, id)
	if err != nil {
		return nil, fault(errs.KindFetchFailed, entityProject, err)
	}
	if !found {
		return nil, nil
	}
	project := models.NormalizeProject(row)
	return &project, nil
}

// Count is used by the seeder to decide whether the store is empty.
func (r *ProjectRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.ProjectRow{}).Count(&n).Error; err != nil {
		return 0, fault(errs.KindFetchFailed, entityProject, err)
	}
	return n, nil
}

// Create inserts a project, storing techStack as a JSON array.
func (r *ProjectRepo) Create(ctx context.Context, in *schema.ProjectInsert) (*models.Project, error) {
	if in == nil {
		return nil, missingPayload(entityProject)
	}
	if err := revalidate(entityProject, in); err != nil {
		return nil, err
	}

	row := models.ProjectRow{
		Title:            in.Title,
		Description:      in.Description,
		TechStack:        models.EncodeTechStack(in.TechStack),
		ImageURL:         in.ImageURL,
		GithubURL:        blankToNil(in.GithubURL),
		LiveURL:          blankToNil(in.LiveURL),
		Category:         in.Category,
		ProblemStatement: in.ProblemStatement,
		Motivation:       in.Motivation,
		SystemDesign:     in.SystemDesign,
		Challenges:       in.Challenges,
		Learnings:        in.Learnings,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, fault(errs.KindCreateFailed, entityProject, err)
	}

	project := models.NormalizeProject(row)
	return &project, nil
}

// Update applies the supplied fields only. An empty patch returns the row
// unchanged.
func (r *ProjectRepo) Update(ctx context.Context, id int, patch *schema.ProjectPatch) (*models.Project, error) {
	if patch == nil || patch.IsEmpty() {
		return r.existing(ctx, id)
	}
	if err := revalidate(entityProject, patch); err != nil {
		return nil, err
	}

	db := r.db.WithContext(ctx)
	found, err := applyUpdates(db, &models.ProjectRow{}, id, projectChanges(patch))
	if err != nil {
		return nil, fault(errs.KindUpdateFailed, entityProject, err)
	}
	if !found {
		return nil, errs.NewNotFound(entityProject, id)
	}

	return r.existing(ctx, id)
}

func (r *ProjectRepo) Delete(ctx context.Context, id int) error {
	found, err := deleteRow(r.db.WithContext(ctx), &models.ProjectRow{}, id)
	if err != nil {
		return fault(errs.KindDeleteFailed, entityProject, err)
	}
	if !found {
		return errs.NewNotFound(entityProject, id)
	}
	return nil
}

func (r *ProjectRepo) existing(ctx context.Context, id int) (*models.Project, error) {
	project, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, errs.NewNotFound(entityProject, id)
	}
	return project, nil
}

func projectChanges(p *schema.ProjectPatch) map[string]interface{} {
	changes := make(map[string]interface{})
	if p.Title != nil {
		changes["title"] = *p.Title
	}
	if p.Description != nil {
		changes["description"] = *p.Description
	}
	if p.TechStack != nil {
		changes["tech_stack"] = models.EncodeTechStack(*p.TechStack)
	}
	if p.ImageURL != nil {
		changes["image_url"] = *p.ImageURL
	}
	if p.Category != nil {
		changes["category"] = *p.Category
	}
	optional := map[string]schema.OptionalString{
		"github_url":        p.GithubURL,
		"live_url":          p.LiveURL,
		"problem_statement": p.ProblemStatement,
		"motivation":        p.Motivation,
		"system_design":     p.SystemDesign,
		"challenges":        p.Challenges,
		"learnings":         p.Learnings,
	}
	for column, value := range optional {
		switch {
		case !value.Present:
		case value.Clears():
			changes[column] = nil
		default:
			changes[column] = *value.Value
		}
	}
	return changes
}

func blankToNil(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
