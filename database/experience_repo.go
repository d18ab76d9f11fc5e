package database

import (
	"context"

	"gorm.io/gorm"

	"github.com/abdhesh369/my-portfolio/cache"
	"github.com/abdhesh369/my-portfolio/errs"
	"github.com/abdhesh369/my-portfolio/models"
	"github.com/abdhesh369/my-portfolio/schema"
)

// ExperienceRepo caches List like SkillRepo.
type ExperienceRepo struct {
	db    *gorm.DB
	cache *cache.Snapshot[models.Experience]
}

func NewExperienceRepo(db *gorm.DB, snapshot *cache.Snapshot[models.Experience]) *ExperienceRepo {
	if snapshot == nil {
		snapshot = cache.New[models.Experience](cache.DefaultTTL)
	}
	return &ExperienceRepo{db: db, cache: snapshot}
}

func (r *ExperienceRepo) List(ctx context.Context) ([]models.Experience, error) {
	return r.cache.Load(ctx, r.fetchAll)
}

func (r *ExperienceRepo) fetchAll(ctx context.Context) ([]models.Experience, error) {
	var rows []models.ExperienceRow
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, fault(errs.KindFetchFailed, entityExperience, err)
	}

	experiences := make([]models.Experience, 0, len(rows))
	for _, row := range rows {
		experiences = append(experiences, models.NormalizeExperience(row))
	}
	return experiences, nil
}

func (r *ExperienceRepo) GetByID(ctx context.Context, id int) (*models.Experience, error) {
	var row models.ExperienceRow
	found, err := findRow(r.db.WithContext(ctx), &row, id)
	if err != nil {
		return nil, fault(errs.KindFetchFailed, entityExperience, err)
	}
	if !found {
		return nil, nil
	}
	experience := models.NormalizeExperience(row)
	return &experience, nil
}

func (r *ExperienceRepo) Create(ctx context.Context, in *schema.ExperienceInsert) (*models.Experience, error) {
	if in == nil {
		return nil, missingPayload(entityExperience)
	}
	if err := revalidate(entityExperience, in); err != nil {
		return nil, err
	}

	kind := models.DefaultExperienceType
	if in.Type != nil && *in.Type != "" {
		kind = *in.Type
	}
	row := models.ExperienceRow{
		Role:         in.Role,
		Organization: in.Organization,
		Period:       in.Period,
		Description:  in.Description,
		Type:         &kind,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, fault(errs.KindCreateFailed, entityExperience, err)
	}
	r.cache.Invalidate()

	experience := models.NormalizeExperience(row)
	return &experience, nil
}

// Update applies the supplied fields. An empty type resets it to the default.
func (r *ExperienceRepo) Update(ctx context.Context, id int, patch *schema.ExperiencePatch) (*models.Experience, error) {
	if patch == nil || patch.IsEmpty() {
		return r.existing(ctx, id)
	}
	if err := revalidate(entityExperience, patch); err != nil {
		return nil, err
	}

	changes := make(map[string]interface{})
	if patch.Role != nil {
		changes["role"] = *patch.Role
	}
	if patch.Organization != nil {
		changes["organization"] = *patch.Organization
	}
	if patch.Period != nil {
		changes["period"] = *patch.Period
	}
	if patch.Description != nil {
		changes["description"] = *patch.Description
	}
	if patch.Type != nil {
		kind := *patch.Type
		if kind == "" {
			kind = models.DefaultExperienceType
		}
		changes["type"] = kind
	}

	found, err := applyUpdates(r.db.WithContext(ctx), &models.ExperienceRow{}, id, changes)
	if err != nil {
		return nil, fault(errs.KindUpdateFailed, entityExperience, err)
	}
	if !found {
		return nil, errs.NewNotFound(entityExperience, id)
	}
	r.cache.Invalidate()

	return r.existing(ctx, id)
}

func (r *ExperienceRepo) Delete(ctx context.Context, id int) error {
	found, err := deleteRow(r.db.WithContext(ctx), &models.ExperienceRow{}, id)
	if err != nil {
		return fault(errs.KindDeleteFailed, entityExperience, err)
	}
	if !found {
		return errs.NewNotFound(entityExperience, id)
	}
	r.cache.Invalidate()
	return nil
}

func (r *ExperienceRepo) existing(ctx context.Context, id int) (*models.Experience, error) {
	experience, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if experience == nil {
		return nil, errs.NewNotFound(entityExperience, id)
	}
	return experience, nil
}
