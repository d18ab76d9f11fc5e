package database

import (
	"context"

	"gorm.io/gorm"

	"github.com/abdhesh369/my-portfolio/cache"
	"github.com/abdhesh369/my-portfolio/errs"
	"github.com/abdhesh369/my-portfolio/models"
	"github.com/abdhesh369/my-portfolio/schema"
)

// SkillRepo serves list reads from a snapshot that every write invalidates.
type SkillRepo struct {
	db    *gorm.DB
	cache *cache.Snapshot[models.Skill]
}

func NewSkillRepo(db *gorm.DB, snapshot *cache.Snapshot[models.Skill]) *SkillRepo {
	if snapshot == nil {
		snapshot = cache.New[models.Skill](cache.DefaultTTL)
	}
	return &SkillRepo{db: db, cache: snapshot}
}

func (r *SkillRepo) List(ctx context.Context) ([]models.Skill, error) {
	return r.cache.Load(ctx, r.fetchAll)
}

func (r *SkillRepo) fetchAll(ctx context.Context) ([]models.Skill, error) {
	var rows []models.SkillRow
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, fault(errs.KindFetchFailed, entitySkill, err)
	}

	skills := make([]models.Skill, 0, len(rows))
	for _, row := range rows {
		skills = append(skills, models.NormalizeSkill(row))
	}
	return skills, nil
}

func (r *SkillRepo) GetByID(ctx context.Context, id int) (*models.Skill, error) {
	var row models.SkillRow
	found, err := findRow(r.db.WithContext(ctx), &row, id)
	if err != nil {
		return nil, fault(errs.KindFetchFailed, entitySkill, err)
	}
	if !found {
		return nil, nil
	}
	skill := models.NormalizeSkill(row)
	return &skill, nil
}

func (r *SkillRepo) Create(ctx context.Context, in *schema.SkillInsert) (*models.Skill, error) {
	if in == nil {
		return nil, missingPayload(entitySkill)
	}
	if err := revalidate(entitySkill, in); err != nil {
		return nil, err
	}

	icon := models.DefaultSkillIcon
	if in.Icon != nil && *in.Icon != "" {
		icon = *in.Icon
	}
	row := models.SkillRow{Name: in.Name, Category: in.Category, Icon: &icon}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, fault(errs.KindCreateFailed, entitySkill, err)
	}
	r.cache.Invalidate()

	skill := models.NormalizeSkill(row)
	return &skill, nil
}

// Update applies the supplied fields. An empty icon resets it to the default.
func (r *SkillRepo) Update(ctx context.Context, id int, patch *schema.SkillPatch) (*models.Skill, error) {
	if patch == nil || patch.IsEmpty() {
		return r.existing(ctx, id)
	}
	if err := revalidate(entitySkill, patch); err != nil {
		return nil, err
	}

	changes := make(map[string]interface{})
	if patch.Name != nil {
		changes["name"] = *patch.Name
	}
	if patch.Category != nil {
		changes["category"] = *patch.Category
	}
	if patch.Icon != nil {
		icon := *patch.Icon
		if icon == "" {
			icon = models.DefaultSkillIcon
		}
		changes["icon"] = icon
	}

	found, err := applyUpdates(r.db.WithContext(ctx), &models.SkillRow{}, id, changes)
	if err != nil {
		return nil, fault(errs.KindUpdateFailed, entitySkill, err)
	}
	if !found {
		return nil, errs.NewNotFound(entitySkill, id)
	}
	r.cache.Invalidate()

	return r.existing(ctx, id)
}

func (r *SkillRepo) Delete(ctx context.Context, id int) error {
	found, err := deleteRow(r.db.WithContext(ctx), &models.SkillRow{}, id)
	if err != nil {
		return fault(errs.KindDeleteFailed, entitySkill, err)
	}
	if !found {
		return errs.NewNotFound(entitySkill, id)
	}
	r.cache.Invalidate()
	return nil
}

func (r *SkillRepo) existing(ctx context.Context, id int) (*models.Skill, error) {
	skill, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if skill == nil {
		return nil, errs.NewNotFound(entitySkill, id)
	}
	return skill, nil
}
