package models

// DefaultSkillIcon is the generic icon used when a skill names none.
const DefaultSkillIcon = "Code"

type SkillRow struct {
	ID       int     `db:"id" gorm:"primaryKey;autoIncrement"`
	Name     string  `db:"name" gorm:"type:text;not null"`
	Category string  `db:"category" gorm:"type:text;not null"`
	Icon     *string `db:"icon" gorm:"type:text;not null;default:'Code'"`
}

func (SkillRow) TableName() string {
	return "skills"
}

type Skill struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Icon     string `json:"icon"`
}

func NormalizeSkill(row SkillRow) Skill {
	return Skill{
		ID:       row.ID,
		Name:     row.Name,
		Category: row.Category,
		Icon:     valueOr(row.Icon, DefaultSkillIcon),
	}
}
