package models

// DefaultExperienceType is used when an entry does not say whether it is
// education or work.
const DefaultExperienceType = "Experience"

type ExperienceRow struct {
	ID           int     `db:"id" gorm:"primaryKey;autoIncrement"`
	Role         string  `db:"role" gorm:"type:text;not null"`
	Organization string  `db:"organization" gorm:"type:text;not null"`
	Period       string  `db:"period" gorm:"type:text;not null"`
	Description  string  `db:"description" gorm:"type:text;not null"`
	Type         *string `db:"type" gorm:"type:text;not null;default:'Experience'"`
}

func (ExperienceRow) TableName() string {
	return "experiences"
}

type Experience struct {
	ID           int    `json:"id"`
	Role         string `json:"role"`
	Organization string `json:"organization"`
	Period       string `json:"period"`
	Description  string `json:"description"`
	Type         string `json:"type"`
}

func NormalizeExperience(row ExperienceRow) Experience {
	return Experience{
		ID:           row.ID,
		Role:         row.Role,
		Organization: row.Organization,
		Period:       row.Period,
		Description:  row.Description,
		Type:         valueOr(row.Type, DefaultExperienceType),
	}
}
