package database

import (
	"errors"
	"sort"

	"gorm.io/gorm"

	"github.com/abdhesh369/my-portfolio/errs"
	"github.com/abdhesh369/my-portfolio/schema"
)

const (
	entityProject    = "project"
	entitySkill      = "skill"
	entityExperience = "experience"
	entityMessage    = "message"
)

func fault(kind errs.Kind, entity string, err error) error {
	return errs.NewStorageError(kind, entity, err)
}

func missingPayload(entity string) error {
	return fault(errs.KindValidation, entity, errs.NewValidationError(errs.FieldError{Field: schema.BodyField, Message: "cannot be blank"}))
}

// revalidate repeats the payload checks at the storage boundary.
func revalidate(entity string, payload schema.Validatable) error {
	if err := schema.Check(payload); err != nil {
		return fault(errs.KindValidation, entity, err)
	}
	return nil
}

// findRow loads one row by primary key. A missing row is (false, nil).
func findRow(db *gorm.DB, dst interface{}, id int) (bool, error) {
	err := db.Where("id = ?", id).Take(dst).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// applyUpdates writes a column map to the row with id and reports whether
// the row exists.
func applyUpdates(db *gorm.DB, model interface{}, id int, changes map[string]interface{}) (bool, error) {
	result := db.Model(model).Where("id = ?", id).Updates(changes)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func deleteRow(db *gorm.DB, model interface{}, id int) (bool, error) {
	result := db.Where("id = ?", id).Delete(model)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func sortFieldErrors(fieldErrs []errs.FieldError) []errs.FieldError {
	sort.Slice(fieldErrs, func(i, j int) bool { return fieldErrs[i].Field < fieldErrs[j].Field })
	return fieldErrs
}
