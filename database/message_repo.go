package database

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"gorm.io/gorm"

	"github.com/abdhesh369/my-portfolio/errs"
	"github.com/abdhesh369/my-portfolio/models"
	"github.com/abdhesh369/my-portfolio/schema"
)

// MessageRepo stores contact-form submissions. Messages are never updated.
type MessageRepo struct {
	db  *gorm.DB
	now func() time.Time
}

func NewMessageRepo(db *gorm.DB, now func() time.Time) *MessageRepo {
	if now == nil {
		now = time.Now
	}
	return &MessageRepo{db: db, now: now}
}

func (r *MessageRepo) List(ctx context.Context) ([]models.Message, error) {
	var rows []models.MessageRow
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, fault(errs.KindFetchFailed, entityMessage, err)
	}

	messages := make([]models.Message, 0, len(rows))
	for _, row := range rows {
		messages = append(messages, models.NormalizeMessage(row))
	}
	return messages, nil
}

func (r *MessageRepo) GetByID(ctx context.Context, id int) (*models.Message, error) {
	var row models.MessageRow
	found, err := findRow(r.db.WithContext(ctx), &row, id)
	if err != nil {
		return nil, fault(errs.KindFetchFailed, entityMessage, err)
	}
	if !found {
		return nil, nil
	}
	message := models.NormalizeMessage(row)
	return &message, nil
}

// Create trims every field, lower-cases the email and cuts each field to its
// maximum length before stamping createdAt.
func (r *MessageRepo) Create(ctx context.Context, in *schema.MessageInsert) (*models.Message, error) {
	if in == nil {
		return nil, missingPayload(entityMessage)
	}

	subject := ""
	if in.Subject != nil {
		subject = truncate(strings.TrimSpace(*in.Subject), schema.MaxSubjectLen)
	}
	row := models.MessageRow{
		Name:      truncate(strings.TrimSpace(in.Name), schema.MaxSenderNameLen),
		Email:     truncate(strings.ToLower(strings.TrimSpace(in.Email)), schema.MaxEmailLen),
		Subject:   &subject,
		Message:   truncate(strings.TrimSpace(in.Message), schema.MaxMessageLen),
		CreatedAt: r.now().UTC(),
	}

	if row.Name == "" || row.Email == "" || row.Message == "" {
		var missing []errs.FieldError
		for field, value := range map[string]string{"name": row.Name, "email": row.Email, "message": row.Message} {
			if value == "" {
				missing = append(missing, errs.FieldError{Field: field, Message: "cannot be blank"})
			}
		}
		return nil, fault(errs.KindValidation, entityMessage, errs.NewValidationError(sortFieldErrors(missing)...))
	}

	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, fault(errs.KindCreateFailed, entityMessage, err)
	}

	message := models.NormalizeMessage(row)
	return &message, nil
}

func (r *MessageRepo) Delete(ctx context.Context, id int) error {
	found, err := deleteRow(r.db.WithContext(ctx), &models.MessageRow{}, id)
	if err != nil {
		return fault(errs.KindDeleteFailed, entityMessage, err)
	}
	if !found {
		return errs.NewNotFound(entityMessage, id)
	}
	return nil
}

// truncate cuts s to at most max characters.
func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max])
}
