package models

import "time"

// MessageRow is a contact-form submission. Rows are append-only.
type MessageRow struct {
	ID        int       `db:"id" gorm:"primaryKey;autoIncrement"`
	Name      string    `db:"name" gorm:"type:text;not null"`
	Email     string    `db:"email" gorm:"type:text;not null"`
	Subject   *string   `db:"subject" gorm:"type:text;not null;default:''"`
	Message   string    `db:"message" gorm:"type:text;not null"`
	CreatedAt time.Time `db:"created_at" gorm:"column:created_at;not null;autoCreateTime:false"`
}

func (MessageRow) TableName() string {
	return "messages"
}

type Message struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

func NormalizeMessage(row MessageRow) Message {
	return Message{
		ID:        row.ID,
		Name:      row.Name,
		Email:     row.Email,
		Subject:   valueOr(row.Subject, ""),
		Message:   row.Message,
		CreatedAt: row.CreatedAt.UTC(),
	}
}
