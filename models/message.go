package models

import (
	"time"

	"github.com/uptrace/bun"
)

type ContactMessage struct {
	bun.BaseModel `bun:"table:contact_submissions" json:"-" bson:"-"`

	ID        string    `bson:"_id" json:"id" bun:"id,pk"`
	Name      string    `bson:"name" json:"name" bun:"name"`
	Email     string    `bson:"email" json:"email" bun:"email"`
	Phone     string    `bson:"phone,omitempty" json:"phone,omitempty" bun:"phone"`
	Subject   string    `bson:"subject,omitempty" json:"subject,omitempty" bun:"subject"`
	Message   string    `bson:"message" json:"message" bun:"message"`
	IsRead    bool      `bson:"is_read" json:"is_read" bun:"is_read"`
	CreatedAt time.Time `bson:"created_at" json:"created_at" bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

type ContactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message" validate:"required"`
}
