package models

import (
	"time"

	"github.com/uptrace/bun"
)

type AdminUser struct {
	bun.BaseModel `bun:"table:admin_users" json:"-" bson:"-"`

	ID           string    `json:"id" bson:"_id" bun:"id,pk"`
	Username     string    `json:"username" bson:"username" bun:"username"`
	PasswordHash string    `json:"-" bson:"password_hash" bun:"password_hash"`
	DisplayName  string    `json:"display_name" bson:"display_name" bun:"display_name"`
	Role         string    `json:"role" bson:"role" bun:"role"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at" bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token string    `json:"token"`
	Admin AdminUser `json:"admin"`
}

type DashboardStats struct {
	Properties int64 `json:"properties"`
	Messages   int64 `json:"messages"`
	Unread     int64 `json:"unread"`
}
