// Package store holds the repositories behind the site and its three drivers:
// an in-memory demo store, MongoDB and Postgres (bun).
package store

import (
	"context"
	"errors"

	"github.com/jooyongc/goldensnow360-dubai/models"
)

var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("already exists")
)

// PropertyRepository is the catalog source. List returns the whole catalog,
// newest first.
type PropertyRepository interface {
	List(ctx context.Context) ([]models.Property, error)
	Get(ctx context.Context, id models.PropertyID) (models.Property, error)
	Create(ctx context.Context, p *models.Property) error
	Update(ctx context.Context, p *models.Property) error
	Delete(ctx context.Context, id models.PropertyID) error
	Count(ctx context.Context) (int64, error)
}

type MessageRepository interface {
	List(ctx context.Context) ([]models.ContactMessage, error)
	Create(ctx context.Context, m *models.ContactMessage) error
	MarkRead(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
	CountUnread(ctx context.Context) (int64, error)
}

// ContentRepository serves the editable page content. Getters return
// ErrNotFound when nothing active is stored.
type ContentRepository interface {
	Hero(ctx context.Context, page string) (models.HeroSection, error)
	SaveHero(ctx context.Context, h *models.HeroSection) error
	About(ctx context.Context) (models.AboutContent, error)
	SaveAbout(ctx context.Context, a *models.AboutContent) error
	ContactInfo(ctx context.Context) (models.ContactInfo, error)
	SaveContactInfo(ctx context.Context, ci *models.ContactInfo) error
	Settings(ctx context.Context, keys ...string) (map[string]string, error)
	UpsertSettings(ctx context.Context, settings []models.SiteSetting) error
}

type AdminRepository interface {
	FindByUsername(ctx context.Context, username string) (models.AdminUser, error)
	FindByID(ctx context.Context, id string) (models.AdminUser, error)
	Create(ctx context.Context, a *models.AdminUser) error
}

// Store bundles one driver's repositories.
type Store struct {
	Driver     string
	Properties PropertyRepository
	Messages   MessageRepository
	Content    ContentRepository
	Admins     AdminRepository

	close func(context.Context) error
}

func (s *Store) Close(ctx context.Context) error {
	if s.close == nil {
		return nil
	}
	return s.close(ctx)
}
