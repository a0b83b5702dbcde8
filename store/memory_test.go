package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jooyongc/goldensnow360-dubai/models"
)

func TestDemoMemory_ListNewestFirst(t *testing.T) {
	s := NewDemoMemory()
	list, err := s.Properties.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 5)

	var ids []models.PropertyID
	for _, p := range list {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []models.PropertyID{"5", "4", "3", "2", "1"}, ids)
}

func TestMemoryProperties_CRUD(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()
	repo := s.Properties

	p := models.Property{Title: "Creek Harbour Loft", Location: "Dubai Creek Harbour", Area: "Creek"}
	require.NoError(t, repo.Create(ctx, &p))
	assert.NotEmpty(t, p.ID)
	assert.False(t, p.CreatedAt.IsZero())

	got, err := repo.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Creek Harbour Loft", got.Title)

	created := got.CreatedAt
	got.Title = "Creek Harbour Penthouse"
	got.CreatedAt = time.Time{}
	require.NoError(t, repo.Update(ctx, &got))
	assert.Equal(t, created, got.CreatedAt)

	got, err = repo.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Creek Harbour Penthouse", got.Title)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	require.NoError(t, repo.Delete(ctx, p.ID))
	_, err = repo.Get(ctx, p.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, p.ID), ErrNotFound)

	missing := models.Property{ID: "nope"}
	assert.ErrorIs(t, repo.Update(ctx, &missing), ErrNotFound)
}

func TestMemoryMessages(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()
	repo := s.Messages

	first := models.ContactMessage{Name: "Aisha", Email: "aisha@example.com", Message: "Viewing please"}
	require.NoError(t, repo.Create(ctx, &first))
	second := models.ContactMessage{Name: "Omar", Email: "omar@example.com", Message: "Price?"}
	require.NoError(t, repo.Create(ctx, &second))

	unread, err := repo.CountUnread(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, unread)

	require.NoError(t, repo.MarkRead(ctx, first.ID))
	unread, err = repo.CountUnread(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, unread)
	assert.ErrorIs(t, repo.MarkRead(ctx, "missing"), ErrNotFound)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)

	require.NoError(t, repo.Delete(ctx, second.ID))
	total, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
}

func TestMemoryContent(t *testing.T) {
	ctx := context.Background()
	empty := NewMemory()
	_, err := empty.Content.Hero(ctx, "home")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = empty.Content.About(ctx)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = empty.Content.ContactInfo(ctx)
	assert.ErrorIs(t, err, ErrNotFound)

	demo := NewDemoMemory()
	hero, err := demo.Content.Hero(ctx, "home")
	require.NoError(t, err)
	assert.Equal(t, DemoHero().Title, hero.Title)

	about, err := demo.Content.About(ctx)
	require.NoError(t, err)
	assert.Len(t, about.Stats, 4)

	about.Stats = about.Stats[:1]
	require.NoError(t, demo.Content.SaveAbout(ctx, &about))
	reloaded, err := demo.Content.About(ctx)
	require.NoError(t, err)
	assert.Len(t, reloaded.Stats, 1)
}

func TestMemorySettings(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()
	require.NoError(t, s.Content.UpsertSettings(ctx, []models.SiteSetting{
		{Key: models.SettingFooterCopyright, Value: "GS360", Type: "text"},
	}))
	require.NoError(t, s.Content.UpsertSettings(ctx, []models.SiteSetting{
		{Key: models.SettingFooterCopyright, Value: "Golden Snow 360", Type: "text"},
	}))

	got, err := s.Content.Settings(ctx, models.SettingFooterCopyright, models.SettingFooterAreas)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{models.SettingFooterCopyright: "Golden Snow 360"}, got)
}

func TestEnsureAdmin(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()

	created, err := EnsureAdmin(ctx, s.Admins, "admin", "dubai360")
	require.NoError(t, err)
	assert.True(t, created)

	created, err = EnsureAdmin(ctx, s.Admins, "ADMIN", "other")
	require.NoError(t, err)
	assert.False(t, created)

	admin, err := s.Admins.FindByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.NotEqual(t, "dubai360", admin.PasswordHash)
	assert.Equal(t, "admin", admin.Role)

	dup := models.AdminUser{Username: "Admin"}
	assert.ErrorIs(t, s.Admins.Create(ctx, &dup), ErrConflict)

	created, err = EnsureAdmin(ctx, s.Admins, "", "")
	require.NoError(t, err)
	assert.False(t, created)
}
