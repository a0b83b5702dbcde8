package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/jooyongc/goldensnow360-dubai/config"
	"github.com/jooyongc/goldensnow360-dubai/models"
)

// NewPostgres builds the repositories on a bun handle opened by
// config.ConnectPostgres. Ids are generated client side as UUID strings.
func NewPostgres(db *bun.DB) *Store {
	return &Store{
		Driver:     config.DriverPostgres,
		Properties: &pgProperties{db},
		Messages:   &pgMessages{db},
		Content:    &pgContent{db},
		Admins:     &pgAdmins{db},
		close:      func(context.Context) error { return db.Close() },
	}
}

// Migrate creates any missing table of the site schema.
func Migrate(ctx context.Context, db *bun.DB) error {
	for _, model := range []interface{}{
		(*models.Property)(nil),
		(*models.ContactMessage)(nil),
		(*models.HeroSection)(nil),
		(*models.AboutContent)(nil),
		(*models.AboutStat)(nil),
		(*models.ContactInfo)(nil),
		(*models.SiteSetting)(nil),
		(*models.AdminUser)(nil),
	} {
		if _, err := db.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
			return fmt.Errorf("create table: %w", err)
		}
	}
	return nil
}

func pgErr(op string, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}

func affected(res sql.Result, op string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

type pgProperties struct{ db *bun.DB }

func (r *pgProperties) List(ctx context.Context) ([]models.Property, error) {
	properties := []models.Property{}
	err := r.db.NewSelect().Model(&properties).Order("created_at DESC").Scan(ctx)
	if err != nil {
		return nil, pgErr("select properties", err)
	}
	return properties, nil
}

func (r *pgProperties) Get(ctx context.Context, id models.PropertyID) (models.Property, error) {
	var property models.Property
	err := r.db.NewSelect().Model(&property).Where("id = ?", id.String()).Limit(1).Scan(ctx)
	if err != nil {
		return models.Property{}, pgErr("select property", err)
	}
	return property, nil
}

func (r *pgProperties) Create(ctx context.Context, p *models.Property) error {
	if p.ID == "" {
		p.ID = models.PropertyID(uuid.NewString())
	}
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now
	if _, err := r.db.NewInsert().Model(p).Exec(ctx); err != nil {
		return pgErr("insert property", err)
	}
	return nil
}

func (r *pgProperties) Update(ctx context.Context, p *models.Property) error {
	p.UpdatedAt = time.Now()
	res, err := r.db.NewUpdate().Model(p).ExcludeColumn("created_at").WherePK().Exec(ctx)
	if err != nil {
		return pgErr("update property", err)
	}
	if err := affected(res, "update property"); err != nil {
		return err
	}
	if err := r.db.NewSelect().Model(p).WherePK().Column("created_at").Scan(ctx); err != nil {
		return pgErr("reload property", err)
	}
	return nil
}

func (r *pgProperties) Delete(ctx context.Context, id models.PropertyID) error {
	res, err := r.db.NewDelete().Model((*models.Property)(nil)).Where("id = ?", id.String()).Exec(ctx)
	if err != nil {
		return pgErr("delete property", err)
	}
	return affected(res, "delete property")
}

func (r *pgProperties) Count(ctx context.Context) (int64, error) {
	n, err := r.db.NewSelect().Model((*models.Property)(nil)).Count(ctx)
	if err != nil {
		return 0, pgErr("count properties", err)
	}
	return int64(n), nil
}

type pgMessages struct{ db *bun.DB }

func (r *pgMessages) List(ctx context.Context) ([]models.ContactMessage, error) {
	messages := []models.ContactMessage{}
	err := r.db.NewSelect().Model(&messages).Order("created_at DESC").Scan(ctx)
	if err != nil {
		return nil, pgErr("select messages", err)
	}
	return messages, nil
}

func (r *pgMessages) Create(ctx context.Context, m *models.ContactMessage) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	m.CreatedAt = time.Now()
	if _, err := r.db.NewInsert().Model(m).Exec(ctx); err != nil {
		return pgErr("insert message", err)
	}
	return nil
}

func (r *pgMessages) MarkRead(ctx context.Context, id string) error {
	res, err := r.db.NewUpdate().Model((*models.ContactMessage)(nil)).
		Set("is_read = ?", true).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return pgErr("mark message read", err)
	}
	return affected(res, "mark message read")
}

func (r *pgMessages) Delete(ctx context.Context, id string) error {
	res, err := r.db.NewDelete().Model((*models.ContactMessage)(nil)).Where("id = ?", id).Exec(ctx)
	if err != nil {
		return pgErr("delete message", err)
	}
	return affected(res, "delete message")
}

func (r *pgMessages) Count(ctx context.Context) (int64, error) {
	n, err := r.db.NewSelect().Model((*models.ContactMessage)(nil)).Count(ctx)
	if err != nil {
		return 0, pgErr("count messages", err)
	}
	return int64(n), nil
}

func (r *pgMessages) CountUnread(ctx context.Context) (int64, error) {
	n, err := r.db.NewSelect().Model((*models.ContactMessage)(nil)).Where("is_read = ?", false).Count(ctx)
	if err != nil {
		return 0, pgErr("count unread messages", err)
	}
	return int64(n), nil
}

type pgContent struct{ db *bun.DB }

func (r *pgContent) Hero(ctx context.Context, page string) (models.HeroSection, error) {
	var hero models.HeroSection
	err := r.db.NewSelect().Model(&hero).
		Where("page = ?", page).
		Where("is_active = ?", true).
		Limit(1).
		Scan(ctx)
	if err != nil {
		return models.HeroSection{}, pgErr("select hero", err)
	}
	return hero, nil
}

func (r *pgContent) SaveHero(ctx context.Context, h *models.HeroSection) error {
	if h.ID == "" {
		h.ID = uuid.NewString()
	}
	h.UpdatedAt = time.Now()
	if _, err := r.db.NewInsert().Model(h).On("CONFLICT (id) DO UPDATE").Exec(ctx); err != nil {
		return pgErr("save hero", err)
	}
	return nil
}

func (r *pgContent) About(ctx context.Context) (models.AboutContent, error) {
	var about models.AboutContent
	err := r.db.NewSelect().Model(&about).Where("is_active = ?", true).Limit(1).Scan(ctx)
	if err != nil {
		return models.AboutContent{}, pgErr("select about", err)
	}
	about.Stats = []models.AboutStat{}
	if err := r.db.NewSelect().Model(&about.Stats).Order("sort_order").Scan(ctx); err != nil {
		return models.AboutContent{}, pgErr("select about stats", err)
	}
	return about, nil
}

// SaveAbout upserts the about row and replaces the stats table.
func (r *pgContent) SaveAbout(ctx context.Context, a *models.AboutContent) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	a.UpdatedAt = time.Now()
	if _, err := r.db.NewInsert().Model(a).On("CONFLICT (id) DO UPDATE").Exec(ctx); err != nil {
		return pgErr("save about", err)
	}
	if _, err := r.db.NewDelete().Model((*models.AboutStat)(nil)).Where("TRUE").Exec(ctx); err != nil {
		return pgErr("clear about stats", err)
	}
	if len(a.Stats) == 0 {
		return nil
	}
	for i := range a.Stats {
		if a.Stats[i].ID == "" {
			a.Stats[i].ID = uuid.NewString()
		}
	}
	if _, err := r.db.NewInsert().Model(&a.Stats).Exec(ctx); err != nil {
		return pgErr("insert about stats", err)
	}
	return nil
}

func (r *pgContent) ContactInfo(ctx context.Context) (models.ContactInfo, error) {
	var info models.ContactInfo
	err := r.db.NewSelect().Model(&info).Where("is_active = ?", true).Limit(1).Scan(ctx)
	if err != nil {
		return models.ContactInfo{}, pgErr("select contact info", err)
	}
	return info, nil
}

func (r *pgContent) SaveContactInfo(ctx context.Context, ci *models.ContactInfo) error {
	if ci.ID == "" {
		ci.ID = uuid.NewString()
	}
	ci.UpdatedAt = time.Now()
	if _, err := r.db.NewInsert().Model(ci).On("CONFLICT (id) DO UPDATE").Exec(ctx); err != nil {
		return pgErr("save contact info", err)
	}
	return nil
}

func (r *pgContent) Settings(ctx context.Context, keys ...string) (map[string]string, error) {
	out := make(map[string]string, len(keys))
	if len(keys) == 0 {
		return out, nil
	}
	var rows []models.SiteSetting
	if err := r.db.NewSelect().Model(&rows).Where("key IN (?)", bun.In(keys)).Scan(ctx); err != nil {
		return nil, pgErr("select settings", err)
	}
	for _, s := range rows {
		out[s.Key] = s.Value
	}
	return out, nil
}

func (r *pgContent) UpsertSettings(ctx context.Context, settings []models.SiteSetting) error {
	if len(settings) == 0 {
		return nil
	}
	now := time.Now()
	rows := make([]models.SiteSetting, len(settings))
	for i, s := range settings {
		s.UpdatedAt = now
		rows[i] = s
	}
	if _, err := r.db.NewInsert().Model(&rows).On("CONFLICT (key) DO UPDATE").Exec(ctx); err != nil {
		return pgErr("upsert settings", err)
	}
	return nil
}

type pgAdmins struct{ db *bun.DB }

func (r *pgAdmins) FindByUsername(ctx context.Context, username string) (models.AdminUser, error) {
	var admin models.AdminUser
	err := r.db.NewSelect().Model(&admin).Where("lower(username) = ?", strings.ToLower(username)).Limit(1).Scan(ctx)
	if err != nil {
		return models.AdminUser{}, pgErr("select admin", err)
	}
	return admin, nil
}

func (r *pgAdmins) FindByID(ctx context.Context, id string) (models.AdminUser, error) {
	var admin models.AdminUser
	err := r.db.NewSelect().Model(&admin).Where("id = ?", id).Limit(1).Scan(ctx)
	if err != nil {
		return models.AdminUser{}, pgErr("select admin", err)
	}
	return admin, nil
}

func (r *pgAdmins) Create(ctx context.Context, a *models.AdminUser) error {
	exists, err := r.db.NewSelect().Model((*models.AdminUser)(nil)).
		Where("lower(username) = ?", strings.ToLower(a.Username)).
		Exists(ctx)
	if err != nil {
		return pgErr("check admin", err)
	}
	if exists {
		return ErrConflict
	}
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.Role == "" {
		a.Role = "admin"
	}
	a.CreatedAt = time.Now()
	if _, err := r.db.NewInsert().Model(a).Exec(ctx); err != nil {
		return pgErr("insert admin", err)
	}
	return nil
}
