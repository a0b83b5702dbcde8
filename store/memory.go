package store

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jooyongc/goldensnow360-dubai/models"
)

// memoryDB is the shared state behind the memory repositories.
type memoryDB struct {
	mu         sync.RWMutex
	properties map[models.PropertyID]models.Property
	messages   map[string]models.ContactMessage
	heroes     map[string]models.HeroSection
	about      *models.AboutContent
	contact    *models.ContactInfo
	settings   map[string]models.SiteSetting
	admins     map[string]models.AdminUser
	now        func() time.Time
}

// NewMemory returns an empty in-process store.
func NewMemory() *Store {
	db := &memoryDB{
		properties: map[models.PropertyID]models.Property{},
		messages:   map[string]models.ContactMessage{},
		heroes:     map[string]models.HeroSection{},
		settings:   map[string]models.SiteSetting{},
		admins:     map[string]models.AdminUser{},
		now:        time.Now,
	}
	return &Store{
		Driver:     "memory",
		Properties: &memoryProperties{db},
		Messages:   &memoryMessages{db},
		Content:    &memoryContent{db},
		Admins:     &memoryAdmins{db},
	}
}

// NewDemoMemory returns a memory store seeded with the demo catalog and page
// content.
func NewDemoMemory() *Store {
	s := NewMemory()
	db := s.Properties.(*memoryProperties).db
	for _, p := range DemoProperties() {
		db.properties[p.ID] = p
	}
	hero := DemoHero()
	db.heroes[hero.Page] = hero
	about := DemoAbout()
	db.about = &about
	contact := DemoContactInfo()
	db.contact = &contact
	return s
}

type memoryProperties struct{ db *memoryDB }

func (r *memoryProperties) List(ctx context.Context) ([]models.Property, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	out := make([]models.Property, 0, len(r.db.properties))
	for _, p := range r.db.properties {
		out = append(out, p)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (r *memoryProperties) Get(ctx context.Context, id models.PropertyID) (models.Property, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	p, ok := r.db.properties[id]
	if !ok {
		return models.Property{}, ErrNotFound
	}
	return p, nil
}

func (r *memoryProperties) Create(ctx context.Context, p *models.Property) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if p.ID == "" {
		p.ID = models.PropertyID(uuid.NewString())
	}
	now := r.db.now()
	p.CreatedAt = now
	p.UpdatedAt = now
	r.db.properties[p.ID] = *p
	return nil
}

func (r *memoryProperties) Update(ctx context.Context, p *models.Property) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	existing, ok := r.db.properties[p.ID]
	if !ok {
		return ErrNotFound
	}
	p.CreatedAt = existing.CreatedAt
	p.UpdatedAt = r.db.now()
	r.db.properties[p.ID] = *p
	return nil
}

func (r *memoryProperties) Delete(ctx context.Context, id models.PropertyID) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if _, ok := r.db.properties[id]; !ok {
		return ErrNotFound
	}
	delete(r.db.properties, id)
	return nil
}

func (r *memoryProperties) Count(ctx context.Context) (int64, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	return int64(len(r.db.properties)), nil
}

type memoryMessages struct{ db *memoryDB }

func (r *memoryMessages) List(ctx context.Context) ([]models.ContactMessage, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	out := make([]models.ContactMessage, 0, len(r.db.messages))
	for _, m := range r.db.messages {
		out = append(out, m)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (r *memoryMessages) Create(ctx context.Context, m *models.ContactMessage) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	m.CreatedAt = r.db.now()
	r.db.messages[m.ID] = *m
	return nil
}

func (r *memoryMessages) MarkRead(ctx context.Context, id string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	m, ok := r.db.messages[id]
	if !ok {
		return ErrNotFound
	}
	m.IsRead = true
	r.db.messages[id] = m
	return nil
}

func (r *memoryMessages) Delete(ctx context.Context, id string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if _, ok := r.db.messages[id]; !ok {
		return ErrNotFound
	}
	delete(r.db.messages, id)
	return nil
}

func (r *memoryMessages) Count(ctx context.Context) (int64, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	return int64(len(r.db.messages)), nil
}

func (r *memoryMessages) CountUnread(ctx context.Context) (int64, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	var n int64
	for _, m := range r.db.messages {
		if !m.IsRead {
			n++
		}
	}
	return n, nil
}

type memoryContent struct{ db *memoryDB }

func (r *memoryContent) Hero(ctx context.Context, page string) (models.HeroSection, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	h, ok := r.db.heroes[page]
	if !ok || !h.IsActive {
		return models.HeroSection{}, ErrNotFound
	}
	return h, nil
}

func (r *memoryContent) SaveHero(ctx context.Context, h *models.HeroSection) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if h.ID == "" {
		h.ID = uuid.NewString()
	}
	h.UpdatedAt = r.db.now()
	r.db.heroes[h.Page] = *h
	return nil
}

func (r *memoryContent) About(ctx context.Context) (models.AboutContent, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	if r.db.about == nil || !r.db.about.IsActive {
		return models.AboutContent{}, ErrNotFound
	}
	a := *r.db.about
	a.Stats = append([]models.AboutStat(nil), r.db.about.Stats...)
	return a, nil
}

func (r *memoryContent) SaveAbout(ctx context.Context, a *models.AboutContent) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	for i := range a.Stats {
		if a.Stats[i].ID == "" {
			a.Stats[i].ID = uuid.NewString()
		}
	}
	a.UpdatedAt = r.db.now()
	stored := *a
	stored.Stats = append([]models.AboutStat(nil), a.Stats...)
	r.db.about = &stored
	return nil
}

func (r *memoryContent) ContactInfo(ctx context.Context) (models.ContactInfo, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	if r.db.contact == nil || !r.db.contact.IsActive {
		return models.ContactInfo{}, ErrNotFound
	}
	return *r.db.contact, nil
}

func (r *memoryContent) SaveContactInfo(ctx context.Context, ci *models.ContactInfo) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if ci.ID == "" {
		ci.ID = uuid.NewString()
	}
	ci.UpdatedAt = r.db.now()
	stored := *ci
	r.db.contact = &stored
	return nil
}

func (r *memoryContent) Settings(ctx context.Context, keys ...string) (map[string]string, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	out := make(map[string]string, len(keys))
	for _, k := range keys {
		if s, ok := r.db.settings[k]; ok {
			out[k] = s.Value
		}
	}
	return out, nil
}

func (r *memoryContent) UpsertSettings(ctx context.Context, settings []models.SiteSetting) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	now := r.db.now()
	for _, s := range settings {
		s.UpdatedAt = now
		r.db.settings[s.Key] = s
	}
	return nil
}

type memoryAdmins struct{ db *memoryDB }

func (r *memoryAdmins) FindByUsername(ctx context.Context, username string) (models.AdminUser, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	for _, a := range r.db.admins {
		if strings.EqualFold(a.Username, username) {
			return a, nil
		}
	}
	return models.AdminUser{}, ErrNotFound
}

func (r *memoryAdmins) FindByID(ctx context.Context, id string) (models.AdminUser, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	a, ok := r.db.admins[id]
	if !ok {
		return models.AdminUser{}, ErrNotFound
	}
	return a, nil
}

func (r *memoryAdmins) Create(ctx context.Context, a *models.AdminUser) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, existing := range r.db.admins {
		if strings.EqualFold(existing.Username, a.Username) {
			return ErrConflict
		}
	}
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.Role == "" {
		a.Role = "admin"
	}
	a.CreatedAt = r.db.now()
	r.db.admins[a.ID] = *a
	return nil
}
