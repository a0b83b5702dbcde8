package store

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/jooyongc/goldensnow360-dubai/models"
	"github.com/jooyongc/goldensnow360-dubai/utils"
)

const catalogCacheKey = "catalog:properties"

// CachedProperties keeps the full catalog snapshot in the cache and drops it
// on every write. Cache failures are logged and fall through to next.
type CachedProperties struct {
	next   PropertyRepository
	cache  utils.Cache
	ttl    time.Duration
	logger *zap.Logger
}

func NewCachedProperties(next PropertyRepository, cache utils.Cache, ttl time.Duration, logger *zap.Logger) *CachedProperties {
	return &CachedProperties{next: next, cache: cache, ttl: ttl, logger: logger}
}

func (r *CachedProperties) List(ctx context.Context) ([]models.Property, error) {
	var cached []models.Property
	found, err := r.cache.GetCached(ctx, catalogCacheKey, &cached)
	if err != nil {
		r.logger.Warn("catalog cache read failed", zap.Error(err))
	} else if found {
		return cached, nil
	}

	properties, err := r.next.List(ctx)
	if err != nil {
		return nil, err
	}
	if err := r.cache.SetCached(ctx, catalogCacheKey, properties, r.ttl); err != nil {
		r.logger.Warn("catalog cache write failed", zap.Error(err))
	}
	return properties, nil
}

func (r *CachedProperties) Get(ctx context.Context, id models.PropertyID) (models.Property, error) {
	return r.next.Get(ctx, id)
}

func (r *CachedProperties) Create(ctx context.Context, p *models.Property) error {
	if err := r.next.Create(ctx, p); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

func (r *CachedProperties) Update(ctx context.Context, p *models.Property) error {
	if err := r.next.Update(ctx, p); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

func (r *CachedProperties) Delete(ctx context.Context, id models.PropertyID) error {
	if err := r.next.Delete(ctx, id); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

func (r *CachedProperties) Count(ctx context.Context) (int64, error) {
	return r.next.Count(ctx)
}

func (r *CachedProperties) invalidate(ctx context.Context) {
	if err := r.cache.Invalidate(ctx, catalogCacheKey); err != nil {
		r.logger.Warn("catalog cache invalidation failed", zap.Error(err))
	}
}
