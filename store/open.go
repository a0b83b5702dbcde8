package store

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/jooyongc/goldensnow360-dubai/config"
	"github.com/jooyongc/goldensnow360-dubai/models"
	"github.com/jooyongc/goldensnow360-dubai/utils"
)

// Open connects the configured driver. The memory driver is seeded with the
// demo catalog.
func Open(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Store, error) {
	switch cfg.Store.Driver {
	case config.DriverMemory:
		logger.Info("using in-memory demo store")
		return NewDemoMemory(), nil
	case config.DriverMongo:
		client, err := config.ConnectDB(ctx, cfg.Store.Mongo)
		if err != nil {
			return nil, err
		}
		logger.Info("connected to MongoDB", zap.String("database", cfg.Store.Mongo.Database))
		return NewMongo(cfg, client), nil
	case config.DriverPostgres:
		db, err := config.ConnectPostgres(ctx, cfg.Store.Postgres)
		if err != nil {
			return nil, err
		}
		if err := Migrate(ctx, db); err != nil {
			_ = db.Close()
			return nil, err
		}
		logger.Info("connected to Postgres")
		return NewPostgres(db), nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}

// WithCache wraps the property repository with the catalog cache.
func (s *Store) WithCache(cache utils.Cache, cfg *config.Config, logger *zap.Logger) {
	s.Properties = NewCachedProperties(s.Properties, cache, cfg.CacheTTL(), logger)
}

// EnsureAdmin creates the bootstrap admin account when it does not exist yet.
// Empty credentials are a no-op.
func EnsureAdmin(ctx context.Context, admins AdminRepository, username, password string) (bool, error) {
	if username == "" || password == "" {
		return false, nil
	}
	_, err := admins.FindByUsername(ctx, username)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return false, err
	}
	hash, err := utils.HashPassword(password)
	if err != nil {
		return false, fmt.Errorf("hash admin password: %w", err)
	}
	admin := models.AdminUser{Username: username, PasswordHash: hash, DisplayName: username, Role: "admin"}
	if err := admins.Create(ctx, &admin); err != nil {
		return false, err
	}
	return true, nil
}
