package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/jooyongc/goldensnow360-dubai/catalog"
	"github.com/jooyongc/goldensnow360-dubai/events"
	"github.com/jooyongc/goldensnow360-dubai/models"
	"github.com/jooyongc/goldensnow360-dubai/store"
	"github.com/jooyongc/goldensnow360-dubai/utils"
)

// Deps are the collaborators shared by every controller.
type Deps struct {
	Store     *store.Store
	Publisher events.Publisher
	Issuer    *utils.TokenIssuer
	Renderer  catalog.Renderer
	Map       catalog.MapConfig
	Logger    *zap.Logger
}

type Handlers struct {
	Properties *PropertyController
	VRRoom     *VRRoomController
	Home       *HomeController
	Content    *ContentController
	Messages   *MessageController
	Auth       *AuthController
}

func New(d Deps) *Handlers {
	if d.Publisher == nil {
		d.Publisher = events.Nop{}
	}
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
	loader := NewCatalogLoader(d.Store.Properties, d.Logger)
	return &Handlers{
		Properties: NewPropertyController(d, loader),
		VRRoom:     NewVRRoomController(d, loader),
		Home:       NewHomeController(d, loader),
		Content:    NewContentController(d),
		Messages:   NewMessageController(d),
		Auth:       NewAuthController(d),
	}
}

func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CatalogLoader reads the catalog snapshot. When the backend cannot be read
// the demo catalog is served instead so public pages keep working.
type CatalogLoader struct {
	repo   store.PropertyRepository
	logger *zap.Logger
}

func NewCatalogLoader(repo store.PropertyRepository, logger *zap.Logger) *CatalogLoader {
	return &CatalogLoader{repo: repo, logger: logger}
}

func (l *CatalogLoader) Snapshot(ctx context.Context) (records []models.Property, demo bool) {
	records, err := l.repo.List(ctx)
	if err != nil {
		l.logger.Warn("catalog unavailable, serving demo listings", zap.Error(err))
		return store.DemoProperties(), true
	}
	return records, false
}

// jsonWithETag writes v with a content-hash ETag and answers 304 when the
// client already holds the same body.
func jsonWithETag(c echo.Context, v interface{}) error {
	body, err := json.Marshal(v)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to encode response"})
	}
	etag := utils.ETag(body)
	c.Response().Header().Set("ETag", etag)
	c.Response().Header().Set("Cache-Control", "no-cache")
	if utils.ETagMatches(c.Request().Header.Get("If-None-Match"), etag) {
		return c.NoContent(http.StatusNotModified)
	}
	return c.JSONBlob(http.StatusOK, body)
}

// decode binds and validates the request body. A non-empty result is the
// reason for a 400.
func decode(c echo.Context, v interface{}) string {
	if err := c.Bind(v); err != nil {
		return "Invalid request body"
	}
	if err := c.Validate(v); err != nil {
		return err.Error()
	}
	return ""
}

func isNotFound(err error) bool { return errors.Is(err, store.ErrNotFound) }

// publish reports an event without failing the request that caused it.
func publish(ctx context.Context, p events.Publisher, logger *zap.Logger, event string, data interface{}) {
	if err := p.Publish(ctx, event, data); err != nil {
		logger.Warn("event publish failed", zap.String("event", event), zap.Error(err))
	}
}
