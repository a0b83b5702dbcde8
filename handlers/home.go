package handlers

import (
	"context"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jooyongc/goldensnow360-dubai/catalog"
	"github.com/jooyongc/goldensnow360-dubai/models"
	"github.com/jooyongc/goldensnow360-dubai/store"
)

type HomeController struct {
	loader   *CatalogLoader
	content  store.ContentRepository
	renderer catalog.Renderer
	logger   *zap.Logger
}

func NewHomeController(d Deps, loader *CatalogLoader) *HomeController {
	return &HomeController{loader: loader, content: d.Store.Content, renderer: d.Renderer, logger: d.Logger}
}

type HomeResponse struct {
	Hero     models.HeroSection `json:"hero"`
	Featured []catalog.Card     `json:"featured"`
}

// heroOrDemo returns the active home hero, or the demo hero when none is
// stored or the store cannot be read.
func heroOrDemo(ctx context.Context, content store.ContentRepository, logger *zap.Logger) models.HeroSection {
	hero, err := content.Hero(ctx, "home")
	if err != nil {
		if !isNotFound(err) {
			logger.Warn("hero unavailable, serving demo content", zap.Error(err))
		}
		return store.DemoHero()
	}
	return hero
}

func (hc *HomeController) Home(c echo.Context) error {
	var resp HomeResponse
	g, ctx := errgroup.WithContext(c.Request().Context())
	g.Go(func() error {
		resp.Hero = heroOrDemo(ctx, hc.content, hc.logger)
		return nil
	})
	g.Go(func() error {
		snapshot, _ := hc.loader.Snapshot(ctx)
		resp.Featured = hc.renderer.Cards(catalog.Featured(snapshot, defaultFeaturedLimit))
		return nil
	})
	// Both halves fall back to demo content, so Wait only joins.
	_ = g.Wait()
	return jsonWithETag(c, resp)
}
