package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/jooyongc/goldensnow360-dubai/catalog"
	"github.com/jooyongc/goldensnow360-dubai/events"
	"github.com/jooyongc/goldensnow360-dubai/models"
	"github.com/jooyongc/goldensnow360-dubai/store"
	"github.com/jooyongc/goldensnow360-dubai/utils"
)

const defaultFeaturedLimit = 3

type PropertyController struct {
	loader    *CatalogLoader
	repo      store.PropertyRepository
	renderer  catalog.Renderer
	mapCfg    catalog.MapConfig
	publisher events.Publisher
	logger    *zap.Logger
}

func NewPropertyController(d Deps, loader *CatalogLoader) *PropertyController {
	return &PropertyController{
		loader:    loader,
		repo:      d.Store.Properties,
		renderer:  d.Renderer,
		mapCfg:    d.Map,
		publisher: d.Publisher,
		logger:    d.Logger,
	}
}

type PropertyListResponse struct {
	Query      catalog.Query     `json:"query"`
	Count      int               `json:"count"`
	Total      int               `json:"total"`
	Facets     catalog.Facets    `json:"facets"`
	Properties []models.Property `json:"properties"`
	Demo       bool              `json:"demo"`
}

type PropertyDetailResponse struct {
	Property        models.Property `json:"property"`
	Card            catalog.Card    `json:"card"`
	DescriptionHTML string          `json:"description_html"`
	TourURL         string          `json:"tour_url,omitempty"`
	Demo            bool            `json:"demo,omitempty"`
}

func queryFromRequest(c echo.Context) catalog.Query {
	return catalog.Query{
		Text:         c.QueryParam("keyword"),
		Area:         c.QueryParam("area"),
		PropertyType: c.QueryParam("type"),
	}
}

func (pc *PropertyController) ListProperties(c echo.Context) error {
	snapshot, demo := pc.loader.Snapshot(c.Request().Context())
	query := queryFromRequest(c)
	visible := catalog.Filter(snapshot, query)
	return jsonWithETag(c, PropertyListResponse{
		Query:      query,
		Count:      len(visible),
		Total:      len(snapshot),
		Facets:     catalog.FacetsOf(snapshot),
		Properties: visible,
		Demo:       demo,
	})
}

func (pc *PropertyController) FeaturedProperties(c echo.Context) error {
	limit := defaultFeaturedLimit
	if l := c.QueryParam("limit"); l != "" {
		if num, err := strconv.Atoi(l); err == nil && num > 0 {
			limit = num
		}
	}
	snapshot, _ := pc.loader.Snapshot(c.Request().Context())
	return jsonWithETag(c, map[string][]catalog.Card{
		"cards": pc.renderer.Cards(catalog.Featured(snapshot, limit)),
	})
}

func (pc *PropertyController) GetProperty(c echo.Context) error {
	id := c.Param("id")
	if !utils.IsValidPropertyID(id) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid property ID"})
	}
	property, err := pc.repo.Get(c.Request().Context(), models.PropertyID(id))
	demo := false
	if err != nil {
		if isNotFound(err) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Property not found"})
		}
		// The listing pages link to demo ids while the backend is down.
		p, ok := store.DemoProperty(models.PropertyID(id))
		if !ok {
			pc.logger.Error("fetch property", zap.String("id", id), zap.Error(err))
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch property"})
		}
		pc.logger.Warn("property unavailable, serving demo listing", zap.String("id", id), zap.Error(err))
		property, demo = p, true
	}
	descriptionHTML, err := utils.RenderMarkdown(property.DescriptionText())
	if err != nil {
		pc.logger.Warn("render property description", zap.String("id", id), zap.Error(err))
	}
	return jsonWithETag(c, PropertyDetailResponse{
		Property:        property,
		Card:            pc.renderer.Card(property),
		DescriptionHTML: descriptionHTML,
		TourURL:         property.TourReference,
		Demo:            demo,
	})
}

func (pc *PropertyController) AdminListProperties(c echo.Context) error {
	properties, err := pc.repo.List(c.Request().Context())
	if err != nil {
		pc.logger.Error("list properties", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch properties"})
	}
	return c.JSON(http.StatusOK, properties)
}

func (pc *PropertyController) CreateProperty(c echo.Context) error {
	var input models.PropertyInput
	if msg := decode(c, &input); msg != "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msg})
	}
	var property models.Property
	input.Apply(&property)
	if property.Lat == nil && property.Lng == nil {
		lat, lng := pc.mapCfg.DefaultCenter.Lat, pc.mapCfg.DefaultCenter.Lng
		property.Lat, property.Lng = &lat, &lng
	}

	ctx := c.Request().Context()
	if err := pc.repo.Create(ctx, &property); err != nil {
		if errors.Is(err, store.ErrConflict) {
			return c.JSON(http.StatusConflict, map[string]string{"error": "Property already exists"})
		}
		pc.logger.Error("create property", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create property"})
	}
	publish(ctx, pc.publisher, pc.logger, events.PropertyCreated, property)
	return c.JSON(http.StatusCreated, property)
}

func (pc *PropertyController) UpdateProperty(c echo.Context) error {
	id := c.Param("id")
	if !utils.IsValidPropertyID(id) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid property ID"})
	}
	var input models.PropertyInput
	if msg := decode(c, &input); msg != "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msg})
	}

	ctx := c.Request().Context()
	property, err := pc.repo.Get(ctx, models.PropertyID(id))
	if err != nil {
		if isNotFound(err) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Property not found"})
		}
		pc.logger.Error("fetch property", zap.String("id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch property"})
	}
	input.Apply(&property)
	if err := pc.repo.Update(ctx, &property); err != nil {
		if isNotFound(err) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Property not found"})
		}
		pc.logger.Error("update property", zap.String("id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update property"})
	}
	publish(ctx, pc.publisher, pc.logger, events.PropertyUpdated, property)
	return c.JSON(http.StatusOK, property)
}

func (pc *PropertyController) DeleteProperty(c echo.Context) error {
	id := c.Param("id")
	if !utils.IsValidPropertyID(id) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid property ID"})
	}
	ctx := c.Request().Context()
	if err := pc.repo.Delete(ctx, models.PropertyID(id)); err != nil {
		if isNotFound(err) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Property not found"})
		}
		pc.logger.Error("delete property", zap.String("id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to delete property"})
	}
	publish(ctx, pc.publisher, pc.logger, events.PropertyDeleted, map[string]string{"id": id})
	return c.JSON(http.StatusOK, map[string]string{"message": "Property deleted successfully"})
}
