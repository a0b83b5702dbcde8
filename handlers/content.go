package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/jooyongc/goldensnow360-dubai/models"
	"github.com/jooyongc/goldensnow360-dubai/store"
	"github.com/jooyongc/goldensnow360-dubai/utils"
)

var footerKeys = []string{
	models.SettingFooterDescription,
	models.SettingFooterAreas,
	models.SettingFooterCopyright,
	models.SettingFooterPrivacyURL,
	models.SettingFooterTermsURL,
}

// ContentController serves and edits the hero, about, contact and footer
// blocks. Public reads fall back to the demo content.
type ContentController struct {
	content store.ContentRepository
	logger  *zap.Logger
}

func NewContentController(d Deps) *ContentController {
	return &ContentController{content: d.Store.Content, logger: d.Logger}
}

type AboutResponse struct {
	About           models.AboutContent `json:"about"`
	DescriptionHTML string              `json:"description_html"`
}

func (cc *ContentController) GetHero(c echo.Context) error {
	return jsonWithETag(c, heroOrDemo(c.Request().Context(), cc.content, cc.logger))
}

func (cc *ContentController) GetAbout(c echo.Context) error {
	about, err := cc.content.About(c.Request().Context())
	if err != nil {
		if !isNotFound(err) {
			cc.logger.Warn("about unavailable, serving demo content", zap.Error(err))
		}
		about = store.DemoAbout()
	}
	html, err := utils.RenderMarkdown(about.Description)
	if err != nil {
		cc.logger.Warn("render about description", zap.Error(err))
	}
	return jsonWithETag(c, AboutResponse{About: about, DescriptionHTML: html})
}

func (cc *ContentController) contactInfo(ctx context.Context) models.ContactInfo {
	info, err := cc.content.ContactInfo(ctx)
	if err != nil {
		if !isNotFound(err) {
			cc.logger.Warn("contact info unavailable, serving demo content", zap.Error(err))
		}
		return store.DemoContactInfo()
	}
	return info
}

func (cc *ContentController) GetContactInfo(c echo.Context) error {
	return jsonWithETag(c, cc.contactInfo(c.Request().Context()))
}

func (cc *ContentController) footer(ctx context.Context) models.Footer {
	values := store.DemoFooterSettings()
	stored, err := cc.content.Settings(ctx, footerKeys...)
	if err != nil {
		cc.logger.Warn("footer settings unavailable, serving demo content", zap.Error(err))
	}
	for k, v := range stored {
		if v != "" {
			values[k] = v
		}
	}
	info := cc.contactInfo(ctx)
	return models.Footer{
		Description: values[models.SettingFooterDescription],
		Areas:       values[models.SettingFooterAreas],
		AreaList:    splitAreas(values[models.SettingFooterAreas]),
		Copyright:   values[models.SettingFooterCopyright],
		PrivacyURL:  values[models.SettingFooterPrivacyURL],
		TermsURL:    values[models.SettingFooterTermsURL],
		Address:     info.Address,
		Phone:       info.Phone,
		Email:       info.Email,
	}
}

func (cc *ContentController) GetFooter(c echo.Context) error {
	return jsonWithETag(c, cc.footer(c.Request().Context()))
}

func splitAreas(s string) []string {
	areas := []string{}
	for _, a := range strings.Split(s, ",") {
		if a = strings.TrimSpace(a); a != "" {
			areas = append(areas, a)
		}
	}
	return areas
}

func (cc *ContentController) SaveHero(c echo.Context) error {
	var hero models.HeroSection
	if err := c.Bind(&hero); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if hero.Page == "" {
		hero.Page = "home"
	}
	hero.IsActive = true
	if hero.ID == "" {
		if existing, err := cc.content.Hero(c.Request().Context(), hero.Page); err == nil {
			hero.ID = existing.ID
		}
	}
	if err := cc.content.SaveHero(c.Request().Context(), &hero); err != nil {
		cc.logger.Error("save hero", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to save hero section"})
	}
	return c.JSON(http.StatusOK, hero)
}

func (cc *ContentController) SaveAbout(c echo.Context) error {
	var about models.AboutContent
	if err := c.Bind(&about); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	about.IsActive = true
	if about.ID == "" {
		if existing, err := cc.content.About(c.Request().Context()); err == nil {
			about.ID = existing.ID
		}
	}
	for i := range about.Stats {
		about.Stats[i].SortOrder = i + 1
	}
	if err := cc.content.SaveAbout(c.Request().Context(), &about); err != nil {
		cc.logger.Error("save about", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to save about content"})
	}
	return c.JSON(http.StatusOK, about)
}

func (cc *ContentController) SaveContactInfo(c echo.Context) error {
	var info models.ContactInfo
	if err := c.Bind(&info); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	info.IsActive = true
	if info.ID == "" {
		if existing, err := cc.content.ContactInfo(c.Request().Context()); err == nil {
			info.ID = existing.ID
		}
	}
	if err := cc.content.SaveContactInfo(c.Request().Context(), &info); err != nil {
		cc.logger.Error("save contact info", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to save contact info"})
	}
	return c.JSON(http.StatusOK, info)
}

// SaveFooter stores the footer_* settings and copies address, phone and email
// onto the active contact info.
func (cc *ContentController) SaveFooter(c echo.Context) error {
	var footer models.Footer
	if err := c.Bind(&footer); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	ctx := c.Request().Context()
	settings := []models.SiteSetting{
		{Key: models.SettingFooterDescription, Value: footer.Description, Type: "text"},
		{Key: models.SettingFooterAreas, Value: footer.Areas, Type: "text"},
		{Key: models.SettingFooterCopyright, Value: footer.Copyright, Type: "text"},
		{Key: models.SettingFooterPrivacyURL, Value: footer.PrivacyURL, Type: "text"},
		{Key: models.SettingFooterTermsURL, Value: footer.TermsURL, Type: "text"},
	}
	if err := cc.content.UpsertSettings(ctx, settings); err != nil {
		cc.logger.Error("save footer settings", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to save footer"})
	}

	info, err := cc.content.ContactInfo(ctx)
	switch {
	case err == nil:
	case isNotFound(err):
		info = store.DemoContactInfo()
		info.ID = ""
	default:
		cc.logger.Error("load contact info", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to save footer"})
	}
	info.Address, info.Phone, info.Email = footer.Address, footer.Phone, footer.Email
	if err := cc.content.SaveContactInfo(ctx, &info); err != nil {
		cc.logger.Error("save contact info", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to save footer"})
	}
	return c.JSON(http.StatusOK, cc.footer(ctx))
}
