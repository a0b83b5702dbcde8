package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jooyongc/goldensnow360-dubai/models"
	"github.com/jooyongc/goldensnow360-dubai/store"
	"github.com/jooyongc/goldensnow360-dubai/utils"
)

type AuthController struct {
	admins     store.AdminRepository
	properties store.PropertyRepository
	messages   store.MessageRepository
	issuer     *utils.TokenIssuer
	logger     *zap.Logger
}

func NewAuthController(d Deps) *AuthController {
	return &AuthController{
		admins:     d.Store.Admins,
		properties: d.Store.Properties,
		messages:   d.Store.Messages,
		issuer:     d.Issuer,
		logger:     d.Logger,
	}
}

func (ac *AuthController) Login(c echo.Context) error {
	var req models.LoginRequest
	if msg := decode(c, &req); msg != "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msg})
	}

	admin, err := ac.admins.FindByUsername(c.Request().Context(), req.Username)
	if err != nil {
		if !isNotFound(err) {
			ac.logger.Error("find admin", zap.Error(err))
		}
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid username or password"})
	}
	if err := utils.CheckPassword(admin.PasswordHash, req.Password); err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid username or password"})
	}

	token, err := ac.issuer.GenerateJWT(admin.ID, admin.Username, admin.Role)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to generate token"})
	}
	ac.logger.Info("admin signed in", zap.String("username", admin.Username))
	return c.JSON(http.StatusOK, models.LoginResponse{Token: token, Admin: admin})
}

func (ac *AuthController) Me(c echo.Context) error {
	adminID, _ := c.Get("admin_id").(string)
	admin, err := ac.admins.FindByID(c.Request().Context(), adminID)
	if err != nil {
		if isNotFound(err) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Admin not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch admin"})
	}
	return c.JSON(http.StatusOK, admin)
}

func (ac *AuthController) Dashboard(c echo.Context) error {
	var stats models.DashboardStats
	g, ctx := errgroup.WithContext(c.Request().Context())
	g.Go(func() (err error) {
		stats.Properties, err = ac.properties.Count(ctx)
		return err
	})
	g.Go(func() (err error) {
		stats.Messages, err = ac.messages.Count(ctx)
		return err
	})
	g.Go(func() (err error) {
		stats.Unread, err = ac.messages.CountUnread(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		ac.logger.Error("dashboard stats", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to load dashboard"})
	}
	return c.JSON(http.StatusOK, stats)
}
