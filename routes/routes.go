package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/jooyongc/goldensnow360-dubai/handlers"
	"github.com/jooyongc/goldensnow360-dubai/middleware"
	"github.com/jooyongc/goldensnow360-dubai/utils"
)

func RegisterRoutes(e *echo.Echo, h *handlers.Handlers, issuer *utils.TokenIssuer) {
	e.GET("/health", handlers.HealthCheck)
	e.GET("/vr-room", h.VRRoom.VRRoomPage)

	api := e.Group("/api")
	api.GET("/home", h.Home.Home)
	api.GET("/vr-room", h.VRRoom.VRRoom)
	api.GET("/properties", h.Properties.ListProperties)
	api.GET("/properties/featured", h.Properties.FeaturedProperties)
	api.GET("/properties/:id", h.Properties.GetProperty)
	api.GET("/content/hero", h.Content.GetHero)
	api.GET("/content/about", h.Content.GetAbout)
	api.GET("/content/contact", h.Content.GetContactInfo)
	api.GET("/content/footer", h.Content.GetFooter)
	api.POST("/contact", h.Messages.Submit)
	api.POST("/admin/login", h.Auth.Login)

	admin := api.Group("/admin", middleware.JWTMiddleware(issuer))
	admin.GET("/me", h.Auth.Me)
	admin.GET("/dashboard", h.Auth.Dashboard)

	admin.GET("/properties", h.Properties.AdminListProperties)
	admin.POST("/properties", h.Properties.CreateProperty)
	admin.PUT("/properties/:id", h.Properties.UpdateProperty)
	admin.DELETE("/properties/:id", h.Properties.DeleteProperty)

	admin.GET("/messages", h.Messages.List)
	admin.POST("/messages/:id/read", h.Messages.MarkRead)
	admin.DELETE("/messages/:id", h.Messages.Delete)

	admin.PUT("/content/hero", h.Content.SaveHero)
	admin.PUT("/content/about", h.Content.SaveAbout)
	admin.PUT("/content/contact", h.Content.SaveContactInfo)
	admin.PUT("/content/footer", h.Content.SaveFooter)
}
