package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/jooyongc/goldensnow360-dubai/events"
	"github.com/jooyongc/goldensnow360-dubai/models"
	"github.com/jooyongc/goldensnow360-dubai/store"
)

type MessageController struct {
	repo      store.MessageRepository
	publisher events.Publisher
	logger    *zap.Logger
}

func NewMessageController(d Deps) *MessageController {
	return &MessageController{repo: d.Store.Messages, publisher: d.Publisher, logger: d.Logger}
}

func (mc *MessageController) Submit(c echo.Context) error {
	var req models.ContactRequest
	if msg := decode(c, &req); msg != "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msg})
	}
	message := models.ContactMessage{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Phone:   strings.TrimSpace(req.Phone),
		Subject: strings.TrimSpace(req.Subject),
		Message: req.Message,
	}
	ctx := c.Request().Context()
	if err := mc.repo.Create(ctx, &message); err != nil {
		mc.logger.Error("store contact submission", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to send message"})
	}
	publish(ctx, mc.publisher, mc.logger, events.ContactSubmitted, message)
	return c.JSON(http.StatusCreated, map[string]string{
		"id":      message.ID,
		"message": "Thank you for your message. We will get back to you soon.",
	})
}

func (mc *MessageController) List(c echo.Context) error {
	messages, err := mc.repo.List(c.Request().Context())
	if err != nil {
		mc.logger.Error("list messages", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch messages"})
	}
	return c.JSON(http.StatusOK, messages)
}

func (mc *MessageController) MarkRead(c echo.Context) error {
	id := c.Param("id")
	if err := mc.repo.MarkRead(c.Request().Context(), id); err != nil {
		if isNotFound(err) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Message not found"})
		}
		mc.logger.Error("mark message read", zap.String("id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update message"})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Message marked as read"})
}

func (mc *MessageController) Delete(c echo.Context) error {
	id := c.Param("id")
	if err := mc.repo.Delete(c.Request().Context(), id); err != nil {
		if isNotFound(err) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Message not found"})
		}
		mc.logger.Error("delete message", zap.String("id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to delete message"})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Message deleted successfully"})
}
