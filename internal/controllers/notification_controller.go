// Plik: internal/controllers/notification_controller.go
package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"operaty-system/internal/services"
	"operaty-system/pkg/utils"
)

type NotificationController struct {
	notificationService services.NotificationServiceInterface
	logger              *zap.Logger
}

func NewNotificationController(
	notificationService services.NotificationServiceInterface,
	logger *zap.Logger,
) *NotificationController {
	return &NotificationController{notificationService: notificationService, logger: logger}
}

func (c *NotificationController) GetNotifications(ctx echo.Context) error {
	res, err := c.notificationService.GetNotifications(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Powiadomienia pobrane", http.StatusOK)
}

func (c *NotificationController) MarkRead(ctx echo.Context) error {
	if err := c.notificationService.MarkRead(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "Powiadomienie oznaczone jako przeczytane", http.StatusOK)
}

func (c *NotificationController) MarkAllRead(ctx echo.Context) error {
	if err := c.notificationService.MarkAllRead(ctx.Request().Context()); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "Wszystkie powiadomienia oznaczone jako przeczytane", http.StatusOK)
}
