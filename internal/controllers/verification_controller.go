// Plik: internal/controllers/verification_controller.go
package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"operaty-system/internal/dto"
	"operaty-system/internal/services"
	"operaty-system/pkg/utils"
)

type VerificationController struct {
	verificationService services.VerificationServiceInterface
	logger              *zap.Logger
}

func NewVerificationController(
	verificationService services.VerificationServiceInterface,
	logger *zap.Logger,
) *VerificationController {
	return &VerificationController{verificationService: verificationService, logger: logger}
}

func (c *VerificationController) VerifyKW(ctx echo.Context) error {
	var payload dto.VerifyKWDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.verificationService.VerifyKW(ctx.Request().Context(), payload.KWNumber)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Weryfikacja zakończona", http.StatusOK)
}

func (c *VerificationController) Geocode(ctx echo.Context) error {
	var payload dto.GeocodeDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.verificationService.Geocode(ctx.Request().Context(), payload.Location)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Adres zgeokodowany", http.StatusOK)
}
