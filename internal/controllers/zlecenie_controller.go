// Plik: internal/controllers/zlecenie_controller.go
package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"operaty-system/internal/dto"
	"operaty-system/internal/services"
	"operaty-system/pkg/constants"
	"operaty-system/pkg/utils"
)

type ZlecenieController struct {
	zlecenieService services.ZlecenieServiceInterface
	logger          *zap.Logger
}

func NewZlecenieController(zlecenieService services.ZlecenieServiceInterface, logger *zap.Logger) *ZlecenieController {
	return &ZlecenieController{zlecenieService: zlecenieService, logger: logger}
}

func (c *ZlecenieController) GetZlecenia(ctx echo.Context) error {
	var filters dto.ZlecenieFilterDTO
	if err := ctx.Bind(&filters); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := ctx.Validate(&filters); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.zlecenieService.GetZlecenia(ctx.Request().Context(), filters)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Zlecenia pobrane", http.StatusOK)
}

func (c *ZlecenieController) GetZlecenie(ctx echo.Context) error {
	res, err := c.zlecenieService.GetZlecenieByID(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Zlecenie pobrane", http.StatusOK)
}

func (c *ZlecenieController) CreateLead(ctx echo.Context) error {
	var payload dto.CreateLeadDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.zlecenieService.CreateLead(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Lead utworzony", http.StatusCreated)
}

func (c *ZlecenieController) UpdateZlecenie(ctx echo.Context) error {
	var payload dto.UpdateZlecenieDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.zlecenieService.UpdateZlecenie(ctx.Request().Context(), ctx.Param("id"), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Zlecenie zaktualizowane", http.StatusOK)
}

func (c *ZlecenieController) ConvertLead(ctx echo.Context) error {
	res, err := c.zlecenieService.ConvertLead(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Zlecenie opublikowane na giełdzie", http.StatusOK)
}

func (c *ZlecenieController) ChangeStatus(ctx echo.Context) error {
	var payload dto.ChangeStatusDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.zlecenieService.ChangeStatus(ctx.Request().Context(), ctx.Param("id"), constants.ZlecenieStatus(payload.Status))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Status zmieniony", http.StatusOK)
}

func (c *ZlecenieController) CancelZlecenie(ctx echo.Context) error {
	var payload dto.CancelZlecenieDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.zlecenieService.Cancel(ctx.Request().Context(), ctx.Param("id"), payload.Reason)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Zlecenie anulowane", http.StatusOK)
}

func (c *ZlecenieController) AssignAppraiser(ctx echo.Context) error {
	var payload dto.AssignAppraiserDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.zlecenieService.AssignAndChangeStatus(
		ctx.Request().Context(), ctx.Param("id"), payload.AppraiserID, constants.ZlecenieStatus(payload.Status))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Rzeczoznawca przypisany", http.StatusOK)
}

func (c *ZlecenieController) UpdateSubStatus(ctx echo.Context) error {
	var payload dto.UpdateSubStatusDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var subStatus *constants.SubStatus
	if payload.SubStatus != nil {
		value := constants.SubStatus(*payload.SubStatus)
		subStatus = &value
	}

	res, err := c.zlecenieService.UpdateSubStatus(ctx.Request().Context(), ctx.Param("id"), subStatus)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Podstatus zaktualizowany", http.StatusOK)
}

func (c *ZlecenieController) AddResponse(ctx echo.Context) error {
	var payload dto.AppraiserResponseDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.zlecenieService.AddResponse(ctx.Request().Context(), ctx.Param("id"), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Odpowiedź wysłana", http.StatusCreated)
}

func (c *ZlecenieController) AddCommunicationEntry(ctx echo.Context) error {
	var payload dto.CommunicationEntryDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.zlecenieService.AddCommunicationEntry(ctx.Request().Context(), ctx.Param("id"), payload.Content)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Wpis dodany", http.StatusCreated)
}

func (c *ZlecenieController) AttachFile(ctx echo.Context) error {
	file, err := ctx.FormFile("file")
	if err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "brak pliku w polu 'file'"), c.logger)
	}

	res, err := c.zlecenieService.AttachFile(ctx.Request().Context(), ctx.Param("id"), file)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Plik dołączony", http.StatusCreated)
}

func (c *ZlecenieController) RemoveAttachment(ctx echo.Context) error {
	res, err := c.zlecenieService.RemoveAttachment(ctx.Request().Context(), ctx.Param("id"), ctx.Param("attachmentId"))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Załącznik usunięty", http.StatusOK)
}

// SubmitOperat przyjmuje multipart: plik operatu w polu "file" oraz faktyczną
// datę wykonania w polu formularza.
func (c *ZlecenieController) SubmitOperat(ctx echo.Context) error {
	var payload dto.SubmitOperatDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	file, err := ctx.FormFile("file")
	if err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "brak pliku operatu w polu 'file'"), c.logger)
	}

	res, err := c.zlecenieService.SubmitOperat(ctx.Request().Context(), ctx.Param("id"), payload.ActualCompletionDate, file)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Operat przekazany do rozliczenia", http.StatusOK)
}

func (c *ZlecenieController) UpdateChecklistItem(ctx echo.Context) error {
	var payload dto.UpdateChecklistItemDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.zlecenieService.UpdateChecklistItem(ctx.Request().Context(), ctx.Param("id"), payload.Item, payload.Value)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Checklista zaktualizowana", http.StatusOK)
}

func (c *ZlecenieController) FinalizeZlecenie(ctx echo.Context) error {
	res, err := c.zlecenieService.Finalize(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Zlecenie zakończone", http.StatusOK)
}
