// Plik: internal/routes/zlecenie.go
package routes

import (
	"github.com/labstack/echo/v4"

	"operaty-system/internal/controllers"
	"operaty-system/pkg/middleware"
)

func registerZlecenieRoutes(api *echo.Group, ctrl *controllers.ZlecenieController, authMW *middleware.AuthMiddleware) {
	zlecenia := api.Group("/zlecenia", authMW.Auth)

	zlecenia.GET("", ctrl.GetZlecenia)
	zlecenia.POST("", ctrl.CreateLead)
	zlecenia.GET("/:id", ctrl.GetZlecenie)
	zlecenia.PUT("/:id", ctrl.UpdateZlecenie)

	// Operacje przepływu - każde przejście ma własny, jawny endpoint.
	zlecenia.POST("/:id/convert", ctrl.ConvertLead)
	zlecenia.POST("/:id/status", ctrl.ChangeStatus)
	zlecenia.POST("/:id/cancel", ctrl.CancelZlecenie)
	zlecenia.POST("/:id/assign", ctrl.AssignAppraiser)
	zlecenia.PATCH("/:id/substatus", ctrl.UpdateSubStatus)
	zlecenia.POST("/:id/responses", ctrl.AddResponse)
	zlecenia.POST("/:id/log", ctrl.AddCommunicationEntry)
	zlecenia.POST("/:id/attachments", ctrl.AttachFile)
	zlecenia.DELETE("/:id/attachments/:attachmentId", ctrl.RemoveAttachment)
	zlecenia.POST("/:id/operat", ctrl.SubmitOperat)
	zlecenia.PATCH("/:id/checklist", ctrl.UpdateChecklistItem)
	zlecenia.POST("/:id/finalize", ctrl.FinalizeZlecenie)
}
