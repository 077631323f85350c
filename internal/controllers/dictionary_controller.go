// Plik: internal/controllers/dictionary_controller.go
package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"operaty-system/internal/entities"
	"operaty-system/pkg/constants"
	"operaty-system/pkg/utils"
)

// DictionaryController wystawia statyczne słowniki dla formularzy frontendu.
type DictionaryController struct {
	logger *zap.Logger
}

func NewDictionaryController(logger *zap.Logger) *DictionaryController {
	return &DictionaryController{logger: logger}
}

func (c *DictionaryController) GetDictionaries(ctx echo.Context) error {
	body := map[string]interface{}{
		"statuses":           constants.ZlecenieStatuses,
		"sub_statuses":       constants.SubStatuses,
		"property_types":     constants.PropertyTypes,
		"valuation_purposes": constants.ValuationPurposes,
		"appraisal_forms":    constants.AppraisalForms,
		"lead_sources":       constants.LeadSources,
		"voivodeships":       constants.Voivodeships,
		"checklist_items":    entities.ChecklistItems,
	}
	return utils.SuccessResponse(ctx, body, "Słowniki pobrane", http.StatusOK)
}
