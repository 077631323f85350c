// Plik: internal/controllers/report_controller.go
package controllers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"operaty-system/internal/dto"
	"operaty-system/internal/services"
	"operaty-system/pkg/utils"
)

type ReportController struct {
	reportService services.ReportServiceInterface
	logger        *zap.Logger
}

func NewReportController(reportService services.ReportServiceInterface, logger *zap.Logger) *ReportController {
	return &ReportController{reportService: reportService, logger: logger}
}

// GetSettlements zwraca zestawienie rozliczeń; parametr format=xlsx
// przełącza odpowiedź na plik Excela.
func (c *ReportController) GetSettlements(ctx echo.Context) error {
	rows, err := c.reportService.GetSettlementRows(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if strings.ToLower(ctx.QueryParam("format")) == "xlsx" {
		return c.respondWithXLSX(ctx, rows)
	}
	return utils.SuccessResponse(ctx, rows, "Zestawienie rozliczeń wygenerowane", http.StatusOK)
}

var settlementHeaders = []string{
	"Nr zlecenia", "Lokalizacja", "Status", "Rzeczoznawca",
	"Cena klienta", "Cena rzeczoznawcy", "Marża", "Checklista", "Data wykonania",
}

func settlementRowToSlice(row dto.SettlementRowDTO) []interface{} {
	var clientPrice, proposedPrice, margin, completionDate string
	if row.ClientPrice != nil {
		clientPrice = fmt.Sprintf("%.2f", *row.ClientPrice)
	}
	if row.ProposedPrice != nil {
		proposedPrice = fmt.Sprintf("%.2f", *row.ProposedPrice)
	}
	if row.Margin != nil {
		margin = fmt.Sprintf("%.2f", *row.Margin)
	}
	if row.ActualCompletionDate != nil {
		completionDate = *row.ActualCompletionDate
	}

	return []interface{}{
		row.ZlecenieID, row.LocationString, row.Status, row.AppraiserName,
		clientPrice, proposedPrice, margin,
		fmt.Sprintf("%d/%d", row.ChecklistDone, row.ChecklistTotal), completionDate,
	}
}

func (c *ReportController) respondWithXLSX(ctx echo.Context, rows []dto.SettlementRowDTO) error {
	f := excelize.NewFile()
	sheet := "Rozliczenia"
	f.SetSheetName("Sheet1", sheet)
	f.SetSheetRow(sheet, "A1", &settlementHeaders)
	style, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	f.SetCellStyle(sheet, "A1", "I1", style)

	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		values := settlementRowToSlice(row)
		f.SetSheetRow(sheet, cell, &values)
	}
	f.SetColWidth(sheet, "A", "A", 16)
	f.SetColWidth(sheet, "B", "B", 40)
	f.SetColWidth(sheet, "C", "D", 22)
	f.SetColWidth(sheet, "E", "G", 16)
	f.SetColWidth(sheet, "H", "I", 14)

	fileName := fmt.Sprintf("rozliczenia_%s.xlsx", time.Now().Format("2006-01-02"))
	ctx.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Response().Header().Set("Content-Disposition", "attachment; filename="+fileName)
	ctx.Response().WriteHeader(http.StatusOK)
	return f.Write(ctx.Response().Writer)
}
