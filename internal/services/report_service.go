// Plik: internal/services/report_service.go
package services

import (
	"context"

	"operaty-system/internal/dto"
	"operaty-system/internal/entities"
	"operaty-system/internal/repositories"
	"operaty-system/pkg/constants"
)

type ReportServiceInterface interface {
	GetSettlementRows(ctx context.Context) ([]dto.SettlementRowDTO, error)
}

// ReportService buduje zestawienie rozliczeń: zlecenia w rozliczeniu
// i zakończone, z marżą i postępem checklisty. Eksport do XLSX robi kontroler.
type ReportService struct {
	zlecenieRepo repositories.ZlecenieRepositoryInterface
	userRepo     repositories.UserRepositoryInterface
}

func NewReportService(
	zlecenieRepo repositories.ZlecenieRepositoryInterface,
	userRepo repositories.UserRepositoryInterface,
) ReportServiceInterface {
	return &ReportService{zlecenieRepo: zlecenieRepo, userRepo: userRepo}
}

func (s *ReportService) GetSettlementRows(ctx context.Context) ([]dto.SettlementRowDTO, error) {
	zlecenia, err := s.zlecenieRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]dto.SettlementRowDTO, 0)
	for _, z := range zlecenia {
		if z.Status != constants.StatusDoRozliczenia && z.Status != constants.StatusZakonczone {
			continue
		}

		row := dto.SettlementRowDTO{
			ZlecenieID:           z.ID,
			LocationString:       z.LocationString,
			Status:               z.Status.String(),
			ClientPrice:          z.ClientPrice,
			ProposedPrice:        z.ProposedPrice,
			ChecklistTotal:       len(entities.ChecklistItems),
			ActualCompletionDate: z.ActualCompletionDate,
		}
		if z.ClientPrice != nil && z.ProposedPrice != nil {
			margin := *z.ClientPrice - *z.ProposedPrice
			row.Margin = &margin
		}
		if z.SettlementChecklist != nil {
			row.ChecklistDone = checklistDone(z.SettlementChecklist)
		}
		if z.AssignedAppraiserID != nil {
			if appraiser, err := s.userRepo.FindByID(ctx, *z.AssignedAppraiserID); err == nil {
				row.AppraiserName = appraiser.FullName()
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func checklistDone(c *entities.SettlementChecklist) int {
	done := 0
	for _, item := range entities.ChecklistItems {
		switch item {
		case "operatPobrany":
			if c.OperatPobrany {
				done++
			}
		case "fakturaWystawiona":
			if c.FakturaWystawiona {
				done++
			}
		case "fakturaOplacona":
			if c.FakturaOplacona {
				done++
			}
		case "operatPrzekazany":
			if c.OperatPrzekazany {
				done++
			}
		case "rozliczonoZRzeczoznawca":
			if c.RozliczonoZRzeczoznawca {
				done++
			}
		}
	}
	return done
}
