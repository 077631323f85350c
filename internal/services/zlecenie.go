// Plik: internal/services/zlecenie.go
package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"time"

	"go.uber.org/zap"

	"operaty-system/internal/dto"
	"operaty-system/internal/entities"
	"operaty-system/internal/events"
	"operaty-system/internal/integrations/geocoder"
	"operaty-system/internal/repositories"
	"operaty-system/pkg/constants"
	apperrors "operaty-system/pkg/errors"
	"operaty-system/pkg/eventbus"
	"operaty-system/pkg/filestorage"
	"operaty-system/pkg/utils"
)

type ZlecenieServiceInterface interface {
	GetZlecenia(ctx context.Context, filters dto.ZlecenieFilterDTO) (*dto.ZlecenieListDTO, error)
	GetZlecenieByID(ctx context.Context, id string) (*entities.Zlecenie, error)
	CreateLead(ctx context.Context, payload dto.CreateLeadDTO) (*entities.Zlecenie, error)
	UpdateZlecenie(ctx context.Context, id string, payload dto.UpdateZlecenieDTO) (*entities.Zlecenie, error)
	ConvertLead(ctx context.Context, id string) (*entities.Zlecenie, error)
	ChangeStatus(ctx context.Context, id string, newStatus constants.ZlecenieStatus) (*entities.Zlecenie, error)
	Cancel(ctx context.Context, id string, reason string) (*entities.Zlecenie, error)
	AssignAndChangeStatus(ctx context.Context, id string, appraiserID string, newStatus constants.ZlecenieStatus) (*entities.Zlecenie, error)
	UpdateSubStatus(ctx context.Context, id string, subStatus *constants.SubStatus) (*entities.Zlecenie, error)
	AddResponse(ctx context.Context, id string, payload dto.AppraiserResponseDTO) (*entities.Zlecenie, error)
	AddCommunicationEntry(ctx context.Context, id string, content string) (*entities.Zlecenie, error)
	AttachFile(ctx context.Context, id string, file *multipart.FileHeader) (*entities.Zlecenie, error)
	RemoveAttachment(ctx context.Context, id string, attachmentID string) (*entities.Zlecenie, error)
	SubmitOperat(ctx context.Context, id string, actualCompletionDate string, file *multipart.FileHeader) (*entities.Zlecenie, error)
	UpdateChecklistItem(ctx context.Context, id string, item string, value bool) (*entities.Zlecenie, error)
	Finalize(ctx context.Context, id string) (*entities.Zlecenie, error)
}

// ZlecenieService - serce systemu: maszyna stanów zlecenia wraz z regułami
// bocznymi (checklista, dziennik komunikacji). Każda operacja mutuje kopię
// rekordu i podmienia go w repozytorium w całości, a po udanej podmianie
// publikuje zdarzenie; audyt i powiadomienia są słuchaczami, nie częścią
// maszyny stanów.
type ZlecenieService struct {
	zlecenieRepo repositories.ZlecenieRepositoryInterface
	userRepo     repositories.UserRepositoryInterface
	bus          *eventbus.Bus
	geocoder     geocoder.Provider
	storage      filestorage.FileStorageInterface
	logger       *zap.Logger
}

func NewZlecenieService(
	zlecenieRepo repositories.ZlecenieRepositoryInterface,
	userRepo repositories.UserRepositoryInterface,
	bus *eventbus.Bus,
	geocoderProvider geocoder.Provider,
	storage filestorage.FileStorageInterface,
	logger *zap.Logger,
) ZlecenieServiceInterface {
	return &ZlecenieService{
		zlecenieRepo: zlecenieRepo,
		userRepo:     userRepo,
		bus:          bus,
		geocoder:     geocoderProvider,
		storage:      storage,
		logger:       logger,
	}
}

func (s *ZlecenieService) actor(ctx context.Context) (events.Actor, *entities.User, error) {
	userID, err := utils.GetUserIDFromCtx(ctx)
	if err != nil {
		return events.Actor{}, nil, err
	}
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return events.Actor{}, nil, err
	}
	return events.Actor{UserID: user.ID, Email: user.Email}, user, nil
}

func (s *ZlecenieService) GetZlecenia(ctx context.Context, filters dto.ZlecenieFilterDTO) (*dto.ZlecenieListDTO, error) {
	_, user, err := s.actor(ctx)
	if err != nil {
		return nil, err
	}
	all, err := s.zlecenieRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	filtered := FilterZlecenia(all, filters, user)
	return &dto.ZlecenieListDTO{Total: len(filtered), Zlecenia: filtered}, nil
}

func (s *ZlecenieService) GetZlecenieByID(ctx context.Context, id string) (*entities.Zlecenie, error) {
	return s.zlecenieRepo.FindByID(ctx, id)
}

func (s *ZlecenieService) CreateLead(ctx context.Context, payload dto.CreateLeadDTO) (*entities.Zlecenie, error) {
	actor, _, err := s.actor(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	lead := &entities.Zlecenie{
		ID:               fmt.Sprintf("L%d", now.UnixMilli()),
		CreationDate:     now,
		Status:           constants.StatusLead,
		Source:           payload.Source,
		LocationString:   payload.LocationString,
		KWNumber:         payload.KWNumber,
		PropertyType:     payload.PropertyType,
		ValuationPurpose: payload.ValuationPurpose,
		AdditionalNotes:  payload.AdditionalNotes,
		ClientDetails: entities.ClientDetails{
			FullName:      payload.ClientFullName,
			Phone:         payload.ClientPhone,
			Email:         payload.ClientEmail,
			AppraisalForm: payload.ClientAppraisalForm,
		},
		Responses:   []entities.AppraiserResponse{},
		Attachments: []entities.FileAttachment{},
		CommunicationLog: []entities.CommunicationEntry{{
			ID:      fmt.Sprintf("log-%d", now.UnixMilli()),
			Date:    now,
			Author:  constants.SystemAuthor,
			Content: "Lead utworzony.",
		}},
	}

	s.applyGeocoding(ctx, lead)

	if err := s.zlecenieRepo.Create(ctx, lead); err != nil {
		return nil, err
	}
	s.bus.Publish(ctx, events.LeadCreatedEvent{Zlecenie: lead, Actor: actor})
	return lead, nil
}

// applyGeocoding uzupełnia współrzędne i województwo na podstawie adresu.
// Wywołanie jest synchroniczne - wynik zawsze trafia do rekordu, dla którego
// ruszyło geokodowanie, nie ma okna na przeterminowany rezultat.
// Błąd geokodera nie blokuje zapisu, zostaje tylko ślad w logu.
func (s *ZlecenieService) applyGeocoding(ctx context.Context, zlecenie *entities.Zlecenie) {
	result, err := s.geocoder.Geocode(ctx, zlecenie.LocationString)
	if err != nil {
		s.logger.Warn("geokodowanie nie powiodło się",
			zap.String("zlecenie_id", zlecenie.ID),
			zap.String("location", zlecenie.LocationString),
			zap.Error(err),
		)
		return
	}

	voivodeship, known := geocoder.Normalize(result.Voivodeship)
	if !known {
		// Nieznana nazwa wyłączyłaby po cichu filtrowanie regionalne giełdy.
		s.logger.Warn("geokoder zwrócił nieznane województwo",
			zap.String("zlecenie_id", zlecenie.ID),
			zap.String("voivodeship", result.Voivodeship),
		)
	}
	zlecenie.Coordinates = &entities.Coordinates{Lat: result.Lat, Lng: result.Lng}
	zlecenie.Voivodeship = &voivodeship
}

func (s *ZlecenieService) UpdateZlecenie(ctx context.Context, id string, payload dto.UpdateZlecenieDTO) (*entities.Zlecenie, error) {
	actor, _, err := s.actor(ctx)
	if err != nil {
		return nil, err
	}
	zlecenie, err := s.zlecenieRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	locationChanged := false
	if payload.LocationString.Valid && payload.LocationString.String != zlecenie.LocationString {
		zlecenie.LocationString = payload.LocationString.String
		locationChanged = true
	}
	if payload.KWNumber.Valid {
		zlecenie.KWNumber = strPtr(payload.KWNumber.String)
	}
	if payload.PropertyType.Valid {
		zlecenie.PropertyType = payload.PropertyType.String
	}
	if payload.ValuationPurpose.Valid {
		zlecenie.ValuationPurpose = payload.ValuationPurpose.String
	}
	if payload.Source.Valid {
		zlecenie.Source = strPtr(payload.Source.String)
	}
	if payload.AdditionalNotes.Valid {
		zlecenie.AdditionalNotes = strPtr(payload.AdditionalNotes.String)
	}
	if payload.ClientFullName.Valid {
		zlecenie.ClientDetails.FullName = payload.ClientFullName.String
	}
	if payload.ClientPhone.Valid {
		zlecenie.ClientDetails.Phone = payload.ClientPhone.String
	}
	if payload.ClientEmail.Valid {
		zlecenie.ClientDetails.Email = strPtr(payload.ClientEmail.String)
	}
	if payload.ClientAppraisalForm.Valid {
		zlecenie.ClientDetails.AppraisalForm = payload.ClientAppraisalForm.String
	}
	if payload.ClientPrice.Valid {
		zlecenie.ClientPrice = floatPtr(payload.ClientPrice.Float64)
	}
	if payload.ProposedPrice.Valid {
		zlecenie.ProposedPrice = floatPtr(payload.ProposedPrice.Float64)
	}
	if payload.ProposedCompletionDate.Valid {
		zlecenie.ProposedCompletionDate = strPtr(payload.ProposedCompletionDate.String)
	}

	if locationChanged {
		s.applyGeocoding(ctx, zlecenie)
	}

	if err := s.zlecenieRepo.Update(ctx, zlecenie); err != nil {
		return nil, err
	}
	s.bus.Publish(ctx, events.UpdatedEvent{ZlecenieID: zlecenie.ID, Actor: actor})
	return zlecenie, nil
}

// ConvertLead publikuje leada na giełdzie: jedyne miejsce, w którym powstaje
// data publikacji. Wymaga ustalonej ceny dla rzeczoznawcy.
func (s *ZlecenieService) ConvertLead(ctx context.Context, id string) (*entities.Zlecenie, error) {
	actor, _, err := s.actor(ctx)
	if err != nil {
		return nil, err
	}
	zlecenie, err := s.zlecenieRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if zlecenie.Status != constants.StatusLead && zlecenie.Status != constants.StatusDoAkceptacji {
		return nil, apperrors.NewInvalidOperationError(
			"tylko lead może zostać opublikowany na giełdzie (obecny status: %s)", zlecenie.Status)
	}
	if zlecenie.ProposedPrice == nil || *zlecenie.ProposedPrice <= 0 {
		return nil, apperrors.NewInvalidOperationError(
			"lead #%s nie ma ustalonej ceny dla rzeczoznawcy", zlecenie.ID)
	}

	now := time.Now()
	oldStatus := zlecenie.Status
	zlecenie.Status = constants.StatusNowe
	zlecenie.PublicationDate = &now
	zlecenie.CommunicationLog = append(zlecenie.CommunicationLog, statusChangeEntry(now, oldStatus, constants.StatusNowe))

	if err := s.zlecenieRepo.Update(ctx, zlecenie); err != nil {
		return nil, err
	}
	s.bus.Publish(ctx, events.LeadConvertedEvent{ZlecenieID: zlecenie.ID, Actor: actor})
	return zlecenie, nil
}

// ChangeStatus wykonuje przejście ogólne. Anulowanie i przejścia wymagające
// rzeczoznawcy mają własne operacje - tu są odrzucane, żeby żaden wywołujący
// nie ominął kroku z powodem anulowania ani przypisania.
func (s *ZlecenieService) ChangeStatus(ctx context.Context, id string, newStatus constants.ZlecenieStatus) (*entities.Zlecenie, error) {
	actor, _, err := s.actor(ctx)
	if err != nil {
		return nil, err
	}
	if !constants.IsValidStatus(newStatus) {
		return nil, apperrors.NewInvalidInputError("nieznany status: %s", newStatus)
	}
	zlecenie, err := s.zlecenieRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	oldStatus := zlecenie.Status
	if newStatus == oldStatus {
		// Przejście w miejscu: bez wpisu, bez powiadomienia, bez audytu.
		return zlecenie, nil
	}
	if constants.IsFinalStatus(oldStatus) {
		return nil, apperrors.NewInvalidOperationError(
			"zlecenie #%s jest w statusie terminalnym '%s'", zlecenie.ID, oldStatus)
	}
	if newStatus == constants.StatusAnulowane {
		return nil, apperrors.NewInvalidOperationError(
			"anulowanie wymaga podania powodu - użyj operacji anulowania")
	}
	if (newStatus == constants.StatusWTrakcie || newStatus == constants.StatusDoRozliczenia) &&
		zlecenie.AssignedAppraiserID == nil {
		return nil, apperrors.NewInvalidOperationError(
			"zlecenie #%s nie ma przypisanego rzeczoznawcy - najpierw przypisz rzeczoznawcę", zlecenie.ID)
	}

	now := time.Now()
	zlecenie.Status = newStatus
	zlecenie.CommunicationLog = append(zlecenie.CommunicationLog, statusChangeEntry(now, oldStatus, newStatus))
	seedChecklistIfEntering(zlecenie, newStatus)

	if err := s.zlecenieRepo.Update(ctx, zlecenie); err != nil {
		return nil, err
	}
	s.bus.Publish(ctx, events.StatusChangedEvent{
		ZlecenieID: zlecenie.ID,
		OldStatus:  oldStatus,
		NewStatus:  newStatus,
		Actor:      actor,
	})
	return zlecenie, nil
}

func (s *ZlecenieService) Cancel(ctx context.Context, id string, reason string) (*entities.Zlecenie, error) {
	actor, _, err := s.actor(ctx)
	if err != nil {
		return nil, err
	}
	if reason == "" {
		return nil, apperrors.NewInvalidInputError("powód anulowania nie może być pusty")
	}
	zlecenie, err := s.zlecenieRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if constants.IsFinalStatus(zlecenie.Status) {
		return nil, apperrors.NewInvalidOperationError(
			"zlecenie #%s jest w statusie terminalnym '%s'", zlecenie.ID, zlecenie.Status)
	}

	now := time.Now()
	oldStatus := zlecenie.Status
	zlecenie.Status = constants.StatusAnulowane
	// Najpierw wpis o zmianie statusu, potem powód.
	zlecenie.CommunicationLog = append(zlecenie.CommunicationLog,
		statusChangeEntry(now, oldStatus, constants.StatusAnulowane),
		entities.CommunicationEntry{
			ID:      fmt.Sprintf("log-%d-reason", now.UnixMilli()),
			Date:    now,
			Author:  constants.SystemAuthor,
			Content: fmt.Sprintf("Powód anulowania: %s", reason),
		},
	)

	if err := s.zlecenieRepo.Update(ctx, zlecenie); err != nil {
		return nil, err
	}
	s.bus.Publish(ctx, events.CancelledEvent{
		ZlecenieID: zlecenie.ID,
		OldStatus:  oldStatus,
		Reason:     reason,
		Actor:      actor,
	})
	return zlecenie, nil
}

// AssignAndChangeStatus rozwiązuje odroczone przejście: w jednej operacji
// przypisuje rzeczoznawcę i wykonuje zmianę statusu, która była zablokowana
// brakiem przypisania.
func (s *ZlecenieService) AssignAndChangeStatus(ctx context.Context, id string, appraiserID string, newStatus constants.ZlecenieStatus) (*entities.Zlecenie, error) {
	actor, _, err := s.actor(ctx)
	if err != nil {
		return nil, err
	}
	if newStatus != constants.StatusWTrakcie && newStatus != constants.StatusDoRozliczenia {
		return nil, apperrors.NewInvalidInputError(
			"przypisanie rzeczoznawcy dotyczy tylko statusów '%s' i '%s'",
			constants.StatusWTrakcie, constants.StatusDoRozliczenia)
	}

	appraiser, err := s.userRepo.FindByID(ctx, appraiserID)
	if err != nil {
		return nil, apperrors.NewNotFoundError("rzeczoznawca %s nie istnieje", appraiserID)
	}
	if appraiser.Role != constants.RoleRzeczoznawca {
		return nil, apperrors.NewInvalidInputError("użytkownik %s nie jest rzeczoznawcą", appraiser.Email)
	}

	zlecenie, err := s.zlecenieRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if constants.IsFinalStatus(zlecenie.Status) {
		return nil, apperrors.NewInvalidOperationError(
			"zlecenie #%s jest w statusie terminalnym '%s'", zlecenie.ID, zlecenie.Status)
	}

	now := time.Now()
	oldStatus := zlecenie.Status
	zlecenie.AssignedAppraiserID = &appraiser.ID
	zlecenie.Status = newStatus
	// Kolejność wpisów: najpierw przypisanie, potem zmiana statusu.
	zlecenie.CommunicationLog = append(zlecenie.CommunicationLog,
		entities.CommunicationEntry{
			ID:      fmt.Sprintf("log-%d-assign", now.UnixMilli()),
			Date:    now,
			Author:  constants.SystemAuthor,
			Content: fmt.Sprintf("Przypisano rzeczoznawcę: %s.", appraiser.Email),
		},
		statusChangeEntry(now, oldStatus, newStatus),
	)
	seedChecklistIfEntering(zlecenie, newStatus)

	if err := s.zlecenieRepo.Update(ctx, zlecenie); err != nil {
		return nil, err
	}
	s.bus.Publish(ctx, events.AppraiserAssignedEvent{
		ZlecenieID:     zlecenie.ID,
		AppraiserID:    appraiser.ID,
		AppraiserEmail: appraiser.Email,
		OldStatus:      oldStatus,
		NewStatus:      newStatus,
		Actor:          actor,
	})
	return zlecenie, nil
}

func (s *ZlecenieService) UpdateSubStatus(ctx context.Context, id string, subStatus *constants.SubStatus) (*entities.Zlecenie, error) {
	actor, _, err := s.actor(ctx)
	if err != nil {
		return nil, err
	}
	if subStatus != nil && !constants.IsValidSubStatus(*subStatus) {
		return nil, apperrors.NewInvalidInputError("nieznany podstatus: %s", *subStatus)
	}
	zlecenie, err := s.zlecenieRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if zlecenie.Status != constants.StatusWTrakcie {
		return nil, apperrors.NewInvalidOperationError(
			"podstatus dotyczy tylko zleceń w statusie '%s'", constants.StatusWTrakcie)
	}

	zlecenie.SubStatus = subStatus
	if err := s.zlecenieRepo.Update(ctx, zlecenie); err != nil {
		return nil, err
	}
	s.bus.Publish(ctx, events.SubStatusChangedEvent{ZlecenieID: zlecenie.ID, SubStatus: subStatus, Actor: actor})
	return zlecenie, nil
}

// AddResponse - odpowiedź rzeczoznawcy z giełdy. Jedyne wyjście ze statusu
// "Nowe": zlecenie przechodzi w rezerwację, a w dzienniku ląduje dokładnie
// jeden wpis.
func (s *ZlecenieService) AddResponse(ctx context.Context, id string, payload dto.AppraiserResponseDTO) (*entities.Zlecenie, error) {
	actor, user, err := s.actor(ctx)
	if err != nil {
		return nil, err
	}
	if user.Role != constants.RoleRzeczoznawca {
		return nil, apperrors.NewHttpError(403, "Tylko rzeczoznawca może odpowiedzieć na zlecenie.", apperrors.ErrForbidden, nil)
	}
	zlecenie, err := s.zlecenieRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if zlecenie.Status != constants.StatusNowe {
		return nil, apperrors.NewInvalidOperationError(
			"na zlecenie #%s nie można już odpowiedzieć (status: %s)", zlecenie.ID, zlecenie.Status)
	}

	now := time.Now()
	zlecenie.Status = constants.StatusZarezerwowane
	zlecenie.Responses = append(zlecenie.Responses, entities.AppraiserResponse{
		ID:             fmt.Sprintf("resp-%d", now.UnixMilli()),
		AuthorID:       user.ID,
		Author:         user.Email,
		ProposedPrice:  payload.ProposedPrice,
		CompletionDate: payload.CompletionDate,
		Questions:      payload.Questions,
		Status:         payload.Status,
		CreatedAt:      now,
	})
	zlecenie.CommunicationLog = append(zlecenie.CommunicationLog, entities.CommunicationEntry{
		ID:      fmt.Sprintf("log-%d", now.UnixMilli()),
		Date:    now,
		Author:  constants.SystemAuthor,
		Content: fmt.Sprintf("Rzeczoznawca %s odpowiedział na zlecenie.", user.Email),
	})

	if err := s.zlecenieRepo.Update(ctx, zlecenie); err != nil {
		return nil, err
	}
	s.bus.Publish(ctx, events.ResponseAddedEvent{
		ZlecenieID:     zlecenie.ID,
		AppraiserEmail: user.Email,
		ResponseStatus: payload.Status,
		Actor:          actor,
	})
	return zlecenie, nil
}

func (s *ZlecenieService) AddCommunicationEntry(ctx context.Context, id string, content string) (*entities.Zlecenie, error) {
	actor, user, err := s.actor(ctx)
	if err != nil {
		return nil, err
	}
	zlecenie, err := s.zlecenieRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	zlecenie.CommunicationLog = append(zlecenie.CommunicationLog, entities.CommunicationEntry{
		ID:      fmt.Sprintf("log-%d", now.UnixMilli()),
		Date:    now,
		Author:  user.Email,
		Content: content,
	})

	if err := s.zlecenieRepo.Update(ctx, zlecenie); err != nil {
		return nil, err
	}
	s.bus.Publish(ctx, events.EntryAddedEvent{ZlecenieID: zlecenie.ID, Actor: actor})
	return zlecenie, nil
}

func (s *ZlecenieService) AttachFile(ctx context.Context, id string, file *multipart.FileHeader) (*entities.Zlecenie, error) {
	actor, _, err := s.actor(ctx)
	if err != nil {
		return nil, err
	}
	zlecenie, err := s.zlecenieRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	attachment, err := s.saveAttachment(file, constants.AttachmentIDPrefix)
	if err != nil {
		return nil, err
	}
	zlecenie.Attachments = append(zlecenie.Attachments, *attachment)

	if err := s.zlecenieRepo.Update(ctx, zlecenie); err != nil {
		return nil, err
	}
	s.bus.Publish(ctx, events.AttachmentAddedEvent{ZlecenieID: zlecenie.ID, FileName: attachment.Name, Actor: actor})
	return zlecenie, nil
}

func (s *ZlecenieService) RemoveAttachment(ctx context.Context, id string, attachmentID string) (*entities.Zlecenie, error) {
	actor, _, err := s.actor(ctx)
	if err != nil {
		return nil, err
	}
	zlecenie, err := s.zlecenieRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	index := -1
	for i, a := range zlecenie.Attachments {
		if a.ID == attachmentID {
			index = i
			break
		}
	}
	if index == -1 {
		return nil, apperrors.NewNotFoundError("załącznik %s nie istnieje", attachmentID)
	}

	removed := zlecenie.Attachments[index]
	zlecenie.Attachments = append(zlecenie.Attachments[:index], zlecenie.Attachments[index+1:]...)

	if err := s.zlecenieRepo.Update(ctx, zlecenie); err != nil {
		return nil, err
	}
	if err := s.storage.Delete(removed.URL); err != nil {
		s.logger.Warn("nie udało się usunąć pliku z magazynu",
			zap.String("url", removed.URL), zap.Error(err))
	}
	s.bus.Publish(ctx, events.AttachmentRemovedEvent{ZlecenieID: zlecenie.ID, FileName: removed.Name, Actor: actor})
	return zlecenie, nil
}

// SubmitOperat - przekazanie operatu przez przypisanego rzeczoznawcę.
// Jedyna droga z "W trakcie" wprost do rozliczenia: dołącza plik operatu,
// stempluje faktyczną datę wykonania i zakłada (lub nadpisuje) checklistę
// z odhaczonym odbiorem operatu.
func (s *ZlecenieService) SubmitOperat(ctx context.Context, id string, actualCompletionDate string, file *multipart.FileHeader) (*entities.Zlecenie, error) {
	actor, user, err := s.actor(ctx)
	if err != nil {
		return nil, err
	}
	zlecenie, err := s.zlecenieRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if zlecenie.Status != constants.StatusWTrakcie {
		return nil, apperrors.NewInvalidOperationError(
			"operat można przekazać tylko dla zlecenia w statusie '%s'", constants.StatusWTrakcie)
	}
	if zlecenie.AssignedAppraiserID == nil {
		return nil, apperrors.NewInvalidOperationError(
			"zlecenie #%s nie ma przypisanego rzeczoznawcy", zlecenie.ID)
	}
	if user.Role == constants.RoleRzeczoznawca && *zlecenie.AssignedAppraiserID != user.ID {
		return nil, apperrors.NewHttpError(403, "To zlecenie jest przypisane do innego rzeczoznawcy.", apperrors.ErrForbidden, nil)
	}

	attachment, err := s.saveAttachment(file, constants.OperatAttachmentIDPrefix)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	oldStatus := zlecenie.Status
	zlecenie.Status = constants.StatusDoRozliczenia
	zlecenie.ActualCompletionDate = &actualCompletionDate
	zlecenie.Attachments = append(zlecenie.Attachments, *attachment)
	zlecenie.SettlementChecklist = &entities.SettlementChecklist{OperatPobrany: true}
	// Kolejność wpisów: najpierw operat, potem zmiana statusu.
	zlecenie.CommunicationLog = append(zlecenie.CommunicationLog,
		entities.CommunicationEntry{
			ID:      fmt.Sprintf("log-%d-operat", now.UnixMilli()),
			Date:    now,
			Author:  constants.SystemAuthor,
			Content: "Rzeczoznawca przekazał operat.",
		},
		statusChangeEntry(now, oldStatus, constants.StatusDoRozliczenia),
	)

	if err := s.zlecenieRepo.Update(ctx, zlecenie); err != nil {
		return nil, err
	}
	s.bus.Publish(ctx, events.OperatSubmittedEvent{ZlecenieID: zlecenie.ID, FileName: attachment.Name, Actor: actor})
	return zlecenie, nil
}

func (s *ZlecenieService) UpdateChecklistItem(ctx context.Context, id string, item string, value bool) (*entities.Zlecenie, error) {
	actor, _, err := s.actor(ctx)
	if err != nil {
		return nil, err
	}
	zlecenie, err := s.zlecenieRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if zlecenie.SettlementChecklist == nil {
		return nil, apperrors.NewInvalidOperationError(
			"zlecenie #%s nie ma jeszcze checklisty rozliczenia", zlecenie.ID)
	}
	if !zlecenie.SettlementChecklist.Set(item, value) {
		return nil, apperrors.NewInvalidInputError("nieznana pozycja checklisty: %s", item)
	}

	if err := s.zlecenieRepo.Update(ctx, zlecenie); err != nil {
		return nil, err
	}
	s.bus.Publish(ctx, events.ChecklistUpdatedEvent{ZlecenieID: zlecenie.ID, Item: item, Value: value, Actor: actor})
	return zlecenie, nil
}

// Finalize zamyka zlecenie. Warunkiem jest komplet pięciu pozycji checklisty -
// sprawdzany tutaj, nie w warstwie prezentacji.
func (s *ZlecenieService) Finalize(ctx context.Context, id string) (*entities.Zlecenie, error) {
	actor, _, err := s.actor(ctx)
	if err != nil {
		return nil, err
	}
	zlecenie, err := s.zlecenieRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if zlecenie.Status != constants.StatusDoRozliczenia {
		return nil, apperrors.NewInvalidOperationError(
			"zakończyć można tylko zlecenie w statusie '%s'", constants.StatusDoRozliczenia)
	}
	if zlecenie.SettlementChecklist == nil || !zlecenie.SettlementChecklist.IsComplete() {
		return nil, apperrors.NewInvalidOperationError(
			"checklista rozliczenia zlecenia #%s nie została ukończona", zlecenie.ID)
	}

	now := time.Now()
	oldStatus := zlecenie.Status
	zlecenie.Status = constants.StatusZakonczone
	// Kolejność wpisów: najpierw zmiana statusu, potem archiwizacja.
	zlecenie.CommunicationLog = append(zlecenie.CommunicationLog,
		statusChangeEntry(now, oldStatus, constants.StatusZakonczone),
		entities.CommunicationEntry{
			ID:      fmt.Sprintf("log-%d-finalize", now.UnixMilli()),
			Date:    now,
			Author:  constants.SystemAuthor,
			Content: "Zlecenie zostało zakończone i zarchiwizowane.",
		},
	)

	if err := s.zlecenieRepo.Update(ctx, zlecenie); err != nil {
		return nil, err
	}
	s.bus.Publish(ctx, events.FinalizedEvent{ZlecenieID: zlecenie.ID, Actor: actor})
	return zlecenie, nil
}

func (s *ZlecenieService) saveAttachment(file *multipart.FileHeader, idPrefix string) (*entities.FileAttachment, error) {
	src, err := file.Open()
	if err != nil {
		return nil, apperrors.NewHttpError(400, "Nie udało się odczytać pliku.", err, nil)
	}
	defer src.Close()

	storedPath, err := s.storage.Save(src, file.Filename, "zlecenia")
	if err != nil {
		return nil, apperrors.NewHttpError(500, "Nie udało się zapisać pliku.", err, nil)
	}

	now := time.Now()
	return &entities.FileAttachment{
		ID:         fmt.Sprintf("%s%d", idPrefix, now.UnixMilli()),
		Name:       file.Filename,
		Size:       file.Size,
		Type:       file.Header.Get("Content-Type"),
		URL:        "/uploads/" + storedPath,
		UploadedAt: now,
	}, nil
}

// statusChangeEntry - wpis dziennika w brzmieniu widocznym dla użytkownika.
func statusChangeEntry(now time.Time, oldStatus, newStatus constants.ZlecenieStatus) entities.CommunicationEntry {
	return entities.CommunicationEntry{
		ID:      fmt.Sprintf("log-%d-status", now.UnixMilli()),
		Date:    now,
		Author:  constants.SystemAuthor,
		Content: fmt.Sprintf("Zmieniono status z '%s' na '%s'.", oldStatus, newStatus),
	}
}

// seedChecklistIfEntering zakłada checklistę przy pierwszym wejściu w status
// "Do rozliczenia". Odbiór operatu odhaczany jest od razu, jeśli operat już
// wisi w załącznikach. Raz założona checklista nigdy nie znika.
func seedChecklistIfEntering(zlecenie *entities.Zlecenie, newStatus constants.ZlecenieStatus) {
	if newStatus == constants.StatusDoRozliczenia && zlecenie.SettlementChecklist == nil {
		zlecenie.SettlementChecklist = &entities.SettlementChecklist{
			OperatPobrany: zlecenie.HasOperatAttachment(),
		}
	}
}

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }
