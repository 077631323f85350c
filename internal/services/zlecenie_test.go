// Plik: internal/services/zlecenie_test.go
package services

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"operaty-system/internal/dto"
	"operaty-system/internal/integrations/geocoder"
	"operaty-system/internal/listeners"
	"operaty-system/internal/repositories"
	"operaty-system/pkg/constants"
	"operaty-system/pkg/eventbus"
	"operaty-system/pkg/filestorage"
	"operaty-system/pkg/utils"
	"operaty-system/seeders"
)

type testEnv struct {
	svc           ZlecenieServiceInterface
	zlecenieRepo  repositories.ZlecenieRepositoryInterface
	userRepo      repositories.UserRepositoryInterface
	notifications repositories.NotificationRepositoryInterface
	audit         repositories.AuditRepositoryInterface
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	logger := zap.NewNop()

	zlecenieRepo := repositories.NewZlecenieRepository()
	userRepo := repositories.NewUserRepository()
	notificationRepo := repositories.NewNotificationRepository()
	auditRepo := repositories.NewAuditRepository()

	bus := eventbus.New(logger)
	listeners.NewAuditListener(auditRepo, logger).Register(bus)
	listeners.NewNotificationListener(notificationRepo, logger).Register(bus)

	storage, err := filestorage.NewLocalFileStorage(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, seeders.Run(context.Background(), userRepo, zlecenieRepo, logger))

	return &testEnv{
		svc:           NewZlecenieService(zlecenieRepo, userRepo, bus, geocoder.NewMockProvider(logger), storage, logger),
		zlecenieRepo:  zlecenieRepo,
		userRepo:      userRepo,
		notifications: notificationRepo,
		audit:         auditRepo,
	}
}

func adminCtx() context.Context {
	return utils.ContextWithUser(context.Background(), "1", constants.RoleAdmin)
}

func appraiserCtx(id string) context.Context {
	return utils.ContextWithUser(context.Background(), id, constants.RoleRzeczoznawca)
}

func uploadedFile(t *testing.T, name string) *multipart.FileHeader {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", name)
	require.NoError(t, err)
	_, err = part.Write([]byte("%PDF-1.4 testowa zawartość"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	_, fh, err := req.FormFile("file")
	require.NoError(t, err)
	return fh
}

func TestCreateLead(t *testing.T) {
	env := newTestEnv(t)

	lead, err := env.svc.CreateLead(adminCtx(), dto.CreateLeadDTO{
		LocationString:      "ul. Testowa 5, Warszawa",
		PropertyType:        "Mieszkanie",
		ValuationPurpose:    "Kredyt hipoteczny",
		ClientFullName:      "Tomasz Testowy",
		ClientPhone:         "500-100-200",
		ClientAppraisalForm: "Elektroniczny",
	})
	require.NoError(t, err)

	assert.Equal(t, constants.StatusLead, lead.Status)
	assert.True(t, strings.HasPrefix(lead.ID, "L"))
	assert.Nil(t, lead.SettlementChecklist)
	assert.Nil(t, lead.PublicationDate)
	require.Len(t, lead.CommunicationLog, 1)
	assert.Equal(t, "Lead utworzony.", lead.CommunicationLog[0].Content)
	require.NotNil(t, lead.Voivodeship)
	assert.Equal(t, "mazowieckie", *lead.Voivodeship)

	entries, err := env.audit.GetAll(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	assert.Equal(t, "Utworzono leada", entries[0].Action)
	assert.Equal(t, "admin@wyceny.pl", entries[0].UserEmail)

	notifications, err := env.notifications.GetAll(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, notifications)
	assert.Contains(t, notifications[0].Message, "Dodano nowego leada")
}

func TestChangeStatusSameStatusIsNoOp(t *testing.T) {
	env := newTestEnv(t)

	before, err := env.zlecenieRepo.FindByID(context.Background(), "1")
	require.NoError(t, err)

	res, err := env.svc.ChangeStatus(adminCtx(), "1", constants.StatusNowe)
	require.NoError(t, err)

	assert.Equal(t, before.Status, res.Status)
	assert.Len(t, res.CommunicationLog, len(before.CommunicationLog))

	entries, err := env.audit.GetAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestChangeStatusRejectsDirectCancellation(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.svc.ChangeStatus(adminCtx(), "1", constants.StatusAnulowane)
	require.Error(t, err)

	after, err := env.zlecenieRepo.FindByID(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, constants.StatusNowe, after.Status)
}

func TestChangeStatusAssignmentGuard(t *testing.T) {
	env := newTestEnv(t)

	// Zlecenie "1" nie ma przypisanego rzeczoznawcy.
	before, err := env.zlecenieRepo.FindByID(context.Background(), "1")
	require.NoError(t, err)

	for _, status := range []constants.ZlecenieStatus{constants.StatusWTrakcie, constants.StatusDoRozliczenia} {
		_, err := env.svc.ChangeStatus(adminCtx(), "1", status)
		require.Error(t, err)
	}

	after, err := env.zlecenieRepo.FindByID(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, constants.StatusNowe, after.Status)
	assert.Len(t, after.CommunicationLog, len(before.CommunicationLog))

	entries, err := env.audit.GetAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestCancelRecordsReason(t *testing.T) {
	env := newTestEnv(t)

	res, err := env.svc.Cancel(adminCtx(), "1", "Klient zrezygnował")
	require.NoError(t, err)

	assert.Equal(t, constants.StatusAnulowane, res.Status)
	require.GreaterOrEqual(t, len(res.CommunicationLog), 2)
	last := res.CommunicationLog[len(res.CommunicationLog)-1]
	previous := res.CommunicationLog[len(res.CommunicationLog)-2]
	assert.Equal(t, "Zmieniono status z 'Nowe' na 'Anulowane'.", previous.Content)
	assert.Equal(t, "Powód anulowania: Klient zrezygnował", last.Content)
}

func TestCancelRequiresReason(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.svc.Cancel(adminCtx(), "1", "")
	require.Error(t, err)

	after, err := env.zlecenieRepo.FindByID(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, constants.StatusNowe, after.Status)
}

func TestAssignAndChangeStatus(t *testing.T) {
	env := newTestEnv(t)

	res, err := env.svc.AssignAndChangeStatus(adminCtx(), "1", "2", constants.StatusWTrakcie)
	require.NoError(t, err)

	assert.Equal(t, constants.StatusWTrakcie, res.Status)
	require.NotNil(t, res.AssignedAppraiserID)
	assert.Equal(t, "2", *res.AssignedAppraiserID)

	// Kolejność wpisów: najpierw przypisanie, potem zmiana statusu.
	require.GreaterOrEqual(t, len(res.CommunicationLog), 2)
	assignEntry := res.CommunicationLog[len(res.CommunicationLog)-2]
	statusEntry := res.CommunicationLog[len(res.CommunicationLog)-1]
	assert.Equal(t, "Przypisano rzeczoznawcę: rzeczoznawca1@firma.pl.", assignEntry.Content)
	assert.Equal(t, "Zmieniono status z 'Nowe' na 'W trakcie'.", statusEntry.Content)

	// "W trakcie" nie zakłada jeszcze checklisty.
	assert.Nil(t, res.SettlementChecklist)
}

func TestAssignToSettlementSeedsChecklist(t *testing.T) {
	env := newTestEnv(t)

	res, err := env.svc.AssignAndChangeStatus(adminCtx(), "1", "2", constants.StatusDoRozliczenia)
	require.NoError(t, err)

	require.NotNil(t, res.SettlementChecklist)
	// Operatu nie ma w załącznikach, więc odbiór pozostaje nieodhaczony.
	assert.False(t, res.SettlementChecklist.OperatPobrany)
	assert.False(t, res.SettlementChecklist.IsComplete())
}

func TestChecklistSurvivesCancellation(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.svc.AssignAndChangeStatus(adminCtx(), "1", "2", constants.StatusDoRozliczenia)
	require.NoError(t, err)

	res, err := env.svc.Cancel(adminCtx(), "1", "Rozliczenie przerwane")
	require.NoError(t, err)

	assert.Equal(t, constants.StatusAnulowane, res.Status)
	assert.NotNil(t, res.SettlementChecklist)
}

func TestFinalizeRequiresCompleteChecklist(t *testing.T) {
	env := newTestEnv(t)

	// Zlecenie "5" ma odhaczone 2 z 5 pozycji.
	_, err := env.svc.Finalize(adminCtx(), "5")
	require.Error(t, err)

	after, err := env.zlecenieRepo.FindByID(context.Background(), "5")
	require.NoError(t, err)
	assert.Equal(t, constants.StatusDoRozliczenia, after.Status)

	for _, item := range []string{"fakturaOplacona", "operatPrzekazany", "rozliczonoZRzeczoznawca"} {
		_, err := env.svc.UpdateChecklistItem(adminCtx(), "5", item, true)
		require.NoError(t, err)
	}

	res, err := env.svc.Finalize(adminCtx(), "5")
	require.NoError(t, err)
	assert.Equal(t, constants.StatusZakonczone, res.Status)

	require.GreaterOrEqual(t, len(res.CommunicationLog), 2)
	statusEntry := res.CommunicationLog[len(res.CommunicationLog)-2]
	archiveEntry := res.CommunicationLog[len(res.CommunicationLog)-1]
	assert.Equal(t, "Zmieniono status z 'Do rozliczenia' na 'Zakończone'.", statusEntry.Content)
	assert.Equal(t, "Zlecenie zostało zakończone i zarchiwizowane.", archiveEntry.Content)
}

func TestConvertLeadScenario(t *testing.T) {
	env := newTestEnv(t)

	lead, err := env.svc.CreateLead(adminCtx(), dto.CreateLeadDTO{
		LocationString:      "ul. Polna 2, Kraków",
		PropertyType:        "Dom",
		ValuationPurpose:    "Sprzedaż",
		ClientFullName:      "Maria Malinowska",
		ClientPhone:         "600-700-800",
		ClientAppraisalForm: "Papierowy",
	})
	require.NoError(t, err)

	// Bez ceny dla rzeczoznawcy konwersja jest odrzucana.
	_, err = env.svc.ConvertLead(adminCtx(), lead.ID)
	require.Error(t, err)

	after, err := env.zlecenieRepo.FindByID(context.Background(), lead.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.StatusLead, after.Status)
	assert.Nil(t, after.PublicationDate)

	_, err = env.svc.UpdateZlecenie(adminCtx(), lead.ID, dto.UpdateZlecenieDTO{
		ProposedPrice: null.Float64From(850),
	})
	require.NoError(t, err)

	converted, err := env.svc.ConvertLead(adminCtx(), lead.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.StatusNowe, converted.Status)
	require.NotNil(t, converted.PublicationDate)
}

func TestAddResponseScenario(t *testing.T) {
	env := newTestEnv(t)

	before, err := env.zlecenieRepo.FindByID(context.Background(), "1")
	require.NoError(t, err)

	res, err := env.svc.AddResponse(appraiserCtx("2"), "1", dto.AppraiserResponseDTO{
		CompletionDate: "2024-09-15",
		Status:         "accepted",
	})
	require.NoError(t, err)

	assert.Equal(t, constants.StatusZarezerwowane, res.Status)
	require.Len(t, res.Responses, 1)
	assert.Equal(t, "rzeczoznawca1@firma.pl", res.Responses[0].Author)
	// Dokładnie jeden nowy wpis dziennika.
	assert.Len(t, res.CommunicationLog, len(before.CommunicationLog)+1)
	assert.Equal(t, "Rzeczoznawca rzeczoznawca1@firma.pl odpowiedział na zlecenie.",
		res.CommunicationLog[len(res.CommunicationLog)-1].Content)

	// Drugiej odpowiedzi nie da się już złożyć - zlecenie opuściło giełdę.
	_, err = env.svc.AddResponse(appraiserCtx("3"), "1", dto.AppraiserResponseDTO{
		CompletionDate: "2024-09-20",
		Status:         "accepted",
	})
	require.Error(t, err)
}

func TestSubmitOperatScenario(t *testing.T) {
	env := newTestEnv(t)

	before, err := env.zlecenieRepo.FindByID(context.Background(), "6")
	require.NoError(t, err)
	require.Equal(t, constants.StatusWTrakcie, before.Status)

	res, err := env.svc.SubmitOperat(appraiserCtx("3"), "6", "2024-06-01", uploadedFile(t, "operat.pdf"))
	require.NoError(t, err)

	assert.Equal(t, constants.StatusDoRozliczenia, res.Status)
	require.NotNil(t, res.ActualCompletionDate)
	assert.Equal(t, "2024-06-01", *res.ActualCompletionDate)

	require.NotNil(t, res.SettlementChecklist)
	assert.True(t, res.SettlementChecklist.OperatPobrany)
	assert.False(t, res.SettlementChecklist.FakturaWystawiona)

	require.Len(t, res.Attachments, 1)
	assert.True(t, strings.HasPrefix(res.Attachments[0].ID, constants.OperatAttachmentIDPrefix))

	// Dwa nowe wpisy w kolejności: operat, potem zmiana statusu.
	require.Len(t, res.CommunicationLog, len(before.CommunicationLog)+2)
	operatEntry := res.CommunicationLog[len(res.CommunicationLog)-2]
	statusEntry := res.CommunicationLog[len(res.CommunicationLog)-1]
	assert.Equal(t, "Rzeczoznawca przekazał operat.", operatEntry.Content)
	assert.Equal(t, "Zmieniono status z 'W trakcie' na 'Do rozliczenia'.", statusEntry.Content)
}

func TestSubmitOperatRejectsForeignAppraiser(t *testing.T) {
	env := newTestEnv(t)

	// Zlecenie "6" jest przypisane do rzeczoznawcy "3".
	_, err := env.svc.SubmitOperat(appraiserCtx("2"), "6", "2024-06-01", uploadedFile(t, "operat.pdf"))
	require.Error(t, err)

	after, err := env.zlecenieRepo.FindByID(context.Background(), "6")
	require.NoError(t, err)
	assert.Equal(t, constants.StatusWTrakcie, after.Status)
	assert.Empty(t, after.Attachments)
}

func TestUpdateSubStatusOnlyInProgress(t *testing.T) {
	env := newTestEnv(t)

	sub := constants.SubStatusOperatWPrzygotowaniu
	res, err := env.svc.UpdateSubStatus(adminCtx(), "6", &sub)
	require.NoError(t, err)
	require.NotNil(t, res.SubStatus)
	assert.Equal(t, constants.SubStatusOperatWPrzygotowaniu, *res.SubStatus)

	_, err = env.svc.UpdateSubStatus(adminCtx(), "1", &sub)
	require.Error(t, err)
}

func TestUpdateChecklistRequiresExistingChecklist(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.svc.UpdateChecklistItem(adminCtx(), "1", "fakturaWystawiona", true)
	require.Error(t, err)
}

func TestAddCommunicationEntryUsesActorEmail(t *testing.T) {
	env := newTestEnv(t)

	res, err := env.svc.AddCommunicationEntry(adminCtx(), "1", "Kontakt telefoniczny z klientem.")
	require.NoError(t, err)

	last := res.CommunicationLog[len(res.CommunicationLog)-1]
	assert.Equal(t, "admin@wyceny.pl", last.Author)
	assert.Equal(t, "Kontakt telefoniczny z klientem.", last.Content)
}
