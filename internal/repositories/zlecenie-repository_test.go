// Plik: internal/repositories/zlecenie-repository_test.go
package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"operaty-system/internal/entities"
	"operaty-system/pkg/constants"
	apperrors "operaty-system/pkg/errors"
)

func newZlecenie(id string) *entities.Zlecenie {
	return &entities.Zlecenie{
		ID:               id,
		CreationDate:     time.Now(),
		Status:           constants.StatusNowe,
		LocationString:   "ul. Testowa 1, Warszawa",
		PropertyType:     "Mieszkanie",
		ValuationPurpose: "Kredyt hipoteczny",
		Responses:        []entities.AppraiserResponse{},
		Attachments:      []entities.FileAttachment{},
		CommunicationLog: []entities.CommunicationEntry{},
	}
}

func TestZlecenieRepositoryNewestFirst(t *testing.T) {
	repo := NewZlecenieRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newZlecenie("1")))
	require.NoError(t, repo.Create(ctx, newZlecenie("2")))
	require.NoError(t, repo.Create(ctx, newZlecenie("3")))

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "3", all[0].ID)
	assert.Equal(t, "1", all[2].ID)
}

func TestZlecenieRepositoryRejectsDuplicateID(t *testing.T) {
	repo := NewZlecenieRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newZlecenie("1")))
	err := repo.Create(ctx, newZlecenie("1"))
	require.Error(t, err)
}

func TestZlecenieRepositoryFindByIDNotFound(t *testing.T) {
	repo := NewZlecenieRepository()

	_, err := repo.FindByID(context.Background(), "brak")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestZlecenieRepositoryUpdateRequiresExisting(t *testing.T) {
	repo := NewZlecenieRepository()

	err := repo.Update(context.Background(), newZlecenie("widmo"))
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

// Mutacja rekordu zwróconego z repozytorium nie może przeciec do magazynu -
// zapis przechodzi wyłącznie przez Update.
func TestZlecenieRepositoryReturnsIsolatedCopies(t *testing.T) {
	repo := NewZlecenieRepository()
	ctx := context.Background()

	original := newZlecenie("1")
	require.NoError(t, repo.Create(ctx, original))

	fetched, err := repo.FindByID(ctx, "1")
	require.NoError(t, err)
	fetched.Status = constants.StatusAnulowane
	fetched.CommunicationLog = append(fetched.CommunicationLog, entities.CommunicationEntry{
		ID: "log-x", Author: constants.SystemAuthor, Content: "wpis poza transakcją",
	})

	stored, err := repo.FindByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, constants.StatusNowe, stored.Status)
	assert.Empty(t, stored.CommunicationLog)

	// Również rekord podany do Create nie jest współdzielony z magazynem.
	original.LocationString = "zmieniona lokalizacja"
	stored, err = repo.FindByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "ul. Testowa 1, Warszawa", stored.LocationString)
}

func TestZlecenieRepositoryUpdateReplacesRecord(t *testing.T) {
	repo := NewZlecenieRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newZlecenie("1")))

	record, err := repo.FindByID(ctx, "1")
	require.NoError(t, err)
	record.Status = constants.StatusZarezerwowane
	require.NoError(t, repo.Update(ctx, record))

	stored, err := repo.FindByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, constants.StatusZarezerwowane, stored.Status)

	// Update nie zmienia pozycji rekordu na liście.
	require.NoError(t, repo.Create(ctx, newZlecenie("2")))
	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "1"}, []string{all[0].ID, all[1].ID})
}
