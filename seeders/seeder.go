// Plik: seeders/seeder.go
package seeders

import (
	"context"
	"time"

	"go.uber.org/zap"

	"operaty-system/internal/repositories"
)

// Run zapełnia repozytoria w pamięci danymi startowymi. Stan żyje tylko
// w procesie, więc seeder odpala się przy każdym starcie serwera.
func Run(
	ctx context.Context,
	userRepo repositories.UserRepositoryInterface,
	zlecenieRepo repositories.ZlecenieRepositoryInterface,
	logger *zap.Logger,
) error {
	for _, user := range mockUsers() {
		if err := userRepo.Create(ctx, user); err != nil {
			return err
		}
	}

	// Repozytorium dokłada nowe rekordy na początek listy, więc wstawiamy
	// od końca, żeby zachować kolejność zestawu startowego.
	zlecenia := mockZlecenia(time.Now())
	for i := len(zlecenia) - 1; i >= 0; i-- {
		if err := zlecenieRepo.Create(ctx, zlecenia[i]); err != nil {
			return err
		}
	}

	logger.Info("dane startowe załadowane",
		zap.Int("users", len(mockUsers())),
		zap.Int("zlecenia", len(zlecenia)),
	)
	return nil
}
