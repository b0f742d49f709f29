package usecase

import (
	"context"

	"github.com/akshop/go-backend/internal/domain"
	"github.com/akshop/go-backend/pkg/e"
	"github.com/akshop/go-backend/pkg/logger"
)

// SettingsUseCase управляет настройками магазина.
type SettingsUseCase struct {
	settingsRepo SettingsRepository
	snapshots    SnapshotRepository
	logger       logger.Logger
}

func NewSettingsUC(settingsRepo SettingsRepository, snapshots SnapshotRepository, logger logger.Logger) *SettingsUseCase {
	return &SettingsUseCase{
		settingsRepo: settingsRepo,
		snapshots:    snapshots,
		logger:       logger,
	}
}

func (s *SettingsUseCase) Settings(ctx context.Context) domain.ShopSettings {
	return s.settingsRepo.Settings()
}

// Update заменяет контактные каналы целиком. Переопределение пароля
// администратора меняется, только если в запросе задан новый пароль.
func (s *SettingsUseCase) Update(ctx context.Context, req *UpdateSettingsReq) error {
	const op = "SettingsUseCase.Update"

	updated := req.Settings
	updated.AdminPassword = s.settingsRepo.Settings().AdminPassword
	if req.NewPassword != "" {
		updated.AdminPassword = req.NewPassword
	}

	s.settingsRepo.SetSettings(updated)

	if err := s.snapshots.SaveSettings(ctx, updated); err != nil {
		s.logger.Warnf("failed to persist settings snapshot: %v", e.Wrap(op, err))
	}

	return nil
}
