package service

import (
	"context"
	"fmt"

	"sejour-backend/internal/domain"
	"sejour-backend/internal/repository"
)

type settingsService struct {
	settingsRepo repository.SettingsRepository
	userRepo     repository.UserRepository
}

func NewSettingsService(settingsRepo repository.SettingsRepository, userRepo repository.UserRepository) SettingsService {
	return &settingsService{settingsRepo: settingsRepo, userRepo: userRepo}
}

func (s *settingsService) Get(ctx context.Context) (*domain.SystemSettings, error) {
	return s.settingsRepo.Get(ctx)
}

func (s *settingsService) Update(ctx context.Context, adminID int32, settings *domain.SystemSettings) error {
	admin, err := s.userRepo.GetByID(ctx, adminID)
	if err != nil {
		return err
	}
	if admin.Role != domain.UserRoleAdmin {
		return fmt.Errorf("admin role required: %w", domain.ErrForbidden)
	}

	if settings.CommissionRate < 0 || settings.CommissionRate > 100 {
		return fmt.Errorf("commission rate must be within [0, 100], got %.2f", settings.CommissionRate)
	}
	if settings.ServiceFeeRate < 0 || settings.ServiceFeeRate > 100 {
		return fmt.Errorf("service fee rate must be within [0, 100], got %.2f", settings.ServiceFeeRate)
	}
	return s.settingsRepo.Update(ctx, settings)
}
