package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/prn-tf/printer-portal/internal/domain"
	"github.com/prn-tf/printer-portal/internal/repository"
)

// SettingsService manages per-owner cost-calculation configuration.
type SettingsService struct {
	settingsRepo repository.SettingsRepository
	logger       zerolog.Logger
}

// NewSettingsService creates a new SettingsService.
func NewSettingsService(settingsRepo repository.SettingsRepository, logger zerolog.Logger) *SettingsService {
	return &SettingsService{
		settingsRepo: settingsRepo,
		logger:       logger.With().Str("service", "settings").Logger(),
	}
}

// Get returns the owner's settings, creating and persisting the defaults on
// first read. The underlying upsert is idempotent on the owner key, so
// concurrent first reads settle on a single document.
func (s *SettingsService) Get(ctx context.Context, ownerEmail string) (*domain.UserSettings, error) {
	settings, err := s.settingsRepo.GetOrCreate(ctx, ownerEmail)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to get settings")
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	return settings, nil
}

// Update upserts both configurable fields and returns the stored result.
func (s *SettingsService) Update(ctx context.Context, ownerEmail string, costCoefficient float64, currencySymbol string) (*domain.UserSettings, error) {
	settings, err := s.settingsRepo.Upsert(ctx, ownerEmail, costCoefficient, currencySymbol)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// An upsert that finds nothing afterwards is a store-level
			// inconsistency, not a caller mistake.
			s.logger.Error().Str("owner", ownerEmail).Msg("settings absent immediately after upsert")
			return nil, domain.ErrSettingsNotFound
		}
		s.logger.Error().Err(err).Msg("failed to update settings")
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	s.logger.Info().Str("owner", ownerEmail).Msg("settings updated")
	return settings, nil
}
