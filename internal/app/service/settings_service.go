package service

import (
	"context"
	"errors"

	"github.com/vitrina-app/vitrina-backend/internal/app/model"
	"github.com/vitrina-app/vitrina-backend/internal/app/repository"
	"github.com/vitrina-app/vitrina-backend/internal/store"
	"github.com/vitrina-app/vitrina-backend/pkg/logger"
)

type SettingsService interface {
	// GetSettings is total: it always returns a fully populated record.
	// An absent record is created with defaults (best-effort write); a
	// fetch failure returns the same defaults.
	GetSettings(ctx context.Context) model.Settings

	// UpdateSettings merges the given fields into the singleton record.
	UpdateSettings(ctx context.Context, fields map[string]interface{}) error
}

type settingsService struct {
	settingsRepo repository.SettingsRepository
}

func NewSettingsService(settingsRepo repository.SettingsRepository) SettingsService {
	return &settingsService{settingsRepo: settingsRepo}
}

func (s *settingsService) GetSettings(ctx context.Context) model.Settings {
	settings, err := s.settingsRepo.Find(ctx)
	if err == nil {
		return settings
	}

	defaults := model.DefaultSettings()

	if errors.Is(err, store.ErrNotFound) {
		// First read: materialize the defaults. Failing to persist them
		// is logged, not surfaced; the caller still gets the defaults.
		if initErr := s.settingsRepo.Init(ctx, defaults); initErr != nil {
			logger.Warn("Could not write default settings", map[string]interface{}{
				"error": initErr.Error(),
			})
		} else {
			logger.Info("Default settings created", nil)
		}
		return defaults
	}

	logger.Error("Failed to fetch settings", err, nil)
	return defaults
}

func (s *settingsService) UpdateSettings(ctx context.Context, fields map[string]interface{}) error {
	logger.Info("Updating settings", map[string]interface{}{
		"fields": len(fields),
	})

	if err := s.settingsRepo.Update(ctx, fields); err != nil {
		logger.Error("Failed to update settings", err, nil)
		if errors.Is(err, store.ErrPermissionDenied) {
			return ErrPermissionDenied
		}
		return err
	}
	return nil
}
