package repository

import (
	"context"

	"github.com/vitrina-app/vitrina-backend/internal/app/model"
	"github.com/vitrina-app/vitrina-backend/internal/store"
)

const settingsPath = "settings"

type SettingsRepository interface {
	Find(ctx context.Context) (model.Settings, error)
	Init(ctx context.Context, settings model.Settings) error
	Update(ctx context.Context, fields map[string]interface{}) error
}

type settingsRepository struct {
	store store.Store
}

func NewSettingsRepository(s store.Store) SettingsRepository {
	return &settingsRepository{store: s}
}

func (r *settingsRepository) Find(ctx context.Context) (model.Settings, error) {
	var settings model.Settings
	if err := r.store.Get(ctx, settingsPath, &settings); err != nil {
		return model.Settings{}, err
	}
	return settings.Normalize(), nil
}

// Init writes the full settings record, used to materialize defaults on
// first read.
func (r *settingsRepository) Init(ctx context.Context, settings model.Settings) error {
	return r.store.Set(ctx, settingsPath, settings)
}

func (r *settingsRepository) Update(ctx context.Context, fields map[string]interface{}) error {
	return r.store.Update(ctx, settingsPath, fields)
}
