package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vitrina-app/vitrina-backend/internal/app/model"
	"github.com/vitrina-app/vitrina-backend/internal/app/repository"
	"github.com/vitrina-app/vitrina-backend/internal/store"
)

func setupSettingsServiceTest(t *testing.T) (SettingsService, repository.SettingsRepository, *store.Memory) {
	mem := store.NewMemory()
	settingsRepo := repository.NewSettingsRepository(mem)
	return NewSettingsService(settingsRepo), settingsRepo, mem
}

func TestSettingsService_GetSettings_CreatesDefaultsOnFirstRead(t *testing.T) {
	settingsService, settingsRepo, _ := setupSettingsServiceTest(t)

	settings := settingsService.GetSettings(context.Background())

	assert.Equal(t, model.DefaultAdminPassword, settings.AdminPassword)
	assert.NotNil(t, settings.SocialLinks)

	// The defaults were persisted, so a direct read now succeeds.
	stored, err := settingsRepo.Find(context.Background())
	require.NoError(t, err)
	assert.Equal(t, model.DefaultAdminPassword, stored.AdminPassword)

	// Idempotent: the second call returns the same record.
	assert.Equal(t, settings, settingsService.GetSettings(context.Background()))
}

func TestSettingsService_GetSettings_ReturnsStoredRecord(t *testing.T) {
	settingsService, settingsRepo, _ := setupSettingsServiceTest(t)

	require.NoError(t, settingsRepo.Init(context.Background(), model.Settings{
		BannerText:    "Summer sale",
		AdminPassword: "hunter2",
	}))

	settings := settingsService.GetSettings(context.Background())

	assert.Equal(t, "Summer sale", settings.BannerText)
	assert.Equal(t, "hunter2", settings.AdminPassword)
	assert.NotNil(t, settings.SocialLinks)
}

func TestSettingsService_GetSettings_DefaultsOnFetchFailure(t *testing.T) {
	settingsService, _, mem := setupSettingsServiceTest(t)
	mem.FailReads(errors.New("backend unreachable"))

	settings := settingsService.GetSettings(context.Background())

	assert.Equal(t, model.DefaultAdminPassword, settings.AdminPassword)
}

func TestSettingsService_GetSettings_DefaultWriteFailureStillReturnsDefaults(t *testing.T) {
	settingsService, _, mem := setupSettingsServiceTest(t)
	mem.FailWrites(errors.New("write rejected"))

	settings := settingsService.GetSettings(context.Background())

	assert.Equal(t, model.DefaultAdminPassword, settings.AdminPassword)
}

func TestSettingsService_UpdateSettings(t *testing.T) {
	settingsService, settingsRepo, _ := setupSettingsServiceTest(t)

	require.NoError(t, settingsRepo.Init(context.Background(), model.DefaultSettings()))

	err := settingsService.UpdateSettings(context.Background(), map[string]interface{}{
		"bannerText": "New arrivals",
	})
	require.NoError(t, err)

	settings := settingsService.GetSettings(context.Background())
	assert.Equal(t, "New arrivals", settings.BannerText)
	// Untouched fields survive the merge.
	assert.Equal(t, model.DefaultAdminPassword, settings.AdminPassword)
}

func TestSettingsService_UpdateSettings_PermissionDenied(t *testing.T) {
	settingsService, _, mem := setupSettingsServiceTest(t)
	mem.FailWrites(store.ErrPermissionDenied)

	err := settingsService.UpdateSettings(context.Background(), map[string]interface{}{
		"bannerText": "x",
	})

	assert.ErrorIs(t, err, ErrPermissionDenied)
}

func TestSettings_Sanitized(t *testing.T) {
	s := model.Settings{
		BannerText:    "Sale",
		AdminPassword: "hunter2",
	}

	public := s.Sanitized()

	assert.Empty(t, public.AdminPassword)
	assert.Equal(t, "Sale", public.BannerText)
	assert.NotNil(t, public.SocialLinks)
}
