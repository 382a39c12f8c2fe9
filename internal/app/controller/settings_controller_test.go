package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vitrina-app/vitrina-backend/internal/app/model"
	"github.com/vitrina-app/vitrina-backend/internal/app/repository"
	"github.com/vitrina-app/vitrina-backend/internal/app/service"
	"github.com/vitrina-app/vitrina-backend/internal/realtime"
	"github.com/vitrina-app/vitrina-backend/internal/store"
)

func setupSettingsControllerTest(t *testing.T) (*SettingsController, *gin.Engine, repository.SettingsRepository) {
	mem := store.NewMemory()
	settingsRepo := repository.NewSettingsRepository(mem)
	settingsService := service.NewSettingsService(settingsRepo)
	settingsController := NewSettingsController(settingsService, realtime.NewHub())

	gin.SetMode(gin.TestMode)
	router := gin.New()

	return settingsController, router, settingsRepo
}

func TestSettingsController_GetSettings_NeverExposesPassword(t *testing.T) {
	controller, router, settingsRepo := setupSettingsControllerTest(t)

	require.NoError(t, settingsRepo.Init(context.Background(), model.Settings{
		BannerText:    "Summer sale",
		AdminPassword: "hunter2",
	}))

	router.GET("/settings", controller.GetSettings)

	req := httptest.NewRequest(http.MethodGet, "/settings", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Summer sale", response["bannerText"])
	assert.NotContains(t, response, "adminPassword")
}

func TestSettingsController_GetSettings_FreshStoreGetsDefaults(t *testing.T) {
	controller, router, _ := setupSettingsControllerTest(t)

	router.GET("/settings", controller.GetSettings)

	req := httptest.NewRequest(http.MethodGet, "/settings", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.NotContains(t, response, "adminPassword")
	assert.NotNil(t, response["socialLinks"])
}

func TestSettingsController_GetAdminSettings_IncludesPassword(t *testing.T) {
	controller, router, settingsRepo := setupSettingsControllerTest(t)

	require.NoError(t, settingsRepo.Init(context.Background(), model.Settings{
		AdminPassword: "hunter2",
	}))

	router.GET("/admin/settings", controller.GetAdminSettings)

	req := httptest.NewRequest(http.MethodGet, "/admin/settings", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "hunter2", response["adminPassword"])
}

func TestSettingsController_UpdateSettings(t *testing.T) {
	controller, router, settingsRepo := setupSettingsControllerTest(t)

	require.NoError(t, settingsRepo.Init(context.Background(), model.DefaultSettings()))

	router.PATCH("/admin/settings", controller.UpdateSettings)

	body, _ := json.Marshal(map[string]interface{}{"bannerText": "New arrivals"})
	req := httptest.NewRequest(http.MethodPatch, "/admin/settings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	stored, err := settingsRepo.Find(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "New arrivals", stored.BannerText)
}

func TestSettingsController_UpdateSettings_EmptyBody(t *testing.T) {
	controller, router, _ := setupSettingsControllerTest(t)

	router.PATCH("/admin/settings", controller.UpdateSettings)

	req := httptest.NewRequest(http.MethodPatch, "/admin/settings", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
