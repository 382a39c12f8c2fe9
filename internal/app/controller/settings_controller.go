package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vitrina-app/vitrina-backend/internal/app/service"
	"github.com/vitrina-app/vitrina-backend/internal/errors"
	"github.com/vitrina-app/vitrina-backend/internal/realtime"
)

type SettingsController struct {
	settingsService service.SettingsService
	hub             *realtime.Hub
}

func NewSettingsController(settingsService service.SettingsService, hub *realtime.Hub) *SettingsController {
	return &SettingsController{
		settingsService: settingsService,
		hub:             hub,
	}
}

// GetSettings handles GET /api/v1/settings
// The public record never includes the admin password.
func (ctrl *SettingsController) GetSettings(c *gin.Context) {
	settings := ctrl.settingsService.GetSettings(c.Request.Context())
	c.JSON(http.StatusOK, settings.Sanitized())
}

// GetAdminSettings handles GET /api/v1/admin/settings
// Returns the full record, admin password included, for the back-office
// settings form.
func (ctrl *SettingsController) GetAdminSettings(c *gin.Context) {
	settings := ctrl.settingsService.GetSettings(c.Request.Context())
	c.JSON(http.StatusOK, settings)
}

// UpdateSettings handles PATCH /api/v1/settings (admin)
// Fields merge into the singleton; omitted fields are untouched.
func (ctrl *SettingsController) UpdateSettings(c *gin.Context) {
	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		errors.BadRequest(c, errors.ValidationInvalidInput, "Invalid settings payload: "+err.Error())
		return
	}
	if len(fields) == 0 {
		errors.BadRequest(c, errors.ValidationRequired, "No fields to update")
		return
	}

	if err := ctrl.settingsService.UpdateSettings(c.Request.Context(), fields); err != nil {
		errors.HandleStoreWriteError(c, err, "Failed to update settings")
		return
	}

	ctrl.hub.Notify("settings")
	c.JSON(http.StatusOK, gin.H{"message": "Settings updated successfully"})
}
