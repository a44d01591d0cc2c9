package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ahassan/unisync/internal/app/models"
	"github.com/ahassan/unisync/internal/app/models/dto"
	"github.com/ahassan/unisync/internal/app/viewmodels"
)

// SettingsController exposes the per-user settings singleton.
type SettingsController struct {
	settings *viewmodels.SettingsViewModel
}

// NewSettingsController creates a new SettingsController
func NewSettingsController(settings *viewmodels.SettingsViewModel) *SettingsController {
	return &SettingsController{
		settings: settings,
	}
}

// GetSettings returns the current settings value.
func (c *SettingsController) GetSettings(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(c.settings.Settings()))
}

// ReloadSettings refreshes the settings from the remote store and
// returns the result.
func (c *SettingsController) ReloadSettings(ctx *gin.Context) {
	c.settings.Load(ctx)
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(c.settings.Settings()))
}

// UpdateSettings replaces the settings document wholesale.
func (c *SettingsController) UpdateSettings(ctx *gin.Context) {
	var req dto.UpdateSettingsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid settings data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	settings := models.Settings{
		Theme:                models.Theme(req.Theme),
		NotificationsEnabled: req.NotificationsEnabled,
		Semester:             req.Semester,
	}
	c.settings.Save(settings)

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(settings))
}
