package controllers

import (
	"fmt"
	"net/http"
	"time"

	"hotel-reservation/models"
	"hotel-reservation/services"
	"hotel-reservation/utils"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// AdminController covers the administrator pages that are not room or user
// management: report, settings, export and demo reset.
type AdminController struct {
	Reports  *services.ReportService
	Settings *services.SettingsService
	Export   *services.ExportService
	Demo     *services.DemoService
}

func NewAdminController(
	reports *services.ReportService,
	settings *services.SettingsService,
	export *services.ExportService,
	demo *services.DemoService,
) *AdminController {
	return &AdminController{Reports: reports, Settings: settings, Export: export, Demo: demo}
}

// Report (GET /api/admin/report)
func (ctrl *AdminController) Report(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, ctrl.Reports.Report())
}

// GetSettings (GET /api/admin/settings)
func (ctrl *AdminController) GetSettings(c *gin.Context) {
	hotel, err := ctrl.Settings.Get(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, hotel)
}

// UpdateSettings (PUT /api/admin/settings)
func (ctrl *AdminController) UpdateSettings(c *gin.Context) {
	var payload models.HotelSetting
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c, err)
		return
	}
	hotel, err := ctrl.Settings.Update(c.Request.Context(), payload)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, hotel)
}

// ExportData streams rooms, reservations and users as one workbook.
func (ctrl *AdminController) ExportData(c *gin.Context) {
	data, err := ctrl.Export.Workbook(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	filename := fmt.Sprintf("tierra-viva-%s.xlsx", time.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, data)
}

// ResetDemo (POST /api/admin/reset)
func (ctrl *AdminController) ResetDemo(c *gin.Context) {
	if err := ctrl.Demo.Reset(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "demo data restored"})
}
