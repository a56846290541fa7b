package handlers

import (
	"net/http"

	"github.com/nicolaschoi7042/itNswinventory-sub004/internal/database"
	"github.com/nicolaschoi7042/itNswinventory-sub004/internal/models"

	"github.com/gin-gonic/gin"
)

// Dashboard — 콘솔 첫 화면의 집계 수치.
func Dashboard(c *gin.Context) {
	var (
		employees         int64
		hardware          int64
		software          int64
		activeAssignments int64
		overdue           int64
		licensesTotal     int64
		licensesUsed      int64
	)

	database.DB.Model(&models.Employee{}).Where("is_active = ?", true).Count(&employees)
	database.DB.Model(&models.Hardware{}).Where("status <> ?", models.HardwareRetired).Count(&hardware)
	database.DB.Model(&models.Software{}).Count(&software)
	database.DB.Model(&models.Assignment{}).Where("status = ?", models.StatusActive).Count(&activeAssignments)
	database.DB.Model(&models.Assignment{}).Where("status = ?", models.StatusOverdue).Count(&overdue)

	database.DB.Model(&models.Software{}).Select("COALESCE(SUM(total_licenses), 0)").Scan(&licensesTotal)
	database.DB.Model(&models.Assignment{}).
		Where("asset_type = ? AND status = ?", models.AssetSoftware, models.StatusActive).
		Count(&licensesUsed)

	c.JSON(http.StatusOK, gin.H{
		"employees":          employees,
		"hardware":           hardware,
		"software":           software,
		"active_assignments": activeAssignments,
		"overdue":            overdue,
		"licenses_total":     licensesTotal,
		"licenses_used":      licensesUsed,
	})
}
