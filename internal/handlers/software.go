package handlers

import (
	"net/http"
	"strings"

	"github.com/nicolaschoi7042/itNswinventory-sub004/internal/database"
	"github.com/nicolaschoi7042/itNswinventory-sub004/internal/models"

	"github.com/gin-gonic/gin"
)

// 소프트웨어 자산 목록

func ListSoftware(c *gin.Context) {
	q := database.DB.Model(&models.Software{}).Order("name asc, version asc")

	if search := strings.TrimSpace(c.Query("q")); search != "" {
		like := "%" + search + "%"
		q = q.Where("name LIKE ? OR version LIKE ?", like, like)
	}

	var items []models.Software
	if err := q.Find(&items).Error; err != nil {
		jsonError(c, http.StatusInternalServerError, "소프트웨어 목록 조회에 실패했습니다")
		return
	}
	c.JSON(http.StatusOK, items)
}

func GetSoftware(c *gin.Context) {
	var sw models.Software
	if err := database.DB.First(&sw, c.Param("id")).Error; err != nil {
		jsonError(c, http.StatusNotFound, "소프트웨어를 찾을 수 없습니다")
		return
	}

	// 현재 사용중 라이선스 수를 함께 반환
	var used int64
	database.DB.Model(&models.Assignment{}).
		Where("asset_type = ? AND asset_id = ? AND status = ?", models.AssetSoftware, sw.ID, models.StatusActive).
		Count(&used)

	c.JSON(http.StatusOK, gin.H{
		"software":      sw,
		"used_licenses": used,
	})
}

type softwareRequest struct {
	Name          string `json:"name" binding:"required"`
	Version       string `json:"version"`
	LicenseKey    string `json:"license_key"`
	TotalLicenses int    `json:"total_licenses"`
	ExpiryDate    string `json:"expiry_date"`
	Notes         string `json:"notes"`
}

func CreateSoftware(c *gin.Context) {
	var req softwareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		jsonError(c, http.StatusBadRequest, "잘못된 요청입니다")
		return
	}

	if req.TotalLicenses < 0 {
		jsonError(c, http.StatusBadRequest, "라이선스 수는 0 이상이어야 합니다")
		return
	}
	if req.TotalLicenses == 0 {
		req.TotalLicenses = 1
	}

	expiry, err := parseDate(req.ExpiryDate)
	if err != nil {
		jsonError(c, http.StatusBadRequest, "만료일 형식이 올바르지 않습니다 (YYYY-MM-DD)")
		return
	}

	sw := models.Software{
		Name:          strings.TrimSpace(req.Name),
		Version:       strings.TrimSpace(req.Version),
		LicenseKey:    strings.TrimSpace(req.LicenseKey),
		TotalLicenses: req.TotalLicenses,
		ExpiryDate:    expiry,
		Notes:         req.Notes,
	}

	if err := database.DB.Create(&sw).Error; err != nil {
		jsonError(c, http.StatusInternalServerError, "소프트웨어 저장에 실패했습니다")
		return
	}

	if uid, ok := currentUserID(c); ok {
		database.CreateAuditLog(uid, "software", sw.ID, "create", "소프트웨어 등록: "+sw.Name)
	}

	c.JSON(http.StatusCreated, sw)
}

func UpdateSoftware(c *gin.Context) {
	var sw models.Software
	if err := database.DB.First(&sw, c.Param("id")).Error; err != nil {
		jsonError(c, http.StatusNotFound, "소프트웨어를 찾을 수 없습니다")
		return
	}

	var req softwareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		jsonError(c, http.StatusBadRequest, "잘못된 요청입니다")
		return
	}

	expiry, err := parseDate(req.ExpiryDate)
	if err != nil {
		jsonError(c, http.StatusBadRequest, "만료일 형식이 올바르지 않습니다 (YYYY-MM-DD)")
		return
	}

	if req.TotalLicenses < 0 {
		jsonError(c, http.StatusBadRequest, "라이선스 수는 0 이상이어야 합니다")
		return
	}

	// 보유 수를 현재 사용량 밑으로는 줄일 수 없다
	if req.TotalLicenses > 0 {
		var used int64
		database.DB.Model(&models.Assignment{}).
			Where("asset_type = ? AND asset_id = ? AND status = ?", models.AssetSoftware, sw.ID, models.StatusActive).
			Count(&used)
		if int64(req.TotalLicenses) < used {
			jsonError(c, http.StatusConflict, "사용중인 라이선스보다 적게 줄일 수 없습니다")
			return
		}
		sw.TotalLicenses = req.TotalLicenses
	}

	sw.Name = strings.TrimSpace(req.Name)
	sw.Version = strings.TrimSpace(req.Version)
	sw.LicenseKey = strings.TrimSpace(req.LicenseKey)
	if expiry != nil {
		sw.ExpiryDate = expiry
	}
	sw.Notes = req.Notes

	if err := database.DB.Save(&sw).Error; err != nil {
		jsonError(c, http.StatusInternalServerError, "소프트웨어 저장에 실패했습니다")
		return
	}

	if uid, ok := currentUserID(c); ok {
		database.CreateAuditLog(uid, "software", sw.ID, "update", "소프트웨어 수정: "+sw.Name)
	}

	c.JSON(http.StatusOK, sw)
}

func DeleteSoftware(c *gin.Context) {
	var sw models.Software
	if err := database.DB.First(&sw, c.Param("id")).Error; err != nil {
		jsonError(c, http.StatusNotFound, "소프트웨어를 찾을 수 없습니다")
		return
	}

	var active int64
	database.DB.Model(&models.Assignment{}).
		Where("asset_type = ? AND asset_id = ? AND status = ?", models.AssetSoftware, sw.ID, models.StatusActive).
		Count(&active)
	if active > 0 {
		jsonError(c, http.StatusConflict, "사용중인 소프트웨어는 삭제할 수 없습니다")
		return
	}

	if err := database.DB.Delete(&sw).Error; err != nil {
		jsonError(c, http.StatusInternalServerError, "소프트웨어 삭제에 실패했습니다")
		return
	}

	if uid, ok := currentUserID(c); ok {
		database.CreateAuditLog(uid, "software", sw.ID, "delete", "소프트웨어 삭제: "+sw.Name)
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
