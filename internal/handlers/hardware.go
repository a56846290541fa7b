package handlers

import (
	"net/http"
	"strings"

	"github.com/nicolaschoi7042/itNswinventory-sub004/internal/database"
	"github.com/nicolaschoi7042/itNswinventory-sub004/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// 하드웨어 자산 목록

func ListHardware(c *gin.Context) {
	q := database.DB.Model(&models.Hardware{}).Order("asset_tag asc")

	if search := strings.TrimSpace(c.Query("q")); search != "" {
		like := "%" + search + "%"
		q = q.Where("asset_tag LIKE ? OR model_name LIKE ? OR serial_number LIKE ?", like, like, like)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}

	var items []models.Hardware
	if err := q.Find(&items).Error; err != nil {
		jsonError(c, http.StatusInternalServerError, "하드웨어 목록 조회에 실패했습니다")
		return
	}
	c.JSON(http.StatusOK, items)
}

func GetHardware(c *gin.Context) {
	var hw models.Hardware
	if err := database.DB.First(&hw, c.Param("id")).Error; err != nil {
		jsonError(c, http.StatusNotFound, "하드웨어를 찾을 수 없습니다")
		return
	}
	c.JSON(http.StatusOK, hw)
}

type hardwareRequest struct {
	AssetTag     string `json:"asset_tag"`
	Manufacturer string `json:"manufacturer"`
	ModelName    string `json:"model_name" binding:"required"`
	SerialNumber string `json:"serial_number"`
	PurchaseDate string `json:"purchase_date"`
	Status       string `json:"status"`
	Notes        string `json:"notes"`
}

func CreateHardware(c *gin.Context) {
	var req hardwareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		jsonError(c, http.StatusBadRequest, "잘못된 요청입니다")
		return
	}

	purchaseDate, err := parseDate(req.PurchaseDate)
	if err != nil {
		jsonError(c, http.StatusBadRequest, "구매일 형식이 올바르지 않습니다 (YYYY-MM-DD)")
		return
	}

	tag := strings.TrimSpace(req.AssetTag)
	if tag == "" {
		// 태그 미지정 시 자동 발급
		tag = "HW-" + uuid.NewString()[:8]
	}

	status := models.HardwareStatus(req.Status)
	if req.Status == "" {
		status = models.HardwareNormal
	}
	switch status {
	case models.HardwareNormal, models.HardwareRepair, models.HardwareRetired:
		// ok
	default:
		jsonError(c, http.StatusBadRequest, "올바르지 않은 자산 상태입니다")
		return
	}

	hw := models.Hardware{
		AssetTag:     tag,
		Manufacturer: strings.TrimSpace(req.Manufacturer),
		ModelName:    strings.TrimSpace(req.ModelName),
		SerialNumber: strings.TrimSpace(req.SerialNumber),
		PurchaseDate: purchaseDate,
		Status:       status,
		Notes:        req.Notes,
	}

	if err := database.DB.Create(&hw).Error; err != nil {
		jsonError(c, http.StatusInternalServerError, "하드웨어 저장에 실패했습니다")
		return
	}

	if uid, ok := currentUserID(c); ok {
		database.CreateAuditLog(uid, "hardware", hw.ID, "create", "하드웨어 등록: "+hw.AssetTag)
	}

	c.JSON(http.StatusCreated, hw)
}

func UpdateHardware(c *gin.Context) {
	var hw models.Hardware
	if err := database.DB.First(&hw, c.Param("id")).Error; err != nil {
		jsonError(c, http.StatusNotFound, "하드웨어를 찾을 수 없습니다")
		return
	}

	var req hardwareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		jsonError(c, http.StatusBadRequest, "잘못된 요청입니다")
		return
	}

	purchaseDate, err := parseDate(req.PurchaseDate)
	if err != nil {
		jsonError(c, http.StatusBadRequest, "구매일 형식이 올바르지 않습니다 (YYYY-MM-DD)")
		return
	}

	if req.Status != "" {
		status := models.HardwareStatus(req.Status)
		switch status {
		case models.HardwareNormal, models.HardwareRepair, models.HardwareRetired:
			hw.Status = status
		default:
			jsonError(c, http.StatusBadRequest, "올바르지 않은 자산 상태입니다")
			return
		}
	}

	if tag := strings.TrimSpace(req.AssetTag); tag != "" {
		hw.AssetTag = tag
	}
	hw.Manufacturer = strings.TrimSpace(req.Manufacturer)
	hw.ModelName = strings.TrimSpace(req.ModelName)
	hw.SerialNumber = strings.TrimSpace(req.SerialNumber)
	if purchaseDate != nil {
		hw.PurchaseDate = purchaseDate
	}
	hw.Notes = req.Notes

	if err := database.DB.Save(&hw).Error; err != nil {
		jsonError(c, http.StatusInternalServerError, "하드웨어 저장에 실패했습니다")
		return
	}

	if uid, ok := currentUserID(c); ok {
		database.CreateAuditLog(uid, "hardware", hw.ID, "update", "하드웨어 수정: "+hw.AssetTag)
	}

	c.JSON(http.StatusOK, hw)
}

func DeleteHardware(c *gin.Context) {
	var hw models.Hardware
	if err := database.DB.First(&hw, c.Param("id")).Error; err != nil {
		jsonError(c, http.StatusNotFound, "하드웨어를 찾을 수 없습니다")
		return
	}

	var active int64
	database.DB.Model(&models.Assignment{}).
		Where("asset_type = ? AND asset_id = ? AND status = ?", models.AssetHardware, hw.ID, models.StatusActive).
		Count(&active)
	if active > 0 {
		jsonError(c, http.StatusConflict, "사용중인 하드웨어는 삭제할 수 없습니다")
		return
	}

	if err := database.DB.Delete(&hw).Error; err != nil {
		jsonError(c, http.StatusInternalServerError, "하드웨어 삭제에 실패했습니다")
		return
	}

	if uid, ok := currentUserID(c); ok {
		database.CreateAuditLog(uid, "hardware", hw.ID, "delete", "하드웨어 삭제: "+hw.AssetTag)
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
