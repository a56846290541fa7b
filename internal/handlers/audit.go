package handlers

import (
	"net/http"

	"github.com/nicolaschoi7042/itNswinventory-sub004/internal/database"
	"github.com/nicolaschoi7042/itNswinventory-sub004/internal/models"

	"github.com/gin-gonic/gin"
)

func ListAuditLogs(c *gin.Context) {
	q := database.DB.Model(&models.AuditLog{}).
		Preload("User").
		Order("created_at desc").
		Limit(200)

	if entity := c.Query("entity"); entity != "" {
		q = q.Where("entity = ?", entity)
	}

	var logs []models.AuditLog
	if err := q.Find(&logs).Error; err != nil {
		jsonError(c, http.StatusInternalServerError, "감사 로그 조회에 실패했습니다")
		return
	}

	c.JSON(http.StatusOK, logs)
}
