package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/nicolaschoi7042/itNswinventory-sub004/internal/assignment"
	"github.com/nicolaschoi7042/itNswinventory-sub004/internal/database"
	"github.com/nicolaschoi7042/itNswinventory-sub004/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// 할당 목록

func ListAssignments(c *gin.Context) {
	q := database.DB.Model(&models.Assignment{}).Preload("Employee").Order("assigned_date desc, id desc")

	if employeeID := c.Query("employee_id"); employeeID != "" {
		q = q.Where("employee_id = ?", employeeID)
	}
	if assetType := c.Query("asset_type"); assetType != "" {
		q = q.Where("asset_type = ?", assetType)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}

	var assignments []models.Assignment
	if err := q.Find(&assignments).Error; err != nil {
		jsonError(c, http.StatusInternalServerError, "할당 목록 조회에 실패했습니다")
		return
	}
	c.JSON(http.StatusOK, assignments)
}

func GetAssignment(c *gin.Context) {
	var a models.Assignment
	if err := database.DB.Preload("Employee").First(&a, c.Param("id")).Error; err != nil {
		jsonError(c, http.StatusNotFound, "할당을 찾을 수 없습니다")
		return
	}
	c.JSON(http.StatusOK, a)
}

type assignmentRequest struct {
	EmployeeID   uint   `json:"employee_id" binding:"required"`
	AssetType    string `json:"asset_type" binding:"required"`
	AssetID      uint   `json:"asset_id" binding:"required"`
	AssignedDate string `json:"assigned_date"`
	Notes        string `json:"notes"`
}

type validateRequest struct {
	assignmentRequest
	ExcludeAssignmentID uint `json:"exclude_assignment_id"`
}

// resolveRequest checks the referenced employee and asset exist and
// builds the validator inputs. The software row (when applicable) feeds
// license capacity into the options.
func resolveRequest(req assignmentRequest, excludeID uint) (assignment.Request, assignment.Options, string) {
	assetType := models.AssetType(req.AssetType)
	if !assetType.Valid() {
		return assignment.Request{}, assignment.Options{}, "자산 유형은 hardware 또는 software여야 합니다"
	}

	var employee models.Employee
	if err := database.DB.First(&employee, req.EmployeeID).Error; err != nil {
		return assignment.Request{}, assignment.Options{}, "직원을 찾을 수 없습니다"
	}

	opts := assignment.Options{
		MaxEmployeeAssignments: maxEmployeeAssignments,
		ExcludeAssignmentID:    excludeID,
	}

	switch assetType {
	case models.AssetHardware:
		var hw models.Hardware
		if err := database.DB.First(&hw, req.AssetID).Error; err != nil {
			return assignment.Request{}, assignment.Options{}, "하드웨어를 찾을 수 없습니다"
		}
		if hw.Status != models.HardwareNormal {
			return assignment.Request{}, assignment.Options{}, "수리중이거나 폐기된 하드웨어는 할당할 수 없습니다"
		}
	case models.AssetSoftware:
		var sw models.Software
		if err := database.DB.First(&sw, req.AssetID).Error; err != nil {
			return assignment.Request{}, assignment.Options{}, "소프트웨어를 찾을 수 없습니다"
		}
		opts.Software = &assignment.SoftwareData{TotalLicenses: sw.TotalLicenses}
	}

	vreq := assignment.Request{
		EmployeeID: req.EmployeeID,
		AssetID:    req.AssetID,
		AssetType:  assetType,
	}
	return vreq, opts, ""
}

// loadAllAssignments fetches the full (unfiltered) assignment set; the
// validator expects the whole snapshot, not a pre-filtered slice.
func loadAllAssignments() ([]models.Assignment, error) {
	var all []models.Assignment
	err := database.DB.Find(&all).Error
	return all, err
}

// ValidateAssignment — 할당 폼의 사전 검증 endpoint. 부적합이어도 200으로
// 결과만 돌려준다 (실제 차단은 생성/수정 시점에 한다).
func ValidateAssignment(c *gin.Context) {
	var req validateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		jsonError(c, http.StatusBadRequest, "잘못된 요청입니다")
		return
	}

	vreq, opts, msg := resolveRequest(req.assignmentRequest, req.ExcludeAssignmentID)
	if msg != "" {
		jsonError(c, http.StatusBadRequest, msg)
		return
	}

	all, err := loadAllAssignments()
	if err != nil {
		jsonError(c, http.StatusInternalServerError, "할당 조회에 실패했습니다")
		return
	}

	c.JSON(http.StatusOK, assignment.Validate(vreq, all, opts))
}

func CreateAssignment(c *gin.Context) {
	var req assignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		jsonError(c, http.StatusBadRequest, "잘못된 요청입니다")
		return
	}

	assignedDate, err := parseDate(req.AssignedDate)
	if err != nil {
		jsonError(c, http.StatusBadRequest, "할당일 형식이 올바르지 않습니다 (YYYY-MM-DD)")
		return
	}

	vreq, opts, msg := resolveRequest(req, 0)
	if msg != "" {
		jsonError(c, http.StatusBadRequest, msg)
		return
	}

	all, err := loadAllAssignments()
	if err != nil {
		jsonError(c, http.StatusInternalServerError, "할당 조회에 실패했습니다")
		return
	}

	// 쓰기 경로의 최종 판정. 폼의 사전 검증과 같은 규칙을 적용한다.
	result := assignment.Validate(vreq, all, opts)
	if !result.Eligible {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":      "할당할 수 없습니다",
			"validation": result,
		})
		return
	}

	a := models.Assignment{
		EmployeeID:   req.EmployeeID,
		AssetType:    vreq.AssetType,
		AssetID:      req.AssetID,
		RefCode:      uuid.NewString(),
		Status:       models.StatusActive,
		Notes:        req.Notes,
		AssignedDate: time.Now(),
	}
	if assignedDate != nil {
		a.AssignedDate = *assignedDate
	}

	if err := database.DB.Create(&a).Error; err != nil {
		jsonError(c, http.StatusInternalServerError, "할당 저장에 실패했습니다")
		return
	}

	if uid, ok := currentUserID(c); ok {
		database.CreateAuditLog(uid, "assignment", a.ID, "create",
			fmt.Sprintf("할당 생성: 직원 %d ← %s %d", a.EmployeeID, a.AssetType, a.AssetID))
	}

	c.JSON(http.StatusCreated, gin.H{
		"assignment": a,
		"validation": result,
	})
}

func UpdateAssignment(c *gin.Context) {
	var a models.Assignment
	if err := database.DB.First(&a, c.Param("id")).Error; err != nil {
		jsonError(c, http.StatusNotFound, "할당을 찾을 수 없습니다")
		return
	}

	var req assignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		jsonError(c, http.StatusBadRequest, "잘못된 요청입니다")
		return
	}

	assignedDate, err := parseDate(req.AssignedDate)
	if err != nil {
		jsonError(c, http.StatusBadRequest, "할당일 형식이 올바르지 않습니다 (YYYY-MM-DD)")
		return
	}

	// 자기 자신과의 충돌을 피하기 위해 수정 대상 할당을 제외하고 검증한다.
	vreq, opts, msg := resolveRequest(req, a.ID)
	if msg != "" {
		jsonError(c, http.StatusBadRequest, msg)
		return
	}

	if a.IsActive() {
		all, err := loadAllAssignments()
		if err != nil {
			jsonError(c, http.StatusInternalServerError, "할당 조회에 실패했습니다")
			return
		}
		result := assignment.Validate(vreq, all, opts)
		if !result.Eligible {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":      "할당을 수정할 수 없습니다",
				"validation": result,
			})
			return
		}
	}

	a.EmployeeID = req.EmployeeID
	a.AssetType = vreq.AssetType
	a.AssetID = req.AssetID
	a.Notes = req.Notes
	if assignedDate != nil {
		a.AssignedDate = *assignedDate
	}

	if err := database.DB.Save(&a).Error; err != nil {
		jsonError(c, http.StatusInternalServerError, "할당 저장에 실패했습니다")
		return
	}

	if uid, ok := currentUserID(c); ok {
		database.CreateAuditLog(uid, "assignment", a.ID, "update",
			fmt.Sprintf("할당 수정: 직원 %d ← %s %d", a.EmployeeID, a.AssetType, a.AssetID))
	}

	c.JSON(http.StatusOK, a)
}

// ReturnAssignment 반납 처리: 상태를 returned로 바꾸고 반납일을 기록한다.
func ReturnAssignment(c *gin.Context) {
	var a models.Assignment
	if err := database.DB.First(&a, c.Param("id")).Error; err != nil {
		jsonError(c, http.StatusNotFound, "할당을 찾을 수 없습니다")
		return
	}

	if a.Status == models.StatusReturned {
		jsonError(c, http.StatusConflict, "이미 반납된 할당입니다")
		return
	}

	now := time.Now()
	a.Status = models.StatusReturned
	a.ReturnedDate = &now

	if err := database.DB.Save(&a).Error; err != nil {
		jsonError(c, http.StatusInternalServerError, "반납 처리에 실패했습니다")
		return
	}

	if uid, ok := currentUserID(c); ok {
		database.CreateAuditLog(uid, "assignment", a.ID, "return", "할당 반납 처리")
	}

	c.JSON(http.StatusOK, a)
}

type statusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateAssignmentStatus 분실/손상/연체 등 명시적인 상태 전환.
// active로 되돌리는 것은 수정(재검증) 경로로만 가능하다.
func UpdateAssignmentStatus(c *gin.Context) {
	var a models.Assignment
	if err := database.DB.First(&a, c.Param("id")).Error; err != nil {
		jsonError(c, http.StatusNotFound, "할당을 찾을 수 없습니다")
		return
	}

	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		jsonError(c, http.StatusBadRequest, "잘못된 요청입니다")
		return
	}

	status := models.AssignmentStatus(req.Status)
	if !status.Valid() || status == models.StatusActive {
		jsonError(c, http.StatusBadRequest, "올바르지 않은 상태입니다")
		return
	}

	a.Status = status
	if status == models.StatusReturned && a.ReturnedDate == nil {
		now := time.Now()
		a.ReturnedDate = &now
	}

	if err := database.DB.Save(&a).Error; err != nil {
		jsonError(c, http.StatusInternalServerError, "상태 변경에 실패했습니다")
		return
	}

	if uid, ok := currentUserID(c); ok {
		database.CreateAuditLog(uid, "assignment", a.ID, "status_change",
			fmt.Sprintf("할당 상태 변경: %s (%s)", status, status.Label()))
	}

	c.JSON(http.StatusOK, a)
}

func DeleteAssignment(c *gin.Context) {
	var a models.Assignment
	if err := database.DB.First(&a, c.Param("id")).Error; err != nil {
		jsonError(c, http.StatusNotFound, "할당을 찾을 수 없습니다")
		return
	}

	if err := database.DB.Delete(&a).Error; err != nil {
		jsonError(c, http.StatusInternalServerError, "할당 삭제에 실패했습니다")
		return
	}

	if uid, ok := currentUserID(c); ok {
		database.CreateAuditLog(uid, "assignment", a.ID, "delete", "할당 삭제")
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
