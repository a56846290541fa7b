package handlers

import (
	"net/http"
	"strings"

	"github.com/nicolaschoi7042/itNswinventory-sub004/internal/database"
	"github.com/nicolaschoi7042/itNswinventory-sub004/internal/models"

	"github.com/gin-gonic/gin"
)

// 직원 목록 / 검색

func ListEmployees(c *gin.Context) {
	q := database.DB.Model(&models.Employee{}).Order("name asc")

	if search := strings.TrimSpace(c.Query("q")); search != "" {
		like := "%" + search + "%"
		q = q.Where("name LIKE ? OR email LIKE ?", like, like)
	}
	if dept := strings.TrimSpace(c.Query("department")); dept != "" {
		q = q.Where("department = ?", dept)
	}
	if c.Query("active") == "true" {
		q = q.Where("is_active = ?", true)
	}

	var employees []models.Employee
	if err := q.Find(&employees).Error; err != nil {
		jsonError(c, http.StatusInternalServerError, "직원 목록 조회에 실패했습니다")
		return
	}
	c.JSON(http.StatusOK, employees)
}

func GetEmployee(c *gin.Context) {
	var employee models.Employee
	if err := database.DB.Preload("Assignments").First(&employee, c.Param("id")).Error; err != nil {
		jsonError(c, http.StatusNotFound, "직원을 찾을 수 없습니다")
		return
	}
	c.JSON(http.StatusOK, employee)
}

type employeeRequest struct {
	Name       string `json:"name" binding:"required"`
	Department string `json:"department"`
	Position   string `json:"position"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	HireDate   string `json:"hire_date"`
	IsActive   *bool  `json:"is_active"`
}

func CreateEmployee(c *gin.Context) {
	var req employeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		jsonError(c, http.StatusBadRequest, "잘못된 요청입니다")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if len(req.Name) < 2 {
		jsonError(c, http.StatusBadRequest, "이름은 2자 이상이어야 합니다")
		return
	}

	hireDate, err := parseDate(req.HireDate)
	if err != nil {
		jsonError(c, http.StatusBadRequest, "입사일 형식이 올바르지 않습니다 (YYYY-MM-DD)")
		return
	}

	employee := models.Employee{
		Name:       req.Name,
		Department: strings.TrimSpace(req.Department),
		Position:   strings.TrimSpace(req.Position),
		Email:      strings.TrimSpace(req.Email),
		Phone:      strings.TrimSpace(req.Phone),
		HireDate:   hireDate,
		IsActive:   true,
	}
	if req.IsActive != nil {
		employee.IsActive = *req.IsActive
	}

	if err := database.DB.Create(&employee).Error; err != nil {
		jsonError(c, http.StatusInternalServerError, "직원 저장에 실패했습니다")
		return
	}

	if uid, ok := currentUserID(c); ok {
		database.CreateAuditLog(uid, "employee", employee.ID, "create", "직원 등록: "+employee.Name)
	}

	c.JSON(http.StatusCreated, employee)
}

func UpdateEmployee(c *gin.Context) {
	var employee models.Employee
	if err := database.DB.First(&employee, c.Param("id")).Error; err != nil {
		jsonError(c, http.StatusNotFound, "직원을 찾을 수 없습니다")
		return
	}

	var req employeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		jsonError(c, http.StatusBadRequest, "잘못된 요청입니다")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if len(req.Name) < 2 {
		jsonError(c, http.StatusBadRequest, "이름은 2자 이상이어야 합니다")
		return
	}

	hireDate, err := parseDate(req.HireDate)
	if err != nil {
		jsonError(c, http.StatusBadRequest, "입사일 형식이 올바르지 않습니다 (YYYY-MM-DD)")
		return
	}

	employee.Name = req.Name
	employee.Department = strings.TrimSpace(req.Department)
	employee.Position = strings.TrimSpace(req.Position)
	employee.Email = strings.TrimSpace(req.Email)
	employee.Phone = strings.TrimSpace(req.Phone)
	if hireDate != nil {
		employee.HireDate = hireDate
	}
	if req.IsActive != nil {
		employee.IsActive = *req.IsActive
	}

	if err := database.DB.Save(&employee).Error; err != nil {
		jsonError(c, http.StatusInternalServerError, "직원 저장에 실패했습니다")
		return
	}

	if uid, ok := currentUserID(c); ok {
		database.CreateAuditLog(uid, "employee", employee.ID, "update", "직원 수정: "+employee.Name)
	}

	c.JSON(http.StatusOK, employee)
}

func DeleteEmployee(c *gin.Context) {
	var employee models.Employee
	if err := database.DB.First(&employee, c.Param("id")).Error; err != nil {
		jsonError(c, http.StatusNotFound, "직원을 찾을 수 없습니다")
		return
	}

	// 사용중 할당이 남아 있으면 삭제 불가
	var active int64
	database.DB.Model(&models.Assignment{}).
		Where("employee_id = ? AND status = ?", employee.ID, models.StatusActive).
		Count(&active)
	if active > 0 {
		jsonError(c, http.StatusConflict, "사용중인 할당이 있는 직원은 삭제할 수 없습니다")
		return
	}

	if err := database.DB.Delete(&employee).Error; err != nil {
		jsonError(c, http.StatusInternalServerError, "직원 삭제에 실패했습니다")
		return
	}

	if uid, ok := currentUserID(c); ok {
		database.CreateAuditLog(uid, "employee", employee.ID, "delete", "직원 삭제: "+employee.Name)
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
