package handlers

import (
	"net/http"
	"strings"

	"github.com/nicolaschoi7042/itNswinventory-sub004/internal/database"
	"github.com/nicolaschoi7042/itNswinventory-sub004/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		jsonError(c, http.StatusBadRequest, "잘못된 요청입니다")
		return
	}

	var user models.User
	if err := database.DB.Where("username = ?", req.Username).First(&user).Error; err != nil {
		jsonError(c, http.StatusUnauthorized, "아이디 또는 비밀번호가 올바르지 않습니다")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		jsonError(c, http.StatusUnauthorized, "아이디 또는 비밀번호가 올바르지 않습니다")
		return
	}

	sess := sessions.Default(c)
	sess.Set("user_id", user.ID)
	sess.Set("role", string(user.Role))
	_ = sess.Save()

	c.JSON(http.StatusOK, gin.H{
		"id":       user.ID,
		"username": user.Username,
		"role":     user.Role,
	})
}

func Logout(c *gin.Context) {
	sess := sessions.Default(c)
	sess.Clear()
	_ = sess.Save()
	c.JSON(http.StatusOK, gin.H{"status": "logged out"})
}

func Me(c *gin.Context) {
	uVal, ok := c.Get("CurrentUser")
	if !ok {
		jsonError(c, http.StatusUnauthorized, "authentication required")
		return
	}
	user, ok := uVal.(models.User)
	if !ok {
		jsonError(c, http.StatusUnauthorized, "authentication required")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id":       user.ID,
		"username": user.Username,
		"role":     user.Role,
	})
}

type createUserRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required"`
}

// CreateUser — 계정 생성은 관리자만 가능 (공개 가입 없음).
func CreateUser(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		jsonError(c, http.StatusBadRequest, "잘못된 요청입니다")
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	if len(req.Username) < 3 || len(req.Password) < 6 {
		jsonError(c, http.StatusBadRequest, "아이디는 3자 이상, 비밀번호는 6자 이상이어야 합니다")
		return
	}

	role := models.UserRole(req.Role)
	switch role {
	case models.RoleAdmin, models.RoleManager, models.RoleViewer:
		// ok
	default:
		jsonError(c, http.StatusBadRequest, "올바르지 않은 역할입니다")
		return
	}

	var existing models.User
	if err := database.DB.Where("username = ?", req.Username).First(&existing).Error; err == nil {
		jsonError(c, http.StatusConflict, "이미 존재하는 사용자입니다")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		jsonError(c, http.StatusInternalServerError, "비밀번호 처리 중 오류가 발생했습니다")
		return
	}

	user := models.User{
		Username:     req.Username,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := database.DB.Create(&user).Error; err != nil {
		jsonError(c, http.StatusInternalServerError, "사용자 저장에 실패했습니다")
		return
	}

	if uid, ok := currentUserID(c); ok {
		database.CreateAuditLog(uid, "user", user.ID, "create", "사용자 생성: "+user.Username)
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":       user.ID,
		"username": user.Username,
		"role":     user.Role,
	})
}
