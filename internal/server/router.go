package server

import (
	"net/http"

	"github.com/nicolaschoi7042/itNswinventory-sub004/internal/config"
	"github.com/nicolaschoi7042/itNswinventory-sub004/internal/handlers"
	"github.com/nicolaschoi7042/itNswinventory-sub004/internal/middleware"
	"github.com/nicolaschoi7042/itNswinventory-sub004/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

func NewRouter(cfg *config.Config) *gin.Engine {
	r := gin.Default()

	handlers.Configure(cfg.MaxEmployeeAssignments)

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("inventory_session", store))

	r.Use(middleware.InjectUser())

	api := r.Group("/api")

	// AUTH
	api.POST("/login", handlers.Login)
	api.POST("/logout", handlers.Logout)

	auth := api.Group("/")
	auth.Use(middleware.RequireAuth())

	auth.GET("/me", handlers.Me)

	// 계정 관리 — 관리자 전용
	auth.POST("/users",
		middleware.RequireRole(models.RoleAdmin),
		handlers.CreateUser,
	)

	// 직원
	auth.GET("/employees", handlers.ListEmployees)
	auth.GET("/employees/:id", handlers.GetEmployee)
	auth.POST("/employees",
		middleware.RequireRole(models.RoleAdmin, models.RoleManager),
		handlers.CreateEmployee,
	)
	auth.PUT("/employees/:id",
		middleware.RequireRole(models.RoleAdmin, models.RoleManager),
		handlers.UpdateEmployee,
	)
	auth.DELETE("/employees/:id",
		middleware.RequireRole(models.RoleAdmin),
		handlers.DeleteEmployee,
	)

	// 하드웨어
	auth.GET("/hardware", handlers.ListHardware)
	auth.GET("/hardware/:id", handlers.GetHardware)
	auth.POST("/hardware",
		middleware.RequireRole(models.RoleAdmin, models.RoleManager),
		handlers.CreateHardware,
	)
	auth.PUT("/hardware/:id",
		middleware.RequireRole(models.RoleAdmin, models.RoleManager),
		handlers.UpdateHardware,
	)
	auth.DELETE("/hardware/:id",
		middleware.RequireRole(models.RoleAdmin),
		handlers.DeleteHardware,
	)

	// 소프트웨어
	auth.GET("/software", handlers.ListSoftware)
	auth.GET("/software/:id", handlers.GetSoftware)
	auth.POST("/software",
		middleware.RequireRole(models.RoleAdmin, models.RoleManager),
		handlers.CreateSoftware,
	)
	auth.PUT("/software/:id",
		middleware.RequireRole(models.RoleAdmin, models.RoleManager),
		handlers.UpdateSoftware,
	)
	auth.DELETE("/software/:id",
		middleware.RequireRole(models.RoleAdmin),
		handlers.DeleteSoftware,
	)

	// 할당
	auth.GET("/assignments", handlers.ListAssignments)
	auth.GET("/assignments/:id", handlers.GetAssignment)
	auth.POST("/assignments/validate", handlers.ValidateAssignment)
	auth.POST("/assignments",
		middleware.RequireRole(models.RoleAdmin, models.RoleManager),
		handlers.CreateAssignment,
	)
	auth.PUT("/assignments/:id",
		middleware.RequireRole(models.RoleAdmin, models.RoleManager),
		handlers.UpdateAssignment,
	)
	auth.POST("/assignments/:id/return",
		middleware.RequireRole(models.RoleAdmin, models.RoleManager),
		handlers.ReturnAssignment,
	)
	auth.POST("/assignments/:id/status",
		middleware.RequireRole(models.RoleAdmin, models.RoleManager),
		handlers.UpdateAssignmentStatus,
	)
	auth.DELETE("/assignments/:id",
		middleware.RequireRole(models.RoleAdmin),
		handlers.DeleteAssignment,
	)

	// 대시보드 / 감사 로그
	auth.GET("/dashboard", handlers.Dashboard)
	auth.GET("/audit",
		middleware.RequireRole(models.RoleAdmin, models.RoleViewer),
		handlers.ListAuditLogs,
	)

	// HEALTHCHECK
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	return r
}
