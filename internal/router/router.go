package router

import (
	"github.com/xiyiji-official/fiance-backend/internal/config"
	"github.com/xiyiji-official/fiance-backend/internal/handler"
	"github.com/xiyiji-official/fiance-backend/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

// SetupRouter configures Gin engine and the API routes.
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery(), middleware.MetricsMiddleware())

	// Prometheus 指标
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// ====== API ======
	api := r.Group("/api")

	jwtSecret := cfg.JWT.Secret
	// 登录/注册接口（不需要鉴权）
	authHandler := handler.NewAuthHandler(db, jwtSecret, cfg.JWT.ExpireHours, cfg.Security.BcryptCost)
	api.POST("/auth/signup", authHandler.Signup)
	api.POST("/auth/login", authHandler.Login)

	// 需要登录才能访问的接口
	protected := api.Group("")
	protected.Use(
		middleware.AuthMiddleware(jwtSecret, db),
		middleware.AuditMiddleware(db),
	)

	protected.POST("/auth/logout", authHandler.Logout)

	userHandler := handler.NewUserHandler(db, cfg.App.PageSize)
	protected.GET("/me", userHandler.GetMe)
	protected.GET("/users", userHandler.ListUsers)

	billHandler := handler.NewBillHandler(db, cfg.App.PageSize)
	protected.POST("/bills", billHandler.CreateBill)
	protected.GET("/bills", billHandler.ListBills)
	protected.GET("/bills/:id", billHandler.GetBill)
	protected.PUT("/bills/:id", billHandler.UpdateBill)
	protected.DELETE("/bills/:id", billHandler.DeleteBill)
	protected.GET("/me/bills", billHandler.MyMonthBills)
	protected.GET("/me/summary", billHandler.MySummary)

	protected.POST("/profile", handler.UpdateProfile(db))
	protected.POST("/profile/password", handler.ChangePassword(db, cfg.Security.BcryptCost))
	protected.POST("/profile/deactivate", handler.DeactivateAccount(db))

	logHandler := handler.NewLogHandler(db)
	protected.GET("/logs", logHandler.ListLogs)

	exportHandler := handler.NewExportHandler(db)
	protected.GET("/export/csv", exportHandler.ExportCSV)
	protected.GET("/export/xlsx", exportHandler.ExportXLSX)

	return r
}
