package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"menu-cms-svc/internal/middleware"
	"menu-cms-svc/internal/render"
	"menu-cms-svc/internal/service"
	"menu-cms-svc/internal/session"
	"menu-cms-svc/internal/upload"
	"menu-cms-svc/pkg/logger"
)

// Services bundles everything the routes dispatch to
type Services struct {
	Menu      service.MenuService
	Category  service.CategoryService
	Dish      service.DishService
	Settings  service.SettingsService
	Dashboard service.DashboardService
	Catalog   service.CatalogService
	Auth      service.AuthService
}

// SetupRoutes sets up the public page, the admin pages and the static uploads
func SetupRoutes(
	router *gin.Engine,
	services Services,
	sessions *session.Manager,
	renderer render.Renderer,
	uploadDir string,
	logger *logger.Logger,
) {
	p := newPages(renderer, sessions, logger)

	// Initialize handlers
	publicHandler := NewPublicHandler(services.Catalog, p)
	authHandler := NewAuthHandler(services.Auth, p)
	dashboardHandler := NewDashboardHandler(services.Dashboard, services.Settings, p)
	menuHandler := NewMenuHandler(services.Menu, p)
	categoryHandler := NewCategoryHandler(services.Category, services.Menu, p)
	dishHandler := NewDishHandler(services.Dish, services.Category, p)
	exportHandler := NewExportHandler(services.Catalog, p)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	router.GET("/health", HealthCheck)

	// Uploaded images, no directory listing
	uploads := gin.Dir(uploadDir, false)
	router.StaticFS("/uploads", uploads)
	router.StaticFS(upload.PublicPrefix, uploads)

	site := router.Group("/", middleware.Sessions(sessions))
	{
		site.GET("/", publicHandler.Index)

		site.GET("/admin/login", authHandler.LoginForm)
		site.POST("/admin/login", authHandler.Login)
		site.GET("/admin/logout", authHandler.Logout)

		admin := site.Group("/admin", middleware.RequireAdmin())
		{
			admin.GET("", dashboardHandler.Show)
			admin.POST("", dashboardHandler.UpdateSettings)

			admin.GET("/menus", menuHandler.List)
			admin.POST("/menus", menuHandler.Submit)
			admin.GET("/menus/:id/edit", menuHandler.Edit)
			admin.POST("/menus/:id/edit", menuHandler.Update)

			admin.GET("/categories", categoryHandler.List)
			admin.POST("/categories", categoryHandler.Submit)
			admin.GET("/categories/:id/edit", categoryHandler.Edit)
			admin.POST("/categories/:id/edit", categoryHandler.Update)

			admin.GET("/dishes", dishHandler.List)
			admin.POST("/dishes", dishHandler.Submit)
			admin.GET("/dishes/:id/edit", dishHandler.Edit)
			admin.POST("/dishes/:id/edit", dishHandler.Update)

			admin.GET("/export.xlsx", exportHandler.ExportWorkbook)
		}
	}
}

// HealthCheck handles GET /health
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Server is running",
		"service": "Menu CMS",
	})
}
