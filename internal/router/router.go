package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	_ "github.com/projecttracker/tracker/docs"
	"github.com/projecttracker/tracker/internal/config"
	"github.com/projecttracker/tracker/internal/middleware"
	"github.com/projecttracker/tracker/internal/modules/handler"
	"github.com/projecttracker/tracker/web"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	Config             *config.Config
	Log                *zap.Logger
	HealthHandler      *handler.HealthHandler
	ProjectHandler     *handler.ProjectHandler
	ProductTypeHandler *handler.ProductTypeHandler
	ExportHandler      *handler.ExportHandler
}

func NewRouter(d RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	if d.Config.Telemetry.Enabled && d.Config.Telemetry.OtlpEndpoint != "" {
		r.Use(middleware.OtelTracing(d.Config.App.Name))
		r.Use(middleware.TraceID())
	}

	r.Use(middleware.ZapLogger(d.Log))

	// health
	r.GET("/health", d.HealthHandler.Live)
	r.GET("/health/db", d.HealthHandler.Database)

	// swagger
	r.GET("/swagger", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	{
		projects := api.Group("/projects")
		{
			projects.GET("", d.ProjectHandler.ListProjects)
			projects.POST("", d.ProjectHandler.CreateProject)
			projects.GET("/:id", d.ProjectHandler.GetProject)
			projects.PUT("/:id", d.ProjectHandler.UpdateProject)
			projects.DELETE("/:id", d.ProjectHandler.DeleteProject)
		}

		productTypes := api.Group("/product-types")
		{
			productTypes.GET("", d.ProductTypeHandler.ListProductTypes)
			productTypes.POST("", d.ProductTypeHandler.CreateProductType)
			productTypes.DELETE("/:id", d.ProductTypeHandler.DeleteProductType)
		}

		api.POST("/exports", d.ExportHandler.CreateExport)
	}

	// single-page UI
	web.Register(r)

	return r
}
