package routes

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/questboard/config"
	"github.com/DhavalSuthar-24/questboard/internal/auth"
	"github.com/DhavalSuthar-24/questboard/internal/event"
	"github.com/DhavalSuthar-24/questboard/internal/joinrequest"
	"github.com/DhavalSuthar-24/questboard/internal/middleware"
	"github.com/DhavalSuthar-24/questboard/internal/ruleset"
	"github.com/DhavalSuthar-24/questboard/pkg/revocation"
	"github.com/DhavalSuthar-24/questboard/pkg/validator"
)

func SetupRoutes(db *gorm.DB, cfg *config.Config, revoked revocation.Store, log *slog.Logger) *gin.Engine {
	if cfg.App.Env != config.EnvDevelopment {
		gin.SetMode(gin.ReleaseMode)
	}
	validator.UseJSONFieldNames()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.App.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes
	api := r.Group("/api")
	auth.RegisterAuthRoutes(api, db, cfg, revoked, log)
	rulesets := ruleset.RegisterRulesetRoutes(api, db, cfg, log)
	joinrequest.RegisterJoinRequestRoutes(api, db, cfg, log)
	event.RegisterEventRoutes(api, db, cfg, rulesets, log)

	return r
}
