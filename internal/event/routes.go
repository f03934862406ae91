package event

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/questboard/config"
	mw "github.com/DhavalSuthar-24/questboard/internal/middleware"
	"github.com/DhavalSuthar-24/questboard/internal/models"
	"github.com/DhavalSuthar-24/questboard/pkg/rmiddleware"
)

// RegisterEventRoutes mounts the event endpoints on router. Rulesets resolve
// the "system" field of event bodies.
func RegisterEventRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config, rulesets RulesetFinder, log *slog.Logger) {
	eventRepo := NewRepository(db)
	eventService := NewService(eventRepo, rulesets, log)
	eventController := NewEventController(eventService, appConfig, log)

	router.GET("/", eventController.ListEvents)

	authenticated := router.Group("/")
	authenticated.Use(mw.AuthMiddleware(appConfig.JWT.AccessTokenSecret, db))
	{
		authenticated.POST("/add/", eventController.CreateEvent)
		authenticated.GET("/:id/", eventController.GetEvent)

		organizerOnly := rmiddleware.OwnerMiddleware[models.Event]("id", "Event", eventRepo.GetByID, IsOrganizer, ErrNotFound, log)
		authenticated.PUT("/:id/", organizerOnly, eventController.ReplaceEvent)
		authenticated.PATCH("/:id/", organizerOnly, eventController.PatchEvent)
		authenticated.DELETE("/:id/", organizerOnly, eventController.DeleteEvent)
	}
}
