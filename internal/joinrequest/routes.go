package joinrequest

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/questboard/config"
	mw "github.com/DhavalSuthar-24/questboard/internal/middleware"
)

func RegisterJoinRequestRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config, log *slog.Logger) {
	engine := NewEngine(NewRepository(db), log)
	controller := NewJoinRequestController(engine, log)

	authenticated := router.Group("/")
	authenticated.Use(mw.AuthMiddleware(appConfig.JWT.AccessTokenSecret, db))
	{
		authenticated.POST("/events/:id/join/", controller.RequestToJoin)
		authenticated.GET("/events/:id/requests/", controller.ListEventRequests)
		authenticated.POST("/events/:id/requests/:request_id/:action/", controller.ManageRequest)

		authenticated.GET("/requests/", controller.ListMyRequests)
		authenticated.PATCH("/requests/:id/", controller.DecideRequest)
	}
}
