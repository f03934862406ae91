package auth

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/questboard/config"
	"github.com/DhavalSuthar-24/questboard/pkg/revocation"
)

func RegisterAuthRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config, revoked revocation.Store, log *slog.Logger) {
	authRepo := NewAuthRepository(db)
	authController := NewAuthController(authRepo, revoked, appConfig, log)

	router.POST("/signup/", authController.Signup)
	router.POST("/token/", authController.ObtainToken)
	router.POST("/token/refresh/", authController.RefreshToken)
	router.POST("/token/blacklist/", authController.BlacklistToken)
}
