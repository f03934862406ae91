package ruleset

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/questboard/config"
	mw "github.com/DhavalSuthar-24/questboard/internal/middleware"
)

// RegisterRulesetRoutes mounts /systems and returns the repository so other
// features can resolve ruleset names.
func RegisterRulesetRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config, log *slog.Logger) RulesetRepository {
	rulesetRepo := NewRulesetRepository(db)
	rulesetController := NewRulesetController(rulesetRepo, appConfig, log)

	auth := mw.AuthMiddleware(appConfig.JWT.AccessTokenSecret, db)

	systems := router.Group("/systems")
	{
		systems.GET("/", rulesetController.GetAllRulesets)
		systems.POST("/", auth, rulesetController.CreateRuleset)
		systems.GET("/:id/", auth, rulesetController.GetRulesetByID)
		systems.PUT("/:id/", auth, rulesetController.ReplaceRuleset)
		systems.PATCH("/:id/", auth, rulesetController.UpdateRuleset)
		systems.DELETE("/:id/", auth, rulesetController.DeleteRuleset)
	}
	return rulesetRepo
}
