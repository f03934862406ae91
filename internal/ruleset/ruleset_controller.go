package ruleset

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/questboard/config"
	"github.com/DhavalSuthar-24/questboard/internal/models"
	"github.com/DhavalSuthar-24/questboard/pkg/responses"
	"github.com/DhavalSuthar-24/questboard/pkg/validator"
)

// RulesetController handles API requests related to rulesets.
type RulesetController struct {
	repo   RulesetRepository
	config *config.Config
	log    *slog.Logger
}

func NewRulesetController(repo RulesetRepository, cfg *config.Config, log *slog.Logger) *RulesetController {
	return &RulesetController{repo: repo, config: cfg, log: log}
}

type CreateRulesetRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

type UpdateRulesetRequest struct {
	Name *string `json:"name" binding:"omitempty,min=1,max=100"`
}

const duplicateNameMsg = "ruleset with this name already exists."

// GetAllRulesets godoc
// @Summary List rulesets
// @Tags Systems
// @Produce json
// @Success 200 {array} models.Ruleset
// @Router /systems/ [get]
func (rc *RulesetController) GetAllRulesets(c *gin.Context) {
	rulesets, err := rc.repo.List(c.Request.Context())
	if err != nil {
		rc.internalError(c, "ruleset.list", err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, rulesets)
}

// CreateRuleset godoc
// @Summary Create a ruleset
// @Tags Systems
// @Accept json
// @Produce json
// @Param ruleset body CreateRulesetRequest true "Ruleset"
// @Success 201 {object} models.Ruleset
// @Failure 400 {object} map[string][]string "Validation error or duplicate name"
// @Failure 401 {object} responses.ErrorResponse
// @Router /systems/ [post]
// @Security BearerAuth
func (rc *RulesetController) CreateRuleset(c *gin.Context) {
	var req CreateRulesetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, validator.ParseError(err))
		return
	}

	rs := models.Ruleset{Name: req.Name}
	if err := rc.repo.Create(c.Request.Context(), &rs); err != nil {
		rc.writeError(c, "ruleset.create", err)
		return
	}
	responses.SendSuccess(c, http.StatusCreated, rs)
}

// GetRulesetByID godoc
// @Summary Get a ruleset
// @Tags Systems
// @Produce json
// @Param id path int true "Ruleset ID"
// @Success 200 {object} models.Ruleset
// @Failure 404 {object} responses.ErrorResponse
// @Router /systems/{id}/ [get]
// @Security BearerAuth
func (rc *RulesetController) GetRulesetByID(c *gin.Context) {
	rs, ok := rc.load(c)
	if !ok {
		return
	}
	responses.SendSuccess(c, http.StatusOK, rs)
}

// ReplaceRuleset godoc
// @Summary Replace a ruleset
// @Tags Systems
// @Accept json
// @Produce json
// @Param id path int true "Ruleset ID"
// @Param ruleset body CreateRulesetRequest true "Ruleset"
// @Success 200 {object} models.Ruleset
// @Failure 400 {object} map[string][]string
// @Failure 404 {object} responses.ErrorResponse
// @Router /systems/{id}/ [put]
// @Security BearerAuth
func (rc *RulesetController) ReplaceRuleset(c *gin.Context) {
	rs, ok := rc.load(c)
	if !ok {
		return
	}
	var req CreateRulesetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, validator.ParseError(err))
		return
	}
	rs.Name = req.Name
	rc.save(c, rs, "ruleset.replace")
}

// UpdateRuleset godoc
// @Summary Partially update a ruleset
// @Tags Systems
// @Accept json
// @Produce json
// @Param id path int true "Ruleset ID"
// @Param ruleset body UpdateRulesetRequest true "Ruleset"
// @Success 200 {object} models.Ruleset
// @Failure 400 {object} map[string][]string
// @Failure 404 {object} responses.ErrorResponse
// @Router /systems/{id}/ [patch]
// @Security BearerAuth
func (rc *RulesetController) UpdateRuleset(c *gin.Context) {
	rs, ok := rc.load(c)
	if !ok {
		return
	}
	var req UpdateRulesetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, validator.ParseError(err))
		return
	}
	if req.Name != nil {
		rs.Name = *req.Name
	}
	rc.save(c, rs, "ruleset.patch")
}

// DeleteRuleset godoc
// @Summary Delete a ruleset
// @Description Events using it keep existing with no system.
// @Tags Systems
// @Param id path int true "Ruleset ID"
// @Success 204
// @Failure 404 {object} responses.ErrorResponse
// @Router /systems/{id}/ [delete]
// @Security BearerAuth
func (rc *RulesetController) DeleteRuleset(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		responses.NotFound(c, "Ruleset")
		return
	}
	if err := rc.repo.Delete(c.Request.Context(), uint(id)); err != nil {
		rc.writeError(c, "ruleset.delete", err)
		return
	}
	responses.NoContent(c)
}

func (rc *RulesetController) load(c *gin.Context) (*models.Ruleset, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		responses.NotFound(c, "Ruleset")
		return nil, false
	}
	rs, err := rc.repo.GetByID(c.Request.Context(), uint(id))
	if err != nil {
		rc.writeError(c, "ruleset.get", err)
		return nil, false
	}
	return rs, true
}

func (rc *RulesetController) save(c *gin.Context, rs *models.Ruleset, op string) {
	if err := rc.repo.Update(c.Request.Context(), rs); err != nil {
		rc.writeError(c, op, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, rs)
}

func (rc *RulesetController) writeError(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		responses.NotFound(c, "Ruleset")
	case errors.Is(err, ErrDuplicateName):
		responses.SendValidationError(c, responses.ValidationErrors{"name": {duplicateNameMsg}})
	default:
		rc.internalError(c, op, err)
	}
}

func (rc *RulesetController) internalError(c *gin.Context, op string, err error) {
	rc.log.ErrorContext(c.Request.Context(), "request failed", slog.String("op", op), slog.Any("error", err))
	responses.InternalServerError(c)
}
