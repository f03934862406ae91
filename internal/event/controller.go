package event

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/DhavalSuthar-24/questboard/config"
	"github.com/DhavalSuthar-24/questboard/internal/middleware"
	"github.com/DhavalSuthar-24/questboard/internal/models"
	"github.com/DhavalSuthar-24/questboard/pkg/responses"
	"github.com/DhavalSuthar-24/questboard/pkg/rmiddleware"
	"github.com/DhavalSuthar-24/questboard/pkg/validator"
)

type EventController struct {
	service *Service
	config  *config.Config
	log     *slog.Logger
}

func NewEventController(service *Service, cfg *config.Config, log *slog.Logger) *EventController {
	return &EventController{service: service, config: cfg, log: log}
}

// ListEvents godoc
// @Summary List events
// @Description Lists every event, newest start date first. Undated events come last.
// @Tags Events
// @Produce json
// @Param system query string false "Ruleset name, matched case-insensitively"
// @Success 200 {array} Response
// @Router / [get]
func (ec *EventController) ListEvents(c *gin.Context) {
	events, err := ec.service.List(c.Request.Context(), strings.TrimSpace(c.Query("system")))
	if err != nil {
		ec.internalError(c, "event.list", err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, NewResponses(events))
}

// CreateEvent godoc
// @Summary Create an event
// @Description The caller becomes the organizer.
// @Tags Events
// @Accept json
// @Produce json
// @Param event body Input true "Event fields"
// @Success 201 {object} Response
// @Failure 400 {object} map[string][]string "Validation error"
// @Failure 401 {object} responses.ErrorResponse
// @Router /add/ [post]
// @Security BearerAuth
func (ec *EventController) CreateEvent(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}
	in, ok := bindInput(c)
	if !ok {
		return
	}

	ev, err := ec.service.Create(c.Request.Context(), userID, in)
	if err != nil {
		ec.writeError(c, "event.create", err)
		return
	}
	responses.SendSuccess(c, http.StatusCreated, NewResponse(ev))
}

// GetEvent godoc
// @Summary Get an event
// @Tags Events
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} Response
// @Failure 401 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Router /{id}/ [get]
// @Security BearerAuth
func (ec *EventController) GetEvent(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		responses.NotFound(c, "Event")
		return
	}
	ev, err := ec.service.Get(c.Request.Context(), id)
	if err != nil {
		ec.writeError(c, "event.get", err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, NewResponse(ev))
}

// ReplaceEvent godoc
// @Summary Replace an event
// @Description Organizer only. Fields missing from the body are reset to their defaults.
// @Tags Events
// @Accept json
// @Produce json
// @Param id path int true "Event ID"
// @Param event body Input true "Event fields"
// @Success 200 {object} Response
// @Failure 400 {object} map[string][]string "Validation error"
// @Failure 403 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Router /{id}/ [put]
// @Security BearerAuth
func (ec *EventController) ReplaceEvent(c *gin.Context) {
	ec.update(c, "event.replace", ec.service.Replace)
}

// PatchEvent godoc
// @Summary Partially update an event
// @Description Organizer only. Only fields present in the body change.
// @Tags Events
// @Accept json
// @Produce json
// @Param id path int true "Event ID"
// @Param event body Input true "Event fields"
// @Success 200 {object} Response
// @Failure 400 {object} map[string][]string "Validation error"
// @Failure 403 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Router /{id}/ [patch]
// @Security BearerAuth
func (ec *EventController) PatchEvent(c *gin.Context) {
	ec.update(c, "event.patch", ec.service.Patch)
}

// DeleteEvent godoc
// @Summary Delete an event
// @Description Organizer only. Deletes the event's join requests too.
// @Tags Events
// @Param id path int true "Event ID"
// @Success 204
// @Failure 403 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Router /{id}/ [delete]
// @Security BearerAuth
func (ec *EventController) DeleteEvent(c *gin.Context) {
	ev, ok := rmiddleware.Resource[models.Event](c)
	if !ok {
		responses.NotFound(c, "Event")
		return
	}
	if err := ec.service.Delete(c.Request.Context(), ev.ID); err != nil {
		ec.writeError(c, "event.delete", err)
		return
	}
	responses.NoContent(c)
}

type updateFunc func(ctx context.Context, ev *models.Event, in Input) (*models.Event, error)

func (ec *EventController) update(c *gin.Context, op string, fn updateFunc) {
	ev, ok := rmiddleware.Resource[models.Event](c)
	if !ok {
		responses.NotFound(c, "Event")
		return
	}
	in, ok := bindInput(c)
	if !ok {
		return
	}

	updated, err := fn(c.Request.Context(), ev, in)
	if err != nil {
		ec.writeError(c, op, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, NewResponse(updated))
}

// bindInput decodes the body into Input and records which keys were sent.
func bindInput(c *gin.Context) (Input, bool) {
	var in Input
	if c.Request.ContentLength == 0 {
		in.Present = map[string]bool{}
		return in, true
	}
	if err := c.ShouldBindBodyWith(&in, binding.JSON); err != nil {
		responses.SendValidationError(c, validator.ParseError(err))
		return in, false
	}
	var keys map[string]any
	if err := c.ShouldBindBodyWith(&keys, binding.JSON); err != nil {
		responses.SendValidationError(c, validator.ParseError(err))
		return in, false
	}
	in.Present = make(map[string]bool, len(keys))
	for k := range keys {
		in.Present[k] = true
	}
	return in, true
}

func (ec *EventController) writeError(c *gin.Context, op string, err error) {
	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		responses.SendValidationError(c, verr.Fields)
	case errors.Is(err, ErrNotFound):
		responses.NotFound(c, "Event")
	default:
		ec.internalError(c, op, err)
	}
}

func (ec *EventController) internalError(c *gin.Context, op string, err error) {
	ec.log.ErrorContext(c.Request.Context(), "request failed", slog.String("op", op), slog.Any("error", err))
	responses.InternalServerError(c)
}

func parseID(c *gin.Context, param string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
