package joinrequest

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/questboard/internal/event"
	"github.com/DhavalSuthar-24/questboard/internal/middleware"
	"github.com/DhavalSuthar-24/questboard/pkg/responses"
	"github.com/DhavalSuthar-24/questboard/pkg/validator"
)

const (
	msgOrganizer = "You are the organizer of this event."
	msgDuplicate = "You have already requested to join this event."
	msgFull      = "Event is full."
	msgForbidden = "Only the organizer can manage join requests for this event."
)

type JoinRequestController struct {
	engine *Engine
	log    *slog.Logger
}

func NewJoinRequestController(engine *Engine, log *slog.Logger) *JoinRequestController {
	return &JoinRequestController{engine: engine, log: log}
}

// DecisionRequest is the body of PATCH /requests/{id}/.
type DecisionRequest struct {
	Status string `json:"status" binding:"required"`
}

// DuplicateResponse is returned when the caller already asked to join.
type DuplicateResponse struct {
	Detail string `json:"detail"`
	Status string `json:"status"`
}

// RequestToJoin godoc
// @Summary Ask to join an event
// @Tags Join Requests
// @Produce json
// @Param id path int true "Event ID"
// @Success 201 {object} Response
// @Failure 400 {object} DuplicateResponse "Organizer, duplicate request or event full"
// @Failure 401 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Router /events/{id}/join/ [post]
// @Security BearerAuth
func (jc *JoinRequestController) RequestToJoin(c *gin.Context) {
	userID, eventID, ok := jc.callerAndID(c, "id", "Event")
	if !ok {
		return
	}

	jr, err := jc.engine.RequestToJoin(c.Request.Context(), eventID, userID)
	if err != nil {
		jc.writeError(c, "joinrequest.join", err)
		return
	}
	responses.SendSuccess(c, http.StatusCreated, NewResponse(jr))
}

// ListEventRequests godoc
// @Summary List an event's join requests
// @Description Organizer only. Oldest request first.
// @Tags Join Requests
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {array} Response
// @Failure 403 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Router /events/{id}/requests/ [get]
// @Security BearerAuth
func (jc *JoinRequestController) ListEventRequests(c *gin.Context) {
	userID, eventID, ok := jc.callerAndID(c, "id", "Event")
	if !ok {
		return
	}

	requests, err := jc.engine.ListRequests(c.Request.Context(), eventID, userID)
	if err != nil {
		jc.writeError(c, "joinrequest.list", err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, NewResponses(requests))
}

// ListMyRequests godoc
// @Summary List the caller's join requests
// @Tags Join Requests
// @Produce json
// @Success 200 {array} Response
// @Failure 401 {object} responses.ErrorResponse
// @Router /requests/ [get]
// @Security BearerAuth
func (jc *JoinRequestController) ListMyRequests(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}

	requests, err := jc.engine.ListMine(c.Request.Context(), userID)
	if err != nil {
		jc.writeError(c, "joinrequest.mine", err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, NewResponses(requests))
}

// DecideRequest godoc
// @Summary Approve or reject a join request
// @Description Organizer only. Approving fails when the event is full.
// @Tags Join Requests
// @Accept json
// @Produce json
// @Param id path int true "Join request ID"
// @Param decision body DecisionRequest true "approved or rejected"
// @Success 200 {object} Response
// @Failure 400 {object} responses.ErrorResponse "Invalid status or event full"
// @Failure 403 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Router /requests/{id}/ [patch]
// @Security BearerAuth
func (jc *JoinRequestController) DecideRequest(c *gin.Context) {
	userID, requestID, ok := jc.callerAndID(c, "id", "Join request")
	if !ok {
		return
	}
	var req DecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, validator.ParseError(err))
		return
	}

	jr, err := jc.engine.DecideRequest(c.Request.Context(), requestID, userID, req.Status)
	if err != nil {
		if errors.Is(err, ErrInvalidDecision) {
			responses.SendValidationError(c, responses.ValidationErrors{
				"status": {fmt.Sprintf("%q is not a valid choice.", req.Status)},
			})
			return
		}
		jc.writeError(c, "joinrequest.decide", err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, NewResponse(jr))
}

// ManageRequest godoc
// @Summary Approve or reject a join request of an event
// @Description Organizer only. action is approve or reject.
// @Tags Join Requests
// @Produce json
// @Param id path int true "Event ID"
// @Param request_id path int true "Join request ID"
// @Param action path string true "approve or reject"
// @Success 200 {object} Response
// @Failure 400 {object} responses.ErrorResponse "Unknown action or event full"
// @Failure 403 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Router /events/{id}/requests/{request_id}/{action}/ [post]
// @Security BearerAuth
func (jc *JoinRequestController) ManageRequest(c *gin.Context) {
	userID, eventID, ok := jc.callerAndID(c, "id", "Event")
	if !ok {
		return
	}
	requestID, err := strconv.ParseUint(c.Param("request_id"), 10, 32)
	if err != nil {
		responses.NotFound(c, "Join request")
		return
	}

	jr, err := jc.engine.DecideEventRequest(c.Request.Context(), eventID, uint(requestID), userID, c.Param("action"))
	if err != nil {
		jc.writeError(c, "joinrequest.manage", err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, NewResponse(jr))
}

func (jc *JoinRequestController) callerAndID(c *gin.Context, param, resource string) (uint, uint, bool) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return 0, 0, false
	}
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil {
		responses.NotFound(c, resource)
		return 0, 0, false
	}
	return userID, uint(id), true
}

func (jc *JoinRequestController) writeError(c *gin.Context, op string, err error) {
	var dup *DuplicateRequestError
	switch {
	case errors.As(err, &dup):
		c.AbortWithStatusJSON(http.StatusBadRequest, DuplicateResponse{Detail: msgDuplicate, Status: string(dup.Status)})
	case errors.Is(err, ErrOrganizer):
		responses.BadRequest(c, msgOrganizer)
	case errors.Is(err, ErrEventFull):
		responses.BadRequest(c, msgFull)
	case errors.Is(err, ErrInvalidDecision):
		responses.BadRequest(c, "Action must be approve or reject.")
	case errors.Is(err, ErrForbidden):
		responses.Forbidden(c, msgForbidden)
	case errors.Is(err, event.ErrNotFound):
		responses.NotFound(c, "Event")
	case errors.Is(err, ErrNotFound):
		responses.NotFound(c, "Join request")
	default:
		jc.log.ErrorContext(c.Request.Context(), "request failed", slog.String("op", op), slog.Any("error", err))
		responses.InternalServerError(c)
	}
}
