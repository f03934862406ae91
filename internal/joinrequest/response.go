package joinrequest

import (
	"time"

	"github.com/DhavalSuthar-24/questboard/internal/models"
)

// Response is the JSON representation of a join request.
type Response struct {
	ID        uint                 `json:"id"`
	Event     uint                 `json:"event"`
	User      string               `json:"user"`
	Status    models.RequestStatus `json:"status"`
	CreatedAt time.Time            `json:"created_at"`
}

func NewResponse(jr *models.JoinRequest) Response {
	resp := Response{
		ID:        jr.ID,
		Event:     jr.EventID,
		Status:    jr.Status,
		CreatedAt: jr.CreatedAt,
	}
	if jr.User != nil {
		resp.User = jr.User.Username
	}
	return resp
}

func NewResponses(requests []models.JoinRequest) []Response {
	out := make([]Response, 0, len(requests))
	for i := range requests {
		out = append(out, NewResponse(&requests[i]))
	}
	return out
}
