package response

import (
	"time"

	"shareit/internal/usecase/queries"

	"github.com/google/uuid"
)

type RequestResponse struct {
	ID          uuid.UUID       `json:"id"`
	Description string          `json:"description"`
	Created     time.Time       `json:"created"`
	Items       []*ItemResponse `json:"items"`
}

func FromRequestView(view *queries.RequestView) *RequestResponse {
	return &RequestResponse{
		ID:          view.ID,
		Description: view.Description,
		Created:     view.Created,
		Items:       FromItemViews(view.Items),
	}
}

func FromRequestViews(views []*queries.RequestView) []*RequestResponse {
	out := make([]*RequestResponse, len(views))
	for i, v := range views {
		out[i] = FromRequestView(v)
	}
	return out
}
