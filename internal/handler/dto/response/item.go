package response

import (
	"time"

	"shareit/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ItemResponse struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Available   bool       `json:"available"`
	RequestID   *uuid.UUID `json:"requestId,omitempty"`
}

type ItemDetailResponse struct {
	ItemResponse
	LastBooking *BookingPeriodResponse `json:"lastBooking,omitempty"`
	NextBooking *BookingPeriodResponse `json:"nextBooking,omitempty"`
	Comments    []*CommentResponse     `json:"comments"`
}

type CommentResponse struct {
	ID         uuid.UUID `json:"id"`
	Text       string    `json:"text"`
	AuthorName string    `json:"authorName"`
	Created    time.Time `json:"created"`
}

func FromItemView(view *queries.ItemView) *ItemResponse {
	resp := &ItemResponse{}
	_ = copier.Copy(resp, view)
	return resp
}

func FromItemViews(views []*queries.ItemView) []*ItemResponse {
	out := make([]*ItemResponse, len(views))
	for i, v := range views {
		out[i] = FromItemView(v)
	}
	return out
}

func FromItemDetailView(view *queries.ItemDetailView) *ItemDetailResponse {
	return &ItemDetailResponse{
		ItemResponse: *FromItemView(&view.ItemView),
		LastBooking:  fromBookingPeriodView(view.LastBooking),
		NextBooking:  fromBookingPeriodView(view.NextBooking),
		Comments:     FromCommentViews(view.Comments),
	}
}

func FromCommentView(view *queries.CommentView) *CommentResponse {
	resp := &CommentResponse{}
	_ = copier.Copy(resp, view)
	return resp
}

func FromCommentViews(views []*queries.CommentView) []*CommentResponse {
	out := make([]*CommentResponse, len(views))
	for i, v := range views {
		out[i] = FromCommentView(v)
	}
	return out
}
