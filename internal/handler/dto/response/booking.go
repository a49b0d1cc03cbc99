package response

import (
	"time"

	"shareit/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID     uuid.UUID       `json:"id"`
	Start  time.Time       `json:"start"`
	End    time.Time       `json:"end"`
	Status string          `json:"status"`
	Item   ItemRefResponse `json:"item"`
	Booker UserRefResponse `json:"booker"`
}

type ItemRefResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type UserRefResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type BookingPeriodResponse struct {
	ID       uuid.UUID `json:"id"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	BookerID uuid.UUID `json:"bookerId"`
}

func FromBookingView(view *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:     view.ID,
		Start:  view.Start,
		End:    view.End,
		Status: string(view.Status),
		Item:   ItemRefResponse{ID: view.Item.ID, Name: view.Item.Name},
		Booker: UserRefResponse{ID: view.Booker.ID, Name: view.Booker.Name},
	}
}

func FromBookingViews(views []*queries.BookingView) []*BookingResponse {
	out := make([]*BookingResponse, len(views))
	for i, v := range views {
		out[i] = FromBookingView(v)
	}
	return out
}

func fromBookingPeriodView(view *queries.BookingPeriodView) *BookingPeriodResponse {
	if view == nil {
		return nil
	}
	return &BookingPeriodResponse{
		ID:       view.ID,
		Start:    view.Start,
		End:      view.End,
		BookerID: view.BookerID,
	}
}
