//go:build unit || e2e

package builder

import (
	"time"

	dombooking "shareit/internal/domain/booking"
	reqdto "shareit/internal/handler/dto/request"
	"shareit/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ItemID     uuid.UUID
	ItemName   string
	OwnerID    uuid.UUID
	BookerID   uuid.UUID
	BookerName string
	Available  bool
	Start      time.Time
	End        time.Time
	Status     dombooking.Status
	Now        time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return &BookingBuilder{
		ItemID:     uuid.New(),
		ItemName:   "Cordless Drill",
		OwnerID:    uuid.New(),
		BookerID:   uuid.New(),
		BookerName: "borrower",
		Available:  true,
		Start:      now.Add(24 * time.Hour),
		End:        now.Add(48 * time.Hour),
		Status:     dombooking.StatusWaiting,
		Now:        now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) ItemSpec() dombooking.ItemSpec {
	return dombooking.ItemSpec{
		ID:        b.ItemID,
		OwnerID:   b.OwnerID,
		Available: b.Available,
	}
}

func (b *BookingBuilder) BuildDomain() (*dombooking.Booking, error) {
	return dombooking.NewBooking(b.Now, b.ItemSpec(), b.BookerID, b.Start, b.End)
}

func (b *BookingBuilder) BuildReconstructed() *dombooking.Booking {
	return dombooking.ReconstructBooking(
		uuid.New(), b.ItemID, b.OwnerID, b.BookerID,
		dombooking.ReconstructPeriod(b.Start, b.End), b.Status,
	)
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		ItemID: b.ItemID,
		Start:  b.Start,
		End:    b.End,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:     uuid.New(),
		Start:  b.Start,
		End:    b.End,
		Status: b.Status,
		Item:   queries.ItemRef{ID: b.ItemID, Name: b.ItemName, OwnerID: b.OwnerID},
		Booker: queries.UserRef{ID: b.BookerID, Name: b.BookerName},
	}
}
