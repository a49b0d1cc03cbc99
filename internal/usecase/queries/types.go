package queries

import (
	"context"
	"time"

	"shareit/internal/domain/booking"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type UserRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type ItemRef struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	OwnerID uuid.UUID `json:"owner_id"`
}

type BookingView struct {
	ID     uuid.UUID      `json:"id"`
	Start  time.Time      `json:"start"`
	End    time.Time      `json:"end"`
	Status booking.Status `json:"status"`
	Item   ItemRef        `json:"item"`
	Booker UserRef        `json:"booker"`
}

// BookingPeriodView is the last/next-booking projection shown on an item's
// detail view. It is derived on demand and never persisted.
type BookingPeriodView struct {
	ID       uuid.UUID `json:"id"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	BookerID uuid.UUID `json:"booker_id"`
}

type CommentView struct {
	ID         uuid.UUID `json:"id"`
	Text       string    `json:"text"`
	AuthorName string    `json:"author_name"`
	Created    time.Time `json:"created"`
}

type ItemView struct {
	ID          uuid.UUID  `json:"id"`
	OwnerID     uuid.UUID  `json:"owner_id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Available   bool       `json:"available"`
	RequestID   *uuid.UUID `json:"request_id,omitempty"`
}

type ItemDetailView struct {
	ItemView
	LastBooking *BookingPeriodView `json:"last_booking,omitempty"`
	NextBooking *BookingPeriodView `json:"next_booking,omitempty"`
	Comments    []*CommentView     `json:"comments"`
}

type UserView struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

type RequestView struct {
	ID          uuid.UUID   `json:"id"`
	Description string      `json:"description"`
	Created     time.Time   `json:"created"`
	Items       []*ItemView `json:"items"`
}

// Read store ports implemented by internal/infra/readstore.

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	// Ordered by start descending.
	FindAllByBookerID(ctx context.Context, bookerID uuid.UUID) ([]*BookingView, error)
	FindAllByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*BookingView, error)
	// Nearest approved booking around now for an item, scoped to its owner.
	// Absence yields (nil, nil).
	FindLastForItem(ctx context.Context, itemID, ownerID uuid.UUID, now time.Time) (*BookingPeriodView, error)
	FindNextForItem(ctx context.Context, itemID, ownerID uuid.UUID, now time.Time) (*BookingPeriodView, error)
	// HasFinishedApproved reports whether the user had an approved booking of
	// the item that fully elapsed before now.
	HasFinishedApproved(ctx context.Context, bookerID, itemID uuid.UUID, now time.Time) (bool, error)
}

type ItemReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ItemView, error)
	FindAllByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*ItemView, error)
	SearchAvailable(ctx context.Context, text string) ([]*ItemView, error)
	FindCommentsByItemID(ctx context.Context, itemID uuid.UUID) ([]*CommentView, error)
}

type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*UserView, error)
	FindAll(ctx context.Context) ([]*UserView, error)
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
}

type RequestReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RequestView, error)
	// Newest first, with the items answering each request.
	FindAllByRequesterID(ctx context.Context, requesterID uuid.UUID) ([]*RequestView, error)
	FindAllExceptRequester(ctx context.Context, requesterID uuid.UUID) ([]*RequestView, error)
}
