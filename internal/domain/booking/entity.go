package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrItemUnavailable  = errors.New("item is not available for booking")
	ErrOwnItem          = errors.New("owner cannot book their own item")
	ErrAlreadyProcessed = errors.New("booking is already processed")
)

// ItemSpec is the snapshot of the booked item the factory validates against.
// The item itself is owned by the item service; bookings only reference it.
type ItemSpec struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Available bool
}

type Booking struct {
	id          uuid.UUID
	itemID      uuid.UUID
	itemOwnerID uuid.UUID
	bookerID    uuid.UUID
	period      Period
	status      Status
}

// NewBooking applies the creation invariants and returns a WAITING booking.
func NewBooking(now time.Time, item ItemSpec, bookerID uuid.UUID, start, end time.Time) (*Booking, error) {
	if item.OwnerID == bookerID {
		return nil, ErrOwnItem
	}
	if !item.Available {
		return nil, ErrItemUnavailable
	}
	period, err := NewPeriod(start, end, now)
	if err != nil {
		return nil, err
	}
	return &Booking{
		id:          uuid.New(),
		itemID:      item.ID,
		itemOwnerID: item.OwnerID,
		bookerID:    bookerID,
		period:      period,
		status:      StatusWaiting,
	}, nil
}

func ReconstructBooking(id, itemID, itemOwnerID, bookerID uuid.UUID, period Period, status Status) *Booking {
	return &Booking{
		id:          id,
		itemID:      itemID,
		itemOwnerID: itemOwnerID,
		bookerID:    bookerID,
		period:      period,
		status:      status,
	}
}

// Decide is the single WAITING -> APPROVED/REJECTED transition. It fails on a
// terminal booking and leaves the status untouched.
func (b *Booking) Decide(approved bool) error {
	if b.status.IsTerminal() {
		return ErrAlreadyProcessed
	}
	if approved {
		b.status = StatusApproved
	} else {
		b.status = StatusRejected
	}
	return nil
}

func (b *Booking) IsBooker(userID uuid.UUID) bool {
	return b.bookerID == userID
}

func (b *Booking) IsOwner(userID uuid.UUID) bool {
	return b.itemOwnerID == userID
}

// CanBeViewedBy holds for the booker and the item owner only. Everyone else is
// told the booking does not exist.
func (b *Booking) CanBeViewedBy(userID uuid.UUID) bool {
	return b.IsBooker(userID) || b.IsOwner(userID)
}

// TimeState classifies the booking window against now, ignoring status.
func (b *Booking) TimeState(now time.Time) State {
	switch {
	case b.period.Start().After(now):
		return StateFuture
	case b.period.End().Before(now):
		return StatePast
	default:
		return StateCurrent
	}
}

func (b *Booking) ID() uuid.UUID          { return b.id }
func (b *Booking) ItemID() uuid.UUID      { return b.itemID }
func (b *Booking) ItemOwnerID() uuid.UUID { return b.itemOwnerID }
func (b *Booking) BookerID() uuid.UUID    { return b.bookerID }
func (b *Booking) Period() Period         { return b.period }
func (b *Booking) Status() Status         { return b.status }
