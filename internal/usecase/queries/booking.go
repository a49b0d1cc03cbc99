package queries

import (
	"context"

	"shareit/internal/domain/booking"
	"shareit/internal/infra"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"

	"github.com/google/uuid"
)

type BookingQueries interface {
	// GetByID is visible to the booker and the item owner only; anyone else
	// gets not-found.
	GetByID(ctx context.Context, viewerID, bookingID uuid.UUID) (*BookingView, error)
	ListByBooker(ctx context.Context, bookerID uuid.UUID, state booking.State) ([]*BookingView, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, state booking.State) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	bookingReadStore BookingReadStore
	userReadStore    UserReadStore
	clock            clock.Clock
}

func NewBookingQueries(
	bookingReadStore BookingReadStore,
	userReadStore UserReadStore,
	clock clock.Clock,
) BookingQueries {
	return &bookingQueriesImpl{
		bookingReadStore: bookingReadStore,
		userReadStore:    userReadStore,
		clock:            clock,
	}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, viewerID, bookingID uuid.UUID) (*BookingView, error) {
	view, err := q.bookingReadStore.FindByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrBookingNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if view.Booker.ID != viewerID && view.Item.OwnerID != viewerID {
		return nil, errs.ErrBookingNotFound
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListByBooker(ctx context.Context, bookerID uuid.UUID, state booking.State) ([]*BookingView, error) {
	if err := q.requireUser(ctx, bookerID); err != nil {
		return nil, err
	}

	views, err := q.bookingReadStore.FindAllByBookerID(ctx, bookerID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return q.filterByState(views, state), nil
}

func (q *bookingQueriesImpl) ListByOwner(ctx context.Context, ownerID uuid.UUID, state booking.State) ([]*BookingView, error) {
	if err := q.requireUser(ctx, ownerID); err != nil {
		return nil, err
	}

	views, err := q.bookingReadStore.FindAllByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return q.filterByState(views, state), nil
}

func (q *bookingQueriesImpl) requireUser(ctx context.Context, userID uuid.UUID) error {
	exists, err := q.userReadStore.ExistsByID(ctx, userID)
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !exists {
		return errs.ErrUserNotFound
	}
	return nil
}

// filterByState applies the state filter at one instant, preserving the store
// ordering (start descending).
func (q *bookingQueriesImpl) filterByState(views []*BookingView, state booking.State) []*BookingView {
	if state == booking.StateAll {
		if views == nil {
			return []*BookingView{}
		}
		return views
	}

	now := q.clock.Now()
	result := []*BookingView{}
	for _, v := range views {
		if state.Matches(v.Start, v.End, v.Status, now) {
			result = append(result, v)
		}
	}
	return result
}
