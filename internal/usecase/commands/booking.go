package commands

import (
	"context"
	"errors"

	"shareit/internal/domain/booking"
	"shareit/internal/domain/item"
	reqdto "shareit/internal/handler/dto/request"
	"shareit/internal/infra"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/queries"

	"github.com/google/uuid"
)

// Write-side ports implemented by internal/infra/repository.

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	// Conditional transition: returns false when the row was no longer WAITING.
	UpdateStatusIfWaiting(ctx context.Context, id uuid.UUID, status booking.Status) (bool, error)
}

type ItemRepository interface {
	Create(ctx context.Context, i *item.Item) error
	Update(ctx context.Context, i *item.Item) error
	FindByID(ctx context.Context, id uuid.UUID) (*item.Item, error)
}

type BookingCommands interface {
	Create(ctx context.Context, bookerID uuid.UUID, req reqdto.CreateBookingRequest) (*queries.BookingView, error)
	Approve(ctx context.Context, ownerID, bookingID uuid.UUID, approved bool) (*queries.BookingView, error)
}

type bookingCommandsImpl struct {
	bookingRepo      BookingRepository
	itemRepo         ItemRepository
	userReadStore    queries.UserReadStore
	bookingReadStore queries.BookingReadStore
	clock            clock.Clock
}

func NewBookingCommands(
	bookingRepo BookingRepository,
	itemRepo ItemRepository,
	userReadStore queries.UserReadStore,
	bookingReadStore queries.BookingReadStore,
	clock clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		bookingRepo:      bookingRepo,
		itemRepo:         itemRepo,
		userReadStore:    userReadStore,
		bookingReadStore: bookingReadStore,
		clock:            clock,
	}
}

func (c *bookingCommandsImpl) Create(
	ctx context.Context,
	bookerID uuid.UUID,
	req reqdto.CreateBookingRequest,
) (*queries.BookingView, error) {
	exists, err := c.userReadStore.ExistsByID(ctx, bookerID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !exists {
		return nil, errs.ErrUserNotFound
	}

	itm, err := c.itemRepo.FindByID(ctx, req.ItemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrItemNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	entity, err := booking.NewBooking(
		c.clock.Now(),
		booking.ItemSpec{ID: itm.ID(), OwnerID: itm.OwnerID(), Available: itm.Available()},
		bookerID,
		req.Start, req.End,
	)
	if err != nil {
		return nil, mapBookingFactoryErr(err)
	}

	if err := c.bookingRepo.Create(ctx, entity); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	view, err := c.bookingReadStore.FindByID(ctx, entity.ID())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (c *bookingCommandsImpl) Approve(
	ctx context.Context,
	ownerID, bookingID uuid.UUID,
	approved bool,
) (*queries.BookingView, error) {
	entity, err := c.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrBookingNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	// A non-owner is told the booking does not exist rather than that
	// approval is forbidden.
	if !entity.IsOwner(ownerID) {
		return nil, errs.ErrBookingNotFound
	}

	if err := entity.Decide(approved); err != nil {
		return nil, errs.Mark(err, errs.ErrBookingAlreadyProcessed)
	}

	updated, err := c.bookingRepo.UpdateStatusIfWaiting(ctx, bookingID, entity.Status())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !updated {
		// Lost the race against a concurrent decision on the same booking.
		return nil, errs.ErrBookingAlreadyProcessed
	}

	view, err := c.bookingReadStore.FindByID(ctx, bookingID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

// mapBookingFactoryErr translates domain invariant violations into the shared
// sentinels the boundary maps to status codes. Booking one's own item surfaces
// as item-not-found by policy.
func mapBookingFactoryErr(err error) error {
	switch {
	case errors.Is(err, booking.ErrOwnItem):
		return errs.Mark(err, errs.ErrItemNotFound)
	case errors.Is(err, booking.ErrItemUnavailable):
		return errs.Mark(err, errs.ErrItemUnavailable)
	default:
		return errs.Mark(err, errs.ErrInvalidBookingPeriod)
	}
}
