package queries

import (
	"context"

	"shareit/internal/infra"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"

	"github.com/google/uuid"
)

type ItemQueries interface {
	// GetByID returns the detail view. The last/next booking projection is
	// populated only when the viewer owns the item.
	GetByID(ctx context.Context, viewerID, itemID uuid.UUID) (*ItemDetailView, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*ItemDetailView, error)
	Search(ctx context.Context, text string) ([]*ItemView, error)
}

type itemQueriesImpl struct {
	itemReadStore    ItemReadStore
	bookingReadStore BookingReadStore
	clock            clock.Clock
}

func NewItemQueries(
	itemReadStore ItemReadStore,
	bookingReadStore BookingReadStore,
	clock clock.Clock,
) ItemQueries {
	return &itemQueriesImpl{
		itemReadStore:    itemReadStore,
		bookingReadStore: bookingReadStore,
		clock:            clock,
	}
}

func (q *itemQueriesImpl) GetByID(ctx context.Context, viewerID, itemID uuid.UUID) (*ItemDetailView, error) {
	view, err := q.itemReadStore.FindByID(ctx, itemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrItemNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return q.buildDetail(ctx, view, viewerID)
}

func (q *itemQueriesImpl) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*ItemDetailView, error) {
	views, err := q.itemReadStore.FindAllByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	result := make([]*ItemDetailView, 0, len(views))
	for _, v := range views {
		detail, err := q.buildDetail(ctx, v, ownerID)
		if err != nil {
			return nil, err
		}
		result = append(result, detail)
	}
	return result, nil
}

func (q *itemQueriesImpl) Search(ctx context.Context, text string) ([]*ItemView, error) {
	views, err := q.itemReadStore.SearchAvailable(ctx, text)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}

// buildDetail derives the nearest past and future approved bookings around
// now. The store scopes both to the item owner, so a non-owner viewer simply
// gets neither.
func (q *itemQueriesImpl) buildDetail(ctx context.Context, view *ItemView, viewerID uuid.UUID) (*ItemDetailView, error) {
	now := q.clock.Now()

	last, err := q.bookingReadStore.FindLastForItem(ctx, view.ID, viewerID, now)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	next, err := q.bookingReadStore.FindNextForItem(ctx, view.ID, viewerID, now)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	comments, err := q.itemReadStore.FindCommentsByItemID(ctx, view.ID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return &ItemDetailView{
		ItemView:    *view,
		LastBooking: last,
		NextBooking: next,
		Comments:    comments,
	}, nil
}
