package repository

import (
	"context"
	"errors"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/infra"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepository struct {
	pool *pgxpool.Pool
}

func NewBookingRepository(pool *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{pool: pool}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	query, args, err := psql.Insert("bookings").
		Columns("id", "item_id", "booker_id", "start_date", "end_date", "status").
		Values(b.ID(), b.ItemID(), b.BookerID(), b.Period().Start(), b.Period().End(), b.Status()).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build booking insert", err)
	}

	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		return wrapPgErr("failed to create booking", err)
	}
	return nil
}

// FindByID loads the booking together with the owning item, which the approval
// and view guards need.
func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	query, args, err := psql.Select(
		"b.id", "b.item_id", "i.owner_id", "b.booker_id",
		"b.start_date", "b.end_date", "b.status",
	).
		From("bookings b").
		Join("items i ON b.item_id = i.id").
		Where(sq.Eq{"b.id": id}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build booking query", err)
	}

	var (
		bookingID, itemID, ownerID, bookerID uuid.UUID
		start, end                           time.Time
		status                               booking.Status
	)
	err = r.pool.QueryRow(ctx, query, args...).
		Scan(&bookingID, &itemID, &ownerID, &bookerID, &start, &end, &status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by id", err)
	}
	if !status.IsValid() {
		return nil, infra.WrapRepoErr("unknown booking status "+status.String(), nil)
	}

	return booking.ReconstructBooking(
		bookingID, itemID, ownerID, bookerID,
		booking.ReconstructPeriod(start, end),
		status,
	), nil
}

// UpdateStatusIfWaiting performs the conditional one-shot transition. It
// reports false when the row was already terminal, so a concurrent duplicate
// approval cannot overwrite a decision.
func (r *BookingRepository) UpdateStatusIfWaiting(ctx context.Context, id uuid.UUID, status booking.Status) (bool, error) {
	query, args, err := psql.Update("bookings").
		Set("status", status).
		Where(sq.Eq{"id": id}).
		Where(sq.Eq{"status": booking.StatusWaiting}).
		ToSql()
	if err != nil {
		return false, infra.WrapRepoErr("failed to build booking status update", err)
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return false, infra.WrapRepoErr("failed to update booking status", err)
	}
	return tag.RowsAffected() > 0, nil
}
