package readstore

import (
	"context"
	"errors"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/infra"
	"shareit/internal/usecase/queries"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type BookingReadStore struct {
	pool *pgxpool.Pool
}

func NewBookingReadStore(pool *pgxpool.Pool) *BookingReadStore {
	return &BookingReadStore{pool: pool}
}

func (r *BookingReadStore) viewSelect() sq.SelectBuilder {
	return psql.Select(
		"b.id", "b.start_date", "b.end_date", "b.status",
		"i.id", "i.name", "i.owner_id",
		"u.id", "u.name",
	).
		From("bookings b").
		Join("items i ON b.item_id = i.id").
		Join("users u ON b.booker_id = u.id")
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	query, args, err := r.viewSelect().Where(sq.Eq{"b.id": id}).ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build booking query", err)
	}

	view, err := scanBookingView(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by id", err)
	}
	return view, nil
}

func (r *BookingReadStore) FindAllByBookerID(ctx context.Context, bookerID uuid.UUID) ([]*queries.BookingView, error) {
	return r.findAll(ctx, sq.Eq{"b.booker_id": bookerID})
}

func (r *BookingReadStore) FindAllByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*queries.BookingView, error) {
	return r.findAll(ctx, sq.Eq{"i.owner_id": ownerID})
}

func (r *BookingReadStore) findAll(ctx context.Context, pred any) ([]*queries.BookingView, error) {
	query, args, err := r.viewSelect().
		Where(pred).
		OrderBy("b.start_date DESC").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build booking list query", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	var result []*queries.BookingView
	for rows.Next() {
		view, err := scanBookingView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking rows", err)
	}
	return result, nil
}

func (r *BookingReadStore) FindLastForItem(ctx context.Context, itemID, ownerID uuid.UUID, now time.Time) (*queries.BookingPeriodView, error) {
	return r.findNearest(ctx, itemID, ownerID, sq.Lt{"b.start_date": now}, "b.start_date DESC")
}

func (r *BookingReadStore) FindNextForItem(ctx context.Context, itemID, ownerID uuid.UUID, now time.Time) (*queries.BookingPeriodView, error) {
	return r.findNearest(ctx, itemID, ownerID, sq.Gt{"b.start_date": now}, "b.start_date ASC")
}

func (r *BookingReadStore) findNearest(ctx context.Context, itemID, ownerID uuid.UUID, window any, order string) (*queries.BookingPeriodView, error) {
	query, args, err := psql.Select("b.id", "b.start_date", "b.end_date", "b.booker_id").
		From("bookings b").
		Join("items i ON b.item_id = i.id").
		Where(sq.Eq{"b.item_id": itemID}).
		Where(sq.Eq{"i.owner_id": ownerID}).
		Where(sq.Eq{"b.status": booking.StatusApproved}).
		Where(window).
		OrderBy(order).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build nearest booking query", err)
	}

	var view queries.BookingPeriodView
	err = r.pool.QueryRow(ctx, query, args...).Scan(&view.ID, &view.Start, &view.End, &view.BookerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to find nearest booking", err)
	}
	return &view, nil
}

func (r *BookingReadStore) HasFinishedApproved(ctx context.Context, bookerID, itemID uuid.UUID, now time.Time) (bool, error) {
	query, args, err := psql.Select("1").
		From("bookings").
		Where(sq.Eq{"booker_id": bookerID}).
		Where(sq.Eq{"item_id": itemID}).
		Where(sq.Eq{"status": booking.StatusApproved}).
		Where(sq.Lt{"end_date": now}).
		Limit(1).
		ToSql()
	if err != nil {
		return false, infra.WrapRepoErr("failed to build finished booking query", err)
	}

	var one int
	err = r.pool.QueryRow(ctx, query, args...).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, infra.WrapRepoErr("failed to check finished bookings", err)
	}
	return true, nil
}

func scanBookingView(row pgx.Row) (*queries.BookingView, error) {
	var view queries.BookingView
	err := row.Scan(
		&view.ID, &view.Start, &view.End, &view.Status,
		&view.Item.ID, &view.Item.Name, &view.Item.OwnerID,
		&view.Booker.ID, &view.Booker.Name,
	)
	if err != nil {
		return nil, err
	}
	return &view, nil
}
