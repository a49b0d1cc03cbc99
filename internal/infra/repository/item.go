package repository

import (
	"context"
	"errors"

	"shareit/internal/domain/item"
	"shareit/internal/infra"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ItemRepository struct {
	pool *pgxpool.Pool
}

func NewItemRepository(pool *pgxpool.Pool) *ItemRepository {
	return &ItemRepository{pool: pool}
}

func (r *ItemRepository) Create(ctx context.Context, i *item.Item) error {
	query, args, err := psql.Insert("items").
		Columns("id", "owner_id", "name", "description", "available", "request_id").
		Values(i.ID(), i.OwnerID(), i.Name(), i.Description(), i.Available(), i.RequestID()).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build item insert", err)
	}

	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		return wrapPgErr("failed to create item", err)
	}
	return nil
}

func (r *ItemRepository) Update(ctx context.Context, i *item.Item) error {
	query, args, err := psql.Update("items").
		Set("name", i.Name()).
		Set("description", i.Description()).
		Set("available", i.Available()).
		Where(sq.Eq{"id": i.ID()}).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build item update", err)
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return wrapPgErr("failed to update item", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("item not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*item.Item, error) {
	query, args, err := psql.Select("id", "owner_id", "name", "description", "available", "request_id").
		From("items").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build item query", err)
	}

	var (
		itemID, ownerID   uuid.UUID
		name, description string
		available         bool
		requestID         *uuid.UUID
	)
	err = r.pool.QueryRow(ctx, query, args...).
		Scan(&itemID, &ownerID, &name, &description, &available, &requestID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find item by id", err)
	}

	return item.ReconstructItem(itemID, ownerID, name, description, available, requestID), nil
}
