package readstore

import (
	"context"
	"errors"

	"shareit/internal/infra"
	"shareit/internal/usecase/queries"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RequestReadStore struct {
	pool *pgxpool.Pool
}

func NewRequestReadStore(pool *pgxpool.Pool) *RequestReadStore {
	return &RequestReadStore{pool: pool}
}

func (r *RequestReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RequestView, error) {
	query, args, err := psql.Select("id", "description", "created_at").
		From("requests").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build request query", err)
	}

	var view queries.RequestView
	err = r.pool.QueryRow(ctx, query, args...).Scan(&view.ID, &view.Description, &view.Created)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find request by id", err)
	}

	if err := r.attachItems(ctx, []*queries.RequestView{&view}); err != nil {
		return nil, err
	}
	return &view, nil
}

func (r *RequestReadStore) FindAllByRequesterID(ctx context.Context, requesterID uuid.UUID) ([]*queries.RequestView, error) {
	return r.findAll(ctx, sq.Eq{"requester_id": requesterID})
}

func (r *RequestReadStore) FindAllExceptRequester(ctx context.Context, requesterID uuid.UUID) ([]*queries.RequestView, error) {
	return r.findAll(ctx, sq.NotEq{"requester_id": requesterID})
}

func (r *RequestReadStore) findAll(ctx context.Context, pred any) ([]*queries.RequestView, error) {
	query, args, err := psql.Select("id", "description", "created_at").
		From("requests").
		Where(pred).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build requests query", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list requests", err)
	}
	defer rows.Close()

	result := []*queries.RequestView{}
	for rows.Next() {
		var view queries.RequestView
		if err := rows.Scan(&view.ID, &view.Description, &view.Created); err != nil {
			return nil, infra.WrapRepoErr("failed to scan request row", err)
		}
		result = append(result, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate request rows", err)
	}

	if err := r.attachItems(ctx, result); err != nil {
		return nil, err
	}
	return result, nil
}

// attachItems loads the items created in response to each request in one pass.
func (r *RequestReadStore) attachItems(ctx context.Context, views []*queries.RequestView) error {
	byID := make(map[uuid.UUID]*queries.RequestView, len(views))
	ids := make([]uuid.UUID, 0, len(views))
	for _, v := range views {
		v.Items = []*queries.ItemView{}
		byID[v.ID] = v
		ids = append(ids, v.ID)
	}
	if len(ids) == 0 {
		return nil
	}

	query, args, err := itemSelect().Where(sq.Eq{"request_id": ids}).ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build request items query", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return infra.WrapRepoErr("failed to list request items", err)
	}
	defer rows.Close()

	for rows.Next() {
		view, err := scanItemView(rows)
		if err != nil {
			return infra.WrapRepoErr("failed to scan request item row", err)
		}
		if view.RequestID != nil {
			if req, ok := byID[*view.RequestID]; ok {
				req.Items = append(req.Items, view)
			}
		}
	}
	if err := rows.Err(); err != nil {
		return infra.WrapRepoErr("failed to iterate request item rows", err)
	}
	return nil
}
