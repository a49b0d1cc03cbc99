package readstore

import (
	"context"
	"errors"
	"strings"

	"shareit/internal/infra"
	"shareit/internal/usecase/queries"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ItemReadStore struct {
	pool *pgxpool.Pool
}

func NewItemReadStore(pool *pgxpool.Pool) *ItemReadStore {
	return &ItemReadStore{pool: pool}
}

func itemSelect() sq.SelectBuilder {
	return psql.Select("id", "owner_id", "name", "description", "available", "request_id").
		From("items")
}

func (r *ItemReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ItemView, error) {
	query, args, err := itemSelect().Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build item query", err)
	}

	view, err := scanItemView(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find item by id", err)
	}
	return view, nil
}

func (r *ItemReadStore) FindAllByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*queries.ItemView, error) {
	query, args, err := itemSelect().
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build owner items query", err)
	}
	return r.queryItems(ctx, query, args)
}

// SearchAvailable matches the text against name and description,
// case-insensitively. Blank text yields no results by contract.
func (r *ItemReadStore) SearchAvailable(ctx context.Context, text string) ([]*queries.ItemView, error) {
	if strings.TrimSpace(text) == "" {
		return []*queries.ItemView{}, nil
	}

	pattern := "%" + text + "%"
	query, args, err := itemSelect().
		Where(sq.Eq{"available": true}).
		Where(sq.Or{sq.ILike{"name": pattern}, sq.ILike{"description": pattern}}).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build item search query", err)
	}
	return r.queryItems(ctx, query, args)
}

func (r *ItemReadStore) FindCommentsByItemID(ctx context.Context, itemID uuid.UUID) ([]*queries.CommentView, error) {
	query, args, err := psql.Select("c.id", "c.text", "u.name", "c.created_at").
		From("comments c").
		Join("users u ON c.author_id = u.id").
		Where(sq.Eq{"c.item_id": itemID}).
		OrderBy("c.created_at ASC").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build comments query", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list comments", err)
	}
	defer rows.Close()

	result := []*queries.CommentView{}
	for rows.Next() {
		var view queries.CommentView
		if err := rows.Scan(&view.ID, &view.Text, &view.AuthorName, &view.Created); err != nil {
			return nil, infra.WrapRepoErr("failed to scan comment row", err)
		}
		result = append(result, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate comment rows", err)
	}
	return result, nil
}

func (r *ItemReadStore) queryItems(ctx context.Context, query string, args []any) ([]*queries.ItemView, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list items", err)
	}
	defer rows.Close()

	result := []*queries.ItemView{}
	for rows.Next() {
		view, err := scanItemView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan item row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate item rows", err)
	}
	return result, nil
}

func scanItemView(row pgx.Row) (*queries.ItemView, error) {
	var view queries.ItemView
	err := row.Scan(&view.ID, &view.OwnerID, &view.Name, &view.Description, &view.Available, &view.RequestID)
	if err != nil {
		return nil, err
	}
	return &view, nil
}
