package repository

import (
	"context"

	"shareit/internal/domain/item"
	"shareit/internal/infra"

	"github.com/jackc/pgx/v5/pgxpool"
)

type CommentRepository struct {
	pool *pgxpool.Pool
}

func NewCommentRepository(pool *pgxpool.Pool) *CommentRepository {
	return &CommentRepository{pool: pool}
}

func (r *CommentRepository) Create(ctx context.Context, c *item.Comment) error {
	query, args, err := psql.Insert("comments").
		Columns("id", "item_id", "author_id", "text", "created_at").
		Values(c.ID(), c.ItemID(), c.AuthorID(), c.Text(), c.Created()).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build comment insert", err)
	}

	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		return wrapPgErr("failed to create comment", err)
	}
	return nil
}
