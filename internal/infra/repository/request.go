package repository

import (
	"context"

	"shareit/internal/domain/request"
	"shareit/internal/infra"

	"github.com/jackc/pgx/v5/pgxpool"
)

type RequestRepository struct {
	pool *pgxpool.Pool
}

func NewRequestRepository(pool *pgxpool.Pool) *RequestRepository {
	return &RequestRepository{pool: pool}
}

func (r *RequestRepository) Create(ctx context.Context, req *request.Request) error {
	query, args, err := psql.Insert("requests").
		Columns("id", "requester_id", "description", "created_at").
		Values(req.ID(), req.RequesterID(), req.Description(), req.Created()).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build request insert", err)
	}

	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		return wrapPgErr("failed to create request", err)
	}
	return nil
}
