package repository

import (
	"context"
	"errors"

	"shareit/internal/domain/user"
	"shareit/internal/infra"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	query, args, err := psql.Insert("users").
		Columns("id", "name", "email").
		Values(u.ID(), u.Name(), u.Email()).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build user insert", err)
	}

	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		return wrapPgErr("failed to create user", err)
	}
	return nil
}

func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	query, args, err := psql.Update("users").
		Set("name", u.Name()).
		Set("email", u.Email()).
		Where(sq.Eq{"id": u.ID()}).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build user update", err)
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return wrapPgErr("failed to update user", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := psql.Delete("users").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build user delete", err)
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return wrapPgErr("failed to delete user", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	query, args, err := psql.Select("id", "name", "email").
		From("users").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build user query", err)
	}

	var (
		userID      uuid.UUID
		name, email string
	)
	err = r.pool.QueryRow(ctx, query, args...).Scan(&userID, &name, &email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by id", err)
	}
	return user.ReconstructUser(userID, name, email), nil
}
