package commands

import (
	"context"

	"shareit/internal/domain/user"
	reqdto "shareit/internal/handler/dto/request"
	"shareit/internal/infra"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	Update(ctx context.Context, u *user.User) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)
}

type UserCommands interface {
	Create(ctx context.Context, req reqdto.CreateUserRequest) (*queries.UserView, error)
	Update(ctx context.Context, userID uuid.UUID, req reqdto.UpdateUserRequest) (*queries.UserView, error)
	Delete(ctx context.Context, userID uuid.UUID) error
}

type userCommandsImpl struct {
	userRepo      UserRepository
	userReadStore queries.UserReadStore
}

func NewUserCommands(userRepo UserRepository, userReadStore queries.UserReadStore) UserCommands {
	return &userCommandsImpl{
		userRepo:      userRepo,
		userReadStore: userReadStore,
	}
}

func (c *userCommandsImpl) Create(ctx context.Context, req reqdto.CreateUserRequest) (*queries.UserView, error) {
	entity, err := user.NewUser(req.Name, req.Email)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	if err := c.userRepo.Create(ctx, entity); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, errs.ErrEmailAlreadyInUse)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	view, err := c.userReadStore.FindByID(ctx, entity.ID())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (c *userCommandsImpl) Update(ctx context.Context, userID uuid.UUID, req reqdto.UpdateUserRequest) (*queries.UserView, error) {
	entity, err := c.userRepo.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrUserNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if err := entity.ApplyPatch(req.Name, req.Email); err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	if err := c.userRepo.Update(ctx, entity); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, errs.ErrEmailAlreadyInUse)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	view, err := c.userReadStore.FindByID(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (c *userCommandsImpl) Delete(ctx context.Context, userID uuid.UUID) error {
	if err := c.userRepo.Delete(ctx, userID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrUserNotFound)
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}
