package commands

import (
	"context"

	"shareit/internal/domain/request"
	reqdto "shareit/internal/handler/dto/request"
	"shareit/internal/infra"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/queries"

	"github.com/google/uuid"
)

type RequestRepository interface {
	Create(ctx context.Context, r *request.Request) error
}

type RequestCommands interface {
	Create(ctx context.Context, requesterID uuid.UUID, req reqdto.CreateRequestRequest) (*queries.RequestView, error)
}

type requestCommandsImpl struct {
	requestRepo      RequestRepository
	userReadStore    queries.UserReadStore
	requestReadStore queries.RequestReadStore
	clock            clock.Clock
}

func NewRequestCommands(
	requestRepo RequestRepository,
	userReadStore queries.UserReadStore,
	requestReadStore queries.RequestReadStore,
	clock clock.Clock,
) RequestCommands {
	return &requestCommandsImpl{
		requestRepo:      requestRepo,
		userReadStore:    userReadStore,
		requestReadStore: requestReadStore,
		clock:            clock,
	}
}

func (c *requestCommandsImpl) Create(
	ctx context.Context,
	requesterID uuid.UUID,
	req reqdto.CreateRequestRequest,
) (*queries.RequestView, error) {
	exists, err := c.userReadStore.ExistsByID(ctx, requesterID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !exists {
		return nil, errs.ErrUserNotFound
	}

	entity, err := request.NewRequest(requesterID, req.Description, c.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	if err := c.requestRepo.Create(ctx, entity); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	view, err := c.requestReadStore.FindByID(ctx, entity.ID())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrRequestNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}
