package commands

import (
	"context"

	"shareit/internal/domain/item"
	reqdto "shareit/internal/handler/dto/request"
	"shareit/internal/infra"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/queries"

	"github.com/google/uuid"
)

type CommentRepository interface {
	Create(ctx context.Context, c *item.Comment) error
}

type ItemCommands interface {
	Create(ctx context.Context, ownerID uuid.UUID, req reqdto.CreateItemRequest) (*queries.ItemView, error)
	Update(ctx context.Context, ownerID, itemID uuid.UUID, req reqdto.UpdateItemRequest) (*queries.ItemView, error)
	AddComment(ctx context.Context, authorID, itemID uuid.UUID, req reqdto.CreateCommentRequest) (*queries.CommentView, error)
}

type itemCommandsImpl struct {
	itemRepo         ItemRepository
	commentRepo      CommentRepository
	userReadStore    queries.UserReadStore
	itemReadStore    queries.ItemReadStore
	requestReadStore queries.RequestReadStore
	bookingReadStore queries.BookingReadStore
	clock            clock.Clock
}

func NewItemCommands(
	itemRepo ItemRepository,
	commentRepo CommentRepository,
	userReadStore queries.UserReadStore,
	itemReadStore queries.ItemReadStore,
	requestReadStore queries.RequestReadStore,
	bookingReadStore queries.BookingReadStore,
	clock clock.Clock,
) ItemCommands {
	return &itemCommandsImpl{
		itemRepo:         itemRepo,
		commentRepo:      commentRepo,
		userReadStore:    userReadStore,
		itemReadStore:    itemReadStore,
		requestReadStore: requestReadStore,
		bookingReadStore: bookingReadStore,
		clock:            clock,
	}
}

func (c *itemCommandsImpl) Create(
	ctx context.Context,
	ownerID uuid.UUID,
	req reqdto.CreateItemRequest,
) (*queries.ItemView, error) {
	exists, err := c.userReadStore.ExistsByID(ctx, ownerID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !exists {
		return nil, errs.ErrUserNotFound
	}

	if req.RequestID != nil {
		if _, err := c.requestReadStore.FindByID(ctx, *req.RequestID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, errs.Mark(err, errs.ErrRequestNotFound)
			}
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
	}

	entity, err := item.NewItem(ownerID, req.Name, req.Description, *req.Available, req.RequestID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	if err := c.itemRepo.Create(ctx, entity); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	view, err := c.itemReadStore.FindByID(ctx, entity.ID())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (c *itemCommandsImpl) Update(
	ctx context.Context,
	ownerID, itemID uuid.UUID,
	req reqdto.UpdateItemRequest,
) (*queries.ItemView, error) {
	entity, err := c.itemRepo.FindByID(ctx, itemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrItemNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	// Only the owner may edit; anyone else learns nothing about the item.
	if !entity.IsOwnedBy(ownerID) {
		return nil, errs.ErrItemNotFound
	}

	entity.ApplyPatch(req.Name, req.Description, req.Available)

	if err := c.itemRepo.Update(ctx, entity); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	view, err := c.itemReadStore.FindByID(ctx, itemID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (c *itemCommandsImpl) AddComment(
	ctx context.Context,
	authorID, itemID uuid.UUID,
	req reqdto.CreateCommentRequest,
) (*queries.CommentView, error) {
	entity, err := item.NewComment(itemID, authorID, req.Text, c.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrBlankComment)
	}

	// Commenting requires an approved booking by the author whose rental
	// period has fully elapsed.
	eligible, err := c.bookingReadStore.HasFinishedApproved(ctx, authorID, itemID, c.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !eligible {
		return nil, errs.ErrCommentNotAllowed
	}

	author, err := c.userReadStore.FindByID(ctx, authorID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrUserNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if _, err := c.itemRepo.FindByID(ctx, itemID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrItemNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if err := c.commentRepo.Create(ctx, entity); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return &queries.CommentView{
		ID:         entity.ID(),
		Text:       entity.Text(),
		AuthorName: author.Name,
		Created:    entity.Created(),
	}, nil
}
