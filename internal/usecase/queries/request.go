package queries

import (
	"context"

	"shareit/internal/infra"
	"shareit/internal/pkg/errs"

	"github.com/google/uuid"
)

type RequestQueries interface {
	GetByID(ctx context.Context, viewerID, requestID uuid.UUID) (*RequestView, error)
	// ListOwn returns the viewer's requests, newest first, with answers.
	ListOwn(ctx context.Context, requesterID uuid.UUID) ([]*RequestView, error)
	// ListOthers returns everyone else's requests so users can offer items.
	ListOthers(ctx context.Context, requesterID uuid.UUID) ([]*RequestView, error)
}

type requestQueriesImpl struct {
	requestReadStore RequestReadStore
	userReadStore    UserReadStore
}

func NewRequestQueries(requestReadStore RequestReadStore, userReadStore UserReadStore) RequestQueries {
	return &requestQueriesImpl{
		requestReadStore: requestReadStore,
		userReadStore:    userReadStore,
	}
}

func (q *requestQueriesImpl) GetByID(ctx context.Context, viewerID, requestID uuid.UUID) (*RequestView, error) {
	if err := q.requireUser(ctx, viewerID); err != nil {
		return nil, err
	}

	view, err := q.requestReadStore.FindByID(ctx, requestID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrRequestNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (q *requestQueriesImpl) ListOwn(ctx context.Context, requesterID uuid.UUID) ([]*RequestView, error) {
	if err := q.requireUser(ctx, requesterID); err != nil {
		return nil, err
	}

	views, err := q.requestReadStore.FindAllByRequesterID(ctx, requesterID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}

func (q *requestQueriesImpl) ListOthers(ctx context.Context, requesterID uuid.UUID) ([]*RequestView, error) {
	if err := q.requireUser(ctx, requesterID); err != nil {
		return nil, err
	}

	views, err := q.requestReadStore.FindAllExceptRequester(ctx, requesterID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}

func (q *requestQueriesImpl) requireUser(ctx context.Context, userID uuid.UUID) error {
	exists, err := q.userReadStore.ExistsByID(ctx, userID)
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !exists {
		return errs.ErrUserNotFound
	}
	return nil
}
