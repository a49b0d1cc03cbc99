//go:build unit

package queries_test

import (
	"context"
	"testing"

	"shareit/internal/infra"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/queries"
	queriesmock "shareit/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type requestQueryFixture struct {
	requestReadStore *queriesmock.MockRequestReadStore
	userReadStore    *queriesmock.MockUserReadStore
	queries          queries.RequestQueries
}

func newRequestQueryFixture(t *testing.T) *requestQueryFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &requestQueryFixture{
		requestReadStore: queriesmock.NewMockRequestReadStore(ctrl),
		userReadStore:    queriesmock.NewMockUserReadStore(ctrl),
	}
	f.queries = queries.NewRequestQueries(f.requestReadStore, f.userReadStore)
	return f
}

func TestRequestQueriesGetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("any user can read any request", func(t *testing.T) {
		f := newRequestQueryFixture(t)
		viewerID := uuid.New()
		want := &queries.RequestView{ID: uuid.New(), Description: "need a ladder", Items: []*queries.ItemView{}}

		f.userReadStore.EXPECT().ExistsByID(ctx, viewerID).Return(true, nil)
		f.requestReadStore.EXPECT().FindByID(ctx, want.ID).Return(want, nil)

		got, err := f.queries.GetByID(ctx, viewerID, want.ID)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("unknown viewer", func(t *testing.T) {
		f := newRequestQueryFixture(t)
		viewerID := uuid.New()

		f.userReadStore.EXPECT().ExistsByID(ctx, viewerID).Return(false, nil)

		_, err := f.queries.GetByID(ctx, viewerID, uuid.New())
		require.ErrorIs(t, err, errs.ErrUserNotFound)
	})

	t.Run("missing request", func(t *testing.T) {
		f := newRequestQueryFixture(t)
		viewerID, requestID := uuid.New(), uuid.New()

		f.userReadStore.EXPECT().ExistsByID(ctx, viewerID).Return(true, nil)
		f.requestReadStore.EXPECT().FindByID(ctx, requestID).
			Return(nil, infra.WrapRepoErr("request not found", assert.AnError, infra.KindNotFound))

		_, err := f.queries.GetByID(ctx, viewerID, requestID)
		require.ErrorIs(t, err, errs.ErrRequestNotFound)
	})
}

func TestRequestQueriesList(t *testing.T) {
	ctx := context.Background()

	t.Run("own requests", func(t *testing.T) {
		f := newRequestQueryFixture(t)
		requesterID := uuid.New()
		want := []*queries.RequestView{{ID: uuid.New(), Description: "need a ladder"}}

		f.userReadStore.EXPECT().ExistsByID(ctx, requesterID).Return(true, nil)
		f.requestReadStore.EXPECT().FindAllByRequesterID(ctx, requesterID).Return(want, nil)

		got, err := f.queries.ListOwn(ctx, requesterID)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("other users' requests", func(t *testing.T) {
		f := newRequestQueryFixture(t)
		requesterID := uuid.New()
		want := []*queries.RequestView{{ID: uuid.New(), Description: "looking for a tent"}}

		f.userReadStore.EXPECT().ExistsByID(ctx, requesterID).Return(true, nil)
		f.requestReadStore.EXPECT().FindAllExceptRequester(ctx, requesterID).Return(want, nil)

		got, err := f.queries.ListOthers(ctx, requesterID)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})
}
