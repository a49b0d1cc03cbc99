//go:build unit

package commands_test

import (
	"context"
	"testing"

	reqdto "shareit/internal/handler/dto/request"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/commands"
	"shareit/internal/usecase/queries"
	commandsmock "shareit/tests/mock/commands"
	queriesmock "shareit/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRequestCommandsCreate(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*commandsmock.MockRequestRepository, *queriesmock.MockUserReadStore, *queriesmock.MockRequestReadStore, commands.RequestCommands) {
		t.Helper()
		ctrl := gomock.NewController(t)
		requestRepo := commandsmock.NewMockRequestRepository(ctrl)
		userReadStore := queriesmock.NewMockUserReadStore(ctrl)
		requestReadStore := queriesmock.NewMockRequestReadStore(ctrl)
		cmds := commands.NewRequestCommands(requestRepo, userReadStore, requestReadStore, clock.NewMockClock(testNow))
		return requestRepo, userReadStore, requestReadStore, cmds
	}

	t.Run("success", func(t *testing.T) {
		requestRepo, userReadStore, requestReadStore, cmds := setup(t)
		requesterID := uuid.New()
		want := &queries.RequestView{Description: "need a ladder", Created: testNow, Items: []*queries.ItemView{}}

		userReadStore.EXPECT().ExistsByID(ctx, requesterID).Return(true, nil)
		requestRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		requestReadStore.EXPECT().FindByID(ctx, gomock.Any()).Return(want, nil)

		got, err := cmds.Create(ctx, requesterID, reqdto.CreateRequestRequest{Description: "need a ladder"})
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("unknown requester", func(t *testing.T) {
		_, userReadStore, _, cmds := setup(t)
		requesterID := uuid.New()

		userReadStore.EXPECT().ExistsByID(ctx, requesterID).Return(false, nil)

		_, err := cmds.Create(ctx, requesterID, reqdto.CreateRequestRequest{Description: "need a ladder"})
		require.ErrorIs(t, err, errs.ErrUserNotFound)
	})

	t.Run("blank description", func(t *testing.T) {
		_, userReadStore, _, cmds := setup(t)
		requesterID := uuid.New()

		userReadStore.EXPECT().ExistsByID(ctx, requesterID).Return(true, nil)

		_, err := cmds.Create(ctx, requesterID, reqdto.CreateRequestRequest{Description: "  "})
		require.ErrorIs(t, err, errs.ErrDomainValidation)
	})
}
