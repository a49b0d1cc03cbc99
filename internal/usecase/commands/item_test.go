//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	reqdto "shareit/internal/handler/dto/request"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/commands"
	"shareit/internal/usecase/queries"
	"shareit/tests/common/builder"
	commandsmock "shareit/tests/mock/commands"
	queriesmock "shareit/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type itemCommandFixture struct {
	itemRepo         *commandsmock.MockItemRepository
	commentRepo      *commandsmock.MockCommentRepository
	userReadStore    *queriesmock.MockUserReadStore
	itemReadStore    *queriesmock.MockItemReadStore
	requestReadStore *queriesmock.MockRequestReadStore
	bookingReadStore *queriesmock.MockBookingReadStore
	clock            *clock.MockClock
	commands         commands.ItemCommands
}

func newItemCommandFixture(t *testing.T, now time.Time) *itemCommandFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &itemCommandFixture{
		itemRepo:         commandsmock.NewMockItemRepository(ctrl),
		commentRepo:      commandsmock.NewMockCommentRepository(ctrl),
		userReadStore:    queriesmock.NewMockUserReadStore(ctrl),
		itemReadStore:    queriesmock.NewMockItemReadStore(ctrl),
		requestReadStore: queriesmock.NewMockRequestReadStore(ctrl),
		bookingReadStore: queriesmock.NewMockBookingReadStore(ctrl),
		clock:            clock.NewMockClock(now),
	}
	f.commands = commands.NewItemCommands(
		f.itemRepo, f.commentRepo,
		f.userReadStore, f.itemReadStore, f.requestReadStore, f.bookingReadStore,
		f.clock,
	)
	return f
}

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestItemCommandsCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		b := builder.NewItemBuilder()
		f := newItemCommandFixture(t, testNow)
		want := b.BuildView()

		f.userReadStore.EXPECT().ExistsByID(ctx, b.OwnerID).Return(true, nil)
		f.itemRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		f.itemReadStore.EXPECT().FindByID(ctx, gomock.Any()).Return(want, nil)

		got, err := f.commands.Create(ctx, b.OwnerID, b.BuildCreateRequestDTO())
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("unknown owner", func(t *testing.T) {
		b := builder.NewItemBuilder()
		f := newItemCommandFixture(t, testNow)

		f.userReadStore.EXPECT().ExistsByID(ctx, b.OwnerID).Return(false, nil)

		_, err := f.commands.Create(ctx, b.OwnerID, b.BuildCreateRequestDTO())
		require.ErrorIs(t, err, errs.ErrUserNotFound)
	})

	t.Run("answering a request validates it", func(t *testing.T) {
		reqID := uuid.New()
		b := builder.NewItemBuilder().With(func(b *builder.ItemBuilder) { b.RequestID = &reqID })
		f := newItemCommandFixture(t, testNow)
		want := b.BuildView()

		f.userReadStore.EXPECT().ExistsByID(ctx, b.OwnerID).Return(true, nil)
		f.requestReadStore.EXPECT().FindByID(ctx, reqID).Return(&queries.RequestView{ID: reqID}, nil)
		f.itemRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		f.itemReadStore.EXPECT().FindByID(ctx, gomock.Any()).Return(want, nil)

		got, err := f.commands.Create(ctx, b.OwnerID, b.BuildCreateRequestDTO())
		require.NoError(t, err)
		assert.Equal(t, reqID, *got.RequestID)
	})
}

func TestItemCommandsUpdate(t *testing.T) {
	ctx := context.Background()
	strPtr := func(s string) *string { return &s }

	t.Run("owner patches the item", func(t *testing.T) {
		b := builder.NewItemBuilder()
		f := newItemCommandFixture(t, testNow)
		entity := b.BuildReconstructed()
		want := b.BuildView()

		f.itemRepo.EXPECT().FindByID(ctx, entity.ID()).Return(entity, nil)
		f.itemRepo.EXPECT().Update(ctx, entity).Return(nil)
		f.itemReadStore.EXPECT().FindByID(ctx, entity.ID()).Return(want, nil)

		_, err := f.commands.Update(ctx, b.OwnerID, entity.ID(), reqdto.UpdateItemRequest{Name: strPtr("Hammer")})
		require.NoError(t, err)
		assert.Equal(t, "Hammer", entity.Name())
	})

	t.Run("non-owner is told not found", func(t *testing.T) {
		b := builder.NewItemBuilder()
		f := newItemCommandFixture(t, testNow)
		entity := b.BuildReconstructed()

		f.itemRepo.EXPECT().FindByID(ctx, entity.ID()).Return(entity, nil)

		_, err := f.commands.Update(ctx, uuid.New(), entity.ID(), reqdto.UpdateItemRequest{Name: strPtr("Hammer")})
		require.ErrorIs(t, err, errs.ErrItemNotFound)
	})
}

func TestItemCommandsAddComment(t *testing.T) {
	ctx := context.Background()

	t.Run("eligible author comments", func(t *testing.T) {
		f := newItemCommandFixture(t, testNow)
		authorID, itemID := uuid.New(), uuid.New()
		itm := builder.NewItemBuilder().BuildReconstructed()

		f.bookingReadStore.EXPECT().HasFinishedApproved(ctx, authorID, itemID, testNow).Return(true, nil)
		f.userReadStore.EXPECT().FindByID(ctx, authorID).Return(&queries.UserView{ID: authorID, Name: "Alice"}, nil)
		f.itemRepo.EXPECT().FindByID(ctx, itemID).Return(itm, nil)
		f.commentRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil)

		got, err := f.commands.AddComment(ctx, authorID, itemID, reqdto.CreateCommentRequest{Text: "works great"})
		require.NoError(t, err)
		assert.Equal(t, "works great", got.Text)
		assert.Equal(t, "Alice", got.AuthorName)
		assert.Equal(t, testNow, got.Created)
	})

	t.Run("blank text is rejected before the eligibility check", func(t *testing.T) {
		f := newItemCommandFixture(t, testNow)

		_, err := f.commands.AddComment(ctx, uuid.New(), uuid.New(), reqdto.CreateCommentRequest{Text: "   "})
		require.ErrorIs(t, err, errs.ErrBlankComment)
	})

	t.Run("no finished approved booking", func(t *testing.T) {
		f := newItemCommandFixture(t, testNow)
		authorID, itemID := uuid.New(), uuid.New()

		f.bookingReadStore.EXPECT().HasFinishedApproved(ctx, authorID, itemID, testNow).Return(false, nil)

		_, err := f.commands.AddComment(ctx, authorID, itemID, reqdto.CreateCommentRequest{Text: "nice"})
		require.ErrorIs(t, err, errs.ErrCommentNotAllowed)
	})
}
