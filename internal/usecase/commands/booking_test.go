//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/domain/item"
	"shareit/internal/infra"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/commands"
	"shareit/tests/common/builder"
	commandsmock "shareit/tests/mock/commands"
	queriesmock "shareit/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type bookingCommandFixture struct {
	bookingRepo      *commandsmock.MockBookingRepository
	itemRepo         *commandsmock.MockItemRepository
	userReadStore    *queriesmock.MockUserReadStore
	bookingReadStore *queriesmock.MockBookingReadStore
	clock            *clock.MockClock
	commands         commands.BookingCommands
}

func newBookingCommandFixture(t *testing.T, now time.Time) *bookingCommandFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &bookingCommandFixture{
		bookingRepo:      commandsmock.NewMockBookingRepository(ctrl),
		itemRepo:         commandsmock.NewMockItemRepository(ctrl),
		userReadStore:    queriesmock.NewMockUserReadStore(ctrl),
		bookingReadStore: queriesmock.NewMockBookingReadStore(ctrl),
		clock:            clock.NewMockClock(now),
	}
	f.commands = commands.NewBookingCommands(
		f.bookingRepo, f.itemRepo, f.userReadStore, f.bookingReadStore, f.clock,
	)
	return f
}

func TestBookingCommandsCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("success leaves booking waiting", func(t *testing.T) {
		b := builder.NewBookingBuilder()
		f := newBookingCommandFixture(t, b.Now)
		req := b.BuildCreateRequestDTO()
		itm := item.ReconstructItem(b.ItemID, b.OwnerID, b.ItemName, "18V drill", true, nil)
		want := b.BuildView()

		f.userReadStore.EXPECT().ExistsByID(ctx, b.BookerID).Return(true, nil)
		f.itemRepo.EXPECT().FindByID(ctx, b.ItemID).Return(itm, nil)
		f.bookingRepo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, created *booking.Booking) error {
				assert.Equal(t, booking.StatusWaiting, created.Status())
				assert.Equal(t, b.BookerID, created.BookerID())
				assert.Equal(t, b.OwnerID, created.ItemOwnerID())
				return nil
			})
		f.bookingReadStore.EXPECT().FindByID(ctx, gomock.Any()).Return(want, nil)

		got, err := f.commands.Create(ctx, b.BookerID, req)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("unknown booker", func(t *testing.T) {
		b := builder.NewBookingBuilder()
		f := newBookingCommandFixture(t, b.Now)

		f.userReadStore.EXPECT().ExistsByID(ctx, b.BookerID).Return(false, nil)

		_, err := f.commands.Create(ctx, b.BookerID, b.BuildCreateRequestDTO())
		require.ErrorIs(t, err, errs.ErrUserNotFound)
	})

	t.Run("unknown item", func(t *testing.T) {
		b := builder.NewBookingBuilder()
		f := newBookingCommandFixture(t, b.Now)

		f.userReadStore.EXPECT().ExistsByID(ctx, b.BookerID).Return(true, nil)
		f.itemRepo.EXPECT().FindByID(ctx, b.ItemID).
			Return(nil, infra.WrapRepoErr("item not found", assert.AnError, infra.KindNotFound))

		_, err := f.commands.Create(ctx, b.BookerID, b.BuildCreateRequestDTO())
		require.ErrorIs(t, err, errs.ErrItemNotFound)
	})

	t.Run("booking own item reads as not found", func(t *testing.T) {
		b := builder.NewBookingBuilder()
		f := newBookingCommandFixture(t, b.Now)
		itm := item.ReconstructItem(b.ItemID, b.OwnerID, b.ItemName, "18V drill", true, nil)

		f.userReadStore.EXPECT().ExistsByID(ctx, b.OwnerID).Return(true, nil)
		f.itemRepo.EXPECT().FindByID(ctx, b.ItemID).Return(itm, nil)

		_, err := f.commands.Create(ctx, b.OwnerID, b.BuildCreateRequestDTO())
		require.ErrorIs(t, err, errs.ErrItemNotFound)
	})

	t.Run("unavailable item", func(t *testing.T) {
		b := builder.NewBookingBuilder()
		f := newBookingCommandFixture(t, b.Now)
		itm := item.ReconstructItem(b.ItemID, b.OwnerID, b.ItemName, "18V drill", false, nil)

		f.userReadStore.EXPECT().ExistsByID(ctx, b.BookerID).Return(true, nil)
		f.itemRepo.EXPECT().FindByID(ctx, b.ItemID).Return(itm, nil)

		_, err := f.commands.Create(ctx, b.BookerID, b.BuildCreateRequestDTO())
		require.ErrorIs(t, err, errs.ErrItemUnavailable)
	})

	t.Run("inverted period", func(t *testing.T) {
		b := builder.NewBookingBuilder()
		b.Start, b.End = b.End, b.Start
		f := newBookingCommandFixture(t, b.Now)
		itm := item.ReconstructItem(b.ItemID, b.OwnerID, b.ItemName, "18V drill", true, nil)

		f.userReadStore.EXPECT().ExistsByID(ctx, b.BookerID).Return(true, nil)
		f.itemRepo.EXPECT().FindByID(ctx, b.ItemID).Return(itm, nil)

		_, err := f.commands.Create(ctx, b.BookerID, b.BuildCreateRequestDTO())
		require.ErrorIs(t, err, errs.ErrInvalidBookingPeriod)
	})
}

func TestBookingCommandsApprove(t *testing.T) {
	ctx := context.Background()

	t.Run("owner approves waiting booking", func(t *testing.T) {
		b := builder.NewBookingBuilder()
		f := newBookingCommandFixture(t, b.Now)
		entity := b.BuildReconstructed()
		want := b.BuildView()

		f.bookingRepo.EXPECT().FindByID(ctx, entity.ID()).Return(entity, nil)
		f.bookingRepo.EXPECT().
			UpdateStatusIfWaiting(ctx, entity.ID(), booking.StatusApproved).
			Return(true, nil)
		f.bookingReadStore.EXPECT().FindByID(ctx, entity.ID()).Return(want, nil)

		got, err := f.commands.Approve(ctx, b.OwnerID, entity.ID(), true)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("owner rejects waiting booking", func(t *testing.T) {
		b := builder.NewBookingBuilder()
		f := newBookingCommandFixture(t, b.Now)
		entity := b.BuildReconstructed()
		want := b.BuildView()

		f.bookingRepo.EXPECT().FindByID(ctx, entity.ID()).Return(entity, nil)
		f.bookingRepo.EXPECT().
			UpdateStatusIfWaiting(ctx, entity.ID(), booking.StatusRejected).
			Return(true, nil)
		f.bookingReadStore.EXPECT().FindByID(ctx, entity.ID()).Return(want, nil)

		_, err := f.commands.Approve(ctx, b.OwnerID, entity.ID(), false)
		require.NoError(t, err)
	})

	t.Run("non-owner is told not found", func(t *testing.T) {
		b := builder.NewBookingBuilder()
		f := newBookingCommandFixture(t, b.Now)
		entity := b.BuildReconstructed()

		f.bookingRepo.EXPECT().FindByID(ctx, entity.ID()).Return(entity, nil)

		_, err := f.commands.Approve(ctx, uuid.New(), entity.ID(), true)
		require.ErrorIs(t, err, errs.ErrBookingNotFound)
	})

	t.Run("booker cannot decide either", func(t *testing.T) {
		b := builder.NewBookingBuilder()
		f := newBookingCommandFixture(t, b.Now)
		entity := b.BuildReconstructed()

		f.bookingRepo.EXPECT().FindByID(ctx, entity.ID()).Return(entity, nil)

		_, err := f.commands.Approve(ctx, b.BookerID, entity.ID(), true)
		require.ErrorIs(t, err, errs.ErrBookingNotFound)
	})

	t.Run("already decided booking", func(t *testing.T) {
		b := builder.NewBookingBuilder()
		b.Status = booking.StatusApproved
		f := newBookingCommandFixture(t, b.Now)
		entity := b.BuildReconstructed()

		f.bookingRepo.EXPECT().FindByID(ctx, entity.ID()).Return(entity, nil)

		_, err := f.commands.Approve(ctx, b.OwnerID, entity.ID(), false)
		require.ErrorIs(t, err, errs.ErrBookingAlreadyProcessed)
	})

	t.Run("lost decision race", func(t *testing.T) {
		b := builder.NewBookingBuilder()
		f := newBookingCommandFixture(t, b.Now)
		entity := b.BuildReconstructed()

		f.bookingRepo.EXPECT().FindByID(ctx, entity.ID()).Return(entity, nil)
		f.bookingRepo.EXPECT().
			UpdateStatusIfWaiting(ctx, entity.ID(), booking.StatusApproved).
			Return(false, nil)

		_, err := f.commands.Approve(ctx, b.OwnerID, entity.ID(), true)
		require.ErrorIs(t, err, errs.ErrBookingAlreadyProcessed)
	})

	t.Run("missing booking", func(t *testing.T) {
		b := builder.NewBookingBuilder()
		f := newBookingCommandFixture(t, b.Now)
		id := uuid.New()

		f.bookingRepo.EXPECT().FindByID(ctx, id).
			Return(nil, infra.WrapRepoErr("booking not found", assert.AnError, infra.KindNotFound))

		_, err := f.commands.Approve(ctx, b.OwnerID, id, true)
		require.ErrorIs(t, err, errs.ErrBookingNotFound)
	})
}
