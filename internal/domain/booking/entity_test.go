//go:build unit

package booking_test

import (
	"testing"
	"time"

	"shareit/internal/domain/booking"
	"shareit/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.BookingBuilder)
	errIs  error
}

func TestNewBooking(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, booking.StatusWaiting, actual.Status())
		assert.True(t, actual.Period().Start().Before(actual.Period().End()))
	})

	t.Run("item validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "unavailable item",
				mutate: func(b *builder.BookingBuilder) { b.Available = false },
				errIs:  booking.ErrItemUnavailable,
			},
			{
				name:   "booker owns the item",
				mutate: func(b *builder.BookingBuilder) { b.BookerID = b.OwnerID },
				errIs:  booking.ErrOwnItem,
			},
		})
	})

	t.Run("period validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name: "start equals end",
				mutate: func(b *builder.BookingBuilder) {
					b.End = b.Start
				},
				errIs: booking.ErrInvalidPeriod,
			},
			{
				name: "start after end",
				mutate: func(b *builder.BookingBuilder) {
					b.Start, b.End = b.End, b.Start
				},
				errIs: booking.ErrInvalidPeriod,
			},
			{
				name: "fully in the past",
				mutate: func(b *builder.BookingBuilder) {
					b.Start = b.Now.Add(-48 * time.Hour)
					b.End = b.Now.Add(-24 * time.Hour)
				},
				errIs: booking.ErrEndNotInFuture,
			},
			{
				name: "start in the past",
				mutate: func(b *builder.BookingBuilder) {
					b.Start = b.Now.Add(-time.Hour)
				},
				errIs: booking.ErrStartInPast,
			},
			{
				name: "start exactly at now",
				mutate: func(b *builder.BookingBuilder) {
					b.Start = b.Now
				},
			},
		})
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewBookingBuilder()
			if tc.mutate != nil {
				tc.mutate(b)
			}
			actual, err := b.BuildDomain()
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, actual)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, actual)
		})
	}
}

func TestBookingDecide(t *testing.T) {
	t.Run("approve waiting booking", func(t *testing.T) {
		b := builder.NewBookingBuilder().BuildReconstructed()
		require.NoError(t, b.Decide(true))
		assert.Equal(t, booking.StatusApproved, b.Status())
	})

	t.Run("reject waiting booking", func(t *testing.T) {
		b := builder.NewBookingBuilder().BuildReconstructed()
		require.NoError(t, b.Decide(false))
		assert.Equal(t, booking.StatusRejected, b.Status())
	})

	t.Run("decision is one shot", func(t *testing.T) {
		b := builder.NewBookingBuilder().BuildReconstructed()
		require.NoError(t, b.Decide(true))

		err := b.Decide(false)
		require.ErrorIs(t, err, booking.ErrAlreadyProcessed)
		assert.Equal(t, booking.StatusApproved, b.Status())
	})

	t.Run("rejected booking cannot be approved later", func(t *testing.T) {
		bb := builder.NewBookingBuilder()
		bb.Status = booking.StatusRejected
		b := bb.BuildReconstructed()

		err := b.Decide(true)
		require.ErrorIs(t, err, booking.ErrAlreadyProcessed)
		assert.Equal(t, booking.StatusRejected, b.Status())
	})
}

func TestStatus(t *testing.T) {
	cases := []struct {
		status   booking.Status
		valid    bool
		terminal bool
	}{
		{booking.StatusWaiting, true, false},
		{booking.StatusApproved, true, true},
		{booking.StatusRejected, true, true},
		{booking.Status("CANCELLED"), false, false},
		{booking.Status(""), false, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.valid, tc.status.IsValid(), "IsValid(%q)", tc.status)
		assert.Equal(t, tc.terminal, tc.status.IsTerminal(), "IsTerminal(%q)", tc.status)
	}
}

func TestBookingVisibility(t *testing.T) {
	b := builder.NewBookingBuilder()
	bk := b.BuildReconstructed()

	assert.True(t, bk.CanBeViewedBy(b.BookerID))
	assert.True(t, bk.CanBeViewedBy(b.OwnerID))
	assert.False(t, bk.CanBeViewedBy(uuid.New()))
}

func TestBookingTimeState(t *testing.T) {
	b := builder.NewBookingBuilder()
	bk := b.BuildReconstructed()

	assert.Equal(t, booking.StateFuture, bk.TimeState(b.Start.Add(-time.Minute)))
	assert.Equal(t, booking.StateCurrent, bk.TimeState(b.Start))
	assert.Equal(t, booking.StateCurrent, bk.TimeState(b.Start.Add(time.Hour)))
	assert.Equal(t, booking.StateCurrent, bk.TimeState(b.End))
	assert.Equal(t, booking.StatePast, bk.TimeState(b.End.Add(time.Minute)))
}
