package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBookingNights(t *testing.T) {
	b := Booking{
		CheckInDate:  time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		CheckOutDate: time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC),
	}
	assert.Equal(t, 2, b.Nights())
}

func TestBookingStatusValid(t *testing.T) {
	assert.True(t, StatusPending.Valid())
	assert.True(t, StatusCompleted.Valid())
	assert.False(t, BookingStatus("archived").Valid())
}

func TestBookingStatusTransitions(t *testing.T) {
	assert.True(t, StatusPending.CanTransitionTo(StatusConfirmed))
	assert.True(t, StatusPending.CanTransitionTo(StatusCancelled))
	assert.True(t, StatusConfirmed.CanTransitionTo(StatusCompleted))
	assert.True(t, StatusConfirmed.CanTransitionTo(StatusCancelled))

	assert.False(t, StatusPending.CanTransitionTo(StatusCompleted))
	assert.False(t, StatusConfirmed.CanTransitionTo(StatusPending))
	assert.False(t, StatusCompleted.CanTransitionTo(StatusCancelled))
	assert.False(t, StatusCancelled.CanTransitionTo(StatusConfirmed))
}

func TestBookingStatusTerminal(t *testing.T) {
	assert.True(t, StatusCompleted.Terminal())
	assert.True(t, StatusCancelled.Terminal())
	assert.False(t, StatusPending.Terminal())
	assert.False(t, StatusConfirmed.Terminal())
}
