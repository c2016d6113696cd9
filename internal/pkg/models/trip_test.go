package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTripStatusTransitions(t *testing.T) {
	allowed := []struct {
		from, to TripStatus
	}{
		{TripStatusRequested, TripStatusAccepted},
		{TripStatusAccepted, TripStatusInProgress},
		{TripStatusInProgress, TripStatusCompleted},
		{TripStatusRequested, TripStatusCancelled},
		{TripStatusAccepted, TripStatusCancelled},
		{TripStatusInProgress, TripStatusCancelled},
	}
	for _, tc := range allowed {
		assert.True(t, tc.from.CanTransitionTo(tc.to), "%s -> %s should be allowed", tc.from, tc.to)
	}

	denied := []struct {
		from, to TripStatus
	}{
		{TripStatusRequested, TripStatusInProgress},
		{TripStatusRequested, TripStatusCompleted},
		{TripStatusAccepted, TripStatusCompleted},
		{TripStatusCompleted, TripStatusCancelled},
		{TripStatusCompleted, TripStatusAccepted},
		{TripStatusCancelled, TripStatusAccepted},
		{TripStatusCancelled, TripStatusCancelled},
		{TripStatusInProgress, TripStatusAccepted},
	}
	for _, tc := range denied {
		assert.False(t, tc.from.CanTransitionTo(tc.to), "%s -> %s should be denied", tc.from, tc.to)
	}
}

func TestTripStatusTerminal(t *testing.T) {
	assert.True(t, TripStatusCompleted.Terminal())
	assert.True(t, TripStatusCancelled.Terminal())
	assert.False(t, TripStatusRequested.Terminal())
	assert.False(t, TripStatusAccepted.Terminal())
	assert.False(t, TripStatusInProgress.Terminal())
}

func TestDriverStatusValid(t *testing.T) {
	for _, s := range []DriverStatus{DriverStatusOffline, DriverStatusAvailable, DriverStatusBusy, DriverStatusOnBreak} {
		assert.True(t, s.Valid())
	}
	assert.False(t, DriverStatus("flying").Valid())
	assert.False(t, DriverStatus("").Valid())
}
