package store

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Simphiwe396/swift-ride-delivery-sub000/internal/pkg/models"
)

func TestUpsert_CreatesWithDefaults(t *testing.T) {
	s := NewDriverStore()

	state := s.Upsert("driver-1", models.DriverPatch{})

	assert.Equal(t, "driver-1", state.ID)
	assert.Equal(t, models.DriverStatusOffline, state.Status)
	assert.Equal(t, 0.0, state.DailyDistance)
	assert.NotEmpty(t, state.EffectiveDate)
	assert.Nil(t, state.Location)
}

func TestUpsert_MergesPatch(t *testing.T) {
	s := NewDriverStore()
	s.Upsert("driver-1", models.DriverPatch{})

	name := "Alice"
	distance := 42.5
	status := models.DriverStatusAvailable
	state := s.Upsert("driver-1", models.DriverPatch{
		Name:          &name,
		DailyDistance: &distance,
		Status:        &status,
		Location:      &models.Location{Latitude: -26.0, Longitude: 28.0},
	})

	assert.Equal(t, "Alice", state.Name)
	assert.Equal(t, 42.5, state.DailyDistance)
	assert.Equal(t, models.DriverStatusAvailable, state.Status)
	require.NotNil(t, state.Location)
	assert.Equal(t, -26.0, state.Location.Latitude)

	// Unset fields stay untouched on the next patch
	state = s.Upsert("driver-1", models.DriverPatch{})
	assert.Equal(t, "Alice", state.Name)
	assert.Equal(t, 42.5, state.DailyDistance)
}

func TestGet_ReturnsCopy(t *testing.T) {
	s := NewDriverStore()
	s.Upsert("driver-1", models.DriverPatch{
		Location: &models.Location{Latitude: -26.0, Longitude: 28.0},
	})

	state, ok := s.Get("driver-1")
	require.True(t, ok)
	state.Location.Latitude = 99.0
	state.DailyDistance = 999

	again, ok := s.Get("driver-1")
	require.True(t, ok)
	assert.Equal(t, -26.0, again.Location.Latitude)
	assert.Equal(t, 0.0, again.DailyDistance)
}

func TestGet_Unknown(t *testing.T) {
	s := NewDriverStore()
	_, ok := s.Get("ghost")
	assert.False(t, ok)
}

func TestSetStatus_UnknownDriver(t *testing.T) {
	s := NewDriverStore()
	_, err := s.SetStatus("ghost", models.DriverStatusAvailable)
	assert.ErrorIs(t, err, ErrDriverNotFound)
}

func TestSetStatus_AvailableWithBoundTrip(t *testing.T) {
	s := NewDriverStore()
	status := models.DriverStatusAvailable
	s.Upsert("driver-1", models.DriverPatch{Status: &status})
	_, err := s.BindTrip("driver-1", "trip-1")
	require.NoError(t, err)

	_, err = s.SetStatus("driver-1", models.DriverStatusAvailable)
	assert.ErrorIs(t, err, ErrTripConflict)
}

func TestSetStatus_BusyWithoutBoundTrip(t *testing.T) {
	s := NewDriverStore()
	status := models.DriverStatusAvailable
	s.Upsert("driver-1", models.DriverPatch{Status: &status})

	_, err := s.SetStatus("driver-1", models.DriverStatusBusy)
	assert.ErrorIs(t, err, ErrNoTripBound)

	state, ok := s.Get("driver-1")
	require.True(t, ok)
	assert.Equal(t, models.DriverStatusAvailable, state.Status)
	assert.Empty(t, state.TripID)
}

func TestSetStatus_BusyWithBoundTrip(t *testing.T) {
	s := NewDriverStore()
	status := models.DriverStatusAvailable
	s.Upsert("driver-1", models.DriverPatch{Status: &status})
	_, err := s.BindTrip("driver-1", "trip-1")
	require.NoError(t, err)

	state, err := s.SetStatus("driver-1", models.DriverStatusBusy)
	require.NoError(t, err)
	assert.Equal(t, models.DriverStatusBusy, state.Status)
}

func TestBindTrip(t *testing.T) {
	s := NewDriverStore()
	status := models.DriverStatusAvailable
	s.Upsert("driver-1", models.DriverPatch{Status: &status})

	state, err := s.BindTrip("driver-1", "trip-1")
	require.NoError(t, err)
	assert.Equal(t, "trip-1", state.TripID)
	assert.Equal(t, models.DriverStatusBusy, state.Status)

	// Already bound
	_, err = s.BindTrip("driver-1", "trip-2")
	assert.ErrorIs(t, err, ErrTripConflict)
}

func TestBindTrip_NotAvailable(t *testing.T) {
	s := NewDriverStore()
	s.Upsert("driver-1", models.DriverPatch{}) // offline by default

	_, err := s.BindTrip("driver-1", "trip-1")
	assert.ErrorIs(t, err, ErrDriverNotAvailable)
}

func TestBindTrip_UnknownDriver(t *testing.T) {
	s := NewDriverStore()
	_, err := s.BindTrip("ghost", "trip-1")
	assert.ErrorIs(t, err, ErrDriverNotFound)
}

func TestReleaseTrip(t *testing.T) {
	s := NewDriverStore()
	status := models.DriverStatusAvailable
	s.Upsert("driver-1", models.DriverPatch{Status: &status})
	_, err := s.BindTrip("driver-1", "trip-1")
	require.NoError(t, err)

	state, err := s.ReleaseTrip("driver-1")
	require.NoError(t, err)
	assert.Empty(t, state.TripID)
	assert.Equal(t, models.DriverStatusAvailable, state.Status)

	// Releasing again is NotFound on the binding
	_, err = s.ReleaseTrip("driver-1")
	assert.ErrorIs(t, err, ErrNoTripBound)
}

func TestAvailable(t *testing.T) {
	s := NewDriverStore()
	available := models.DriverStatusAvailable
	busy := models.DriverStatusBusy
	s.Upsert("driver-1", models.DriverPatch{Status: &available})
	s.Upsert("driver-2", models.DriverPatch{Status: &busy})
	s.Upsert("driver-3", models.DriverPatch{})

	states := s.Available()
	require.Len(t, states, 1)
	assert.Equal(t, "driver-1", states[0].ID)
}

func TestBindTrip_ConcurrentSingleWinner(t *testing.T) {
	s := NewDriverStore()
	status := models.DriverStatusAvailable
	s.Upsert("driver-1", models.DriverPatch{Status: &status})

	const attempts = 32
	var wg sync.WaitGroup
	var mu sync.Mutex
	var winners int

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := s.BindTrip("driver-1", "trip-1"); err == nil {
				mu.Lock()
				winners++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, winners)
}

func TestUpdate_SerializedPerDriver(t *testing.T) {
	s := NewDriverStore()

	const workers = 8
	const perWorker = 200
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				s.Update("driver-1", func(state *models.DriverState) {
					state.DailyDistance += 1
				})
			}
		}()
	}
	wg.Wait()

	state, ok := s.Get("driver-1")
	require.True(t, ok)
	assert.Equal(t, float64(workers*perWorker), state.DailyDistance)
}
