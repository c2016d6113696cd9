package store

import (
	"errors"
	"sync"
	"time"

	"github.com/Simphiwe396/swift-ride-delivery-sub000/internal/pkg/models"
)

var (
	// ErrDriverNotFound means the operation references an unknown driver
	ErrDriverNotFound = errors.New("driver not found")
	// ErrTripConflict means the driver already has an active trip bound
	ErrTripConflict = errors.New("driver already has an active trip")
	// ErrDriverNotAvailable means the driver is not in the available state
	ErrDriverNotAvailable = errors.New("driver is not available")
	// ErrNoTripBound means the driver has no active trip to release
	ErrNoTripBound = errors.New("driver has no active trip")
)

// DriverStore is the single source of truth for driver state, keyed by
// driver ID. Every mutation is a single read-modify-write under a
// per-driver lock: concurrent updates for different drivers proceed in
// parallel, updates for the same driver are serialized.
type DriverStore struct {
	mu      sync.RWMutex
	drivers map[string]*driverEntry
}

type driverEntry struct {
	mu    sync.Mutex
	state models.DriverState
}

// NewDriverStore creates an empty driver store
func NewDriverStore() *DriverStore {
	return &DriverStore{
		drivers: make(map[string]*driverEntry),
	}
}

// entryFor returns the entry for a driver, creating a fresh record with
// defaults (distance 0, status offline, date today) when absent.
func (s *DriverStore) entryFor(driverID string) *driverEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.drivers[driverID]
	if !ok {
		entry = &driverEntry{
			state: models.DriverState{
				ID:            driverID,
				Status:        models.DriverStatusOffline,
				EffectiveDate: time.Now().UTC().Format("2006-01-02"),
			},
		}
		s.drivers[driverID] = entry
	}
	return entry
}

// Get returns a copy of the driver's state, or false when unknown
func (s *DriverStore) Get(driverID string) (*models.DriverState, bool) {
	s.mu.RLock()
	entry, ok := s.drivers[driverID]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	return copyState(&entry.state), true
}

// Update atomically applies fn to the driver's state, creating the
// record first when absent. fn runs under the driver's lock and must
// not block.
func (s *DriverStore) Update(driverID string, fn func(*models.DriverState)) *models.DriverState {
	entry := s.entryFor(driverID)

	entry.mu.Lock()
	defer entry.mu.Unlock()
	fn(&entry.state)
	return copyState(&entry.state)
}

// Upsert creates the record if absent, otherwise merges the patch, and
// returns the resulting full state.
func (s *DriverStore) Upsert(driverID string, patch models.DriverPatch) *models.DriverState {
	return s.Update(driverID, func(state *models.DriverState) {
		applyPatch(state, patch)
	})
}

// SetStatus updates the driver's availability status
func (s *DriverStore) SetStatus(driverID string, status models.DriverStatus) (*models.DriverState, error) {
	entry, err := s.lookup(driverID)
	if err != nil {
		return nil, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if status == models.DriverStatusAvailable && entry.state.TripID != "" {
		return nil, ErrTripConflict
	}
	if status == models.DriverStatusBusy && entry.state.TripID == "" {
		return nil, ErrNoTripBound
	}

	entry.state.Status = status
	entry.state.UpdatedAt = time.Now()
	return copyState(&entry.state), nil
}

// BindTrip reserves an available driver for a trip. The availability
// check and the reservation are one atomic step, so two concurrent
// dispatch attempts can never both bind the same driver.
func (s *DriverStore) BindTrip(driverID, tripID string) (*models.DriverState, error) {
	entry, err := s.lookup(driverID)
	if err != nil {
		return nil, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if entry.state.TripID != "" {
		return nil, ErrTripConflict
	}
	if entry.state.Status != models.DriverStatusAvailable {
		return nil, ErrDriverNotAvailable
	}

	entry.state.TripID = tripID
	entry.state.Status = models.DriverStatusBusy
	entry.state.UpdatedAt = time.Now()
	return copyState(&entry.state), nil
}

// ReleaseTrip clears the driver's trip binding and makes it available
// again.
func (s *DriverStore) ReleaseTrip(driverID string) (*models.DriverState, error) {
	entry, err := s.lookup(driverID)
	if err != nil {
		return nil, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if entry.state.TripID == "" {
		return nil, ErrNoTripBound
	}

	entry.state.TripID = ""
	entry.state.Status = models.DriverStatusAvailable
	entry.state.UpdatedAt = time.Now()
	return copyState(&entry.state), nil
}

// List returns a snapshot of all driver states
func (s *DriverStore) List() []models.DriverState {
	s.mu.RLock()
	entries := make([]*driverEntry, 0, len(s.drivers))
	for _, entry := range s.drivers {
		entries = append(entries, entry)
	}
	s.mu.RUnlock()

	states := make([]models.DriverState, 0, len(entries))
	for _, entry := range entries {
		entry.mu.Lock()
		states = append(states, *copyState(&entry.state))
		entry.mu.Unlock()
	}
	return states
}

// Available returns a snapshot of drivers currently in the available
// state. The snapshot is advisory: callers must still reserve via
// BindTrip, which re-checks atomically.
func (s *DriverStore) Available() []models.DriverState {
	var available []models.DriverState
	for _, state := range s.List() {
		if state.Status == models.DriverStatusAvailable {
			available = append(available, state)
		}
	}
	return available
}

func (s *DriverStore) lookup(driverID string) (*driverEntry, error) {
	s.mu.RLock()
	entry, ok := s.drivers[driverID]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrDriverNotFound
	}
	return entry, nil
}

func copyState(state *models.DriverState) *models.DriverState {
	out := *state
	if state.Location != nil {
		loc := *state.Location
		out.Location = &loc
	}
	return &out
}

func applyPatch(state *models.DriverState, patch models.DriverPatch) {
	if patch.Name != nil {
		state.Name = *patch.Name
	}
	if patch.Location != nil {
		loc := *patch.Location
		state.Location = &loc
	}
	if patch.DailyDistance != nil {
		state.DailyDistance = *patch.DailyDistance
	}
	if patch.EffectiveDate != nil {
		state.EffectiveDate = *patch.EffectiveDate
	}
	if patch.Status != nil {
		state.Status = *patch.Status
	}
	if patch.UpdatedAt != nil {
		state.UpdatedAt = *patch.UpdatedAt
	}
}
