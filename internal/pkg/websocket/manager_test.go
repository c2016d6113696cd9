package websocket

import (
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Simphiwe396/swift-ride-delivery-sub000/internal/pkg/constants"
	"github.com/Simphiwe396/swift-ride-delivery-sub000/internal/pkg/models"
)

type fakeConn struct {
	mu       sync.Mutex
	messages []models.WSMessage
	wrote    chan struct{}
	block    chan struct{} // when non-nil, WriteJSON blocks until closed
}

func newFakeConn() *fakeConn {
	return &fakeConn{wrote: make(chan struct{}, 128)}
}

func (f *fakeConn) WriteJSON(v interface{}) error {
	if f.block != nil {
		<-f.block
	}
	msg, _ := v.(models.WSMessage)
	f.mu.Lock()
	f.messages = append(f.messages, msg)
	f.mu.Unlock()
	select {
	case f.wrote <- struct{}{}:
	default:
	}
	return nil
}

func (f *fakeConn) Close() error { return nil }

func (f *fakeConn) received() []models.WSMessage {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.WSMessage, len(f.messages))
	copy(out, f.messages)
	return out
}

func waitForWrite(t *testing.T, conn *fakeConn) {
	t.Helper()
	select {
	case <-conn.wrote:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for observer write")
	}
}

func TestBroadcastDriverUpdate_AdminOnly(t *testing.T) {
	m := NewManager(models.JWTConfig{Secret: "test"})

	adminConn := newFakeConn()
	driverConn := newFakeConn()
	m.Register(NewClient("admin-1", "admin", adminConn))
	m.Register(NewClient("driver-1", "driver", driverConn))

	m.BroadcastDriverUpdate(models.DriverUpdate{
		DriverID: "driver-1",
		Latitude: -26.0, Longitude: 28.0,
		DailyDistance: 120,
	})

	waitForWrite(t, adminConn)

	msgs := adminConn.received()
	require.Len(t, msgs, 1)
	assert.Equal(t, constants.EventAdminDriverUpdate, msgs[0].Event)

	var update models.DriverUpdate
	require.NoError(t, json.Unmarshal(msgs[0].Data, &update))
	assert.Equal(t, "driver-1", update.DriverID)
	assert.Equal(t, 120.0, update.DailyDistance)

	assert.Empty(t, driverConn.received())
}

func TestBroadcastToTripSubscribers(t *testing.T) {
	m := NewManager(models.JWTConfig{Secret: "test"})

	subConn := newFakeConn()
	otherConn := newFakeConn()
	m.Register(NewClient("customer-1", "customer", subConn))
	m.Register(NewClient("customer-2", "customer", otherConn))

	require.NoError(t, m.SubscribeTrip("customer-1", "trip-1"))

	m.BroadcastToTripSubscribers("trip-1", constants.EventTripUpdated, models.TripEvent{
		TripID: "trip-1",
		Status: models.TripStatusInProgress,
	})

	waitForWrite(t, subConn)

	msgs := subConn.received()
	require.Len(t, msgs, 1)
	assert.Equal(t, constants.EventTripUpdated, msgs[0].Event)
	assert.Empty(t, otherConn.received())
}

func TestSubscribeTrip_NotConnected(t *testing.T) {
	m := NewManager(models.JWTConfig{Secret: "test"})
	assert.Error(t, m.SubscribeTrip("ghost", "trip-1"))
}

func TestUnregister_Idempotent(t *testing.T) {
	m := NewManager(models.JWTConfig{Secret: "test"})

	conn := newFakeConn()
	m.Register(NewClient("admin-1", "admin", conn))
	require.NoError(t, m.SubscribeTrip("admin-1", "trip-1"))

	m.Unregister("admin-1")
	m.Unregister("admin-1") // second call is a no-op

	// Events after disconnect are silently ignored
	m.NotifyClient("admin-1", constants.EventTripUpdated, models.TripEvent{TripID: "trip-1"})
	m.BroadcastToTripSubscribers("trip-1", constants.EventTripUpdated, models.TripEvent{TripID: "trip-1"})

	_, exists := m.GetClient("admin-1")
	assert.False(t, exists)
}

func TestSlowObserverDoesNotBlockBroadcast(t *testing.T) {
	m := NewManager(models.JWTConfig{Secret: "test"})

	blocked := make(chan struct{})
	slowConn := newFakeConn()
	slowConn.block = blocked
	fastConn := newFakeConn()

	m.Register(NewClient("admin-slow", "admin", slowConn))
	m.Register(NewClient("admin-fast", "admin", fastConn))

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < sendBufferSize*4; i++ {
			m.BroadcastDriverUpdate(models.DriverUpdate{DriverID: "driver-1"})
		}
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("broadcast blocked on a slow observer")
	}

	close(blocked)
	waitForWrite(t, fastConn)
	assert.NotEmpty(t, fastConn.received())
}

func TestValidateToken(t *testing.T) {
	m := NewManager(models.JWTConfig{Secret: "test-secret"})

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &models.WebSocketClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		UserID: "user-1",
		Role:   "admin",
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	claims, err := m.validateToken(signed)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "admin", claims.Role)

	_, err = m.validateToken("not-a-token")
	assert.Error(t, err)
}
