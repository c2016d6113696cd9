package websocket

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/golang-jwt/jwt/v4"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/Simphiwe396/swift-ride-delivery-sub000/internal/pkg/constants"
	"github.com/Simphiwe396/swift-ride-delivery-sub000/internal/pkg/logger"
	"github.com/Simphiwe396/swift-ride-delivery-sub000/internal/pkg/models"
)

// sendBufferSize is the per-client outbound queue. When an observer
// falls this far behind, further updates to it are dropped rather than
// blocking the write path.
const sendBufferSize = 64

// Conn is the subset of *websocket.Conn the manager writes to
type Conn interface {
	WriteJSON(v interface{}) error
	Close() error
}

// Client represents one connected observer
type Client struct {
	UserID string
	Role   string

	conn      Conn
	send      chan models.WSMessage
	closed    chan struct{}
	closeOnce sync.Once
}

// NewClient creates a client for a connection. The manager owns the
// client's outbound queue once Register is called.
func NewClient(userID, role string, conn Conn) *Client {
	return &Client{
		UserID: userID,
		Role:   role,
		conn:   conn,
		send:   make(chan models.WSMessage, sendBufferSize),
		closed: make(chan struct{}),
	}
}

func (c *Client) close() {
	c.closeOnce.Do(func() {
		close(c.closed)
	})
}

// Manager registers observer connections and fans state updates out to
// them. Broadcasts never block: a slow observer's queue overflows and
// the update is dropped for that observer only.
type Manager struct {
	sync.RWMutex
	clients  map[string]*Client            // keyed by user ID
	tripSubs map[string]map[string]*Client // trip ID -> subscribed clients
	cfg      models.JWTConfig
	upgrader websocket.Upgrader
}

// NewManager creates a new WebSocket manager
func NewManager(jwtConfig models.JWTConfig) *Manager {
	return &Manager{
		clients:  make(map[string]*Client),
		tripSubs: make(map[string]map[string]*Client),
		cfg:      jwtConfig,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// HandleConnection authenticates and upgrades a new WebSocket connection
func (m *Manager) HandleConnection(c echo.Context, handleClient func(*Client, *websocket.Conn) error) error {
	client, err := m.authenticateClient(c)
	if err != nil {
		return err
	}

	ws, err := m.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	defer ws.Close()

	client.conn = ws
	return handleClient(client, ws)
}

// authenticateClient resolves the connection identity from the JWT
func (m *Manager) authenticateClient(c echo.Context) (*Client, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Authorization header is required")
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid authorization format")
	}

	claims, err := m.validateToken(parts[1])
	if err != nil {
		logger.Warn("Token validation failed", logger.Err(err))
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
	}

	return NewClient(claims.UserID, claims.Role, nil), nil
}

// validateToken validates the JWT token and returns the claims
func (m *Manager) validateToken(tokenString string) (*models.WebSocketClaims, error) {
	claims := &models.WebSocketClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(m.cfg.Secret), nil
	})
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}

// Register adds a client and starts its writer
func (m *Manager) Register(client *Client) {
	m.Lock()
	defer m.Unlock()
	m.clients[client.UserID] = client

	go client.writePump()
}

// Unregister removes a client and all of its trip subscriptions.
// Calling it for an unknown or already removed client is a no-op, and
// events arriving for the client afterwards are ignored.
func (m *Manager) Unregister(userID string) {
	m.Lock()
	defer m.Unlock()

	client, exists := m.clients[userID]
	if !exists {
		return
	}

	delete(m.clients, userID)
	for tripID, subs := range m.tripSubs {
		delete(subs, userID)
		if len(subs) == 0 {
			delete(m.tripSubs, tripID)
		}
	}

	client.close()
}

// GetClient returns a client by user ID
func (m *Manager) GetClient(userID string) (*Client, bool) {
	m.RLock()
	defer m.RUnlock()
	client, exists := m.clients[userID]
	return client, exists
}

// SubscribeTrip subscribes a connected client to updates for one trip
func (m *Manager) SubscribeTrip(userID, tripID string) error {
	m.Lock()
	defer m.Unlock()

	client, exists := m.clients[userID]
	if !exists {
		return fmt.Errorf("client %s is not connected", userID)
	}

	subs, ok := m.tripSubs[tripID]
	if !ok {
		subs = make(map[string]*Client)
		m.tripSubs[tripID] = subs
	}
	subs[userID] = client
	return nil
}

// BroadcastDriverUpdate pushes an applied driver state change to every
// observer on the admin driver-tracking channel.
func (m *Manager) BroadcastDriverUpdate(update models.DriverUpdate) {
	msg, err := newWSMessage(constants.EventAdminDriverUpdate, update)
	if err != nil {
		logger.Error("Failed to encode driver update", logger.Err(err))
		return
	}

	m.RLock()
	defer m.RUnlock()
	for _, client := range m.clients {
		if client.Role != "admin" {
			continue
		}
		m.push(client, msg)
	}
}

// BroadcastToTripSubscribers pushes an event to observers subscribed to
// a specific trip.
func (m *Manager) BroadcastToTripSubscribers(tripID, event string, data interface{}) {
	msg, err := newWSMessage(event, data)
	if err != nil {
		logger.Error("Failed to encode trip event", logger.Err(err))
		return
	}

	m.RLock()
	defer m.RUnlock()
	for _, client := range m.tripSubs[tripID] {
		m.push(client, msg)
	}
}

// NotifyClient sends an event to one connected user, best-effort
func (m *Manager) NotifyClient(userID string, event string, data interface{}) {
	msg, err := newWSMessage(event, data)
	if err != nil {
		logger.Error("Failed to encode notification", logger.Err(err))
		return
	}

	m.RLock()
	client, exists := m.clients[userID]
	m.RUnlock()
	if !exists {
		return
	}

	m.push(client, msg)
}

// push enqueues without blocking; a full queue drops the message for
// that observer.
func (m *Manager) push(client *Client, msg models.WSMessage) {
	select {
	case <-client.closed:
	default:
		select {
		case client.send <- msg:
		default:
			logger.Warn("Dropping update for slow observer",
				logger.String("user_id", client.UserID),
				logger.String("event", msg.Event))
		}
	}
}

// SendMessage writes a message directly to a connection (request/reply
// on the reader goroutine, not the fanout path).
func (m *Manager) SendMessage(conn Conn, event string, data interface{}) error {
	if conn == nil {
		return nil
	}

	msg, err := newWSMessage(event, data)
	if err != nil {
		return err
	}
	return conn.WriteJSON(msg)
}

// SendErrorMessage sends an error event to a WebSocket client
func (m *Manager) SendErrorMessage(conn Conn, code string, message string) error {
	return m.SendMessage(conn, constants.EventError, models.WSErrorMessage{
		Code:    code,
		Message: message,
	})
}

func newWSMessage(event string, data interface{}) (models.WSMessage, error) {
	rawData, err := json.Marshal(data)
	if err != nil {
		return models.WSMessage{}, fmt.Errorf("error marshaling message data: %w", err)
	}
	return models.WSMessage{Event: event, Data: rawData}, nil
}

// writePump drains the client's queue onto the connection until the
// client is unregistered or the connection fails.
func (c *Client) writePump() {
	for {
		select {
		case <-c.closed:
			return
		case msg := <-c.send:
			if c.conn == nil {
				continue
			}
			if err := c.conn.WriteJSON(msg); err != nil {
				logger.Debug("Observer write failed",
					logger.String("user_id", c.UserID),
					logger.Err(err))
				c.close()
				return
			}
		}
	}
}
