package api

import (
	"net/http"
	"sync"
	"time"

	models "MetricPull/internal/domain/models"
	xlogger "MetricPull/pkg/logger"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

const streamWriteTimeout = 5 * time.Second

// StreamHub pushes every published panel state to connected websocket
// clients. Slow clients are dropped rather than allowed to back up the
// publish path.
type StreamHub struct {
	logger   *xlogger.Logger
	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[*websocket.Conn]chan models.PanelState
	closed  bool
}

func NewStreamHub(logger *xlogger.Logger) *StreamHub {
	return &StreamHub{
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		clients: make(map[*websocket.Conn]chan models.PanelState),
	}
}

// Handle upgrades the connection and streams states until the client goes
// away or the hub closes.
func (h *StreamHub) Handle(c echo.Context) error {
	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}

	ch := make(chan models.PanelState, 16)
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		_ = conn.Close()
		return nil
	}
	h.clients[conn] = ch
	h.mu.Unlock()
	h.logger.Debug("stream client connected", xlogger.String("remote", conn.RemoteAddr().String()))

	// Reader goroutine exists only to notice the client closing.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				h.drop(conn)
				return
			}
		}
	}()

	for st := range ch {
		_ = conn.SetWriteDeadline(time.Now().Add(streamWriteTimeout))
		if err := conn.WriteJSON(st); err != nil {
			h.drop(conn)
			break
		}
	}
	_ = conn.Close()
	return nil
}

// Broadcast fans a state out to every client. Clients whose buffer is
// full get dropped.
func (h *StreamHub) Broadcast(st models.PanelState) {
	h.mu.Lock()
	var stale []*websocket.Conn
	for conn, ch := range h.clients {
		select {
		case ch <- st:
		default:
			stale = append(stale, conn)
		}
	}
	h.mu.Unlock()
	for _, conn := range stale {
		h.logger.Warn("stream client too slow, dropping",
			xlogger.String("remote", conn.RemoteAddr().String()))
		h.drop(conn)
	}
}

// Close disconnects every client.
func (h *StreamHub) Close() {
	h.mu.Lock()
	h.closed = true
	for conn, ch := range h.clients {
		close(ch)
		delete(h.clients, conn)
	}
	h.mu.Unlock()
}

func (h *StreamHub) drop(conn *websocket.Conn) {
	h.mu.Lock()
	ch, ok := h.clients[conn]
	if ok {
		close(ch)
		delete(h.clients, conn)
	}
	h.mu.Unlock()
	if ok {
		_ = conn.Close()
	}
}
