// fleetdesk/api/websocket.go
package api

import (
	"net/http"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// The zero CheckOrigin only accepts same-origin pages.
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// HandleWebSocket holds the page's liveness socket; when it drops the app shuts down.
func (h *Handlers) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()
	h.logger.Info("front end connected, closing the page will exit")

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			h.logger.Info("front end disconnected", zap.Error(err))
			break
		}
	}
	h.TriggerShutdown()
}

// TriggerShutdown closes Done. Calling it more than once is harmless.
func (h *Handlers) TriggerShutdown() {
	h.once.Do(func() {
		h.logger.Info("shutdown requested")
		close(h.shutdown)
	})
}

// Done is closed once shutdown has been requested.
func (h *Handlers) Done() <-chan struct{} {
	return h.shutdown
}
