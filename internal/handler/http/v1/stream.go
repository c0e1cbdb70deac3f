package v1

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	alertWriteTimeout = 10 * time.Second
	alertPingInterval = 30 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// @Summary Stream high-risk alerts
// @Description Upgrades to a WebSocket and pushes every High-risk surge alert as a JSON text message.
// @Tags Alerts
// @Security ApiKeyAuth
// @Security BearerAuth
// @Success 101 {string} string "Switching protocols; alerts follow as JSON text messages"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 503 {object} map[string]string "Alert feed unavailable"
// @Router /alerts/stream [get]
func (h *Handler) streamAlerts(c *gin.Context) {
	log := h.logger.WithField("method", "streamAlerts")

	if h.alerts == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "alert feed unavailable"})
		return
	}

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	events, closeFeed, err := h.alerts.Subscribe(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to subscribe to alert feed")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "alert feed unavailable"})
		return
	}
	defer func() {
		if err := closeFeed(); err != nil {
			log.WithError(err).Warn("Failed to close alert subscription")
		}
	}()

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.WithError(err).Warn("Failed to upgrade connection")
		return
	}
	defer conn.Close()
	log.Info("Alert stream client connected")

	// Клиент ничего не шлет; чтение нужно, чтобы заметить закрытие соединения
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ping := time.NewTicker(alertPingInterval)
	defer ping.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info("Alert stream client disconnected")
			return
		case payload, ok := <-events:
			if !ok {
				_ = conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, "alert feed closed"),
					time.Now().Add(alertWriteTimeout))
				return
			}
			_ = conn.SetWriteDeadline(time.Now().Add(alertWriteTimeout))
			if err := conn.WriteMessage(websocket.TextMessage, []byte(payload)); err != nil {
				log.WithError(err).Warn("Failed to write alert to stream")
				return
			}
		case <-ping.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(alertWriteTimeout)); err != nil {
				return
			}
		}
	}
}
