package authgate

import (
	"time"

	"github.com/indocarisinternational/admin-caris/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const KeepAliveInterval = 25 * time.Second

type StreamHandler struct {
	source    Source
	keepAlive time.Duration
	logger    *zap.Logger
}

func NewStreamHandler(source Source, logger ...*zap.Logger) *StreamHandler {
	l := zap.L().Named("authgate.stream")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("authgate.stream")
	}
	return &StreamHandler{source: source, keepAlive: KeepAliveInterval, logger: l}
}

// Stream pushes the gate state as server-sent "state" events. The stream ends
// once the session is gone or the browser disconnects.
func (h *StreamHandler) Stream(c *gin.Context) {
	ctx := c.Request.Context()
	g := New(h.source, h.logger)
	defer g.Close()

	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	state, _ := g.Check(ctx, middleware.TokenFromRequest(c))
	h.send(c, state)
	if state != StateAuthenticated {
		return
	}

	if err := g.Watch(ctx); err != nil {
		h.logger.Warn("session subscription failed", zap.Error(err))
		return
	}

	ticker := time.NewTicker(h.keepAlive)
	defer ticker.Stop()

	for {
		select {
		case state := <-g.Changes():
			h.send(c, state)
			if state != StateAuthenticated {
				return
			}
		case <-ticker.C:
			c.SSEvent("ping", time.Now().Unix())
			c.Writer.Flush()
		case <-ctx.Done():
			return
		}
	}
}

func (h *StreamHandler) send(c *gin.Context, state State) {
	c.SSEvent("state", string(state))
	c.Writer.Flush()
}
