package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/campus-admin-api/internal/middleware"
	"github.com/noah-isme/campus-admin-api/internal/service"
	"github.com/noah-isme/campus-admin-api/internal/utils"
)

// DashboardHandler wires the KPI endpoints including the websocket stream.
type DashboardHandler struct {
	service  service.DashboardService
	events   service.EventPublisher
	interval time.Duration
	logger   zerolog.Logger
}

// NewDashboardHandler constructs the handler. interval is the heartbeat push
// period for the stream; mutations trigger an immediate push regardless.
func NewDashboardHandler(service service.DashboardService, events service.EventPublisher, interval time.Duration, logger zerolog.Logger) *DashboardHandler {
	if interval <= 0 {
		interval = 30 * time.Second
	}

	return &DashboardHandler{
		service:  service,
		events:   events,
		interval: interval,
		logger:   logger.With().Str("component", "dashboard_handler").Logger(),
	}
}

// Register attaches dashboard routes to the router group.
func (h *DashboardHandler) Register(router fiber.Router) {
	router.Get("", h.overview)

	router.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			ctx := c.UserContext()
			if ctx == nil {
				ctx = context.Background()
			}
			ctx = middleware.ContextWithCorrelation(ctx, middleware.GetCorrelationID(c))
			c.Locals("request_ctx", ctx)
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	router.Get("/ws", websocket.New(h.stream))
}

func (h *DashboardHandler) overview(c *fiber.Ctx) error {
	overview, err := h.service.Overview(c.UserContext())
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to compute dashboard")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to compute dashboard")
	}

	return utils.SendSuccess(c, "dashboard computed", overview)
}

// stream pushes a fresh overview on connect, after every accepted mutation
// and on the heartbeat interval.
func (h *DashboardHandler) stream(conn *websocket.Conn) {
	defer conn.Close()

	ctx, ok := conn.Locals("request_ctx").(context.Context)
	if !ok || ctx == nil {
		ctx = context.Background()
	}

	var events <-chan service.DomainEvent
	cancel := func() {}
	if h.events != nil {
		events, cancel = h.events.Subscribe()
	}
	defer cancel()

	if !h.push(ctx, conn) {
		return
	}

	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	for {
		select {
		case _, open := <-events:
			if !open {
				return
			}
			if !h.push(ctx, conn) {
				return
			}
		case <-ticker.C:
			if !h.push(ctx, conn) {
				return
			}
		}
	}
}

func (h *DashboardHandler) push(ctx context.Context, conn *websocket.Conn) bool {
	overview, err := h.service.Overview(ctx)
	if err != nil {
		h.logger.Warn().Err(err).Msg("failed to compute dashboard for stream")
		return true
	}

	if err := conn.WriteJSON(overview); err != nil {
		return false
	}
	return true
}
