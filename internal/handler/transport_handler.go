package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/campus-admin-api/internal/dto"
	"github.com/noah-isme/campus-admin-api/internal/middleware"
	"github.com/noah-isme/campus-admin-api/internal/service"
	"github.com/noah-isme/campus-admin-api/internal/utils"
)

// TransportHandler wires the pass register endpoints.
type TransportHandler struct {
	service service.TransportService
	logger  zerolog.Logger
}

// NewTransportHandler constructs the handler.
func NewTransportHandler(service service.TransportService, logger zerolog.Logger) *TransportHandler {
	return &TransportHandler{
		service: service,
		logger:  logger.With().Str("component", "transport_handler").Logger(),
	}
}

// Register attaches transport routes to the router group.
func (h *TransportHandler) Register(router fiber.Router) {
	router.Get("/passes", h.list)
	router.Post("/passes", h.issue)
}

func (h *TransportHandler) list(c *fiber.Ctx) error {
	passes, err := h.service.List(c.UserContext())
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to list passes")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to list passes")
	}

	return utils.SendSuccess(c, "passes retrieved", passes)
}

func (h *TransportHandler) issue(c *fiber.Ctx) error {
	var payload dto.PassIssueRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	pass, err := h.service.Issue(c.UserContext(), middleware.EffectiveRole(c), payload)
	if err != nil {
		return sendActionError(c, h.logger, err, "failed to issue pass")
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "pass issued", pass)
}
