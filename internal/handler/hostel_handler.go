package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/campus-admin-api/internal/dto"
	"github.com/noah-isme/campus-admin-api/internal/middleware"
	"github.com/noah-isme/campus-admin-api/internal/service"
	"github.com/noah-isme/campus-admin-api/internal/utils"
)

// HostelHandler wires the hostel allocation endpoint.
type HostelHandler struct {
	service service.HostelService
	logger  zerolog.Logger
}

// NewHostelHandler constructs the handler.
func NewHostelHandler(service service.HostelService, logger zerolog.Logger) *HostelHandler {
	return &HostelHandler{
		service: service,
		logger:  logger.With().Str("component", "hostel_handler").Logger(),
	}
}

// Register attaches hostel routes to the router group.
func (h *HostelHandler) Register(router fiber.Router) {
	router.Post("/allocations", h.allocate)
}

func (h *HostelHandler) allocate(c *fiber.Ctx) error {
	var payload dto.HostelAllocationRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	student, err := h.service.Allocate(c.UserContext(), middleware.EffectiveRole(c), payload)
	if err != nil {
		return sendActionError(c, h.logger, err, "failed to allocate hostel slot")
	}

	return utils.SendSuccess(c, "hostel slot allocated", student)
}
