package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/campus-admin-api/internal/dto"
	"github.com/noah-isme/campus-admin-api/internal/middleware"
	"github.com/noah-isme/campus-admin-api/internal/service"
	"github.com/noah-isme/campus-admin-api/internal/utils"
)

// AdmissionHandler wires the admissions endpoints.
type AdmissionHandler struct {
	service service.AdmissionService
	logger  zerolog.Logger
}

// NewAdmissionHandler constructs the handler.
func NewAdmissionHandler(service service.AdmissionService, logger zerolog.Logger) *AdmissionHandler {
	return &AdmissionHandler{
		service: service,
		logger:  logger.With().Str("component", "admission_handler").Logger(),
	}
}

// Register attaches admission routes to the router group.
func (h *AdmissionHandler) Register(router fiber.Router) {
	router.Get("", h.list)
	router.Post("", h.admit)
}

func (h *AdmissionHandler) list(c *fiber.Ctx) error {
	students, err := h.service.List(c.UserContext())
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to list students")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to list students")
	}

	return utils.SendSuccess(c, "students retrieved", students)
}

func (h *AdmissionHandler) admit(c *fiber.Ctx) error {
	var payload dto.AdmissionRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	student, err := h.service.Admit(c.UserContext(), middleware.EffectiveRole(c), payload)
	if err != nil {
		return sendActionError(c, h.logger, err, "failed to admit student")
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "student admitted", student)
}
