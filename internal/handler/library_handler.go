package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/campus-admin-api/internal/dto"
	"github.com/noah-isme/campus-admin-api/internal/middleware"
	"github.com/noah-isme/campus-admin-api/internal/service"
	"github.com/noah-isme/campus-admin-api/internal/utils"
)

// LibraryHandler wires the loan transaction endpoints.
type LibraryHandler struct {
	service service.LibraryService
	logger  zerolog.Logger
}

// NewLibraryHandler constructs the handler.
func NewLibraryHandler(service service.LibraryService, logger zerolog.Logger) *LibraryHandler {
	return &LibraryHandler{
		service: service,
		logger:  logger.With().Str("component", "library_handler").Logger(),
	}
}

// Register attaches library routes to the router group.
func (h *LibraryHandler) Register(router fiber.Router) {
	router.Get("/transactions", h.list)
	router.Post("/transactions", h.submit)
}

func (h *LibraryHandler) list(c *fiber.Ctx) error {
	txns, err := h.service.List(c.UserContext())
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to list transactions")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to list transactions")
	}

	return utils.SendSuccess(c, "transactions retrieved", txns)
}

func (h *LibraryHandler) submit(c *fiber.Ctx) error {
	var payload dto.LibraryTxnRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	txn, err := h.service.Submit(c.UserContext(), middleware.EffectiveRole(c), payload)
	if err != nil {
		return sendActionError(c, h.logger, err, "failed to record transaction")
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "transaction recorded", txn)
}
