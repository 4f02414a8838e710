package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/campus-admin-api/internal/dto"
	"github.com/noah-isme/campus-admin-api/internal/middleware"
	"github.com/noah-isme/campus-admin-api/internal/service"
	"github.com/noah-isme/campus-admin-api/internal/utils"
)

// FeeHandler wires the fee payment endpoint.
type FeeHandler struct {
	service service.FeeService
	logger  zerolog.Logger
}

// NewFeeHandler constructs the handler.
func NewFeeHandler(service service.FeeService, logger zerolog.Logger) *FeeHandler {
	return &FeeHandler{
		service: service,
		logger:  logger.With().Str("component", "fee_handler").Logger(),
	}
}

// Register attaches fee routes to the router group.
func (h *FeeHandler) Register(router fiber.Router) {
	router.Post("/payments", h.pay)
}

func (h *FeeHandler) pay(c *fiber.Ctx) error {
	var payload dto.FeePaymentRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	receipt, err := h.service.PayFee(c.UserContext(), middleware.EffectiveRole(c), payload)
	if err != nil {
		return sendActionError(c, h.logger, err, "failed to record payment")
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "payment recorded", receipt)
}
