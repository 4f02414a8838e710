package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/campus-admin-api/internal/dto"
	"github.com/noah-isme/campus-admin-api/internal/middleware"
	"github.com/noah-isme/campus-admin-api/internal/service"
	"github.com/noah-isme/campus-admin-api/internal/utils"
)

// ExamHandler wires the marks upload endpoint.
type ExamHandler struct {
	service service.ExamService
	logger  zerolog.Logger
}

// NewExamHandler constructs the handler.
func NewExamHandler(service service.ExamService, logger zerolog.Logger) *ExamHandler {
	return &ExamHandler{
		service: service,
		logger:  logger.With().Str("component", "exam_handler").Logger(),
	}
}

// Register attaches exam routes to the router group.
func (h *ExamHandler) Register(router fiber.Router) {
	router.Post("/marks", h.upload)
}

func (h *ExamHandler) upload(c *fiber.Ctx) error {
	var payload dto.MarksUploadRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	result, err := h.service.UploadMarks(c.UserContext(), middleware.EffectiveRole(c), payload)
	if err != nil {
		return sendActionError(c, h.logger, err, "failed to upload marks")
	}

	return utils.SendSuccess(c, "marks uploaded", result)
}
