package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/campus-admin-api/internal/dto"
	"github.com/noah-isme/campus-admin-api/internal/middleware"
	"github.com/noah-isme/campus-admin-api/internal/rbac"
	"github.com/noah-isme/campus-admin-api/internal/service"
	"github.com/noah-isme/campus-admin-api/internal/utils"
)

// RoleHandler wires role selection and the section capability listing.
type RoleHandler struct {
	service service.RoleService
	logger  zerolog.Logger
}

// NewRoleHandler constructs the handler.
func NewRoleHandler(service service.RoleService, logger zerolog.Logger) *RoleHandler {
	return &RoleHandler{
		service: service,
		logger:  logger.With().Str("component", "role_handler").Logger(),
	}
}

// Register attaches role routes to the router group.
func (h *RoleHandler) Register(router fiber.Router) {
	router.Get("/role", h.current)
	router.Put("/role", h.selectRole)
	router.Get("/sections", h.sections)
}

func (h *RoleHandler) current(c *fiber.Ctx) error {
	payload := dto.RoleResponse{
		Role:  h.service.Current(c.UserContext()),
		Roles: rbac.Roles(),
	}

	return utils.SendSuccess(c, "role retrieved", payload)
}

func (h *RoleHandler) selectRole(c *fiber.Ctx) error {
	var payload dto.RoleSelectRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	selected, err := h.service.Select(c.UserContext(), payload.Role)
	if err != nil {
		return sendActionError(c, h.logger, err, "failed to select role")
	}

	return utils.SendSuccess(c, "role selected", dto.RoleResponse{Role: selected, Roles: rbac.Roles()})
}

// sections lists the view/edit capability of every section for the effective
// role, the shape the rendering layer gates its tabs and buttons on.
func (h *RoleHandler) sections(c *fiber.Ctx) error {
	role := middleware.EffectiveRole(c)

	access := make([]dto.SectionAccessResponse, 0, len(rbac.Sections()))
	for _, section := range rbac.Sections() {
		access = append(access, dto.SectionAccessResponse{
			Section: section,
			CanView: rbac.CanView(section, role),
			CanEdit: rbac.CanEdit(section, role),
		})
	}

	return utils.SendSuccess(c, "sections retrieved", access)
}
