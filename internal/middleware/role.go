package middleware

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/noah-isme/campus-admin-api/internal/rbac"
	"github.com/noah-isme/campus-admin-api/internal/utils"
)

// RoleHeader carries the caller-selected role label. There is no
// authentication behind it; the label only gates which sections respond.
const RoleHeader = "X-Campus-Role"

const roleLocal = "campus_role"

// RoleSource supplies the persisted role used when a request carries no role
// header.
type RoleSource interface {
	Current(ctx context.Context) string
}

// ResolveRole binds the effective role label to the request. The header wins;
// otherwise the persisted selection applies. Unknown labels are kept as-is so
// matrix lookups fail closed.
func ResolveRole(source RoleSource) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := strings.TrimSpace(c.Get(RoleHeader))
		if role == "" && source != nil {
			role = source.Current(c.UserContext())
		}

		c.Locals(roleLocal, role)
		return c.Next()
	}
}

// EffectiveRole returns the role label resolved for the request.
func EffectiveRole(c *fiber.Ctx) string {
	if value := c.Locals(roleLocal); value != nil {
		if role, ok := value.(string); ok {
			return role
		}
	}
	return ""
}

// RequireView rejects requests whose effective role may not view the section.
func RequireView(section string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !rbac.CanView(section, EffectiveRole(c)) {
			return utils.SendError(c, fiber.StatusForbidden, "insufficient permissions")
		}
		return c.Next()
	}
}
