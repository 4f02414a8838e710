package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/campus-admin-api/internal/middleware"
	"github.com/noah-isme/campus-admin-api/internal/rbac"
)

type staticRoleSource struct {
	role string
}

func (s staticRoleSource) Current(context.Context) string {
	return s.role
}

func roleTestApp(source middleware.RoleSource, section string) *fiber.App {
	app := fiber.New()
	app.Use(middleware.ResolveRole(source))
	app.Get("/probe", middleware.RequireView(section), func(c *fiber.Ctx) error {
		return c.SendString(middleware.EffectiveRole(c))
	})
	return app
}

func TestResolveRoleHeaderWinsOverPersisted(t *testing.T) {
	app := roleTestApp(staticRoleSource{role: rbac.RoleViewer}, rbac.SectionFees)

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set(middleware.RoleHeader, rbac.RoleAccounts)

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestResolveRoleFallsBackToPersistedSelection(t *testing.T) {
	app := roleTestApp(staticRoleSource{role: rbac.RoleWarden}, rbac.SectionHostel)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/probe", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRequireViewFailsClosed(t *testing.T) {
	app := roleTestApp(staticRoleSource{role: rbac.RoleViewer}, rbac.SectionLibrary)

	// persisted Viewer may not view library
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/probe", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	// an unknown header label gets no access anywhere, including the dashboard
	dashboard := roleTestApp(nil, rbac.SectionDashboard)
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set(middleware.RoleHeader, "Superuser")

	resp, err = dashboard.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestDashboardVisibleToViewer(t *testing.T) {
	app := roleTestApp(staticRoleSource{role: rbac.RoleViewer}, rbac.SectionDashboard)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/probe", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
}
