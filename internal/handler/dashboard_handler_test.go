package handler_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/campus-admin-api/internal/dto"
	"github.com/noah-isme/campus-admin-api/internal/handler"
	"github.com/noah-isme/campus-admin-api/internal/middleware"
	"github.com/noah-isme/campus-admin-api/internal/rbac"
)

type mockDashboardService struct {
	overview dto.DashboardResponse
	err      error
}

func (m *mockDashboardService) Overview(context.Context) (dto.DashboardResponse, error) {
	return m.overview, m.err
}

func dashboardTestApp(svc *mockDashboardService) *fiber.App {
	logger := zerolog.New(io.Discard)
	app := fiber.New()
	group := app.Group("/api/v1/dashboard", middleware.ResolveRole(nil), middleware.RequireView(rbac.SectionDashboard))
	handler.NewDashboardHandler(svc, nil, time.Second, logger).Register(group)
	return app
}

func TestDashboardHandler_Overview(t *testing.T) {
	svc := &mockDashboardService{overview: dto.DashboardResponse{
		Totals: dto.DashboardTotalsResponse{TotalStudents: 2, FeesCollected: 51000, Dues: 12000, PassRate: 50},
		Chart:  []dto.ChartPoint{{Name: "Fees Collected", Value: 51000}},
	}}
	app := dashboardTestApp(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil)
	req.Header.Set(middleware.RoleHeader, rbac.RoleViewer)

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var response struct {
		Success bool                  `json:"success"`
		Data    dto.DashboardResponse `json:"data"`
	}
	decodeResponse(t, resp, &response)
	require.True(t, response.Success)
	require.Equal(t, 2, response.Data.Totals.TotalStudents)
	require.Equal(t, float64(51000), response.Data.Totals.FeesCollected)
	require.Len(t, response.Data.Chart, 1)
}

func TestDashboardHandler_UnknownRoleDenied(t *testing.T) {
	app := dashboardTestApp(&mockDashboardService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil)
	req.Header.Set(middleware.RoleHeader, "Superuser")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}
