package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/noah-isme/campus-admin-api/internal/config"
	"github.com/noah-isme/campus-admin-api/internal/handler"
	"github.com/noah-isme/campus-admin-api/internal/middleware"
	"github.com/noah-isme/campus-admin-api/internal/observability"
	"github.com/noah-isme/campus-admin-api/internal/rbac"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	AdmissionHandler *handler.AdmissionHandler
	FeeHandler       *handler.FeeHandler
	HostelHandler    *handler.HostelHandler
	ExamHandler      *handler.ExamHandler
	LibraryHandler   *handler.LibraryHandler
	TransportHandler *handler.TransportHandler
	DashboardHandler *handler.DashboardHandler
	RoleHandler      *handler.RoleHandler
	RoleSource       middleware.RoleSource
}

// Register wires the HTTP routes into the fiber application. Read endpoints
// sit behind the matrix view gate; mutations enforce edit rights inside the
// section services.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	api := app.Group("/api/v1", func(c *fiber.Ctx) error {
		c.Set("X-Application", cfg.AppName)
		return c.Next()
	}, middleware.ResolveRole(deps.RoleSource))

	api.Get("/health", handler.HealthCheck(cfg))
	api.Get("/metrics", observability.MetricsHandler())

	if deps.RoleHandler != nil {
		deps.RoleHandler.Register(api)
	}

	if deps.AdmissionHandler != nil {
		admissions := api.Group("/admissions", middleware.RequireView(rbac.SectionAdmissions))
		deps.AdmissionHandler.Register(admissions)
	}

	if deps.FeeHandler != nil {
		fees := api.Group("/fees", middleware.RequireView(rbac.SectionFees))
		deps.FeeHandler.Register(fees)
	}

	if deps.HostelHandler != nil {
		hostel := api.Group("/hostel", middleware.RequireView(rbac.SectionHostel))
		deps.HostelHandler.Register(hostel)
	}

	if deps.ExamHandler != nil {
		exams := api.Group("/exams", middleware.RequireView(rbac.SectionExams))
		deps.ExamHandler.Register(exams)
	}

	if deps.LibraryHandler != nil {
		library := api.Group("/library", middleware.RequireView(rbac.SectionLibrary))
		deps.LibraryHandler.Register(library)
	}

	if deps.TransportHandler != nil {
		transport := api.Group("/transport", middleware.RequireView(rbac.SectionTransport))
		deps.TransportHandler.Register(transport)
	}

	if deps.DashboardHandler != nil {
		dashboard := api.Group("/dashboard", middleware.RequireView(rbac.SectionDashboard))
		deps.DashboardHandler.Register(dashboard)
	}
}
