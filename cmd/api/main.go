package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/noah-isme/campus-admin-api/internal/config"
	"github.com/noah-isme/campus-admin-api/internal/database"
	"github.com/noah-isme/campus-admin-api/internal/handler"
	"github.com/noah-isme/campus-admin-api/internal/middleware"
	"github.com/noah-isme/campus-admin-api/internal/models"
	"github.com/noah-isme/campus-admin-api/internal/repository"
	"github.com/noah-isme/campus-admin-api/internal/router"
	"github.com/noah-isme/campus-admin-api/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	db, err := database.ConnectStore(cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("failed to open record store: %v", err)
	}

	if err := db.AutoMigrate(&models.Student{}, &models.LibraryTransaction{}, &models.TransportPass{}); err != nil {
		log.Fatalf("failed to migrate record store: %v", err)
	}

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		redisClient, err = database.ConnectRedis(cfg.RedisURL)
		if err != nil {
			log.Fatalf("failed to connect to redis: %v", err)
		}
		defer redisClient.Close()
	} else {
		logger.Warn().Msg("redis url not configured, role selection will not survive restarts")
	}

	var natsConn *nats.Conn
	if cfg.NATSURL != "" {
		natsConn, err = database.ConnectNATS(cfg.NATSURL)
		if err != nil {
			log.Fatalf("failed to connect to nats: %v", err)
		}
		defer natsConn.Close()
	}

	validate := validator.New(validator.WithRequiredStructEnabled())

	studentRepo := repository.NewStudentRepository(db)
	libraryRepo := repository.NewLibraryRepository(db)
	transportRepo := repository.NewTransportRepository(db)

	events := service.NewEventPublisher(natsConn, cfg.EventSubjectBase, logger)

	admissionService := service.NewAdmissionService(studentRepo, events, validate, cfg.DefaultAdmissionFee, logger)
	feeService := service.NewFeeService(studentRepo, events, validate, logger)
	hostelService := service.NewHostelService(studentRepo, events, validate, logger)
	examService := service.NewExamService(studentRepo, events, validate, logger)
	libraryService := service.NewLibraryService(studentRepo, libraryRepo, events, validate, logger)
	transportService := service.NewTransportService(studentRepo, transportRepo, events, validate, logger)
	dashboardService := service.NewDashboardService(studentRepo, libraryRepo, transportRepo, cfg.HostelCapacity, logger)
	roleService := service.NewRoleService(redisClient, logger)

	if cfg.SeedDemoData {
		seedService := service.NewSeedService(studentRepo, libraryRepo, transportRepo, logger)
		if err := seedService.EnsureDemoData(context.Background()); err != nil {
			log.Fatalf("failed to seed demo data: %v", err)
		}
	}

	logger.Info().Str("role", roleService.Current(context.Background())).Msg("starting with persisted role")

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
	})

	middleware.Register(app, middleware.Config{Logger: &logger})
	router.Register(app, cfg, router.Dependencies{
		AdmissionHandler: handler.NewAdmissionHandler(admissionService, logger),
		FeeHandler:       handler.NewFeeHandler(feeService, logger),
		HostelHandler:    handler.NewHostelHandler(hostelService, logger),
		ExamHandler:      handler.NewExamHandler(examService, logger),
		LibraryHandler:   handler.NewLibraryHandler(libraryService, logger),
		TransportHandler: handler.NewTransportHandler(transportService, logger),
		DashboardHandler: handler.NewDashboardHandler(dashboardService, events, cfg.StreamInterval, logger),
		RoleHandler:      handler.NewRoleHandler(roleService, logger),
		RoleSource:       roleService,
	})

	go func() {
		if err := app.Listen(cfg.HTTPAddress()); err != nil {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	waitForShutdown(app)
}

func waitForShutdown(app *fiber.App) {
	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-shutdownCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}
}
