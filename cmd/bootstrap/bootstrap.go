package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"health-appointments/config"
	"health-appointments/internal/datetext"
	"health-appointments/internal/delivery/tool"
	"health-appointments/internal/infrastructure/database"
	"health-appointments/internal/repository"
	"health-appointments/internal/seeder"
	"health-appointments/internal/usecase"
	"health-appointments/pkg/validator"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config *config.Config
	DB     *gorm.DB
	Server *tool.Server
}

// New creates a new App instance with all dependencies initialized. The
// doctor directory is seeded here, once, before any tool call can run.
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	applyLogLevel(cfg.App.LogLevel)
	logrus.Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.NewSQLiteConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	app.DB = db

	log := logrus.StandardLogger()

	// Seed the doctor directory if it is empty (bootstrap only)
	doctorRepo := repository.NewDoctorRepository()
	generator := seeder.NewGenerator(seeder.NewFakeitNameSource(), time.Now().UnixNano())
	directorySeeder := seeder.NewSeeder(db, log, doctorRepo, generator)
	if err := directorySeeder.SeedIfEmpty(context.Background(), cfg.Seed.DoctorCount); err != nil {
		return nil, fmt.Errorf("failed to seed doctor directory: %w", err)
	}

	// Initialize all layers
	app.Server = initializeTools(db, log)

	return app, nil
}

// setupLogger configures the logrus logger. Logs go to stderr because stdout
// carries tool results.
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stderr)
	logrus.SetLevel(logrus.InfoLevel)
}

func applyLogLevel(level string) {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.Warnf("Unknown log level %q, keeping info", level)
		return
	}
	logrus.SetLevel(parsed)
}

// initializeTools wires repositories, usecases and the tool registry.
func initializeTools(db *gorm.DB, log *logrus.Logger) *tool.Server {
	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	doctorRepo := repository.NewDoctorRepository()
	appointmentRepo := repository.NewAppointmentRepository()

	// Initialize usecases
	directoryUsecase := usecase.NewDoctorDirectoryUsecase(db, log, doctorRepo)
	appointmentUsecase := usecase.NewAppointmentUsecase(db, log, doctorRepo, appointmentRepo, datetext.NewNormalizer())

	// Initialize tool handlers
	doctorTools := tool.NewDoctorTools(directoryUsecase)
	appointmentTools := tool.NewAppointmentTools(appointmentUsecase, customValidator)

	registry := tool.NewRegistry(log)
	registry.Register("find_doctors", doctorTools.FindDoctors)
	registry.Register("book_appointment", appointmentTools.BookAppointment)
	registry.Register("get_my_appointments", appointmentTools.GetMyAppointments)

	return tool.NewServer(registry, log)
}

// Run serves tool calls over stdio until stdin closes or a signal arrives.
func (app *App) Run() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		logrus.Info("Shutting down...")
		cancel()
		// unblock the read the server may be parked on
		os.Stdin.Close()
	}()

	logrus.Infof("Tool server ready (env: %s)", app.Config.App.Env)
	err := app.Server.Serve(ctx, os.Stdin, os.Stdout)
	if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, os.ErrClosed) {
		logrus.Errorf("Tool server stopped: %v", err)
	}

	app.Close()
	logrus.Info("Shutdown complete")
}

// Close closes all connections
func (app *App) Close() {
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
}
