package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fieldtrack/internal/config"
	audit_logs "fieldtrack/internal/features/audit_logs"
	"fieldtrack/internal/features/companies"
	projects_controllers "fieldtrack/internal/features/projects/controllers"
	"fieldtrack/internal/features/reports"
	system_healthcheck "fieldtrack/internal/features/system/healthcheck"
	"fieldtrack/internal/features/tasks"
	users_controllers "fieldtrack/internal/features/users/controllers"
	users_middleware "fieldtrack/internal/features/users/middleware"
	users_services "fieldtrack/internal/features/users/services"
	"fieldtrack/internal/features/worklogs"
	"fieldtrack/internal/storage"
	env_utils "fieldtrack/internal/util/env"
	"fieldtrack/internal/util/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

func main() {
	log := logger.GetLogger()

	runMigrations(log)

	if err := users_services.GetUserService().CreateInitialAdmin(); err != nil {
		log.Error("Failed to create initial admin", "error", err)
		os.Exit(1)
	}

	gin.SetMode(gin.ReleaseMode)
	ginApp := gin.Default()

	ginApp.Use(gzip.Gzip(gzip.DefaultCompression))

	enableCors(ginApp)
	setUpRoutes(ginApp)

	startServerWithGracefulShutdown(log, ginApp)
}

func setUpRoutes(r *gin.Engine) {
	v1 := r.Group("/api/v1")

	// Public routes (only auth and liveness are public)
	userController := users_controllers.GetUserController()
	userController.RegisterRoutes(v1)
	system_healthcheck.GetHealthcheckController().RegisterRoutes(v1)

	userService := users_services.GetUserService()
	authMiddleware := users_middleware.AuthMiddleware(userService)

	// Protected routes
	protected := v1.Group("")
	protected.Use(authMiddleware)

	userController.RegisterProtectedRoutes(protected)
	companies.GetCompanyController().RegisterRoutes(protected)
	projects_controllers.GetProjectController().RegisterRoutes(protected)
	projects_controllers.GetMemberController().RegisterRoutes(protected)
	tasks.GetTaskController().RegisterRoutes(protected)
	worklogs.GetWorkLogController().RegisterRoutes(protected)
	reports.GetReportController().RegisterRoutes(protected)
	audit_logs.GetAuditLogController().RegisterRoutes(protected)
}

func runMigrations(log *slog.Logger) {
	log.Info("Running database migrations...")

	if err := storage.RunMigrations(); err != nil {
		log.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	log.Info("Database migrations completed successfully")
}

func enableCors(ginApp *gin.Engine) {
	if config.GetEnv().EnvMode == env_utils.EnvModeDevelopment {
		ginApp.Use(cors.New(cors.Config{
			AllowOrigins: []string{"*"},
			AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
			AllowHeaders: []string{
				"Origin",
				"Content-Length",
				"Content-Type",
				"Authorization",
				"Accept",
				"Accept-Language",
				"Accept-Encoding",
			},
			AllowCredentials: true,
		}))
	}
}

func startServerWithGracefulShutdown(log *slog.Logger, app *gin.Engine) {
	host := ""
	if config.GetEnv().EnvMode == env_utils.EnvModeDevelopment {
		host = "127.0.0.1"
	}

	srv := &http.Server{
		Addr:    host + ":4010",
		Handler: app,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("listen:", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Info("Shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown:", "error", err)
	}

	log.Info("Server gracefully stopped")
}
