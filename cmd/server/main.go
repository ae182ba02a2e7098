package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"synergy_app_echo/internal/config"
	"synergy_app_echo/internal/handlers"
	"synergy_app_echo/internal/logging"
	appMiddleware "synergy_app_echo/internal/middleware"
	"synergy_app_echo/internal/services"
	"synergy_app_echo/internal/session"
)

// sections are the sidebar destinations rendered as titled placeholders
var sections = []struct {
	path, title, description string
}{
	{"/calendar", "Calendar", "Meetings, holidays and team events."},
	{"/time-off", "Time Off", "Requests, balances and approvals."},
	{"/projects", "Projects", "Everything your teams are shipping."},
	{"/teams", "Teams", "Everyone you work with."},
	{"/integrations", "Integrations", "Connected tools and services."},
	{"/benefits", "Benefits", "Plans and perks available to you."},
	{"/documents", "Documents", "Contracts, policies and shared files."},
	{"/settings", "Settings", "Workspace and account preferences."},
	{"/support", "Support", "Get help from the people team."},
	{"/schedule", "Schedule", "Your upcoming shifts and meetings."},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := logging.New(cfg.IsProduction())
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()
	checks := map[string]handlers.Pinger{}

	// Firebase. Only assign the interfaces for a live client so a failed
	// init stays a nil interface rather than a typed nil.
	var (
		verifier appMiddleware.SessionVerifier
		issuer   handlers.SessionIssuer
	)
	authClient, err := services.InitFirebase(ctx, cfg.FirebaseCredentialsPath)
	if err != nil {
		logger.Warn("firebase initialization failed, auth features disabled", zap.Error(err))
	} else {
		verifier = authClient
		issuer = authClient
	}

	// Database
	var users services.UserStore
	if cfg.DatabaseURL != "" {
		db, err := services.InitDB(cfg.DatabaseURL, logger)
		if err != nil {
			logger.Fatal("failed to connect to database", zap.Error(err))
		}
		if err := services.AutoMigrate(db, logger); err != nil {
			logger.Fatal("failed to run database migrations", zap.Error(err))
		}
		sqlDB, err := db.DB()
		if err != nil {
			logger.Fatal("failed to get database handle", zap.Error(err))
		}
		defer sqlDB.Close()

		users = services.NewGormUserStore(db)
		checks["database"] = handlers.PingFunc(sqlDB.PingContext)
	} else {
		logger.Warn("DATABASE_URL not set, account details come from token claims")
	}

	// Redis
	var cache *services.RedisCache
	if cfg.RedisURL != "" {
		cache, err = services.NewRedisCache(ctx, cfg.RedisURL)
		if err != nil {
			logger.Warn("redis unavailable, profile cache disabled", zap.Error(err))
		} else {
			defer cache.Close()
			checks["redis"] = cache
		}
	}

	shellStore, err := session.NewShellStore(cfg.ShellSecret, cfg.IsProduction())
	if err != nil {
		logger.Fatal("failed to create shell state store", zap.Error(err))
	}

	profiles := services.NewProfileService(users, cache, cfg.ProfileCacheTTL, logger)
	layout := handlers.NewLayout(profiles)

	// Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := appMiddleware.NewMetrics(registry)

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = appMiddleware.NewErrorHandler(layout.ShellFor, logger)

	// Middleware
	e.Use(appMiddleware.RequestLogger(logger))
	e.Use(middleware.Recover())
	e.Use(metrics.Middleware())

	csrf := middleware.CSRFWithConfig(middleware.CSRFConfig{
		TokenLookup:    "form:_csrf",
		CookiePath:     "/",
		CookieHTTPOnly: true,
		CookieSecure:   cfg.IsProduction(),
		CookieSameSite: http.SameSiteLaxMode,
	})

	// Static file serving
	e.Static("/static", "web/static")

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(issuer, profiles, shellStore, handlers.AuthConfig{
		FirebaseAPIKey:     cfg.FirebaseAPIKey,
		FirebaseAuthDomain: cfg.FirebaseAuthDomain,
		FirebaseProjectID:  cfg.FirebaseProjectID,
		SessionMaxAge:      cfg.SessionMaxAge,
		SecureCookies:      cfg.IsProduction(),
	}, logger)
	dashboardHandler := handlers.NewDashboardHandler(layout)
	sectionHandler := handlers.NewSectionHandler(layout)
	profileHandler := handlers.NewProfileHandler(layout, profiles)
	shellHandler := handlers.NewShellHandler(shellStore, layout)
	healthHandler := handlers.NewHealthHandler(checks)

	// Public routes
	e.GET("/login", authHandler.LoginPage)
	e.POST("/auth/login", authHandler.HandleLogin)
	e.POST("/auth/logout", authHandler.HandleLogout, csrf)
	e.GET("/healthz", healthHandler.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry})))

	// Protected routes
	protected := e.Group("")
	protected.Use(appMiddleware.RequireAuth(verifier))
	protected.Use(appMiddleware.ShellState(shellStore))
	protected.Use(csrf)
	protected.GET("/dashboard", dashboardHandler.Dashboard)
	for _, s := range sections {
		protected.GET(s.path, sectionHandler.Section(s.title, s.description))
	}

	// Profile
	protected.GET("/profile", profileHandler.EditProfilePage)
	protected.POST("/profile", profileHandler.UpdateProfile)

	// Shell UI state
	protected.POST("/ui/sidebar/toggle", shellHandler.ToggleSidebar)
	protected.POST("/ui/nav/toggle", shellHandler.ToggleSection)

	// Redirect root to dashboard (or login if not authenticated)
	e.GET("/", func(c echo.Context) error {
		return c.Redirect(http.StatusTemporaryRedirect, "/dashboard")
	})

	// Start server
	go func() {
		logger.Info("server starting", zap.String("port", cfg.Port), zap.String("env", cfg.Environment))
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server stopped", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
	logger.Info("server stopped")
}
