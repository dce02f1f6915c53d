package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"timebank/internal/config"
	"timebank/internal/middleware"
	"timebank/internal/modules/auth"
	"timebank/internal/modules/bookings"
	"timebank/internal/modules/dashboard"
	"timebank/internal/modules/home"
	"timebank/internal/modules/profile"
	"timebank/internal/modules/services"
	"timebank/internal/pkg/session"
	"timebank/internal/timebank"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	sessions := session.NewManager(cfg.SessionSecret, cfg.SessionTTL)
	backend := timebank.New(cfg.BackendURL)

	authService := auth.NewService(
		backend,
		func(token string) auth.API { return backend.WithToken(token) },
		sessions,
	)
	authHandler := auth.NewHandler(authService, cfg.CookieSecure)

	servicesService := services.NewService(
		func(token string) services.API { return backend.WithToken(token) },
	)
	servicesHandler := services.NewHandler(servicesService)

	bookingsService := bookings.NewService(
		func(token string) bookings.API { return backend.WithToken(token) },
	)
	bookingsHandler := bookings.NewHandler(bookingsService)

	profileService := profile.NewService(
		func(token string) profile.API { return backend.WithToken(token) },
	)
	profileHandler := profile.NewHandler(profileService)

	dashboardService := dashboard.NewService(profileService, servicesService, bookingsService)
	dashboardHandler := dashboard.NewHandler(dashboardService)

	homeHandler := home.NewHandler()

	if cfg.AppEnv != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS())

	root := r.Group("/")
	{
		// public
		homeHandler.RegisterRoutes(root)
		authHandler.RegisterPublicRoutes(root)

		// everything else needs a session
		protected := root.Group("/")
		protected.Use(middleware.RequireSession(sessions, cfg.CookieSecure))
		{
			authHandler.RegisterProtectedRoutes(protected)
			dashboardHandler.RegisterRoutes(protected)
			profileHandler.RegisterRoutes(protected)
			servicesHandler.RegisterRoutes(protected)
			bookingsHandler.RegisterRoutes(protected)
		}
	}

	log.Printf("gateway listening addr=%s backend=%s env=%s", cfg.ListenAddr, cfg.BackendURL, cfg.AppEnv)
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatal(err)
	}
}
