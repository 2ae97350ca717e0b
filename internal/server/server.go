package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	_ "github.com/joho/godotenv/autoload"

	"github.com/dyingroomdev/memshaheb-sub001/internal/database"
	"github.com/dyingroomdev/memshaheb-sub001/internal/middlewares"
	"github.com/dyingroomdev/memshaheb-sub001/internal/repositories"
	"github.com/dyingroomdev/memshaheb-sub001/internal/services"
)

type Server struct {
	port              int
	httpServer        *http.Server
	db                database.Service
	userService       services.UserService
	authService       services.AuthService
	otpService        services.OTPService
	paintingService   services.PaintingService
	blogService       services.BlogService
	museumService     services.MuseumService
	pageService       services.PageService
	settingsService   services.SettingsService
	submissionService services.SubmissionService
}

func NewServer() *Server {
	portStr := os.Getenv("PORT")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		log.Warn().Str("port", portStr).Msg("Invalid PORT environment variable. Using default 8080.")
		port = 8080
	}

	db := database.New()

	userRepo := repositories.NewUserRepository(db)
	paintingRepo := repositories.NewPaintingRepository(db)
	blogRepo := repositories.NewBlogRepository(db)
	museumRepo := repositories.NewMuseumRepository(db)
	pageRepo := repositories.NewPageRepository(db)
	settingsRepo := repositories.NewSettingsRepository(db)
	submissionRepo := repositories.NewSubmissionRepository(db)
	otpRepo := repositories.NewOTPRepository(db)

	emailService := services.NewEmailService()

	s := &Server{
		port:              port,
		db:                db,
		userService:       services.NewUserService(userRepo),
		authService:       services.NewAuthService(userRepo),
		otpService:        services.NewOTPService(userRepo, otpRepo, emailService),
		paintingService:   services.NewPaintingService(paintingRepo),
		blogService:       services.NewBlogService(blogRepo),
		museumService:     services.NewMuseumService(museumRepo, paintingRepo),
		pageService:       services.NewPageService(pageRepo),
		settingsService:   services.NewSettingsService(settingsRepo),
		submissionService: services.NewSubmissionService(submissionRepo, emailService),
	}

	services.InitializeGoth()
	go middlewares.CleanupVisitors()

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", s.port),
		Handler:      s.RegisterRoutes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	return s
}

func (s *Server) Start() error {
	log.Info().Int("port", s.port).Msg("Starting server")
	return s.httpServer.ListenAndServe()
}

func (s *Server) GracefulShutdown(done chan bool) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	log.Info().Msg("Shutting down gracefully, press Ctrl+C again to force")
	stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.httpServer.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown with error")
	}

	if err := s.db.Close(); err != nil {
		log.Error().Err(err).Msg("Error closing database connection")
	}

	log.Info().Msg("Server exiting")
	done <- true
}
