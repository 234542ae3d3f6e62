package app

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/shuttercal/booking-backend/internal/api"
	"github.com/shuttercal/booking-backend/internal/auth"
	"github.com/shuttercal/booking-backend/internal/booking"
	"github.com/shuttercal/booking-backend/internal/media"
	"github.com/shuttercal/booking-backend/internal/notification"
	"github.com/shuttercal/booking-backend/internal/offering"
	"github.com/shuttercal/booking-backend/internal/photographer"
	"github.com/shuttercal/booking-backend/internal/user"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	DBPool       *pgxpool.Pool
	JWTSecret    string
	JWTTTL       time.Duration
	BcryptCost   int
	Hours        booking.Hours
	MediaDir     string
	Logger       *zap.Logger
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router     *gin.Engine
	JWTManager *auth.JWTManager
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) (*Container, error) {
	if err := cfg.Hours.Validate(); err != nil {
		return nil, fmt.Errorf("invalid operating hours: %w", err)
	}

	// Init Components
	passwordHasher := auth.NewBcryptPasswordHasherWithCost(cfg.BcryptCost)
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)

	storage, err := media.NewLocalStorage(cfg.MediaDir)
	if err != nil {
		return nil, fmt.Errorf("failed to init media storage: %w", err)
	}

	// User Module
	userRepo := user.NewPgxRepository(cfg.DBPool)
	userService := user.NewService(userRepo, passwordHasher)

	// Offering Module
	offeringRepo := offering.NewPgxRepository(cfg.DBPool)
	offeringService := offering.NewService(offeringRepo)

	// Photographer Module
	photographerRepo := photographer.NewPgxRepository(cfg.DBPool)
	photographerService := photographer.NewService(photographerRepo)

	// Notification Module. The recorder doubles as the booking event
	// publisher, turning lifecycle events into user notifications.
	notificationRepo := notification.NewPgxRepository(cfg.DBPool)
	notificationService := notification.NewService(notificationRepo)
	recorder := notification.NewRecorder(notificationRepo, cfg.Logger)

	// Booking Module
	bookingRepo := booking.NewPgxRepository(cfg.DBPool)
	bookingService := booking.NewService(
		bookingRepo,
		offeringService,
		photographerService,
		cfg.Hours,
		recorder,
		cfg.Logger,
	)

	// Router
	router := api.NewRouter(
		api.RouterConfig{
			IsProduction: cfg.IsProduction,
			ProdOrigins:  cfg.ProdOrigins,
			MediaDir:     cfg.MediaDir,
		},
		userService,
		offeringService,
		photographerService,
		bookingService,
		notificationService,
		storage,
		jwtManager,
	)

	return &Container{
		Router:     router,
		JWTManager: jwtManager,
	}, nil
}
