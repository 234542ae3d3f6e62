package api

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/shuttercal/booking-backend/internal/auth"
	"github.com/shuttercal/booking-backend/internal/booking"
	bookingHttp "github.com/shuttercal/booking-backend/internal/booking/http"
	"github.com/shuttercal/booking-backend/internal/media"
	"github.com/shuttercal/booking-backend/internal/notification"
	notificationHttp "github.com/shuttercal/booking-backend/internal/notification/http"
	"github.com/shuttercal/booking-backend/internal/offering"
	offeringHttp "github.com/shuttercal/booking-backend/internal/offering/http"
	"github.com/shuttercal/booking-backend/internal/photographer"
	photographerHttp "github.com/shuttercal/booking-backend/internal/photographer/http"
	"github.com/shuttercal/booking-backend/internal/user"
	userHttp "github.com/shuttercal/booking-backend/internal/user/http"
)

// RouterConfig carries everything the router needs beyond the services.
type RouterConfig struct {
	IsProduction bool
	ProdOrigins  string // comma-separated list of allowed origins in production
	MediaDir     string // local directory served under /media
}

// NewRouter initializes the HTTP router engine.
// It is responsible for assembling middleware (CORS, Logger, Auth) and registering routes for various modules.
func NewRouter(
	cfg RouterConfig,
	userService user.Service,
	offeringService offering.Service,
	photographerService photographer.Service,
	bookingService booking.Service,
	notificationService notification.Service,
	storage media.Storage,
	jwtManager *auth.JWTManager,
) *gin.Engine {

	r := gin.New()

	// Global Middleware:
	// - Logger: Logs request information to the console.
	// - Recovery: Captures panics to prevent server crashes and returns a 500 error.
	r.Use(gin.Logger(), gin.Recovery())

	// Configure CORS (Cross-Origin Resource Sharing).
	config := cors.DefaultConfig()
	if cfg.IsProduction {
		config.AllowOrigins = splitOrigins(cfg.ProdOrigins)
	} else {
		config.AllowOrigins = []string{
			"http://localhost:3000", // local frontend
			"http://localhost:8081", // Swagger
		}
	}
	config.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(config))

	// Portfolio images and thumbnails are served straight off disk.
	r.Static("/media", cfg.MediaDir)

	// authMiddleware: Validates if the request contains a valid JWT.
	authMiddleware := auth.AuthRequired(jwtManager)
	// adminMiddleware: Further checks if the authenticated user has admin privileges.
	adminMiddleware := RequireAdmin(userService)

	// Initialize HTTP Handlers for each module (injecting Service dependencies).
	authHandler := NewAuthHandler(userService, jwtManager)
	userHandler := userHttp.NewHandler(userService)
	offeringHandler := offeringHttp.NewHandler(offeringService)
	photographerHandler := photographerHttp.NewHandler(photographerService, storage)
	bookingHandler := bookingHttp.NewHandler(bookingService, userService)
	notificationHandler := notificationHttp.NewHandler(notificationService)

	// Register API routes under /v1
	v1 := r.Group("/v1")
	{
		v1.POST("/auth/register", authHandler.Register)
		v1.POST("/auth/login", authHandler.Login)

		userHttp.RegisterRoutes(v1, userHandler, authMiddleware, adminMiddleware)
		offeringHttp.RegisterRoutes(v1, offeringHandler, authMiddleware, adminMiddleware)
		photographerHttp.RegisterRoutes(v1, photographerHandler, authMiddleware, adminMiddleware)
		bookingHttp.RegisterRoutes(v1, bookingHandler, authMiddleware, adminMiddleware)
		notificationHttp.RegisterRoutes(v1, notificationHandler, authMiddleware)
	}

	return r
}

func splitOrigins(s string) []string {
	var origins []string
	for _, o := range strings.Split(s, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
