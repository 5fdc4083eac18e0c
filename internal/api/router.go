package api

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"github.com/maenko-m/meeting-management-backend/internal/auth"
	"github.com/maenko-m/meeting-management-backend/internal/config"
	"github.com/maenko-m/meeting-management-backend/internal/employee"
	employeeHttp "github.com/maenko-m/meeting-management-backend/internal/employee/http"
	"github.com/maenko-m/meeting-management-backend/internal/event"
	eventHttp "github.com/maenko-m/meeting-management-backend/internal/event/http"
	"github.com/maenko-m/meeting-management-backend/internal/office"
	officeHttp "github.com/maenko-m/meeting-management-backend/internal/office/http"
	"github.com/maenko-m/meeting-management-backend/internal/room"
	roomHttp "github.com/maenko-m/meeting-management-backend/internal/room/http"
)

// NewRouter initializes the HTTP router engine.
// It is responsible for assembling middleware (CORS, Logger, Auth, rate
// limiting) and registering routes for the various modules.
func NewRouter(
	cfg *config.Config,
	employeeService employee.Service,
	officeService office.Service,
	roomService room.Service,
	eventService event.Service,
	jwtManager *auth.JWTManager,
) *gin.Engine {

	r := gin.New()

	// Global Middleware:
	// - Logger: Logs request information to the console.
	// - Recovery: Captures panics to prevent server crashes and returns a 500 error.
	r.Use(gin.Logger(), gin.Recovery())

	// Configure CORS (Cross-Origin Resource Sharing).
	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction && cfg.ProdOrigins != "" {
		corsConfig.AllowOrigins = strings.Split(cfg.ProdOrigins, ",")
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "jwt"}
	r.Use(cors.New(corsConfig))

	if cfg.RateLimitRPS > 0 {
		r.Use(RateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst))
	}

	// authMiddleware: Validates if the request contains a valid JWT.
	authMiddleware := auth.AuthRequired(jwtManager)
	// moderatorMiddleware: Further checks the employee's moderator role.
	moderatorMiddleware := RequireModerator(employeeService)

	// Directory listings (offices, rooms) are identical for every caller,
	// so they get the shared GET cache. Event listings are per-viewer and
	// must stay uncached here.
	listCache := CacheGET(gocache.New(cfg.ListCacheTTL, 2*cfg.ListCacheTTL), cfg.ListCacheTTL)

	// Initialize HTTP Handlers for each module (injecting Service dependencies).
	authHandler := NewAuthHandler(employeeService, jwtManager)
	employeeHandler := employeeHttp.NewHandler(employeeService)
	officeHandler := officeHttp.NewHandler(officeService)
	roomHandler := roomHttp.NewHandler(roomService)
	eventHandler := eventHttp.NewHandler(eventService)

	// Register API routes under /v1
	v1 := r.Group("/v1")
	{
		v1.POST("/auth/login", authHandler.Login)

		employeeHttp.RegisterRoutes(v1, employeeHandler, authMiddleware, moderatorMiddleware)
		officeHttp.RegisterRoutes(v1, officeHandler, authMiddleware, moderatorMiddleware, listCache)
		roomHttp.RegisterRoutes(v1, roomHandler, authMiddleware, moderatorMiddleware, listCache)
		eventHttp.RegisterRoutes(v1, eventHandler, authMiddleware)
	}

	return r
}
