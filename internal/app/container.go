package app

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/maenko-m/meeting-management-backend/internal/api"
	"github.com/maenko-m/meeting-management-backend/internal/auth"
	"github.com/maenko-m/meeting-management-backend/internal/config"
	"github.com/maenko-m/meeting-management-backend/internal/employee"
	"github.com/maenko-m/meeting-management-backend/internal/event"
	"github.com/maenko-m/meeting-management-backend/internal/office"
	"github.com/maenko-m/meeting-management-backend/internal/pkg/storage"
	"github.com/maenko-m/meeting-management-backend/internal/room"
	"github.com/maenko-m/meeting-management-backend/internal/schedule"
)

// Container holds the initialized components that are needed externally.
type Container struct {
	Router     *gin.Engine
	JWTManager *auth.JWTManager
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg *config.Config, pool *pgxpool.Pool) (*Container, error) {
	// Init Components
	passwordHasher := auth.NewBcryptPasswordHasherWithCost(cfg.BcryptCost)
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTAccessTokenTTL)

	store, err := storage.NewLocalStorage(cfg.UploadDir)
	if err != nil {
		return nil, err
	}

	// Expansion bounds are re-anchored at every call so a long-lived
	// process never drifts away from the calendar.
	expandOpts := func() schedule.Options {
		return schedule.Options{
			Today:          schedule.Today(),
			HorizonMonths:  cfg.RecurrenceHorizonMonths,
			MaxOccurrences: cfg.RecurrenceMaxInstances,
		}
	}

	// Employee Module
	employeeRepo := employee.NewPgxRepository(pool)
	employeeService := employee.NewService(employeeRepo, passwordHasher)

	// Office Module
	officeRepo := office.NewPgxRepository(pool)
	officeService := office.NewService(officeRepo)

	// Room Module
	roomRepo := room.NewPgxRepository(pool)
	roomService := room.NewService(roomRepo, officeService, store)

	// Event Module
	eventRepo := event.NewPgxRepository(pool)
	eventSource := event.NewClientExpandedSource(eventRepo, cfg.ListCacheTTL, expandOpts)
	eventService := event.NewService(eventRepo, eventSource, roomService, cfg.TimelineWindow(), expandOpts)

	// Router
	router := api.NewRouter(cfg, employeeService, officeService, roomService, eventService, jwtManager)

	return &Container{
		Router:     router,
		JWTManager: jwtManager,
	}, nil
}
