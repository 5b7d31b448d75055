package provider

import (
	"github.com/siddur-next/internal/cache"
	"github.com/siddur-next/internal/config"
	"github.com/siddur-next/internal/logger"
	"github.com/siddur-next/internal/models"
	"github.com/siddur-next/internal/repository"
	"github.com/siddur-next/internal/service"
)

// Container holds the wired repositories and services.
type Container struct {
	Config *config.Config

	// Repositories
	AdminRepo  repository.AdminRepository
	PrayerRepo repository.PrayerRepository
	VideoRepo  repository.VideoRepository

	// Services
	AuthService   *service.AuthService
	PrayerService *service.PrayerService
	VideoService  *service.VideoService
}

// NewContainer wires repositories and services on top of models.DB.
func NewContainer(cfg *config.Config) *Container {
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	c := &Container{Config: cfg}
	c.initRepositories()
	c.initServices()
	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.AdminRepo = repository.NewAdminRepository(db)
	c.PrayerRepo = repository.NewPrayerRepository(db)
	c.VideoRepo = repository.NewVideoRepository(db)
}

func (c *Container) initServices() {
	c.AuthService = service.NewAuthService(c.Config, c.AdminRepo)
	c.PrayerService = service.NewPrayerService(c.PrayerRepo)
	c.VideoService = service.NewVideoService(c.VideoRepo)
}
