package router

import (
	"fmt"
	"strings"

	"github.com/siddur-next/internal/cache"
	"github.com/siddur-next/internal/config"
	adminhandlers "github.com/siddur-next/internal/http/handlers/admin"
	publichandlers "github.com/siddur-next/internal/http/handlers/public"
	"github.com/siddur-next/internal/logger"
	"github.com/siddur-next/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter initializes the engine, middleware chain and route table.
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	publicHandler := publichandlers.New(c)
	adminHandler := adminhandlers.New(c)

	keyPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if keyPrefix == "" {
		keyPrefix = "siddur"
	}
	var store CounterStore
	if cache.Enabled() {
		store = NewRedisCounterStore(cache.Client())
	} else {
		store = NewMemoryCounterStore()
	}
	generalRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:general", keyPrefix),
		WindowSeconds: cfg.Security.RateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.RateLimit.MaxRequests,
		MessageKey:    "error.rate_limited",
	}
	loginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:login", keyPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxRequests,
		MessageKey:    "error.login_too_many",
	}

	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	api := r.Group("/api")
	api.Use(RateLimitMiddleware(store, generalRule, KeyByIP))
	{
		api.GET("/health", publicHandler.Health)

		auth := api.Group("/auth")
		{
			auth.POST("/login", RateLimitMiddleware(store, loginRule, KeyByIP), adminHandler.Login)
			auth.GET("/verify", JWTAuthMiddleware(cfg.JWT.SecretKey, c.AdminRepo), adminHandler.Verify)
			auth.POST("/change-password", JWTAuthMiddleware(cfg.JWT.SecretKey, c.AdminRepo), adminHandler.ChangePassword)
		}

		prayers := api.Group("/prayers")
		{
			prayers.GET("", publicHandler.GetPrayers)
			prayers.GET("/:id", publicHandler.GetPrayer)

			gated := prayers.Use(JWTAuthMiddleware(cfg.JWT.SecretKey, c.AdminRepo))
			{
				gated.POST("", adminHandler.CreatePrayer)
				gated.PUT("/:id", adminHandler.UpdatePrayer)
				gated.DELETE("/:id", adminHandler.DeletePrayer)
			}
		}

		videos := api.Group("/videos")
		{
			videos.GET("", publicHandler.GetVideos)
			videos.GET("/:id", publicHandler.GetVideo)

			gated := videos.Use(JWTAuthMiddleware(cfg.JWT.SecretKey, c.AdminRepo))
			{
				gated.POST("", adminHandler.CreateVideo)
				gated.PUT("/:id", adminHandler.UpdateVideo)
				gated.DELETE("/:id", adminHandler.DeleteVideo)
			}
		}

		admin := api.Group("/admin")
		admin.Use(JWTAuthMiddleware(cfg.JWT.SecretKey, c.AdminRepo))
		{
			admin.GET("/prayers", adminHandler.ListPrayers)
			admin.GET("/videos", adminHandler.ListVideos)
		}
	}

	return r
}
