package main

import (
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/siddur-next/internal/app"
	"github.com/siddur-next/internal/config"
	"github.com/siddur-next/internal/logger"
	"github.com/siddur-next/internal/models"

	"github.com/gin-gonic/gin"
)

const (
	ansiReset = "\033[0m"
	ansiBold  = "\033[1m"
	ansiDim   = "\033[2m"
	ansiGreen = "\033[32m"
	ansiBlue  = "\033[34m"
	ansiCyan  = "\033[36m"
)

func main() {
	printStartupBanner()

	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()

	if cfg.Server.Mode == "release" {
		if isWeakSecret(cfg.JWT.SecretKey) {
			stdLog.Fatalf("JWT secret is weak or still the default, set a strong random key in production")
		}
	} else if isWeakSecret(cfg.JWT.SecretKey) {
		stdLog.Printf("warning: JWT secret is weak or still the default, change it before deploying")
	}

	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("database init failed: %v", err)
	}

	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("database migration failed: %v", err)
	}

	adminUser := os.Getenv("ADMIN_USERNAME")
	adminPass := os.Getenv("ADMIN_PASSWORD")
	if cfg.Server.Mode == "release" && adminPass == "" {
		stdLog.Printf("warning: ADMIN_PASSWORD not set, skipping default admin initialization")
	} else if err := models.InitDefaultAdmin(adminUser, adminPass); err != nil {
		stdLog.Printf("warning: default admin initialization failed: %v", err)
	}

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := app.Run(app.Options{
		Config:  cfg,
		Logger:  logger.S(),
		Signals: []os.Signal{syscall.SIGINT, syscall.SIGTERM},
	}); err != nil {
		stdLog.Fatalf("server exited with error: %v", err)
	}
}

func printStartupBanner() {
	fmt.Println(ansiCyan + "███████╗██╗██████╗ ██████╗ ██╗   ██╗██████╗ " + ansiReset)
	fmt.Println(ansiCyan + "██╔════╝██║██╔══██╗██╔══██╗██║   ██║██╔══██╗" + ansiReset)
	fmt.Println(ansiCyan + "███████╗██║██║  ██║██║  ██║██║   ██║██████╔╝" + ansiReset)
	fmt.Println(ansiCyan + "╚════██║██║██║  ██║██║  ██║██║   ██║██╔══██╗" + ansiReset)
	fmt.Println(ansiCyan + "███████║██║██████╔╝██████╔╝╚██████╔╝██║  ██║" + ansiReset)
	fmt.Println(ansiCyan + "╚══════╝╚═╝╚═════╝ ╚═════╝  ╚═════╝ ╚═╝  ╚═╝" + ansiReset)
	fmt.Println(ansiGreen + ansiBold + "Siddur API - Jewish prayers content service" + ansiReset)
	fmt.Println(ansiBlue + "• Health:  GET /api/health" + ansiReset)
	fmt.Println(ansiBlue + "• Prayers: GET /api/prayers" + ansiReset)
	fmt.Println(ansiBlue + "• Videos:  GET /api/videos" + ansiReset)
	fmt.Println(ansiDim + "--------------------------------------------------------------" + ansiReset)
}

func isWeakSecret(secret string) bool {
	if len(secret) < 32 {
		return true
	}
	normalized := strings.ToLower(secret)
	if strings.Contains(normalized, "change-me") ||
		strings.Contains(normalized, "change-in-production") ||
		strings.Contains(normalized, "your-secret-key") {
		return true
	}
	return false
}
