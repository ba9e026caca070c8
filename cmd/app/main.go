package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"parceltrack/cmd"
	httpin "parceltrack/internal/adapters/in/http"
	"parceltrack/internal/adapters/out/postgres/eventrepo"
	"parceltrack/internal/adapters/out/postgres/parcelrepo"
	"parceltrack/internal/adapters/out/redis/trackingcache"
	"parceltrack/internal/core/application/usecases/queries"
	"parceltrack/internal/generated/servers"

	"log/slog"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)
	trackingCache := createTrackingCache(configs, logger)

	app := cmd.NewCompositionRoot(configs, gormDB, trackingCache, logger)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:            goDotEnvVariable("HTTP_PORT"),
		DBHost:              goDotEnvVariable("DB_HOST"),
		DBPort:              goDotEnvVariable("DB_PORT"),
		DBUser:              goDotEnvVariable("DB_USER"),
		DBPassword:          goDotEnvVariable("DB_PASSWORD"),
		DBName:              goDotEnvVariable("DB_NAME"),
		DBSslMode:           goDotEnvVariable("DB_SSLMODE"),
		RedisAddr:           goDotEnvVariable("REDIS_ADDR"),
		TrackingCacheTTL:    durationVariable("TRACKING_CACHE_TTL", 30*time.Second),
		OrderDirectoryURL:   goDotEnvVariable("ORDER_DIRECTORY_URL"),
		CourierDirectoryURL: goDotEnvVariable("COURIER_DIRECTORY_URL"),
		OverdueSweepCron:    goDotEnvVariable("OVERDUE_SWEEP_CRON"),
	}
	if config.OverdueSweepCron == "" {
		config.OverdueSweepCron = "0 * * * * *"
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func durationVariable(key string, fallback time.Duration) time.Duration {
	raw := goDotEnvVariable(key)
	if raw == "" {
		return fallback
	}

	parsed, err := time.ParseDuration(raw)
	if err != nil {
		log.Fatalf("Invalid %s: %v", key, err)
	}
	return parsed
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err = gormDB.AutoMigrate(&parcelrepo.ParcelDTO{}, &eventrepo.EventDTO{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB
}

// createTrackingCache connects to Redis when an address is configured.
// Without one the tracking query reads from Postgres every time.
func createTrackingCache(configs cmd.Config, logger *slog.Logger) queries.TrackingViewCache {
	if configs.RedisAddr == "" {
		return nil
	}

	cache, err := trackingcache.NewRedisTrackingViewCache(configs.RedisAddr, configs.TrackingCacheTTL)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	logger.Info("Tracking view cache enabled", "addr", configs.RedisAddr, "ttl", configs.TrackingCacheTTL)
	return cache
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpin.NewServer(
		app.CreateCreateParcelCommandHandler(),
		app.CreateUpdateParcelStatusCommandHandler(),
		app.CreateAssignCourierCommandHandler(),
		app.CreateRecordLocationCommandHandler(),
		app.CreateGetTrackingQueryHandler(),
	)
	servers.RegisterHandlers(e, server)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
