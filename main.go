package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"slices"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"shopmonitor/condb"
	"shopmonitor/config"
	"shopmonitor/controllers"
	"shopmonitor/logger"
	"shopmonitor/middleware"
	"shopmonitor/routes"
	"shopmonitor/utils"
	"shopmonitor/views"
)

var (
	migrateOnlyFlag = flag.Bool("migrate-only", false, "Run DB migrations and exit")
	seedFlag        = flag.Bool("seed", false, "Create the admin user and exit")
	seedDemoFlag    = flag.Bool("seed-demo", false, "With -seed, also insert demo data when inventory is empty")
)

const shutdownTimeout = 10 * time.Second

func main() {
	flag.Parse()

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Println("Error loading .env file:", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logg := logger.New(cfg.Log)
	defer logg.Sync()

	ctx := context.Background()
	db, err := condb.Open(ctx, cfg.Database)
	if err != nil {
		logg.Fatal("Database connection failed", zap.Error(err))
	}
	defer db.Close()
	logg.Info("Connected to database",
		zap.String("driver", cfg.Database.Driver),
		zap.String("path", cfg.Database.Path),
	)

	if cfg.Database.AutoMigrate || *migrateOnlyFlag {
		if err := condb.Migrate(ctx, db, logg); err != nil {
			logg.Fatal("Migration failed", zap.Error(err))
		}
	}
	if *migrateOnlyFlag {
		return
	}

	store := condb.NewStore(db)
	if *seedFlag {
		if err := condb.SeedAdmin(ctx, store, cfg.Seed, logg); err != nil {
			logg.Fatal("Seeding admin failed", zap.Error(err))
		}
		if *seedDemoFlag {
			if err := condb.SeedDemo(ctx, store, cfg.Seed.DemoRows, logg); err != nil {
				logg.Fatal("Seeding demo data failed", zap.Error(err))
			}
		}
		return
	}

	engine := views.New()
	if err := engine.Load(); err != nil {
		logg.Fatal("Loading templates failed", zap.Error(err))
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		Views:        engine,
		ErrorHandler: controllers.ErrorHandler(logg),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(middleware.RequestLogger(logg))

	var metrics *middleware.Metrics
	if cfg.Metrics.Enabled {
		metrics = middleware.NewMetrics("shop")
		app.Use(metrics.Handler())
	}

	origins := cfg.HTTP.CORSAllowOrigins
	app.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Join(origins, ","),
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		ExposeHeaders:    "Set-Cookie",
		AllowCredentials: !slices.Contains(origins, "*"),
	}))

	app.Static("/static", cfg.App.StaticDir)

	tokens := utils.NewTokenIssuer(cfg.JWT.Secret, cfg.JWT.Expiration, cfg.JWT.CookieSecure)
	handler := controllers.NewHandler(store, tokens, logg, cfg.App.Name)
	routes.RegisterRoutes(app, handler, routes.Options{
		RequireToken: cfg.JWT.Required,
		Tokens:       tokens,
		Metrics:      metrics,
		MetricsPath:  cfg.Metrics.Path,
	})

	go func() {
		logg.Info("Server running", zap.String("url", "http://localhost:"+cfg.App.Port))
		if err := app.Listen(":" + cfg.App.Port); err != nil {
			logg.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logg.Info("Shutdown signal received")

	if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
		logg.Error("Server shutdown failed", zap.Error(err))
	}
	logg.Info("Server stopped")
}
