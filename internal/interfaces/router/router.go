package router

import (
	carsvc "autolot-backend/internal/application/cars"
	salesvc "autolot-backend/internal/application/sales"
	"autolot-backend/internal/config"
	"autolot-backend/internal/infrastructure/database"
	carhandler "autolot-backend/internal/interfaces/handlers/cars"
	healthhandler "autolot-backend/internal/interfaces/handlers/health"
	salehandler "autolot-backend/internal/interfaces/handlers/sales"
	"autolot-backend/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type gormDBPinger struct {
	db *gorm.DB
}

func (g *gormDBPinger) Ping() error {
	if g == nil || g.db == nil {
		return nil
	}
	sqlDB, err := g.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// CreateApp builds the Fiber app with global middleware and route registration.
func CreateApp(cfg *config.Config) (*fiber.App, *gorm.DB, *redis.Client, error) {
	app := fiber.New(fiber.Config{
		DisableStartupMessage:   true,
		ErrorHandler:            middleware.ErrorHandler,
		EnableTrustedProxyCheck: true,
	})

	app.Use(middleware.CORS(middleware.CORSConfig{
		AllowedSuffix: cfg.AllowedOriginSuffix,
	}))

	var rdb *redis.Client
	if cfg.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, nil, nil, err
		}
		rdb = redis.NewClient(opt)
	}
	app.Use(middleware.HealthMarker(rdb))
	app.Use(middleware.Tracing())
	app.Use(middleware.RouteLogger())

	hh := &healthhandler.Handlers{
		Rdb:            rdb,
		DB:             nil,
		HealthAdminKey: cfg.HealthAdminKey,
	}
	app.Get("/", hh.Dashboard)
	app.Get("/reset", hh.Reset)
	app.Get("/health/json", hh.JSON)
	app.Get("/health/errors", hh.Errors)

	var db *gorm.DB
	if cfg.DatabaseURL != "" {
		var errDB error
		db, errDB = database.Open(cfg.DatabaseURL)
		if errDB != nil {
			return nil, nil, nil, errDB
		}
		if err := database.AutoMigrate(db); err != nil {
			return nil, nil, nil, err
		}
		hh.DB = &gormDBPinger{db: db}
	}

	if db != nil {
		// Cars
		cs := &carsvc.Service{DB: db}
		ch := &carhandler.Handlers{Service: cs}
		cg := app.Group("/api/cars")
		cg.Get("/", ch.GetCars)
		// /available before /:id so Fiber does not swallow it as an id
		cg.Get("/available", ch.GetAvailableCars)
		cg.Get("/:id", ch.GetCar)
		cg.Post("/", ch.CreateCar)
		cg.Put("/:id", ch.UpdateCar)
		cg.Patch("/:id/status", ch.UpdateStatus)
		cg.Delete("/:id", ch.DeleteCar)

		// Sales
		ss := &salesvc.Service{DB: db}
		sh := &salehandler.Handlers{Service: ss}
		sg := app.Group("/api/sales")
		sg.Post("/", sh.CreateSale)
		sg.Get("/", sh.GetSales)
		sg.Get("/:id", sh.GetSale)
	}

	return app, db, rdb, nil
}
