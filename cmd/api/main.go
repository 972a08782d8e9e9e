package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/jhoicas/inventario-supabase/internal/application/dto"
	"github.com/jhoicas/inventario-supabase/internal/application/inventory"
	"github.com/jhoicas/inventario-supabase/internal/application/usecase"
	infrapdf "github.com/jhoicas/inventario-supabase/internal/infrastructure/pdf"
	"github.com/jhoicas/inventario-supabase/internal/infrastructure/postgres"
	"github.com/jhoicas/inventario-supabase/internal/infrastructure/postgrest"
	httpRouter "github.com/jhoicas/inventario-supabase/internal/interfaces/http"
	"github.com/jhoicas/inventario-supabase/pkg/config"
	"github.com/jhoicas/inventario-supabase/pkg/jwt"
	"github.com/jhoicas/inventario-supabase/pkg/logger"
)

func main() {
	// .env opcional en local; en despliegue las variables ya vienen del entorno
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("configuración inválida")
	}
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("api_client", cfg.Supabase.APIClient).
		Dur("timeout", cfg.Supabase.Timeout).
		Msg("iniciando aplicación")

	logKey(log, cfg.Supabase.Key)

	ctx := context.Background()

	// Conexión directa opcional: si existe, ventas y movimientos se registran en una transacción.
	var pool *pgxpool.Pool
	if cfg.DB.Enabled() {
		pool, err = postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		log.Info().Msg("registro de stock transaccional vía PostgreSQL")
	} else {
		log.Warn().Msg("sin DATABASE_URL: registro de stock vía REST con compensación")
	}

	registry := httpRouter.NewRegistry(cfg.Supabase.APIClient)
	for _, info := range postgrest.Strategies() {
		transport, err := postgrest.NewTransport(info.Name)
		if err != nil {
			log.Fatal().Err(err).Str("strategy", info.Name).Msg("transporte HTTP")
		}
		client := postgrest.NewClient(cfg.Supabase, transport, log.Named("postgrest."+info.Name))
		repos := postgrest.NewRepositories(client)

		var ledger inventory.StockLedger
		if pool != nil {
			ledger = postgres.NewLedger(pool)
		} else {
			ledger = inventory.NewCompensatingLedger(repos.Products, repos.Sales, repos.Movements, log.Named("ledger"))
		}

		registry.Register(&httpRouter.Services{
			Info: dto.StrategyResponse{
				Name:        info.Name,
				Library:     info.Library,
				Description: info.Description,
			},
			Products:  usecase.NewProductUseCase(repos.Products),
			Catalog:   usecase.NewCatalogUseCase(repos.Suppliers, repos.Users),
			Sales:     inventory.NewSaleUseCase(repos.Sales, repos.Products, ledger),
			Movements: inventory.NewMovementUseCase(repos.Movements, repos.Products, ledger),
		})
	}
	if _, err := registry.Resolve(""); err != nil {
		log.Fatal().Err(err).Msg("API_CLIENT inválido")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(httpRouter.RequestLogger(log.Named("http")))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Inventario Supabase API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "default_api": registry.Default()})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Registry: registry,
		Reports:  infrapdf.NewReportGenerator(cfg.App.Name),
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// logKey registra rol y vencimiento de la clave de Supabase, nunca la clave.
func logKey(log *logger.Logger, key string) {
	info, err := jwt.Inspect(key)
	switch {
	case err != nil:
		log.Warn().Err(err).Msg("SUPABASE_KEY no es un JWT válido")
	case info.Opaque:
		log.Info().Msg("SUPABASE_KEY con formato opaco")
	case info.Expired(time.Now()):
		log.Warn().Str("role", info.Role).Time("exp", info.ExpiresAt).Msg("SUPABASE_KEY vencida")
	default:
		log.Info().Str("role", info.Role).Str("ref", info.Ref).Msg("SUPABASE_KEY cargada")
	}
}
