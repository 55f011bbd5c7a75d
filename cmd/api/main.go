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

	"github.com/credifarma/cupos-api/internal/application/auth"
	"github.com/credifarma/cupos-api/internal/application/cartera"
	"github.com/credifarma/cupos-api/internal/application/mantenimiento"
	"github.com/credifarma/cupos-api/internal/application/ordenes"
	"github.com/credifarma/cupos-api/internal/application/reportes"
	infrapdf "github.com/credifarma/cupos-api/internal/infrastructure/pdf"
	"github.com/credifarma/cupos-api/internal/infrastructure/postgres"
	httpRouter "github.com/credifarma/cupos-api/internal/interfaces/http"
	"github.com/credifarma/cupos-api/pkg/config"
	"github.com/credifarma/cupos-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	clienteRepo := postgres.NewClienteRepository(pool)
	ordenRepo := postgres.NewOrdenRepository(pool)
	movRepo := postgres.NewMovimientoRepository(pool)
	autRepo := postgres.NewAutorizacionRepository(pool)
	usuarioRepo := postgres.NewUsuarioRepository(pool)

	carteraTx := postgres.NewCarteraTxRunner(pool)
	ordenTx := postgres.NewOrdenTxRunner(pool)

	clienteUC := cartera.NewClienteUseCase(clienteRepo, ordenRepo)
	movimientoUC := cartera.NewMovimientoUseCase(carteraTx, clienteRepo, movRepo)
	ordenUC := ordenes.NewOrdenUseCase(ordenRepo, clienteRepo, autRepo)
	autorizarUC := ordenes.NewAutorizarUseCase(ordenTx)
	depuracionUC := mantenimiento.NewDepuracionUseCase(ordenRepo, cfg.App.RetencionDias)
	estadoCuentaUC := reportes.NewEstadoCuentaUseCase(clienteUC, movimientoUC, infrapdf.NewMarotoEstadoCuenta())
	authUC := auth.NewAuthUseCase(usuarioRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Log de peticiones con zerolog
	app.Use(func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		log.Info().
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("elapsed", time.Since(start)).
			Msg("request")
		return err
	})

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Cupos API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ClienteUC:      clienteUC,
		MovimientoUC:   movimientoUC,
		OrdenUC:        ordenUC,
		AutorizarUC:    autorizarUC,
		DepuracionUC:   depuracionUC,
		EstadoCuentaUC: estadoCuentaUC,
		AuthUC:         authUC,
		JWTSecret:      cfg.JWT.Secret,
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
