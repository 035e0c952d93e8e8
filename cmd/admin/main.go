package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/almacen-admin/internal/infrastructure/rest"
	httpRouter "github.com/jhoicas/almacen-admin/internal/interfaces/http"
	"github.com/jhoicas/almacen-admin/internal/application/table"
	"github.com/jhoicas/almacen-admin/internal/domain/rbac"
	"github.com/jhoicas/almacen-admin/pkg/config"
	"github.com/jhoicas/almacen-admin/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(cfg.App.Env, cfg.App.LogLevel)
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("api", cfg.API.BaseURL).
		Msg("iniciando fachada de administración")

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET es requerido para validar la sesión")
	}

	client := rest.NewClient(cfg.API.BaseURL, cfg.API.Token, cfg.API.TimeoutDuration(), log.Zerolog())
	gateways := rest.NewGateways(client)
	coordinator := table.NewCoordinator()
	policy := rbac.NewPolicy()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Gateways:    gateways,
		LowStock:    client,
		Policy:      policy,
		Coordinator: coordinator,
		PageSize:    cfg.Table.PageSize,
		JWTSecret:   cfg.JWT.Secret,
		Logger:      log.Zerolog(),
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
}
