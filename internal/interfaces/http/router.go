package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/credifarma/cupos-api/internal/application/auth"
	"github.com/credifarma/cupos-api/internal/application/cartera"
	"github.com/credifarma/cupos-api/internal/application/mantenimiento"
	"github.com/credifarma/cupos-api/internal/application/ordenes"
	"github.com/credifarma/cupos-api/internal/application/reportes"
	"github.com/credifarma/cupos-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ClienteUC      *cartera.ClienteUseCase
	MovimientoUC   *cartera.MovimientoUseCase
	OrdenUC        *ordenes.OrdenUseCase
	AutorizarUC    *ordenes.AutorizarUseCase
	DepuracionUC   *mantenimiento.DepuracionUseCase
	EstadoCuentaUC *reportes.EstadoCuentaUseCase
	AuthUC         *auth.AuthUseCase
	JWTSecret      string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	mutador := RequireRole(entity.RolAdmin, entity.RolAnalista)
	soloAdmin := RequireRole(entity.RolAdmin)

	// Clientes / cupos
	clientes := protected.Group("/clientes")
	clienteHandler := NewClienteHandler(deps.ClienteUC, deps.MovimientoUC)
	clientes.Get("/", clienteHandler.List)
	clientes.Post("/", soloAdmin, clienteHandler.Create)
	clientes.Get("/:nit", clienteHandler.GetView)
	clientes.Patch("/:nit", soloAdmin, clienteHandler.UpdateLimites)
	clientes.Delete("/:nit", soloAdmin, clienteHandler.Deactivate)
	clientes.Post("/:nit/pagos", mutador, clienteHandler.RecordPago)
	clientes.Post("/:nit/movimientos", mutador, clienteHandler.CreateMovimiento)
	clientes.Get("/:nit/movimientos", clienteHandler.ListMovimientos)

	// Órdenes de compra
	ordenesGroup := protected.Group("/ordenes")
	ordenHandler := NewOrdenHandler(deps.OrdenUC, deps.AutorizarUC)
	ordenesGroup.Get("/", ordenHandler.List)
	ordenesGroup.Post("/", mutador, ordenHandler.Create)
	ordenesGroup.Get("/:numero", ordenHandler.Get)
	ordenesGroup.Post("/:numero/autorizaciones", mutador, ordenHandler.Autorizar)
	ordenesGroup.Get("/:numero/autorizaciones", ordenHandler.ListAutorizaciones)

	// Mantenimiento y reportes
	adminHandler := NewAdminHandler(deps.DepuracionUC, deps.EstadoCuentaUC)
	clientes.Get("/:nit/estado-cuenta.pdf", adminHandler.EstadoCuenta)
	protected.Post("/admin/depuracion/ordenes", soloAdmin, adminHandler.PurgarOrdenes)
}
