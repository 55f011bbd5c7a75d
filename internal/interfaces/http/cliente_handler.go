package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/credifarma/cupos-api/internal/application/cartera"
	"github.com/credifarma/cupos-api/internal/application/dto"
)

// ClienteHandler maneja las peticiones HTTP de clientes y cupos (protegido).
type ClienteHandler struct {
	clienteUC    *cartera.ClienteUseCase
	movimientoUC *cartera.MovimientoUseCase
}

// NewClienteHandler construye el handler.
func NewClienteHandler(clienteUC *cartera.ClienteUseCase, movimientoUC *cartera.MovimientoUseCase) *ClienteHandler {
	return &ClienteHandler{clienteUC: clienteUC, movimientoUC: movimientoUC}
}

// Create POST /api/clientes
func (h *ClienteHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateClienteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	cliente, err := h.clienteUC.Create(in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(cliente)
}

// List GET /api/clientes
func (h *ClienteHandler) List(c *fiber.Ctx) error {
	list, err := h.clienteUC.List()
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(list)
}

// GetView GET /api/clientes/:nit
func (h *ClienteHandler) GetView(c *fiber.Ctx) error {
	view, err := h.clienteUC.GetView(c.Params("nit"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(view)
}

// UpdateLimites PATCH /api/clientes/:nit
func (h *ClienteHandler) UpdateLimites(c *fiber.Ctx) error {
	var in dto.UpdateLimitesRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	cliente, err := h.clienteUC.UpdateLimites(c.Params("nit"), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(cliente)
}

// Deactivate DELETE /api/clientes/:nit (borrado lógico)
func (h *ClienteHandler) Deactivate(c *fiber.Ctx) error {
	if err := h.clienteUC.Deactivate(c.Params("nit")); err != nil {
		return errorJSON(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// RecordPago POST /api/clientes/:nit/pagos
func (h *ClienteHandler) RecordPago(c *fiber.Ctx) error {
	var in dto.RecordPagoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	mov, err := h.movimientoUC.RecordPago(c.UserContext(), c.Params("nit"), GetEmail(c), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(mov)
}

// CreateMovimiento POST /api/clientes/:nit/movimientos (AJUSTE, NOTA_CREDITO, NOTA_DEBITO)
func (h *ClienteHandler) CreateMovimiento(c *fiber.Ctx) error {
	var in dto.CreateMovimientoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	mov, err := h.movimientoUC.Registrar(c.Params("nit"), GetEmail(c), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(mov)
}

// ListMovimientos GET /api/clientes/:nit/movimientos?limit=20&offset=0
func (h *ClienteHandler) ListMovimientos(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	list, err := h.movimientoUC.ListByCliente(c.Params("nit"), page)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(list)
}
