package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/credifarma/cupos-api/internal/application/dto"
	"github.com/credifarma/cupos-api/internal/application/ordenes"
)

// OrdenHandler maneja las peticiones HTTP de órdenes de compra (protegido).
type OrdenHandler struct {
	ordenUC     *ordenes.OrdenUseCase
	autorizarUC *ordenes.AutorizarUseCase
}

// NewOrdenHandler construye el handler.
func NewOrdenHandler(ordenUC *ordenes.OrdenUseCase, autorizarUC *ordenes.AutorizarUseCase) *OrdenHandler {
	return &OrdenHandler{ordenUC: ordenUC, autorizarUC: autorizarUC}
}

// Create POST /api/ordenes
func (h *OrdenHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrdenRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	orden, err := h.ordenUC.Create(in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(orden)
}

// List GET /api/ordenes?cliente=&estado=&tipo=
func (h *OrdenHandler) List(c *fiber.Ctx) error {
	var in dto.ListOrdenesRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	list, err := h.ordenUC.List(in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(list)
}

// Get GET /api/ordenes/:numero
func (h *OrdenHandler) Get(c *fiber.Ctx) error {
	orden, err := h.ordenUC.Get(c.Params("numero"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(orden)
}

// Autorizar POST /api/ordenes/:numero/autorizaciones
func (h *OrdenHandler) Autorizar(c *fiber.Ctx) error {
	var in dto.AutorizarRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	orden, err := h.autorizarUC.Autorizar(c.UserContext(), c.Params("numero"), GetEmail(c), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(orden)
}

// ListAutorizaciones GET /api/ordenes/:numero/autorizaciones
func (h *OrdenHandler) ListAutorizaciones(c *fiber.Ctx) error {
	list, err := h.ordenUC.ListAutorizaciones(c.Params("numero"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(list)
}
