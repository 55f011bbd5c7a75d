package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/credifarma/cupos-api/internal/application/mantenimiento"
	"github.com/credifarma/cupos-api/internal/application/reportes"
)

// AdminHandler operaciones de mantenimiento y reportes (solo admin).
type AdminHandler struct {
	depuracionUC   *mantenimiento.DepuracionUseCase
	estadoCuentaUC *reportes.EstadoCuentaUseCase
}

// NewAdminHandler construye el handler.
func NewAdminHandler(depuracionUC *mantenimiento.DepuracionUseCase, estadoCuentaUC *reportes.EstadoCuentaUseCase) *AdminHandler {
	return &AdminHandler{depuracionUC: depuracionUC, estadoCuentaUC: estadoCuentaUC}
}

// PurgarOrdenes POST /api/admin/depuracion/ordenes?dias=90
func (h *AdminHandler) PurgarOrdenes(c *fiber.Ctx) error {
	dias, _ := strconv.Atoi(c.Query("dias", "0"))
	eliminadas, err := h.depuracionUC.PurgarOrdenesAutorizadas(dias)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{"ordenes_eliminadas": eliminadas})
}

// EstadoCuenta GET /api/clientes/:nit/estado-cuenta.pdf
func (h *AdminHandler) EstadoCuenta(c *fiber.Ctx) error {
	pdfBytes, err := h.estadoCuentaUC.Generar(c.UserContext(), c.Params("nit"))
	if err != nil {
		return errorJSON(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="estado-cuenta.pdf"`)
	return c.Send(pdfBytes)
}
