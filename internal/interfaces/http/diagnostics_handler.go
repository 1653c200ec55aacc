package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/bodega-api/internal/application/usecase"
)

// DiagnosticsHandler raíz informativa y endpoint de diagnóstico /test.
type DiagnosticsHandler struct {
	uc *usecase.DiagnosticsUseCase
}

// NewDiagnosticsHandler construye el handler.
func NewDiagnosticsHandler(uc *usecase.DiagnosticsUseCase) *DiagnosticsHandler {
	return &DiagnosticsHandler{uc: uc}
}

// Root godoc
// @Summary      Mensaje de vida del backend
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       / [get]
func (h *DiagnosticsHandler) Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "Warehouse Management Backend Running"})
}

// Test godoc
// @Summary      Diagnóstico del store y la configuración
// @Description  Siempre responde 200; los estados degradados van en el cuerpo.
// @Produce      json
// @Success      200  {object}  dto.DiagnosticsResponse
// @Router       /test [get]
func (h *DiagnosticsHandler) Test(c *fiber.Ctx) error {
	return c.JSON(h.uc.Check(c.Context()))
}
