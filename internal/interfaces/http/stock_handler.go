package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/bodega-api/internal/application/dto"
	"github.com/jhoicas/bodega-api/internal/application/usecase"
)

// StockHandler expone el reporte de stock calculado por el agregador.
type StockHandler struct {
	uc *usecase.StockUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *usecase.StockUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// CurrentStock godoc
// @Summary      Reporte de stock
// @Description  Cantidad neta por artículo (suma con signo de sus movimientos),
// @Description  ordenada por nombre y truncada a limit.
// @Tags         stock
// @Produce      json
// @Param        limit  query  int  false  "Tope de filas"  default(100)
// @Success      200    {array}   dto.StockRow
// @Failure      500    {object}  dto.ErrorResponse
// @Router       /api/stock [get]
func (h *StockHandler) CurrentStock(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", usecase.DefaultStockLimit)
	rows, err := h.uc.CurrentStock(c.Context(), limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(rows)
}
