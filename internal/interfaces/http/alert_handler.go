package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gestistock/wms-api/internal/application/alert"
	"github.com/gestistock/wms-api/internal/application/dto"
)

// AlertHandler gère les requêtes HTTP des alertes de stock.
type AlertHandler struct {
	uc *alert.UseCase
}

// NewAlertHandler construit le handler.
func NewAlertHandler(uc *alert.UseCase) *AlertHandler {
	return &AlertHandler{uc: uc}
}

// List godoc
// @Summary      Alertes courantes (stock faible et expiration proche)
// @Tags         alertes
// @Produce      json
// @Success      200  {object}  dto.AlertsResponse
// @Router       /api/alertes [get]
func (h *AlertHandler) List(c *fiber.Ctx) error {
	low, err := h.uc.LowStock()
	if err != nil {
		return writeError(c, err)
	}
	expiring, err := h.uc.Expiring()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.AlertsResponse{
		LowStock: dto.FromStockLines(low),
		Expiring: dto.FromStockLines(expiring),
	})
}

// Count godoc
// @Summary      Nombre total d'alertes
// @Tags         alertes
// @Produce      json
// @Success      200  {object}  dto.AlertCountResponse
// @Router       /api/alertes/count [get]
func (h *AlertHandler) Count(c *fiber.Ctx) error {
	n, err := h.uc.Count()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.AlertCountResponse{Count: n})
}
