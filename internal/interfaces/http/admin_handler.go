package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gestistock/wms-api/internal/application/dto"
	"github.com/gestistock/wms-api/internal/application/usecase"
)

// AdminHandler opérations d'administration : purges et remise à zéro.
type AdminHandler struct {
	uc *usecase.MaintenanceUseCase
}

// NewAdminHandler construit le handler.
func NewAdminHandler(uc *usecase.MaintenanceUseCase) *AdminHandler {
	return &AdminHandler{uc: uc}
}

// ClearHistory godoc
// @Summary      Vider les trois journaux de mouvements
// @Tags         admin
// @Produce      json
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/admin/historique [delete]
func (h *AdminHandler) ClearHistory(c *fiber.Ctx) error {
	if err := h.uc.ClearHistory(); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "historique des mouvements vidé"})
}

// ClearLots godoc
// @Summary      Effacer les lots et dates d'expiration (quantités conservées)
// @Tags         admin
// @Produce      json
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/admin/lots [delete]
func (h *AdminHandler) ClearLots(c *fiber.Ctx) error {
	if err := h.uc.ClearLots(); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "lots effacés"})
}

// Reset godoc
// @Summary      Remise à zéro complète des données
// @Tags         admin
// @Produce      json
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/admin/reset [post]
func (h *AdminHandler) Reset(c *fiber.Ctx) error {
	if err := h.uc.ResetDatabase(); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "données réinitialisées"})
}
