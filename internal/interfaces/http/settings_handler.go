package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gestistock/wms-api/internal/application/dto"
	"github.com/gestistock/wms-api/internal/application/usecase"
)

// SettingsHandler gère les requêtes HTTP des paramètres.
type SettingsHandler struct {
	uc *usecase.SettingsUseCase
}

// NewSettingsHandler construit le handler.
func NewSettingsHandler(uc *usecase.SettingsUseCase) *SettingsHandler {
	return &SettingsHandler{uc: uc}
}

// List godoc
// @Summary      Lister les paramètres
// @Tags         parametres
// @Produce      json
// @Success      200  {array}  dto.SettingResponse
// @Router       /api/parametres [get]
func (h *SettingsHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.All()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.FromSettings(list))
}

// SaveThresholds godoc
// @Summary      Enregistrer les seuils d'alerte
// @Tags         parametres
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SaveThresholdsRequest  true  "Seuils"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/parametres/seuils [put]
func (h *SettingsHandler) SaveThresholds(c *fiber.Ctx) error {
	var in dto.SaveThresholdsRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if ok, err := validateStruct(c, in); !ok {
		return err
	}
	if err := h.uc.SaveAlertThresholds(in.LowStockThreshold, in.ExpirationHorizonDays); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "seuils enregistrés"})
}

// SaveWarehouse godoc
// @Summary      Enregistrer la configuration de l'entrepôt
// @Tags         parametres
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SaveWarehouseRequest  true  "Entrepôt"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/parametres/entrepot [put]
func (h *SettingsHandler) SaveWarehouse(c *fiber.Ctx) error {
	var in dto.SaveWarehouseRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if ok, err := validateStruct(c, in); !ok {
		return err
	}
	if err := h.uc.SaveWarehouseConfig(in.Name, in.Address); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "configuration de l'entrepôt enregistrée"})
}

// SaveUnitCost godoc
// @Summary      Enregistrer le prix unitaire estimé
// @Tags         parametres
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SaveUnitCostRequest  true  "Prix unitaire"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/parametres/prix-unitaire [put]
func (h *SettingsHandler) SaveUnitCost(c *fiber.Ctx) error {
	var in dto.SaveUnitCostRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if ok, err := validateStruct(c, in); !ok {
		return err
	}
	if err := h.uc.SaveEstimatedUnitCost(in.Value); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "prix unitaire enregistré"})
}

// Reset godoc
// @Summary      Effacer tous les paramètres
// @Tags         parametres
// @Produce      json
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/parametres [delete]
func (h *SettingsHandler) Reset(c *fiber.Ctx) error {
	if err := h.uc.Reset(); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "paramètres réinitialisés"})
}
