package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gestistock/wms-api/internal/application/dto"
	"github.com/gestistock/wms-api/internal/application/location"
)

// LocationHandler gère les requêtes HTTP des emplacements.
type LocationHandler struct {
	uc *location.UseCase
}

// NewLocationHandler construit le handler.
func NewLocationHandler(uc *location.UseCase) *LocationHandler {
	return &LocationHandler{uc: uc}
}

// Create godoc
// @Summary      Créer un emplacement
// @Tags         emplacements
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateLocationRequest  true  "Emplacement"
// @Success      201   {object}  dto.LocationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/emplacements [post]
func (h *LocationHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateLocationRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if ok, err := validateStruct(c, in); !ok {
		return err
	}
	loc, err := h.uc.Create(location.CreateInput{
		Code:        in.Code,
		Zone:        in.Zone,
		MaxCapacity: in.MaxCapacity,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromLocation(loc))
}

// List godoc
// @Summary      Lister les emplacements
// @Tags         emplacements
// @Produce      json
// @Success      200  {array}  dto.LocationResponse
// @Router       /api/emplacements [get]
func (h *LocationHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.FromLocations(list))
}

// Available godoc
// @Summary      Codes des emplacements disponibles
// @Tags         emplacements
// @Produce      json
// @Success      200  {array}  string
// @Router       /api/emplacements/disponibles [get]
func (h *LocationHandler) Available(c *fiber.Ctx) error {
	codes, err := h.uc.AvailableCodes()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(codes)
}

// Stats godoc
// @Summary      Occupation globale des emplacements
// @Tags         emplacements
// @Produce      json
// @Success      200  {object}  dto.LocationStatsResponse
// @Router       /api/emplacements/stats [get]
func (h *LocationHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.uc.Stats()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.LocationStatsResponse{
		Total:         stats.Total,
		TotalCapacity: stats.TotalCapacity,
		UsedCapacity:  stats.UsedCapacity,
	})
}

// Delete godoc
// @Summary      Supprimer un emplacement
// @Tags         emplacements
// @Produce      json
// @Param        code  path  string  true  "Code de l'emplacement"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/emplacements/{code} [delete]
func (h *LocationHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("code")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "emplacement supprimé"})
}

// Clear godoc
// @Summary      Vider l'annuaire des emplacements
// @Tags         emplacements
// @Produce      json
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/emplacements [delete]
func (h *LocationHandler) Clear(c *fiber.Ctx) error {
	if err := h.uc.Clear(); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "annuaire des emplacements vidé"})
}
