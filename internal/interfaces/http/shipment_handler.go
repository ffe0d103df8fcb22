package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gestistock/wms-api/internal/application/dto"
	"github.com/gestistock/wms-api/internal/application/movement"
	"github.com/gestistock/wms-api/internal/domain/entity"
)

// ShipmentHandler gère les requêtes HTTP des expéditions.
type ShipmentHandler struct {
	uc *movement.UseCase
}

// NewShipmentHandler construit le handler.
func NewShipmentHandler(uc *movement.UseCase) *ShipmentHandler {
	return &ShipmentHandler{uc: uc}
}

// Create godoc
// @Summary      Enregistrer une expédition
// @Tags         expeditions
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateShipmentRequest  true  "Expédition"
// @Success      201   {object}  dto.ShipmentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/expeditions [post]
func (h *ShipmentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateShipmentRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if ok, err := validateStruct(c, in); !ok {
		return err
	}
	ship, err := h.uc.Ship(c.Context(), movement.ShipInput{
		OrderNumber: in.OrderNumber,
		Reference:   in.Reference,
		Quantity:    in.Quantity,
		Customer:    in.Customer,
		Location:    in.Location,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromShipment(ship))
}

// List godoc
// @Summary      Dernières expéditions
// @Tags         expeditions
// @Produce      json
// @Param        limit  query  int  false  "Limite"  default(20)
// @Success      200  {array}  dto.ShipmentResponse
// @Router       /api/expeditions [get]
func (h *ShipmentHandler) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)
	if limit <= 0 || limit > 500 {
		limit = 20
	}
	list, err := h.uc.RecentShipments(limit)
	if err != nil {
		return writeError(c, err)
	}
	out := make([]dto.ShipmentResponse, 0, len(list))
	for _, s := range list {
		out = append(out, dto.FromShipment(s))
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Supprimer une expédition du journal (le stock n'est pas réajusté)
// @Tags         expeditions
// @Produce      json
// @Param        numero  path  string  true  "Numéro de commande"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/expeditions/{numero} [delete]
func (h *ShipmentHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.DeleteMovement(entity.MovementKindShipment, c.Params("numero")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "expédition supprimée"})
}

// Clear godoc
// @Summary      Vider le journal des expéditions
// @Tags         expeditions
// @Produce      json
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/expeditions [delete]
func (h *ShipmentHandler) Clear(c *fiber.Ctx) error {
	if err := h.uc.ClearMovements(entity.MovementKindShipment); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "journal des expéditions vidé"})
}
