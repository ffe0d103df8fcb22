package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/gestistock/wms-api/internal/application/dto"
	"github.com/gestistock/wms-api/internal/application/movement"
	"github.com/gestistock/wms-api/internal/domain/entity"
)

// ReceptionHandler gère les requêtes HTTP des réceptions.
type ReceptionHandler struct {
	uc *movement.UseCase
}

// NewReceptionHandler construit le handler.
func NewReceptionHandler(uc *movement.UseCase) *ReceptionHandler {
	return &ReceptionHandler{uc: uc}
}

// Create godoc
// @Summary      Enregistrer une réception
// @Tags         receptions
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateReceptionRequest  true  "Réception"
// @Success      201   {object}  dto.ReceptionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/receptions [post]
func (h *ReceptionHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateReceptionRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if ok, err := validateStruct(c, in); !ok {
		return err
	}
	var date time.Time
	if in.Date != nil {
		date = *in.Date
	}
	rec, err := h.uc.Receive(c.Context(), movement.ReceiveInput{
		Reference: in.Reference,
		Quantity:  in.Quantity,
		Supplier:  in.Supplier,
		Date:      date,
		Location:  in.Location,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromReception(rec))
}

// List godoc
// @Summary      Dernières réceptions
// @Tags         receptions
// @Produce      json
// @Param        limit  query  int  false  "Limite"  default(20)
// @Success      200  {array}  dto.ReceptionResponse
// @Router       /api/receptions [get]
func (h *ReceptionHandler) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)
	if limit <= 0 || limit > 500 {
		limit = 20
	}
	list, err := h.uc.RecentReceptions(limit)
	if err != nil {
		return writeError(c, err)
	}
	out := make([]dto.ReceptionResponse, 0, len(list))
	for _, r := range list {
		out = append(out, dto.FromReception(r))
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Supprimer une réception du journal (le stock n'est pas réajusté)
// @Tags         receptions
// @Produce      json
// @Param        id  path  string  true  "ID de la réception"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/receptions/{id} [delete]
func (h *ReceptionHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.DeleteMovement(entity.MovementKindReception, c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "réception supprimée"})
}

// Clear godoc
// @Summary      Vider le journal des réceptions
// @Tags         receptions
// @Produce      json
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/receptions [delete]
func (h *ReceptionHandler) Clear(c *fiber.Ctx) error {
	if err := h.uc.ClearMovements(entity.MovementKindReception); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "journal des réceptions vidé"})
}
