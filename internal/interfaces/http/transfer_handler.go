package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gestistock/wms-api/internal/application/dto"
	"github.com/gestistock/wms-api/internal/application/movement"
	"github.com/gestistock/wms-api/internal/domain/entity"
)

// TransferHandler gère les requêtes HTTP des transferts internes.
type TransferHandler struct {
	uc *movement.UseCase
}

// NewTransferHandler construit le handler.
func NewTransferHandler(uc *movement.UseCase) *TransferHandler {
	return &TransferHandler{uc: uc}
}

// Create godoc
// @Summary      Exécuter un transfert entre deux emplacements
// @Tags         transferts
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTransferRequest  true  "Transfert"
// @Success      201   {object}  dto.TransferResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/transferts [post]
func (h *TransferHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTransferRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if ok, err := validateStruct(c, in); !ok {
		return err
	}
	tr, err := h.uc.Transfer(c.Context(), movement.TransferInput{
		Reference:      in.Reference,
		Quantity:       in.Quantity,
		SourceLocation: in.SourceLocation,
		DestLocation:   in.DestLocation,
		Reason:         in.Reason,
		User:           in.User,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromTransfer(tr))
}

// List godoc
// @Summary      Derniers transferts
// @Tags         transferts
// @Produce      json
// @Param        limit  query  int  false  "Limite"  default(20)
// @Success      200  {array}  dto.TransferResponse
// @Router       /api/transferts [get]
func (h *TransferHandler) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)
	if limit <= 0 || limit > 500 {
		limit = 20
	}
	list, err := h.uc.RecentTransfers(limit)
	if err != nil {
		return writeError(c, err)
	}
	out := make([]dto.TransferResponse, 0, len(list))
	for _, t := range list {
		out = append(out, dto.FromTransfer(t))
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Supprimer un transfert du journal (le stock n'est pas réajusté)
// @Tags         transferts
// @Produce      json
// @Param        id  path  string  true  "ID du transfert"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/transferts/{id} [delete]
func (h *TransferHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.DeleteMovement(entity.MovementKindTransfer, c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "transfert supprimé"})
}

// Clear godoc
// @Summary      Vider le journal des transferts
// @Tags         transferts
// @Produce      json
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/transferts [delete]
func (h *TransferHandler) Clear(c *fiber.Ctx) error {
	if err := h.uc.ClearMovements(entity.MovementKindTransfer); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "journal des transferts vidé"})
}
