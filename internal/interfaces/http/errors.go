package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/gestistock/wms-api/internal/application/dto"
	"github.com/gestistock/wms-api/internal/domain"
)

// writeError traduit une erreur métier en réponse HTTP. Les erreurs
// sentinelles sont reconnues même enrichies via fmt.Errorf("%w: ...").
func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidQuantity):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "QUANTITE_INVALIDE", Message: err.Error()})
	case errors.Is(err, domain.ErrMissingLocation):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "EMPLACEMENT_REQUIS", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidTransfer):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "TRANSFERT_INVALIDE", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "ENTREE_INVALIDE", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "INTROUVABLE", Message: err.Error()})
	case errors.Is(err, domain.ErrLocationMismatch):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "EMPLACEMENT_INCONNU", Message: err.Error()})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "STOCK_INSUFFISANT", Message: err.Error()})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DOUBLON", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNE", Message: err.Error()})
	}
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "CORPS_INVALIDE", Message: "corps de requête invalide"})
}
