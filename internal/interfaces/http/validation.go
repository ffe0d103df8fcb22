package http

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/gestistock/wms-api/internal/application/dto"
)

var validate = validator.New()

// validateStruct applique les tags validate et écrit une 400 détaillée en
// cas d'échec. Renvoie true si la requête est valide.
func validateStruct(c *fiber.Ctx, v any) (bool, error) {
	err := validate.Struct(v)
	if err == nil {
		return true, nil
	}
	var fields []string
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, e := range verrs {
			fields = append(fields, e.Field()+": "+ruleMessage(e))
		}
	} else {
		fields = append(fields, err.Error())
	}
	return false, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Code:    "VALIDATION",
		Message: strings.Join(fields, "; "),
	})
}

func ruleMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "champ requis"
	case "email":
		return "email invalide"
	case "min":
		return "minimum " + e.Param()
	case "max":
		return "maximum " + e.Param()
	default:
		return "valeur invalide"
	}
}
