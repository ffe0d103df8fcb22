package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gestistock/wms-api/internal/application/dto"
	"github.com/gestistock/wms-api/internal/application/usecase"
)

// UserHandler gère les requêtes HTTP des opérateurs.
type UserHandler struct {
	uc *usecase.UserUseCase
}

// NewUserHandler construit le handler.
func NewUserHandler(uc *usecase.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// Create godoc
// @Summary      Créer un opérateur
// @Tags         utilisateurs
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateUserRequest  true  "Opérateur"
// @Success      201   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/utilisateurs [post]
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if ok, err := validateStruct(c, in); !ok {
		return err
	}
	u, err := h.uc.Create(usecase.CreateUserInput{Name: in.Name, Email: in.Email, Role: in.Role})
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromUser(u))
}

// List godoc
// @Summary      Lister les opérateurs
// @Tags         utilisateurs
// @Produce      json
// @Success      200  {array}  dto.UserResponse
// @Router       /api/utilisateurs [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.FromUsers(list))
}

// Delete godoc
// @Summary      Supprimer un opérateur par son nom
// @Tags         utilisateurs
// @Produce      json
// @Param        nom  path  string  true  "Nom de l'opérateur"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/utilisateurs/{nom} [delete]
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("nom")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "opérateur supprimé"})
}
