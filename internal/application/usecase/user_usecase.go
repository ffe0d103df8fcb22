// Package usecase regroupe les cas d'usage transverses : opérateurs,
// paramètres et maintenance.
package usecase

import (
	"fmt"
	"strings"

	"github.com/gestistock/wms-api/internal/domain"
	"github.com/gestistock/wms-api/internal/domain/entity"
	"github.com/gestistock/wms-api/internal/domain/repository"
)

// UserUseCase registre minimal des opérateurs. Pas de mot de passe ni de
// logique de permissions : le rôle est informatif.
type UserUseCase struct {
	userRepo repository.UserRepository
}

// NewUserUseCase construit le cas d'usage des opérateurs.
func NewUserUseCase(userRepo repository.UserRepository) *UserUseCase {
	return &UserUseCase{userRepo: userRepo}
}

// CreateUserInput paramètres de création d'un opérateur.
type CreateUserInput struct {
	Name  string
	Email string
	Role  string
}

// Create enregistre un opérateur. Email unique : ErrDuplicate s'il est déjà
// utilisé.
func (uc *UserUseCase) Create(in CreateUserInput) (*entity.User, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: nom", domain.ErrInvalidInput)
	}
	email := strings.TrimSpace(strings.ToLower(in.Email))
	if email == "" {
		return nil, fmt.Errorf("%w: email", domain.ErrInvalidInput)
	}

	u := &entity.User{
		Name:   name,
		Email:  email,
		Role:   strings.TrimSpace(in.Role),
		Active: true,
	}
	if err := uc.userRepo.Create(u); err != nil {
		return nil, err
	}
	return u, nil
}

// List renvoie tous les opérateurs.
func (uc *UserUseCase) List() ([]*entity.User, error) {
	return uc.userRepo.List()
}

// Delete supprime l'opérateur par son nom, ErrNotFound s'il n'existe pas.
func (uc *UserUseCase) Delete(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: nom", domain.ErrInvalidInput)
	}
	return uc.userRepo.DeleteByName(name)
}
