// Package location gère l'annuaire des emplacements de l'entrepôt.
package location

import (
	"fmt"
	"strings"

	"github.com/gestistock/wms-api/internal/domain"
	"github.com/gestistock/wms-api/internal/domain/entity"
	"github.com/gestistock/wms-api/internal/domain/repository"
)

// UseCase cas d'usage des emplacements.
type UseCase struct {
	locationRepo repository.LocationRepository
}

// NewUseCase construit le cas d'usage des emplacements.
func NewUseCase(locationRepo repository.LocationRepository) *UseCase {
	return &UseCase{locationRepo: locationRepo}
}

// CreateInput paramètres de création d'un emplacement.
type CreateInput struct {
	Code        string
	Zone        string
	MaxCapacity *int64
}

// Create enregistre un emplacement. Code unique : ErrDuplicate s'il existe
// déjà. La capacité utilisée démarre à zéro.
func (uc *UseCase) Create(in CreateInput) (*entity.Location, error) {
	code := strings.TrimSpace(in.Code)
	if code == "" {
		return nil, fmt.Errorf("%w: code", domain.ErrInvalidInput)
	}
	if in.MaxCapacity != nil && *in.MaxCapacity < 0 {
		return nil, fmt.Errorf("%w: capacité %d", domain.ErrInvalidInput, *in.MaxCapacity)
	}

	loc := &entity.Location{
		Code:        code,
		Zone:        strings.TrimSpace(in.Zone),
		MaxCapacity: in.MaxCapacity,
		Status:      entity.LocationStatusAvailable,
	}
	if err := uc.locationRepo.Create(loc); err != nil {
		return nil, err
	}
	return loc, nil
}

// Get renvoie l'emplacement du code, ErrNotFound s'il n'existe pas.
func (uc *UseCase) Get(code string) (*entity.Location, error) {
	return uc.locationRepo.GetByCode(code)
}

// List renvoie tous les emplacements.
func (uc *UseCase) List() ([]*entity.Location, error) {
	return uc.locationRepo.List()
}

// AvailableCodes renvoie les codes dont la capacité n'est pas atteinte.
func (uc *UseCase) AvailableCodes() ([]string, error) {
	return uc.locationRepo.ListAvailableCodes()
}

// Stats renvoie l'occupation globale des emplacements.
func (uc *UseCase) Stats() (repository.LocationStats, error) {
	return uc.locationRepo.Stats()
}

// Delete supprime l'emplacement du code, ErrNotFound s'il n'existe pas.
func (uc *UseCase) Delete(code string) error {
	if strings.TrimSpace(code) == "" {
		return fmt.Errorf("%w: code", domain.ErrInvalidInput)
	}
	return uc.locationRepo.Delete(code)
}

// Clear vide l'annuaire des emplacements.
func (uc *UseCase) Clear() error {
	return uc.locationRepo.DeleteAll()
}
