package stock

import (
	"fmt"
	"strings"
	"time"

	"github.com/gestistock/wms-api/internal/domain"
	"github.com/gestistock/wms-api/internal/domain/entity"
	"github.com/gestistock/wms-api/internal/domain/repository"
)

// UseCase opérations du grand livre hors transaction de mouvement :
// consultation, ajout manuel, import, suppression.
type UseCase struct {
	stockRepo repository.StockRepository
}

// NewUseCase construit le cas d'usage du grand livre.
func NewUseCase(stockRepo repository.StockRepository) *UseCase {
	return &UseCase{stockRepo: stockRepo}
}

// GetBalance renvoie le solde agrégé du couple (référence, emplacement) ;
// 0 si aucune ligne.
func (uc *UseCase) GetBalance(reference, location string) (int64, error) {
	return Balance(uc.stockRepo, reference, location)
}

// AddItemInput paramètres d'un ajout manuel au stock.
type AddItemInput struct {
	Reference      string
	Designation    string
	Quantity       int64
	Location       string
	Lot            *string
	ExpirationDate *time.Time
}

// AddItem crée une nouvelle ligne de stock (ajustement manuel). Les champs
// vides reçoivent les valeurs de repli : référence horodatée, désignation
// dérivée, emplacement "LIBRE". Une nouvelle ligne est toujours insérée,
// même si le couple existe déjà — comportement hérité de la saisie manuelle.
func (uc *UseCase) AddItem(in AddItemInput) (*entity.StockLine, error) {
	if in.Quantity < 0 {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidQuantity, in.Quantity)
	}
	ref := strings.TrimSpace(in.Reference)
	if ref == "" {
		ref = GeneratedReference()
	}
	designation := strings.TrimSpace(in.Designation)
	if designation == "" {
		designation = "Article " + ref
	}
	location := strings.TrimSpace(in.Location)
	if location == "" {
		location = DefaultLocation
	}

	line := &entity.StockLine{
		Reference:      ref,
		Designation:    designation,
		Quantity:       in.Quantity,
		Location:       location,
		Lot:            in.Lot,
		ExpirationDate: in.ExpirationDate,
	}
	if err := uc.stockRepo.Insert(line); err != nil {
		return nil, err
	}
	return line, nil
}

// List renvoie les lignes de stock selon le filtre.
func (uc *UseCase) List(filter repository.StockFilter) ([]*entity.StockLine, error) {
	return uc.stockRepo.List(filter)
}

// References renvoie les références distinctes du grand livre.
func (uc *UseCase) References() ([]string, error) {
	return uc.stockRepo.References()
}

// DeleteReference supprime toutes les lignes de la référence.
func (uc *UseCase) DeleteReference(reference string) error {
	if strings.TrimSpace(reference) == "" {
		return fmt.Errorf("%w: référence", domain.ErrInvalidInput)
	}
	return uc.stockRepo.DeleteByReference(reference)
}

// ClearAll vide le grand livre. Idempotent : vider un livre vide réussit.
func (uc *UseCase) ClearAll() error {
	return uc.stockRepo.DeleteAll()
}
