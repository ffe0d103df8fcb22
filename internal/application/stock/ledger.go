// Package stock implémente le grand livre : l'état autoritaire des
// quantités par couple (référence, emplacement).
package stock

import (
	"fmt"
	"time"

	"github.com/gestistock/wms-api/internal/domain"
	"github.com/gestistock/wms-api/internal/domain/entity"
	"github.com/gestistock/wms-api/internal/domain/repository"
)

// DefaultLocation emplacement sentinelle pour les entrées sans emplacement.
const DefaultLocation = "LIBRE"

// GeneratedReference fabrique une référence de repli horodatée.
func GeneratedReference() string {
	return fmt.Sprintf("REF_%d", time.Now().Unix())
}

// IncreaseInput paramètres d'un crédit du grand livre.
type IncreaseInput struct {
	Reference      string
	Location       string // vide -> DefaultLocation
	Quantity       int64
	Designation    string // vide -> "Produit <ref>"
	Lot            *string
	ExpirationDate *time.Time
}

// Increase crédite le couple (référence, emplacement) : complète la ligne
// la plus ancienne si elle existe, sinon crée une nouvelle ligne avec les
// métadonnées fournies. Les primitives sont pensées pour être appelées avec
// un dépôt lié à la transaction du mouvement appelant.
func Increase(repo repository.StockRepository, in IncreaseInput) error {
	if in.Quantity < 0 {
		return fmt.Errorf("%w: %d", domain.ErrInvalidQuantity, in.Quantity)
	}
	if in.Location == "" {
		in.Location = DefaultLocation
	}

	lines, err := repo.ListLines(in.Reference, in.Location)
	if err != nil {
		return err
	}
	if len(lines) > 0 {
		// Les doublons (référence, emplacement) sont légaux : on complète
		// la ligne la plus ancienne.
		return repo.UpdateQuantity(lines[0].ID, lines[0].Quantity+in.Quantity)
	}

	designation := in.Designation
	if designation == "" {
		designation = "Produit " + in.Reference
	}
	return repo.Insert(&entity.StockLine{
		Reference:      in.Reference,
		Designation:    designation,
		Quantity:       in.Quantity,
		Location:       in.Location,
		Lot:            in.Lot,
		ExpirationDate: in.ExpirationDate,
	})
}

// Decrease débite le couple (référence, emplacement). Échoue avec
// ErrInsufficientStock si aucune ligne n'existe ou si le solde agrégé est
// inférieur à la quantité, avant toute écriture. Les lignes sont consommées
// de la plus ancienne à la plus récente ; une ligne à zéro est conservée.
func Decrease(repo repository.StockRepository, reference, location string, quantity int64) error {
	if quantity < 0 {
		return fmt.Errorf("%w: %d", domain.ErrInvalidQuantity, quantity)
	}

	lines, err := repo.ListLines(reference, location)
	if err != nil {
		return err
	}
	var balance int64
	for _, l := range lines {
		balance += l.Quantity
	}
	if len(lines) == 0 || balance < quantity {
		return fmt.Errorf("%w: %s à %s: disponible %d, demandé %d",
			domain.ErrInsufficientStock, reference, location, balance, quantity)
	}

	remaining := quantity
	for _, l := range lines {
		if remaining == 0 {
			break
		}
		take := l.Quantity
		if take > remaining {
			take = remaining
		}
		if take == 0 {
			continue
		}
		if err := repo.UpdateQuantity(l.ID, l.Quantity-take); err != nil {
			return err
		}
		remaining -= take
	}
	return nil
}

// Balance renvoie le solde agrégé du couple ; 0 si aucune ligne.
func Balance(repo repository.StockRepository, reference, location string) (int64, error) {
	return repo.SumQuantity(reference, location)
}
