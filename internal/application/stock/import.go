package stock

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ImportRow ligne fournie par le collaborateur d'import de fichiers
// (CSV/Excel déjà décodé en amont ; le cœur ne lit aucun fichier).
type ImportRow struct {
	Reference      string
	Designation    string
	Quantity       int64
	Location       string
	Lot            *string
	ExpirationDate *time.Time
}

// ImportResult bilan d'un lot d'import.
type ImportResult struct {
	BatchID string
	Applied int
}

// ImportRows applique les lignes une à une via le grand livre, avec les
// mêmes valeurs de repli que l'ajout manuel. S'arrête à la première erreur
// et renvoie le nombre de lignes déjà appliquées.
func (uc *UseCase) ImportRows(rows []ImportRow) (ImportResult, error) {
	res := ImportResult{BatchID: uuid.New().String()}
	for i, row := range rows {
		ref := strings.TrimSpace(row.Reference)
		if ref == "" {
			ref = GeneratedReference()
		}
		designation := strings.TrimSpace(row.Designation)
		if designation == "" {
			designation = "Article " + ref
		}
		err := Increase(uc.stockRepo, IncreaseInput{
			Reference:      ref,
			Location:       strings.TrimSpace(row.Location),
			Quantity:       row.Quantity,
			Designation:    designation,
			Lot:            row.Lot,
			ExpirationDate: row.ExpirationDate,
		})
		if err != nil {
			res.Applied = i
			return res, err
		}
	}
	res.Applied = len(rows)
	return res, nil
}
