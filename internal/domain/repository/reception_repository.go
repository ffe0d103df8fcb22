package repository

import "github.com/gestistock/wms-api/internal/domain/entity"

// ReceptionRepository port du journal des réceptions. Utilisable avec pool ou tx.
type ReceptionRepository interface {
	Create(r *entity.Reception) error
	ListRecent(limit int) ([]*entity.Reception, error)
	// Delete renvoie domain.ErrNotFound si l'id n'existe pas.
	Delete(id int64) error
	DeleteAll() error
}
