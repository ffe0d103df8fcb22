package repository

import "github.com/gestistock/wms-api/internal/domain/entity"

// TransferRepository port du journal des transferts. Utilisable avec pool ou tx.
type TransferRepository interface {
	Create(t *entity.Transfer) error
	ListRecent(limit int) ([]*entity.Transfer, error)
	// Delete renvoie domain.ErrNotFound si l'id n'existe pas.
	Delete(id int64) error
	DeleteAll() error
}
