package repository

import "github.com/gestistock/wms-api/internal/domain/entity"

// ShipmentRepository port du journal des expéditions. Utilisable avec pool ou tx.
type ShipmentRepository interface {
	Create(s *entity.Shipment) error
	ListRecent(limit int) ([]*entity.Shipment, error)
	// DeleteByOrderNumber supprime par numéro de commande (clé métier,
	// comportement hérité) ; domain.ErrNotFound si absent.
	DeleteByOrderNumber(orderNumber string) error
	DeleteAll() error
}
