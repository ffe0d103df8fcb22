package repository

import "github.com/gestistock/wms-api/internal/domain/entity"

// StockFilter critères de listage des lignes de stock.
type StockFilter struct {
	Search             string // texte libre sur reference/designation
	Location           string // emplacement exact, vide = tous
	LowStockBelow      int64  // > 0 : quantite < seuil
	ExpiringWithinDays int    // > 0 : date_expiration <= aujourd'hui + n jours
}

// StockRepository port du grand livre de stock (table stocks).
// Plusieurs lignes peuvent exister pour un même couple (reference,
// emplacement) ; les primitives travaillent ligne à ligne et laissent le
// cas d'usage agréger. Utilisable avec pool ou tx.
type StockRepository interface {
	// ListLines renvoie les lignes du couple (reference, emplacement),
	// la plus ancienne d'abord.
	ListLines(reference, location string) ([]*entity.StockLine, error)
	// SumQuantity renvoie le solde agrégé du couple ; 0 si aucune ligne.
	SumQuantity(reference, location string) (int64, error)
	Insert(line *entity.StockLine) error
	// UpdateQuantity remplace la quantité d'une ligne et met à jour
	// date_modification.
	UpdateQuantity(id int64, quantity int64) error
	// FirstDesignation renvoie la désignation d'une ligne existante de la
	// référence, tout emplacement confondu ; "" si aucune.
	FirstDesignation(reference string) (string, error)

	List(filter StockFilter) ([]*entity.StockLine, error)
	References() ([]string, error)
	ListBelowQuantity(threshold int64) ([]*entity.StockLine, error)
	ListExpiringWithin(days int) ([]*entity.StockLine, error)

	DeleteByReference(reference string) error
	DeleteAll() error
	// ClearLots efface lot et date_expiration sans toucher aux quantités.
	ClearLots() error
}
