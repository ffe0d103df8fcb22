package repository

import (
	"context"

	"github.com/gestistock/wms-api/internal/domain/entity"
)

// ReferenceQuantity quantité agrégée par référence (top-N).
type ReferenceQuantity struct {
	Reference   string
	Designation string
	Quantity    int64
}

// LocationQuantity répartition du stock par emplacement.
type LocationQuantity struct {
	Location string
	Quantity int64
}

// ZoneQuantity répartition du stock par zone d'entreposage.
type ZoneQuantity struct {
	Zone     string
	Quantity int64
}

// ReportingRepository consultations de lecture seule pour les KPIs et les vues
// agrégées. Chaque appel relit l'état courant ; aucun cache.
type ReportingRepository interface {
	// TotalStock somme des quantités strictement positives.
	TotalStock(ctx context.Context) (int64, error)
	// ActiveReferences nombre de références distinctes avec stock > 0.
	ActiveReferences(ctx context.Context) (int64, error)
	// TotalLots nombre de lots distincts renseignés sur des lignes à
	// quantité positive.
	TotalLots(ctx context.Context) (int64, error)
	// ExpiredLots nombre de lots distincts dont la date d'expiration est
	// passée.
	ExpiredLots(ctx context.Context) (int64, error)
	// DistinctReferences / OutOfStockReferences servent au taux de rupture.
	DistinctReferences(ctx context.Context) (int64, error)
	OutOfStockReferences(ctx context.Context) (int64, error)
	// TotalQuantity somme brute des quantités (valorisation du stock).
	TotalQuantity(ctx context.Context) (int64, error)

	ReceptionsOn(ctx context.Context, day string) (int64, error)
	PendingShipments(ctx context.Context) (int64, error)

	TopReferences(ctx context.Context, limit int) ([]ReferenceQuantity, error)
	DistributionByLocation(ctx context.Context) ([]LocationQuantity, error)
	DistributionByZone(ctx context.Context) ([]ZoneQuantity, error)

	// Movements journal unifié (réceptions ∪ expéditions ∪ transferts),
	// le plus récent d'abord.
	Movements(ctx context.Context, limit int) ([]entity.Movement, error)
}
