package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gestistock/wms-api/internal/domain/entity"
	"github.com/gestistock/wms-api/internal/domain/repository"
)

var _ repository.ReportingRepository = (*ReportingRepo)(nil)

// ReportingRepo consultations de lecture seule pour les KPIs et les vues
// agrégées. Chaque appel relit l'état courant du grand livre ; aucun cache.
type ReportingRepo struct {
	pool *pgxpool.Pool
}

// NewReportingRepository construit l'adaptateur de reporting.
func NewReportingRepository(pool *pgxpool.Pool) *ReportingRepo {
	return &ReportingRepo{pool: pool}
}

func (r *ReportingRepo) scanCount(ctx context.Context, name, query string, args ...any) (int64, error) {
	var n int64
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("reporting.%s: %w", name, err)
	}
	return n, nil
}

// TotalStock somme des quantités strictement positives.
func (r *ReportingRepo) TotalStock(ctx context.Context) (int64, error) {
	return r.scanCount(ctx, "TotalStock",
		`SELECT COALESCE(SUM(quantite), 0) FROM stocks WHERE quantite > 0`)
}

// ActiveReferences nombre de références distinctes avec stock > 0.
func (r *ReportingRepo) ActiveReferences(ctx context.Context) (int64, error) {
	return r.scanCount(ctx, "ActiveReferences",
		`SELECT COUNT(DISTINCT reference) FROM stocks WHERE quantite > 0`)
}

// TotalLots nombre de lots distincts renseignés sur des lignes à quantité
// positive. Comptage exact par lot, pas d'estimation.
func (r *ReportingRepo) TotalLots(ctx context.Context) (int64, error) {
	return r.scanCount(ctx, "TotalLots",
		`SELECT COUNT(DISTINCT lot) FROM stocks WHERE lot IS NOT NULL AND quantite > 0`)
}

// ExpiredLots nombre de lots distincts dont la date d'expiration est passée.
func (r *ReportingRepo) ExpiredLots(ctx context.Context) (int64, error) {
	return r.scanCount(ctx, "ExpiredLots", `
		SELECT COUNT(DISTINCT lot) FROM stocks
		WHERE lot IS NOT NULL AND date_expiration IS NOT NULL AND date_expiration < now()`)
}

// DistinctReferences nombre total de références du grand livre.
func (r *ReportingRepo) DistinctReferences(ctx context.Context) (int64, error) {
	return r.scanCount(ctx, "DistinctReferences",
		`SELECT COUNT(DISTINCT reference) FROM stocks`)
}

// OutOfStockReferences références dont le solde agrégé est nul.
func (r *ReportingRepo) OutOfStockReferences(ctx context.Context) (int64, error) {
	return r.scanCount(ctx, "OutOfStockReferences", `
		SELECT COUNT(*) FROM (
			SELECT reference FROM stocks
			GROUP BY reference
			HAVING SUM(quantite) = 0
		) ruptures`)
}

// TotalQuantity somme brute des quantités (valorisation du stock).
func (r *ReportingRepo) TotalQuantity(ctx context.Context) (int64, error) {
	return r.scanCount(ctx, "TotalQuantity",
		`SELECT COALESCE(SUM(quantite), 0) FROM stocks`)
}

// ReceptionsOn nombre de réceptions du jour indiqué (format YYYY-MM-DD).
func (r *ReportingRepo) ReceptionsOn(ctx context.Context, day string) (int64, error) {
	return r.scanCount(ctx, "ReceptionsOn",
		`SELECT COUNT(*) FROM receptions WHERE date_reception::date = $1::date`, day)
}

// PendingShipments nombre d'expéditions encore en préparation.
func (r *ReportingRepo) PendingShipments(ctx context.Context) (int64, error) {
	return r.scanCount(ctx, "PendingShipments",
		`SELECT COUNT(*) FROM expeditions WHERE statut = $1`, entity.ShipmentStatusPreparing)
}

// TopReferences renvoie les `limit` références au plus grand solde agrégé.
func (r *ReportingRepo) TopReferences(ctx context.Context, limit int) ([]repository.ReferenceQuantity, error) {
	const query = `
		SELECT reference, MIN(designation) AS designation, SUM(quantite) AS quantite
		FROM stocks
		GROUP BY reference
		ORDER BY SUM(quantite) DESC
		LIMIT $1`
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("reporting.TopReferences: %w", err)
	}
	defer rows.Close()
	var results []repository.ReferenceQuantity
	for rows.Next() {
		var item repository.ReferenceQuantity
		if err := rows.Scan(&item.Reference, &item.Designation, &item.Quantity); err != nil {
			return nil, fmt.Errorf("reporting.TopReferences scan: %w", err)
		}
		results = append(results, item)
	}
	return results, rows.Err()
}

// DistributionByLocation répartition du stock par emplacement, du plus
// garni au moins garni.
func (r *ReportingRepo) DistributionByLocation(ctx context.Context) ([]repository.LocationQuantity, error) {
	const query = `
		SELECT emplacement, SUM(quantite) AS quantite
		FROM stocks
		GROUP BY emplacement
		ORDER BY SUM(quantite) DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("reporting.DistributionByLocation: %w", err)
	}
	defer rows.Close()
	var results []repository.LocationQuantity
	for rows.Next() {
		var item repository.LocationQuantity
		if err := rows.Scan(&item.Location, &item.Quantity); err != nil {
			return nil, fmt.Errorf("reporting.DistributionByLocation scan: %w", err)
		}
		results = append(results, item)
	}
	return results, rows.Err()
}

// DistributionByZone répartition du stock par zone d'entreposage. Les
// emplacements inconnus de l'annuaire sont regroupés sous "Hors zone".
func (r *ReportingRepo) DistributionByZone(ctx context.Context) ([]repository.ZoneQuantity, error) {
	const query = `
		SELECT COALESCE(e.zone, 'Hors zone') AS zone, SUM(s.quantite) AS quantite
		FROM stocks s
		LEFT JOIN emplacements e ON e.code = s.emplacement
		GROUP BY COALESCE(e.zone, 'Hors zone')
		ORDER BY SUM(s.quantite) DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("reporting.DistributionByZone: %w", err)
	}
	defer rows.Close()
	var results []repository.ZoneQuantity
	for rows.Next() {
		var item repository.ZoneQuantity
		if err := rows.Scan(&item.Zone, &item.Quantity); err != nil {
			return nil, fmt.Errorf("reporting.DistributionByZone scan: %w", err)
		}
		results = append(results, item)
	}
	return results, rows.Err()
}

// Movements journal unifié des mouvements : union des réceptions,
// expéditions et transferts, le plus récent d'abord.
func (r *ReportingRepo) Movements(ctx context.Context, limit int) ([]entity.Movement, error) {
	const query = `
		SELECT 'RECEPTION' AS type, id::TEXT AS cle, reference, quantite, emplacement, fournisseur AS contrepartie, date_creation AS date
		FROM receptions
		UNION ALL
		SELECT 'EXPEDITION', numero_commande, reference, quantite, emplacement, client, date_creation
		FROM expeditions
		UNION ALL
		SELECT 'TRANSFERT', id::TEXT, reference, quantite, emplacement_source, emplacement_destination, date_transfert
		FROM transferts
		ORDER BY date DESC
		LIMIT $1`
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("reporting.Movements: %w", err)
	}
	defer rows.Close()
	var results []entity.Movement
	for rows.Next() {
		var m entity.Movement
		if err := rows.Scan(&m.Kind, &m.Key, &m.Reference, &m.Quantity,
			&m.Location, &m.Counterparty, &m.Date); err != nil {
			return nil, fmt.Errorf("reporting.Movements scan: %w", err)
		}
		results = append(results, m)
	}
	return results, rows.Err()
}
