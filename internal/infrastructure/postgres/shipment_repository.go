package postgres

import (
	"context"
	"fmt"

	"github.com/gestistock/wms-api/internal/domain"
	"github.com/gestistock/wms-api/internal/domain/entity"
	"github.com/gestistock/wms-api/internal/domain/repository"
)

var _ repository.ShipmentRepository = (*ShipmentRepo)(nil)

// ShipmentRepo implémentation du journal des expéditions (pool ou tx).
type ShipmentRepo struct {
	q Querier
}

// NewShipmentRepository construit l'adaptateur. Passer pool ou tx (Querier).
func NewShipmentRepository(q Querier) *ShipmentRepo {
	return &ShipmentRepo{q: q}
}

// Create persiste une expédition. Statut par défaut : "En préparation".
func (r *ShipmentRepo) Create(s *entity.Shipment) error {
	if s.Status == "" {
		s.Status = entity.ShipmentStatusPreparing
	}
	query := `
		INSERT INTO expeditions (numero_commande, reference, quantite, client, emplacement, date_expedition, statut)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, date_creation`
	err := r.q.QueryRow(context.Background(), query,
		s.OrderNumber, s.Reference, s.Quantity, s.Customer, s.Location, s.ShipmentDate, s.Status,
	).Scan(&s.ID, &s.CreatedAt)
	if err != nil {
		return fmt.Errorf("create expédition: %w", err)
	}
	return nil
}

// ListRecent renvoie les dernières expéditions, la plus récente d'abord.
func (r *ShipmentRepo) ListRecent(limit int) ([]*entity.Shipment, error) {
	query := `
		SELECT id, numero_commande, reference, quantite, client, emplacement, date_expedition, statut, date_creation
		FROM expeditions
		ORDER BY date_creation DESC
		LIMIT $1`
	rows, err := r.q.Query(context.Background(), query, limit)
	if err != nil {
		return nil, fmt.Errorf("list expéditions: %w", err)
	}
	defer rows.Close()
	var list []*entity.Shipment
	for rows.Next() {
		var s entity.Shipment
		if err := rows.Scan(&s.ID, &s.OrderNumber, &s.Reference, &s.Quantity, &s.Customer,
			&s.Location, &s.ShipmentDate, &s.Status, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan expédition: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// DeleteByOrderNumber supprime les expéditions du numéro de commande.
// Ne réajuste jamais le stock.
func (r *ShipmentRepo) DeleteByOrderNumber(orderNumber string) error {
	cmd, err := r.q.Exec(context.Background(),
		`DELETE FROM expeditions WHERE numero_commande = $1`, orderNumber)
	if err != nil {
		return fmt.Errorf("delete expédition %s: %w", orderNumber, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%w: commande %s", domain.ErrNotFound, orderNumber)
	}
	return nil
}

// DeleteAll vide le journal des expéditions.
func (r *ShipmentRepo) DeleteAll() error {
	if _, err := r.q.Exec(context.Background(), `DELETE FROM expeditions`); err != nil {
		return fmt.Errorf("vider les expéditions: %w", err)
	}
	return nil
}
