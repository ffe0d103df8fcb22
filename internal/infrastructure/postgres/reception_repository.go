package postgres

import (
	"context"
	"fmt"

	"github.com/gestistock/wms-api/internal/domain"
	"github.com/gestistock/wms-api/internal/domain/entity"
	"github.com/gestistock/wms-api/internal/domain/repository"
)

var _ repository.ReceptionRepository = (*ReceptionRepo)(nil)

// ReceptionRepo implémentation du journal des réceptions (pool ou tx).
type ReceptionRepo struct {
	q Querier
}

// NewReceptionRepository construit l'adaptateur. Passer pool ou tx (Querier).
func NewReceptionRepository(q Querier) *ReceptionRepo {
	return &ReceptionRepo{q: q}
}

// Create persiste une réception. Statut par défaut : "En cours".
func (r *ReceptionRepo) Create(rec *entity.Reception) error {
	if rec.Status == "" {
		rec.Status = entity.ReceptionStatusPending
	}
	query := `
		INSERT INTO receptions (reference, quantite, fournisseur, date_reception, emplacement, statut)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, date_creation`
	err := r.q.QueryRow(context.Background(), query,
		rec.Reference, rec.Quantity, rec.Supplier, rec.ReceptionDate, rec.Location, rec.Status,
	).Scan(&rec.ID, &rec.CreatedAt)
	if err != nil {
		return fmt.Errorf("create réception: %w", err)
	}
	return nil
}

// ListRecent renvoie les dernières réceptions, la plus récente d'abord.
func (r *ReceptionRepo) ListRecent(limit int) ([]*entity.Reception, error) {
	query := `
		SELECT id, reference, quantite, fournisseur, date_reception, emplacement, statut, date_creation
		FROM receptions
		ORDER BY date_creation DESC
		LIMIT $1`
	rows, err := r.q.Query(context.Background(), query, limit)
	if err != nil {
		return nil, fmt.Errorf("list réceptions: %w", err)
	}
	defer rows.Close()
	var list []*entity.Reception
	for rows.Next() {
		var rec entity.Reception
		if err := rows.Scan(&rec.ID, &rec.Reference, &rec.Quantity, &rec.Supplier,
			&rec.ReceptionDate, &rec.Location, &rec.Status, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan réception: %w", err)
		}
		list = append(list, &rec)
	}
	return list, rows.Err()
}

// Delete supprime une réception du journal. Ne réajuste jamais le stock.
func (r *ReceptionRepo) Delete(id int64) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM receptions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete réception %d: %w", id, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%w: réception %d", domain.ErrNotFound, id)
	}
	return nil
}

// DeleteAll vide le journal des réceptions.
func (r *ReceptionRepo) DeleteAll() error {
	if _, err := r.q.Exec(context.Background(), `DELETE FROM receptions`); err != nil {
		return fmt.Errorf("vider les réceptions: %w", err)
	}
	return nil
}
