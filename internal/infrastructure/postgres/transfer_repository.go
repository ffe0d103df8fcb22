package postgres

import (
	"context"
	"fmt"

	"github.com/gestistock/wms-api/internal/domain"
	"github.com/gestistock/wms-api/internal/domain/entity"
	"github.com/gestistock/wms-api/internal/domain/repository"
)

var _ repository.TransferRepository = (*TransferRepo)(nil)

// TransferRepo implémentation du journal des transferts (pool ou tx).
type TransferRepo struct {
	q Querier
}

// NewTransferRepository construit l'adaptateur. Passer pool ou tx (Querier).
func NewTransferRepository(q Querier) *TransferRepo {
	return &TransferRepo{q: q}
}

// Create persiste un transfert.
func (r *TransferRepo) Create(t *entity.Transfer) error {
	query := `
		INSERT INTO transferts (reference, quantite, emplacement_source, emplacement_destination, motif, utilisateur)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, date_transfert`
	err := r.q.QueryRow(context.Background(), query,
		t.Reference, t.Quantity, t.SourceLocation, t.DestLocation, t.Reason, t.User,
	).Scan(&t.ID, &t.CreatedAt)
	if err != nil {
		return fmt.Errorf("create transfert: %w", err)
	}
	return nil
}

// ListRecent renvoie les derniers transferts, le plus récent d'abord.
func (r *TransferRepo) ListRecent(limit int) ([]*entity.Transfer, error) {
	query := `
		SELECT id, reference, quantite, emplacement_source, emplacement_destination, motif, utilisateur, date_transfert
		FROM transferts
		ORDER BY date_transfert DESC
		LIMIT $1`
	rows, err := r.q.Query(context.Background(), query, limit)
	if err != nil {
		return nil, fmt.Errorf("list transferts: %w", err)
	}
	defer rows.Close()
	var list []*entity.Transfer
	for rows.Next() {
		var t entity.Transfer
		if err := rows.Scan(&t.ID, &t.Reference, &t.Quantity, &t.SourceLocation,
			&t.DestLocation, &t.Reason, &t.User, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan transfert: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// Delete supprime un transfert du journal. Ne réajuste jamais le stock.
func (r *TransferRepo) Delete(id int64) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM transferts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete transfert %d: %w", id, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%w: transfert %d", domain.ErrNotFound, id)
	}
	return nil
}

// DeleteAll vide le journal des transferts.
func (r *TransferRepo) DeleteAll() error {
	if _, err := r.q.Exec(context.Background(), `DELETE FROM transferts`); err != nil {
		return fmt.Errorf("vider les transferts: %w", err)
	}
	return nil
}
