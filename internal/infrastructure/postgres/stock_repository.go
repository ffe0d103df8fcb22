package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/gestistock/wms-api/internal/domain/entity"
	"github.com/gestistock/wms-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

const stockColumns = `id, reference, designation, quantite, emplacement, lot, date_expiration, date_creation, date_modification`

// StockRepo implémentation de StockRepository sur PostgreSQL (pool ou tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construit l'adaptateur du grand livre. Passer pool ou tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

func scanStockLine(row pgx.Row) (*entity.StockLine, error) {
	var l entity.StockLine
	err := row.Scan(
		&l.ID, &l.Reference, &l.Designation, &l.Quantity, &l.Location,
		&l.Lot, &l.ExpirationDate, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func collectStockLines(rows pgx.Rows) ([]*entity.StockLine, error) {
	defer rows.Close()
	var list []*entity.StockLine
	for rows.Next() {
		l, err := scanStockLine(rows)
		if err != nil {
			return nil, fmt.Errorf("scan ligne de stock: %w", err)
		}
		list = append(list, l)
	}
	return list, rows.Err()
}

// ListLines renvoie les lignes du couple (reference, emplacement), la plus
// ancienne d'abord. Les doublons sont légaux : le schéma n'impose pas
// l'unicité du couple.
func (r *StockRepo) ListLines(reference, location string) ([]*entity.StockLine, error) {
	query := `
		SELECT ` + stockColumns + `
		FROM stocks WHERE reference = $1 AND emplacement = $2
		ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, reference, location)
	if err != nil {
		return nil, fmt.Errorf("list lignes de stock: %w", err)
	}
	return collectStockLines(rows)
}

// SumQuantity renvoie le solde agrégé du couple ; 0 si aucune ligne.
func (r *StockRepo) SumQuantity(reference, location string) (int64, error) {
	query := `
		SELECT COALESCE(SUM(quantite), 0)
		FROM stocks WHERE reference = $1 AND emplacement = $2`
	var sum int64
	if err := r.q.QueryRow(context.Background(), query, reference, location).Scan(&sum); err != nil {
		return 0, fmt.Errorf("solde de stock: %w", err)
	}
	return sum, nil
}

// Insert crée une nouvelle ligne de stock.
func (r *StockRepo) Insert(line *entity.StockLine) error {
	query := `
		INSERT INTO stocks (reference, designation, quantite, emplacement, lot, date_expiration)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, date_creation, date_modification`
	err := r.q.QueryRow(context.Background(), query,
		line.Reference, line.Designation, line.Quantity, line.Location,
		line.Lot, line.ExpirationDate,
	).Scan(&line.ID, &line.CreatedAt, &line.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert ligne de stock: %w", err)
	}
	return nil
}

// UpdateQuantity remplace la quantité d'une ligne et rafraîchit date_modification.
func (r *StockRepo) UpdateQuantity(id int64, quantity int64) error {
	query := `
		UPDATE stocks SET quantite = $2, date_modification = now()
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query, id, quantity)
	if err != nil {
		return fmt.Errorf("update quantité: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("update quantité: ligne %d introuvable", id)
	}
	return nil
}

// FirstDesignation renvoie la désignation d'une ligne existante de la
// référence, tout emplacement confondu ; "" si aucune.
func (r *StockRepo) FirstDesignation(reference string) (string, error) {
	query := `SELECT designation FROM stocks WHERE reference = $1 ORDER BY id LIMIT 1`
	var designation string
	err := r.q.QueryRow(context.Background(), query, reference).Scan(&designation)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("désignation de %s: %w", reference, err)
	}
	return designation, nil
}

// List renvoie les lignes selon le filtre (recherche texte, emplacement,
// stock faible, expiration proche).
func (r *StockRepo) List(filter repository.StockFilter) ([]*entity.StockLine, error) {
	query := `SELECT ` + stockColumns + ` FROM stocks WHERE 1=1`
	args := []any{}
	pos := 1

	if filter.Search != "" {
		query += fmt.Sprintf(" AND (reference ILIKE $%d OR designation ILIKE $%d)", pos, pos)
		args = append(args, "%"+filter.Search+"%")
		pos++
	}
	if filter.Location != "" {
		query += fmt.Sprintf(" AND emplacement = $%d", pos)
		args = append(args, filter.Location)
		pos++
	}
	if filter.LowStockBelow > 0 {
		query += fmt.Sprintf(" AND quantite < $%d", pos)
		args = append(args, filter.LowStockBelow)
		pos++
	}
	if filter.ExpiringWithinDays > 0 {
		query += fmt.Sprintf(" AND date_expiration IS NOT NULL AND date_expiration <= now() + $%d * INTERVAL '1 day'", pos)
		args = append(args, filter.ExpiringWithinDays)
		pos++
	}
	query += " ORDER BY reference, emplacement, id"

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stocks: %w", err)
	}
	return collectStockLines(rows)
}

// References renvoie les références distinctes, triées.
func (r *StockRepo) References() ([]string, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT DISTINCT reference FROM stocks ORDER BY reference`)
	if err != nil {
		return nil, fmt.Errorf("list références: %w", err)
	}
	defer rows.Close()
	var refs []string
	for rows.Next() {
		var ref string
		if err := rows.Scan(&ref); err != nil {
			return nil, fmt.Errorf("scan référence: %w", err)
		}
		refs = append(refs, ref)
	}
	return refs, rows.Err()
}

// ListBelowQuantity renvoie les lignes sous le seuil de stock faible.
func (r *StockRepo) ListBelowQuantity(threshold int64) ([]*entity.StockLine, error) {
	query := `
		SELECT ` + stockColumns + `
		FROM stocks WHERE quantite < $1
		ORDER BY quantite, reference`
	rows, err := r.q.Query(context.Background(), query, threshold)
	if err != nil {
		return nil, fmt.Errorf("list stock faible: %w", err)
	}
	return collectStockLines(rows)
}

// ListExpiringWithin renvoie les lignes dont la date d'expiration est
// renseignée et tombe d'ici n jours. Les lignes sans date n'alertent jamais.
func (r *StockRepo) ListExpiringWithin(days int) ([]*entity.StockLine, error) {
	query := `
		SELECT ` + stockColumns + `
		FROM stocks
		WHERE date_expiration IS NOT NULL
		  AND date_expiration <= now() + $1 * INTERVAL '1 day'
		ORDER BY date_expiration, reference`
	rows, err := r.q.Query(context.Background(), query, days)
	if err != nil {
		return nil, fmt.Errorf("list expirations proches: %w", err)
	}
	return collectStockLines(rows)
}

// DeleteByReference supprime toutes les lignes de la référence.
func (r *StockRepo) DeleteByReference(reference string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM stocks WHERE reference = $1`, reference)
	if err != nil {
		return fmt.Errorf("delete référence %s: %w", reference, err)
	}
	return nil
}

// DeleteAll vide le grand livre. Idempotent.
func (r *StockRepo) DeleteAll() error {
	if _, err := r.q.Exec(context.Background(), `DELETE FROM stocks`); err != nil {
		return fmt.Errorf("vider les stocks: %w", err)
	}
	return nil
}

// ClearLots efface les numéros de lot et dates d'expiration de toutes les
// lignes. Les quantités ne bougent pas.
func (r *StockRepo) ClearLots() error {
	if _, err := r.q.Exec(context.Background(),
		`UPDATE stocks SET lot = NULL, date_expiration = NULL, date_modification = now()`); err != nil {
		return fmt.Errorf("effacer les lots: %w", err)
	}
	return nil
}
