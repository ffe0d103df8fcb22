package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gestistock/wms-api/internal/domain"
	"github.com/gestistock/wms-api/internal/domain/entity"
	"github.com/gestistock/wms-api/internal/domain/repository"
)

var _ repository.LocationRepository = (*LocationRepo)(nil)

// LocationRepo implémentation de l'annuaire des emplacements sur PostgreSQL.
type LocationRepo struct {
	pool *pgxpool.Pool
}

// NewLocationRepository construit l'adaptateur de persistance des emplacements.
func NewLocationRepository(pool *pgxpool.Pool) *LocationRepo {
	return &LocationRepo{pool: pool}
}

// Create persiste un nouvel emplacement. Le code est unique.
func (r *LocationRepo) Create(l *entity.Location) error {
	if l.Status == "" {
		l.Status = entity.LocationStatusAvailable
	}
	query := `
		INSERT INTO emplacements (code, zone, capacite_max, capacite_utilisee, statut)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.pool.QueryRow(context.Background(), query,
		l.Code, l.Zone, l.MaxCapacity, l.UsedCapacity, l.Status,
	).Scan(&l.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: emplacement %s", domain.ErrDuplicate, l.Code)
		}
		return fmt.Errorf("insert emplacement: %w", err)
	}
	return nil
}

// GetByCode renvoie un emplacement par code ; nil si absent.
func (r *LocationRepo) GetByCode(code string) (*entity.Location, error) {
	query := `
		SELECT id, code, zone, capacite_max, capacite_utilisee, statut
		FROM emplacements WHERE code = $1`
	var l entity.Location
	err := r.pool.QueryRow(context.Background(), query, code).Scan(
		&l.ID, &l.Code, &l.Zone, &l.MaxCapacity, &l.UsedCapacity, &l.Status,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get emplacement: %w", err)
	}
	return &l, nil
}

// List renvoie tous les emplacements triés par code.
func (r *LocationRepo) List() ([]*entity.Location, error) {
	query := `
		SELECT id, code, zone, capacite_max, capacite_utilisee, statut
		FROM emplacements ORDER BY code`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list emplacements: %w", err)
	}
	defer rows.Close()
	var list []*entity.Location
	for rows.Next() {
		var l entity.Location
		if err := rows.Scan(&l.ID, &l.Code, &l.Zone, &l.MaxCapacity, &l.UsedCapacity, &l.Status); err != nil {
			return nil, fmt.Errorf("scan emplacement: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// ListAvailableCodes renvoie les codes où capacite_utilisee < capacite_max
// ou sans capacité max.
func (r *LocationRepo) ListAvailableCodes() ([]string, error) {
	query := `
		SELECT code FROM emplacements
		WHERE capacite_utilisee < capacite_max OR capacite_max IS NULL
		ORDER BY code`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list emplacements disponibles: %w", err)
	}
	defer rows.Close()
	var codes []string
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, fmt.Errorf("scan code emplacement: %w", err)
		}
		codes = append(codes, code)
	}
	return codes, rows.Err()
}

// Stats renvoie l'occupation globale des emplacements.
func (r *LocationRepo) Stats() (repository.LocationStats, error) {
	query := `
		SELECT COUNT(*),
		       COALESCE(SUM(capacite_max), 0),
		       COALESCE(SUM(capacite_utilisee) FILTER (WHERE capacite_max IS NOT NULL), 0)
		FROM emplacements`
	var s repository.LocationStats
	err := r.pool.QueryRow(context.Background(), query).Scan(
		&s.Total, &s.TotalCapacity, &s.UsedCapacity,
	)
	if err != nil {
		return repository.LocationStats{}, fmt.Errorf("stats emplacements: %w", err)
	}
	return s, nil
}

// Delete supprime un emplacement par code.
func (r *LocationRepo) Delete(code string) error {
	cmd, err := r.pool.Exec(context.Background(), `DELETE FROM emplacements WHERE code = $1`, code)
	if err != nil {
		return fmt.Errorf("delete emplacement %s: %w", code, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%w: emplacement %s", domain.ErrNotFound, code)
	}
	return nil
}

// DeleteAll vide l'annuaire des emplacements.
func (r *LocationRepo) DeleteAll() error {
	if _, err := r.pool.Exec(context.Background(), `DELETE FROM emplacements`); err != nil {
		return fmt.Errorf("vider les emplacements: %w", err)
	}
	return nil
}
