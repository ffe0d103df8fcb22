package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gestistock/wms-api/internal/domain/entity"
	"github.com/gestistock/wms-api/internal/domain/repository"
)

var _ repository.SettingsRepository = (*SettingsRepo)(nil)

// SettingsRepo implémentation des paramètres clé/valeur sur PostgreSQL.
type SettingsRepo struct {
	pool *pgxpool.Pool
}

// NewSettingsRepository construit l'adaptateur des paramètres.
func NewSettingsRepository(pool *pgxpool.Pool) *SettingsRepo {
	return &SettingsRepo{pool: pool}
}

// Get renvoie la valeur de la clé ; "" sans erreur si absente.
func (r *SettingsRepo) Get(key string) (string, error) {
	var value string
	err := r.pool.QueryRow(context.Background(),
		`SELECT valeur FROM parametres WHERE cle = $1`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("get paramètre %s: %w", key, err)
	}
	return value, nil
}

// Set insère ou met à jour la valeur de la clé.
func (r *SettingsRepo) Set(key, value, description string) error {
	query := `
		INSERT INTO parametres (cle, valeur, description)
		VALUES ($1, $2, $3)
		ON CONFLICT (cle)
		DO UPDATE SET valeur = EXCLUDED.valeur, description = EXCLUDED.description`
	if _, err := r.pool.Exec(context.Background(), query, key, value, description); err != nil {
		return fmt.Errorf("set paramètre %s: %w", key, err)
	}
	return nil
}

// All renvoie tous les paramètres triés par clé.
func (r *SettingsRepo) All() ([]*entity.Setting, error) {
	rows, err := r.pool.Query(context.Background(),
		`SELECT id, cle, valeur, COALESCE(description, '') FROM parametres ORDER BY cle`)
	if err != nil {
		return nil, fmt.Errorf("list paramètres: %w", err)
	}
	defer rows.Close()
	var list []*entity.Setting
	for rows.Next() {
		var s entity.Setting
		if err := rows.Scan(&s.ID, &s.Key, &s.Value, &s.Description); err != nil {
			return nil, fmt.Errorf("scan paramètre: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// DeleteAll réinitialise la table des paramètres.
func (r *SettingsRepo) DeleteAll() error {
	if _, err := r.pool.Exec(context.Background(), `DELETE FROM parametres`); err != nil {
		return fmt.Errorf("vider les paramètres: %w", err)
	}
	return nil
}
