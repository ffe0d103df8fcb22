package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gestistock/wms-api/internal/domain"
	"github.com/gestistock/wms-api/internal/domain/entity"
	"github.com/gestistock/wms-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implémentation du registre des opérateurs sur PostgreSQL.
type UserRepo struct {
	pool *pgxpool.Pool
}

// NewUserRepository construit l'adaptateur de persistance des utilisateurs.
func NewUserRepository(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

// Create persiste un utilisateur. L'email est unique.
func (r *UserRepo) Create(u *entity.User) error {
	query := `
		INSERT INTO utilisateurs (nom, email, role)
		VALUES ($1, $2, $3)
		RETURNING id, actif, date_creation`
	err := r.pool.QueryRow(context.Background(), query, u.Name, u.Email, u.Role).
		Scan(&u.ID, &u.Active, &u.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: email %s", domain.ErrDuplicate, u.Email)
		}
		return fmt.Errorf("insert utilisateur: %w", err)
	}
	return nil
}

// List renvoie les utilisateurs, le plus récent d'abord.
func (r *UserRepo) List() ([]*entity.User, error) {
	query := `
		SELECT id, nom, email, role, actif, date_creation
		FROM utilisateurs ORDER BY date_creation DESC`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list utilisateurs: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Role, &u.Active, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan utilisateur: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

// DeleteByName supprime un utilisateur par nom.
func (r *UserRepo) DeleteByName(name string) error {
	cmd, err := r.pool.Exec(context.Background(), `DELETE FROM utilisateurs WHERE nom = $1`, name)
	if err != nil {
		return fmt.Errorf("delete utilisateur %s: %w", name, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%w: utilisateur %s", domain.ErrNotFound, name)
	}
	return nil
}

// DeleteAll vide le registre des utilisateurs.
func (r *UserRepo) DeleteAll() error {
	if _, err := r.pool.Exec(context.Background(), `DELETE FROM utilisateurs`); err != nil {
		return fmt.Errorf("vider les utilisateurs: %w", err)
	}
	return nil
}
