package repository

import "github.com/gestistock/wms-api/internal/domain/entity"

// UserRepository port des opérateurs (table utilisateurs). Email unique.
type UserRepository interface {
	// Create renvoie domain.ErrDuplicate si l'email est déjà utilisé.
	Create(u *entity.User) error
	List() ([]*entity.User, error)
	// DeleteByName renvoie domain.ErrNotFound si le nom n'existe pas.
	DeleteByName(name string) error
	DeleteAll() error
}
