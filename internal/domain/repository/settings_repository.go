package repository

import "github.com/gestistock/wms-api/internal/domain/entity"

// SettingsRepository port des paramètres clé/valeur (table parametres).
type SettingsRepository interface {
	// Get renvoie "" sans erreur si la clé n'existe pas.
	Get(key string) (string, error)
	Set(key, value, description string) error
	All() ([]*entity.Setting, error)
	DeleteAll() error
}
