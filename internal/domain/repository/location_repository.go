package repository

import "github.com/gestistock/wms-api/internal/domain/entity"

// LocationStats occupation globale des emplacements.
type LocationStats struct {
	Total         int64
	TotalCapacity int64 // somme des capacités max renseignées
	UsedCapacity  int64
}

// LocationRepository port de l'annuaire des emplacements (table emplacements).
type LocationRepository interface {
	// Create renvoie domain.ErrDuplicate si le code existe déjà.
	Create(l *entity.Location) error
	GetByCode(code string) (*entity.Location, error)
	List() ([]*entity.Location, error)
	// ListAvailableCodes renvoie les codes dont la capacité utilisée est
	// inférieure à la capacité max, ou sans capacité max.
	ListAvailableCodes() ([]string, error)
	Stats() (LocationStats, error)
	// Delete renvoie domain.ErrNotFound si le code n'existe pas.
	Delete(code string) error
	DeleteAll() error
}
