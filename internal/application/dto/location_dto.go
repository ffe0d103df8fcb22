package dto

import "github.com/gestistock/wms-api/internal/domain/entity"

// CreateLocationRequest body pour POST /api/emplacements.
type CreateLocationRequest struct {
	Code        string `json:"code" validate:"required"`
	Zone        string `json:"zone"`
	MaxCapacity *int64 `json:"capacite_max,omitempty" validate:"omitempty,min=0"`
}

// LocationResponse emplacement en réponse.
type LocationResponse struct {
	ID           int64  `json:"id"`
	Code         string `json:"code"`
	Zone         string `json:"zone"`
	MaxCapacity  *int64 `json:"capacite_max,omitempty"`
	UsedCapacity int64  `json:"capacite_utilisee"`
	Status       string `json:"statut"`
}

// FromLocation convertit l'entité en réponse.
func FromLocation(l *entity.Location) LocationResponse {
	return LocationResponse{
		ID:           l.ID,
		Code:         l.Code,
		Zone:         l.Zone,
		MaxCapacity:  l.MaxCapacity,
		UsedCapacity: l.UsedCapacity,
		Status:       l.Status,
	}
}

// FromLocations convertit une liste d'entités.
func FromLocations(list []*entity.Location) []LocationResponse {
	out := make([]LocationResponse, 0, len(list))
	for _, l := range list {
		out = append(out, FromLocation(l))
	}
	return out
}

// LocationStatsResponse occupation globale des emplacements.
type LocationStatsResponse struct {
	Total         int64 `json:"total"`
	TotalCapacity int64 `json:"capacite_totale"`
	UsedCapacity  int64 `json:"capacite_utilisee"`
}
