package dto

import "github.com/gestistock/wms-api/internal/domain/entity"

// SettingResponse paramètre clé/valeur en réponse.
type SettingResponse struct {
	Key         string `json:"cle"`
	Value       string `json:"valeur"`
	Description string `json:"description,omitempty"`
}

// FromSettings convertit une liste d'entités.
func FromSettings(list []*entity.Setting) []SettingResponse {
	out := make([]SettingResponse, 0, len(list))
	for _, s := range list {
		out = append(out, SettingResponse{Key: s.Key, Value: s.Value, Description: s.Description})
	}
	return out
}

// SaveThresholdsRequest body pour PUT /api/parametres/seuils.
type SaveThresholdsRequest struct {
	LowStockThreshold     int64 `json:"seuil_stock" validate:"min=0"`
	ExpirationHorizonDays int   `json:"seuil_expiration" validate:"min=0"`
}

// SaveWarehouseRequest body pour PUT /api/parametres/entrepot.
type SaveWarehouseRequest struct {
	Name    string `json:"nom" validate:"required"`
	Address string `json:"adresse"`
}

// SaveUnitCostRequest body pour PUT /api/parametres/prix-unitaire.
type SaveUnitCostRequest struct {
	Value string `json:"valeur" validate:"required"`
}
