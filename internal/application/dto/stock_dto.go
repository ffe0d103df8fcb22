package dto

import (
	"time"

	"github.com/gestistock/wms-api/internal/domain/entity"
)

// AddStockRequest body pour POST /api/stocks.
type AddStockRequest struct {
	Reference      string     `json:"reference"`
	Designation    string     `json:"designation"`
	Quantity       int64      `json:"quantite" validate:"min=0"`
	Location       string     `json:"emplacement"`
	Lot            *string    `json:"lot,omitempty"`
	ExpirationDate *time.Time `json:"date_expiration,omitempty"`
}

// StockLineResponse ligne de stock en réponse.
type StockLineResponse struct {
	ID             int64      `json:"id"`
	Reference      string     `json:"reference"`
	Designation    string     `json:"designation"`
	Quantity       int64      `json:"quantite"`
	Location       string     `json:"emplacement"`
	Lot            *string    `json:"lot,omitempty"`
	ExpirationDate *time.Time `json:"date_expiration,omitempty"`
	CreatedAt      time.Time  `json:"date_creation"`
	UpdatedAt      time.Time  `json:"date_modification"`
}

// FromStockLine convertit l'entité en réponse.
func FromStockLine(l *entity.StockLine) StockLineResponse {
	return StockLineResponse{
		ID:             l.ID,
		Reference:      l.Reference,
		Designation:    l.Designation,
		Quantity:       l.Quantity,
		Location:       l.Location,
		Lot:            l.Lot,
		ExpirationDate: l.ExpirationDate,
		CreatedAt:      l.CreatedAt,
		UpdatedAt:      l.UpdatedAt,
	}
}

// FromStockLines convertit une liste d'entités.
func FromStockLines(lines []*entity.StockLine) []StockLineResponse {
	out := make([]StockLineResponse, 0, len(lines))
	for _, l := range lines {
		out = append(out, FromStockLine(l))
	}
	return out
}

// BalanceResponse solde agrégé d'un couple (référence, emplacement).
type BalanceResponse struct {
	Reference string `json:"reference"`
	Location  string `json:"emplacement"`
	Balance   int64  `json:"solde"`
}

// ImportStockRequest body pour POST /api/stocks/import.
type ImportStockRequest struct {
	Rows []AddStockRequest `json:"lignes" validate:"required,min=1,dive"`
}

// ImportStockResponse bilan d'un import.
type ImportStockResponse struct {
	BatchID string `json:"lot_import"`
	Applied int    `json:"lignes_appliquees"`
}
