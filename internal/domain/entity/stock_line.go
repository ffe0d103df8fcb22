package entity

import "time"

// StockLine représente une ligne de stock : quantité d'une référence à un
// emplacement donné. L'unicité (reference, emplacement) n'est pas garantie
// par le schéma ; plusieurs lignes peuvent coexister et le grand livre
// agrège leurs quantités.
type StockLine struct {
	ID             int64
	Reference      string
	Designation    string
	Quantity       int64
	Location       string
	Lot            *string
	ExpirationDate *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
