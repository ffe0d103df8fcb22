package entity

import "time"

// Statuts d'expédition.
const (
	ShipmentStatusPreparing = "En préparation"
	ShipmentStatusShipped   = "Expédiée"
)

// Shipment enregistre une sortie de marchandise vers un client
// (table expeditions).
type Shipment struct {
	ID           int64
	OrderNumber  string
	Reference    string
	Quantity     int64
	Customer     string
	Location     string
	ShipmentDate *time.Time
	Status       string
	CreatedAt    time.Time
}
