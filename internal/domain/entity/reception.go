package entity

import "time"

// Statuts de réception.
const (
	ReceptionStatusPending = "En cours"
	ReceptionStatusDone    = "Terminée"
)

// Reception enregistre une entrée de marchandise. Immuable après création,
// hors changement de statut et suppression explicite.
type Reception struct {
	ID            int64
	Reference     string
	Quantity      int64
	Supplier      string
	ReceptionDate time.Time
	Location      string
	Status        string
	CreatedAt     time.Time
}
