package entity

import "time"

// MovementKind distingue les quatre types de mouvement du journal.
type MovementKind string

const (
	MovementKindReception  MovementKind = "RECEPTION"
	MovementKindShipment   MovementKind = "EXPEDITION"
	MovementKindTransfer   MovementKind = "TRANSFERT"
	MovementKindAdjustment MovementKind = "AJUSTEMENT"
)

// Valid indique si le type correspond à un mouvement journalisé.
func (k MovementKind) Valid() bool {
	switch k {
	case MovementKindReception, MovementKindShipment, MovementKindTransfer, MovementKindAdjustment:
		return true
	}
	return false
}

// Movement vue unifiée du journal des mouvements (union des tables
// receptions, expeditions et transferts) pour la traçabilité.
// Key vaut l'id numérique ou le numéro de commande selon le type.
type Movement struct {
	Kind         MovementKind
	Key          string
	Reference    string
	Quantity     int64
	Location     string
	Counterparty string // fournisseur, client ou emplacement destination
	Date         time.Time
}
