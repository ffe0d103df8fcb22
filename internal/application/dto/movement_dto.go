package dto

import (
	"time"

	"github.com/gestistock/wms-api/internal/domain/entity"
)

// CreateReceptionRequest body pour POST /api/receptions.
type CreateReceptionRequest struct {
	Reference string     `json:"reference"`
	Quantity  int64      `json:"quantite" validate:"required,min=1"`
	Supplier  string     `json:"fournisseur"`
	Date      *time.Time `json:"date_reception,omitempty"`
	Location  string     `json:"emplacement"`
}

// ReceptionResponse réception en réponse.
type ReceptionResponse struct {
	ID            int64     `json:"id"`
	Reference     string    `json:"reference"`
	Quantity      int64     `json:"quantite"`
	Supplier      string    `json:"fournisseur"`
	ReceptionDate time.Time `json:"date_reception"`
	Location      string    `json:"emplacement"`
	Status        string    `json:"statut"`
	CreatedAt     time.Time `json:"date_creation"`
}

// FromReception convertit l'entité en réponse.
func FromReception(r *entity.Reception) ReceptionResponse {
	return ReceptionResponse{
		ID:            r.ID,
		Reference:     r.Reference,
		Quantity:      r.Quantity,
		Supplier:      r.Supplier,
		ReceptionDate: r.ReceptionDate,
		Location:      r.Location,
		Status:        r.Status,
		CreatedAt:     r.CreatedAt,
	}
}

// CreateShipmentRequest body pour POST /api/expeditions.
type CreateShipmentRequest struct {
	OrderNumber string `json:"numero_commande" validate:"required"`
	Reference   string `json:"reference" validate:"required"`
	Quantity    int64  `json:"quantite" validate:"required,min=1"`
	Customer    string `json:"client"`
	Location    string `json:"emplacement"`
}

// ShipmentResponse expédition en réponse.
type ShipmentResponse struct {
	ID           int64      `json:"id"`
	OrderNumber  string     `json:"numero_commande"`
	Reference    string     `json:"reference"`
	Quantity     int64      `json:"quantite"`
	Customer     string     `json:"client"`
	Location     string     `json:"emplacement"`
	ShipmentDate *time.Time `json:"date_expedition,omitempty"`
	Status       string     `json:"statut"`
	CreatedAt    time.Time  `json:"date_creation"`
}

// FromShipment convertit l'entité en réponse.
func FromShipment(s *entity.Shipment) ShipmentResponse {
	return ShipmentResponse{
		ID:           s.ID,
		OrderNumber:  s.OrderNumber,
		Reference:    s.Reference,
		Quantity:     s.Quantity,
		Customer:     s.Customer,
		Location:     s.Location,
		ShipmentDate: s.ShipmentDate,
		Status:       s.Status,
		CreatedAt:    s.CreatedAt,
	}
}

// CreateTransferRequest body pour POST /api/transferts.
type CreateTransferRequest struct {
	Reference      string `json:"reference" validate:"required"`
	Quantity       int64  `json:"quantite" validate:"required,min=1"`
	SourceLocation string `json:"emplacement_source" validate:"required"`
	DestLocation   string `json:"emplacement_destination" validate:"required"`
	Reason         string `json:"motif"`
	User           string `json:"utilisateur"`
}

// TransferResponse transfert en réponse.
type TransferResponse struct {
	ID             int64     `json:"id"`
	Reference      string    `json:"reference"`
	Quantity       int64     `json:"quantite"`
	SourceLocation string    `json:"emplacement_source"`
	DestLocation   string    `json:"emplacement_destination"`
	Reason         string    `json:"motif"`
	User           string    `json:"utilisateur"`
	CreatedAt      time.Time `json:"date_creation"`
}

// FromTransfer convertit l'entité en réponse.
func FromTransfer(t *entity.Transfer) TransferResponse {
	return TransferResponse{
		ID:             t.ID,
		Reference:      t.Reference,
		Quantity:       t.Quantity,
		SourceLocation: t.SourceLocation,
		DestLocation:   t.DestLocation,
		Reason:         t.Reason,
		User:           t.User,
		CreatedAt:      t.CreatedAt,
	}
}

// MovementResponse entrée du journal unifié des mouvements.
type MovementResponse struct {
	Kind         string    `json:"type"`
	Key          string    `json:"cle"`
	Reference    string    `json:"reference"`
	Quantity     int64     `json:"quantite"`
	Location     string    `json:"emplacement"`
	Counterparty string    `json:"contrepartie"`
	Date         time.Time `json:"date"`
}

// FromMovements convertit le journal unifié.
func FromMovements(ms []entity.Movement) []MovementResponse {
	out := make([]MovementResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, MovementResponse{
			Kind:         string(m.Kind),
			Key:          m.Key,
			Reference:    m.Reference,
			Quantity:     m.Quantity,
			Location:     m.Location,
			Counterparty: m.Counterparty,
			Date:         m.Date,
		})
	}
	return out
}
