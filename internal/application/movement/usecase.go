// Package movement orchestre les trois transactions métier (réception,
// expédition, transfert) : validation, écriture du journal puis mutation
// du grand livre, le tout dans une transaction unique.
package movement

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gestistock/wms-api/internal/application/stock"
	"github.com/gestistock/wms-api/internal/domain"
	"github.com/gestistock/wms-api/internal/domain/entity"
	"github.com/gestistock/wms-api/internal/domain/repository"
)

// Valeurs de repli héritées du métier.
const (
	DefaultSupplier = "Fournisseur inconnu"
	DefaultCustomer = "Client inconnu"
	DefaultUser     = "Admin"
)

// UseCase cas d'usage des mouvements. Les créations passent par le TxRunner ;
// les consultations et suppressions de journal utilisent les dépôts liés au
// pool.
type UseCase struct {
	tx            TxRunner
	receptionRepo repository.ReceptionRepository
	shipmentRepo  repository.ShipmentRepository
	transferRepo  repository.TransferRepository
}

// NewUseCase construit le cas d'usage des mouvements.
func NewUseCase(
	tx TxRunner,
	receptionRepo repository.ReceptionRepository,
	shipmentRepo repository.ShipmentRepository,
	transferRepo repository.TransferRepository,
) *UseCase {
	return &UseCase{
		tx:            tx,
		receptionRepo: receptionRepo,
		shipmentRepo:  shipmentRepo,
		transferRepo:  transferRepo,
	}
}

// ReceiveInput paramètres d'une réception.
type ReceiveInput struct {
	Reference string
	Quantity  int64
	Supplier  string
	Date      time.Time
	Location  string
}

// Receive enregistre une réception puis crédite le grand livre, dans une
// transaction unique. Référence et emplacement vides reçoivent les valeurs
// de repli au lieu d'être rejetés.
func (uc *UseCase) Receive(ctx context.Context, in ReceiveInput) (*entity.Reception, error) {
	if in.Quantity <= 0 {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidQuantity, in.Quantity)
	}
	ref := strings.TrimSpace(in.Reference)
	if ref == "" {
		ref = stock.GeneratedReference()
	}
	location := strings.TrimSpace(in.Location)
	if location == "" {
		location = stock.DefaultLocation
	}
	supplier := strings.TrimSpace(in.Supplier)
	if supplier == "" {
		supplier = DefaultSupplier
	}
	date := in.Date
	if date.IsZero() {
		date = time.Now()
	}

	rec := &entity.Reception{
		Reference:     ref,
		Quantity:      in.Quantity,
		Supplier:      supplier,
		ReceptionDate: date,
		Location:      location,
	}
	err := uc.tx.Run(ctx, func(
		stockRepo repository.StockRepository,
		receptionRepo repository.ReceptionRepository,
		_ repository.ShipmentRepository,
		_ repository.TransferRepository,
	) error {
		if err := receptionRepo.Create(rec); err != nil {
			return err
		}
		return stock.Increase(stockRepo, stock.IncreaseInput{
			Reference: ref,
			Location:  location,
			Quantity:  in.Quantity,
		})
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// ShipInput paramètres d'une expédition.
type ShipInput struct {
	OrderNumber string
	Reference   string
	Quantity    int64
	Customer    string
	Location    string
}

// Ship vérifie le stock au couple exact (référence, emplacement), enregistre
// l'expédition puis débite cet emplacement seulement. Échoue avec
// ErrLocationMismatch si aucune ligne n'existe à cet emplacement, avec
// ErrInsufficientStock si le solde agrégé est insuffisant.
func (uc *UseCase) Ship(ctx context.Context, in ShipInput) (*entity.Shipment, error) {
	if in.Quantity <= 0 {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidQuantity, in.Quantity)
	}
	ref := strings.TrimSpace(in.Reference)
	if ref == "" {
		return nil, fmt.Errorf("%w: référence", domain.ErrInvalidInput)
	}
	location := strings.TrimSpace(in.Location)
	if location == "" {
		location = stock.DefaultLocation
	}
	customer := strings.TrimSpace(in.Customer)
	if customer == "" {
		customer = DefaultCustomer
	}

	ship := &entity.Shipment{
		OrderNumber: strings.TrimSpace(in.OrderNumber),
		Reference:   ref,
		Quantity:    in.Quantity,
		Customer:    customer,
		Location:    location,
	}
	err := uc.tx.Run(ctx, func(
		stockRepo repository.StockRepository,
		_ repository.ReceptionRepository,
		shipmentRepo repository.ShipmentRepository,
		_ repository.TransferRepository,
	) error {
		lines, err := stockRepo.ListLines(ref, location)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			return fmt.Errorf("%w: %s à %s", domain.ErrLocationMismatch, ref, location)
		}
		if err := shipmentRepo.Create(ship); err != nil {
			return err
		}
		return stock.Decrease(stockRepo, ref, location, in.Quantity)
	})
	if err != nil {
		return nil, err
	}
	return ship, nil
}

// TransferInput paramètres d'un transfert interne.
type TransferInput struct {
	Reference      string
	Quantity       int64
	SourceLocation string
	DestLocation   string
	Reason         string
	User           string
}

// Transfer déplace une quantité d'un emplacement à un autre : journal,
// débit source, crédit destination, dans une transaction unique. La ligne
// créée à destination hérite de la désignation d'une ligne existante de la
// référence, tout emplacement confondu.
func (uc *UseCase) Transfer(ctx context.Context, in TransferInput) (*entity.Transfer, error) {
	if in.Quantity <= 0 {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidQuantity, in.Quantity)
	}
	source := strings.TrimSpace(in.SourceLocation)
	dest := strings.TrimSpace(in.DestLocation)
	if source == "" {
		return nil, fmt.Errorf("%w: source", domain.ErrMissingLocation)
	}
	if dest == "" {
		return nil, fmt.Errorf("%w: destination", domain.ErrMissingLocation)
	}
	if source == dest {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidTransfer, source)
	}
	ref := strings.TrimSpace(in.Reference)
	if ref == "" {
		return nil, fmt.Errorf("%w: référence", domain.ErrInvalidInput)
	}
	user := strings.TrimSpace(in.User)
	if user == "" {
		user = DefaultUser
	}

	tr := &entity.Transfer{
		Reference:      ref,
		Quantity:       in.Quantity,
		SourceLocation: source,
		DestLocation:   dest,
		Reason:         strings.TrimSpace(in.Reason),
		User:           user,
	}
	err := uc.tx.Run(ctx, func(
		stockRepo repository.StockRepository,
		_ repository.ReceptionRepository,
		_ repository.ShipmentRepository,
		transferRepo repository.TransferRepository,
	) error {
		balance, err := stockRepo.SumQuantity(ref, source)
		if err != nil {
			return err
		}
		// Absence de ligne source et solde insuffisant se confondent ici,
		// comportement hérité.
		if balance < in.Quantity {
			return fmt.Errorf("%w: %s à %s: disponible %d, demandé %d",
				domain.ErrInsufficientStock, ref, source, balance, in.Quantity)
		}
		if err := transferRepo.Create(tr); err != nil {
			return err
		}
		if err := stock.Decrease(stockRepo, ref, source, in.Quantity); err != nil {
			return err
		}
		designation, err := stockRepo.FirstDesignation(ref)
		if err != nil {
			return err
		}
		return stock.Increase(stockRepo, stock.IncreaseInput{
			Reference:   ref,
			Location:    dest,
			Quantity:    in.Quantity,
			Designation: designation,
		})
	})
	if err != nil {
		return nil, err
	}
	return tr, nil
}

// RecentReceptions renvoie les dernières réceptions.
func (uc *UseCase) RecentReceptions(limit int) ([]*entity.Reception, error) {
	return uc.receptionRepo.ListRecent(limit)
}

// RecentShipments renvoie les dernières expéditions.
func (uc *UseCase) RecentShipments(limit int) ([]*entity.Shipment, error) {
	return uc.shipmentRepo.ListRecent(limit)
}

// RecentTransfers renvoie les derniers transferts.
func (uc *UseCase) RecentTransfers(limit int) ([]*entity.Transfer, error) {
	return uc.transferRepo.ListRecent(limit)
}

// DeleteMovement supprime une entrée de journal sans jamais réajuster le
// grand livre. La clé est l'id numérique, sauf pour les expéditions où c'est
// le numéro de commande.
func (uc *UseCase) DeleteMovement(kind entity.MovementKind, key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return fmt.Errorf("%w: clé de mouvement", domain.ErrInvalidInput)
	}
	switch kind {
	case entity.MovementKindReception:
		id, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: id réception %q", domain.ErrInvalidInput, key)
		}
		return uc.receptionRepo.Delete(id)
	case entity.MovementKindShipment:
		return uc.shipmentRepo.DeleteByOrderNumber(key)
	case entity.MovementKindTransfer:
		id, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: id transfert %q", domain.ErrInvalidInput, key)
		}
		return uc.transferRepo.Delete(id)
	default:
		return fmt.Errorf("%w: type de mouvement %q", domain.ErrInvalidInput, kind)
	}
}

// ClearMovements vide le journal d'un type de mouvement. Le grand livre
// n'est pas touché.
func (uc *UseCase) ClearMovements(kind entity.MovementKind) error {
	switch kind {
	case entity.MovementKindReception:
		return uc.receptionRepo.DeleteAll()
	case entity.MovementKindShipment:
		return uc.shipmentRepo.DeleteAll()
	case entity.MovementKindTransfer:
		return uc.transferRepo.DeleteAll()
	default:
		return fmt.Errorf("%w: type de mouvement %q", domain.ErrInvalidInput, kind)
	}
}

// ClearHistory vide les trois journaux de mouvements.
func (uc *UseCase) ClearHistory() error {
	if err := uc.receptionRepo.DeleteAll(); err != nil {
		return err
	}
	if err := uc.shipmentRepo.DeleteAll(); err != nil {
		return err
	}
	return uc.transferRepo.DeleteAll()
}
