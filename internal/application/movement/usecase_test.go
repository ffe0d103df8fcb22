package movement

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestistock/wms-api/internal/domain"
	"github.com/gestistock/wms-api/internal/domain/entity"
	"github.com/gestistock/wms-api/internal/domain/repository"
)

// memState état partagé des dépôts en mémoire. Le fakeTxRunner travaille
// sur une copie et ne la reverse qu'en cas de succès, fidèle au
// commit/rollback de la vraie transaction.
type memState struct {
	lines      []entity.StockLine
	receptions []entity.Reception
	shipments  []entity.Shipment
	transfers  []entity.Transfer
	nextID     int64

	failStockUpdate bool
}

func newMemState() *memState { return &memState{nextID: 1} }

func (s *memState) clone() *memState {
	c := &memState{nextID: s.nextID, failStockUpdate: s.failStockUpdate}
	c.lines = append(c.lines, s.lines...)
	c.receptions = append(c.receptions, s.receptions...)
	c.shipments = append(c.shipments, s.shipments...)
	c.transfers = append(c.transfers, s.transfers...)
	return c
}

func (s *memState) addLine(reference, designation string, quantity int64, location string) {
	s.lines = append(s.lines, entity.StockLine{
		ID: s.nextID, Reference: reference, Designation: designation,
		Quantity: quantity, Location: location,
	})
	s.nextID++
}

func (s *memState) balance(reference, location string) int64 {
	var sum int64
	for _, l := range s.lines {
		if l.Reference == reference && l.Location == location {
			sum += l.Quantity
		}
	}
	return sum
}

func (s *memState) totalQuantity() int64 {
	var sum int64
	for _, l := range s.lines {
		sum += l.Quantity
	}
	return sum
}

type memStockRepo struct{ s *memState }

func (r *memStockRepo) ListLines(reference, location string) ([]*entity.StockLine, error) {
	var out []*entity.StockLine
	for i := range r.s.lines {
		l := &r.s.lines[i]
		if l.Reference == reference && l.Location == location {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *memStockRepo) SumQuantity(reference, location string) (int64, error) {
	return r.s.balance(reference, location), nil
}

func (r *memStockRepo) Insert(line *entity.StockLine) error {
	line.ID = r.s.nextID
	r.s.nextID++
	r.s.lines = append(r.s.lines, *line)
	return nil
}

func (r *memStockRepo) UpdateQuantity(id int64, quantity int64) error {
	if r.s.failStockUpdate {
		return errors.New("écriture refusée")
	}
	for i := range r.s.lines {
		if r.s.lines[i].ID == id {
			r.s.lines[i].Quantity = quantity
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *memStockRepo) FirstDesignation(reference string) (string, error) {
	for _, l := range r.s.lines {
		if l.Reference == reference {
			return l.Designation, nil
		}
	}
	return "", nil
}

func (r *memStockRepo) List(repository.StockFilter) ([]*entity.StockLine, error) { return nil, nil }

func (r *memStockRepo) References() ([]string, error) { return nil, nil }

func (r *memStockRepo) ListBelowQuantity(int64) ([]*entity.StockLine, error) { return nil, nil }

func (r *memStockRepo) ListExpiringWithin(int) ([]*entity.StockLine, error) { return nil, nil }

func (r *memStockRepo) DeleteByReference(string) error { return nil }

func (r *memStockRepo) DeleteAll() error { r.s.lines = nil; return nil }

func (r *memStockRepo) ClearLots() error { return nil }

type memReceptionRepo struct{ s *memState }

func (r *memReceptionRepo) Create(rec *entity.Reception) error {
	rec.ID = r.s.nextID
	r.s.nextID++
	if rec.Status == "" {
		rec.Status = entity.ReceptionStatusPending
	}
	r.s.receptions = append(r.s.receptions, *rec)
	return nil
}

func (r *memReceptionRepo) ListRecent(limit int) ([]*entity.Reception, error) {
	var out []*entity.Reception
	for i := len(r.s.receptions) - 1; i >= 0 && len(out) < limit; i-- {
		rec := r.s.receptions[i]
		out = append(out, &rec)
	}
	return out, nil
}

func (r *memReceptionRepo) Delete(id int64) error {
	for i, rec := range r.s.receptions {
		if rec.ID == id {
			r.s.receptions = append(r.s.receptions[:i], r.s.receptions[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *memReceptionRepo) DeleteAll() error { r.s.receptions = nil; return nil }

type memShipmentRepo struct{ s *memState }

func (r *memShipmentRepo) Create(sh *entity.Shipment) error {
	sh.ID = r.s.nextID
	r.s.nextID++
	if sh.Status == "" {
		sh.Status = entity.ShipmentStatusPreparing
	}
	r.s.shipments = append(r.s.shipments, *sh)
	return nil
}

func (r *memShipmentRepo) ListRecent(limit int) ([]*entity.Shipment, error) {
	var out []*entity.Shipment
	for i := len(r.s.shipments) - 1; i >= 0 && len(out) < limit; i-- {
		sh := r.s.shipments[i]
		out = append(out, &sh)
	}
	return out, nil
}

func (r *memShipmentRepo) DeleteByOrderNumber(orderNumber string) error {
	var kept []entity.Shipment
	found := false
	for _, sh := range r.s.shipments {
		if sh.OrderNumber == orderNumber {
			found = true
			continue
		}
		kept = append(kept, sh)
	}
	if !found {
		return domain.ErrNotFound
	}
	r.s.shipments = kept
	return nil
}

func (r *memShipmentRepo) DeleteAll() error { r.s.shipments = nil; return nil }

type memTransferRepo struct{ s *memState }

func (r *memTransferRepo) Create(t *entity.Transfer) error {
	t.ID = r.s.nextID
	r.s.nextID++
	r.s.transfers = append(r.s.transfers, *t)
	return nil
}

func (r *memTransferRepo) ListRecent(limit int) ([]*entity.Transfer, error) {
	var out []*entity.Transfer
	for i := len(r.s.transfers) - 1; i >= 0 && len(out) < limit; i-- {
		tr := r.s.transfers[i]
		out = append(out, &tr)
	}
	return out, nil
}

func (r *memTransferRepo) Delete(id int64) error {
	for i, tr := range r.s.transfers {
		if tr.ID == id {
			r.s.transfers = append(r.s.transfers[:i], r.s.transfers[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *memTransferRepo) DeleteAll() error { r.s.transfers = nil; return nil }

// fakeTxRunner exécute fn sur une copie de l'état et ne la reverse qu'en
// cas de succès.
type fakeTxRunner struct{ s *memState }

func (f *fakeTxRunner) Run(_ context.Context, fn func(
	stockRepo repository.StockRepository,
	receptionRepo repository.ReceptionRepository,
	shipmentRepo repository.ShipmentRepository,
	transferRepo repository.TransferRepository,
) error) error {
	work := f.s.clone()
	err := fn(&memStockRepo{work}, &memReceptionRepo{work}, &memShipmentRepo{work}, &memTransferRepo{work})
	if err != nil {
		return err
	}
	*f.s = *work
	return nil
}

func newTestUseCase(s *memState) *UseCase {
	return NewUseCase(&fakeTxRunner{s}, &memReceptionRepo{s}, &memShipmentRepo{s}, &memTransferRepo{s})
}

func TestReceiveCreditsLedgerAndJournal(t *testing.T) {
	s := newMemState()
	uc := newTestUseCase(s)

	rec, err := uc.Receive(context.Background(), ReceiveInput{Quantity: 100})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(rec.Reference, "REF_"), "référence de repli horodatée")
	assert.Equal(t, "LIBRE", rec.Location)
	assert.Equal(t, "Fournisseur inconnu", rec.Supplier)
	assert.False(t, rec.ReceptionDate.IsZero())

	require.Len(t, s.receptions, 1)
	assert.Equal(t, int64(100), s.balance(rec.Reference, "LIBRE"))
	require.Len(t, s.lines, 1)
	assert.Equal(t, "Produit "+rec.Reference, s.lines[0].Designation)
}

func TestReceiveTopsUpExistingLine(t *testing.T) {
	s := newMemState()
	s.addLine("REF001", "Vis M4", 10, "A-01")
	uc := newTestUseCase(s)

	_, err := uc.Receive(context.Background(), ReceiveInput{Reference: "REF001", Quantity: 5, Location: "A-01"})
	require.NoError(t, err)

	assert.Equal(t, int64(15), s.balance("REF001", "A-01"))
	assert.Len(t, s.lines, 1, "pas de nouvelle ligne quand le couple existe")
}

func TestReceiveRejectsNonPositiveQuantity(t *testing.T) {
	s := newMemState()
	uc := newTestUseCase(s)

	for _, qty := range []int64{0, -3} {
		_, err := uc.Receive(context.Background(), ReceiveInput{Reference: "REF001", Quantity: qty})
		assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
	}
	assert.Empty(t, s.receptions)
	assert.Empty(t, s.lines)
}

func TestReceiveRollsBackJournalOnLedgerFailure(t *testing.T) {
	s := newMemState()
	s.addLine("REF001", "Vis M4", 10, "A-01")
	s.failStockUpdate = true
	uc := newTestUseCase(s)

	_, err := uc.Receive(context.Background(), ReceiveInput{Reference: "REF001", Quantity: 5, Location: "A-01"})
	require.Error(t, err)

	assert.Empty(t, s.receptions, "l'écriture du journal est annulée avec la transaction")
	assert.Equal(t, int64(10), s.balance("REF001", "A-01"))
}

func TestShipDebitsExactLocationOnly(t *testing.T) {
	s := newMemState()
	s.addLine("REF001", "Vis M4", 20, "A-01")
	s.addLine("REF001", "Vis M4", 30, "B-02")
	uc := newTestUseCase(s)

	ship, err := uc.Ship(context.Background(), ShipInput{
		OrderNumber: "CMD-1", Reference: "REF001", Quantity: 15, Location: "A-01",
	})
	require.NoError(t, err)

	assert.Equal(t, "Client inconnu", ship.Customer)
	assert.Equal(t, entity.ShipmentStatusPreparing, ship.Status)
	assert.Equal(t, int64(5), s.balance("REF001", "A-01"))
	assert.Equal(t, int64(30), s.balance("REF001", "B-02"), "les autres emplacements ne bougent pas")
	require.Len(t, s.shipments, 1)
}

func TestShipLocationMismatch(t *testing.T) {
	s := newMemState()
	s.addLine("REF001", "Vis M4", 20, "B-02")
	uc := newTestUseCase(s)

	_, err := uc.Ship(context.Background(), ShipInput{
		OrderNumber: "CMD-1", Reference: "REF001", Quantity: 5, Location: "A-01",
	})
	assert.ErrorIs(t, err, domain.ErrLocationMismatch)
	assert.Empty(t, s.shipments)
	assert.Equal(t, int64(20), s.balance("REF001", "B-02"))
}

func TestShipInsufficientAggregateBalance(t *testing.T) {
	s := newMemState()
	s.addLine("REF001", "Vis M4", 4, "A-01")
	s.addLine("REF001", "Vis M4", 3, "A-01")
	uc := newTestUseCase(s)

	_, err := uc.Ship(context.Background(), ShipInput{
		OrderNumber: "CMD-1", Reference: "REF001", Quantity: 8, Location: "A-01",
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Empty(t, s.shipments, "le rollback efface l'écriture du journal")
	assert.Equal(t, int64(7), s.balance("REF001", "A-01"))
}

func TestTransferValidation(t *testing.T) {
	s := newMemState()
	s.addLine("REF001", "Vis M4", 10, "A-01")
	uc := newTestUseCase(s)
	ctx := context.Background()

	_, err := uc.Transfer(ctx, TransferInput{Reference: "REF001", Quantity: 1, SourceLocation: "A-01", DestLocation: "A-01"})
	assert.ErrorIs(t, err, domain.ErrInvalidTransfer)

	_, err = uc.Transfer(ctx, TransferInput{Reference: "REF001", Quantity: 1, SourceLocation: "", DestLocation: "B-02"})
	assert.ErrorIs(t, err, domain.ErrMissingLocation)

	_, err = uc.Transfer(ctx, TransferInput{Reference: "REF001", Quantity: 1, SourceLocation: "A-01", DestLocation: "  "})
	assert.ErrorIs(t, err, domain.ErrMissingLocation)

	_, err = uc.Transfer(ctx, TransferInput{Reference: "REF001", Quantity: 11, SourceLocation: "A-01", DestLocation: "B-02"})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	// Aucune ligne source : même erreur que le solde insuffisant.
	_, err = uc.Transfer(ctx, TransferInput{Reference: "ABSENT", Quantity: 1, SourceLocation: "A-01", DestLocation: "B-02"})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Empty(t, s.transfers)
	assert.Equal(t, int64(10), s.balance("REF001", "A-01"))
}

func TestTransferMovesAndInheritsDesignation(t *testing.T) {
	s := newMemState()
	s.addLine("REF001", "Vis M4", 10, "A-01")
	uc := newTestUseCase(s)

	before := s.totalQuantity()
	tr, err := uc.Transfer(context.Background(), TransferInput{
		Reference: "REF001", Quantity: 4, SourceLocation: "A-01", DestLocation: "B-02",
		Reason: "rééquilibrage",
	})
	require.NoError(t, err)

	assert.Equal(t, "Admin", tr.User, "utilisateur de repli")
	assert.Equal(t, int64(6), s.balance("REF001", "A-01"))
	assert.Equal(t, int64(4), s.balance("REF001", "B-02"))
	assert.Equal(t, before, s.totalQuantity(), "un transfert conserve la quantité totale")

	var dest *entity.StockLine
	for i := range s.lines {
		if s.lines[i].Location == "B-02" {
			dest = &s.lines[i]
		}
	}
	require.NotNil(t, dest)
	assert.Equal(t, "Vis M4", dest.Designation, "la désignation est héritée de la référence")
	require.Len(t, s.transfers, 1)
}

func TestDeleteMovementNeverAdjustsLedger(t *testing.T) {
	s := newMemState()
	uc := newTestUseCase(s)

	rec, err := uc.Receive(context.Background(), ReceiveInput{Reference: "REF001", Quantity: 50, Location: "A-01"})
	require.NoError(t, err)
	require.Equal(t, int64(50), s.balance("REF001", "A-01"))

	err = uc.DeleteMovement(entity.MovementKindReception, strconv.FormatInt(rec.ID, 10))
	require.NoError(t, err)

	assert.Empty(t, s.receptions)
	assert.Equal(t, int64(50), s.balance("REF001", "A-01"), "supprimer un mouvement journalisé ne réajuste jamais le stock")
}

func TestDeleteMovementInvalidKeys(t *testing.T) {
	uc := newTestUseCase(newMemState())

	assert.ErrorIs(t, uc.DeleteMovement(entity.MovementKindReception, "abc"), domain.ErrInvalidInput)
	assert.ErrorIs(t, uc.DeleteMovement(entity.MovementKindAdjustment, "1"), domain.ErrInvalidInput)
	assert.ErrorIs(t, uc.DeleteMovement(entity.MovementKind("AUTRE"), "1"), domain.ErrInvalidInput)
	assert.ErrorIs(t, uc.DeleteMovement(entity.MovementKindTransfer, " "), domain.ErrInvalidInput)
	assert.ErrorIs(t, uc.DeleteMovement(entity.MovementKindTransfer, "99"), domain.ErrNotFound)
}

func TestClearHistoryClearsThreeJournals(t *testing.T) {
	s := newMemState()
	s.addLine("REF001", "Vis M4", 100, "A-01")
	uc := newTestUseCase(s)
	ctx := context.Background()

	_, err := uc.Receive(ctx, ReceiveInput{Reference: "REF001", Quantity: 10, Location: "A-01"})
	require.NoError(t, err)
	_, err = uc.Ship(ctx, ShipInput{OrderNumber: "CMD-1", Reference: "REF001", Quantity: 5, Location: "A-01"})
	require.NoError(t, err)
	_, err = uc.Transfer(ctx, TransferInput{Reference: "REF001", Quantity: 5, SourceLocation: "A-01", DestLocation: "B-02"})
	require.NoError(t, err)

	require.NoError(t, uc.ClearHistory())

	assert.Empty(t, s.receptions)
	assert.Empty(t, s.shipments)
	assert.Empty(t, s.transfers)
	assert.Equal(t, int64(105), s.totalQuantity(), "le grand livre n'est pas touché")
}

func TestMovementConservation(t *testing.T) {
	s := newMemState()
	uc := newTestUseCase(s)
	ctx := context.Background()

	_, err := uc.Receive(ctx, ReceiveInput{Reference: "REF001", Quantity: 100, Location: "A-01"})
	require.NoError(t, err)
	_, err = uc.Ship(ctx, ShipInput{OrderNumber: "CMD-1", Reference: "REF001", Quantity: 30, Location: "A-01"})
	require.NoError(t, err)
	_, err = uc.Transfer(ctx, TransferInput{Reference: "REF001", Quantity: 20, SourceLocation: "A-01", DestLocation: "B-02"})
	require.NoError(t, err)
	_, err = uc.Ship(ctx, ShipInput{OrderNumber: "CMD-2", Reference: "REF001", Quantity: 10, Location: "B-02"})
	require.NoError(t, err)

	// 100 reçus - 40 expédiés, quel que soit le découpage par emplacement.
	assert.Equal(t, int64(60), s.totalQuantity())
	assert.Equal(t, int64(50), s.balance("REF001", "A-01"))
	assert.Equal(t, int64(10), s.balance("REF001", "B-02"))
}
