package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gestistock/wms-api/internal/application/movement"
	"github.com/gestistock/wms-api/internal/domain/repository"
)

// Ensure TxRunner implements movement.TxRunner.
var _ movement.TxRunner = (*TxRunner)(nil)

// TxRunner exécute des callbacks dans une transaction PostgreSQL. C'est
// l'unique garantie d'atomicité des mouvements : écriture du journal et
// mutation du grand livre réussissent ou échouent ensemble.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construit le runner avec le pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run démarre une transaction, exécute fn avec des dépôts liés à la tx et
// fait Commit ou Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	stockRepo repository.StockRepository,
	receptionRepo repository.ReceptionRepository,
	shipmentRepo repository.ShipmentRepository,
	transferRepo repository.TransferRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	stockRepo := NewStockRepository(tx)
	receptionRepo := NewReceptionRepository(tx)
	shipmentRepo := NewShipmentRepository(tx)
	transferRepo := NewTransferRepository(tx)

	if err := fn(stockRepo, receptionRepo, shipmentRepo, transferRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
