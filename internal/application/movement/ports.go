package movement

import (
	"context"

	"github.com/gestistock/wms-api/internal/domain/repository"
)

// TxRunner exécute une fonction dans une transaction de BD, en passant des
// dépôts liés à cette tx. Garantit que l'écriture du journal et la mutation
// du grand livre réussissent ou échouent ensemble.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		stockRepo repository.StockRepository,
		receptionRepo repository.ReceptionRepository,
		shipmentRepo repository.ShipmentRepository,
		transferRepo repository.TransferRepository,
	) error) error
}
