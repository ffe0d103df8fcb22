package usecase

import (
	"github.com/gestistock/wms-api/internal/domain/repository"
	"github.com/gestistock/wms-api/pkg/logger"
)

// MaintenanceUseCase opérations d'administration : purge des journaux,
// des lots et remise à zéro complète des données.
type MaintenanceUseCase struct {
	stockRepo     repository.StockRepository
	receptionRepo repository.ReceptionRepository
	shipmentRepo  repository.ShipmentRepository
	transferRepo  repository.TransferRepository
	locationRepo  repository.LocationRepository
	userRepo      repository.UserRepository
	settingsRepo  repository.SettingsRepository
	log           *logger.Logger
}

// NewMaintenanceUseCase construit le cas d'usage de maintenance.
func NewMaintenanceUseCase(
	stockRepo repository.StockRepository,
	receptionRepo repository.ReceptionRepository,
	shipmentRepo repository.ShipmentRepository,
	transferRepo repository.TransferRepository,
	locationRepo repository.LocationRepository,
	userRepo repository.UserRepository,
	settingsRepo repository.SettingsRepository,
	log *logger.Logger,
) *MaintenanceUseCase {
	return &MaintenanceUseCase{
		stockRepo:     stockRepo,
		receptionRepo: receptionRepo,
		shipmentRepo:  shipmentRepo,
		transferRepo:  transferRepo,
		locationRepo:  locationRepo,
		userRepo:      userRepo,
		settingsRepo:  settingsRepo,
		log:           log,
	}
}

// ClearHistory vide les trois journaux de mouvements. Le grand livre n'est
// pas touché.
func (uc *MaintenanceUseCase) ClearHistory() error {
	if err := uc.receptionRepo.DeleteAll(); err != nil {
		return err
	}
	if err := uc.shipmentRepo.DeleteAll(); err != nil {
		return err
	}
	return uc.transferRepo.DeleteAll()
}

// ClearLots efface les numéros de lot et dates d'expiration des lignes de
// stock, sans toucher aux quantités.
func (uc *MaintenanceUseCase) ClearLots() error {
	return uc.stockRepo.ClearLots()
}

// ResetDatabase vide toutes les tables de données. Irréversible.
func (uc *MaintenanceUseCase) ResetDatabase() error {
	steps := []struct {
		name string
		fn   func() error
	}{
		{"receptions", uc.receptionRepo.DeleteAll},
		{"expeditions", uc.shipmentRepo.DeleteAll},
		{"transferts", uc.transferRepo.DeleteAll},
		{"stocks", uc.stockRepo.DeleteAll},
		{"emplacements", uc.locationRepo.DeleteAll},
		{"utilisateurs", uc.userRepo.DeleteAll},
		{"parametres", uc.settingsRepo.DeleteAll},
	}
	for _, s := range steps {
		if err := s.fn(); err != nil {
			return err
		}
		uc.log.Info().Str("table", s.name).Msg("table vidée")
	}
	return nil
}
