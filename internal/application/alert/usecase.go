// Package alert calcule les alertes de stock : lecture seule, aucune
// mutation du grand livre.
package alert

import (
	"strconv"

	"github.com/gestistock/wms-api/internal/domain/entity"
	"github.com/gestistock/wms-api/internal/domain/repository"
	"github.com/gestistock/wms-api/pkg/config"
)

// UseCase évalue les alertes de stock faible et d'expiration proche.
// Les seuils viennent de la table parametres ; la configuration sert de
// repli quand la clé est absente ou illisible.
type UseCase struct {
	stockRepo    repository.StockRepository
	settingsRepo repository.SettingsRepository
	defaults     config.AlertConfig
}

// NewUseCase construit l'évaluateur d'alertes.
func NewUseCase(
	stockRepo repository.StockRepository,
	settingsRepo repository.SettingsRepository,
	defaults config.AlertConfig,
) *UseCase {
	return &UseCase{stockRepo: stockRepo, settingsRepo: settingsRepo, defaults: defaults}
}

// LowStockThreshold renvoie le seuil de stock faible effectif.
func (uc *UseCase) LowStockThreshold() int64 {
	raw, err := uc.settingsRepo.Get(entity.SettingLowStockThreshold)
	if err != nil || raw == "" {
		return uc.defaults.LowStockThreshold
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n < 0 {
		return uc.defaults.LowStockThreshold
	}
	return n
}

// ExpirationHorizonDays renvoie l'horizon d'expiration effectif, en jours.
func (uc *UseCase) ExpirationHorizonDays() int {
	raw, err := uc.settingsRepo.Get(entity.SettingExpirationHorizon)
	if err != nil || raw == "" {
		return uc.defaults.ExpirationHorizonDays
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return uc.defaults.ExpirationHorizonDays
	}
	return n
}

// LowStock renvoie les lignes dont la quantité est strictement inférieure
// au seuil.
func (uc *UseCase) LowStock() ([]*entity.StockLine, error) {
	return uc.stockRepo.ListBelowQuantity(uc.LowStockThreshold())
}

// Expiring renvoie les lignes dont la date d'expiration est renseignée et
// tombe dans l'horizon. Une ligne sans date d'expiration n'alerte jamais.
func (uc *UseCase) Expiring() ([]*entity.StockLine, error) {
	return uc.stockRepo.ListExpiringWithin(uc.ExpirationHorizonDays())
}

// Count renvoie le nombre total d'alertes : stock faible plus expiration,
// sans déduplication quand une ligne appartient aux deux ensembles.
func (uc *UseCase) Count() (int, error) {
	low, err := uc.LowStock()
	if err != nil {
		return 0, err
	}
	expiring, err := uc.Expiring()
	if err != nil {
		return 0, err
	}
	return len(low) + len(expiring), nil
}
