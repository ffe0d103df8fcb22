package usecase

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gestistock/wms-api/internal/domain"
	"github.com/gestistock/wms-api/internal/domain/entity"
	"github.com/gestistock/wms-api/internal/domain/repository"
)

// SettingsUseCase paramètres clé/valeur de l'application (table parametres).
type SettingsUseCase struct {
	settingsRepo repository.SettingsRepository
}

// NewSettingsUseCase construit le cas d'usage des paramètres.
func NewSettingsUseCase(settingsRepo repository.SettingsRepository) *SettingsUseCase {
	return &SettingsUseCase{settingsRepo: settingsRepo}
}

// All renvoie tous les paramètres enregistrés.
func (uc *SettingsUseCase) All() ([]*entity.Setting, error) {
	return uc.settingsRepo.All()
}

// Get renvoie la valeur d'une clé, "" si absente.
func (uc *SettingsUseCase) Get(key string) (string, error) {
	return uc.settingsRepo.Get(key)
}

// SaveAlertThresholds enregistre les seuils d'alerte. Les valeurs négatives
// sont rejetées.
func (uc *SettingsUseCase) SaveAlertThresholds(lowStock int64, expirationDays int) error {
	if lowStock < 0 {
		return fmt.Errorf("%w: seuil de stock %d", domain.ErrInvalidInput, lowStock)
	}
	if expirationDays < 0 {
		return fmt.Errorf("%w: horizon d'expiration %d", domain.ErrInvalidInput, expirationDays)
	}
	if err := uc.settingsRepo.Set(entity.SettingLowStockThreshold,
		strconv.FormatInt(lowStock, 10), "Seuil d'alerte de stock faible"); err != nil {
		return err
	}
	return uc.settingsRepo.Set(entity.SettingExpirationHorizon,
		strconv.Itoa(expirationDays), "Horizon d'alerte d'expiration (jours)")
}

// SaveWarehouseConfig enregistre le nom et l'adresse de l'entrepôt.
func (uc *SettingsUseCase) SaveWarehouseConfig(name, address string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: nom de l'entrepôt", domain.ErrInvalidInput)
	}
	if err := uc.settingsRepo.Set(entity.SettingWarehouseName, name,
		"Nom de l'entrepôt"); err != nil {
		return err
	}
	return uc.settingsRepo.Set(entity.SettingWarehouseAddress,
		strings.TrimSpace(address), "Adresse de l'entrepôt")
}

// SaveEstimatedUnitCost enregistre le prix unitaire estimé utilisé pour la
// valorisation du stock.
func (uc *SettingsUseCase) SaveEstimatedUnitCost(value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return fmt.Errorf("%w: prix unitaire", domain.ErrInvalidInput)
	}
	return uc.settingsRepo.Set(entity.SettingEstimatedUnitCost, value,
		"Prix unitaire estimé pour la valorisation")
}

// Reset efface tous les paramètres ; les valeurs de repli de la
// configuration reprennent la main.
func (uc *SettingsUseCase) Reset() error {
	return uc.settingsRepo.DeleteAll()
}
