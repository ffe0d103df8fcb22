package entity

// Clés de paramètres connues (table parametres).
const (
	SettingLowStockThreshold = "seuil_stock"
	SettingExpirationHorizon = "seuil_expiration"
	SettingWarehouseName     = "entrepot_nom"
	SettingWarehouseAddress  = "entrepot_adresse"
	SettingEstimatedUnitCost = "prix_unitaire_estime"
)

// Setting paramètre clé/valeur de l'application.
type Setting struct {
	ID          int64
	Key         string
	Value       string
	Description string
}
