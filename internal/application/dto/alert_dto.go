package dto

// AlertsResponse alertes courantes : stock faible et expiration proche.
// Une même ligne peut figurer dans les deux listes.
type AlertsResponse struct {
	LowStock []StockLineResponse `json:"stock_faible"`
	Expiring []StockLineResponse `json:"expiration_proche"`
}

// AlertCountResponse nombre total d'alertes.
type AlertCountResponse struct {
	Count int `json:"total"`
}
