package dto

import (
	"github.com/gestistock/wms-api/internal/domain/repository"
)

// TopReferenceResponse référence la plus stockée.
type TopReferenceResponse struct {
	Reference   string `json:"reference"`
	Designation string `json:"designation"`
	Quantity    int64  `json:"quantite"`
}

// FromTopReferences convertit le top-N du dépôt de rapports.
func FromTopReferences(list []repository.ReferenceQuantity) []TopReferenceResponse {
	out := make([]TopReferenceResponse, 0, len(list))
	for _, r := range list {
		out = append(out, TopReferenceResponse{
			Reference:   r.Reference,
			Designation: r.Designation,
			Quantity:    r.Quantity,
		})
	}
	return out
}

// LocationQuantityResponse répartition du stock par emplacement.
type LocationQuantityResponse struct {
	Location string `json:"emplacement"`
	Quantity int64  `json:"quantite"`
}

// FromLocationQuantities convertit la répartition par emplacement.
func FromLocationQuantities(list []repository.LocationQuantity) []LocationQuantityResponse {
	out := make([]LocationQuantityResponse, 0, len(list))
	for _, l := range list {
		out = append(out, LocationQuantityResponse{Location: l.Location, Quantity: l.Quantity})
	}
	return out
}

// ZoneQuantityResponse répartition du stock par zone.
type ZoneQuantityResponse struct {
	Zone     string `json:"zone"`
	Quantity int64  `json:"quantite"`
}

// FromZoneQuantities convertit la répartition par zone.
func FromZoneQuantities(list []repository.ZoneQuantity) []ZoneQuantityResponse {
	out := make([]ZoneQuantityResponse, 0, len(list))
	for _, z := range list {
		out = append(out, ZoneQuantityResponse{Zone: z.Zone, Quantity: z.Quantity})
	}
	return out
}
