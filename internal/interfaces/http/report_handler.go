package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gestistock/wms-api/internal/application/dto"
	"github.com/gestistock/wms-api/internal/application/report"
)

// ReportHandler gère les requêtes HTTP des rapports et du tableau de bord.
type ReportHandler struct {
	uc *report.UseCase
}

// NewReportHandler construit le handler.
func NewReportHandler(uc *report.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// KPIs godoc
// @Summary      KPIs du tableau de bord
// @Tags         rapports
// @Produce      json
// @Success      200  {object}  report.KPIs
// @Router       /api/rapports/kpis [get]
func (h *ReportHandler) KPIs(c *fiber.Ctx) error {
	// Jamais d'erreur : une lecture en échec produit des zéros.
	return c.JSON(h.uc.Dashboard(c.Context()))
}

// TopReferences godoc
// @Summary      Références les plus stockées
// @Tags         rapports
// @Produce      json
// @Param        limit  query  int  false  "Limite"  default(10)
// @Success      200  {array}  dto.TopReferenceResponse
// @Router       /api/rapports/top-references [get]
func (h *ReportHandler) TopReferences(c *fiber.Ctx) error {
	list, err := h.uc.TopReferences(c.Context(), c.QueryInt("limit", 10))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.FromTopReferences(list))
}

// ByLocation godoc
// @Summary      Répartition du stock par emplacement
// @Tags         rapports
// @Produce      json
// @Success      200  {array}  dto.LocationQuantityResponse
// @Router       /api/rapports/emplacements [get]
func (h *ReportHandler) ByLocation(c *fiber.Ctx) error {
	list, err := h.uc.DistributionByLocation(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.FromLocationQuantities(list))
}

// ByZone godoc
// @Summary      Répartition du stock par zone
// @Tags         rapports
// @Produce      json
// @Success      200  {array}  dto.ZoneQuantityResponse
// @Router       /api/rapports/zones [get]
func (h *ReportHandler) ByZone(c *fiber.Ctx) error {
	list, err := h.uc.DistributionByZone(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.FromZoneQuantities(list))
}

// Movements godoc
// @Summary      Journal unifié des mouvements
// @Tags         rapports
// @Produce      json
// @Param        limit  query  int  false  "Limite"  default(50)
// @Success      200  {array}  dto.MovementResponse
// @Router       /api/rapports/mouvements [get]
func (h *ReportHandler) Movements(c *fiber.Ctx) error {
	list, err := h.uc.Movements(c.Context(), c.QueryInt("limit", 50))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.FromMovements(list))
}
