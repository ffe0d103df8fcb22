package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gestistock/wms-api/internal/application/dto"
	"github.com/gestistock/wms-api/internal/application/stock"
	"github.com/gestistock/wms-api/internal/domain/repository"
)

// StockHandler gère les requêtes HTTP du grand livre de stock.
type StockHandler struct {
	uc *stock.UseCase
}

// NewStockHandler construit le handler.
func NewStockHandler(uc *stock.UseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// List godoc
// @Summary      Lister les lignes de stock
// @Tags         stocks
// @Produce      json
// @Param        recherche    query  string  false  "Texte libre sur référence/désignation"
// @Param        emplacement  query  string  false  "Emplacement exact"
// @Param        stock_faible query  int     false  "Seuil : quantité strictement inférieure"
// @Param        expire_dans  query  int     false  "Horizon d'expiration en jours"
// @Success      200  {array}  dto.StockLineResponse
// @Router       /api/stocks [get]
func (h *StockHandler) List(c *fiber.Ctx) error {
	filter := repository.StockFilter{
		Search:             c.Query("recherche"),
		Location:           c.Query("emplacement"),
		LowStockBelow:      int64(c.QueryInt("stock_faible", 0)),
		ExpiringWithinDays: c.QueryInt("expire_dans", 0),
	}
	lines, err := h.uc.List(filter)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.FromStockLines(lines))
}

// Add godoc
// @Summary      Ajouter une ligne de stock (ajustement manuel)
// @Tags         stocks
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddStockRequest  true  "Ligne à ajouter"
// @Success      201   {object}  dto.StockLineResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/stocks [post]
func (h *StockHandler) Add(c *fiber.Ctx) error {
	var in dto.AddStockRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if ok, err := validateStruct(c, in); !ok {
		return err
	}
	line, err := h.uc.AddItem(stock.AddItemInput{
		Reference:      in.Reference,
		Designation:    in.Designation,
		Quantity:       in.Quantity,
		Location:       in.Location,
		Lot:            in.Lot,
		ExpirationDate: in.ExpirationDate,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromStockLine(line))
}

// Balance godoc
// @Summary      Solde agrégé d'un couple (référence, emplacement)
// @Tags         stocks
// @Produce      json
// @Param        reference    path   string  true  "Référence"
// @Param        emplacement  query  string  true  "Emplacement"
// @Success      200  {object}  dto.BalanceResponse
// @Router       /api/stocks/{reference}/solde [get]
func (h *StockHandler) Balance(c *fiber.Ctx) error {
	reference := c.Params("reference")
	location := c.Query("emplacement", stock.DefaultLocation)
	balance, err := h.uc.GetBalance(reference, location)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.BalanceResponse{Reference: reference, Location: location, Balance: balance})
}

// References godoc
// @Summary      Références distinctes du grand livre
// @Tags         stocks
// @Produce      json
// @Success      200  {array}  string
// @Router       /api/stocks/references [get]
func (h *StockHandler) References(c *fiber.Ctx) error {
	refs, err := h.uc.References()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(refs)
}

// Import godoc
// @Summary      Import en masse de lignes de stock
// @Tags         stocks
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ImportStockRequest  true  "Lignes à importer"
// @Success      200   {object}  dto.ImportStockResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/stocks/import [post]
func (h *StockHandler) Import(c *fiber.Ctx) error {
	var in dto.ImportStockRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if ok, err := validateStruct(c, in); !ok {
		return err
	}
	rows := make([]stock.ImportRow, 0, len(in.Rows))
	for _, r := range in.Rows {
		rows = append(rows, stock.ImportRow{
			Reference:      r.Reference,
			Designation:    r.Designation,
			Quantity:       r.Quantity,
			Location:       r.Location,
			Lot:            r.Lot,
			ExpirationDate: r.ExpirationDate,
		})
	}
	res, err := h.uc.ImportRows(rows)
	if err != nil {
		// L'import s'arrête à la première ligne fautive ; le bilan partiel
		// est perdu côté client, seule l'erreur est renvoyée.
		return writeError(c, err)
	}
	return c.JSON(dto.ImportStockResponse{BatchID: res.BatchID, Applied: res.Applied})
}

// DeleteReference godoc
// @Summary      Supprimer toutes les lignes d'une référence
// @Tags         stocks
// @Produce      json
// @Param        reference  path  string  true  "Référence"
// @Success      200  {object}  dto.MessageResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/stocks/{reference} [delete]
func (h *StockHandler) DeleteReference(c *fiber.Ctx) error {
	if err := h.uc.DeleteReference(c.Params("reference")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "référence supprimée"})
}

// Clear godoc
// @Summary      Vider le grand livre
// @Tags         stocks
// @Produce      json
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/stocks [delete]
func (h *StockHandler) Clear(c *fiber.Ctx) error {
	if err := h.uc.ClearAll(); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "stock vidé"})
}
