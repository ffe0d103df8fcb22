// Package report agrège les KPIs et les vues du tableau de bord.
// Lecture seule : chaque appel relit l'état courant du magasin.
package report

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gestistock/wms-api/internal/application/alert"
	"github.com/gestistock/wms-api/internal/domain/entity"
	"github.com/gestistock/wms-api/internal/domain/repository"
	"github.com/gestistock/wms-api/pkg/logger"
)

// DefaultUnitCost prix unitaire estimé de repli pour la valorisation.
var DefaultUnitCost = decimal.NewFromInt(10)

// KPIs indicateurs du tableau de bord. Un échec de lecture produit des
// zéros, jamais une erreur : le tableau de bord s'affiche toujours.
type KPIs struct {
	TotalStock       int64           `json:"total_stock"`
	ActiveReferences int64           `json:"references_actives"`
	TotalLots        int64           `json:"lots_total"`
	ExpiredLots      int64           `json:"lots_expires"`
	StockoutRate     decimal.Decimal `json:"taux_rupture"`
	StockValue       decimal.Decimal `json:"valeur_stock"`
	ReceptionsToday  int64           `json:"receptions_du_jour"`
	PendingShipments int64           `json:"expeditions_en_attente"`
	AlertCount       int             `json:"alertes"`
}

// UseCase agrégateur de rapports.
type UseCase struct {
	reportingRepo repository.ReportingRepository
	settingsRepo  repository.SettingsRepository
	alerts        *alert.UseCase
	log           *logger.Logger
}

// NewUseCase construit l'agrégateur de rapports.
func NewUseCase(
	reportingRepo repository.ReportingRepository,
	settingsRepo repository.SettingsRepository,
	alerts *alert.UseCase,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		reportingRepo: reportingRepo,
		settingsRepo:  settingsRepo,
		alerts:        alerts,
		log:           log,
	}
}

// count absorbe l'erreur d'une consultation : zéro et un log en cas d'échec.
func (uc *UseCase) count(name string, n int64, err error) int64 {
	if err != nil {
		uc.log.Warn().Err(err).Str("kpi", name).Msg("lecture KPI échouée, valeur zéro")
		return 0
	}
	return n
}

// unitCost renvoie le prix unitaire estimé depuis les paramètres, avec
// repli sur DefaultUnitCost.
func (uc *UseCase) unitCost() decimal.Decimal {
	raw, err := uc.settingsRepo.Get(entity.SettingEstimatedUnitCost)
	if err != nil || raw == "" {
		return DefaultUnitCost
	}
	d, err := decimal.NewFromString(raw)
	if err != nil || d.IsNegative() {
		return DefaultUnitCost
	}
	return d
}

// Dashboard calcule tous les KPIs du tableau de bord.
func (uc *UseCase) Dashboard(ctx context.Context) KPIs {
	r := uc.reportingRepo
	k := KPIs{
		StockoutRate: decimal.Zero,
		StockValue:   decimal.Zero,
	}

	total, err := r.TotalStock(ctx)
	k.TotalStock = uc.count("total_stock", total, err)

	active, err := r.ActiveReferences(ctx)
	k.ActiveReferences = uc.count("references_actives", active, err)

	lots, err := r.TotalLots(ctx)
	k.TotalLots = uc.count("lots_total", lots, err)

	expired, err := r.ExpiredLots(ctx)
	k.ExpiredLots = uc.count("lots_expires", expired, err)

	distinct, err := r.DistinctReferences(ctx)
	distinct = uc.count("references_distinctes", distinct, err)
	if distinct > 0 {
		out, err := r.OutOfStockReferences(ctx)
		out = uc.count("references_en_rupture", out, err)
		k.StockoutRate = decimal.NewFromInt(out).
			Div(decimal.NewFromInt(distinct)).
			Mul(decimal.NewFromInt(100)).
			Round(1)
	}

	quantity, err := r.TotalQuantity(ctx)
	quantity = uc.count("quantite_totale", quantity, err)
	k.StockValue = decimal.NewFromInt(quantity).Mul(uc.unitCost())

	today := time.Now().Format("2006-01-02")
	receptions, err := r.ReceptionsOn(ctx, today)
	k.ReceptionsToday = uc.count("receptions_du_jour", receptions, err)

	pending, err := r.PendingShipments(ctx)
	k.PendingShipments = uc.count("expeditions_en_attente", pending, err)

	if n, err := uc.alerts.Count(); err != nil {
		uc.log.Warn().Err(err).Msg("comptage des alertes échoué, valeur zéro")
	} else {
		k.AlertCount = n
	}

	return k
}

// TopReferences renvoie les références les plus stockées, par quantité
// agrégée décroissante.
func (uc *UseCase) TopReferences(ctx context.Context, limit int) ([]repository.ReferenceQuantity, error) {
	if limit <= 0 {
		limit = 10
	}
	return uc.reportingRepo.TopReferences(ctx, limit)
}

// DistributionByLocation renvoie la répartition du stock par emplacement.
func (uc *UseCase) DistributionByLocation(ctx context.Context) ([]repository.LocationQuantity, error) {
	return uc.reportingRepo.DistributionByLocation(ctx)
}

// DistributionByZone renvoie la répartition du stock par zone.
func (uc *UseCase) DistributionByZone(ctx context.Context) ([]repository.ZoneQuantity, error) {
	return uc.reportingRepo.DistributionByZone(ctx)
}

// Movements renvoie le journal unifié des mouvements, le plus récent d'abord.
func (uc *UseCase) Movements(ctx context.Context, limit int) ([]entity.Movement, error) {
	if limit <= 0 {
		limit = 50
	}
	return uc.reportingRepo.Movements(ctx, limit)
}
