package report

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestistock/wms-api/internal/application/alert"
	"github.com/gestistock/wms-api/internal/domain/entity"
	"github.com/gestistock/wms-api/internal/domain/repository"
	"github.com/gestistock/wms-api/pkg/config"
	"github.com/gestistock/wms-api/pkg/logger"
)

// fakeReportingRepo valeurs fixes, avec panne simulée globale.
type fakeReportingRepo struct {
	totalStock int64
	active     int64
	lots       int64
	expired    int64
	distinct   int64
	outOfStock int64
	quantity   int64
	receptions int64
	pending    int64
	down       bool
}

func (f *fakeReportingRepo) val(n int64) (int64, error) {
	if f.down {
		return 0, errors.New("magasin indisponible")
	}
	return n, nil
}

func (f *fakeReportingRepo) TotalStock(context.Context) (int64, error) { return f.val(f.totalStock) }

func (f *fakeReportingRepo) ActiveReferences(context.Context) (int64, error) { return f.val(f.active) }

func (f *fakeReportingRepo) TotalLots(context.Context) (int64, error) { return f.val(f.lots) }

func (f *fakeReportingRepo) ExpiredLots(context.Context) (int64, error) { return f.val(f.expired) }
func (f *fakeReportingRepo) DistinctReferences(context.Context) (int64, error) {
	return f.val(f.distinct)
}
func (f *fakeReportingRepo) OutOfStockReferences(context.Context) (int64, error) {
	return f.val(f.outOfStock)
}
func (f *fakeReportingRepo) TotalQuantity(context.Context) (int64, error) { return f.val(f.quantity) }
func (f *fakeReportingRepo) ReceptionsOn(context.Context, string) (int64, error) {
	return f.val(f.receptions)
}
func (f *fakeReportingRepo) PendingShipments(context.Context) (int64, error) { return f.val(f.pending) }
func (f *fakeReportingRepo) TopReferences(context.Context, int) ([]repository.ReferenceQuantity, error) {
	if f.down {
		return nil, errors.New("magasin indisponible")
	}
	return []repository.ReferenceQuantity{{Reference: "REF001", Designation: "Vis M4", Quantity: 40}}, nil
}
func (f *fakeReportingRepo) DistributionByLocation(context.Context) ([]repository.LocationQuantity, error) {
	return nil, nil
}
func (f *fakeReportingRepo) DistributionByZone(context.Context) ([]repository.ZoneQuantity, error) {
	return nil, nil
}
func (f *fakeReportingRepo) Movements(context.Context, int) ([]entity.Movement, error) {
	return nil, nil
}

type memSettings struct{ values map[string]string }

func (m *memSettings) Get(key string) (string, error) { return m.values[key], nil }

func (m *memSettings) Set(string, string, string) error { return nil }

func (m *memSettings) All() ([]*entity.Setting, error) { return nil, nil }

func (m *memSettings) DeleteAll() error { return nil }

// emptyStockRepo aucune alerte.
type emptyStockRepo struct{ repository.StockRepository }

func (emptyStockRepo) ListBelowQuantity(int64) ([]*entity.StockLine, error) { return nil, nil }

func (emptyStockRepo) ListExpiringWithin(int) ([]*entity.StockLine, error) { return nil, nil }

func newTestUseCase(r *fakeReportingRepo, settings *memSettings) *UseCase {
	log := logger.New(logger.Config{Env: "production", Level: "error"})
	alerts := alert.NewUseCase(emptyStockRepo{}, settings, config.AlertConfig{LowStockThreshold: 10, ExpirationHorizonDays: 7})
	return NewUseCase(r, settings, alerts, log)
}

func TestDashboardComputesKPIs(t *testing.T) {
	repo := &fakeReportingRepo{
		totalStock: 250, active: 12, lots: 5, expired: 1,
		distinct: 20, outOfStock: 5, quantity: 250,
		receptions: 3, pending: 2,
	}
	uc := newTestUseCase(repo, &memSettings{})

	k := uc.Dashboard(context.Background())

	assert.Equal(t, int64(250), k.TotalStock)
	assert.Equal(t, int64(12), k.ActiveReferences)
	assert.Equal(t, int64(5), k.TotalLots)
	assert.Equal(t, int64(1), k.ExpiredLots)
	assert.Equal(t, int64(3), k.ReceptionsToday)
	assert.Equal(t, int64(2), k.PendingShipments)
	// 5 ruptures sur 20 références = 25 %.
	assert.True(t, k.StockoutRate.Equal(decimal.NewFromFloat(25.0)), "taux de rupture: %s", k.StockoutRate)
	// 250 unités × 10 (prix de repli).
	assert.True(t, k.StockValue.Equal(decimal.NewFromInt(2500)), "valeur du stock: %s", k.StockValue)
}

func TestDashboardReturnsZerosWhenStoreDown(t *testing.T) {
	repo := &fakeReportingRepo{down: true}
	uc := newTestUseCase(repo, &memSettings{})

	k := uc.Dashboard(context.Background())

	assert.Zero(t, k.TotalStock)
	assert.Zero(t, k.ActiveReferences)
	assert.Zero(t, k.TotalLots)
	assert.Zero(t, k.ExpiredLots)
	assert.Zero(t, k.ReceptionsToday)
	assert.Zero(t, k.PendingShipments)
	assert.True(t, k.StockoutRate.IsZero())
	assert.True(t, k.StockValue.IsZero())
}

func TestStockValueUsesConfiguredUnitCost(t *testing.T) {
	repo := &fakeReportingRepo{quantity: 100, distinct: 1}
	settings := &memSettings{values: map[string]string{entity.SettingEstimatedUnitCost: "2.50"}}
	uc := newTestUseCase(repo, settings)

	k := uc.Dashboard(context.Background())
	assert.True(t, k.StockValue.Equal(decimal.NewFromInt(250)), "valeur du stock: %s", k.StockValue)
}

func TestUnreadableUnitCostFallsBack(t *testing.T) {
	repo := &fakeReportingRepo{quantity: 10, distinct: 1}
	settings := &memSettings{values: map[string]string{entity.SettingEstimatedUnitCost: "gratuit"}}
	uc := newTestUseCase(repo, settings)

	k := uc.Dashboard(context.Background())
	assert.True(t, k.StockValue.Equal(decimal.NewFromInt(100)))
}

func TestTopReferencesDefaultLimit(t *testing.T) {
	uc := newTestUseCase(&fakeReportingRepo{}, &memSettings{})

	list, err := uc.TopReferences(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "REF001", list[0].Reference)
}
