package alert

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestistock/wms-api/internal/domain/entity"
	"github.com/gestistock/wms-api/internal/domain/repository"
	"github.com/gestistock/wms-api/pkg/config"
)

// alertStockRepo implémente uniquement les lectures utilisées par les alertes.
type alertStockRepo struct {
	repository.StockRepository
	lines []*entity.StockLine
}

func (f *alertStockRepo) ListBelowQuantity(threshold int64) ([]*entity.StockLine, error) {
	var out []*entity.StockLine
	for _, l := range f.lines {
		if l.Quantity < threshold {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *alertStockRepo) ListExpiringWithin(days int) ([]*entity.StockLine, error) {
	horizon := time.Now().AddDate(0, 0, days)
	var out []*entity.StockLine
	for _, l := range f.lines {
		if l.ExpirationDate != nil && !l.ExpirationDate.After(horizon) {
			out = append(out, l)
		}
	}
	return out, nil
}

type memSettings struct {
	values map[string]string
}

func (m *memSettings) Get(key string) (string, error) { return m.values[key], nil }
func (m *memSettings) Set(key, value, _ string) error {
	if m.values == nil {
		m.values = map[string]string{}
	}
	m.values[key] = value
	return nil
}
func (m *memSettings) All() ([]*entity.Setting, error) { return nil, nil }
func (m *memSettings) DeleteAll() error                { m.values = nil; return nil }

var testDefaults = config.AlertConfig{LowStockThreshold: 10, ExpirationHorizonDays: 7}

func line(ref string, qty int64, exp *time.Time) *entity.StockLine {
	return &entity.StockLine{Reference: ref, Quantity: qty, Location: "A-01", ExpirationDate: exp}
}

func daysFromNow(n int) *time.Time {
	t := time.Now().AddDate(0, 0, n)
	return &t
}

func TestLowStockUsesDefaultThreshold(t *testing.T) {
	repo := &alertStockRepo{lines: []*entity.StockLine{
		line("REF001", 3, nil),
		line("REF002", 10, nil),
		line("REF003", 42, nil),
	}}
	uc := NewUseCase(repo, &memSettings{}, testDefaults)

	low, err := uc.LowStock()
	require.NoError(t, err)
	require.Len(t, low, 1, "strictement inférieur au seuil")
	assert.Equal(t, "REF001", low[0].Reference)
}

func TestThresholdFromSettingsOverridesDefault(t *testing.T) {
	repo := &alertStockRepo{lines: []*entity.StockLine{
		line("REF001", 3, nil),
		line("REF002", 10, nil),
	}}
	settings := &memSettings{values: map[string]string{entity.SettingLowStockThreshold: "20"}}
	uc := NewUseCase(repo, settings, testDefaults)

	assert.Equal(t, int64(20), uc.LowStockThreshold())
	low, err := uc.LowStock()
	require.NoError(t, err)
	assert.Len(t, low, 2)
}

func TestInvalidSettingFallsBackToDefault(t *testing.T) {
	settings := &memSettings{values: map[string]string{
		entity.SettingLowStockThreshold: "beaucoup",
		entity.SettingExpirationHorizon: "-2",
	}}
	uc := NewUseCase(&alertStockRepo{}, settings, testDefaults)

	assert.Equal(t, int64(10), uc.LowStockThreshold())
	assert.Equal(t, 7, uc.ExpirationHorizonDays())
}

func TestLineWithoutExpirationNeverAlerts(t *testing.T) {
	repo := &alertStockRepo{lines: []*entity.StockLine{
		line("REF001", 50, nil),
		line("REF002", 50, daysFromNow(2)),
		line("REF003", 50, daysFromNow(30)),
	}}
	uc := NewUseCase(repo, &memSettings{}, testDefaults)

	expiring, err := uc.Expiring()
	require.NoError(t, err)
	require.Len(t, expiring, 1)
	assert.Equal(t, "REF002", expiring[0].Reference)
}

func TestCountDoesNotDeduplicate(t *testing.T) {
	// REF001 est à la fois sous le seuil et proche de l'expiration :
	// elle compte deux fois.
	repo := &alertStockRepo{lines: []*entity.StockLine{
		line("REF001", 2, daysFromNow(1)),
		line("REF002", 3, nil),
	}}
	uc := NewUseCase(repo, &memSettings{}, testDefaults)

	n, err := uc.Count()
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestRaisingThresholdNeverShrinksAlertSet(t *testing.T) {
	repo := &alertStockRepo{lines: []*entity.StockLine{
		line("REF001", 1, nil),
		line("REF002", 5, nil),
		line("REF003", 15, nil),
	}}
	settings := &memSettings{}
	uc := NewUseCase(repo, settings, testDefaults)

	prev := 0
	for _, threshold := range []string{"2", "6", "16", "100"} {
		require.NoError(t, settings.Set(entity.SettingLowStockThreshold, threshold, ""))
		low, err := uc.LowStock()
		require.NoError(t, err)
		assert.GreaterOrEqual(t, len(low), prev)
		prev = len(low)
	}
}
