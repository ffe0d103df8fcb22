package stock

import (
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestistock/wms-api/internal/domain"
	"github.com/gestistock/wms-api/internal/domain/entity"
	"github.com/gestistock/wms-api/internal/domain/repository"
)

// fakeStockRepo grand livre en mémoire pour les tests.
type fakeStockRepo struct {
	lines  []*entity.StockLine
	nextID int64
}

func newFakeStockRepo() *fakeStockRepo { return &fakeStockRepo{nextID: 1} }

func (f *fakeStockRepo) ListLines(reference, location string) ([]*entity.StockLine, error) {
	var out []*entity.StockLine
	for _, l := range f.lines {
		if l.Reference == reference && l.Location == location {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeStockRepo) SumQuantity(reference, location string) (int64, error) {
	var sum int64
	for _, l := range f.lines {
		if l.Reference == reference && l.Location == location {
			sum += l.Quantity
		}
	}
	return sum, nil
}

func (f *fakeStockRepo) Insert(line *entity.StockLine) error {
	line.ID = f.nextID
	f.nextID++
	line.CreatedAt = time.Now()
	line.UpdatedAt = line.CreatedAt
	f.lines = append(f.lines, line)
	return nil
}

func (f *fakeStockRepo) UpdateQuantity(id int64, quantity int64) error {
	for _, l := range f.lines {
		if l.ID == id {
			l.Quantity = quantity
			l.UpdatedAt = time.Now()
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeStockRepo) FirstDesignation(reference string) (string, error) {
	for _, l := range f.lines {
		if l.Reference == reference {
			return l.Designation, nil
		}
	}
	return "", nil
}

func (f *fakeStockRepo) List(filter repository.StockFilter) ([]*entity.StockLine, error) {
	var out []*entity.StockLine
	for _, l := range f.lines {
		if filter.Search != "" &&
			!strings.Contains(l.Reference, filter.Search) &&
			!strings.Contains(l.Designation, filter.Search) {
			continue
		}
		if filter.Location != "" && l.Location != filter.Location {
			continue
		}
		if filter.LowStockBelow > 0 && l.Quantity >= filter.LowStockBelow {
			continue
		}
		out = append(out, l)
	}
	return out, nil
}

func (f *fakeStockRepo) References() ([]string, error) {
	seen := map[string]bool{}
	var refs []string
	for _, l := range f.lines {
		if !seen[l.Reference] {
			seen[l.Reference] = true
			refs = append(refs, l.Reference)
		}
	}
	sort.Strings(refs)
	return refs, nil
}

func (f *fakeStockRepo) ListBelowQuantity(threshold int64) ([]*entity.StockLine, error) {
	var out []*entity.StockLine
	for _, l := range f.lines {
		if l.Quantity < threshold {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeStockRepo) ListExpiringWithin(days int) ([]*entity.StockLine, error) {
	horizon := time.Now().AddDate(0, 0, days)
	var out []*entity.StockLine
	for _, l := range f.lines {
		if l.ExpirationDate != nil && !l.ExpirationDate.After(horizon) {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeStockRepo) DeleteByReference(reference string) error {
	var kept []*entity.StockLine
	for _, l := range f.lines {
		if l.Reference != reference {
			kept = append(kept, l)
		}
	}
	f.lines = kept
	return nil
}

func (f *fakeStockRepo) DeleteAll() error {
	f.lines = nil
	return nil
}

func (f *fakeStockRepo) ClearLots() error {
	for _, l := range f.lines {
		l.Lot = nil
		l.ExpirationDate = nil
	}
	return nil
}

func TestIncreaseCreatesLineWithDefaults(t *testing.T) {
	repo := newFakeStockRepo()

	err := Increase(repo, IncreaseInput{Reference: "REF001", Quantity: 50})
	require.NoError(t, err)

	require.Len(t, repo.lines, 1)
	line := repo.lines[0]
	assert.Equal(t, "LIBRE", line.Location)
	assert.Equal(t, "Produit REF001", line.Designation)
	assert.Equal(t, int64(50), line.Quantity)
}

func TestIncreaseTopsUpOldestDuplicate(t *testing.T) {
	repo := newFakeStockRepo()
	require.NoError(t, repo.Insert(&entity.StockLine{Reference: "REF001", Designation: "A", Quantity: 10, Location: "A-01"}))
	require.NoError(t, repo.Insert(&entity.StockLine{Reference: "REF001", Designation: "A", Quantity: 5, Location: "A-01"}))

	require.NoError(t, Increase(repo, IncreaseInput{Reference: "REF001", Location: "A-01", Quantity: 7}))

	assert.Equal(t, int64(17), repo.lines[0].Quantity, "la ligne la plus ancienne est complétée")
	assert.Equal(t, int64(5), repo.lines[1].Quantity)
	assert.Len(t, repo.lines, 2, "aucune nouvelle ligne n'est créée")
}

func TestIncreaseRejectsNegativeQuantity(t *testing.T) {
	repo := newFakeStockRepo()
	err := Increase(repo, IncreaseInput{Reference: "REF001", Quantity: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
	assert.Empty(t, repo.lines)
}

func TestDecreaseConsumesOldestFirst(t *testing.T) {
	repo := newFakeStockRepo()
	require.NoError(t, repo.Insert(&entity.StockLine{Reference: "REF001", Quantity: 10, Location: "A-01"}))
	require.NoError(t, repo.Insert(&entity.StockLine{Reference: "REF001", Quantity: 8, Location: "A-01"}))

	require.NoError(t, Decrease(repo, "REF001", "A-01", 12))

	assert.Equal(t, int64(0), repo.lines[0].Quantity, "la plus ancienne est consommée d'abord")
	assert.Equal(t, int64(6), repo.lines[1].Quantity)
	assert.Len(t, repo.lines, 2, "les lignes à zéro sont conservées")
}

func TestDecreaseValidatesAggregateBeforeWriting(t *testing.T) {
	repo := newFakeStockRepo()
	require.NoError(t, repo.Insert(&entity.StockLine{Reference: "REF001", Quantity: 5, Location: "A-01"}))
	require.NoError(t, repo.Insert(&entity.StockLine{Reference: "REF001", Quantity: 3, Location: "A-01"}))

	err := Decrease(repo, "REF001", "A-01", 9)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, int64(5), repo.lines[0].Quantity, "rien n'est écrit en cas d'échec")
	assert.Equal(t, int64(3), repo.lines[1].Quantity)
}

func TestDecreaseNoLineAtLocation(t *testing.T) {
	repo := newFakeStockRepo()
	require.NoError(t, repo.Insert(&entity.StockLine{Reference: "REF001", Quantity: 100, Location: "A-01"}))

	err := Decrease(repo, "REF001", "B-02", 1)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}

func TestBalanceAggregatesDuplicates(t *testing.T) {
	repo := newFakeStockRepo()
	require.NoError(t, repo.Insert(&entity.StockLine{Reference: "REF001", Quantity: 10, Location: "A-01"}))
	require.NoError(t, repo.Insert(&entity.StockLine{Reference: "REF001", Quantity: 5, Location: "A-01"}))
	require.NoError(t, repo.Insert(&entity.StockLine{Reference: "REF001", Quantity: 99, Location: "B-02"}))

	balance, err := Balance(repo, "REF001", "A-01")
	require.NoError(t, err)
	assert.Equal(t, int64(15), balance)

	none, err := Balance(repo, "ABSENT", "A-01")
	require.NoError(t, err)
	assert.Equal(t, int64(0), none)
}

func TestAddItemAppliesDefaults(t *testing.T) {
	repo := newFakeStockRepo()
	uc := NewUseCase(repo)

	line, err := uc.AddItem(AddItemInput{Quantity: 3})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(line.Reference, "REF_"))
	assert.Equal(t, "Article "+line.Reference, line.Designation)
	assert.Equal(t, "LIBRE", line.Location)
}

func TestAddItemAlwaysInsertsNewLine(t *testing.T) {
	repo := newFakeStockRepo()
	uc := NewUseCase(repo)

	_, err := uc.AddItem(AddItemInput{Reference: "REF001", Quantity: 3, Location: "A-01"})
	require.NoError(t, err)
	_, err = uc.AddItem(AddItemInput{Reference: "REF001", Quantity: 4, Location: "A-01"})
	require.NoError(t, err)

	assert.Len(t, repo.lines, 2, "la saisie manuelle crée toujours une nouvelle ligne")
}

func TestDeleteReferenceRequiresName(t *testing.T) {
	uc := NewUseCase(newFakeStockRepo())
	assert.ErrorIs(t, uc.DeleteReference("  "), domain.ErrInvalidInput)
}

func TestClearAllIsIdempotent(t *testing.T) {
	repo := newFakeStockRepo()
	uc := NewUseCase(repo)
	require.NoError(t, repo.Insert(&entity.StockLine{Reference: "REF001", Quantity: 1, Location: "A-01"}))

	require.NoError(t, uc.ClearAll())
	require.NoError(t, uc.ClearAll(), "vider un livre vide réussit")
	assert.Empty(t, repo.lines)
}

func TestImportRowsStopsAtFirstError(t *testing.T) {
	repo := newFakeStockRepo()
	uc := NewUseCase(repo)

	res, err := uc.ImportRows([]ImportRow{
		{Reference: "REF001", Quantity: 5, Location: "A-01"},
		{Reference: "REF002", Quantity: -1},
		{Reference: "REF003", Quantity: 2},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
	assert.Equal(t, 1, res.Applied)
	assert.NotEmpty(t, res.BatchID)
	assert.Len(t, repo.lines, 1, "les lignes après l'erreur ne sont pas appliquées")
}

func TestImportRowsDefaultsDesignation(t *testing.T) {
	repo := newFakeStockRepo()
	uc := NewUseCase(repo)

	res, err := uc.ImportRows([]ImportRow{{Reference: "REF001", Quantity: 5}})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Applied)
	require.Len(t, repo.lines, 1)
	assert.Equal(t, "Article REF001", repo.lines[0].Designation)
}
