package usecase_test

import (
	"sort"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/bagmaker-pro/internal/application/dto"
	"github.com/tu-usuario/bagmaker-pro/internal/application/usecase"
	"github.com/tu-usuario/bagmaker-pro/internal/domain"
	"github.com/tu-usuario/bagmaker-pro/internal/domain/entity"
	"github.com/tu-usuario/bagmaker-pro/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake del puerto PartRepository, con la misma semántica que el adaptador real.
// ──────────────────────────────────────────────────────────────────────────────

type fakePartRepo struct {
	parts  map[int64]*entity.Part
	nextID int64
}

var _ repository.PartRepository = (*fakePartRepo)(nil)

func newFakePartRepo() *fakePartRepo {
	return &fakePartRepo{parts: make(map[int64]*entity.Part)}
}

func (f *fakePartRepo) Create(p *entity.Part) error {
	f.nextID++
	p.ID = f.nextID
	cp := *p
	f.parts[p.ID] = &cp
	return nil
}

func (f *fakePartRepo) GetByID(id int64) (*entity.Part, error) {
	p, ok := f.parts[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakePartRepo) List() ([]*entity.Part, error) {
	ids := make([]int64, 0, len(f.parts))
	for id := range f.parts {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]*entity.Part, 0, len(ids))
	for _, id := range ids {
		cp := *f.parts[id]
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakePartRepo) Update(id int64, qty int64, cost, price decimal.Decimal) error {
	p, ok := f.parts[id]
	if !ok {
		return nil // no-op silencioso, como el almacén real
	}
	p.Qty, p.Cost, p.Price = qty, cost, price
	return nil
}

func (f *fakePartRepo) AdjustQuantity(id int64, delta int64) error {
	if p, ok := f.parts[id]; ok {
		p.Qty -= delta
	}
	return nil
}

const testThreshold = 5

func newUC() (*usecase.PartUseCase, *fakePartRepo) {
	repo := newFakePartRepo()
	return usecase.NewPartUseCase(repo, testThreshold), repo
}

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// ──────────────────────────────────────────────────────────────────────────────
// Create / List
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_AgregaExactamenteUnaFila(t *testing.T) {
	uc, _ := newUC()

	before, err := uc.List()
	require.NoError(t, err)

	out, err := uc.Create(dto.CreatePartRequest{
		SKU: "HW-101", Name: "Swivel Hook", Category: "Hardware", Color: "Nickel",
		Qty: 12, Cost: d("0.85"), Price: d("2.25"),
	})
	require.NoError(t, err)
	assert.NotZero(t, out.ID, "el ID se asigna en el insert")

	after, err := uc.List()
	require.NoError(t, err)
	require.Len(t, after.Items, len(before.Items)+1)

	got := after.Items[len(after.Items)-1]
	assert.Equal(t, "HW-101", got.SKU)
	assert.Equal(t, "Swivel Hook", got.Name)
	assert.Equal(t, "Hardware", got.Category)
	assert.Equal(t, "Nickel", got.Color)
	assert.EqualValues(t, 12, got.Qty)
	assert.True(t, got.Cost.Equal(d("0.85")))
	assert.True(t, got.Price.Equal(d("2.25")))
}

func TestCreate_IDsUnicos(t *testing.T) {
	uc, _ := newUC()
	a, err := uc.Create(dto.CreatePartRequest{SKU: "A-1", Name: "A"})
	require.NoError(t, err)
	b, err := uc.Create(dto.CreatePartRequest{SKU: "B-2", Name: "B"})
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestCreate_SKUDuplicadoSeAceptaEnSilencio(t *testing.T) {
	uc, _ := newUC()
	_, err := uc.Create(dto.CreatePartRequest{SKU: "DUP-1", Name: "Primera"})
	require.NoError(t, err)
	_, err = uc.Create(dto.CreatePartRequest{SKU: "DUP-1", Name: "Segunda"})
	require.NoError(t, err, "sin chequeo de unicidad de SKU")

	list, err := uc.List()
	require.NoError(t, err)
	assert.Len(t, list.Items, 2)
}

func TestCreate_CategoriaFueraDelConjunto(t *testing.T) {
	uc, _ := newUC()
	_, err := uc.Create(dto.CreatePartRequest{SKU: "X", Name: "X", Category: "Leather"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(dto.CreatePartRequest{SKU: "X", Name: "X", Color: "Silver"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Vacío es la variante "sin especificar": válido.
	_, err = uc.Create(dto.CreatePartRequest{SKU: "X", Name: "X"})
	assert.NoError(t, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdate_SobreescribeSoloLosNumericos(t *testing.T) {
	uc, _ := newUC()
	created, err := uc.Create(dto.CreatePartRequest{
		SKU: "FAB-001", Name: "Canvas", Category: "Fabric", Color: "Natural",
		Qty: 10, Cost: d("8.50"), Price: d("15.00"),
	})
	require.NoError(t, err)

	out, err := uc.Update(created.ID, dto.UpdatePartRequest{Qty: 25, Cost: d("9.00"), Price: d("16.50")})
	require.NoError(t, err)
	require.NotNil(t, out)

	list, err := uc.List()
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	got := list.Items[0]
	assert.EqualValues(t, 25, got.Qty)
	assert.True(t, got.Cost.Equal(d("9.00")))
	assert.True(t, got.Price.Equal(d("16.50")))
	// El resto de los campos queda intacto.
	assert.Equal(t, "FAB-001", got.SKU)
	assert.Equal(t, "Canvas", got.Name)
	assert.Equal(t, "Fabric", got.Category)
	assert.Equal(t, "Natural", got.Color)
}

func TestUpdate_IDInexistenteNoTocaLaTabla(t *testing.T) {
	uc, _ := newUC()
	_, err := uc.Create(dto.CreatePartRequest{SKU: "A-1", Name: "A", Qty: 10})
	require.NoError(t, err)

	out, err := uc.Update(999, dto.UpdatePartRequest{Qty: 0})
	require.NoError(t, err)
	assert.Nil(t, out, "id ausente: nil para que el borde responda 404")

	list, err := uc.List()
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	assert.EqualValues(t, 10, list.Items[0].Qty, "la tabla no cambió")
}

// ──────────────────────────────────────────────────────────────────────────────
// AdjustQuantity (semántica del puerto, verificada sobre el fake)
// ──────────────────────────────────────────────────────────────────────────────

func TestAdjustQuantity_PuedeQuedarNegativo(t *testing.T) {
	uc, repo := newUC()
	created, err := uc.Create(dto.CreatePartRequest{SKU: "A-1", Name: "A", Qty: 3})
	require.NoError(t, err)

	require.NoError(t, repo.AdjustQuantity(created.ID, 5))

	got, err := uc.GetByID(created.ID)
	require.NoError(t, err)
	assert.EqualValues(t, -2, got.Qty, "qty = qty - delta, sin piso")
}

// ──────────────────────────────────────────────────────────────────────────────
// LowStock / ExportCSV
// ──────────────────────────────────────────────────────────────────────────────

func TestLowStock_UmbralInclusive(t *testing.T) {
	uc, _ := newUC()
	_, err := uc.Create(dto.CreatePartRequest{SKU: "OK-1", Name: "Sobrada", Qty: testThreshold + 1})
	require.NoError(t, err)
	_, err = uc.Create(dto.CreatePartRequest{SKU: "LOW-1", Name: "En el umbral", Qty: testThreshold})
	require.NoError(t, err)
	_, err = uc.Create(dto.CreatePartRequest{SKU: "LOW-2", Name: "Bajo el umbral", Qty: 0})
	require.NoError(t, err)

	out, err := uc.LowStock()
	require.NoError(t, err)
	require.Len(t, out.Items, 2)
	assert.Equal(t, "LOW-1", out.Items[0].SKU)
	assert.Equal(t, "LOW-2", out.Items[1].SKU)
	for _, item := range out.Items {
		assert.True(t, item.LowStock)
	}
}

func TestExportCSV_TablaCompleta(t *testing.T) {
	uc, _ := newUC()
	_, err := uc.Create(dto.CreatePartRequest{
		SKU: "HW-101", Name: "Swivel Hook", Category: "Hardware", Color: "Antique Brass",
		Qty: 12, Cost: d("0.85"), Price: d("2.25"),
	})
	require.NoError(t, err)

	data, err := uc.ExportCSV()
	require.NoError(t, err)

	csv := string(data)
	assert.Contains(t, csv, "id,part_number,name,category,color,qty,cost,price")
	assert.Contains(t, csv, `HW-101,Swivel Hook,Hardware,Antique Brass,12,0.85,2.25`)
}
