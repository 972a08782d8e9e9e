package inventory_test

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-supabase/internal/application/dto"
	"github.com/jhoicas/inventario-supabase/internal/application/inventory"
	"github.com/jhoicas/inventario-supabase/internal/domain"
	"github.com/jhoicas/inventario-supabase/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Backend en memoria: registra cada llamada para comprobar que no hubo peticiones
// ──────────────────────────────────────────────────────────────────────────────

type store struct {
	products  map[int64]*entity.Product
	sales     []*entity.Sale
	movements []*entity.Movement
	calls     []string

	failStockUpdate error
	failDelete      error
}

func newStore(products ...*entity.Product) *store {
	s := &store{products: make(map[int64]*entity.Product)}
	for _, p := range products {
		s.products[p.ID] = p
	}
	return s
}

type productRepo struct{ s *store }

func (r productRepo) List(ctx context.Context) ([]*entity.Product, error) {
	r.s.calls = append(r.s.calls, "GET productos")
	out := make([]*entity.Product, 0, len(r.s.products))
	for _, p := range r.s.products {
		out = append(out, p)
	}
	return out, nil
}

func (r productRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	r.s.calls = append(r.s.calls, "GET productos")
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r productRepo) Create(ctx context.Context, p *entity.Product) (*entity.Product, error) {
	r.s.calls = append(r.s.calls, "POST productos")
	return p, nil
}

func (r productRepo) Update(ctx context.Context, id int64, patch entity.ProductPatch) (*entity.Product, error) {
	r.s.calls = append(r.s.calls, "PATCH productos")
	if r.s.failStockUpdate != nil {
		return nil, r.s.failStockUpdate
	}
	p, ok := r.s.products[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if patch.Stock != nil {
		p.Stock = *patch.Stock
	}
	return p, nil
}

func (r productRepo) Delete(ctx context.Context, id int64) error {
	r.s.calls = append(r.s.calls, "DELETE productos")
	delete(r.s.products, id)
	return nil
}

type saleRepo struct{ s *store }

func (r saleRepo) List(ctx context.Context) ([]*entity.Sale, error) {
	r.s.calls = append(r.s.calls, "GET ventas")
	return r.s.sales, nil
}

func (r saleRepo) Create(ctx context.Context, v *entity.Sale) (*entity.Sale, error) {
	r.s.calls = append(r.s.calls, "POST ventas")
	cp := *v
	cp.ID = int64(len(r.s.sales) + 1)
	r.s.sales = append(r.s.sales, &cp)
	return &cp, nil
}

func (r saleRepo) Delete(ctx context.Context, id int64) error {
	r.s.calls = append(r.s.calls, "DELETE ventas")
	if r.s.failDelete != nil {
		return r.s.failDelete
	}
	kept := r.s.sales[:0]
	for _, v := range r.s.sales {
		if v.ID != id {
			kept = append(kept, v)
		}
	}
	r.s.sales = kept
	return nil
}

type movementRepo struct{ s *store }

func (r movementRepo) List(ctx context.Context) ([]*entity.Movement, error) {
	r.s.calls = append(r.s.calls, "GET movimientos_inventario")
	return r.s.movements, nil
}

func (r movementRepo) Create(ctx context.Context, m *entity.Movement) (*entity.Movement, error) {
	r.s.calls = append(r.s.calls, "POST movimientos_inventario")
	cp := *m
	cp.ID = int64(len(r.s.movements) + 1)
	r.s.movements = append(r.s.movements, &cp)
	return &cp, nil
}

func (r movementRepo) Delete(ctx context.Context, id int64) error {
	r.s.calls = append(r.s.calls, "DELETE movimientos_inventario")
	if r.s.failDelete != nil {
		return r.s.failDelete
	}
	kept := r.s.movements[:0]
	for _, m := range r.s.movements {
		if m.ID != id {
			kept = append(kept, m)
		}
	}
	r.s.movements = kept
	return nil
}

var fixedNow = time.Date(2024, 5, 1, 10, 30, 0, 0, time.FixedZone("PET", -5*3600))

func saleUseCase(s *store) *inventory.SaleUseCase {
	ledger := inventory.NewCompensatingLedger(productRepo{s}, saleRepo{s}, movementRepo{s}, nil)
	return inventory.NewSaleUseCase(saleRepo{s}, productRepo{s}, ledger).
		WithClock(func() time.Time { return fixedNow })
}

func movementUseCase(s *store) *inventory.MovementUseCase {
	ledger := inventory.NewCompensatingLedger(productRepo{s}, saleRepo{s}, movementRepo{s}, nil)
	return inventory.NewMovementUseCase(movementRepo{s}, productRepo{s}, ledger).
		WithClock(func() time.Time { return fixedNow })
}

func product(id int64, stock int, price int64) *entity.Product {
	return &entity.Product{ID: id, Name: "Producto", Category: "Varios", Price: decimal.NewFromInt(price), Stock: stock}
}

// ──────────────────────────────────────────────────────────────────────────────
// Ventas
// ──────────────────────────────────────────────────────────────────────────────

func TestSale_TotalYStockResultante(t *testing.T) {
	p := product(1, 5, 100)
	s := newStore(p)
	uc := saleUseCase(s)

	snapshot := *p
	res, err := uc.RegisterWithSnapshot(context.Background(), &snapshot, dto.RegisterSaleRequest{ProductID: 1, UserID: 7, Quantity: 3})
	require.NoError(t, err)

	assert.True(t, res.Sale.Total.Equal(decimal.NewFromInt(300)))
	assert.Equal(t, 2, res.RemainingStock)
	assert.Equal(t, 2, s.products[1].Stock)
	assert.Equal(t, []string{"POST ventas", "PATCH productos"}, s.calls)

	require.Len(t, s.sales, 1)
	assert.Equal(t, int64(7), s.sales[0].UserID)
	assert.True(t, s.sales[0].SoldAt.Equal(fixedNow))
	assert.Equal(t, time.UTC, s.sales[0].SoldAt.Location())
}

func TestSale_CantidadMayorAlStockNoEnviaNada(t *testing.T) {
	p := product(1, 2, 100)
	s := newStore(p)

	snapshot := *p
	_, err := saleUseCase(s).RegisterWithSnapshot(context.Background(), &snapshot, dto.RegisterSaleRequest{ProductID: 1, UserID: 7, Quantity: 3})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Empty(t, s.calls)
	assert.Equal(t, 2, s.products[1].Stock)

	// por Register solo se lee el producto; ninguna escritura
	_, err = saleUseCase(s).Register(context.Background(), dto.RegisterSaleRequest{ProductID: 1, UserID: 7, Quantity: 3})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, []string{"GET productos"}, s.calls)
	assert.Empty(t, s.sales)
}

func TestSale_Validaciones(t *testing.T) {
	s := newStore(product(1, 5, 100))
	uc := saleUseCase(s)
	snapshot := product(1, 5, 100)

	cases := map[string]dto.RegisterSaleRequest{
		"sin producto":  {UserID: 1, Quantity: 1},
		"sin vendedor":  {ProductID: 1, Quantity: 1},
		"cantidad cero": {ProductID: 1, UserID: 1, Quantity: 0},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := uc.RegisterWithSnapshot(context.Background(), snapshot, in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
	assert.Empty(t, s.calls)
}

func TestSale_RegisterCargaElProducto(t *testing.T) {
	s := newStore(product(1, 5, 100))
	uc := saleUseCase(s)

	res, err := uc.Register(context.Background(), dto.RegisterSaleRequest{ProductID: 1, UserID: 2, Quantity: 5})
	require.NoError(t, err)
	assert.Zero(t, res.RemainingStock)
	assert.Equal(t, "Producto", res.Sale.Product.Name)

	_, err = uc.Register(context.Background(), dto.RegisterSaleRequest{ProductID: 9, UserID: 2, Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSale_ListConEstadisticas(t *testing.T) {
	s := newStore()
	s.sales = []*entity.Sale{
		{ID: 1, Quantity: 3, Total: decimal.NewFromInt(300)},
		{ID: 2, Quantity: 1, Total: decimal.NewFromInt(50)},
	}
	res, err := saleUseCase(s).List(context.Background())
	require.NoError(t, err)
	assert.Len(t, res.Items, 2)
	assert.Equal(t, 4, res.Stats.TotalUnits)
	assert.True(t, res.Stats.TotalRevenue.Equal(decimal.NewFromInt(350)))
}

// ──────────────────────────────────────────────────────────────────────────────
// Movimientos
// ──────────────────────────────────────────────────────────────────────────────

func TestMovement_SalidaSinStockSeRechaza(t *testing.T) {
	p := product(2, 0, 10)
	s := newStore(p)

	snapshot := *p
	_, err := movementUseCase(s).RegisterWithSnapshot(context.Background(), &snapshot,
		dto.RegisterMovementRequest{ProductID: 2, Type: entity.MovementTypeExit, Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Empty(t, s.calls)
	assert.Equal(t, 0, s.products[2].Stock)
}

func TestMovement_SalidaYEntrada(t *testing.T) {
	p := product(2, 10, 10)
	s := newStore(p)
	uc := movementUseCase(s)

	out, err := uc.Register(context.Background(), dto.RegisterMovementRequest{ProductID: 2, Type: entity.MovementTypeExit, Quantity: 4})
	require.NoError(t, err)
	assert.Equal(t, 6, out.RemainingStock)

	in, err := uc.Register(context.Background(), dto.RegisterMovementRequest{
		ProductID: 2, Type: entity.MovementTypeEntry, Quantity: 20, Observation: "  compra a proveedor ",
	})
	require.NoError(t, err)
	assert.Equal(t, 26, in.RemainingStock)
	assert.Equal(t, 26, s.products[2].Stock)
	require.NotNil(t, in.Movement.Observation)
	assert.Equal(t, "compra a proveedor", *in.Movement.Observation)
	assert.Nil(t, out.Movement.Observation, "observación en blanco se guarda como null")
	assert.True(t, s.movements[0].MovedAt.Equal(fixedNow))
}

func TestMovement_EntradaNoDesbordaElStock(t *testing.T) {
	s := newStore(product(2, 5, 10))
	uc := movementUseCase(s)

	_, err := uc.Register(context.Background(), dto.RegisterMovementRequest{
		ProductID: 2, Type: entity.MovementTypeEntry, Quantity: math.MaxInt,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	snapshot := *product(2, math.MaxInt-10, 10)
	_, err = uc.RegisterWithSnapshot(context.Background(), &snapshot,
		dto.RegisterMovementRequest{ProductID: 2, Type: entity.MovementTypeEntry, Quantity: 11})
	var verr *dto.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "desborde_stock", verr.Fields["cantidad"])

	assert.Empty(t, s.movements)
	assert.Equal(t, 5, s.products[2].Stock)
}

func TestMovement_TipoInvalido(t *testing.T) {
	s := newStore(product(2, 10, 10))
	_, err := movementUseCase(s).Register(context.Background(), dto.RegisterMovementRequest{ProductID: 2, Type: "Ajuste", Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, s.calls)
}

func TestMovement_ListFiltraPeroStatsSobreTodo(t *testing.T) {
	s := newStore()
	s.movements = []*entity.Movement{
		{ID: 1, Type: entity.MovementTypeEntry, Quantity: 10},
		{ID: 2, Type: entity.MovementTypeExit, Quantity: 3},
	}
	res, err := movementUseCase(s).List(context.Background(), entity.MovementTypeExit)
	require.NoError(t, err)
	assert.Equal(t, "Salida", res.Filter)
	require.Len(t, res.Items, 1)
	assert.Equal(t, int64(2), res.Items[0].ID)
	assert.Equal(t, dto.MovementStats{TotalEntries: 10, TotalExits: 3}, res.Stats)
}

// ──────────────────────────────────────────────────────────────────────────────
// Compensación
// ──────────────────────────────────────────────────────────────────────────────

func TestLedger_CompensaSiFallaElStock(t *testing.T) {
	p := product(1, 5, 100)
	s := newStore(p)
	s.failStockUpdate = domain.ErrBackend

	snapshot := *p
	_, err := saleUseCase(s).RegisterWithSnapshot(context.Background(), &snapshot, dto.RegisterSaleRequest{ProductID: 1, UserID: 1, Quantity: 1})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBackend)
	assert.False(t, errors.Is(err, domain.ErrInconsistentState))

	assert.Equal(t, []string{"POST ventas", "PATCH productos", "DELETE ventas"}, s.calls)
	assert.Empty(t, s.sales, "la venta creada se revierte")
	assert.Equal(t, 5, s.products[1].Stock)
}

func TestLedger_EstadoInconsistenteSiNoSePuedeRevertir(t *testing.T) {
	p := product(1, 5, 10)
	s := newStore(p)
	s.failStockUpdate = domain.ErrBackend
	s.failDelete = errors.New("conexión cerrada")

	snapshot := *p
	_, err := movementUseCase(s).RegisterWithSnapshot(context.Background(), &snapshot,
		dto.RegisterMovementRequest{ProductID: 1, Type: entity.MovementTypeEntry, Quantity: 2})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInconsistentState)
	assert.ErrorIs(t, err, domain.ErrBackend)
	assert.Contains(t, err.Error(), "conexión cerrada")
	assert.Len(t, s.movements, 1)
}

func TestLedger_CompensaConContextoCancelado(t *testing.T) {
	p := product(1, 5, 10)
	s := newStore(p)
	s.failStockUpdate = context.Canceled

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	ledger := inventory.NewCompensatingLedger(productRepo{s}, saleRepo{s}, cancelAwareMovements{movementRepo{s}}, nil)

	snapshot := *p
	_, _, err := ledger.RecordMovement(ctx, &snapshot, &entity.Movement{ProductID: 1, Type: entity.MovementTypeEntry, Quantity: 1})
	require.Error(t, err)
	assert.False(t, errors.Is(err, domain.ErrInconsistentState))
	assert.Empty(t, s.movements)
}

// cancelAwareMovements falla el Delete si el contexto está cancelado.
type cancelAwareMovements struct{ movementRepo }

func (r cancelAwareMovements) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return r.movementRepo.Delete(ctx, id)
}
