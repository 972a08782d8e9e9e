package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-supabase/internal/application/analytics"
	"github.com/jhoicas/inventario-supabase/internal/application/dto"
	"github.com/jhoicas/inventario-supabase/internal/domain"
	"github.com/jhoicas/inventario-supabase/internal/domain/entity"
	"github.com/jhoicas/inventario-supabase/internal/domain/repository"
	"github.com/jhoicas/inventario-supabase/pkg/moneda"
)

// SaleUseCase historial y registro de ventas.
type SaleUseCase struct {
	sales    repository.SaleRepository
	products ProductReader
	ledger   StockLedger
	now      func() time.Time
}

// NewSaleUseCase construye el caso de uso con el reloj del sistema.
func NewSaleUseCase(sales repository.SaleRepository, products ProductReader, ledger StockLedger) *SaleUseCase {
	return &SaleUseCase{sales: sales, products: products, ledger: ledger, now: time.Now}
}

// WithClock reemplaza el reloj usado para fecha_venta.
func (uc *SaleUseCase) WithClock(now func() time.Time) *SaleUseCase {
	uc.now = now
	return uc
}

// List devuelve las ventas (más recientes primero) con ingresos y unidades totales.
func (uc *SaleUseCase) List(ctx context.Context) (*dto.SaleListResponse, error) {
	list, err := uc.sales.List(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.SaleListResponse{
		Items: ToSaleResponses(list),
		Stats: analytics.SalesStats(list),
	}, nil
}

// Entities ventas sin convertir, para reportes.
func (uc *SaleUseCase) Entities(ctx context.Context) ([]*entity.Sale, error) {
	return uc.sales.List(ctx)
}

// Register valida la entrada, obtiene el producto y delega en RegisterWithSnapshot.
func (uc *SaleUseCase) Register(ctx context.Context, in dto.RegisterSaleRequest) (*dto.RegisterSaleResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	snapshot, err := uc.products.GetByID(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}
	if snapshot == nil {
		return nil, fmt.Errorf("producto %d: %w", in.ProductID, domain.ErrNotFound)
	}
	return uc.RegisterWithSnapshot(ctx, snapshot, in)
}

// RegisterWithSnapshot valida contra snapshot y registra la venta con total = precio x cantidad.
// Si la cantidad supera el stock no se emite ninguna escritura; la lectura del snapshot
// ocurre antes, en Register.
func (uc *SaleUseCase) RegisterWithSnapshot(ctx context.Context, snapshot *entity.Product, in dto.RegisterSaleRequest) (*dto.RegisterSaleResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	if snapshot == nil || snapshot.ID != in.ProductID {
		return nil, dto.NewValidationError("producto_id", "required")
	}
	if in.Quantity > snapshot.Stock {
		return nil, fmt.Errorf("%w: solo hay %d unidades disponibles", domain.ErrInsufficientStock, snapshot.Stock)
	}

	sale := &entity.Sale{
		ProductID: snapshot.ID,
		UserID:    in.UserID,
		Quantity:  in.Quantity,
		Total:     snapshot.Price.Mul(decimal.NewFromInt(int64(in.Quantity))),
		SoldAt:    uc.now().UTC(),
	}
	created, stock, err := uc.ledger.RecordSale(ctx, snapshot, sale)
	if err != nil {
		return nil, err
	}
	if created.Product == nil {
		created.Product = &entity.SaleProductRef{Name: snapshot.Name, Price: snapshot.Price}
	}
	return &dto.RegisterSaleResponse{Sale: ToSaleResponse(created), RemainingStock: stock}, nil
}

// ToSaleResponse convierte la entidad al DTO de salida.
func ToSaleResponse(s *entity.Sale) dto.SaleResponse {
	out := dto.SaleResponse{
		ID:             s.ID,
		ProductID:      s.ProductID,
		UserID:         s.UserID,
		Quantity:       s.Quantity,
		Total:          s.Total,
		TotalFormatted: moneda.Format(s.Total),
		SoldAt:         s.SoldAt,
	}
	if s.Product != nil {
		out.Product = &dto.SaleProductResponse{Name: s.Product.Name, Price: s.Product.Price}
	}
	if s.User != nil {
		out.User = &dto.SaleUserResponse{Name: s.User.Name}
	}
	return out
}

// ToSaleResponses convierte una lista de ventas.
func ToSaleResponses(list []*entity.Sale) []dto.SaleResponse {
	out := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		out = append(out, ToSaleResponse(s))
	}
	return out
}
