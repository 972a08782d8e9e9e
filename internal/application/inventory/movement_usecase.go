package inventory

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/jhoicas/inventario-supabase/internal/application/analytics"
	"github.com/jhoicas/inventario-supabase/internal/application/dto"
	"github.com/jhoicas/inventario-supabase/internal/domain"
	"github.com/jhoicas/inventario-supabase/internal/domain/entity"
	"github.com/jhoicas/inventario-supabase/internal/domain/repository"
)

// MovementUseCase historial y registro de entradas y salidas de inventario.
type MovementUseCase struct {
	movements repository.MovementRepository
	products  ProductReader
	ledger    StockLedger
	now       func() time.Time
}

// NewMovementUseCase construye el caso de uso con el reloj del sistema.
func NewMovementUseCase(movements repository.MovementRepository, products ProductReader, ledger StockLedger) *MovementUseCase {
	return &MovementUseCase{movements: movements, products: products, ledger: ledger, now: time.Now}
}

// WithClock reemplaza el reloj usado para fecha_movimiento.
func (uc *MovementUseCase) WithClock(now func() time.Time) *MovementUseCase {
	uc.now = now
	return uc
}

// List devuelve los movimientos del tipo pedido (Entrada, Salida o Todos).
// Las estadísticas se calculan sobre todos los movimientos.
func (uc *MovementUseCase) List(ctx context.Context, tipo string) (*dto.MovementListResponse, error) {
	list, err := uc.movements.List(ctx)
	if err != nil {
		return nil, err
	}
	filtered := analytics.FilterMovements(list, tipo)
	items := make([]dto.MovementResponse, 0, len(filtered))
	for _, m := range filtered {
		items = append(items, ToMovementResponse(m))
	}
	return &dto.MovementListResponse{
		Filter: analytics.NormalizeMovementFilter(tipo),
		Items:  items,
		Stats:  analytics.MovementStats(list),
	}, nil
}

// Register valida la entrada, obtiene el producto y delega en RegisterWithSnapshot.
func (uc *MovementUseCase) Register(ctx context.Context, in dto.RegisterMovementRequest) (*dto.RegisterMovementResponse, error) {
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

// RegisterWithSnapshot registra el movimiento. Una Salida mayor al stock se rechaza sin
// ninguna escritura; una Entrada suma salvo que el stock resultante desborde int.
func (uc *MovementUseCase) RegisterWithSnapshot(ctx context.Context, snapshot *entity.Product, in dto.RegisterMovementRequest) (*dto.RegisterMovementResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	if snapshot == nil || snapshot.ID != in.ProductID {
		return nil, dto.NewValidationError("producto_id", "required")
	}
	if in.Type == entity.MovementTypeExit && in.Quantity > snapshot.Stock {
		return nil, fmt.Errorf("%w: solo hay %d unidades disponibles", domain.ErrInsufficientStock, snapshot.Stock)
	}
	if in.Type == entity.MovementTypeEntry && snapshot.Stock > math.MaxInt-in.Quantity {
		return nil, dto.NewValidationError("cantidad", "desborde_stock")
	}

	movement := &entity.Movement{
		ProductID: snapshot.ID,
		Type:      in.Type,
		Quantity:  in.Quantity,
		MovedAt:   uc.now().UTC(),
	}
	if obs := strings.TrimSpace(in.Observation); obs != "" {
		movement.Observation = &obs
	}
	created, stock, err := uc.ledger.RecordMovement(ctx, snapshot, movement)
	if err != nil {
		return nil, err
	}
	if created.ProductName == "" {
		created.ProductName = snapshot.Name
	}
	return &dto.RegisterMovementResponse{Movement: ToMovementResponse(created), RemainingStock: stock}, nil
}

// ToMovementResponse convierte la entidad al DTO de salida.
func ToMovementResponse(m *entity.Movement) dto.MovementResponse {
	return dto.MovementResponse{
		ID:          m.ID,
		ProductID:   m.ProductID,
		ProductName: m.ProductName,
		Type:        m.Type,
		Quantity:    m.Quantity,
		Observation: m.Observation,
		MovedAt:     m.MovedAt,
	}
}
