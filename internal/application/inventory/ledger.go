package inventory

import (
	"context"
	"fmt"

	"github.com/jhoicas/inventario-supabase/internal/domain"
	"github.com/jhoicas/inventario-supabase/internal/domain/entity"
	"github.com/jhoicas/inventario-supabase/internal/domain/repository"
	"github.com/jhoicas/inventario-supabase/pkg/logger"
)

var _ StockLedger = (*CompensatingLedger)(nil)

// CompensatingLedger implementa StockLedger con dos escrituras REST independientes:
// crea el registro y luego parchea el stock. Si el parche falla, borra el registro creado.
// Si tampoco se puede borrar devuelve domain.ErrInconsistentState.
type CompensatingLedger struct {
	products  repository.ProductRepository
	sales     repository.SaleRepository
	movements repository.MovementRepository
	log       *logger.Logger
}

// NewCompensatingLedger construye el ledger.
func NewCompensatingLedger(
	products repository.ProductRepository,
	sales repository.SaleRepository,
	movements repository.MovementRepository,
	log *logger.Logger,
) *CompensatingLedger {
	if log == nil {
		log = logger.Nop()
	}
	return &CompensatingLedger{products: products, sales: sales, movements: movements, log: log}
}

// RecordSale implementa StockLedger.
func (l *CompensatingLedger) RecordSale(ctx context.Context, snapshot *entity.Product, sale *entity.Sale) (*entity.Sale, int, error) {
	created, err := l.sales.Create(ctx, sale)
	if err != nil {
		return nil, 0, fmt.Errorf("registrar venta: %w", err)
	}
	stock := snapshot.Stock - sale.Quantity
	if err := l.setStock(ctx, snapshot.ID, stock); err != nil {
		return nil, 0, l.compensate(ctx, "venta", created.ID, snapshot.ID, err, l.sales.Delete)
	}
	return created, stock, nil
}

// RecordMovement implementa StockLedger.
func (l *CompensatingLedger) RecordMovement(ctx context.Context, snapshot *entity.Product, movement *entity.Movement) (*entity.Movement, int, error) {
	created, err := l.movements.Create(ctx, movement)
	if err != nil {
		return nil, 0, fmt.Errorf("registrar movimiento: %w", err)
	}
	stock := snapshot.Stock + movement.Delta()
	if err := l.setStock(ctx, snapshot.ID, stock); err != nil {
		return nil, 0, l.compensate(ctx, "movimiento", created.ID, snapshot.ID, err, l.movements.Delete)
	}
	return created, stock, nil
}

func (l *CompensatingLedger) setStock(ctx context.Context, productID int64, stock int) error {
	_, err := l.products.Update(ctx, productID, entity.StockPatch(stock))
	return err
}

// compensate borra el registro recién creado. Corre aunque ctx ya esté cancelado.
func (l *CompensatingLedger) compensate(
	ctx context.Context,
	kind string,
	recordID, productID int64,
	stockErr error,
	undo func(context.Context, int64) error,
) error {
	undoErr := undo(context.WithoutCancel(ctx), recordID)
	if undoErr != nil {
		l.log.Error().
			Err(stockErr).
			AnErr("undo_error", undoErr).
			Str("kind", kind).
			Int64("record_id", recordID).
			Int64("product_id", productID).
			Msg("registro creado sin ajuste de stock; no se pudo revertir")
		return fmt.Errorf("%w: %s %d, producto %d: ajustar stock: %w; revertir: %w",
			domain.ErrInconsistentState, kind, recordID, productID, stockErr, undoErr)
	}
	l.log.Warn().
		Err(stockErr).
		Str("kind", kind).
		Int64("record_id", recordID).
		Int64("product_id", productID).
		Msg("ajuste de stock fallido; registro revertido")
	return fmt.Errorf("ajustar stock: %w", stockErr)
}
