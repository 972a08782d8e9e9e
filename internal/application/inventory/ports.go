package inventory

import (
	"context"

	"github.com/jhoicas/inventario-supabase/internal/domain/entity"
)

// StockLedger registra una venta o movimiento junto con el ajuste de stock del producto.
// snapshot es el estado del producto contra el que se validó la operación; el stock
// resultante se devuelve junto al registro creado.
type StockLedger interface {
	// RecordSale guarda la venta y descuenta sale.Quantity del stock.
	RecordSale(ctx context.Context, snapshot *entity.Product, sale *entity.Sale) (*entity.Sale, int, error)
	// RecordMovement guarda el movimiento y aplica movement.Delta() sobre el stock.
	RecordMovement(ctx context.Context, snapshot *entity.Product, movement *entity.Movement) (*entity.Movement, int, error)
}

// ProductReader lectura puntual de productos para obtener el snapshot.
type ProductReader interface {
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
}
