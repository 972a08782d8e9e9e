package repository

import (
	"context"

	"github.com/jhoicas/inventario-supabase/internal/domain/entity"
)

// SaleRepository define el puerto de persistencia para ventas.
// Delete existe para revertir una venta cuyo ajuste de stock falló.
type SaleRepository interface {
	List(ctx context.Context) ([]*entity.Sale, error)
	Create(ctx context.Context, sale *entity.Sale) (*entity.Sale, error)
	Delete(ctx context.Context, id int64) error
}
