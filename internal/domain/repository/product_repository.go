package repository

import (
	"context"

	"github.com/jhoicas/inventario-supabase/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	// List devuelve todos los productos con su proveedor embebido, más recientes primero.
	List(ctx context.Context) ([]*entity.Product, error)
	// GetByID devuelve nil, nil si el producto no existe.
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	Create(ctx context.Context, product *entity.Product) (*entity.Product, error)
	// Update aplica solo los campos presentes en patch. domain.ErrNotFound si no hay fila.
	Update(ctx context.Context, id int64, patch entity.ProductPatch) (*entity.Product, error)
	Delete(ctx context.Context, id int64) error
}
