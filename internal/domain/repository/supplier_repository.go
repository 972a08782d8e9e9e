package repository

import (
	"context"

	"github.com/jhoicas/inventario-supabase/internal/domain/entity"
)

// SupplierRepository puerto de lectura de proveedores.
type SupplierRepository interface {
	List(ctx context.Context) ([]*entity.Supplier, error)
}
