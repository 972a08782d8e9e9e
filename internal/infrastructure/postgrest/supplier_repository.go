package postgrest

import (
	"context"

	"github.com/jhoicas/inventario-supabase/internal/domain/entity"
	"github.com/jhoicas/inventario-supabase/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo lectura de proveedores sobre PostgREST.
type SupplierRepo struct {
	c *Client
}

// NewSupplierRepository construye el adaptador.
func NewSupplierRepository(c *Client) *SupplierRepo {
	return &SupplierRepo{c: c}
}

// List devuelve los proveedores ordenados por nombre.
func (r *SupplierRepo) List(ctx context.Context) ([]*entity.Supplier, error) {
	rows, err := list[supplierRow](ctx, r.c, TableSuppliers, listQuery("*", "nombre", true))
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Supplier, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].toEntity())
	}
	return out, nil
}
