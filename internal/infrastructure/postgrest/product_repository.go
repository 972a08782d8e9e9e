package postgrest

import (
	"context"
	"net/http"

	"github.com/jhoicas/inventario-supabase/internal/domain"
	"github.com/jhoicas/inventario-supabase/internal/domain/entity"
	"github.com/jhoicas/inventario-supabase/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// productSelect embebe el proveedor en cada producto.
const productSelect = "*,proveedores(nombre,contacto)"

// ProductRepo implementación de ProductRepository sobre PostgREST.
type ProductRepo struct {
	c *Client
}

// NewProductRepository construye el adaptador.
func NewProductRepository(c *Client) *ProductRepo {
	return &ProductRepo{c: c}
}

// List devuelve todos los productos ordenados por id descendente.
func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	rows, err := list[productRow](ctx, r.c, TableProducts, listQuery(productSelect, "id", false))
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Product, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].toEntity())
	}
	return out, nil
}

// GetByID obtiene un producto con su proveedor. nil, nil si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	row, err := first[productRow](ctx, r.c, http.MethodGet, TableProducts, byID(listQuery(productSelect, "", false), id), nil)
	if err != nil || row == nil {
		return nil, err
	}
	return row.toEntity(), nil
}

// Create inserta el producto y devuelve la fila creada.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	payload := productRowFrom(product)
	row, err := first[productRow](ctx, r.c, http.MethodPost, TableProducts, nil, payload)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, &Error{Op: http.MethodPost + " " + TableProducts, Status: http.StatusOK, Body: "respuesta sin filas"}
	}
	return row.toEntity(), nil
}

// Update aplica un PATCH parcial sobre id=eq.<id>.
func (r *ProductRepo) Update(ctx context.Context, id int64, patch entity.ProductPatch) (*entity.Product, error) {
	row, err := first[productRow](ctx, r.c, http.MethodPatch, TableProducts, byID(nil, id), patchPayload(patch))
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, domain.ErrNotFound
	}
	return row.toEntity(), nil
}

// Delete elimina el producto (irreversible).
func (r *ProductRepo) Delete(ctx context.Context, id int64) error {
	return remove(ctx, r.c, TableProducts, id)
}
