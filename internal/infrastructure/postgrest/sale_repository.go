package postgrest

import (
	"context"
	"net/http"

	"github.com/jhoicas/inventario-supabase/internal/domain/entity"
	"github.com/jhoicas/inventario-supabase/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

const saleSelect = "*,productos(nombre,precio),usuarios(nombre)"

// SaleRepo ventas sobre PostgREST.
type SaleRepo struct {
	c *Client
}

// NewSaleRepository construye el adaptador.
func NewSaleRepository(c *Client) *SaleRepo {
	return &SaleRepo{c: c}
}

// List devuelve las ventas con producto y vendedor, más recientes primero.
func (r *SaleRepo) List(ctx context.Context) ([]*entity.Sale, error) {
	rows, err := list[saleRow](ctx, r.c, TableSales, listQuery(saleSelect, "fecha_venta", false))
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Sale, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].toEntity())
	}
	return out, nil
}

// Create registra la venta. No toca el stock.
func (r *SaleRepo) Create(ctx context.Context, sale *entity.Sale) (*entity.Sale, error) {
	row, err := first[saleRow](ctx, r.c, http.MethodPost, TableSales, nil, saleRowFrom(sale))
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, &Error{Op: http.MethodPost + " " + TableSales, Status: http.StatusOK, Body: "respuesta sin filas"}
	}
	return row.toEntity(), nil
}

// Delete elimina la venta.
func (r *SaleRepo) Delete(ctx context.Context, id int64) error {
	return remove(ctx, r.c, TableSales, id)
}
