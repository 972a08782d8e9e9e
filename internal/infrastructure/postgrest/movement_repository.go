package postgrest

import (
	"context"
	"net/http"

	"github.com/jhoicas/inventario-supabase/internal/domain/entity"
	"github.com/jhoicas/inventario-supabase/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

const movementSelect = "*,productos(nombre)"

// MovementRepo movimientos de inventario sobre PostgREST.
type MovementRepo struct {
	c *Client
}

// NewMovementRepository construye el adaptador.
func NewMovementRepository(c *Client) *MovementRepo {
	return &MovementRepo{c: c}
}

// List devuelve los movimientos con el nombre del producto, más recientes primero.
func (r *MovementRepo) List(ctx context.Context) ([]*entity.Movement, error) {
	rows, err := list[movementRow](ctx, r.c, TableMovements, listQuery(movementSelect, "fecha_movimiento", false))
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Movement, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].toEntity())
	}
	return out, nil
}

// Create registra el movimiento. No toca el stock.
func (r *MovementRepo) Create(ctx context.Context, movement *entity.Movement) (*entity.Movement, error) {
	row, err := first[movementRow](ctx, r.c, http.MethodPost, TableMovements, nil, movementRowFrom(movement))
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, &Error{Op: http.MethodPost + " " + TableMovements, Status: http.StatusOK, Body: "respuesta sin filas"}
	}
	return row.toEntity(), nil
}

// Delete elimina el movimiento.
func (r *MovementRepo) Delete(ctx context.Context, id int64) error {
	return remove(ctx, r.c, TableMovements, id)
}
