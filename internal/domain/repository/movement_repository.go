package repository

import (
	"context"

	"github.com/jhoicas/inventario-supabase/internal/domain/entity"
)

// MovementRepository define el puerto de persistencia para movimientos de inventario.
type MovementRepository interface {
	List(ctx context.Context) ([]*entity.Movement, error)
	Create(ctx context.Context, movement *entity.Movement) (*entity.Movement, error)
	Delete(ctx context.Context, id int64) error
}
