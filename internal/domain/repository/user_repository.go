package repository

import (
	"context"

	"github.com/jhoicas/inventario-supabase/internal/domain/entity"
)

// UserRepository puerto de lectura de usuarios.
type UserRepository interface {
	List(ctx context.Context) ([]*entity.User, error)
}
