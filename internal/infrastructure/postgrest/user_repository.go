package postgrest

import (
	"context"

	"github.com/jhoicas/inventario-supabase/internal/domain/entity"
	"github.com/jhoicas/inventario-supabase/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo lectura de usuarios sobre PostgREST.
type UserRepo struct {
	c *Client
}

// NewUserRepository construye el adaptador.
func NewUserRepository(c *Client) *UserRepo {
	return &UserRepo{c: c}
}

// List devuelve los usuarios ordenados por nombre.
func (r *UserRepo) List(ctx context.Context) ([]*entity.User, error) {
	rows, err := list[userRow](ctx, r.c, TableUsers, listQuery("*", "nombre", true))
	if err != nil {
		return nil, err
	}
	out := make([]*entity.User, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].toEntity())
	}
	return out, nil
}
