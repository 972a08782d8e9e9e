package usecase

import (
	"context"

	"github.com/jhoicas/inventario-supabase/internal/application/dto"
	"github.com/jhoicas/inventario-supabase/internal/domain/repository"
)

// CatalogUseCase lecturas de proveedores y usuarios para los formularios.
type CatalogUseCase struct {
	suppliers repository.SupplierRepository
	users     repository.UserRepository
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(suppliers repository.SupplierRepository, users repository.UserRepository) *CatalogUseCase {
	return &CatalogUseCase{suppliers: suppliers, users: users}
}

// ListSuppliers proveedores ordenados por nombre.
func (uc *CatalogUseCase) ListSuppliers(ctx context.Context) ([]dto.SupplierResponse, error) {
	list, err := uc.suppliers.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SupplierResponse, 0, len(list))
	for _, s := range list {
		out = append(out, dto.SupplierResponse{ID: s.ID, Name: s.Name, Contact: s.Contact})
	}
	return out, nil
}

// ListUsers usuarios ordenados por nombre.
func (uc *CatalogUseCase) ListUsers(ctx context.Context) ([]dto.UserResponse, error) {
	list, err := uc.users.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		out = append(out, dto.UserResponse{ID: u.ID, Name: u.Name, Role: u.Role})
	}
	return out, nil
}
