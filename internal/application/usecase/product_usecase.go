package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/inventario-supabase/internal/application/analytics"
	"github.com/jhoicas/inventario-supabase/internal/application/dto"
	"github.com/jhoicas/inventario-supabase/internal/domain"
	"github.com/jhoicas/inventario-supabase/internal/domain/entity"
	"github.com/jhoicas/inventario-supabase/internal/domain/repository"
	"github.com/jhoicas/inventario-supabase/pkg/moneda"
)

// ProductUseCase casos de uso CRUD para productos.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// List devuelve los productos que coinciden con search (nombre o categoría) y sus estadísticas.
func (uc *ProductUseCase) List(ctx context.Context, search string) (*dto.ProductListResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	filtered := analytics.FilterProducts(list, search)
	items := make([]dto.ProductResponse, 0, len(filtered))
	for _, p := range filtered {
		items = append(items, *ToProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Stats: analytics.InventoryStats(filtered),
	}, nil
}

// load devuelve el estado actual del producto. domain.ErrNotFound si no existe.
func (uc *ProductUseCase) load(ctx context.Context, id int64) (*entity.Product, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return product, nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	product, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToProductResponse(product), nil
}

// Create valida y crea un producto. Nada se envía si la validación falla.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Category = strings.TrimSpace(in.Category)
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	product := &entity.Product{
		Name:        in.Name,
		Category:    in.Category,
		Price:       in.Price,
		Stock:       in.Stock,
		SupplierID:  in.SupplierID,
		ImageURL:    optional(in.ImageURL),
		Description: optional(in.Description),
	}
	created, err := uc.repo.Create(ctx, product)
	if err != nil {
		return nil, err
	}
	return ToProductResponse(created), nil
}

// Update aplica los campos presentes. Un body sin campos es entrada inválida.
func (uc *ProductUseCase) Update(ctx context.Context, id int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	in.Name = trimPtr(in.Name)
	in.Category = trimPtr(in.Category)
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	patch := entity.ProductPatch{
		Name:       in.Name,
		Category:   in.Category,
		Price:      in.Price,
		Stock:      in.Stock,
		SupplierID: in.SupplierID,
	}
	if in.ImageURL != nil {
		patch.ImageURL = optional(*in.ImageURL)
		patch.ClearImageURL = patch.ImageURL == nil
	}
	if in.Description != nil {
		patch.Description = optional(*in.Description)
		patch.ClearDescription = patch.Description == nil
	}
	if patch.IsEmpty() {
		return nil, dto.NewValidationError("_", "sin_cambios")
	}
	updated, err := uc.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	return ToProductResponse(updated), nil
}

// Delete elimina un producto por ID.
func (uc *ProductUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

// ToProductResponse convierte la entidad al DTO de salida.
func ToProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	out := &dto.ProductResponse{
		ID:             p.ID,
		Name:           p.Name,
		Category:       p.Category,
		Price:          p.Price,
		PriceFormatted: moneda.Format(p.Price),
		Stock:          p.Stock,
		SupplierID:     p.SupplierID,
		ImageURL:       p.ImageURL,
		Description:    p.Description,
	}
	if p.Supplier != nil {
		out.Supplier = &dto.SupplierRefResponse{Name: p.Supplier.Name, Contact: p.Supplier.Contact}
	}
	return out
}

// optional recorta s y devuelve nil si queda vacío.
func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}
