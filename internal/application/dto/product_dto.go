package dto

import (
	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
// Los strings se recortan antes de validar; imagen_url y descripcion vacíos se guardan como null.
type CreateProductRequest struct {
	Name        string          `json:"nombre" validate:"required,max=200"`
	Category    string          `json:"categoria" validate:"required,max=100"`
	Price       decimal.Decimal `json:"precio" validate:"gt=0"`
	Stock       int             `json:"stock" validate:"gte=0"`
	SupplierID  int64           `json:"proveedor_id" validate:"gt=0"`
	ImageURL    string          `json:"imagen_url"`
	Description string          `json:"descripcion"`
}

// UpdateProductRequest entrada para actualizar un producto; solo se envían los campos presentes.
// imagen_url o descripcion en "" borran el valor.
type UpdateProductRequest struct {
	Name        *string          `json:"nombre" validate:"omitempty,min=1,max=200"`
	Category    *string          `json:"categoria" validate:"omitempty,min=1,max=100"`
	Price       *decimal.Decimal `json:"precio" validate:"omitempty,gt=0"`
	Stock       *int             `json:"stock" validate:"omitempty,gte=0"`
	SupplierID  *int64           `json:"proveedor_id" validate:"omitempty,gt=0"`
	ImageURL    *string          `json:"imagen_url"`
	Description *string          `json:"descripcion"`
}

// SupplierRefResponse proveedor embebido en el producto.
type SupplierRefResponse struct {
	Name    string `json:"nombre"`
	Contact string `json:"contacto"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID             int64                `json:"id"`
	Name           string               `json:"nombre"`
	Category       string               `json:"categoria"`
	Price          decimal.Decimal      `json:"precio"`
	PriceFormatted string               `json:"precio_formato"`
	Stock          int                  `json:"stock"`
	SupplierID     int64                `json:"proveedor_id"`
	ImageURL       *string              `json:"imagen_url"`
	Description    *string              `json:"descripcion"`
	Supplier       *SupplierRefResponse `json:"proveedores,omitempty"`
}

// ProductListResponse productos filtrados y sus estadísticas.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Stats InventoryStats    `json:"stats"`
}
