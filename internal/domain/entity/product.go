package entity

import "github.com/shopspring/decimal"

// Product representa un producto del inventario (tabla productos).
// Stock se ajusta vía ventas y movimientos además de la edición directa.
type Product struct {
	ID          int64
	Name        string
	Category    string
	Price       decimal.Decimal
	Stock       int
	SupplierID  int64
	ImageURL    *string
	Description *string
	Supplier    *SupplierRef // embebido al listar
}

// SupplierRef datos del proveedor embebidos en el producto.
type SupplierRef struct {
	Name    string
	Contact string
}

// ProductPatch cambios parciales de un producto; los campos nil no se envían.
// ClearImageURL / ClearDescription fuerzan null en el backend.
type ProductPatch struct {
	Name             *string
	Category         *string
	Price            *decimal.Decimal
	Stock            *int
	SupplierID       *int64
	ImageURL         *string
	Description      *string
	ClearImageURL    bool
	ClearDescription bool
}

// IsEmpty indica si el patch no modifica nada.
func (p ProductPatch) IsEmpty() bool {
	return p.Name == nil && p.Category == nil && p.Price == nil && p.Stock == nil &&
		p.SupplierID == nil && p.ImageURL == nil && p.Description == nil &&
		!p.ClearImageURL && !p.ClearDescription
}

// StockPatch patch que solo ajusta el stock.
func StockPatch(stock int) ProductPatch {
	return ProductPatch{Stock: &stock}
}
