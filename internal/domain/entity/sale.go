package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale representa una venta (tabla ventas). Total = precio x cantidad al momento de registrar.
type Sale struct {
	ID        int64
	ProductID int64
	UserID    int64
	Quantity  int
	Total     decimal.Decimal
	SoldAt    time.Time
	Product   *SaleProductRef // embebido al listar
	User      *SaleUserRef
}

// SaleProductRef datos del producto embebidos en la venta.
type SaleProductRef struct {
	Name  string
	Price decimal.Decimal
}

// SaleUserRef datos del vendedor embebidos en la venta.
type SaleUserRef struct {
	Name string
}
