package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterSaleRequest body para POST /api/ventas.
type RegisterSaleRequest struct {
	ProductID int64 `json:"producto_id" validate:"gt=0"`
	UserID    int64 `json:"usuario_id" validate:"gt=0"`
	Quantity  int   `json:"cantidad" validate:"gte=1,lte=1000000"`
}

// SaleProductResponse producto embebido en la venta.
type SaleProductResponse struct {
	Name  string          `json:"nombre"`
	Price decimal.Decimal `json:"precio"`
}

// SaleUserResponse vendedor embebido en la venta.
type SaleUserResponse struct {
	Name string `json:"nombre"`
}

// SaleResponse salida de una venta.
type SaleResponse struct {
	ID             int64                `json:"id"`
	ProductID      int64                `json:"producto_id"`
	UserID         int64                `json:"usuario_id"`
	Quantity       int                  `json:"cantidad"`
	Total          decimal.Decimal      `json:"total"`
	TotalFormatted string               `json:"total_formato"`
	SoldAt         time.Time            `json:"fecha_venta"`
	Product        *SaleProductResponse `json:"productos,omitempty"`
	User           *SaleUserResponse    `json:"usuarios,omitempty"`
}

// SaleListResponse historial de ventas con totales.
type SaleListResponse struct {
	Items []SaleResponse `json:"items"`
	Stats SalesStats     `json:"stats"`
}

// RegisterSaleResponse venta creada y stock resultante del producto.
type RegisterSaleResponse struct {
	Sale           SaleResponse `json:"venta"`
	RemainingStock int          `json:"stock_restante"`
}
