package dto

import "github.com/shopspring/decimal"

// InventoryStats resumen de la página de inventario (sobre los productos filtrados).
type InventoryStats struct {
	Count      int `json:"total_productos"`
	TotalStock int `json:"stock_total"`
}

// SalesStats ingresos y unidades vendidas.
type SalesStats struct {
	Count                 int             `json:"total_registros"`
	TotalRevenue          decimal.Decimal `json:"total_ventas"`
	TotalRevenueFormatted string          `json:"total_ventas_formato"`
	TotalUnits            int             `json:"total_unidades"`
}

// MovementStats unidades que entraron y salieron.
type MovementStats struct {
	TotalEntries int `json:"total_entradas"`
	TotalExits   int `json:"total_salidas"`
}
