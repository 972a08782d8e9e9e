package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-supabase/internal/application/dto"
	"github.com/jhoicas/inventario-supabase/internal/domain/entity"
	"github.com/jhoicas/inventario-supabase/pkg/moneda"
)

// InventoryStats cantidad de productos y suma de stock.
func InventoryStats(products []*entity.Product) dto.InventoryStats {
	s := dto.InventoryStats{Count: len(products)}
	for _, p := range products {
		s.TotalStock += p.Stock
	}
	return s
}

// SalesStats ingresos (suma de totales) y unidades vendidas.
func SalesStats(sales []*entity.Sale) dto.SalesStats {
	revenue := decimal.Zero
	units := 0
	for _, v := range sales {
		revenue = revenue.Add(v.Total)
		units += v.Quantity
	}
	return dto.SalesStats{
		Count:                 len(sales),
		TotalRevenue:          revenue,
		TotalRevenueFormatted: moneda.Format(revenue),
		TotalUnits:            units,
	}
}

// MovementStats unidades por tipo de movimiento.
func MovementStats(movements []*entity.Movement) dto.MovementStats {
	var s dto.MovementStats
	for _, m := range movements {
		switch m.Type {
		case entity.MovementTypeEntry:
			s.TotalEntries += m.Quantity
		case entity.MovementTypeExit:
			s.TotalExits += m.Quantity
		}
	}
	return s
}
