package analytics_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/inventario-supabase/internal/application/analytics"
	"github.com/jhoicas/inventario-supabase/internal/domain/entity"
	"github.com/jhoicas/inventario-supabase/pkg/moneda"
)

func names(products []*entity.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.Name)
	}
	return out
}

func TestFilterProducts(t *testing.T) {
	products := []*entity.Product{
		{ID: 1, Name: "iPhone 15", Category: "Smartphones", Stock: 5},
		{ID: 2, Name: "Galaxy", Category: "Smartphones", Stock: 3},
		{ID: 3, Name: "MacBook Air", Category: "Laptops", Stock: 2},
	}

	t.Run("por nombre sin distinguir mayúsculas", func(t *testing.T) {
		got := analytics.FilterProducts(products[:2], "iph")
		assert.Equal(t, []string{"iPhone 15"}, names(got))
	})
	t.Run("por categoría", func(t *testing.T) {
		got := analytics.FilterProducts(products, "LAPTOP")
		assert.Equal(t, []string{"MacBook Air"}, names(got))
	})
	t.Run("término vacío devuelve todo", func(t *testing.T) {
		assert.Len(t, analytics.FilterProducts(products, ""), 3)
	})
	t.Run("los espacios cuentan", func(t *testing.T) {
		assert.Empty(t, analytics.FilterProducts(products, "iph "))
		assert.Empty(t, analytics.FilterProducts(products, "  "))
		assert.Equal(t, []string{"iPhone 15"}, names(analytics.FilterProducts(products, "phone 1")))
	})
	t.Run("sin coincidencias", func(t *testing.T) {
		assert.Empty(t, analytics.FilterProducts(products, "tablet"))
	})
}

func TestInventoryStats(t *testing.T) {
	products := []*entity.Product{{Stock: 5}, {Stock: 0}, {Stock: 7}}
	s := analytics.InventoryStats(products)
	assert.Equal(t, 3, s.Count)
	assert.Equal(t, 12, s.TotalStock)

	empty := analytics.InventoryStats(nil)
	assert.Zero(t, empty.Count)
	assert.Zero(t, empty.TotalStock)
}

func TestSalesStats(t *testing.T) {
	sales := []*entity.Sale{
		{Quantity: 3, Total: decimal.NewFromInt(300)},
		{Quantity: 1, Total: decimal.RequireFromString("1250.50")},
	}
	s := analytics.SalesStats(sales)
	assert.Equal(t, 2, s.Count)
	assert.Equal(t, 4, s.TotalUnits)
	assert.True(t, s.TotalRevenue.Equal(decimal.RequireFromString("1550.50")))
	assert.Equal(t, moneda.Format(s.TotalRevenue), s.TotalRevenueFormatted)
}

func TestMovementStatsYFiltro(t *testing.T) {
	movements := []*entity.Movement{
		{ID: 1, Type: entity.MovementTypeEntry, Quantity: 10},
		{ID: 2, Type: entity.MovementTypeExit, Quantity: 4},
		{ID: 3, Type: entity.MovementTypeEntry, Quantity: 2},
	}

	s := analytics.MovementStats(movements)
	assert.Equal(t, 12, s.TotalEntries)
	assert.Equal(t, 4, s.TotalExits)

	assert.Len(t, analytics.FilterMovements(movements, entity.MovementTypeEntry), 2)
	assert.Len(t, analytics.FilterMovements(movements, entity.MovementTypeExit), 1)
	assert.Len(t, analytics.FilterMovements(movements, "Todos"), 3)
	assert.Len(t, analytics.FilterMovements(movements, ""), 3)

	assert.Equal(t, "Salida", analytics.NormalizeMovementFilter("Salida"))
	assert.Equal(t, "Todos", analytics.NormalizeMovementFilter("otro"))
}
