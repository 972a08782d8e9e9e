package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-supabase/internal/application/dto"
	"github.com/jhoicas/inventario-supabase/internal/domain/entity"
)

func TestGenerateSalesReport(t *testing.T) {
	sales := []*entity.Sale{
		{
			ID: 1, Quantity: 3, Total: decimal.NewFromInt(300),
			SoldAt:  time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC),
			Product: &entity.SaleProductRef{Name: "iPhone 15", Price: decimal.NewFromInt(100)},
			User:    &entity.SaleUserRef{Name: "Ana"},
		},
		{ID: 2, Quantity: 1, Total: decimal.NewFromInt(50)},
	}
	stats := dto.SalesStats{Count: 2, TotalRevenue: decimal.NewFromInt(350), TotalUnits: 4}

	out, err := NewReportGenerator("Electro Lima").GenerateSalesReport(context.Background(), sales, stats, time.Now())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestGenerateSalesReport_SinVentas(t *testing.T) {
	out, err := NewReportGenerator("").GenerateSalesReport(context.Background(), nil, dto.SalesStats{}, time.Now())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestGenerateSalesReport_ContextoCancelado(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewReportGenerator("x").GenerateSalesReport(ctx, nil, dto.SalesStats{}, time.Now())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "01/05/2024 10:30", formatDate(time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)))
	assert.Equal(t, "—", formatDate(time.Time{}))
}
