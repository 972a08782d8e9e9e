package moneda_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/inventario-supabase/pkg/moneda"
)

func TestFormat(t *testing.T) {
	s := moneda.Format(decimal.NewFromInt(300))
	assert.True(t, strings.HasPrefix(s, "S/ "), s)
	assert.Contains(t, s, "300")

	neg := moneda.Format(decimal.NewFromFloat(-12.5))
	assert.True(t, strings.HasPrefix(neg, "-S/ "), neg)
}

func TestCode(t *testing.T) {
	assert.Equal(t, "PEN", moneda.Code())
	assert.Equal(t, "es-PE", moneda.Locale().String())
}
