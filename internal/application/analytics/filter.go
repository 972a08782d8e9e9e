// Package analytics agrupa las funciones puras que derivan vistas de los listados:
// búsqueda de productos, filtro de movimientos y estadísticas de cada página.
package analytics

import (
	"strings"

	"github.com/jhoicas/inventario-supabase/internal/application/dto"
	"github.com/jhoicas/inventario-supabase/internal/domain/entity"
)

// FilterProducts devuelve los productos cuyo nombre o categoría contiene term, sin distinguir
// mayúsculas. El término no se recorta: solo "" devuelve la lista completa. Conserva el orden
// de entrada.
func FilterProducts(products []*entity.Product, term string) []*entity.Product {
	needle := strings.ToLower(term)
	if needle == "" {
		return products
	}
	out := make([]*entity.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), needle) ||
			strings.Contains(strings.ToLower(p.Category), needle) {
			out = append(out, p)
		}
	}
	return out
}

// FilterMovements filtra por tipo exacto (Entrada | Salida). "", "Todos" o un tipo desconocido
// devuelven la lista completa.
func FilterMovements(movements []*entity.Movement, tipo string) []*entity.Movement {
	if !entity.ValidMovementType(tipo) {
		return movements
	}
	out := make([]*entity.Movement, 0, len(movements))
	for _, m := range movements {
		if m.Type == tipo {
			out = append(out, m)
		}
	}
	return out
}

// NormalizeMovementFilter devuelve el filtro efectivo que se informa al cliente.
func NormalizeMovementFilter(tipo string) string {
	if entity.ValidMovementType(tipo) {
		return tipo
	}
	return dto.MovementFilterAll
}
