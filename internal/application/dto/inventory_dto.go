package dto

import "time"

// Filtros de tipo aceptados por GET /api/movimientos.
const (
	MovementFilterAll = "Todos"
)

// RegisterMovementRequest body para POST /api/movimientos.
type RegisterMovementRequest struct {
	ProductID   int64  `json:"producto_id" validate:"gt=0"`
	Type        string `json:"tipo" validate:"oneof=Entrada Salida"`
	Quantity    int    `json:"cantidad" validate:"gte=1,lte=1000000"`
	Observation string `json:"observacion" validate:"max=500"`
}

// MovementResponse salida de un movimiento de inventario.
type MovementResponse struct {
	ID          int64     `json:"id"`
	ProductID   int64     `json:"producto_id"`
	ProductName string    `json:"producto_nombre,omitempty"`
	Type        string    `json:"tipo"`
	Quantity    int       `json:"cantidad"`
	Observation *string   `json:"observacion"`
	MovedAt     time.Time `json:"fecha_movimiento"`
}

// MovementListResponse movimientos filtrados por tipo. Stats cubre todos los movimientos.
type MovementListResponse struct {
	Filter string             `json:"filtro"`
	Items  []MovementResponse `json:"items"`
	Stats  MovementStats      `json:"stats"`
}

// RegisterMovementResponse movimiento creado y stock resultante del producto.
type RegisterMovementResponse struct {
	Movement       MovementResponse `json:"movimiento"`
	RemainingStock int              `json:"stock_restante"`
}
