package entity

import "time"

// Tipos de movimiento de inventario (valores tal como los guarda el backend).
const (
	MovementTypeEntry = "Entrada"
	MovementTypeExit  = "Salida"
)

// Movement representa un movimiento de inventario (tabla movimientos_inventario).
type Movement struct {
	ID          int64
	ProductID   int64
	Type        string // Entrada | Salida
	Quantity    int
	Observation *string
	MovedAt     time.Time
	ProductName string // embebido al listar
}

// Delta devuelve la variación de stock que produce el movimiento.
func (m *Movement) Delta() int {
	if m.Type == MovementTypeExit {
		return -m.Quantity
	}
	return m.Quantity
}

// ValidMovementType indica si t es Entrada o Salida.
func ValidMovementType(t string) bool {
	return t == MovementTypeEntry || t == MovementTypeExit
}
