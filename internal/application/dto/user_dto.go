package dto

// UserResponse salida de un usuario (solo lectura).
type UserResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"nombre"`
	Role string `json:"rol"`
}

// SupplierResponse salida de un proveedor (solo lectura).
type SupplierResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"nombre"`
	Contact string `json:"contacto"`
}

// StrategyResponse una estrategia de cliente HTTP disponible.
type StrategyResponse struct {
	Name        string `json:"name"`
	Library     string `json:"library"`
	Description string `json:"description"`
}

// StrategiesResponse estrategias disponibles y la activa por defecto.
type StrategiesResponse struct {
	Default    string             `json:"default"`
	Strategies []StrategyResponse `json:"strategies"`
}
