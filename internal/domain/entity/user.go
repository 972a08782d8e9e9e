package entity

// User usuario vendedor (tabla usuarios). Solo lectura; se usa para atribuir ventas.
type User struct {
	ID   int64
	Name string
	Role string
}
