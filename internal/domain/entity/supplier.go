package entity

// Supplier proveedor (tabla proveedores). Solo lectura desde este cliente.
type Supplier struct {
	ID      int64
	Name    string
	Contact string
}
