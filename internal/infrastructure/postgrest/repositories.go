package postgrest

// Repositories agrupa los adaptadores que comparten un mismo Client (una estrategia).
type Repositories struct {
	Products  *ProductRepo
	Suppliers *SupplierRepo
	Users     *UserRepo
	Sales     *SaleRepo
	Movements *MovementRepo
}

// NewRepositories construye todos los repositorios sobre c.
func NewRepositories(c *Client) *Repositories {
	return &Repositories{
		Products:  NewProductRepository(c),
		Suppliers: NewSupplierRepository(c),
		Users:     NewUserRepository(c),
		Sales:     NewSaleRepository(c),
		Movements: NewMovementRepository(c),
	}
}
