package http

import (
	"github.com/gofiber/fiber/v2"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Registry *Registry
	Reports  SalesReporter
}

// Router registra las rutas de la API. Todo /api salvo /api/clientes-api pasa por APISelector.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	catalogHandler := NewCatalogHandler(deps.Registry)
	api.Get("/clientes-api", catalogHandler.Strategies)

	pages := api.Group("/", APISelector(deps.Registry))

	// Inventario
	productHandler := NewProductHandler()
	products := pages.Group("/productos")
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Patch("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Catálogos de solo lectura
	pages.Get("/proveedores", catalogHandler.Suppliers)
	pages.Get("/usuarios", catalogHandler.Users)

	// Ventas
	saleHandler := NewSaleHandler(deps.Reports)
	sales := pages.Group("/ventas")
	sales.Get("/", saleHandler.List)
	sales.Post("/", saleHandler.Register)
	sales.Get("/reporte.pdf", saleHandler.Report)

	// Movimientos
	inventoryHandler := NewInventoryHandler()
	movements := pages.Group("/movimientos")
	movements.Get("/", inventoryHandler.ListMovements)
	movements.Post("/", inventoryHandler.RegisterMovement)
}
