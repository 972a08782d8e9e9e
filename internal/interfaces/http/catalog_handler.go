package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-supabase/internal/application/dto"
)

// CatalogHandler proveedores, usuarios y estrategias disponibles.
type CatalogHandler struct {
	reg *Registry
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(reg *Registry) *CatalogHandler {
	return &CatalogHandler{reg: reg}
}

// Suppliers godoc
// @Summary      Listar proveedores
// @Tags         catalogo
// @Produce      json
// @Success      200  {array}   dto.SupplierResponse
// @Router       /api/proveedores [get]
func (h *CatalogHandler) Suppliers(c *fiber.Ctx) error {
	out, err := GetServices(c).Catalog.ListSuppliers(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Users godoc
// @Summary      Listar usuarios
// @Tags         catalogo
// @Produce      json
// @Success      200  {array}   dto.UserResponse
// @Router       /api/usuarios [get]
func (h *CatalogHandler) Users(c *fiber.Ctx) error {
	out, err := GetServices(c).Catalog.ListUsers(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Strategies godoc
// @Summary      Estrategias de cliente HTTP
// @Tags         catalogo
// @Produce      json
// @Success      200  {object}  dto.StrategiesResponse
// @Router       /api/clientes-api [get]
func (h *CatalogHandler) Strategies(c *fiber.Ctx) error {
	return c.JSON(dto.StrategiesResponse{
		Default:    h.reg.Default(),
		Strategies: h.reg.Strategies(),
	})
}
