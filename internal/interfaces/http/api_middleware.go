package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-supabase/internal/application/dto"
)

// HeaderAPIClient cabecera alternativa a ?api= para elegir la estrategia.
const HeaderAPIClient = "X-Api-Client"

const localServices = "services"

// APISelector resuelve la estrategia de la petición (?api=, luego X-Api-Client, luego la
// de por defecto) y deja sus servicios en c.Locals. Responde 400 INVALID_API si no existe.
// La estrategia usada se devuelve en X-Api-Client.
func APISelector(reg *Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		name := c.Query("api")
		if name == "" {
			name = c.Get(HeaderAPIClient)
		}
		s, err := reg.Resolve(name)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Code:    "INVALID_API",
				Message: err.Error(),
			})
		}
		c.Locals(localServices, s)
		c.Set(HeaderAPIClient, s.Info.Name)
		return c.Next()
	}
}

// GetServices servicios resueltos por APISelector.
func GetServices(c *fiber.Ctx) *Services {
	s, _ := c.Locals(localServices).(*Services)
	return s
}
