package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-supabase/internal/application/dto"
)

// InventoryHandler página de movimientos de inventario.
type InventoryHandler struct{}

// NewInventoryHandler construye el handler.
func NewInventoryHandler() *InventoryHandler { return &InventoryHandler{} }

// ListMovements godoc
// @Summary      Historial de movimientos
// @Tags         movimientos
// @Produce      json
// @Param        tipo  query  string  false  "Entrada, Salida o Todos"
// @Success      200   {object}  dto.MovementListResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/movimientos [get]
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	out, err := GetServices(c).Movements.List(c.Context(), c.Query("tipo"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// RegisterMovement godoc
// @Summary      Registrar movimiento
// @Description  Entrada suma al stock; Salida resta y no puede superar el stock actual.
// @Tags         movimientos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "Movimiento"
// @Success      201   {object}  dto.RegisterMovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/movimientos [post]
func (h *InventoryHandler) RegisterMovement(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := GetServices(c).Movements.Register(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
