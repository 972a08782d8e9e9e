package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-supabase/internal/application/analytics"
	"github.com/jhoicas/inventario-supabase/internal/application/dto"
	"github.com/jhoicas/inventario-supabase/internal/domain/entity"
)

// SalesReporter genera el PDF del historial de ventas.
type SalesReporter interface {
	GenerateSalesReport(ctx context.Context, sales []*entity.Sale, stats dto.SalesStats, generatedAt time.Time) ([]byte, error)
}

// SaleHandler página de ventas.
type SaleHandler struct {
	reports SalesReporter
	now     func() time.Time
}

// NewSaleHandler construye el handler. reports puede ser nil (sin reporte PDF).
func NewSaleHandler(reports SalesReporter) *SaleHandler {
	return &SaleHandler{reports: reports, now: time.Now}
}

// List godoc
// @Summary      Historial de ventas
// @Tags         ventas
// @Produce      json
// @Success      200  {object}  dto.SaleListResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/ventas [get]
func (h *SaleHandler) List(c *fiber.Ctx) error {
	out, err := GetServices(c).Sales.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Register godoc
// @Summary      Registrar venta
// @Description  Valida contra el stock actual, crea la venta y descuenta el stock.
// @Tags         ventas
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterSaleRequest  true  "Venta"
// @Success      201   {object}  dto.RegisterSaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/ventas [post]
func (h *SaleHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := GetServices(c).Sales.Register(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Report godoc
// @Summary      Reporte de ventas en PDF
// @Tags         ventas
// @Produce      application/pdf
// @Success      200
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/ventas/reporte.pdf [get]
func (h *SaleHandler) Report(c *fiber.Ctx) error {
	if h.reports == nil {
		return c.Status(fiber.StatusNotImplemented).JSON(dto.ErrorResponse{Code: "NOT_IMPLEMENTED", Message: "reportes deshabilitados"})
	}
	sales, err := GetServices(c).Sales.Entities(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	now := h.now()
	doc, err := h.reports.GenerateSalesReport(c.Context(), sales, analytics.SalesStats(sales), now)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="ventas-`+now.Format("20060102")+`.pdf"`)
	return c.Send(doc)
}
