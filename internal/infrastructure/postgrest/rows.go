package postgrest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-supabase/internal/domain/entity"
)

// ── Filas tal como viajan por el cable ────────────────────────────────────────

type supplierEmbed struct {
	Nombre   string `json:"nombre"`
	Contacto string `json:"contacto"`
}

type productRow struct {
	ID          int64           `json:"id,omitempty"`
	Nombre      string          `json:"nombre"`
	Categoria   string          `json:"categoria"`
	Precio      decimal.Decimal `json:"precio"`
	Stock       int             `json:"stock"`
	ProveedorID int64           `json:"proveedor_id"`
	ImagenURL   *string         `json:"imagen_url"`
	Descripcion *string         `json:"descripcion"`
	Proveedores *supplierEmbed  `json:"proveedores,omitempty"`
}

type supplierRow struct {
	ID       int64  `json:"id"`
	Nombre   string `json:"nombre"`
	Contacto string `json:"contacto"`
}

type userRow struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
	Rol    string `json:"rol"`
}

type saleProductEmbed struct {
	Nombre string          `json:"nombre"`
	Precio decimal.Decimal `json:"precio"`
}

type saleUserEmbed struct {
	Nombre string `json:"nombre"`
}

type saleRow struct {
	ID         int64             `json:"id,omitempty"`
	ProductoID int64             `json:"producto_id"`
	UsuarioID  int64             `json:"usuario_id"`
	Cantidad   int               `json:"cantidad"`
	Total      decimal.Decimal   `json:"total"`
	FechaVenta timestamp         `json:"fecha_venta"`
	Productos  *saleProductEmbed `json:"productos,omitempty"`
	Usuarios   *saleUserEmbed    `json:"usuarios,omitempty"`
}

type movementProductEmbed struct {
	Nombre string `json:"nombre"`
}

type movementRow struct {
	ID              int64                 `json:"id,omitempty"`
	ProductoID      int64                 `json:"producto_id"`
	Tipo            string                `json:"tipo"`
	Cantidad        int                   `json:"cantidad"`
	Observacion     *string               `json:"observacion"`
	FechaMovimiento timestamp             `json:"fecha_movimiento"`
	Productos       *movementProductEmbed `json:"productos,omitempty"`
}

// ── timestamp ─────────────────────────────────────────────────────────────────

// timestamp acepta timestamptz (RFC3339) y timestamp sin zona (se asume UTC).
// Se serializa en UTC con milisegundos, igual que Date.toISOString.
type timestamp struct{ time.Time }

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999Z07",
	"2006-01-02 15:04:05.999999999",
}

func (t timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.UTC().Format("2006-01-02T15:04:05.000Z07:00"))
}

func (t *timestamp) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		t.Time = time.Time{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("timestamp no reconocido: %q", s)
}

// ── Conversión fila <-> entidad ───────────────────────────────────────────────

func (r *productRow) toEntity() *entity.Product {
	p := &entity.Product{
		ID:          r.ID,
		Name:        r.Nombre,
		Category:    r.Categoria,
		Price:       r.Precio,
		Stock:       r.Stock,
		SupplierID:  r.ProveedorID,
		ImageURL:    r.ImagenURL,
		Description: r.Descripcion,
	}
	if r.Proveedores != nil {
		p.Supplier = &entity.SupplierRef{Name: r.Proveedores.Nombre, Contact: r.Proveedores.Contacto}
	}
	return p
}

func productRowFrom(p *entity.Product) productRow {
	return productRow{
		Nombre:      p.Name,
		Categoria:   p.Category,
		Precio:      p.Price,
		Stock:       p.Stock,
		ProveedorID: p.SupplierID,
		ImagenURL:   p.ImageURL,
		Descripcion: p.Description,
	}
}

// patchPayload solo incluye los campos presentes en el patch.
func patchPayload(p entity.ProductPatch) map[string]any {
	m := make(map[string]any)
	if p.Name != nil {
		m["nombre"] = *p.Name
	}
	if p.Category != nil {
		m["categoria"] = *p.Category
	}
	if p.Price != nil {
		m["precio"] = *p.Price
	}
	if p.Stock != nil {
		m["stock"] = *p.Stock
	}
	if p.SupplierID != nil {
		m["proveedor_id"] = *p.SupplierID
	}
	if p.ImageURL != nil {
		m["imagen_url"] = *p.ImageURL
	} else if p.ClearImageURL {
		m["imagen_url"] = nil
	}
	if p.Description != nil {
		m["descripcion"] = *p.Description
	} else if p.ClearDescription {
		m["descripcion"] = nil
	}
	return m
}

func (r *supplierRow) toEntity() *entity.Supplier {
	return &entity.Supplier{ID: r.ID, Name: r.Nombre, Contact: r.Contacto}
}

func (r *userRow) toEntity() *entity.User {
	return &entity.User{ID: r.ID, Name: r.Nombre, Role: r.Rol}
}

func (r *saleRow) toEntity() *entity.Sale {
	s := &entity.Sale{
		ID:        r.ID,
		ProductID: r.ProductoID,
		UserID:    r.UsuarioID,
		Quantity:  r.Cantidad,
		Total:     r.Total,
		SoldAt:    r.FechaVenta.Time,
	}
	if r.Productos != nil {
		s.Product = &entity.SaleProductRef{Name: r.Productos.Nombre, Price: r.Productos.Precio}
	}
	if r.Usuarios != nil {
		s.User = &entity.SaleUserRef{Name: r.Usuarios.Nombre}
	}
	return s
}

func saleRowFrom(s *entity.Sale) saleRow {
	return saleRow{
		ProductoID: s.ProductID,
		UsuarioID:  s.UserID,
		Cantidad:   s.Quantity,
		Total:      s.Total,
		FechaVenta: timestamp{s.SoldAt},
	}
}

func (r *movementRow) toEntity() *entity.Movement {
	m := &entity.Movement{
		ID:          r.ID,
		ProductID:   r.ProductoID,
		Type:        r.Tipo,
		Quantity:    r.Cantidad,
		Observation: r.Observacion,
		MovedAt:     r.FechaMovimiento.Time,
	}
	if r.Productos != nil {
		m.ProductName = r.Productos.Nombre
	}
	return m
}

func movementRowFrom(m *entity.Movement) movementRow {
	return movementRow{
		ProductoID:      m.ProductID,
		Tipo:            m.Type,
		Cantidad:        m.Quantity,
		Observacion:     m.Observation,
		FechaMovimiento: timestamp{m.MovedAt},
	}
}
