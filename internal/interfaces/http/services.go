package http

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/jhoicas/inventario-supabase/internal/application/dto"
	"github.com/jhoicas/inventario-supabase/internal/application/inventory"
	"github.com/jhoicas/inventario-supabase/internal/application/usecase"
)

// ErrUnknownAPI estrategia pedida por el cliente que no está registrada.
var ErrUnknownAPI = errors.New("estrategia de cliente HTTP desconocida")

// Services casos de uso construidos sobre un mismo cliente HTTP (estrategia).
type Services struct {
	Info      dto.StrategyResponse
	Products  *usecase.ProductUseCase
	Catalog   *usecase.CatalogUseCase
	Sales     *inventory.SaleUseCase
	Movements *inventory.MovementUseCase
}

// Registry servicios por estrategia y la estrategia por defecto.
type Registry struct {
	def      string
	services map[string]*Services
}

// NewRegistry construye el registro; def es la estrategia usada si el cliente no elige.
func NewRegistry(def string) *Registry {
	return &Registry{def: strings.ToLower(def), services: make(map[string]*Services)}
}

// Register agrega los servicios de una estrategia (s.Info.Name).
func (r *Registry) Register(s *Services) *Registry {
	r.services[strings.ToLower(s.Info.Name)] = s
	return r
}

// Default estrategia por defecto.
func (r *Registry) Default() string { return r.def }

// Resolve devuelve los servicios de name; "" usa la estrategia por defecto.
func (r *Registry) Resolve(name string) (*Services, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		name = r.def
	}
	s, ok := r.services[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAPI, name)
	}
	return s, nil
}

// Strategies estrategias registradas ordenadas por nombre.
func (r *Registry) Strategies() []dto.StrategyResponse {
	out := make([]dto.StrategyResponse, 0, len(r.services))
	for _, s := range r.services {
		out = append(out, s.Info)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
