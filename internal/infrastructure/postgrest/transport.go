package postgrest

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Estrategias de transporte disponibles (nombres heredados de la versión web).
const (
	StrategyFetch = "fetch"
	StrategyAxios = "axios"
	StrategyAlova = "alova"
)

// maxBodySize límite de lectura de cada respuesta.
const maxBodySize = 4 << 20

// ErrUnknownStrategy nombre de estrategia no soportado.
var ErrUnknownStrategy = errors.New("postgrest: estrategia de transporte desconocida")

// Response respuesta cruda del backend.
type Response struct {
	Status int
	Body   []byte
}

// Transport ejecuta una Request. Las implementaciones solo difieren en la librería HTTP;
// método, URL, cabeceras y cuerpo llegan ya construidos por el Client.
type Transport interface {
	Name() string
	Do(ctx context.Context, req *Request) (*Response, error)
}

// StrategyInfo descripción de una estrategia para el selector de API.
type StrategyInfo struct {
	Name        string `json:"name"`
	Library     string `json:"library"`
	Description string `json:"description"`
}

var strategies = []StrategyInfo{
	{
		Name:        StrategyFetch,
		Library:     "net/http",
		Description: "Cliente HTTP de la librería estándar",
	},
	{
		Name:        StrategyAxios,
		Library:     "github.com/valyala/fasthttp",
		Description: "Cliente fasthttp con pool de conexiones propio",
	},
	{
		Name:        StrategyAlova,
		Library:     "github.com/gofiber/fiber/v2 (Agent)",
		Description: "Agent de Fiber sobre fasthttp",
	},
}

// Strategies lista las estrategias soportadas.
func Strategies() []StrategyInfo {
	out := make([]StrategyInfo, len(strategies))
	copy(out, strategies)
	return out
}

// NewTransport construye el transporte de la estrategia indicada.
func NewTransport(name string) (Transport, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case StrategyFetch:
		return NewNetHTTPTransport(), nil
	case StrategyAxios:
		return NewFastHTTPTransport(), nil
	case StrategyAlova:
		return NewAgentTransport(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}
