package postgrest

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
)

var _ Transport = (*AgentTransport)(nil)

// AgentTransport estrategia "alova": fiber.Agent, el cliente HTTP que trae Fiber.
// Cada petición adquiere su propio Agent; Bytes lo libera al terminar.
type AgentTransport struct{}

// NewAgentTransport construye el transporte.
func NewAgentTransport() *AgentTransport { return &AgentTransport{} }

// Name implementa Transport.
func (t *AgentTransport) Name() string { return StrategyAlova }

// Do implementa Transport.
func (t *AgentTransport) Do(ctx context.Context, r *Request) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	a := fiber.AcquireAgent()
	req := a.Request()
	req.Header.SetMethod(r.Method)
	req.SetRequestURI(r.URL)
	for k, vs := range r.Header {
		for _, v := range vs {
			a.Set(k, v)
		}
	}
	if r.Body != nil {
		a.Body(r.Body)
	}
	if deadline, ok := ctx.Deadline(); ok {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			fiber.ReleaseAgent(a)
			return nil, context.DeadlineExceeded
		}
		a.Timeout(remaining)
	}
	if err := a.Parse(); err != nil {
		fiber.ReleaseAgent(a)
		return nil, fmt.Errorf("preparar agent: %w", err)
	}

	status, body, errs := a.Bytes()
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	if len(body) > maxBodySize {
		return nil, fmt.Errorf("respuesta supera %d bytes", maxBodySize)
	}
	return &Response{Status: status, Body: body}, nil
}
