// Package postgrest implementa la capa de acceso a datos sobre la API REST (PostgREST) de Supabase.
//
// Un único Client construye las peticiones (URL, filtros, cabeceras, cuerpo) y normaliza
// los errores; el Transport elegido solo las envía. Así las tres estrategias emiten
// exactamente la misma petición.
package postgrest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/inventario-supabase/internal/domain"
	"github.com/jhoicas/inventario-supabase/pkg/config"
	"github.com/jhoicas/inventario-supabase/pkg/logger"
)

// HeaderRequestID cabecera de correlación; es metadato del cliente, no parte del contrato.
const HeaderRequestID = "X-Request-Id"

// Error fallo de red o respuesta no exitosa. Siempre satisface errors.Is(err, domain.ErrBackend).
type Error struct {
	Op     string // p. ej. "GET productos"
	Status int    // 0 si no hubo respuesta
	Body   string
	Err    error
}

func (e *Error) Error() string {
	switch {
	case e.Status != 0 && e.Body != "":
		return fmt.Sprintf("postgrest: %s: HTTP %d: %s", e.Op, e.Status, e.Body)
	case e.Status != 0:
		return fmt.Sprintf("postgrest: %s: HTTP %d", e.Op, e.Status)
	default:
		return fmt.Sprintf("postgrest: %s: %v", e.Op, e.Err)
	}
}

// Unwrap expone domain.ErrBackend y la causa original.
func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{domain.ErrBackend}
	}
	return []error{domain.ErrBackend, e.Err}
}

// apiError cuerpo de error de PostgREST.
type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details"`
	Hint    string `json:"hint"`
}

// Client cliente canónico del endpoint REST.
type Client struct {
	baseURL   string
	apiKey    string
	timeout   time.Duration
	transport Transport
	log       *logger.Logger
}

// NewClient construye el cliente. cfg debe haber pasado config.Validate.
func NewClient(cfg config.SupabaseConfig, transport Transport, log *logger.Logger) *Client {
	if log == nil {
		log = logger.Nop()
	}
	return &Client{
		baseURL:   cfg.RestURL(),
		apiKey:    cfg.Key,
		timeout:   cfg.Timeout,
		transport: transport,
		log:       log,
	}
}

// Strategy nombre del transporte en uso.
func (c *Client) Strategy() string { return c.transport.Name() }

// Header devuelve el conjunto de cabeceras que lleva toda petición.
func (c *Client) Header() http.Header {
	h := http.Header{}
	h.Set("Content-Type", "application/json")
	h.Set("apikey", c.apiKey)
	h.Set("Authorization", "Bearer "+c.apiKey)
	h.Set("Prefer", "return=representation")
	return h
}

// do ejecuta la operación y devuelve el cuerpo de una respuesta 2xx.
func (c *Client) do(ctx context.Context, method, table string, q url.Values, payload any) ([]byte, error) {
	op := method + " " + table

	var body []byte
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, &Error{Op: op, Err: fmt.Errorf("serializar payload: %w", err)}
		}
		body = b
	}

	req := &Request{
		Method: method,
		URL:    resourceURL(c.baseURL, table, q),
		Header: c.Header(),
		Body:   body,
	}
	reqID := uuid.NewString()
	req.Header.Set(HeaderRequestID, reqID)

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	start := time.Now()
	resp, err := c.transport.Do(ctx, req)
	elapsed := time.Since(start)
	if err != nil {
		c.log.Error().Err(err).
			Str("strategy", c.transport.Name()).
			Str("op", op).
			Str("request_id", reqID).
			Dur("elapsed", elapsed).
			Msg("petición al backend fallida")
		if ctxErr := ctx.Err(); ctxErr != nil && !errors.Is(err, ctxErr) {
			err = fmt.Errorf("%w: %w", ctxErr, err)
		}
		return nil, &Error{Op: op, Err: err}
	}

	c.log.Debug().
		Str("strategy", c.transport.Name()).
		Str("op", op).
		Str("request_id", reqID).
		Int("status", resp.Status).
		Dur("elapsed", elapsed).
		Msg("petición al backend")

	if resp.Status < 200 || resp.Status > 299 {
		e := &Error{Op: op, Status: resp.Status, Body: errorMessage(resp.Body)}
		c.log.Error().
			Str("strategy", c.transport.Name()).
			Str("op", op).
			Str("request_id", reqID).
			Int("status", resp.Status).
			Str("body", e.Body).
			Msg("respuesta no exitosa del backend")
		return nil, e
	}
	return resp.Body, nil
}

// errorMessage extrae el mensaje de un cuerpo de error de PostgREST (o lo devuelve recortado).
func errorMessage(raw []byte) string {
	var e apiError
	if err := json.Unmarshal(raw, &e); err == nil && e.Message != "" {
		if e.Code != "" {
			return e.Code + ": " + e.Message
		}
		return e.Message
	}
	s := strings.TrimSpace(string(raw))
	if len(s) > 512 {
		s = s[:512]
	}
	return s
}

// decodeRows deserializa un arreglo JSON de filas. Un cuerpo vacío se trata como lista vacía.
func decodeRows[T any](op string, raw []byte) ([]T, error) {
	if len(strings.TrimSpace(string(raw))) == 0 {
		return nil, nil
	}
	var rows []T
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, &Error{Op: op, Err: fmt.Errorf("deserializar respuesta: %w", err)}
	}
	return rows, nil
}

// list ejecuta un GET y deserializa las filas.
func list[T any](ctx context.Context, c *Client, table string, q url.Values) ([]T, error) {
	raw, err := c.do(ctx, http.MethodGet, table, q, nil)
	if err != nil {
		return nil, err
	}
	return decodeRows[T](http.MethodGet+" "+table, raw)
}

// first ejecuta la operación y devuelve la primera fila del eco, o nil si vino vacío.
func first[T any](ctx context.Context, c *Client, method, table string, q url.Values, payload any) (*T, error) {
	raw, err := c.do(ctx, method, table, q, payload)
	if err != nil {
		return nil, err
	}
	rows, err := decodeRows[T](method+" "+table, raw)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

// remove ejecuta DELETE id=eq.<id>.
func remove(ctx context.Context, c *Client, table string, id int64) error {
	_, err := c.do(ctx, http.MethodDelete, table, byID(nil, id), nil)
	return err
}
