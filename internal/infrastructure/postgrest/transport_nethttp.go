package postgrest

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
)

var _ Transport = (*NetHTTPTransport)(nil)

// NetHTTPTransport estrategia "fetch": net/http de la librería estándar.
type NetHTTPTransport struct {
	httpClient *http.Client
}

// NewNetHTTPTransport construye el transporte. El timeout lo impone el contexto del Client.
func NewNetHTTPTransport() *NetHTTPTransport {
	return &NetHTTPTransport{httpClient: &http.Client{}}
}

// Name implementa Transport.
func (t *NetHTTPTransport) Name() string { return StrategyFetch }

// Do implementa Transport.
func (t *NetHTTPTransport) Do(ctx context.Context, r *Request) (*Response, error) {
	var body io.Reader
	if r.Body != nil {
		body = bytes.NewReader(r.Body)
	}
	req, err := http.NewRequestWithContext(ctx, r.Method, r.URL, body)
	if err != nil {
		return nil, fmt.Errorf("crear request: %w", err)
	}
	for k, vs := range r.Header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("leer respuesta: %w", err)
	}
	return &Response{Status: resp.StatusCode, Body: raw}, nil
}
