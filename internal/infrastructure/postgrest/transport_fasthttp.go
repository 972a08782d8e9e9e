package postgrest

import (
	"context"

	"github.com/valyala/fasthttp"
)

var _ Transport = (*FastHTTPTransport)(nil)

// FastHTTPTransport estrategia "axios": cliente de valyala/fasthttp.
// fasthttp no acepta context; se respeta el deadline y la cancelación previa al envío.
type FastHTTPTransport struct {
	client *fasthttp.Client
}

// NewFastHTTPTransport construye el transporte.
func NewFastHTTPTransport() *FastHTTPTransport {
	return &FastHTTPTransport{
		client: &fasthttp.Client{
			Name:                "inventario-supabase",
			MaxResponseBodySize: maxBodySize,
		},
	}
}

// Name implementa Transport.
func (t *FastHTTPTransport) Name() string { return StrategyAxios }

// Do implementa Transport.
func (t *FastHTTPTransport) Do(ctx context.Context, r *Request) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(r.URL)
	req.Header.SetMethod(r.Method)
	for k, vs := range r.Header {
		for _, v := range vs {
			req.Header.Set(k, v)
		}
	}
	if r.Body != nil {
		req.SetBody(r.Body)
	}

	var err error
	if deadline, ok := ctx.Deadline(); ok {
		err = t.client.DoDeadline(req, resp, deadline)
	} else {
		err = t.client.Do(req, resp)
	}
	if err != nil {
		return nil, err
	}
	body := append([]byte(nil), resp.Body()...)
	return &Response{Status: resp.StatusCode(), Body: body}, nil
}
