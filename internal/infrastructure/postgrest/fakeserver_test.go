package postgrest_test

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"strings"
	"sync"
	"testing"
)

// capturedRequest lo que el backend recibió, sin cabeceras propias de cada librería.
type capturedRequest struct {
	Method   string
	Path     string
	RawQuery string
	Header   map[string]string
	Body     string
}

// contractHeaders cabeceras que forman parte del contrato con el backend.
var contractHeaders = []string{"Content-Type", "Apikey", "Authorization", "Prefer"}

// fakePostgREST imitación mínima de PostgREST: select embebido de proveedores,
// order=campo.dir, filtro id=eq.N y eco de filas en escrituras.
type fakePostgREST struct {
	mu         sync.Mutex
	tables     map[string][]map[string]any
	nextID     map[string]int64
	requests   []capturedRequest
	requestIDs []string
	// failOn "<METHOD> <tabla>" -> status a devolver una vez.
	failOn map[string]int
}

func newFakePostgREST(t *testing.T) (*fakePostgREST, *httptest.Server) {
	t.Helper()
	f := &fakePostgREST{
		tables: make(map[string][]map[string]any),
		nextID: make(map[string]int64),
		failOn: make(map[string]int),
	}
	srv := httptest.NewServer(f)
	t.Cleanup(srv.Close)
	return f, srv
}

func (f *fakePostgREST) seed(table string, rows ...map[string]any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range rows {
		id := int64(r["id"].(int))
		r["id"] = float64(id)
		if id > f.nextID[table] {
			f.nextID[table] = id
		}
		f.tables[table] = append(f.tables[table], r)
	}
}

func (f *fakePostgREST) failNext(method, table string, status int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failOn[method+" "+table] = status
}

func (f *fakePostgREST) captured() []capturedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]capturedRequest(nil), f.requests...)
}

func (f *fakePostgREST) rows(table string) []map[string]any {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]map[string]any(nil), f.tables[table]...)
}

func (f *fakePostgREST) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	f.mu.Lock()
	defer f.mu.Unlock()

	hdr := make(map[string]string, len(contractHeaders))
	for _, h := range contractHeaders {
		hdr[h] = r.Header.Get(h)
	}
	// Content-Type solo cuenta cuando hay cuerpo; fasthttp lo omite en GET.
	if len(body) == 0 {
		delete(hdr, "Content-Type")
	}
	f.requests = append(f.requests, capturedRequest{
		Method:   r.Method,
		Path:     r.URL.Path,
		RawQuery: r.URL.RawQuery,
		Header:   hdr,
		Body:     string(body),
	})
	f.requestIDs = append(f.requestIDs, r.Header.Get("X-Request-Id"))

	table := strings.TrimPrefix(r.URL.Path, "/rest/v1/")
	if table == r.URL.Path || table == "" {
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "ruta desconocida"})
		return
	}
	if status, ok := f.failOn[r.Method+" "+table]; ok {
		delete(f.failOn, r.Method+" "+table)
		writeJSON(w, status, map[string]string{"code": "XX000", "message": "fallo simulado"})
		return
	}

	q := r.URL.Query()
	match := func(row map[string]any) bool {
		filter := q.Get("id")
		if filter == "" {
			return true
		}
		id, _ := strconv.ParseFloat(strings.TrimPrefix(filter, "eq."), 64)
		return row["id"] == id
	}

	switch r.Method {
	case http.MethodGet:
		out := make([]map[string]any, 0)
		for _, row := range f.tables[table] {
			if match(row) {
				out = append(out, f.embed(table, q.Get("select"), row))
			}
		}
		sortRows(out, q.Get("order"))
		writeJSON(w, http.StatusOK, out)

	case http.MethodPost:
		var row map[string]any
		if err := json.Unmarshal(body, &row); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"message": err.Error()})
			return
		}
		f.nextID[table]++
		row["id"] = float64(f.nextID[table])
		f.tables[table] = append(f.tables[table], row)
		writeJSON(w, http.StatusCreated, []map[string]any{row})

	case http.MethodPatch:
		var changes map[string]any
		if err := json.Unmarshal(body, &changes); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"message": err.Error()})
			return
		}
		out := make([]map[string]any, 0)
		for _, row := range f.tables[table] {
			if match(row) {
				for k, v := range changes {
					row[k] = v
				}
				out = append(out, row)
			}
		}
		writeJSON(w, http.StatusOK, out)

	case http.MethodDelete:
		kept := f.tables[table][:0]
		out := make([]map[string]any, 0)
		for _, row := range f.tables[table] {
			if match(row) {
				out = append(out, row)
				continue
			}
			kept = append(kept, row)
		}
		f.tables[table] = kept
		writeJSON(w, http.StatusOK, out)

	default:
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"message": "método no soportado"})
	}
}

// embed resuelve proveedores(...) para productos, que es la única relación que usan los tests.
func (f *fakePostgREST) embed(table, selectExpr string, row map[string]any) map[string]any {
	out := make(map[string]any, len(row)+1)
	for k, v := range row {
		out[k] = v
	}
	if table == "productos" && strings.Contains(selectExpr, "proveedores(") {
		for _, p := range f.tables["proveedores"] {
			if p["id"] == row["proveedor_id"] {
				out["proveedores"] = map[string]any{"nombre": p["nombre"], "contacto": p["contacto"]}
			}
		}
	}
	return out
}

func sortRows(rows []map[string]any, order string) {
	if order == "" {
		return
	}
	field, dir, _ := strings.Cut(order, ".")
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := fmt.Sprint(rows[i][field]), fmt.Sprint(rows[j][field])
		if fa, ok := rows[i][field].(float64); ok {
			fb, _ := rows[j][field].(float64)
			if dir == "desc" {
				return fa > fb
			}
			return fa < fb
		}
		if dir == "desc" {
			return a > b
		}
		return a < b
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
