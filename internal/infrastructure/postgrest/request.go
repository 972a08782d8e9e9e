package postgrest

import (
	"net/http"
	"net/url"
	"strconv"
)

// Tablas expuestas por el endpoint REST.
const (
	TableProducts  = "productos"
	TableSuppliers = "proveedores"
	TableSales     = "ventas"
	TableMovements = "movimientos_inventario"
	TableUsers     = "usuarios"
)

// Request petición HTTP ya resuelta; es lo único que ven los transportes.
type Request struct {
	Method string
	URL    string
	Header http.Header
	Body   []byte
}

// listQuery proyección (select) y orden (order=campo.dir) de un listado.
func listQuery(selectExpr, field string, asc bool) url.Values {
	q := url.Values{}
	if selectExpr != "" {
		q.Set("select", selectExpr)
	}
	if field != "" {
		dir := "desc"
		if asc {
			dir = "asc"
		}
		q.Set("order", field+"."+dir)
	}
	return q
}

// byID filtro id=eq.<id>; se combina con q si no es nil.
func byID(q url.Values, id int64) url.Values {
	if q == nil {
		q = url.Values{}
	}
	q.Set("id", "eq."+strconv.FormatInt(id, 10))
	return q
}

// resourceURL arma <base>/<tabla>?<query>. url.Values.Encode ordena las claves,
// así que la cadena es la misma para cualquier transporte.
func resourceURL(base, table string, q url.Values) string {
	u := base + "/" + table
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	return u
}
