package content

import (
	"net/url"
	"strconv"
)

// Value is a primitive query parameter value. The set is closed: String, Int,
// Float and Bool.
type Value interface {
	queryString() string
}

type (
	String string
	Int    int64
	Float  float64
	Bool   bool
)

func (v String) queryString() string { return string(v) }
func (v Int) queryString() string    { return strconv.FormatInt(int64(v), 10) }
func (v Float) queryString() string  { return strconv.FormatFloat(float64(v), 'f', -1, 64) }
func (v Bool) queryString() string   { return strconv.FormatBool(bool(v)) }

// Query filters, paginates and sorts a collection listing. Keys and values are
// passed to the backend untouched apart from URL encoding.
type Query map[string]Value

// Common query keys understood by the backend.
const (
	KeyLimit = "limit"
	KeyPage  = "page"
	KeySort  = "sort"
)

// Set adds or replaces key and returns q for chaining. A nil Query is allocated.
func (q Query) Set(key string, v Value) Query {
	if q == nil {
		q = Query{}
	}
	q[key] = v
	return q
}

// Where sets a where[field][op] filter, e.g. Where("status", "equals", String("published")).
func (q Query) Where(field, op string, v Value) Query {
	return q.Set("where["+field+"]["+op+"]", v)
}

// Values converts q to url.Values. Nil values are skipped.
func (q Query) Values() url.Values {
	vals := make(url.Values, len(q))
	for k, v := range q {
		if v == nil {
			continue
		}
		vals.Set(k, v.queryString())
	}
	return vals
}

// Encode returns the URL-encoded query string sorted by key, or "" when q is empty.
func (q Query) Encode() string {
	if len(q) == 0 {
		return ""
	}
	return q.Values().Encode()
}

// QueryFromValues builds a Query of String values from url.Values, keeping the
// first value of each key.
func QueryFromValues(vals url.Values) Query {
	q := make(Query, len(vals))
	for k, vs := range vals {
		if len(vs) == 0 {
			continue
		}
		q[k] = String(vs[0])
	}
	return q
}
