package load

import (
	"fmt"
	"strconv"
)

// table is an ordered mapping decoded from a schema file. Values are one of
// string, int64, float64, bool, *table or []any; the order of keys is the
// order in which they appear in the source.
type table struct {
	keys   []string
	values map[string]any
	pos    map[string]position
}

// position is a line/column pair in the source file. The zero value means
// the position is unknown.
type position struct {
	Line, Col int
}

func (p position) String() string {
	if p.Line == 0 {
		return ""
	}
	return "line " + strconv.Itoa(p.Line) + ", column " + strconv.Itoa(p.Col)
}

func newTable() *table {
	return &table{
		values: make(map[string]any),
		pos:    make(map[string]position),
	}
}

func (t *table) set(key string, v any, p position) {
	if _, ok := t.values[key]; !ok {
		t.keys = append(t.keys, key)
	}
	t.values[key] = v
	t.pos[key] = p
}

func (t *table) get(key string) (any, bool) {
	v, ok := t.values[key]
	return v, ok
}

// shapeName describes the structural kind of a decoded value in diagnostics.
func shapeName(v any) string {
	switch v.(type) {
	case string:
		return "string"
	case int64:
		return "integer"
	case float64:
		return "float"
	case bool:
		return "bool"
	case *table:
		return "table"
	case []any:
		return "array"
	case nil:
		return "null"
	default:
		return fmt.Sprintf("%T", v)
	}
}
