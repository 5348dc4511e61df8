package load

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2/unstable"
)

// parseTOML decodes TOML source into an ordered table. The source is read
// expression by expression, so keys keep their declaration order, including
// the keys of inline tables.
func parseTOML(data []byte) (*table, error) {
	tp := &tomlParser{data: data, root: newTable()}
	tp.p.Reset(data)
	current := tp.root
	for tp.p.NextExpression() {
		expr := tp.p.Expression()
		var err error
		switch expr.Kind {
		case unstable.KeyValue:
			err = tp.keyValue(current, expr)
		case unstable.Table:
			current, err = tp.table(expr)
		case unstable.ArrayTable:
			current, err = tp.arrayTable(expr)
		}
		if err != nil {
			return nil, err
		}
	}
	if err := tp.p.Error(); err != nil {
		var perr *unstable.ParserError
		if errors.As(err, &perr) && len(perr.Highlight) > 0 {
			return nil, fmt.Errorf("%s: %s", tp.position(tp.p.Range(perr.Highlight)), perr.Message)
		}
		return nil, err
	}
	return tp.root, nil
}

type tomlParser struct {
	p    unstable.Parser
	data []byte
	root *table
}

// position converts a byte range of the source into a line/column pair.
func (tp *tomlParser) position(r unstable.Range) position {
	off := int(r.Offset)
	if off > len(tp.data) {
		return position{}
	}
	line := 1 + bytes.Count(tp.data[:off], []byte("\n"))
	col := off - bytes.LastIndexByte(tp.data[:off], '\n')
	return position{Line: line, Col: col}
}

// key returns the parts of a dotted key and the position of its first part.
func (tp *tomlParser) key(n *unstable.Node) ([]string, position) {
	var (
		parts []string
		pos   position
	)
	it := n.Key()
	for it.Next() {
		k := it.Node()
		if len(parts) == 0 {
			pos = tp.position(k.Raw)
		}
		parts = append(parts, string(k.Data))
	}
	return parts, pos
}

// descend returns the table at path below t, creating missing tables. An
// array of tables along the path resolves to its last element.
func descend(t *table, path []string, pos position) (*table, error) {
	for _, k := range path {
		v, ok := t.get(k)
		if !ok {
			sub := newTable()
			t.set(k, sub, pos)
			t = sub
			continue
		}
		switch v := v.(type) {
		case *table:
			t = v
		case []any:
			last, ok := lastTable(v)
			if !ok {
				return nil, fmt.Errorf("%s: key %q is not a table", pos, k)
			}
			t = last
		default:
			return nil, fmt.Errorf("%s: key %q is not a table", pos, k)
		}
	}
	return t, nil
}

func lastTable(arr []any) (*table, bool) {
	if len(arr) == 0 {
		return nil, false
	}
	t, ok := arr[len(arr)-1].(*table)
	return t, ok
}

func (tp *tomlParser) keyValue(t *table, n *unstable.Node) error {
	parts, pos := tp.key(n)
	parent, err := descend(t, parts[:len(parts)-1], pos)
	if err != nil {
		return err
	}
	last := parts[len(parts)-1]
	if _, ok := parent.get(last); ok {
		return fmt.Errorf("%s: duplicate key %q", pos, strings.Join(parts, "."))
	}
	v, err := tp.value(n.Value())
	if err != nil {
		return fmt.Errorf("%s: key %q: %w", pos, strings.Join(parts, "."), err)
	}
	parent.set(last, v, pos)
	return nil
}

func (tp *tomlParser) table(n *unstable.Node) (*table, error) {
	parts, pos := tp.key(n)
	return descend(tp.root, parts, pos)
}

func (tp *tomlParser) arrayTable(n *unstable.Node) (*table, error) {
	parts, pos := tp.key(n)
	parent, err := descend(tp.root, parts[:len(parts)-1], pos)
	if err != nil {
		return nil, err
	}
	last := parts[len(parts)-1]
	var arr []any
	if v, ok := parent.get(last); ok {
		if arr, ok = v.([]any); !ok {
			return nil, fmt.Errorf("%s: key %q is not an array of tables", pos, strings.Join(parts, "."))
		}
	}
	elem := newTable()
	parent.set(last, append(arr, elem), pos)
	return elem, nil
}

func (tp *tomlParser) value(n *unstable.Node) (any, error) {
	switch n.Kind {
	case unstable.String:
		return string(n.Data), nil
	case unstable.Bool:
		return string(n.Data) == "true", nil
	case unstable.Integer:
		i, err := strconv.ParseInt(string(n.Data), 0, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid integer %s", n.Data)
		}
		return i, nil
	case unstable.Float:
		f, err := strconv.ParseFloat(strings.ReplaceAll(string(n.Data), "_", ""), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid float %s", n.Data)
		}
		return f, nil
	case unstable.Array:
		out := []any{}
		it := n.Children()
		for it.Next() {
			v, err := tp.value(it.Node())
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	case unstable.InlineTable:
		t := newTable()
		it := n.Children()
		for it.Next() {
			if err := tp.keyValue(t, it.Node()); err != nil {
				return nil, err
			}
		}
		return t, nil
	case unstable.LocalDate, unstable.LocalTime, unstable.LocalDateTime, unstable.DateTime:
		return nil, fmt.Errorf("unsupported date-time value %s", n.Data)
	default:
		return nil, fmt.Errorf("unsupported value of kind %s", n.Kind)
	}
}
