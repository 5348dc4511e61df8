package schemagen

import "sync"

// Document is the aggregate holding every entity of a schema family. Entities
// are grouped by kind, the qualified schema name of the entity (for example
// "scene::Node"), and addressed by their position within the kind.
type Document interface {
	// Get returns the storage value of the entity at the given position.
	// The value is a pointer to the generated storage type.
	Get(kind string, index int) (any, bool)
}

// Resolve returns the storage value that idx refers to in doc. It panics
// with a *NotFoundError if the index does not resolve to a value of type T;
// documents are expected to be validated before they are read.
func Resolve[T any](doc Document, kind string, idx Index[T]) *T {
	v, err := Lookup(doc, kind, idx)
	if err != nil {
		panic(err)
	}
	return v
}

// Lookup is like Resolve but reports a missing entity as an error.
func Lookup[T any](doc Document, kind string, idx Index[T]) (*T, error) {
	if doc != nil {
		if v, ok := doc.Get(kind, idx.Value()); ok {
			switch v := v.(type) {
			case *T:
				if v != nil {
					return v, nil
				}
			case T:
				return &v, nil
			}
		}
	}
	return nil, NewNotFoundError(kind, idx.Value())
}

// MemDocument is an in-memory Document. It is safe for concurrent use.
type MemDocument struct {
	mu       sync.RWMutex
	entities map[string][]any
}

// NewMemDocument returns an empty document.
func NewMemDocument() *MemDocument {
	return &MemDocument{entities: make(map[string][]any)}
}

// Add appends v to the entities of the given kind and returns its position.
func (d *MemDocument) Add(kind string, v any) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.entities == nil {
		d.entities = make(map[string][]any)
	}
	d.entities[kind] = append(d.entities[kind], v)
	return len(d.entities[kind]) - 1
}

// Get implements the Document interface.
func (d *MemDocument) Get(kind string, index int) (any, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	list := d.entities[kind]
	if index < 0 || index >= len(list) {
		return nil, false
	}
	return list[index], true
}

// Len returns the number of entities of the given kind.
func (d *MemDocument) Len(kind string) int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.entities[kind])
}

// Append adds v to the document and returns its typed index.
func Append[T any](d *MemDocument, kind string, v *T) Index[T] {
	return NewIndex[T](d.Add(kind, v))
}
