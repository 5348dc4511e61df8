package schemagen

import "strconv"

// Index is the position of an entity of type T within its Document. T is
// the storage type of the referenced entity; it only tags the index and is
// never stored.
type Index[T any] uint32

// NewIndex returns the index at the given position.
func NewIndex[T any](pos int) Index[T] {
	return Index[T](pos)
}

// Value returns the position as an int.
func (i Index[T]) Value() int {
	return int(i)
}

// String implements the fmt.Stringer interface.
func (i Index[T]) String() string {
	return "#" + strconv.FormatUint(uint64(i), 10)
}
