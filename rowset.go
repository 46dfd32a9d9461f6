package truss

import "fmt"

// RowSet declares the shape of one row-returning engine call: the row
// count the engine reported plus the length of every parallel output
// array, in the operation's documented column order.
//
// A count of zero is a legitimate empty result regardless of the arrays'
// allocated lengths. A positive count with any column of a different
// length is an engine contract violation and fails zipping.
type RowSet struct {
	count int
	cols  []column
}

type column struct {
	name   string
	length int
}

// Rows starts a RowSet declaration for a reported row count.
func Rows(count int) *RowSet {
	return &RowSet{count: count}
}

// Col declares one parallel output array by name and actual length.
// Columns must be declared in the operation's documented order.
func (r *RowSet) Col(name string, length int) *RowSet {
	r.cols = append(r.cols, column{name: name, length: length})
	return r
}

// Count returns the reported row count.
func (r *RowSet) Count() int { return r.count }

func (r *RowSet) validate() error {
	if r.count < 0 {
		return fmt.Errorf("engine reported negative row count %d", r.count)
	}
	if r.count == 0 {
		return nil
	}
	for _, c := range r.cols {
		if c.length != r.count {
			return fmt.Errorf("column %s has length %d, want %d", c.name, c.length, r.count)
		}
	}
	return nil
}

// zip materializes one record per row. build receives the row index and
// reads that index from every parallel array; keep, when non-nil, filters
// records after construction preserving their original order. Element k
// of the unfiltered output corresponds exactly to index k of every source
// array.
//
// The returned slice is materialized once; it is never a lazy view over
// the engine's arrays.
func zip[T any](r *RowSet, build func(i int) T, keep func(T) bool) ([]T, error) {
	if err := r.validate(); err != nil {
		return nil, err
	}
	out := make([]T, 0, r.count)
	for i := 0; i < r.count; i++ {
		rec := build(i)
		if keep != nil && !keep(rec) {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}
