package feature

import (
	"fmt"
	"iter"
)

// List is an immutable ordered sequence of records. The zero value is an
// empty list.
type List struct {
	records []Record
}

// NewList copies records into a new List, preserving their order.
func NewList(records ...Record) List {
	if len(records) == 0 {
		return List{}
	}
	out := make([]Record, len(records))
	copy(out, records)
	return List{records: out}
}

// Len returns the number of records.
func (l List) Len() int {
	return len(l.records)
}

// At returns the record at index i. It panics when i is out of range, like a
// slice index.
func (l List) At(i int) Record {
	return l.records[i]
}

// Records returns a copy of the records in display order.
func (l List) Records() []Record {
	if len(l.records) == 0 {
		return nil
	}
	out := make([]Record, len(l.records))
	copy(out, l.records)
	return out
}

// All iterates over the records in display order.
func (l List) All() iter.Seq2[int, Record] {
	return func(yield func(int, Record) bool) {
		for i, record := range l.records {
			if !yield(i, record) {
				return
			}
		}
	}
}

// Titles returns the record titles in display order.
func (l List) Titles() []string {
	titles := make([]string, 0, len(l.records))
	for _, record := range l.records {
		titles = append(titles, record.title)
	}
	return titles
}

// Swap returns a copy of the list with the records at i and j exchanged.
func (l List) Swap(i, j int) (List, error) {
	if i < 0 || i >= len(l.records) || j < 0 || j >= len(l.records) {
		return List{}, fmt.Errorf("feature: swap %d and %d out of range for %d records", i, j, len(l.records))
	}
	out := NewList(l.records...)
	out.records[i], out.records[j] = out.records[j], out.records[i]
	return out, nil
}

// Remove returns a copy of the list without the record at i.
func (l List) Remove(i int) (List, error) {
	if i < 0 || i >= len(l.records) {
		return List{}, fmt.Errorf("feature: remove %d out of range for %d records", i, len(l.records))
	}
	combined := make([]Record, 0, len(l.records)-1)
	combined = append(combined, l.records[:i]...)
	combined = append(combined, l.records[i+1:]...)
	return List{records: combined}, nil
}

// Replace returns a copy of the list with the record at i set to record.
func (l List) Replace(i int, record Record) (List, error) {
	if i < 0 || i >= len(l.records) {
		return List{}, fmt.Errorf("feature: replace %d out of range for %d records", i, len(l.records))
	}
	out := NewList(l.records...)
	out.records[i] = record
	return out, nil
}

// Append returns a new list with records added after the existing ones.
func (l List) Append(records ...Record) List {
	combined := make([]Record, 0, len(l.records)+len(records))
	combined = append(combined, l.records...)
	combined = append(combined, records...)
	return List{records: combined}
}

// Equal reports whether both lists hold equal records in the same order.
func (l List) Equal(other List) bool {
	if len(l.records) != len(other.records) {
		return false
	}
	for i := range l.records {
		if !l.records[i].Equal(other.records[i]) {
			return false
		}
	}
	return true
}
