package elements

import "sort"

// Table maps atomic number to Record. It is built once by the loader and
// never modified afterwards, so it is safe to share without locking.
type Table struct {
	records map[int]Record
}

// NewTable copies records into a new immutable Table.
func NewTable(records map[int]Record) *Table {
	copied := make(map[int]Record, len(records))
	for n, r := range records {
		copied[n] = r
	}
	return &Table{records: copied}
}

// Empty is the table used when loading fails.
func Empty() *Table {
	return &Table{records: map[int]Record{}}
}

// Lookup returns the record for atomicNumber. On a miss it returns
// UnknownRecord(atomicNumber) and false.
func (t *Table) Lookup(atomicNumber int) (Record, bool) {
	if t != nil {
		if r, ok := t.records[atomicNumber]; ok {
			return r, true
		}
	}
	return UnknownRecord(atomicNumber), false
}

func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.records)
}

// Numbers returns the atomic numbers present, ascending.
func (t *Table) Numbers() []int {
	if t == nil {
		return nil
	}
	numbers := make([]int, 0, len(t.records))
	for n := range t.records {
		numbers = append(numbers, n)
	}
	sort.Ints(numbers)
	return numbers
}
