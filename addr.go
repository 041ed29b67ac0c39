package differ

import "strconv"

// Addr is a single step in a path through a document: a map key or a
// sequence index
type Addr interface {
	String() string
	Value() interface{}
}

// StringAddr is the address of a map field
type StringAddr string

var _ Addr = (*StringAddr)(nil)

// String returns this address as a string
func (p StringAddr) String() string { return string(p) }

// Value returns StringAddr as a string, a common go type
func (p StringAddr) Value() interface{} { return string(p) }

// IndexAddr is the address of a sequence element
type IndexAddr int

var _ Addr = (*IndexAddr)(nil)

// String returns this address as a string
func (p IndexAddr) String() string { return strconv.Itoa(int(p)) }

// Value returns IndexAddr as an int, a common go type
func (p IndexAddr) Value() interface{} { return int(p) }

// Walk visits d and every nested diff below it in pre-order, passing the path
// from d to each node. Map changes are visited in sorted key order, sequence
// changes by ascending left index, so paths through sequences address the
// left-hand document. If fn returns false Walk doesn't descend below that
// node
func (d *Diff) Walk(fn func(path []Addr, d *Diff) bool) {
	walk(d, nil, fn)
}

func walk(d *Diff, path []Addr, fn func(path []Addr, d *Diff) bool) {
	if d == nil || !fn(path, d) {
		return
	}

	switch {
	case d.Map != nil:
		for _, key := range d.Map.Changed {
			walk(d.Map.Changes[key], extend(path, StringAddr(key)), fn)
		}
	case d.Sequence != nil:
		for _, i := range d.Sequence.Changed {
			walk(d.Sequence.Changes[i].Diff, extend(path, IndexAddr(i)), fn)
		}
	}
}

// extend copies path so sibling visits never share a backing array
func extend(path []Addr, addr Addr) []Addr {
	p := make([]Addr, len(path), len(path)+1)
	copy(p, path)
	return append(p, addr)
}
