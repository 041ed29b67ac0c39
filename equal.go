package differ

import (
	"bytes"
	"encoding/json"
	"math"
	"reflect"
)

// Equal reports whether two values are structurally equal. Numbers compare
// by value across go numeric types, integers exactly, and NaN is equal to
// NaN. Equal also lets go-cmp compare Values directly.
//
// Other scalars fall back to reflect.DeepEqual, so a scalar struct with a
// NaN field is not equal to itself.
func (v Value) Equal(o Value) bool {
	if !bytes.Equal(v.Hash(), o.Hash()) {
		return false
	}
	if v.kind != o.kind {
		return false
	}

	switch v.kind {
	case KindMap:
		if len(v.keys) != len(o.keys) {
			return false
		}
		for _, key := range v.keys {
			och, ok := o.fields[key]
			if !ok || !v.fields[key].Equal(och) {
				return false
			}
		}
		return true
	case KindSequence:
		if len(v.items) != len(o.items) {
			return false
		}
		for i, ch := range v.items {
			if !ch.Equal(o.items[i]) {
				return false
			}
		}
		return true
	}
	return scalarEqual(v.scalar, o.scalar)
}

func scalarEqual(a, b interface{}) bool {
	an, aok := toNumber(a)
	bn, bok := toNumber(b)
	if aok || bok {
		return aok && bok && an.equal(bn)
	}

	if as, ok := a.(string); ok {
		bs, ok := b.(string)
		return ok && as == bs
	}
	return reflect.DeepEqual(a, b)
}

type numKind uint8

const (
	numInt numKind = iota
	numUint
	numFloat
)

// number is a scalar normalized for comparison
type number struct {
	kind numKind
	i    int64
	u    uint64
	f    float64
}

func toNumber(v interface{}) (number, bool) {
	switch x := v.(type) {
	case nil, string, bool:
		return number{}, false
	case float64:
		return number{kind: numFloat, f: x}, true
	case int:
		return number{kind: numInt, i: int64(x)}, true
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return number{kind: numInt, i: i}, true
		}
		if f, err := x.Float64(); err == nil {
			return number{kind: numFloat, f: f}, true
		}
		return number{}, false
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return number{kind: numInt, i: rv.Int()}, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return number{kind: numUint, u: rv.Uint()}, true
	case reflect.Float32, reflect.Float64:
		return number{kind: numFloat, f: rv.Float()}, true
	}
	return number{}, false
}

func (n number) float() float64 {
	switch n.kind {
	case numInt:
		return float64(n.i)
	case numUint:
		return float64(n.u)
	}
	return n.f
}

func (n number) equal(o number) bool {
	switch {
	case n.kind == numInt && o.kind == numInt:
		return n.i == o.i
	case n.kind == numUint && o.kind == numUint:
		return n.u == o.u
	case n.kind == numInt && o.kind == numUint:
		return n.i >= 0 && uint64(n.i) == o.u
	case n.kind == numUint && o.kind == numInt:
		return o.equal(n)
	case n.kind == numFloat && o.kind != numFloat:
		return o.equal(n)
	case n.kind == numInt && o.kind == numFloat:
		// integers compare exactly, never through a lossy float64 conversion
		f := o.f
		if f != math.Trunc(f) || f < -(1<<63) || f >= 1<<63 {
			return false
		}
		return n.i == int64(f)
	case n.kind == numUint && o.kind == numFloat:
		f := o.f
		if f != math.Trunc(f) || f < 0 || f >= 1<<64 {
			return false
		}
		return n.u == uint64(f)
	}

	if math.IsNaN(n.f) && math.IsNaN(o.f) {
		return true
	}
	return n.f == o.f
}
