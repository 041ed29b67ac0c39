package differ

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"hash"
	"hash/fnv"
	"io"
	"reflect"
	"sort"
	"strconv"
)

// Kind defines the three shapes of data differ understands
type Kind uint8

const (
	// KindScalar is an atomic value compared only by equality. Diffs produced
	// by the equality fast path or by comparing mismatched kinds are also
	// KindScalar
	KindScalar Kind = iota
	// KindMap is an unordered collection of string keys to values
	KindMap
	// KindSequence is an ordered list of values
	KindSequence
)

// String implements the fmt.Stringer interface
func (k Kind) String() string {
	switch k {
	case KindMap:
		return "map"
	case KindSequence:
		return "sequence"
	default:
		return "scalar"
	}
}

// MarshalText implements encoding.TextMarshaler
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Value is an immutable node in a document tree. The zero Value is a null
// scalar
type Value struct {
	kind Kind
	// raw is the native value this Value was created from, if any
	raw    interface{}
	scalar interface{}

	// keys are kept sorted for deterministic traversal
	keys   []string
	fields map[string]Value
	items  []Value

	hash   []byte
	weight int
}

// NewHash returns a new hash interface, wrapped in a function for easy
// hash algorithm switching, package consumers can override NewHash
// with their own desired hash.Hash implementation. default is 64-bit FNV 1
// for fast, cheap, (non-cryptographic) hashing. Fingerprints only ever
// short-circuit inequality, a collision costs a deep comparison, never a
// wrong answer
var NewHash = func() hash.Hash {
	return fnv.New64()
}

// Scalar creates an atomic value
func Scalar(v interface{}) Value {
	return Value{
		kind:   KindScalar,
		raw:    v,
		scalar: v,
		hash:   scalarHash(v),
		weight: 1,
	}
}

// Map creates a map value from a set of fields
func Map(fields map[string]Value) Value {
	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	cp := make(map[string]Value, len(fields))
	for k, v := range fields {
		cp[k] = v
	}
	return newMap(keys, cp, nil)
}

// Sequence creates an ordered value from a list of items
func Sequence(items ...Value) Value {
	cp := make([]Value, len(items))
	copy(cp, items)
	return newSequence(cp, nil)
}

func newMap(keys []string, fields map[string]Value, raw interface{}) Value {
	h := NewHash()
	io.WriteString(h, "{")
	weight := 1
	for _, key := range keys {
		ch := fields[key]
		io.WriteString(h, strconv.Quote(key))
		h.Write(ch.Hash())
		weight += ch.weight
	}
	return Value{
		kind:   KindMap,
		raw:    raw,
		keys:   keys,
		fields: fields,
		hash:   h.Sum(nil),
		weight: weight,
	}
}

func newSequence(items []Value, raw interface{}) Value {
	h := NewHash()
	io.WriteString(h, "[")
	weight := 1
	for _, ch := range items {
		h.Write(ch.Hash())
		weight += ch.weight
	}
	return Value{
		kind:   KindSequence,
		raw:    raw,
		items:  items,
		hash:   h.Sum(nil),
		weight: weight,
	}
}

// scalarHash must agree with scalarEqual: equal scalars always hash equally
func scalarHash(v interface{}) []byte {
	h := NewHash()
	if n, ok := toNumber(v); ok {
		// large integers round here, which only widens a hash bucket
		f := n.float()
		if f == 0 {
			// fold -0 into 0
			f = 0
		}
		io.WriteString(h, "#"+strconv.FormatFloat(f, 'g', -1, 64))
		return h.Sum(nil)
	}

	switch x := v.(type) {
	case nil:
		io.WriteString(h, "null")
	case string:
		io.WriteString(h, "\""+x)
	case bool:
		io.WriteString(h, "?"+strconv.FormatBool(x))
	default:
		// reflect.DeepEqual requires identical types, so the type name is a
		// coarse but consistent fingerprint
		io.WriteString(h, fmt.Sprintf("<%T>", v))
	}
	return h.Sum(nil)
}

// Kind reports the shape of this value
func (v Value) Kind() Kind { return v.kind }

// Len is the number of fields in a map or items in a sequence, zero for
// scalars
func (v Value) Len() int {
	switch v.kind {
	case KindMap:
		return len(v.keys)
	case KindSequence:
		return len(v.items)
	}
	return 0
}

// Keys lists map keys in sorted order, nil for other kinds
func (v Value) Keys() []string {
	if v.kind != KindMap {
		return nil
	}
	keys := make([]string, len(v.keys))
	copy(keys, v.keys)
	return keys
}

// Get returns the value of a map field
func (v Value) Get(key string) (Value, bool) {
	ch, ok := v.fields[key]
	return ch, ok
}

// Index returns the i-th item of a sequence. it panics if v is not a
// sequence or i is out of range
func (v Value) Index(i int) Value {
	if v.kind != KindSequence {
		panic(fmt.Sprintf("differ: Index called on %s value", v.kind))
	}
	return v.items[i]
}

// Items lists the elements of a sequence, nil for other kinds
func (v Value) Items() []Value {
	if v.kind != KindSequence {
		return nil
	}
	items := make([]Value, len(v.items))
	copy(items, v.items)
	return items
}

// Scalar returns the atomic value held by a scalar, nil for other kinds
func (v Value) Scalar() interface{} { return v.scalar }

// Weight is the number of nodes in this value's subtree, counting itself
func (v Value) Weight() int {
	if v.weight == 0 {
		return 1
	}
	return v.weight
}

// Hash is a fingerprint of this value's content & any children
func (v Value) Hash() []byte {
	if v.hash == nil {
		return scalarHash(v.scalar)
	}
	return v.hash
}

// HashString returns the value fingerprint hex-encoded
func (v Value) HashString() string {
	return hex.EncodeToString(v.Hash())
}

// Interface returns the native go value this Value was created from. Values
// created with the Map & Sequence constructors return a rebuilt tree of
// map[string]interface{}, []interface{} & scalars
func (v Value) Interface() interface{} {
	if v.raw != nil || v.kind == KindScalar {
		return v.raw
	}
	return v.native()
}

func (v Value) native() interface{} {
	switch v.kind {
	case KindMap:
		m := make(map[string]interface{}, len(v.keys))
		for _, key := range v.keys {
			m[key] = v.fields[key].native()
		}
		return m
	case KindSequence:
		s := make([]interface{}, len(v.items))
		for i, ch := range v.items {
			s[i] = ch.native()
		}
		return s
	}
	return v.scalar
}

// MarshalJSON encodes the value as its JSON equivalent. maps with
// non-string keys in the source data encode with their stringified keys
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.native())
}

// String implements the fmt.Stringer interface
func (v Value) String() string {
	return fmt.Sprintf("%v", v.native())
}

// FromInterface classifies a native go value. Anything with map capability
// becomes a Map, any slice or array (other than []byte) becomes a Sequence,
// pointers & interfaces are followed, and everything else is a Scalar.
//
// Map keys that aren't strings are converted with fmt.Sprint. If two keys
// stringify identically the one whose type name sorts last wins.
//
// FromInterface does not detect cycles. Use a Differ to bound depth when
// the input may be cyclic. A Differ counts every pointer followed as one
// level of nesting
func FromInterface(v interface{}) Value {
	val, _ := fromInterface(v, 0, 0)
	return val
}

// fromInterface converts v, returning ErrMaxDepth if nesting exceeds
// maxDepth. a maxDepth of zero means unbounded
func fromInterface(v interface{}, depth, maxDepth int) (Value, error) {
	if maxDepth > 0 && depth > maxDepth {
		return Value{}, fmt.Errorf("%w: %d", ErrMaxDepth, maxDepth)
	}

	switch x := v.(type) {
	case Value:
		return x, nil
	case nil, string, bool, float64, int, int64:
		return Scalar(v), nil
	case map[string]interface{}:
		keys := make([]string, 0, len(x))
		for key := range x {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		fields := make(map[string]Value, len(x))
		for _, key := range keys {
			ch, err := fromInterface(x[key], depth+1, maxDepth)
			if err != nil {
				return Value{}, err
			}
			fields[key] = ch
		}
		return newMap(keys, fields, v), nil
	case []interface{}:
		items := make([]Value, len(x))
		for i, el := range x {
			ch, err := fromInterface(el, depth+1, maxDepth)
			if err != nil {
				return Value{}, err
			}
			items[i] = ch
		}
		return newSequence(items, v), nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return Scalar(v), nil
		}
		// each hop counts as a level so pointer-only cycles hit maxDepth
		return fromInterface(rv.Elem().Interface(), depth+1, maxDepth)
	case reflect.Map:
		return reflectMap(rv, v, depth, maxDepth)
	case reflect.Slice, reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			// byte strings are atomic
			return Scalar(v), nil
		}
		items := make([]Value, rv.Len())
		for i := range items {
			ch, err := fromInterface(rv.Index(i).Interface(), depth+1, maxDepth)
			if err != nil {
				return Value{}, err
			}
			items[i] = ch
		}
		return newSequence(items, v), nil
	}

	return Scalar(v), nil
}

type mapKey struct {
	name, typ string
	key       reflect.Value
}

func reflectMap(rv reflect.Value, raw interface{}, depth, maxDepth int) (Value, error) {
	mks := make([]mapKey, 0, rv.Len())
	for _, k := range rv.MapKeys() {
		mk := mapKey{key: k}
		if k.Kind() == reflect.String {
			mk.name = k.String()
		} else {
			mk.name = fmt.Sprint(k.Interface())
		}
		mk.typ = fmt.Sprintf("%T", k.Interface())
		mks = append(mks, mk)
	}
	sort.Slice(mks, func(i, j int) bool {
		if mks[i].name != mks[j].name {
			return mks[i].name < mks[j].name
		}
		return mks[i].typ < mks[j].typ
	})

	keys := make([]string, 0, len(mks))
	fields := make(map[string]Value, len(mks))
	for _, mk := range mks {
		ch, err := fromInterface(rv.MapIndex(mk.key).Interface(), depth+1, maxDepth)
		if err != nil {
			return Value{}, err
		}
		if _, exists := fields[mk.name]; !exists {
			keys = append(keys, mk.name)
		}
		fields[mk.name] = ch
	}
	return newMap(keys, fields, raw), nil
}
