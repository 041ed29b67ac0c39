package differ

import "encoding/json"

// Diff describes the difference between two values. Distance is always set.
// which of the remaining fields are populated depends on Kind:
//
//	KindScalar   - Left & Right
//	KindMap      - Map
//	KindSequence - Sequence
type Diff struct {
	// Kind is the comparator that produced this diff. Values that are equal
	// short-circuit to KindScalar regardless of their shape
	Kind Kind
	// Distance ranges from 0.0 (equal) to 1.0 (entirely unrelated)
	Distance float64

	// Left & Right are the compared values, verbatim
	Left, Right Value

	Map      *MapDiff
	Sequence *SequenceDiff
}

// Equal reports whether the compared values were treated as equal
func (d *Diff) Equal() bool {
	return d.Distance == 0
}

// MapDiff is the detail of a map comparison. Added, Removed, Changed &
// Equal partition the union of keys from both maps
type MapDiff struct {
	// keys present only on the right, with their right-hand values
	Added map[string]Value `json:"added"`
	// keys present only on the left, with their left-hand values
	Removed map[string]Value `json:"removed"`
	// keys present on both sides with a non-zero distance, sorted
	Changed []string `json:"changed"`
	// keys present on both sides with zero distance, sorted
	Equal []string `json:"equal"`
	// nested diffs for each changed key
	Changes map[string]*Diff `json:"changes"`
	// size of the key union
	Total int `json:"total"`
}

// SequenceDiff is the detail of a sequence comparison. Added lists indices
// into the right sequence. Removed, Changed & Equal list indices into the
// left sequence. Together they account for every index of both sequences
type SequenceDiff struct {
	// right indices with no left counterpart: unmatched indices in ascending
	// order, followed by the right half of any discarded match
	Added []int `json:"added"`
	// left indices with no right counterpart, ordered like Added
	Removed []int `json:"removed"`
	// left indices matched to a moved or altered right element, ascending
	Changed []int `json:"changed"`
	// left indices matched to an identical element at the same index,
	// ascending
	Equal []int `json:"equal"`
	// match detail for each changed left index
	Changes map[int]*ElementChange `json:"changes"`
	Total   int                    `json:"total"`
}

// ElementChange connects a left sequence element to its matched right
// element
type ElementChange struct {
	// index in the right sequence
	Pos int `json:"pos"`
	// index in the left sequence
	PrevPos  int     `json:"prev_pos"`
	Distance float64 `json:"distance"`
	Diff     *Diff   `json:"diff"`
}

// Moved reports whether the element changed position
func (c *ElementChange) Moved() bool {
	return c.Pos != c.PrevPos
}

// MarshalJSON implements a custom JSON Marshaller. Only the fields relevant
// to a diff's kind are written
func (d *Diff) MarshalJSON() ([]byte, error) {
	switch d.Kind {
	case KindMap:
		return json.Marshal(struct {
			Kind     Kind    `json:"kind"`
			Distance float64 `json:"distance"`
			*MapDiff
		}{d.Kind, d.Distance, d.Map})
	case KindSequence:
		return json.Marshal(struct {
			Kind     Kind    `json:"kind"`
			Distance float64 `json:"distance"`
			*SequenceDiff
		}{d.Kind, d.Distance, d.Sequence})
	default:
		return json.Marshal(struct {
			Kind     Kind    `json:"kind"`
			Distance float64 `json:"distance"`
			Left     Value   `json:"left"`
			Right    Value   `json:"right"`
		}{d.Kind, d.Distance, d.Left, d.Right})
	}
}

// ratio is count / total, or zero when total is zero
func ratio(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(count) / float64(total)
}
