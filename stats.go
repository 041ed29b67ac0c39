package differ

// Stats holds statistical metadata about a diff
type Stats struct {
	Left  int `json:"leftNodes"`  // count of nodes in the left tree
	Right int `json:"rightNodes"` // count of nodes in the right tree

	Comparisons int `json:"comparisons"`         // number of value pairs compared, including the root
	Pairs       int `json:"pairs"`               // number of sequence element pairs scored
	Matches     int `json:"matches"`             // number of sequence element pairs matched
	Discarded   int `json:"discarded,omitempty"` // matches split into an addition & removal
	Depth       int `json:"depth"`               // deepest nesting level compared
}

// NodeChange returns a count of the shift between left & right trees
func (s Stats) NodeChange() int {
	return s.Right - s.Left
}
