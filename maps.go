package differ

// compareMaps diffs two maps key by key. distance is the share of keys that
// were added, removed or changed
func (c *comparer) compareMaps(left, right Value, depth int) (*Diff, error) {
	md := &MapDiff{
		Added:   map[string]Value{},
		Removed: map[string]Value{},
		Changed: []string{},
		Equal:   []string{},
		Changes: map[string]*Diff{},
	}

	for _, key := range unionKeys(left.keys, right.keys) {
		lv, inLeft := left.fields[key]
		rv, inRight := right.fields[key]

		switch {
		case !inLeft:
			md.Added[key] = rv
		case !inRight:
			md.Removed[key] = lv
		default:
			sub, err := c.compare(lv, rv, depth+1)
			if err != nil {
				return nil, err
			}
			if sub.Distance == 0 {
				md.Equal = append(md.Equal, key)
			} else {
				md.Changed = append(md.Changed, key)
				md.Changes[key] = sub
			}
		}
		md.Total++
	}

	diffCount := len(md.Changed) + len(md.Added) + len(md.Removed)
	return &Diff{
		Kind:     KindMap,
		Distance: ratio(diffCount, md.Total),
		Map:      md,
	}, nil
}

// unionKeys merges two sorted key lists into one sorted, deduplicated list
func unionKeys(a, b []string) []string {
	keys := make([]string, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			keys = append(keys, a[i])
			i++
		case a[i] > b[j]:
			keys = append(keys, b[j])
			j++
		default:
			keys = append(keys, a[i])
			i++
			j++
		}
	}
	keys = append(keys, a[i:]...)
	return append(keys, b[j:]...)
}
