// Package differ measures how different two structured documents are.
//
// Comparing two documents yields a Diff: a distance from 0.0 (equal) to 1.0
// (entirely unrelated) plus a tree describing what changed. Map diffs list
// added, removed, changed & equal keys. Sequence diffs match elements across
// both sides by similarity, so an element that moved or was only partially
// edited is reported as changed instead of as a delete & insert pair.
//
// differ operates on a small tagged union, Value, with three kinds:
//
//	Scalar   - any atomic value, compared by equality
//	Map      - string keys to Values, unordered
//	Sequence - ordered Values
//
// Values are built at the boundary from native go types with FromInterface,
// or from encoded bytes with ParseJSON, ParseYAML & ParseMsgpack. Numbers
// compare by value regardless of go type, so a document decoded from JSON
// (float64) compares cleanly against the same document decoded from YAML
// (int).
//
// Sequence matching scores every pair of elements and commits the closest
// pairs greedily. This is quadratic in sequence length and not an optimal
// assignment, but it is stable: the same inputs always produce the same
// matches. Callers diffing very long lists should bound input size, and
// callers diffing untrusted input should use a Differ, which enforces a
// maximum nesting depth & honors context cancellation.
package differ
