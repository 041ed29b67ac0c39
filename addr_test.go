package differ

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func pathString(addrs []Addr) string {
	p := ""
	for _, addr := range addrs {
		p += "/" + addr.String()
	}
	return p
}

func TestAddrs(t *testing.T) {
	if StringAddr("a").Value() != "a" {
		t.Error("expected StringAddr value to be a string")
	}
	if IndexAddr(3).Value() != 3 || IndexAddr(3).String() != "3" {
		t.Error("expected IndexAddr to convert to 3")
	}
}

func TestDiffWalk(t *testing.T) {
	left := mustParseJSON(t, `{"a":{"x":1,"y":1},"b":[1,2],"c":1}`)
	right := mustParseJSON(t, `{"a":{"x":2,"y":1},"b":[2,1],"c":1}`)
	diff := Compare(left, right)

	var visited []string
	diff.Walk(func(path []Addr, d *Diff) bool {
		visited = append(visited, pathString(path))
		return true
	})
	expect := []string{"", "/a", "/a/x", "/b", "/b/0", "/b/1"}
	if d := cmp.Diff(expect, visited); d != "" {
		t.Errorf("walk order mismatch (-want +got):\n%s", d)
	}

	visited = nil
	diff.Walk(func(path []Addr, d *Diff) bool {
		p := pathString(path)
		visited = append(visited, p)
		return !strings.HasPrefix(p, "/a")
	})
	expect = []string{"", "/a", "/b", "/b/0", "/b/1"}
	if d := cmp.Diff(expect, visited); d != "" {
		t.Errorf("pruned walk mismatch (-want +got):\n%s", d)
	}
}

func TestElementChangeMoved(t *testing.T) {
	diff := Compare(mustParseJSON(t, `["a","b","c"]`), mustParseJSON(t, `["a","c","b"]`))
	if diff.Sequence == nil {
		t.Fatal("expected a sequence diff")
	}
	for i, ch := range diff.Sequence.Changes {
		if !ch.Moved() {
			t.Errorf("expected element %d to be reported as moved", i)
		}
	}
	if len(diff.Sequence.Changes) != 2 {
		t.Errorf("expected 2 changes, got %d", len(diff.Sequence.Changes))
	}
}
