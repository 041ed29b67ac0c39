package differ

import (
	"bytes"
	"testing"
)

func TestFormatStatsPretty(t *testing.T) {
	cases := []struct {
		description string
		input       *Stats
		expect      string
	}{
		{"all plural",
			&Stats{Left: 2, Right: 6, Comparisons: 1500, Matches: 2, Discarded: 2},
			"+4 nodes. 1,500 comparisons. 2 matches. 2 discards.\n",
		},
		{"all singular",
			&Stats{Left: 2, Right: 1, Comparisons: 1, Matches: 1, Discarded: 1},
			"-1 node. 1 comparison. 1 match. 1 discard.\n",
		},
		{"no change, no discards",
			&Stats{Left: 3, Right: 3, Comparisons: 1},
			"0 nodes. 1 comparison. 0 matches.\n",
		},
	}

	for i, c := range cases {
		got := FormatPrettyStatsString(c.input, false)
		if got != c.expect {
			t.Errorf("%d %s\nwant:\n%s\ngot:\n%s", i, c.description, c.expect, got)
		}
	}
}

func TestFormatStatsColor(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := FormatPrettyStats(buf, &Stats{Left: 1, Right: 2, Comparisons: 3, Matches: 1}, true); err != nil {
		t.Fatal(err)
	}
	expect := "\x1b[32m+1 \x1b[0mnode.\x1b[0m \x1b[37m3 comparisons.\x1b[0m \x1b[37m1 match.\x1b[0m\n"
	if buf.String() != expect {
		t.Errorf("want:\n%q\ngot:\n%q", expect, buf.String())
	}
}

func TestFormatStatsNull(t *testing.T) {
	got := FormatPrettyStatsString(nil, false)
	expect := ``
	if got != expect {
		t.Errorf("want:\n%s\ngot:\n%s", expect, got)
	}
}
