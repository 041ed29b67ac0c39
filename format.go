package differ

import (
	"bytes"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
)

// FormatPrettyStats writes a one-line summary of diff stats to w. if
// colorTTY is true node growth is green, shrinkage red & everything else
// neutral
func FormatPrettyStats(w io.Writer, diffStat *Stats, colorTTY bool) error {
	_, err := io.WriteString(w, formatStats(diffStat, colorTTY))
	return err
}

// FormatPrettyStatsString is a convenice wrapper that outputs to a string
// instead of an io.Writer
func FormatPrettyStatsString(diffStat *Stats, colorTTY bool) string {
	return formatStats(diffStat, colorTTY)
}

func formatStats(ds *Stats, color bool) string {
	var (
		neutralColor, insertColor, deleteColor, closeColor string
	)

	if ds == nil {
		return ""
	}

	if color {
		neutralColor = "\x1b[37m"
		insertColor = "\x1b[32m"
		deleteColor = "\x1b[31m"
		closeColor = "\x1b[0m"
	}

	buf := &bytes.Buffer{}

	nodesColor := insertColor
	change := ds.NodeChange()
	sign := "+"
	if change < 0 {
		nodesColor = deleteColor
		sign = ""
	} else if change == 0 {
		nodesColor = neutralColor
		sign = ""
	}

	fmt.Fprintf(buf, "%s%s%s %s%s.%s",
		nodesColor, sign, humanize.Comma(int64(change)), closeColor,
		plural(change, "node", "nodes"), closeColor,
	)
	fmt.Fprintf(buf, " %s%s %s.%s", neutralColor, humanize.Comma(int64(ds.Comparisons)), plural(ds.Comparisons, "comparison", "comparisons"), closeColor)
	fmt.Fprintf(buf, " %s%s %s.%s", neutralColor, humanize.Comma(int64(ds.Matches)), plural(ds.Matches, "match", "matches"), closeColor)

	if ds.Discarded > 0 {
		fmt.Fprintf(buf, " %s%s %s.%s", deleteColor, humanize.Comma(int64(ds.Discarded)), plural(ds.Discarded, "discard", "discards"), closeColor)
	}

	buf.WriteRune('\n')
	return buf.String()
}

func plural(n int, one, many string) string {
	if n == 1 || n == -1 {
		return one
	}
	return many
}
