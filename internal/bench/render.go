package bench

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/pterm/pterm"

	"github.com/coregx/strsearch/engine"
)

// maxPatternWidth caps how much of a pattern is shown in a table cell.
const maxPatternWidth = 24

// Render writes report as a table with one row per pattern and one timing
// column per algorithm. Algorithms that did not run show "-".
func Render(w io.Writer, report *Report) error {
	header := []string{"Pattern", "m", "Matches"}
	for _, a := range engine.Algorithms() {
		header = append(header, a.String())
	}
	header = append(header, "Selected", "Fastest")

	data := pterm.TableData{header}
	for i := range report.Results {
		res := &report.Results[i]
		row := []string{
			quotePattern(res.Pattern),
			strconv.Itoa(len(res.Pattern)),
			strconv.Itoa(len(res.Positions)),
		}
		for _, a := range engine.Algorithms() {
			row = append(row, formatMean(res.Timings, a))
		}
		fastest := "-"
		if res.Compared() {
			fastest = res.Fastest.String()
		}
		row = append(row, res.Decision.String(), fastest)
		data = append(data, row)
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, table)
	return err
}

// Summary returns a one-line summary of the selector's accuracy.
func Summary(report *Report) string {
	hits, total := report.Hits()
	if total == 0 {
		return fmt.Sprintf("%d patterns on %d bytes (cpu: %s); selector made no comparable picks",
			len(report.Results), report.TextLen, report.CPU)
	}
	return fmt.Sprintf("%d patterns on %d bytes (cpu: %s); selector picked the fastest algorithm %d/%d times",
		len(report.Results), report.TextLen, report.CPU, hits, total)
}

// ReadPatterns reads one pattern per line. Empty lines are kept as empty
// patterns.
func ReadPatterns(r io.Reader) ([][]byte, error) {
	var patterns [][]byte
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)
	for sc.Scan() {
		patterns = append(patterns, append([]byte{}, sc.Bytes()...))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return patterns, nil
}

func formatMean(timings []Timing, a engine.Algorithm) string {
	for _, t := range timings {
		if t.Algorithm == a {
			return t.Mean.Round(time.Nanosecond).String()
		}
	}
	return "-"
}

func quotePattern(p []byte) string {
	q := strconv.Quote(string(p))
	if len(q) > maxPatternWidth {
		q = q[:maxPatternWidth-3] + "..."
	}
	return q
}
