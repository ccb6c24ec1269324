// Package report renders per-algorithm search statistics.
//
// A Row is a flat, printable view of a solver.Summary. Renderers write a
// slice of rows to any io.Writer; Table aligns them in columns with
// human-readable counts and durations.
package report

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/katalvlaran/mazepath/solver"
)

// ErrNilSummary is returned by RowFromSummary for a nil or empty summary.
var ErrNilSummary = errors.New("report: nil summary")

// Row holds the statistics of one algorithm on one maze.
type Row struct {
	Algorithm  solver.Algorithm
	Found      bool
	Explored   int
	GraphSize  int
	PathLength int // cells on the path, 0 when not found
	Runs       int
	Mean       time.Duration
	StdDev     time.Duration
}

// Coverage returns the explored share of the maze in percent.
func (r Row) Coverage() float64 {
	if r.GraphSize == 0 {
		return 0
	}

	return float64(r.Explored) * 100 / float64(r.GraphSize)
}

// RowFromSummary flattens a benchmark summary into a Row.
func RowFromSummary(sum *solver.Summary) (Row, error) {
	if sum == nil || sum.First == nil {
		return Row{}, ErrNilSummary
	}
	first := sum.First

	return Row{
		Algorithm:  first.Algorithm,
		Found:      first.Found,
		Explored:   first.Explored,
		GraphSize:  first.GraphSize,
		PathLength: len(first.Path),
		Runs:       sum.Runs,
		Mean:       sum.Mean,
		StdDev:     sum.StdDev,
	}, nil
}

// Renderer writes rows to w.
type Renderer interface {
	Render(w io.Writer, rows []Row) error
}

// Table renders rows as space-aligned columns.
type Table struct {
	// Padding between columns; 0 means 2.
	Padding int
}

var _ Renderer = Table{}

// Render writes a header line followed by one line per row.
func (t Table) Render(w io.Writer, rows []Row) error {
	pad := t.Padding
	if pad <= 0 {
		pad = 2
	}
	tw := tabwriter.NewWriter(w, 0, 0, pad, ' ', 0)
	fmt.Fprintln(tw, "ALGORITHM\tRESULT\tEXPLORED\tCOVERAGE\tPATH\tRUNS\tMEAN\tSTDDEV")
	for _, r := range rows {
		result, path := "solved", humanize.Comma(int64(r.PathLength))
		if !r.Found {
			result, path = "no path", "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s / %s\t%s%%\t%s\t%d\t%s\t%s\n",
			r.Algorithm.Title(),
			result,
			humanize.Comma(int64(r.Explored)),
			humanize.Comma(int64(r.GraphSize)),
			humanize.FtoaWithDigits(r.Coverage(), 1),
			path,
			r.Runs,
			roundDuration(r.Mean),
			roundDuration(r.StdDev),
		)
	}

	return tw.Flush()
}

// roundDuration trims durations to three significant units for display.
func roundDuration(d time.Duration) time.Duration {
	switch {
	case d >= time.Second:
		return d.Round(time.Millisecond)
	case d >= time.Millisecond:
		return d.Round(time.Microsecond)
	case d >= time.Microsecond:
		return d.Round(100 * time.Nanosecond)
	}

	return d
}
