package insight

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"
)

// Report is the result of one Runner.Run.
type Report struct {
	RunID     string
	Input     string
	Records   int
	StartedAt time.Time
	Duration  time.Duration
	Options   Options
	Questions []QuestionReport
}

// QuestionReport is one answered question.
type QuestionReport struct {
	ID      string
	Title   string
	Outcome Outcome
	// Files lists the chart paths written, in render order.
	Files []string
}

// Question returns the report entry for id, or nil.
func (r *Report) Question(id string) *QuestionReport {
	for i := range r.Questions {
		if r.Questions[i].ID == id {
			return &r.Questions[i]
		}
	}
	return nil
}

// WriteSummary prints the first rows of every result table to w.
// A limit below 1 prints whole tables.
func (r *Report) WriteSummary(w io.Writer, limit int) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "run %s: %d records from %s\n", r.RunID, r.Records, r.Input)
	for _, q := range r.Questions {
		fmt.Fprintf(tw, "\n[%s] %s\n", strings.ToUpper(q.ID), q.Title)
		for _, p := range q.Outcome.Tables() {
			writePivot(tw, p, limit)
		}
		for _, f := range q.Files {
			fmt.Fprintf(tw, "  chart: %s\n", f)
		}
	}
	return tw.Flush()
}

func writePivot(w io.Writer, p *Pivot, limit int) {
	fmt.Fprintf(w, "  %s (%d rows)\n", p.Name, p.Len())
	if p.Len() == 0 {
		return
	}
	fmt.Fprintf(w, "  %s\t%s\n", p.Index, strings.Join(p.Columns, "\t"))
	rows := p.Rows
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	for _, row := range rows {
		cells := make([]string, len(row.Values))
		for i, v := range row.Values {
			cells[i] = formatCell(v)
		}
		fmt.Fprintf(w, "  %s\t%s\n", row.Key, strings.Join(cells, "\t"))
	}
}

// formatCell prints counts as integers and proportions with three decimals.
func formatCell(v float64) string {
	if v == float64(int64(v)) {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'f', 3, 64)
}
