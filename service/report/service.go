package report

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/viant/ossim/internal/idgen"
	"github.com/viant/ossim/model"
)

// Service renders reports
type Service struct {
	withTimes bool
}

// Option represents a renderer option
type Option func(s *Service)

// WithTimes adds the slice start times line under the Gantt sequence
func WithTimes(enabled bool) Option {
	return func(s *Service) {
		s.withTimes = enabled
	}
}

// Render writes every section of report to w. The first write failure is
// returned with the section name.
func (s *Service) Render(w io.Writer, report *model.Report) error {
	if report == nil {
		return fmt.Errorf("report was nil")
	}
	title := "Simulation " + idgen.Short(report.RunID)
	if report.Name != "" {
		title += " (" + report.Name + ")"
	}
	if _, err := fmt.Fprintf(w, "%v\n\n", title); err != nil {
		return fmt.Errorf("failed to render title: %w", err)
	}
	sections := []struct {
		name   string
		render func(w io.Writer, report *model.Report) error
	}{
		{"gantt chart", s.Gantt},
		{"performance", s.Performance},
		{"summary", s.Summary},
		{"resolutions", s.Resolutions},
		{"graph", s.Graph},
	}
	for _, section := range sections {
		if err := section.render(w, report); err != nil {
			return fmt.Errorf("failed to render %v: %w", section.name, err)
		}
	}
	if report.Error != "" {
		if _, err := fmt.Fprintf(w, "\nError: %v\n", report.Error); err != nil {
			return fmt.Errorf("failed to render error: %w", err)
		}
	}
	return nil
}

// flush writes a fully built section in one call
func flush(w io.Writer, buf *bytes.Buffer) error {
	_, err := w.Write(buf.Bytes())
	return err
}

// Gantt writes the dispatch sequence as | P1(2) | P0(4) |
func (s *Service) Gantt(w io.Writer, report *model.Report) error {
	buf := &bytes.Buffer{}
	buf.WriteString("Gantt Chart:\n")
	buf.WriteString(GanttLine(report.Timeline) + "\n")
	if s.withTimes && len(report.Timeline) > 0 {
		var times []string
		for _, event := range report.Timeline {
			times = append(times, strconv.Itoa(event.Start))
		}
		times = append(times, strconv.Itoa(report.Timeline[len(report.Timeline)-1].End()))
		buf.WriteString(strings.Join(times, "\t") + "\n")
	}
	buf.WriteString("\n")
	return flush(w, buf)
}

// GanttLine formats timeline events
func GanttLine(timeline []*model.DispatchEvent) string {
	if len(timeline) == 0 {
		return "|"
	}
	var b strings.Builder
	for _, event := range timeline {
		fmt.Fprintf(&b, "| P%d(%d) ", event.PID, event.Duration)
	}
	b.WriteString("|")
	return b.String()
}

// Performance writes the per-process table with an averages footer
func (s *Service) Performance(w io.Writer, report *model.Report) error {
	buf := &bytes.Buffer{}
	buf.WriteString("Process Summary:\n")
	table := tablewriter.NewWriter(buf)
	table.SetHeader([]string{"PID", "Arrival", "Burst", "Waiting", "Turnaround", "Finish", "Status"})
	rows := make([][]string, 0, len(report.Rows))
	for _, row := range report.Rows {
		rows = append(rows, []string{
			"P" + strconv.Itoa(row.PID),
			strconv.Itoa(row.Arrival),
			strconv.Itoa(row.Burst),
			strconv.Itoa(row.Waiting),
			strconv.Itoa(row.Turnaround),
			strconv.Itoa(row.FinishTime),
			status(row),
		})
	}
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "",
		fmt.Sprintf("Average\n%.2f", report.AverageWaiting()),
		fmt.Sprintf("Average\n%.2f", report.AverageTurnaround()),
		"", ""})
	table.Render()
	buf.WriteString("\n")
	return flush(w, buf)
}

func status(row *model.PerformanceRow) string {
	switch {
	case row.Killed:
		return "killed"
	case row.Finished:
		return "done"
	default:
		return "unfinished"
	}
}

// Summary writes run counters
func (s *Service) Summary(w io.Writer, report *model.Report) error {
	_, err := fmt.Fprintf(w, "Context Switches: %d\nDeadlocks Detected and Resolved: %d\nClock: %d (idle %d)\n\n",
		report.ContextSwitches, report.DeadlocksResolved, report.Clock, report.IdleTicks)
	return err
}

// Resolutions writes the deadlock resolution log; nothing when empty
func (s *Service) Resolutions(w io.Writer, report *model.Report) error {
	if len(report.Resolutions) == 0 {
		return nil
	}
	buf := &bytes.Buffer{}
	buf.WriteString("Deadlock Resolutions:\n")
	table := tablewriter.NewWriter(buf)
	table.SetHeader([]string{"Clock", "Victim", "Cycle", "Released"})
	table.SetAutoWrapText(false)
	for _, resolution := range report.Resolutions {
		cycle := make([]string, 0, len(resolution.Cycle))
		for _, edge := range resolution.Cycle {
			cycle = append(cycle, edge.String())
		}
		released := make([]string, 0, len(resolution.Released))
		for _, rid := range resolution.Released {
			released = append(released, "R"+strconv.Itoa(rid))
		}
		table.Append([]string{
			strconv.Itoa(resolution.Clock),
			"P" + strconv.Itoa(resolution.Victim),
			strings.Join(cycle, ", "),
			strings.Join(released, ", "),
		})
	}
	table.Render()
	buf.WriteString("\n")
	return flush(w, buf)
}

// Graph writes the resource-allocation graph edges
func (s *Service) Graph(w io.Writer, report *model.Report) error {
	buf := &bytes.Buffer{}
	buf.WriteString("Resource Allocation Graph (RAG):\n")
	if len(report.Edges) == 0 {
		buf.WriteString("(no edges)\n")
	}
	for _, edge := range report.Edges {
		buf.WriteString(edge.String() + "\n")
	}
	return flush(w, buf)
}

// New creates a renderer
func New(opts ...Option) *Service {
	ret := &Service{}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}
