// Package report renders simulation results as text for terminals and
// markdown documents.
package report

import (
	"cmp"
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"cpu-scheduling-simulator/internal/core"
	"cpu-scheduling-simulator/internal/experiments"
	"cpu-scheduling-simulator/internal/schedulers"
)

// Print writes the title, Gantt strip and schedule table of one result.
func Print[ID cmp.Ordered](w io.Writer, result schedulers.Result[ID]) {
	outputTitle(w, result.Algorithm)
	outputGantt(w, result.Timeline)
	outputSchedule(w, result)
}

func outputTitle(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
	_, _ = fmt.Fprintln(w, strings.Repeat(" ", len(title)/2), title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
}

func segmentLabel[ID cmp.Ordered](s core.Segment[ID]) string {
	if s.Idle {
		return "IDLE"
	}
	return fmt.Sprint(s.PID)
}

func outputGantt[ID cmp.Ordered](w io.Writer, timeline core.Timeline[ID]) {
	_, _ = fmt.Fprintln(w, "Gantt schedule")
	_, _ = fmt.Fprint(w, "|")
	for _, s := range timeline {
		label := segmentLabel(s)
		padding := strings.Repeat(" ", max(8-len(label), 0)/2)
		_, _ = fmt.Fprint(w, padding, label, padding, "|")
	}
	_, _ = fmt.Fprintln(w)
	for i, s := range timeline {
		_, _ = fmt.Fprint(w, s.Start, "\t")
		if i == len(timeline)-1 {
			_, _ = fmt.Fprint(w, s.End)
		}
	}
	_, _ = fmt.Fprintf(w, "\n\n")
}

func outputSchedule[ID cmp.Ordered](w io.Writer, result schedulers.Result[ID]) {
	_, _ = fmt.Fprintln(w, "Schedule table")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Priority", "Burst", "Arrival", "Start", "Completion", "Wait", "Turnaround", "Response"})
	for _, p := range result.Processes {
		table.Append([]string{
			fmt.Sprint(p.ID),
			fmt.Sprint(p.Priority),
			fmt.Sprint(p.Burst),
			fmt.Sprint(p.Arrival),
			fmt.Sprint(p.Start),
			fmt.Sprint(p.Completion),
			fmt.Sprint(p.Waiting),
			fmt.Sprint(p.Turnaround),
			fmt.Sprint(p.Response),
		})
	}
	table.SetFooter([]string{"", "", "", "",
		fmt.Sprintf("Utilization\n%.2f", result.CpuUtilization),
		fmt.Sprintf("Throughput\n%.2f/t", result.CpuThroughput),
		fmt.Sprintf("Average\n%.2f", result.AvgWaiting),
		fmt.Sprintf("Average\n%.2f", result.AvgTurnaround),
		fmt.Sprintf("Average\n%.2f", result.AvgResponse)})
	table.Render()
}

// WriteSummary writes experiment rows as a markdown table.
func WriteSummary(w io.Writer, rows []experiments.Row) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Scenario", "Algorithm", "Avg waiting", "Avg turnaround", "Avg response"})
	table.SetAutoFormatHeaders(false)
	table.SetBorders(tablewriter.Border{Left: true, Top: false, Right: true, Bottom: false})
	table.SetCenterSeparator("|")
	for _, r := range rows {
		table.Append([]string{
			r.Scenario,
			r.Algorithm,
			fmt.Sprintf("%.2f", r.AvgWaiting),
			fmt.Sprintf("%.2f", r.AvgTurnaround),
			fmt.Sprintf("%.2f", r.AvgResponse),
		})
	}
	table.Render()
}
