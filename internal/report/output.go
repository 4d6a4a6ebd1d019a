package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"cpu-scheduler/internal/responses"
)

// Write prints a title, a Gantt chart and the schedule table for one run.
func Write(w io.Writer, title string, response responses.ScheduleResponse) {
	if response.TimeQuantum > 0 {
		title = fmt.Sprintf("%s (quantum %d)", title, response.TimeQuantum)
	}
	outputTitle(w, title)
	outputGantt(w, response.Timeline)
	outputSchedule(w, response)
}

func outputTitle(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
	_, _ = fmt.Fprintln(w, strings.Repeat(" ", len(title)/2), title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
}

// outputGantt draws one cell per slice. An idle gap shows as an extra time label.
func outputGantt(w io.Writer, gantt []responses.SliceResponse) {
	_, _ = fmt.Fprintln(w, "Gantt schedule")
	if len(gantt) == 0 {
		_, _ = fmt.Fprintf(w, "(empty)\n\n")
		return
	}

	_, _ = fmt.Fprint(w, "|")
	for i := range gantt {
		if i > 0 && gantt[i-1].End != gantt[i].Start {
			_, _ = fmt.Fprint(w, "  idle  |")
		}
		pid := fmt.Sprint("P", gantt[i].ProcessId)
		padding := strings.Repeat(" ", max(0, (8-len(pid))/2))
		_, _ = fmt.Fprint(w, padding, pid, padding, "|")
	}
	_, _ = fmt.Fprintln(w)
	for i := range gantt {
		if i > 0 && gantt[i-1].End != gantt[i].Start {
			_, _ = fmt.Fprint(w, fmt.Sprint(gantt[i-1].End), "\t")
		}
		_, _ = fmt.Fprint(w, fmt.Sprint(gantt[i].Start), "\t")
		if len(gantt)-1 == i {
			_, _ = fmt.Fprint(w, fmt.Sprint(gantt[i].End))
		}
	}
	_, _ = fmt.Fprintf(w, "\n\n")
}

func outputSchedule(w io.Writer, response responses.ScheduleResponse) {
	rows := make([][]string, len(response.Details))
	for i, d := range response.Details {
		rows[i] = []string{
			fmt.Sprint(d.ProcessId),
			fmt.Sprint(d.Priority),
			fmt.Sprint(d.BurstTime),
			fmt.Sprint(d.ArrivalTime),
			fmt.Sprint(d.WaitingTime),
			fmt.Sprint(d.TurnAroundTime),
			fmt.Sprint(d.CompletionTime),
			fmt.Sprint(d.ResponseTime),
		}
	}

	_, _ = fmt.Fprintln(w, "Schedule table")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Priority", "Burst", "Arrival", "Wait", "Turnaround", "Exit", "Response"})
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "", "",
		fmt.Sprintf("Average\n%.2f", response.AverageWaitingTime),
		fmt.Sprintf("Average\n%.2f", response.AverageTurnAroundTime),
		fmt.Sprintf("Throughput\n%.2f/t", response.CpuThroughput),
		fmt.Sprintf("Average\n%.2f", response.AverageResponseTime)})
	table.Render()
	_, _ = fmt.Fprintf(w, "Idle %d/%d, utilization %.0f%%\n\n", response.IdleTime, response.TotalTime, response.CpuUtilization*100)
}
