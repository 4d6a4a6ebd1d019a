package report

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/responses"
)

var ErrInvalidRecord = errors.New("invalid process record")

// ExportHeader names the columns written by WriteCSV.
var ExportHeader = []string{
	"id", "arrival_time", "burst_time", "priority",
	"waiting_time", "turnaround_time", "completion_time", "response_time",
}

// LoadProcesses reads id,arrival_time,burst_time[,priority] records. A first
// row whose id column is not a number is treated as a header.
func LoadProcesses(r io.Reader) ([]core.Process, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.Comment = '#'

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV: %w", err)
	}
	if len(rows) > 0 && len(rows[0]) > 0 {
		if _, err := strconv.Atoi(strings.TrimSpace(rows[0][0])); err != nil {
			rows = rows[1:]
		}
	}

	processes := make([]core.Process, 0, len(rows))
	for i, row := range rows {
		if len(row) < 3 || len(row) > 4 {
			return nil, fmt.Errorf("%w: row %d: want 3 or 4 fields, got %d", ErrInvalidRecord, i+1, len(row))
		}
		fields := make([]int, 4)
		for j := range row {
			v, err := strconv.Atoi(strings.TrimSpace(row[j]))
			if err != nil {
				return nil, fmt.Errorf("%w: row %d: %s: %v", ErrInvalidRecord, i+1, ExportHeader[j], err)
			}
			fields[j] = v
		}
		processes = append(processes, core.NewProcess(fields[0], fields[1], fields[2], fields[3]))
	}
	return processes, nil
}

// WriteCSV writes one record per process with the ExportHeader columns.
func WriteCSV(w io.Writer, details []responses.ProcessResponse) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(ExportHeader); err != nil {
		return err
	}
	for _, d := range details {
		record := []string{
			strconv.Itoa(d.ProcessId),
			strconv.Itoa(d.ArrivalTime),
			strconv.Itoa(d.BurstTime),
			strconv.Itoa(d.Priority),
			strconv.Itoa(d.WaitingTime),
			strconv.Itoa(d.TurnAroundTime),
			strconv.Itoa(d.CompletionTime),
			strconv.Itoa(d.ResponseTime),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
