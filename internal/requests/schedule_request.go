package requests

import "cpu-scheduler/internal/core"

type Job struct {
	ProcessId   int `json:"process_id"`
	ArrivalTime int `json:"arrival_time"`
	BurstTime   int `json:"burst_time"`
	Priority    int `json:"priority"`
}

type ScheduleRequests struct {
	Jobs        []Job `json:"jobs"`
	TimeQuantum int   `json:"time_quantum,omitempty"`
	// Algorithms is only read by the "all" endpoint.
	Algorithms []string `json:"algorithms,omitempty"`
}

// Processes converts the jobs into fresh process descriptors, keeping their order.
func (r *ScheduleRequests) Processes() []core.Process {
	processes := make([]core.Process, len(r.Jobs))
	for i, job := range r.Jobs {
		processes[i] = core.NewProcess(job.ProcessId, job.ArrivalTime, job.BurstTime, job.Priority)
	}
	return processes
}

// FromProcesses builds a request carrying the inputs of processes.
func FromProcesses(processes []core.Process, timeQuantum int) ScheduleRequests {
	jobs := make([]Job, len(processes))
	for i, p := range processes {
		jobs[i] = Job{
			ProcessId:   p.ID,
			ArrivalTime: p.ArrivalTime,
			BurstTime:   p.BurstTime,
			Priority:    p.Priority,
		}
	}
	return ScheduleRequests{Jobs: jobs, TimeQuantum: timeQuantum}
}
