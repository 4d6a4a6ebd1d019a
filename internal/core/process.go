package core

// NotStarted marks StartTime and ResponseTime of a process that never held the cpu.
const NotStarted = -1

// Process is a single cpu burst together with the metrics a run computes for it.
// Lower Priority values mean higher priority.
type Process struct {
	ID          int
	ArrivalTime int
	BurstTime   int
	Priority    int

	RemainingTime  int
	StartTime      int
	ResponseTime   int
	CompletionTime int
	TurnaroundTime int
	WaitingTime    int

	// position in the caller's list, used as the last tie-break
	order int
}

func NewProcess(id, arrivalTime, burstTime, priority int) Process {
	return Process{
		ID:            id,
		ArrivalTime:   arrivalTime,
		BurstTime:     burstTime,
		Priority:      priority,
		RemainingTime: burstTime,
		StartTime:     NotStarted,
		ResponseTime:  NotStarted,
	}
}

// Order returns the position the process had in the list given to Clone.
func (p *Process) Order() int {
	return p.order
}

// Finished reports whether the process has no cpu time left.
func (p *Process) Finished() bool {
	return p.RemainingTime == 0
}

// Dispatch records the first time the process receives the cpu. Later calls are no-ops.
func (p *Process) Dispatch(now int) {
	if p.StartTime != NotStarted {
		return
	}
	p.StartTime = now
	p.ResponseTime = now - p.ArrivalTime
}

// Execute runs the process for units time units starting at now and finalizes
// its metrics when the burst is exhausted.
func (p *Process) Execute(now, units int) {
	if units <= 0 || units > p.RemainingTime {
		panic("core: execute out of range")
	}
	p.RemainingTime -= units
	if p.RemainingTime == 0 {
		p.complete(now + units)
	}
}

func (p *Process) complete(at int) {
	p.CompletionTime = at
	p.TurnaroundTime = p.CompletionTime - p.ArrivalTime
	p.WaitingTime = p.TurnaroundTime - p.BurstTime
	if p.WaitingTime < 0 {
		panic("core: negative waiting time")
	}
}

// Clone returns fresh descriptors for a run: metrics reset, input order recorded.
func Clone(processes []Process) []*Process {
	clones := make([]*Process, len(processes))
	for i := range processes {
		p := NewProcess(processes[i].ID, processes[i].ArrivalTime, processes[i].BurstTime, processes[i].Priority)
		p.order = i
		clones[i] = &p
	}
	return clones
}

// Collect copies run state back into values ordered like the caller's input.
func Collect(processes []*Process) []Process {
	out := make([]Process, len(processes))
	for _, p := range processes {
		out[p.order] = *p
	}
	return out
}
