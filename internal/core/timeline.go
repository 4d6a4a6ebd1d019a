package core

// Slice is one interval [Start, End) during which ProcessID held the cpu.
type Slice struct {
	ProcessID int
	Start     int
	End       int
}

func (s Slice) Duration() int {
	return s.End - s.Start
}

// Timeline is the ordered cpu occupancy of a run. Idle gaps are not stored.
type Timeline []Slice

// Append adds [start, end) for pid. A slice that continues the last one for the
// same process is merged into it.
func (t *Timeline) Append(pid, start, end int) {
	if start >= end {
		panic("core: empty or inverted slice")
	}
	n := len(*t)
	if n > 0 {
		last := &(*t)[n-1]
		if start < last.End {
			panic("core: overlapping slice")
		}
		if last.ProcessID == pid && last.End == start {
			last.End = end
			return
		}
	}
	*t = append(*t, Slice{ProcessID: pid, Start: start, End: end})
}

// BusyTime is the sum of all slice durations.
func (t Timeline) BusyTime() int {
	busy := 0
	for _, s := range t {
		busy += s.Duration()
	}
	return busy
}

// Makespan is the end of the last slice, or 0 for an empty timeline.
func (t Timeline) Makespan() int {
	if len(t) == 0 {
		return 0
	}
	return t[len(t)-1].End
}

// IdleTime is the time the cpu spent without an eligible process up to the makespan.
func (t Timeline) IdleTime() int {
	return t.Makespan() - t.BusyTime()
}

// SlicesOf returns the slices that belong to pid.
func (t Timeline) SlicesOf(pid int) []Slice {
	var out []Slice
	for _, s := range t {
		if s.ProcessID == pid {
			out = append(out, s)
		}
	}
	return out
}
