package schedulers

import (
	"errors"
	"fmt"

	"cpu-scheduler/internal/core"
)

var (
	ErrInvalidBurst     = errors.New("burst time must be positive")
	ErrInvalidArrival   = errors.New("arrival time must not be negative")
	ErrDuplicateID      = errors.New("duplicate process id")
	ErrInvalidQuantum   = errors.New("time quantum must be positive")
	ErrUnknownAlgorithm = errors.New("unknown algorithm")
)

// ValidationError names the field (and process, when there is one) that was rejected.
type ValidationError struct {
	Field     string
	ProcessID int
	Err       error
}

func (e *ValidationError) Error() string {
	if e.Field == "time_quantum" {
		return fmt.Sprintf("%s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("process %d: %s: %v", e.ProcessID, e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Validate checks the input invariants every algorithm relies on.
func Validate(processes []core.Process) error {
	seen := make(map[int]struct{}, len(processes))
	for _, p := range processes {
		if _, ok := seen[p.ID]; ok {
			return &ValidationError{Field: "id", ProcessID: p.ID, Err: ErrDuplicateID}
		}
		seen[p.ID] = struct{}{}

		if p.ArrivalTime < 0 {
			return &ValidationError{Field: "arrival_time", ProcessID: p.ID, Err: ErrInvalidArrival}
		}
		if p.BurstTime <= 0 {
			return &ValidationError{Field: "burst_time", ProcessID: p.ID, Err: ErrInvalidBurst}
		}
	}
	return nil
}

func validateQuantum(quantum int) error {
	if quantum <= 0 {
		return &ValidationError{Field: "time_quantum", Err: ErrInvalidQuantum}
	}
	return nil
}
