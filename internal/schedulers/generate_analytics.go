package schedulers

import (
	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/palette"
	"cpu-scheduler/internal/responses"
	"cpu-scheduler/internal/util"
)

// GenerateResponse derives the aggregate metrics of a run and converts it to its wire form.
func GenerateResponse(result Result) responses.ScheduleResponse {
	proccessDetails := make([]responses.ProcessResponse, 0, len(result.Processes))
	ids := make([]int, 0, len(result.Processes))
	for _, p := range result.Processes {
		proccessDetails = append(proccessDetails, generateProcessDetails(p))
		ids = append(ids, p.ID)
	}

	colors := palette.Colors(ids)
	slices := make([]responses.SliceResponse, 0, len(result.Timeline))
	for _, s := range result.Timeline {
		slices = append(slices, responses.SliceResponse{
			ProcessId: s.ProcessID,
			Start:     s.Start,
			End:       s.End,
			Color:     colors[s.ProcessID],
		})
	}

	averageWaitingTime, averageResponseTime, averageTurnAroundTime := util.CalculateAverage(proccessDetails)

	totalTime := result.Timeline.Makespan()
	var utilization, throughput float64
	if totalTime > 0 {
		utilization = float64(result.Timeline.BusyTime()) / float64(totalTime)
		throughput = float64(len(result.Processes)) / float64(totalTime)
	}

	return responses.ScheduleResponse{
		Algorithm:             result.Algorithm,
		TimeQuantum:           result.TimeQuantum,
		TotalTime:             totalTime,
		IdleTime:              result.Timeline.IdleTime(),
		CpuUtilization:        utilization,
		CpuThroughput:         throughput,
		AverageWaitingTime:    averageWaitingTime,
		AverageResponseTime:   averageResponseTime,
		AverageTurnAroundTime: averageTurnAroundTime,
		Timeline:              slices,
		Details:               proccessDetails,
	}
}

func generateProcessDetails(p core.Process) responses.ProcessResponse {
	return responses.ProcessResponse{
		ProcessId:      p.ID,
		ArrivalTime:    p.ArrivalTime,
		BurstTime:      p.BurstTime,
		Priority:       p.Priority,
		WaitingTime:    p.WaitingTime,
		TurnAroundTime: p.TurnaroundTime,
		CompletionTime: p.CompletionTime,
		ResponseTime:   p.ResponseTime,
	}
}
