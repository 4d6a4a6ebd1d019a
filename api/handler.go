package api

import (
	"bytes"
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"cpu-scheduler/config"
	"cpu-scheduler/internal/logger"
	"cpu-scheduler/internal/report"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
	"cpu-scheduler/internal/schedulers"
)

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	ShortestRemainingTimeFirst(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	Priority(ctx *fiber.Ctx) error
	PriorityPreemptive(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
	Export(ctx *fiber.Ctx) error
	ListAlgorithms(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config}
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.FirstComeFirstServe)
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.ShortestJobFirst)
}

func (s *SchedulerHandlerImpl) ShortestRemainingTimeFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.ShortestRemainingTimeFirst)
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.RoundRobin)
}

func (s *SchedulerHandlerImpl) Priority(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.Priority)
}

func (s *SchedulerHandlerImpl) PriorityPreemptive(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.PriorityPreemptive)
}

func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	request, err := parseRequest(ctx)
	if err != nil {
		return invalidFormat(ctx)
	}

	algorithms := request.Algorithms
	if len(algorithms) == 0 {
		algorithms = s.config.Algorithms
	}
	results, err := schedulers.RunAll(algorithms, request.Processes(), s.timeQuantum(request))
	if err != nil {
		return sendError(ctx, err)
	}

	response := make([]responses.ScheduleResponse, 0, len(results))
	for _, result := range results {
		response = append(response, schedulers.GenerateResponse(result))
	}
	return ctx.JSON(response)
}

// Export runs the algorithm named in the path and returns the per-process metrics as CSV.
func (s *SchedulerHandlerImpl) Export(ctx *fiber.Ctx) error {
	request, err := parseRequest(ctx)
	if err != nil {
		return invalidFormat(ctx)
	}

	algorithm := ctx.Params("algorithm")
	result, err := schedulers.Run(algorithm, request.Processes(), s.timeQuantum(request))
	if err != nil {
		return sendError(ctx, err)
	}

	var buf bytes.Buffer
	if err := report.WriteCSV(&buf, schedulers.GenerateResponse(result).Details); err != nil {
		return err
	}
	ctx.Attachment(algorithm + ".csv")
	return ctx.Send(buf.Bytes())
}

func (s *SchedulerHandlerImpl) ListAlgorithms(ctx *fiber.Ctx) error {
	list := make([]fiber.Map, 0, len(schedulers.Algorithms))
	for _, algorithm := range schedulers.Algorithms {
		list = append(list, fiber.Map{"name": algorithm, "title": schedulers.Title(algorithm)})
	}
	return ctx.JSON(list)
}

func (s *SchedulerHandlerImpl) schedule(ctx *fiber.Ctx, algorithm string) error {
	request, err := parseRequest(ctx)
	if err != nil {
		return invalidFormat(ctx)
	}

	result, err := schedulers.Run(algorithm, request.Processes(), s.timeQuantum(request))
	if err != nil {
		return sendError(ctx, err)
	}
	return ctx.JSON(schedulers.GenerateResponse(result))
}

func (s *SchedulerHandlerImpl) timeQuantum(request *requests.ScheduleRequests) int {
	if request.TimeQuantum != 0 {
		return request.TimeQuantum
	}
	return s.config.RoundRobinTimeQuantum
}

func parseRequest(ctx *fiber.Ctx) (*requests.ScheduleRequests, error) {
	request := new(requests.ScheduleRequests)
	if err := ctx.BodyParser(request); err != nil {
		slog.Debug("invalid request body", logger.ErrAttr(err))
		return nil, err
	}
	return request, nil
}

func invalidFormat(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusBadRequest).JSON(responses.ErrorResponse{
		Error: "invalid request format",
	})
}

func sendError(ctx *fiber.Ctx, err error) error {
	var verr *schedulers.ValidationError
	switch {
	case errors.As(err, &verr):
		return ctx.Status(fiber.StatusBadRequest).JSON(responses.ErrorResponse{
			Error: err.Error(),
			Field: verr.Field,
		})
	case errors.Is(err, schedulers.ErrUnknownAlgorithm):
		return ctx.Status(fiber.StatusNotFound).JSON(responses.ErrorResponse{Error: err.Error()})
	default:
		slog.Error("can not process request", logger.ErrAttr(err))
		return ctx.Status(fiber.StatusInternalServerError).JSON(responses.ErrorResponse{
			Error: "can not proccess request",
		})
	}
}
