package api

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"cpu-scheduling-simulator/config"
	"cpu-scheduling-simulator/internal/core"
	"cpu-scheduling-simulator/internal/experiments"
	"cpu-scheduling-simulator/internal/requests"
	"cpu-scheduling-simulator/internal/responses"
	"cpu-scheduling-simulator/internal/scenarios"
	"cpu-scheduling-simulator/internal/schedulers"
)

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	ShortestRemainingTimeFirst(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	MultilevelFeedbackQueue(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
	ListScenarios(ctx *fiber.Ctx) error
	RunScenario(ctx *fiber.Ctx) error
}
type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config}
}

var errInvalidRequest = errors.New("invalid request format")

var invalidInputErrors = []error{
	errInvalidRequest,
	core.ErrEmptyProcessSet,
	core.ErrInvalidBurst,
	core.ErrNegativeArrival,
	core.ErrDuplicateProcess,
	core.ErrInvalidQuantum,
	core.ErrInvalidLevels,
}

func sendError(ctx *fiber.Ctx, err error) error {
	for _, target := range invalidInputErrors {
		if errors.Is(err, target) {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
	}
	log.Println("simulation failed:", err)
	return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "can not process request"})
}

func parseRequest(ctx *fiber.Ctx) (requests.ScheduleRequests, error) {
	var request requests.ScheduleRequests
	if err := ctx.BodyParser(&request); err != nil {
		return request, errInvalidRequest
	}
	return request, nil
}

func (s *SchedulerHandlerImpl) schedule(ctx *fiber.Ctx, run func(requests.ScheduleRequests) (schedulers.Result[int], error)) error {
	request, err := parseRequest(ctx)
	if err != nil {
		return sendError(ctx, err)
	}
	result, err := run(request)
	if err != nil {
		return sendError(ctx, err)
	}
	return ctx.JSON(responses.NewScheduleResponse(result))
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.schedule(ctx, func(r requests.ScheduleRequests) (schedulers.Result[int], error) {
		return schedulers.ScheduleFirstComeFirstServe(r.Processes())
	})
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, func(r requests.ScheduleRequests) (schedulers.Result[int], error) {
		return schedulers.ScheduleShortestJobFirst(r.Processes())
	})
}

func (s *SchedulerHandlerImpl) ShortestRemainingTimeFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, func(r requests.ScheduleRequests) (schedulers.Result[int], error) {
		return schedulers.ScheduleShortestRemainingTimeFirst(r.Processes())
	})
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	return s.schedule(ctx, func(r requests.ScheduleRequests) (schedulers.Result[int], error) {
		return schedulers.ScheduleRoundRobin(r.Processes(), r.Quantum(s.config.RoundRobinTimeQuantum))
	})
}

func (s *SchedulerHandlerImpl) MultilevelFeedbackQueue(ctx *fiber.Ctx) error {
	return s.schedule(ctx, func(r requests.ScheduleRequests) (schedulers.Result[int], error) {
		return schedulers.ScheduleMultilevelFeedbackQueue(r.Processes(), r.Levels(s.config.MultilevelFeedbackQueueLevelsTimeQuantum))
	})
}

// runAll simulates processes with every algorithm; any failure fails the whole set.
func (s *SchedulerHandlerImpl) runAll(processes []core.Process[int], quantum int, levels []int) ([]responses.ScheduleResponse, error) {
	algorithms := experiments.Algorithms[int](quantum, levels)
	results := make([]responses.ScheduleResponse, 0, len(algorithms))
	for _, a := range algorithms {
		result, err := a.Run(processes)
		if err != nil {
			return nil, err
		}
		results = append(results, responses.NewScheduleResponse(result))
	}
	return results, nil
}

func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	request, err := parseRequest(ctx)
	if err != nil {
		return sendError(ctx, err)
	}
	results, err := s.runAll(request.Processes(),
		request.Quantum(s.config.RoundRobinTimeQuantum),
		request.Levels(s.config.MultilevelFeedbackQueueLevelsTimeQuantum))
	if err != nil {
		return sendError(ctx, err)
	}
	return ctx.JSON(results)
}

func (s *SchedulerHandlerImpl) ListScenarios(ctx *fiber.Ctx) error {
	all := scenarios.All()
	list := make([]responses.ScenarioResponse, len(all))
	for i, sc := range all {
		list[i] = responses.NewScenarioResponse(sc, nil)
	}
	return ctx.JSON(list)
}

func (s *SchedulerHandlerImpl) RunScenario(ctx *fiber.Ctx) error {
	sc, ok := scenarios.Find(ctx.Params("name"))
	if !ok {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "unknown scenario"})
	}
	results, err := s.runAll(sc.Processes, s.config.RoundRobinTimeQuantum, s.config.MultilevelFeedbackQueueLevelsTimeQuantum)
	if err != nil {
		return sendError(ctx, err)
	}
	return ctx.JSON(responses.NewScenarioResponse(sc, results))
}
