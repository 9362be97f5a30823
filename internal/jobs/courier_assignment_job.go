package jobs

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

// DefaultAssignmentSchedule runs the assignment every ten seconds.
const DefaultAssignmentSchedule = "*/10 * * * * *"

// CourierAssigner runs one dispatch attempt for the oldest waiting order.
type CourierAssigner interface {
	Handle(ctx context.Context, command commands.AssignCourierCommand) (commands.DispatchOutcome, error)
}

// CourierAssignmentJob retries dispatch for orders that were placed while no
// courier was available. Each tick offers the oldest Pending order without a
// courier to the dispatcher.
type CourierAssignmentJob struct {
	handler  CourierAssigner
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
	now      func() time.Time
}

// NewCourierAssignmentJob creates the job. An empty schedule falls back to
// DefaultAssignmentSchedule; schedules use the six-field cron syntax with seconds.
func NewCourierAssignmentJob(handler CourierAssigner, schedule string, logger *slog.Logger) *CourierAssignmentJob {
	if schedule == "" {
		schedule = DefaultAssignmentSchedule
	}
	return &CourierAssignmentJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:   logger.With("component", "courier_assignment_job"),
		now:      time.Now,
	}
}

// Start registers the job with its schedule and starts the scheduler.
func (j *CourierAssignmentJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Courier assignment job started", "schedule", j.schedule)
	return nil
}

// Stop stops the scheduler and waits for a running assignment to finish.
func (j *CourierAssignmentJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Courier assignment job stopped")
}

func (j *CourierAssignmentJob) run(ctx context.Context) {
	outcome, err := j.handler.Handle(ctx, commands.NewAssignCourierCommand(j.now()))
	switch {
	case err == nil:
		j.logger.InfoContext(ctx, "Courier assigned to waiting order",
			"courier_id", outcome.CourierID.String(), "courier", outcome.CourierName, "area", outcome.AreaName)
	// Nothing waiting, or still nobody free: both are expected between ticks.
	case errors.Is(err, commands.ErrNoOrderFound), errors.Is(err, errs.ErrNoCourierAvailable):
		j.logger.DebugContext(ctx, "No assignment this tick", "reason", err.Error())
	default:
		j.logger.ErrorContext(ctx, "Courier assignment job failed", "error", err)
	}
}
