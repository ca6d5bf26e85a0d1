package workflows

import (
	"context"
	"errors"
	"time"

	"go.temporal.io/api/serviceerror"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	"github.com/tapestack/tapestack/pkg/clock"
	"github.com/tapestack/tapestack/pkg/logger"
	"github.com/tapestack/tapestack/services/rental/domain/repositories"
)

// OverdueTaskQueue is the Temporal task queue for the overdue-rental sweep.
const OverdueTaskQueue = "rental-overdue-sweep"

// SweepWorkflowID is fixed so at most one cron execution exists per namespace.
const SweepWorkflowID = "rental-overdue-sweep"

// SweepCronSchedule fires the sweep at the top of every hour.
const SweepCronSchedule = "0 * * * *"

// ScheduleSweep starts the hourly cron execution of OverdueSweepWorkflow.
// A cron workflow stays Running between firings, so on worker restart the
// execution from the previous process is still alive; that case is reused,
// not treated as a failure.
func ScheduleSweep(ctx context.Context, c client.Client) error {
	_, err := c.ExecuteWorkflow(ctx, client.StartWorkflowOptions{
		ID:           SweepWorkflowID,
		TaskQueue:    OverdueTaskQueue,
		CronSchedule: SweepCronSchedule,
	}, OverdueSweepWorkflow)
	return ignoreAlreadyStarted(err)
}

func ignoreAlreadyStarted(err error) error {
	var already *serviceerror.WorkflowExecutionAlreadyStarted
	if errors.As(err, &already) {
		return nil
	}
	return err
}

// OverdueRental is the activity result row: one outstanding rental past due.
type OverdueRental struct {
	RentalID string    `json:"rental_id"`
	VHSID    string    `json:"vhs_id"`
	UserID   string    `json:"user_id"`
	DueDate  time.Time `json:"due_date"`
}

// OverdueSweepWorkflow lists all outstanding rentals past their due date and
// returns them. Runs on a cron schedule; the activity owns the database read.
func OverdueSweepWorkflow(ctx workflow.Context) ([]OverdueRental, error) {
	ctx = workflow.WithActivityOptions(ctx, workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval: time.Second,
			MaximumAttempts: 3,
		},
	})

	var overdue []OverdueRental
	if err := workflow.ExecuteActivity(ctx, "ListOverdueRentals").Get(ctx, &overdue); err != nil {
		return nil, err
	}

	workflow.GetLogger(ctx).Info("overdue sweep complete", "count", len(overdue))
	return overdue, nil
}

// OverdueSweeper carries the dependencies for sweep activities.
type OverdueSweeper struct {
	Repo  repositories.RentalRepository
	Clock clock.Clock
	Log   logger.Logger
}

// ListOverdueRentals returns every outstanding rental whose due date has passed.
func (s *OverdueSweeper) ListOverdueRentals(ctx context.Context) ([]OverdueRental, error) {
	now := s.Clock.Now()
	rentals, err := s.Repo.FindOverdue(ctx, now)
	if err != nil {
		return nil, err
	}

	overdue := make([]OverdueRental, 0, len(rentals))
	for _, r := range rentals {
		overdue = append(overdue, OverdueRental{
			RentalID: r.ID.String(),
			VHSID:    r.VHSID.String(),
			UserID:   r.UserID.String(),
			DueDate:  r.DueDate,
		})
		s.Log.WarnContext(ctx, "rental overdue",
			"rental_id", r.ID, "user_id", r.UserID, "due_date", r.DueDate)
	}
	return overdue, nil
}
