package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// NotificationDrainer is the part of the queued notification dispatcher the job drives.
type NotificationDrainer interface {
	Drain(ctx context.Context) int
	Len() int
}

// NotificationDispatchJob delivers queued payment notifications.
// Runs every second and drains whatever was queued since the previous run.
type NotificationDispatchJob struct {
	queue  NotificationDrainer
	cron   *cron.Cron
	logger *slog.Logger
}

// NewNotificationDispatchJob creates a new job for draining the notification queue.
func NewNotificationDispatchJob(queue NotificationDrainer, logger *slog.Logger) *NotificationDispatchJob {
	return &NotificationDispatchJob{
		queue:  queue,
		cron:   cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger: logger.With("component", "notification_dispatch_job"),
	}
}

// Start begins the notification dispatch job to run every second.
func (j *NotificationDispatchJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		j.run(context.Background())
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Notification dispatch job started (running every second)")
	return nil
}

// Stop waits for a running drain to finish, then delivers what is still queued.
func (j *NotificationDispatchJob) Stop() {
	<-j.cron.Stop().Done()

	ctx := context.Background()
	if n := j.run(ctx); n > 0 {
		j.logger.InfoContext(ctx, "Delivered queued notifications on shutdown", "count", n)
	}
	j.logger.InfoContext(ctx, "Notification dispatch job stopped")
}

func (j *NotificationDispatchJob) run(ctx context.Context) int {
	if j.queue.Len() == 0 {
		return 0
	}

	n := j.queue.Drain(ctx)
	j.logger.DebugContext(ctx, "Drained notification queue", "count", n, "remaining", j.queue.Len())
	return n
}
