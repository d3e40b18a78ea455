package jobs

import (
	"context"
	"time"

	"sales/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

type outboxPurger interface {
	Handle(ctx context.Context, cmd commands.PurgeOutboxMessagesCommand) (int64, error)
}

// OutboxPurgeJob removes published outbox messages older than the retention
// period, once an hour.
type OutboxPurgeJob struct {
	handler   outboxPurger
	retention time.Duration
	cron      *cron.Cron
	logger    *zap.SugaredLogger
}

func NewOutboxPurgeJob(handler outboxPurger, retention time.Duration, logger *zap.SugaredLogger) *OutboxPurgeJob {
	return &OutboxPurgeJob{
		handler:   handler,
		retention: retention,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "outbox_purge_job"),
	}
}

func (j *OutboxPurgeJob) Start() error {
	cmd, err := commands.NewPurgeOutboxMessagesCommand(j.retention)
	if err != nil {
		return err
	}

	_, err = j.cron.AddFunc("0 0 * * * *", func() {
		j.Run(context.Background(), cmd)
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Infow("Outbox purge job started (running hourly)", "retention", j.retention.String())
	return nil
}

func (j *OutboxPurgeJob) Run(ctx context.Context, cmd commands.PurgeOutboxMessagesCommand) {
	purged, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.Errorw("Outbox purge failed", "error", err)
		return
	}
	j.logger.Infow("Published outbox messages purged", "purged", purged)
}

func (j *OutboxPurgeJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Outbox purge job stopped")
}
