package jobs

import (
	"context"

	"sales/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

type outboxRelayer interface {
	Handle(ctx context.Context, cmd commands.RelayOutboxMessagesCommand) (int, error)
}

// OutboxRelayJob publishes pending outbox messages every second. A run that
// is still going when the next tick fires makes that tick a no-op, so
// messages are never relayed by two runs at once.
type OutboxRelayJob struct {
	handler   outboxRelayer
	batchSize int
	cron      *cron.Cron
	logger    *zap.SugaredLogger
}

func NewOutboxRelayJob(handler outboxRelayer, batchSize int, logger *zap.SugaredLogger) *OutboxRelayJob {
	return &OutboxRelayJob{
		handler:   handler,
		batchSize: batchSize,
		cron:      cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:    logger.With("component", "outbox_relay_job"),
	}
}

// Start schedules the relay to run every second.
func (j *OutboxRelayJob) Start() error {
	cmd, err := commands.NewRelayOutboxMessagesCommand(j.batchSize)
	if err != nil {
		return err
	}

	_, err = j.cron.AddFunc("* * * * * *", func() {
		j.Run(context.Background(), cmd)
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Outbox relay job started (running every second)")
	return nil
}

// Run performs one relay pass.
func (j *OutboxRelayJob) Run(ctx context.Context, cmd commands.RelayOutboxMessagesCommand) {
	published, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.Errorw("Outbox relay failed", "published", published, "error", err)
		return
	}
	if published > 0 {
		j.logger.Debugw("Outbox messages relayed", "published", published)
	}
}

// Stop stops scheduling and waits for a running pass to finish.
func (j *OutboxRelayJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Outbox relay job stopped")
}
