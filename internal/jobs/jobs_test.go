package jobs_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"sales/internal/core/application/usecases/commands"
	"sales/internal/jobs"
	"sales/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type MockRelayHandler struct{ mock.Mock }

func (m *MockRelayHandler) Handle(ctx context.Context, cmd commands.RelayOutboxMessagesCommand) (int, error) {
	args := m.Called(ctx, cmd)
	return args.Int(0), args.Error(1)
}

type MockPurgeHandler struct{ mock.Mock }

func (m *MockPurgeHandler) Handle(ctx context.Context, cmd commands.PurgeOutboxMessagesCommand) (int64, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(int64), args.Error(1)
}

func observedLogger() (*zap.SugaredLogger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return zap.New(core).Sugar(), logs
}

func TestOutboxRelayJob_Run(t *testing.T) {
	cmd, err := commands.NewRelayOutboxMessagesCommand(10)
	require.NoError(t, err)

	t.Run("logs failures with the component", func(t *testing.T) {
		handler := new(MockRelayHandler)
		handler.On("Handle", mock.Anything, cmd).Return(2, errors.New("broker down")).Once()
		log, logs := observedLogger()

		jobs.NewOutboxRelayJob(handler, 10, log).Run(t.Context(), cmd)

		entries := logs.FilterMessage("Outbox relay failed").All()
		require.Len(t, entries, 1)
		assert.Equal(t, "outbox_relay_job", entries[0].ContextMap()["component"])
		assert.EqualValues(t, 2, entries[0].ContextMap()["published"])
	})

	t.Run("stays quiet when nothing was pending", func(t *testing.T) {
		handler := new(MockRelayHandler)
		handler.On("Handle", mock.Anything, cmd).Return(0, nil).Once()
		log, logs := observedLogger()

		jobs.NewOutboxRelayJob(handler, 10, log).Run(t.Context(), cmd)

		assert.Zero(t, logs.Len())
	})
}

func TestOutboxRelayJob_StartRunsEverySecond(t *testing.T) {
	handler := new(MockRelayHandler)
	ran := make(chan struct{}, 10)
	handler.On("Handle", mock.Anything, mock.Anything).Return(1, nil).
		Run(func(mock.Arguments) { ran <- struct{}{} })

	job := jobs.NewOutboxRelayJob(handler, 25, logger.Nop())
	require.NoError(t, job.Start())
	defer job.Stop()

	select {
	case <-ran:
	case <-time.After(3 * time.Second):
		t.Fatal("relay did not run")
	}
}

func TestOutboxPurgeJob_Run(t *testing.T) {
	cmd, err := commands.NewPurgeOutboxMessagesCommand(time.Hour)
	require.NoError(t, err)
	handler := new(MockPurgeHandler)
	handler.On("Handle", mock.Anything, cmd).Return(int64(7), nil).Once()
	log, logs := observedLogger()

	jobs.NewOutboxPurgeJob(handler, time.Hour, log).Run(t.Context(), cmd)

	entries := logs.FilterMessage("Published outbox messages purged").All()
	require.Len(t, entries, 1)
	assert.EqualValues(t, 7, entries[0].ContextMap()["purged"])
}

func TestJobManager(t *testing.T) {
	t.Run("starts and stops all jobs", func(t *testing.T) {
		relay := new(MockRelayHandler)
		relay.On("Handle", mock.Anything, mock.Anything).Return(0, nil).Maybe()
		jm := jobs.NewJobManager(relay, new(MockPurgeHandler), jobs.JobSettings{
			RelayBatchSize:  100,
			OutboxRetention: 24 * time.Hour,
		}, logger.Nop())

		require.NoError(t, jm.StartAll())
		jm.StopAll()
	})

	t.Run("invalid relay settings fail to start", func(t *testing.T) {
		jm := jobs.NewJobManager(new(MockRelayHandler), new(MockPurgeHandler), jobs.JobSettings{
			OutboxRetention: time.Hour,
		}, logger.Nop())

		err := jm.StartAll()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "outbox relay job")
	})

	t.Run("invalid purge settings stop the relay job", func(t *testing.T) {
		relay := new(MockRelayHandler)
		relay.On("Handle", mock.Anything, mock.Anything).Return(0, nil).Maybe()
		jm := jobs.NewJobManager(relay, new(MockPurgeHandler), jobs.JobSettings{
			RelayBatchSize: 10,
		}, logger.Nop())

		err := jm.StartAll()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "outbox purge job")
	})
}
