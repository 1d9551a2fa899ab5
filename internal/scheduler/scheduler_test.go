package scheduler

import (
	"testing"
	"time"

	"rentdesk-backoffice/internal/config"
	"rentdesk-backoffice/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduler(t *testing.T) {
	t.Run("RegisterJobs", func(t *testing.T) {
		cfg := &config.Config{Scheduler: config.SchedulerConfig{
			MarkOverdueContracts:      "0 5 0 * * *",
			SendRegistrationReminders: "0 0 7 * * MON",
		}}
		jr := jobs.NewJobRunner(nil, nil, &jobs.Services{}, cfg)

		s := NewScheduler()
		require.NoError(t, s.RegisterJobs(jr))
		assert.True(t, s.IsRunning())
		assert.Contains(t, s.Jobs(), "MarkOverdueContracts")
		assert.Contains(t, s.Jobs(), "SendRegistrationExpiryReminders")
	})

	t.Run("InvalidSpec", func(t *testing.T) {
		s := NewScheduler()
		err := s.Register("Broken", "every day", func() {})
		assert.Error(t, err)
		assert.False(t, s.IsRunning())
	})

	t.Run("RunsRegisteredJob", func(t *testing.T) {
		s := NewScheduler()
		fired := make(chan struct{}, 1)
		require.NoError(t, s.Register("Tick", "* * * * * *", func() {
			select {
			case fired <- struct{}{}:
			default:
			}
		}))
		s.Start()
		defer s.Stop()

		select {
		case <-fired:
		case <-time.After(3 * time.Second):
			t.Fatal("job did not run")
		}
	})
}
