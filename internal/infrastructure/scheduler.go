package infrastructure

import (
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog"
)

// Scheduler runs background jobs on top of gocron. Jobs are held in memory
// only: a delayed job that has not fired yet is lost on restart, and there is
// no cancellation path for an enqueued job.
type Scheduler struct {
	inner gocron.Scheduler
	log   zerolog.Logger
}

func NewScheduler(log zerolog.Logger) (*Scheduler, error) {
	inner, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}
	return &Scheduler{
		inner: inner,
		log:   log.With().Str("component", "scheduler").Logger(),
	}, nil
}

// Start begins firing jobs asynchronously.
func (s *Scheduler) Start() {
	s.inner.Start()
}

// RunAfter schedules task to fire exactly once at now+delay.
func (s *Scheduler) RunAfter(delay time.Duration, task func()) error {
	_, err := s.inner.NewJob(
		gocron.OneTimeJob(gocron.OneTimeJobStartDateTime(time.Now().Add(delay))),
		gocron.NewTask(task),
	)
	if err != nil {
		return err
	}
	s.log.Debug().Dur("delay", delay).Msg("one-off job scheduled")
	return nil
}

// RunEvery schedules task to fire every interval until shutdown.
func (s *Scheduler) RunEvery(interval time.Duration, task func()) error {
	_, err := s.inner.NewJob(gocron.DurationJob(interval), gocron.NewTask(task))
	if err != nil {
		return err
	}
	s.log.Debug().Dur("interval", interval).Msg("recurring job scheduled")
	return nil
}

// Shutdown stops the scheduler and drops all pending jobs.
func (s *Scheduler) Shutdown() error {
	return s.inner.Shutdown()
}
