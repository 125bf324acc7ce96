package scheduler

import (
	"context"
	"sync"
	"time"

	"hearth/pkg/logger"
)

// Job is a periodic unit of work. Run receives the tick time so sweeps
// compute staleness against a single consistent "now".
type Job struct {
	Name     string
	Interval time.Duration
	Run      func(ctx context.Context, now time.Time) error
}

// Scheduler drives sweep jobs on independent tickers. Job errors are logged
// and the ticker keeps going; a failed pass is retried on the next tick.
type Scheduler struct {
	jobs   []Job
	logger *logger.Logger
	wg     sync.WaitGroup
}

func New(logger logger.Logger) *Scheduler {
	return &Scheduler{logger: &logger}
}

func (s *Scheduler) Add(job Job) {
	s.jobs = append(s.jobs, job)
}

// Start launches one goroutine per job. Jobs stop when ctx is cancelled;
// a tick already in flight finishes its current record before exiting.
func (s *Scheduler) Start(ctx context.Context) {
	for _, job := range s.jobs {
		s.wg.Add(1)
		go func(job Job) {
			defer s.wg.Done()
			ticker := time.NewTicker(job.Interval)
			defer ticker.Stop()

			s.logger.Info("scheduled job started", "job", job.Name, "interval", job.Interval)
			for {
				select {
				case <-ctx.Done():
					s.logger.Info("scheduled job stopped", "job", job.Name)
					return
				case now := <-ticker.C:
					if err := job.Run(ctx, now); err != nil {
						s.logger.Error("scheduled job failed", "job", job.Name, "err", err)
					}
				}
			}
		}(job)
	}
}

// Wait blocks until all jobs have stopped.
func (s *Scheduler) Wait() {
	s.wg.Wait()
}
