package jobs

import (
	"log"

	"github.com/robfig/cron/v3"
)

// Job represents a scheduled background job
type Job interface {
	Run() error
	Name() string
}

// Scheduler manages background jobs
type Scheduler struct {
	cron *cron.Cron
}

// NewScheduler creates a new scheduler using standard cron expressions.
func NewScheduler() *Scheduler {
	return &Scheduler{cron: cron.New()}
}

// Start starts the scheduler
func (s *Scheduler) Start() {
	s.cron.Start()
	log.Println("scheduler started")
}

// Stop stops the scheduler and waits for running jobs to finish
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Println("scheduler stopped")
}

// AddJob registers a job with a cron schedule. Job failures are logged, never
// fatal: a failed refresh run just leaves the previous data in place.
func (s *Scheduler) AddJob(schedule string, job Job) error {
	_, err := s.cron.AddFunc(schedule, func() {
		if err := job.Run(); err != nil {
			log.Printf("job %s failed: %v", job.Name(), err)
			return
		}
		log.Printf("job %s completed", job.Name())
	})
	if err != nil {
		return err
	}

	log.Printf("job %s registered with schedule %q", job.Name(), schedule)
	return nil
}
