package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/akaur/Budget-Buddy-Backend/internal/service"
)

// Scheduler runs the daily recurring expense generation.
type Scheduler struct {
	cron             *cron.Cron
	recurringService *service.RecurringService
}

// New creates a Scheduler that generates recurring expenses on the given
// cron spec.
func New(recurringService *service.RecurringService, spec string) (*Scheduler, error) {
	s := &Scheduler{
		cron:             cron.New(),
		recurringService: recurringService,
	}

	if _, err := s.cron.AddFunc(spec, s.runRecurring); err != nil {
		return nil, err
	}
	return s, nil
}

// Start begins the schedule and runs one generation pass immediately, so
// templates that came due while the server was down catch up on boot.
func (s *Scheduler) Start() {
	go s.runRecurring()
	s.cron.Start()
}

// Stop halts the schedule, waiting for a running job to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func (s *Scheduler) runRecurring() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	generated, err := s.recurringService.ProcessDue(ctx, time.Now())
	if err != nil {
		log.Printf("recurring generation failed: %v", err)
		return
	}
	if len(generated) > 0 {
		log.Printf("generated %d recurring expense(s)", len(generated))
	}
}
