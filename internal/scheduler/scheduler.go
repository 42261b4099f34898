package scheduler

import (
	"context"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/surfwatch/surfcast/internal/store"
	"github.com/surfwatch/surfcast/internal/surf"
	"github.com/surfwatch/surfcast/pkg/log"
)

// Scheduler periodically refreshes surf reports for configured home spots.
type Scheduler struct {
	scheduler *gocron.Scheduler
	service   *surf.Service
	store     *store.MemoryStore
	spots     []string
	interval  time.Duration
}

// New creates a new Scheduler.
func New(spots []string, interval time.Duration, service *surf.Service, st *store.MemoryStore) *Scheduler {
	s := gocron.NewScheduler(time.UTC)
	return &Scheduler{
		scheduler: s,
		service:   service,
		store:     st,
		spots:     spots,
		interval:  interval,
	}
}

// Start schedules the periodic refresh job and starts the underlying
// scheduler. Spots are processed one at a time; the pipeline is not
// rate-sensitive and a failed spot just keeps its last good report.
func (s *Scheduler) Start() error {
	if len(s.spots) == 0 {
		log.Infof("scheduler: no home spots configured; nothing to schedule")
		return nil
	}

	minutes := int(s.interval.Minutes())
	if minutes <= 0 {
		minutes = 30
	}

	_, err := s.scheduler.Every(minutes).Minutes().Do(func() {
		log.Infof("scheduler: refreshing %d home spots", len(s.spots))

		for _, spot := range s.spots {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			analysis, err := s.service.GetConditions(ctx, spot)
			cancel()

			if err != nil {
				log.Warnf("scheduler: refresh failed for %s: %v", spot, err)
				continue
			}

			s.store.SaveReport(spot, store.Report{
				Spot:      spot,
				FetchedAt: time.Now().UTC(),
				Analysis:  analysis,
			})
		}

		log.Infof("scheduler: refresh complete")
	})
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
