package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/rs/zerolog/log"

	"github.com/i474232898/weather-records/internal/weather"
)

// Scheduler periodically records the current weather of configured
// locations as observations.
type Scheduler struct {
	scheduler *gocron.Scheduler
	lookup    *weather.Service
	records   *weather.RecordService
	locations []string
	interval  time.Duration
	now       func() time.Time
}

// New creates a new Scheduler.
func New(locations []string, interval time.Duration, lookup *weather.Service, records *weather.RecordService) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		lookup:    lookup,
		records:   records,
		locations: locations,
		interval:  interval,
		now:       time.Now,
	}
}

// Start schedules the periodic job and starts the underlying scheduler.
func (s *Scheduler) Start() error {
	if len(s.locations) == 0 {
		log.Info().Msg("scheduler: no locations configured; nothing to record")
		return nil
	}

	interval := s.interval
	if interval <= 0 {
		interval = 15 * time.Minute
	}

	_, err := s.scheduler.Every(interval).SingletonMode().Do(func() {
		log.Debug().Msg("scheduler: running record job")
		n := s.RecordAll(context.Background())
		log.Info().Int("recorded", n).Int("locations", len(s.locations)).Msg("scheduler: completed record job")
	})
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

// RecordAll looks up every location concurrently and stores one observation
// per successful lookup. It returns the number of observations stored.
func (s *Scheduler) RecordAll(ctx context.Context) int {
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		recorded int
	)

	for _, loc := range s.locations {
		wg.Add(1)
		go func() {
			defer wg.Done()

			ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
			defer cancel()

			if err := s.record(ctx, loc); err != nil {
				log.Warn().Err(err).Str("location", loc).Msg("scheduler: record failed")
				return
			}

			mu.Lock()
			recorded++
			mu.Unlock()
		}()
	}
	wg.Wait()

	return recorded
}

func (s *Scheduler) record(ctx context.Context, location string) error {
	cur, err := s.lookup.Current(ctx, location)
	if err != nil {
		return err
	}

	date := s.now().UTC().Format("2006-01-02")
	obs, err := s.records.Create(ctx, weather.ObservationInput{
		Location:    weather.NewValue(location),
		Temperature: weather.NewValue(cur.Temperature),
		Description: weather.NewValue(cur.Description),
		Date:        weather.NewValue(date),
	})
	if err != nil {
		return err
	}

	log.Debug().Int64("id", obs.ID).Str("location", location).Msg("scheduler: observation recorded")
	return nil
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
