package jobs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/admin/astro-services/jyotish/internal/ports/jobs"
	"github.com/admin/astro-services/jyotish/internal/ports/service"
)

var defaultRetries = []time.Duration{
	1 * time.Minute,
	10 * time.Minute,
	30 * time.Minute,
}

// Scheduler управляет запуском периодических джоб
type Scheduler struct {
	jobs       []jobs.Job
	retries    []time.Duration
	runOnStart bool
	alerter    service.IAlerterService
	log        *slog.Logger
}

// NewScheduler runOnStart выполняет каждую джобу сразу при старте, не дожидаясь расписания
func NewScheduler(log *slog.Logger, runOnStart bool) *Scheduler {
	return &Scheduler{
		jobs:       make([]jobs.Job, 0),
		retries:    defaultRetries,
		runOnStart: runOnStart,
		log:        log,
	}
}

// WithAlerter алерт уходит, когда джоба исчерпала ретраи
func (s *Scheduler) WithAlerter(alerter service.IAlerterService) *Scheduler {
	s.alerter = alerter
	return s
}

// Register регистрирует джобу в планировщике
func (s *Scheduler) Register(job jobs.Job) {
	s.jobs = append(s.jobs, job)
	s.log.Debug("job registered", "job_name", job.Name(), "total_jobs", len(s.jobs))
}

// Start запускает все зарегистрированные джобы и блокируется до отмены ctx
func (s *Scheduler) Start(ctx context.Context) error {
	if len(s.jobs) == 0 {
		s.log.Warn("no jobs registered, scheduler not started")
		return nil
	}

	s.log.Info("starting job scheduler", "jobs_count", len(s.jobs))

	var wg sync.WaitGroup
	for _, job := range s.jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.runJob(ctx, job)
		}()
	}
	wg.Wait()

	s.log.Info("job scheduler stopped")
	return nil
}

// runJob запускает отдельную джобу в цикле
func (s *Scheduler) runJob(ctx context.Context, job jobs.Job) {
	jobName := job.Name()
	if s.runOnStart {
		s.execute(ctx, job, jobName)
	}

	for {
		now := time.Now()
		timer := time.NewTimer(job.NextRun(now).Sub(now))

		select {
		case <-ctx.Done():
			timer.Stop()
			s.log.Info("job stopped by context", "job_name", jobName)
			return
		case <-timer.C:
			s.execute(ctx, job, jobName)
		}
	}
}

func (s *Scheduler) execute(ctx context.Context, job jobs.Job, jobName string) {
	start := time.Now()
	if err := s.executeJobWithRetry(ctx, job, jobName); err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		s.log.Error("job failed after all retries", "job_name", jobName, "error", err)
		s.sendAlert(ctx, jobName, err)
		return
	}
	s.log.Info("job executed successfully", "job_name", jobName, "duration", time.Since(start))
}

// executeJobWithRetry выполняет джобу с retry при ошибках | now + 1m + 10m + 30m.
// Итоговая ошибка содержит ошибки всех попыток
func (s *Scheduler) executeJobWithRetry(ctx context.Context, job jobs.Job, jobName string) error {
	var attemptErrors []error

	for attempt := 1; ; attempt++ {
		err := job.Run(ctx)
		if err == nil {
			return nil
		}
		attemptErrors = append(attemptErrors, fmt.Errorf("attempt %d: %w", attempt, err))

		if attempt > len(s.retries) {
			break
		}
		s.log.Warn("job execution failed, will retry",
			"job_name", jobName,
			"attempt", attempt,
			"retries_remaining", len(s.retries)-attempt+1,
			"error", err,
		)

		timer := time.NewTimer(s.retries[attempt-1])
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}

	return fmt.Errorf("all retry attempts failed (total attempts: %d): %w",
		len(attemptErrors), errors.Join(attemptErrors...))
}

// sendAlert алертит на финальную ошибку после ретраев
func (s *Scheduler) sendAlert(ctx context.Context, jobName string, jobErr error) {
	if s.alerter == nil {
		return
	}

	var message strings.Builder
	message.WriteString("⚠️ Финальная ошибка планировщика, ретраи исчерпаны\n\n")
	fmt.Fprintf(&message, "Джоба: %s\n\n", jobName)
	message.WriteString("Ошибки попыток:\n")
	message.WriteString(jobErr.Error())

	if alertErr := s.alerter.SendAlert(ctx, message.String()); alertErr != nil {
		s.log.Warn("failed to send job failure alert",
			"job_name", jobName,
			"error", alertErr,
		)
	}
}
