package jobs

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/admin/astro-services/jyotish/internal/domain"
	"github.com/admin/astro-services/jyotish/internal/pkg/logger"
)

type mockWarmService struct {
	mock.Mock
}

func (m *mockWarmService) WarmPanchang(ctx context.Context, date time.Time, locations []domain.Location) error {
	return m.Called(ctx, date, locations).Error(0)
}

func (m *mockWarmService) WarmHoroscopes(ctx context.Context, date time.Time) error {
	return m.Called(ctx, date).Error(0)
}

type countingJob struct {
	mu    sync.Mutex
	runs  int
	fails int
	err   error
}

func (j *countingJob) Name() string { return "counting" }

func (j *countingJob) NextRun(now time.Time) time.Time { return now.Add(time.Hour) }

func (j *countingJob) Run(context.Context) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.runs++
	if j.runs <= j.fails {
		return j.err
	}
	return nil
}

func (j *countingJob) count() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.runs
}

func TestDailyAt(t *testing.T) {
	before := time.Date(2024, 6, 1, 0, 1, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 6, 1, 0, 5, 0, 0, time.UTC), dailyAt(before, 0, 5))

	exact := time.Date(2024, 6, 1, 0, 5, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 6, 2, 0, 5, 0, 0, time.UTC), dailyAt(exact, 0, 5))

	// 23:00 в Дели это 17:30 UTC того же дня
	delhi := time.Date(2024, 6, 1, 23, 0, 0, 0, domain.FixedZone(5.5))
	assert.Equal(t, time.Date(2024, 6, 2, 0, 5, 0, 0, time.UTC), dailyAt(delhi, 0, 5))
}

func TestPanchangWarmer(t *testing.T) {
	svc := &mockWarmService{}
	locations := []domain.Location{{Name: "Delhi", Latitude: 28.6139, Longitude: 77.209, UTCOffset: 5.5}}
	now := time.Date(2024, 6, 1, 0, 5, 0, 0, time.UTC)

	svc.On("WarmPanchang", mock.Anything, now, locations).Return(nil).Once()
	svc.On("WarmPanchang", mock.Anything, now.AddDate(0, 0, 1), locations).Return(errors.New("Delhi: boom")).Once()

	job := NewPanchangWarmer(svc, locations, Config{Hour: 0, Minute: 5, DaysAhead: 2}, logger.Nop())
	job.now = func() time.Time { return now }

	assert.Equal(t, panchangWarmerName, job.Name())
	assert.Equal(t, now.AddDate(0, 0, 1), job.NextRun(now))

	err := job.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Delhi")
	svc.AssertExpectations(t)
}

func TestHoroscopeWarmer(t *testing.T) {
	svc := &mockWarmService{}
	today := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	svc.On("WarmHoroscopes", mock.Anything, today).Return(nil).Once()

	job := NewHoroscopeWarmer(svc, Config{DaysAhead: 1}, logger.Nop())
	job.now = func() time.Time { return time.Date(2024, 6, 1, 7, 45, 0, 0, domain.FixedZone(5.5)) }

	require.NoError(t, job.Run(context.Background()))
	svc.AssertExpectations(t)
}

func TestExecuteJobWithRetry(t *testing.T) {
	s := NewScheduler(logger.Nop(), false)
	s.retries = []time.Duration{time.Millisecond, time.Millisecond}

	flaky := &countingJob{fails: 2, err: errors.New("redis down")}
	require.NoError(t, s.executeJobWithRetry(context.Background(), flaky, flaky.Name()))
	assert.Equal(t, 3, flaky.count())

	broken := &countingJob{fails: 10, err: errors.New("redis down")}
	err := s.executeJobWithRetry(context.Background(), broken, broken.Name())
	require.Error(t, err)
	assert.Equal(t, 3, broken.count())
	assert.Contains(t, err.Error(), "total attempts: 3")
	assert.Contains(t, err.Error(), "attempt 3: redis down")
}

func TestExecuteJobWithRetry_StopsOnCancel(t *testing.T) {
	s := NewScheduler(logger.Nop(), false)
	s.retries = []time.Duration{time.Hour}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	job := &countingJob{fails: 10, err: errors.New("redis down")}
	err := s.executeJobWithRetry(ctx, job, job.Name())
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, job.count())
}

func TestScheduler_RunOnStartAndStop(t *testing.T) {
	s := NewScheduler(logger.Nop(), true)
	job := &countingJob{}
	s.Register(job)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Start(ctx) }()

	require.Eventually(t, func() bool { return job.count() == 1 }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop")
	}
}

func TestScheduler_NoJobs(t *testing.T) {
	assert.NoError(t, NewScheduler(logger.Nop(), false).Start(context.Background()))
}

type mockAlerter struct {
	mock.Mock
}

func (m *mockAlerter) SendAlert(ctx context.Context, message string) error {
	return m.Called(ctx, message).Error(0)
}

func TestScheduler_AlertsWhenRetriesExhausted(t *testing.T) {
	alerter := &mockAlerter{}
	alerter.On("SendAlert", mock.Anything, mock.MatchedBy(func(msg string) bool {
		return strings.Contains(msg, "counting") && strings.Contains(msg, "attempt 2: s3 timeout")
	})).Return(errors.New("telegram down")).Once()

	s := NewScheduler(logger.Nop(), false).WithAlerter(alerter)
	s.retries = []time.Duration{time.Millisecond}

	s.execute(context.Background(), &countingJob{fails: 10, err: errors.New("s3 timeout")}, "counting")
	alerter.AssertExpectations(t)

	// успешная джоба и отмена не алертят
	s.execute(context.Background(), &countingJob{}, "counting")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s.retries = []time.Duration{time.Hour}
	s.execute(ctx, &countingJob{fails: 10, err: errors.New("s3 timeout")}, "counting")
	alerter.AssertNumberOfCalls(t, "SendAlert", 1)
}
