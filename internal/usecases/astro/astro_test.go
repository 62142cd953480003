package astro

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/admin/astro-services/jyotish/internal/adapters/secondary/storage/inmemory"
	"github.com/admin/astro-services/jyotish/internal/domain"
	"github.com/admin/astro-services/jyotish/internal/pkg/logger"
	"github.com/admin/astro-services/jyotish/internal/ports/cache"
	"github.com/admin/astro-services/jyotish/internal/ports/kafka"
	"github.com/admin/astro-services/jyotish/internal/ports/storage"
)

var fixedNow = time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC)

func testConfig() Config {
	return Config{
		ChartTTL:       24 * time.Hour,
		PanchangTTL:    25 * time.Hour,
		HoroscopeTTL:   25 * time.Hour,
		SnapshotPrefix: "charts",
		SnapshotURLTTL: 15 * time.Minute,
	}
}

func newTestService(engine *mockEngine, repo *mockProfileRepo, c cache.Cache, snaps storage.IS3Client, producer kafka.IKafkaProducer) *Service {
	s := New(testConfig(), engine, repo, c, snaps, producer, logger.Nop())
	s.now = func() time.Time { return fixedNow }
	return s
}

func birth() domain.BirthData {
	return domain.BirthData{
		Name: "Asha", Place: "New Delhi",
		Year: 1990, Month: 3, Day: 15, Hour: 12, TimeKnown: true,
		Latitude: 28.6139, Longitude: 77.2090, UTCOffset: 5.5,
	}
}

func sampleReport() *domain.ChartReport {
	return &domain.ChartReport{
		Chart: &domain.Chart{Birth: birth()},
		Context: domain.ChatContext{
			Name:             "Asha",
			AscendantSign:    "Gemini",
			MoonSign:         "Scorpio",
			CurrentMahadasha: "Jupiter",
			Yogas:            []string{"Gajakesari Yoga"},
			Doshas:           []string{},
		},
		ComputedAt: fixedNow,
	}
}

func TestComputeChart_CachesReport(t *testing.T) {
	engine := &mockEngine{}
	engine.On("BuildReport", mock.Anything, birth(), fixedNow).Return(sampleReport(), nil).Once()
	s := newTestService(engine, &mockProfileRepo{}, inmemory.NewCache(), nil, nil)

	first, err := s.ComputeChart(context.Background(), birth())
	require.NoError(t, err)
	second, err := s.ComputeChart(context.Background(), birth())
	require.NoError(t, err)

	assert.Equal(t, first.Context, second.Context)
	assert.True(t, first.ComputedAt.Equal(second.ComputedAt))
	engine.AssertExpectations(t)
}

func TestComputeChart_CacheFailureDoesNotFailRequest(t *testing.T) {
	engine := &mockEngine{}
	engine.On("BuildReport", mock.Anything, birth(), fixedNow).Return(sampleReport(), nil).Times(2)
	s := newTestService(engine, &mockProfileRepo{}, brokenCache{}, nil, nil)

	for i := 0; i < 2; i++ {
		report, err := s.ComputeChart(context.Background(), birth())
		require.NoError(t, err)
		assert.Equal(t, "Gemini", report.Context.AscendantSign)
	}
	engine.AssertExpectations(t)
}

func TestComputeChart_Errors(t *testing.T) {
	engine := &mockEngine{}
	s := newTestService(engine, &mockProfileRepo{}, nil, nil, nil)

	invalid := birth()
	invalid.Latitude = 120
	_, err := s.ComputeChart(context.Background(), invalid)
	assert.True(t, domain.IsValidationError(err))
	engine.AssertNotCalled(t, "BuildReport", mock.Anything, mock.Anything, mock.Anything)

	pole := birth()
	pole.Latitude = 90
	engine.On("BuildReport", mock.Anything, pole, fixedNow).
		Return(nil, fmt.Errorf("%w: ascendant is undefined", domain.ErrUndefinedForLocation)).Once()
	_, err = s.ComputeChart(context.Background(), pole)
	assert.ErrorIs(t, err, domain.ErrUndefinedForLocation)
	assert.False(t, domain.IsBusinessError(err))

	engine.On("BuildReport", mock.Anything, birth(), fixedNow).Return(nil, errors.New("boom")).Once()
	_, err = s.ComputeChart(context.Background(), birth())
	assert.True(t, domain.IsBusinessError(err))
}

func TestChatContext(t *testing.T) {
	engine := &mockEngine{}
	engine.On("BuildReport", mock.Anything, birth(), fixedNow).Return(sampleReport(), nil).Once()
	s := newTestService(engine, &mockProfileRepo{}, nil, nil, nil)

	chat, err := s.ChatContext(context.Background(), birth())
	require.NoError(t, err)
	assert.Equal(t, "Jupiter", chat.CurrentMahadasha)
	assert.Equal(t, []string{"Gajakesari Yoga"}, chat.Yogas)
}

func TestCreateProfile(t *testing.T) {
	engine := &mockEngine{}
	repo := &mockProfileRepo{}
	snaps := &mockSnapshots{}
	producer := &mockProducer{}

	engine.On("BuildReport", mock.Anything, birth(), fixedNow).Return(sampleReport(), nil).Once()
	snaps.On("PutFile", mock.Anything, mock.MatchedBy(func(path string) bool {
		return strings.HasPrefix(path, "charts/") && strings.HasSuffix(path, "/20240601T093000Z.json")
	}), mock.Anything, "application/json").Return(nil).Once()
	repo.On("Create", mock.Anything, mock.MatchedBy(func(p *domain.Profile) bool {
		return p.Name == "Asha" && p.SnapshotKey == nil && len(p.Chart) > 0 && p.ChartUpdatedAt.Equal(fixedNow)
	})).Return(nil).Once()
	repo.On("SetSnapshotKey", mock.Anything, mock.AnythingOfType("uuid.UUID"), mock.MatchedBy(func(key string) bool {
		return strings.HasSuffix(key, "/20240601T093000Z.json")
	}), fixedNow).Return(nil).Once()
	producer.On("SendChartEvent", mock.Anything, mock.MatchedBy(func(e domain.ChartEvent) bool {
		return e.ProfileID != "" && e.RequestID != "" && e.Context.AscendantSign == "Gemini"
	})).Return(nil).Once()

	s := newTestService(engine, repo, nil, snaps, producer)
	profile, report, err := s.CreateProfile(context.Background(), birth())
	require.NoError(t, err)

	assert.Equal(t, "Asha", profile.Name)
	assert.Equal(t, "Gemini", report.Context.AscendantSign)
	assert.Contains(t, string(profile.Chart), `"ascendant_sign":"Gemini"`)
	require.NotNil(t, profile.SnapshotKey)
	assert.Contains(t, *profile.SnapshotKey, profile.ID.String())

	engine.AssertExpectations(t)
	repo.AssertExpectations(t)
	snaps.AssertExpectations(t)
	producer.AssertExpectations(t)
}

func TestCreateProfile_OptionalStepsFailSoftly(t *testing.T) {
	engine := &mockEngine{}
	repo := &mockProfileRepo{}
	snaps := &mockSnapshots{}
	producer := &mockProducer{}

	engine.On("BuildReport", mock.Anything, birth(), fixedNow).Return(sampleReport(), nil).Once()
	snaps.On("PutFile", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("s3 down")).Once()
	repo.On("Create", mock.Anything, mock.MatchedBy(func(p *domain.Profile) bool {
		return p.SnapshotKey == nil
	})).Return(nil).Once()
	producer.On("SendChartEvent", mock.Anything, mock.Anything).Return(errors.New("kafka down")).Once()

	s := newTestService(engine, repo, nil, snaps, producer)
	profile, _, err := s.CreateProfile(context.Background(), birth())
	require.NoError(t, err)
	assert.Nil(t, profile.SnapshotKey)
	repo.AssertExpectations(t)
}

func TestCreateProfile_RepoFailure(t *testing.T) {
	engine := &mockEngine{}
	repo := &mockProfileRepo{}
	snaps := &mockSnapshots{}
	engine.On("BuildReport", mock.Anything, birth(), fixedNow).Return(sampleReport(), nil).Once()
	repo.On("Create", mock.Anything, mock.Anything).Return(errors.New("db down")).Once()

	s := newTestService(engine, repo, nil, snaps, nil)
	_, _, err := s.CreateProfile(context.Background(), birth())
	assert.True(t, domain.IsBusinessError(err))
	// профиль не записан, в архиве ничего не остаётся
	snaps.AssertNotCalled(t, "PutFile", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestGetProfileAndReport(t *testing.T) {
	repo := &mockProfileRepo{}
	id := uuid.New()
	profile := domain.NewProfile(birth(), fixedNow)
	profile.ID = id
	profile.Chart = domain.ChartSnapshot(`{"context":{"ascendant_sign":"Virgo","yogas":[],"doshas":[]}}`)
	repo.On("GetByID", mock.Anything, id).Return(profile, nil)

	missing := uuid.New()
	repo.On("GetByID", mock.Anything, missing).Return(nil, fmt.Errorf("profile %s: %w", missing, domain.ErrNotFound))

	s := newTestService(&mockEngine{}, repo, nil, nil, nil)

	report, err := s.ProfileReport(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Virgo", report.Context.AscendantSign)

	_, err = s.GetProfile(context.Background(), missing)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.False(t, domain.IsBusinessError(err))
}

func TestRecomputeProfile(t *testing.T) {
	engine := &mockEngine{}
	repo := &mockProfileRepo{}
	id := uuid.New()
	stored := domain.NewProfile(birth(), fixedNow.AddDate(-1, 0, 0))
	stored.ID = id

	repo.On("WithTransaction", mock.Anything).Once()
	repo.On("GetByIDForUpdateTx", mock.Anything, id).Return(stored, nil).Once()
	engine.On("BuildReport", mock.Anything, birth(), fixedNow).Return(sampleReport(), nil).Once()
	repo.On("UpdateChartTx", mock.Anything, id, mock.AnythingOfType("domain.ChartSnapshot"), fixedNow).Return(nil).Once()

	s := newTestService(engine, repo, nil, nil, nil)
	profile, report, err := s.RecomputeProfile(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Gemini", report.Context.AscendantSign)
	assert.True(t, profile.ChartUpdatedAt.Equal(fixedNow))
	assert.NotEmpty(t, profile.Chart)

	engine.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestRecomputeProfile_ArchivesAfterCommit(t *testing.T) {
	engine := &mockEngine{}
	repo := &mockProfileRepo{}
	snaps := &mockSnapshots{}
	id := uuid.New()
	stored := domain.NewProfile(birth(), fixedNow.AddDate(-1, 0, 0))
	stored.ID = id

	var calls []string
	repo.On("WithTransaction", mock.Anything).Once()
	repo.On("GetByIDForUpdateTx", mock.Anything, id).Return(stored, nil).Once()
	engine.On("BuildReport", mock.Anything, birth(), fixedNow).Return(sampleReport(), nil).Once()
	repo.On("UpdateChartTx", mock.Anything, id, mock.AnythingOfType("domain.ChartSnapshot"), fixedNow).
		Run(func(mock.Arguments) { calls = append(calls, "update") }).Return(nil).Once()
	snaps.On("PutFile", mock.Anything, "charts/"+id.String()+"/20240601T093000Z.json", mock.Anything, "application/json").
		Run(func(mock.Arguments) { calls = append(calls, "put") }).Return(nil).Once()
	repo.On("SetSnapshotKey", mock.Anything, id, "charts/"+id.String()+"/20240601T093000Z.json", fixedNow).
		Run(func(mock.Arguments) { calls = append(calls, "link") }).Return(nil).Once()

	s := newTestService(engine, repo, nil, snaps, nil)
	profile, _, err := s.RecomputeProfile(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, profile.SnapshotKey)
	assert.Equal(t, "charts/"+id.String()+"/20240601T093000Z.json", *profile.SnapshotKey)
	assert.Equal(t, []string{"update", "put", "link"}, calls)
	repo.AssertExpectations(t)
	snaps.AssertExpectations(t)
}

func TestRecomputeProfile_FailedTransactionLeavesNoSnapshot(t *testing.T) {
	engine := &mockEngine{}
	repo := &mockProfileRepo{}
	snaps := &mockSnapshots{}
	id := uuid.New()
	stored := domain.NewProfile(birth(), fixedNow.AddDate(-1, 0, 0))
	stored.ID = id

	repo.On("WithTransaction", mock.Anything).Once()
	repo.On("GetByIDForUpdateTx", mock.Anything, id).Return(stored, nil).Once()
	engine.On("BuildReport", mock.Anything, birth(), fixedNow).Return(sampleReport(), nil).Once()
	repo.On("UpdateChartTx", mock.Anything, id, mock.Anything, fixedNow).Return(errors.New("serialization failure")).Once()

	s := newTestService(engine, repo, nil, snaps, nil)
	_, _, err := s.RecomputeProfile(context.Background(), id)
	require.Error(t, err)
	snaps.AssertNotCalled(t, "PutFile", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "SetSnapshotKey", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRecomputeProfile_UnlinkedSnapshotRemoved(t *testing.T) {
	engine := &mockEngine{}
	repo := &mockProfileRepo{}
	snaps := &mockSnapshots{}
	id := uuid.New()
	stored := domain.NewProfile(birth(), fixedNow.AddDate(-1, 0, 0))
	stored.ID = id
	key := "charts/" + id.String() + "/20240601T093000Z.json"

	repo.On("WithTransaction", mock.Anything).Once()
	repo.On("GetByIDForUpdateTx", mock.Anything, id).Return(stored, nil).Once()
	engine.On("BuildReport", mock.Anything, birth(), fixedNow).Return(sampleReport(), nil).Once()
	repo.On("UpdateChartTx", mock.Anything, id, mock.Anything, fixedNow).Return(nil).Once()
	snaps.On("PutFile", mock.Anything, key, mock.Anything, "application/json").Return(nil).Once()
	repo.On("SetSnapshotKey", mock.Anything, id, key, fixedNow).Return(fmt.Errorf("profile %s: %w", id, domain.ErrNotFound)).Once()
	snaps.On("DeleteFile", mock.Anything, key).Return(nil).Once()

	s := newTestService(engine, repo, nil, snaps, nil)
	profile, _, err := s.RecomputeProfile(context.Background(), id)
	require.NoError(t, err)
	assert.Nil(t, profile.SnapshotKey)
	snaps.AssertExpectations(t)
}

func TestProfileReport_FallsBackToArchive(t *testing.T) {
	repo := &mockProfileRepo{}
	snaps := &mockSnapshots{}
	engine := &mockEngine{}
	key := "charts/p/20240601T093000Z.json"

	archived := domain.NewProfile(birth(), fixedNow)
	archived.SnapshotKey = &key
	repo.On("GetByID", mock.Anything, archived.ID).Return(archived, nil)
	snaps.On("GetFile", mock.Anything, key).Return([]byte(`{"context":{"ascendant_sign":"Leo","yogas":[],"doshas":[]}}`), nil).Once()

	broken := domain.NewProfile(birth(), fixedNow)
	broken.Chart = domain.ChartSnapshot(`{"context":`)
	broken.SnapshotKey = &key
	repo.On("GetByID", mock.Anything, broken.ID).Return(broken, nil)
	snaps.On("GetFile", mock.Anything, key).Return(nil, errors.New("no such key")).Once()
	engine.On("BuildReport", mock.Anything, birth(), fixedNow).Return(sampleReport(), nil).Once()

	s := newTestService(engine, repo, nil, snaps, nil)

	report, err := s.ProfileReport(context.Background(), archived.ID)
	require.NoError(t, err)
	assert.Equal(t, "Leo", report.Context.AscendantSign)

	// архив недоступен, отчёт пересчитывается
	report, err = s.ProfileReport(context.Background(), broken.ID)
	require.NoError(t, err)
	assert.Equal(t, "Gemini", report.Context.AscendantSign)

	snaps.AssertExpectations(t)
	engine.AssertExpectations(t)
}

func TestRecomputeProfile_NotFound(t *testing.T) {
	repo := &mockProfileRepo{}
	id := uuid.New()
	repo.On("WithTransaction", mock.Anything).Once()
	repo.On("GetByIDForUpdateTx", mock.Anything, id).Return(nil, fmt.Errorf("profile %s: %w", id, domain.ErrNotFound)).Once()

	s := newTestService(&mockEngine{}, repo, nil, nil, nil)
	_, _, err := s.RecomputeProfile(context.Background(), id)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListProfiles_ClampsPage(t *testing.T) {
	repo := &mockProfileRepo{}
	repo.On("List", mock.Anything, maxProfilesPage, 0).Return([]*domain.Profile{}, nil).Once()

	s := newTestService(&mockEngine{}, repo, nil, nil, nil)
	_, err := s.ListProfiles(context.Background(), 10000, -5)
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestSnapshotURL(t *testing.T) {
	repo := &mockProfileRepo{}
	snaps := &mockSnapshots{}
	key := "charts/x/20240601T093000Z.json"

	withKey := domain.NewProfile(birth(), fixedNow)
	withKey.SnapshotKey = &key
	withoutKey := domain.NewProfile(birth(), fixedNow)
	repo.On("GetByID", mock.Anything, withKey.ID).Return(withKey, nil)
	repo.On("GetByID", mock.Anything, withoutKey.ID).Return(withoutKey, nil)
	snaps.On("GetPresignedURL", mock.Anything, key, 15*time.Minute).Return("https://s3/charts/x", nil).Once()

	disabled := newTestService(&mockEngine{}, repo, nil, nil, nil)
	_, err := disabled.SnapshotURL(context.Background(), withKey.ID)
	assert.ErrorIs(t, err, ErrSnapshotsDisabled)

	s := newTestService(&mockEngine{}, repo, nil, snaps, nil)
	_, err = s.SnapshotURL(context.Background(), withoutKey.ID)
	assert.ErrorIs(t, err, ErrNoSnapshot)

	url, err := s.SnapshotURL(context.Background(), withKey.ID)
	require.NoError(t, err)
	assert.Equal(t, "https://s3/charts/x", url)
}

func TestPanchang_Cached(t *testing.T) {
	engine := &mockEngine{}
	date := time.Date(2024, 6, 23, 0, 0, 0, 0, time.UTC)
	engine.On("Panchang", mock.Anything, date, 28.6139, 77.209, 5.5).
		Return(&domain.PanchangDay{Date: "2024-06-23", SunDefined: true}, nil).Once()

	s := newTestService(engine, &mockProfileRepo{}, inmemory.NewCache(), nil, nil)
	for i := 0; i < 3; i++ {
		day, err := s.Panchang(context.Background(), date, 28.6139, 77.209, 5.5)
		require.NoError(t, err)
		assert.Equal(t, "2024-06-23", day.Date)
	}
	engine.AssertExpectations(t)

	_, err := s.Panchang(context.Background(), date, 0, 200, 0)
	assert.True(t, domain.IsValidationError(err))
}

func TestHoroscopes(t *testing.T) {
	engine := &mockEngine{}
	date := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	engine.On("DailyHoroscope", domain.Leo, date).Return(&domain.Horoscope{Sign: domain.Leo, Date: "2024-05-01", Overall: 70}).Once()
	engine.On("MonthlyHoroscope", domain.Leo, 2024, time.May).Return(&domain.Horoscope{Sign: domain.Leo, Date: "2024-05"}).Once()

	s := newTestService(engine, &mockProfileRepo{}, inmemory.NewCache(), nil, nil)
	for i := 0; i < 2; i++ {
		h, err := s.DailyHoroscope(context.Background(), domain.Leo, date)
		require.NoError(t, err)
		assert.Equal(t, 70, h.Overall)
	}
	m, err := s.MonthlyHoroscope(context.Background(), domain.Leo, 2024, time.May)
	require.NoError(t, err)
	assert.Equal(t, "2024-05", m.Date)
	engine.AssertExpectations(t)

	_, err = s.DailyHoroscope(context.Background(), domain.Sign(42), date)
	assert.True(t, domain.IsValidationError(err))
	_, err = s.MonthlyHoroscope(context.Background(), domain.Leo, 2024, 13)
	assert.True(t, domain.IsValidationError(err))
}

func TestWarmPanchang(t *testing.T) {
	engine := &mockEngine{}
	c := inmemory.NewCache()
	date := time.Date(2024, 6, 23, 0, 30, 0, 0, time.UTC)
	locations := []domain.Location{
		{Name: "Delhi", Latitude: 28.6139, Longitude: 77.209, UTCOffset: 5.5},
		{Name: "Nowhere", Latitude: 10, Longitude: 10, UTCOffset: 1},
	}
	engine.On("Panchang", mock.Anything, mock.Anything, 28.6139, 77.209, 5.5).Return(&domain.PanchangDay{Date: "2024-06-23"}, nil).Once()
	engine.On("Panchang", mock.Anything, mock.Anything, 10.0, 10.0, 1.0).Return(nil, errors.New("boom")).Once()

	s := newTestService(engine, &mockProfileRepo{}, c, nil, nil)
	err := s.WarmPanchang(context.Background(), date, locations)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Nowhere")
	assert.Equal(t, 1, c.Len())

	// прогретое значение отдаётся без обращения к движку
	day, err := s.Panchang(context.Background(), time.Date(2024, 6, 23, 0, 0, 0, 0, time.UTC), 28.6139, 77.209, 5.5)
	require.NoError(t, err)
	assert.Equal(t, "2024-06-23", day.Date)
	engine.AssertExpectations(t)
}

func TestWarmHoroscopes(t *testing.T) {
	engine := &mockEngine{}
	c := inmemory.NewCache()
	date := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	engine.On("DailyHoroscope", mock.Anything, date).Return(&domain.Horoscope{Period: domain.PeriodDaily})
	engine.On("MonthlyHoroscope", mock.Anything, 2024, time.May).Return(&domain.Horoscope{Period: domain.PeriodMonthly})

	s := newTestService(engine, &mockProfileRepo{}, c, nil, nil)
	require.NoError(t, s.WarmHoroscopes(context.Background(), date))
	assert.Equal(t, 2*int(domain.SignCount), c.Len())
	engine.AssertNumberOfCalls(t, "DailyHoroscope", int(domain.SignCount))
}

func TestProcessChartRequest(t *testing.T) {
	engine := &mockEngine{}
	producer := &mockProducer{}
	engine.On("BuildReport", mock.Anything, birth(), fixedNow).Return(sampleReport(), nil).Once()
	producer.On("SendChartEvent", mock.Anything, mock.MatchedBy(func(e domain.ChartEvent) bool {
		return e.RequestID == "req-1" && e.ProfileID == "" && e.Context.MoonSign == "Scorpio"
	})).Return(nil).Once()

	s := newTestService(engine, &mockProfileRepo{}, nil, nil, producer)
	require.NoError(t, s.ProcessChartRequest(context.Background(), domain.ChartRequest{RequestID: "req-1", Birth: birth()}))
	producer.AssertExpectations(t)
}

func TestProcessChartRequest_Rejections(t *testing.T) {
	producer := &mockProducer{}
	s := newTestService(&mockEngine{}, &mockProfileRepo{}, nil, nil, producer)

	err := s.ProcessChartRequest(context.Background(), domain.ChartRequest{Birth: birth()})
	assert.True(t, domain.IsBusinessError(err))

	bad := birth()
	bad.Month = 0
	err = s.ProcessChartRequest(context.Background(), domain.ChartRequest{RequestID: "req-2", Birth: bad})
	assert.True(t, domain.IsBusinessError(err))
	assert.True(t, domain.IsValidationError(err))

	err = s.ProcessChartRequest(context.Background(), domain.ChartRequest{RequestID: "req-3", ProfileID: "not-a-uuid"})
	assert.True(t, domain.IsBusinessError(err))

	producer.AssertNotCalled(t, "SendChartEvent", mock.Anything, mock.Anything)
}

func TestProcessChartRequest_PublishFailureIsRetryable(t *testing.T) {
	engine := &mockEngine{}
	producer := &mockProducer{}
	engine.On("BuildReport", mock.Anything, birth(), fixedNow).Return(sampleReport(), nil).Once()
	producer.On("SendChartEvent", mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()

	s := newTestService(engine, &mockProfileRepo{}, nil, nil, producer)
	err := s.ProcessChartRequest(context.Background(), domain.ChartRequest{RequestID: "req-4", Birth: birth()})
	require.Error(t, err)
	assert.False(t, domain.IsBusinessError(err))
}

func TestProcessChartRequest_TransientFailuresAreRetryable(t *testing.T) {
	engine := &mockEngine{}
	producer := &mockProducer{}
	engine.On("BuildReport", mock.Anything, birth(), fixedNow).Return(nil, context.Canceled).Once()

	s := newTestService(engine, &mockProfileRepo{}, nil, nil, producer)
	err := s.ProcessChartRequest(context.Background(), domain.ChartRequest{RequestID: "req-5", Birth: birth()})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, domain.IsBusinessError(err))

	id := uuid.New()
	repo := &mockProfileRepo{}
	repo.On("GetByID", mock.Anything, id).Return(nil, errors.New("connection reset by peer")).Once()

	s = newTestService(&mockEngine{}, repo, nil, nil, producer)
	err = s.ProcessChartRequest(context.Background(), domain.ChartRequest{RequestID: "req-6", ProfileID: id.String()})
	require.Error(t, err)
	assert.ErrorContains(t, err, "connection reset by peer")
	assert.False(t, domain.IsBusinessError(err))

	producer.AssertNotCalled(t, "SendChartEvent", mock.Anything, mock.Anything)
}

func TestProcessChartRequest_FinalRejections(t *testing.T) {
	id := uuid.New()
	repo := &mockProfileRepo{}
	repo.On("GetByID", mock.Anything, id).Return(nil, domain.ErrNotFound).Once()

	engine := &mockEngine{}
	polar := birth()
	engine.On("BuildReport", mock.Anything, polar, fixedNow).
		Return(nil, fmt.Errorf("%w: ascendant", domain.ErrUndefinedForLocation)).Once()

	producer := &mockProducer{}
	s := newTestService(engine, repo, nil, nil, producer)

	err := s.ProcessChartRequest(context.Background(), domain.ChartRequest{RequestID: "req-7", ProfileID: id.String()})
	assert.True(t, domain.IsBusinessError(err))
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = s.ProcessChartRequest(context.Background(), domain.ChartRequest{RequestID: "req-8", Birth: polar})
	assert.True(t, domain.IsBusinessError(err))
	assert.ErrorIs(t, err, domain.ErrUndefinedForLocation)

	producer.AssertNotCalled(t, "SendChartEvent", mock.Anything, mock.Anything)
}

func TestComputeChart_PlaceLabelIsNotShared(t *testing.T) {
	delhi, gurgaon := birth(), birth()
	gurgaon.Place = "Delhi NCR"

	delhiReport, gurgaonReport := sampleReport(), sampleReport()
	gurgaonReport.Chart = &domain.Chart{Birth: gurgaon}

	engine := &mockEngine{}
	engine.On("BuildReport", mock.Anything, delhi, fixedNow).Return(delhiReport, nil).Once()
	engine.On("BuildReport", mock.Anything, gurgaon, fixedNow).Return(gurgaonReport, nil).Once()
	s := newTestService(engine, &mockProfileRepo{}, inmemory.NewCache(), nil, nil)

	first, err := s.ComputeChart(context.Background(), delhi)
	require.NoError(t, err)
	second, err := s.ComputeChart(context.Background(), gurgaon)
	require.NoError(t, err)

	assert.Equal(t, "New Delhi", first.Chart.Birth.Place)
	assert.Equal(t, "Delhi NCR", second.Chart.Birth.Place)
	assert.NotEqual(t, chartKey(delhi, fixedNow), chartKey(gurgaon, fixedNow))
	engine.AssertExpectations(t)
}
