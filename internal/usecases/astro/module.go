package astro

import (
	"log/slog"
	"time"

	"github.com/admin/astro-services/jyotish/internal/ports/cache"
	"github.com/admin/astro-services/jyotish/internal/ports/kafka"
	"github.com/admin/astro-services/jyotish/internal/ports/repository"
	"github.com/admin/astro-services/jyotish/internal/ports/service"
	"github.com/admin/astro-services/jyotish/internal/ports/storage"
	"github.com/admin/astro-services/jyotish/internal/ports/usecase"
)

type Config struct {
	ChartTTL     time.Duration `envconfig:"CHART_TTL" default:"24h"`
	PanchangTTL  time.Duration `envconfig:"PANCHANG_TTL" default:"25h"`
	HoroscopeTTL time.Duration `envconfig:"HOROSCOPE_TTL" default:"25h"`
	// SnapshotPrefix префикс ключей снапшотов карт в S3
	SnapshotPrefix string        `envconfig:"SNAPSHOT_PREFIX" default:"charts"`
	SnapshotURLTTL time.Duration `envconfig:"SNAPSHOT_URL_TTL" default:"15m"`
}

// Service бизнес-логика расчётного сервиса.
// Cache, Snapshots и Producer необязательны: без них операции работают, пропуская соответствующий шаг.
type Service struct {
	Engine      service.IEngineService
	ProfileRepo repository.IProfileRepo
	Cache       cache.Cache
	Snapshots   storage.IS3Client
	Producer    kafka.IKafkaProducer
	Log         *slog.Logger

	cfg Config
	now func() time.Time
}

func New(
	cfg Config,
	engine service.IEngineService,
	profileRepo repository.IProfileRepo,
	cache cache.Cache,
	snapshots storage.IS3Client,
	producer kafka.IKafkaProducer,
	log *slog.Logger,
) *Service {
	return &Service{
		Engine:      engine,
		ProfileRepo: profileRepo,
		Cache:       cache,
		Snapshots:   snapshots,
		Producer:    producer,
		Log:         log,
		cfg:         cfg,
		now:         time.Now,
	}
}

var _ usecase.IAstroUsecase = (*Service)(nil)
