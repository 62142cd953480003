package app

import (
	"fmt"
	"time"

	server "github.com/admin/astro-services/jyotish/internal/adapters/primary/http"
	alerterAdapter "github.com/admin/astro-services/jyotish/internal/adapters/secondary/alerter"
	kafkaAdapter "github.com/admin/astro-services/jyotish/internal/adapters/secondary/kafka"
	"github.com/admin/astro-services/jyotish/internal/adapters/secondary/storage/pg"
	"github.com/admin/astro-services/jyotish/internal/adapters/secondary/storage/redis"
	"github.com/admin/astro-services/jyotish/internal/adapters/secondary/storage/s3"
	"github.com/admin/astro-services/jyotish/internal/domain"
	"github.com/admin/astro-services/jyotish/internal/pkg/logger"
	"github.com/admin/astro-services/jyotish/internal/services/engine"
	"github.com/admin/astro-services/jyotish/internal/services/jobs"
	astroUsecase "github.com/admin/astro-services/jyotish/internal/usecases/astro"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	CacheRedis  = "redis"
	CacheMemory = "memory"
)

type Config struct {
	Postgres *pg.Config                `envconfig:"POSTGRES"`
	Log      *logger.Config            `envconfig:"LOG"`
	Server   *server.Config            `envconfig:"APISERVER"`
	Redis    *redis.Config             `envconfig:"REDIS"`
	S3       *s3.Config                `envconfig:"S3"`
	Kafka    kafkaAdapter.KafkaConfigs `envconfig:"KAFKA"`
	Engine   engine.Config             `envconfig:"ENGINE"`
	Usecase  astroUsecase.Config       `envconfig:"USECASE"`
	Jobs     jobs.Config               `envconfig:"JOBS"`
	Alerter  *alerterAdapter.Config    `envconfig:"ALERTER"`
	// Cache "redis" или "memory"; при недоступном Redis используется память процесса
	Cache string `envconfig:"CACHE" default:"redis"`
	// CacheSweepInterval период очистки просроченных записей кэша в памяти
	CacheSweepInterval time.Duration `envconfig:"CACHE_SWEEP_INTERVAL" default:"10m"`
}

func NewEnvConfig(envPrefix string) (*Config, error) {
	cfg := &Config{}

	_ = godotenv.Load("deployments/local/.env")

	if err := envconfig.Process(envPrefix, cfg); err != nil {
		return nil, err
	}

	// Загружаем Kafka конфигурацию вручную (envconfig не умеет автоматически определять размер слайса)
	if err := cfg.Kafka.Load(envPrefix); err != nil {
		return nil, fmt.Errorf("failed to load kafka config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Cache != CacheRedis && c.Cache != CacheMemory {
		return fmt.Errorf("unknown cache backend %q", c.Cache)
	}
	if c.Jobs.Hour < 0 || c.Jobs.Hour > 23 || c.Jobs.Minute < 0 || c.Jobs.Minute > 59 {
		return fmt.Errorf("jobs time %02d:%02d is out of range", c.Jobs.Hour, c.Jobs.Minute)
	}
	if _, err := c.WarmLocations(); err != nil {
		return err
	}
	for _, k := range c.Kafka.List {
		if k.Name == "" {
			return fmt.Errorf("kafka connection without name")
		}
	}
	return nil
}

// WarmLocations места для прогрева панчанги
func (c *Config) WarmLocations() ([]domain.Location, error) {
	if c.Jobs.Locations == "" {
		return nil, nil
	}
	locations, err := domain.ParseLocations(c.Jobs.Locations)
	if err != nil {
		return nil, fmt.Errorf("failed to parse jobs locations: %w", err)
	}
	return locations, nil
}
