package app

import (
	"context"
	"fmt"
	"net/http"

	server "github.com/admin/astro-services/jyotish/internal/adapters/primary/http"
	astroController "github.com/admin/astro-services/jyotish/internal/adapters/primary/http/controllers/astro"
	healthcheckController "github.com/admin/astro-services/jyotish/internal/adapters/primary/http/controllers/healthcheck"
	kafkaConsumerAdapter "github.com/admin/astro-services/jyotish/internal/adapters/primary/kafka"
	kafkaHandlers "github.com/admin/astro-services/jyotish/internal/adapters/primary/kafka/handlers"
	alerterAdapter "github.com/admin/astro-services/jyotish/internal/adapters/secondary/alerter"
	kafkaAdapter "github.com/admin/astro-services/jyotish/internal/adapters/secondary/kafka"
	"github.com/admin/astro-services/jyotish/internal/adapters/secondary/storage/inmemory"
	"github.com/admin/astro-services/jyotish/internal/adapters/secondary/storage/pg"
	redisAdapter "github.com/admin/astro-services/jyotish/internal/adapters/secondary/storage/redis"
	s3Adapter "github.com/admin/astro-services/jyotish/internal/adapters/secondary/storage/s3"
	"github.com/admin/astro-services/jyotish/internal/ports/cache"
	"github.com/admin/astro-services/jyotish/internal/ports/kafka"
	"github.com/admin/astro-services/jyotish/internal/ports/storage"
	profileRepo "github.com/admin/astro-services/jyotish/internal/repository/profile"
	"github.com/admin/astro-services/jyotish/internal/services/engine"
	jobScheduler "github.com/admin/astro-services/jyotish/internal/services/jobs"
	astroUsecase "github.com/admin/astro-services/jyotish/internal/usecases/astro"
)

type Dependencies struct {
	DB             *pg.DB
	HTTPServer     *http.Server
	KafkaProducers map[string]*kafkaAdapter.Producer
	KafkaConsumers map[string]*kafkaConsumerAdapter.Consumer
	Cache          cache.Cache
	JobScheduler   *jobScheduler.Scheduler
}

// initDependencies инициализирует все зависимости приложения.
// Postgres обязателен, Redis, S3 и Kafka опциональны
func (a *App) initDependencies(ctx context.Context) (*Dependencies, error) {
	db, err := a.initPostgres(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to init postgres: %w", err)
	}

	external := a.initExternalServices(ctx)
	producers := a.initKafkaProducers()

	var chartEvents kafka.IKafkaProducer
	if prod, ok := producers[kafkaAdapter.ChartEventsName]; ok {
		chartEvents = prod
	}

	engineService := engine.New(a.Cfg.Engine, a.Log)
	astroService := astroUsecase.New(
		a.Cfg.Usecase,
		engineService,
		profileRepo.New(db, a.Log),
		external.Cache,
		external.Snapshots, // может быть nil
		chartEvents,        // может быть nil
		a.Log,
	)

	consumers := a.initKafkaConsumers(astroService, chartEvents != nil)
	httpServer := a.initHTTP(db, external, astroService)

	scheduler, err := a.initJobScheduler(astroService)
	if err != nil {
		return nil, fmt.Errorf("failed to init job scheduler: %w", err)
	}

	return &Dependencies{
		DB:             db,
		HTTPServer:     httpServer,
		KafkaProducers: producers,
		KafkaConsumers: consumers,
		Cache:          external.Cache,
		JobScheduler:   scheduler,
	}, nil
}

func (a *App) initPostgres(ctx context.Context) (*pg.DB, error) {
	conn, err := a.Cfg.Postgres.NewConnection()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	a.Log.Info("postgres connected successfully")

	if a.Cfg.Postgres.RunMigrations {
		if err := pg.NewMigrator(conn, a.Log).Run(ctx); err != nil {
			_ = conn.Close()
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	return pg.NewDB(conn), nil
}

// externalServices содержит внешние сервисы (опциональные)
type externalServices struct {
	Cache       cache.Cache
	Snapshots   storage.IS3Client
	redisClient *redisAdapter.Client
}

// initExternalServices поднимает кэш и архив снапшотов, при ошибке работаем без них
func (a *App) initExternalServices(ctx context.Context) *externalServices {
	services := &externalServices{}

	if a.Cfg.Cache == CacheRedis {
		client, err := a.Cfg.Redis.NewConnection(ctx)
		if err != nil {
			a.Log.Warn("failed to init redis cache, falling back to in-memory cache", "error", err)
		} else {
			services.redisClient = redisAdapter.NewClient(client, a.Cfg.Redis.KeyPrefix)
			services.Cache = services.redisClient
			a.Log.Info("redis cache connected successfully")
		}
	}
	if services.Cache == nil {
		memory := inmemory.NewCache()
		memory.StartJanitor(ctx, a.Cfg.CacheSweepInterval)
		services.Cache = memory
		a.Log.Info("using in-memory cache", "sweep_interval", a.Cfg.CacheSweepInterval)
	}

	if !a.Cfg.S3.Enabled() {
		a.Log.Warn("s3 is not configured, chart snapshots will not be archived")
		return services
	}
	mc, err := a.Cfg.S3.NewClient(ctx)
	if err != nil {
		a.Log.Warn("failed to init s3, continuing without snapshot archive", "error", err)
		return services
	}
	services.Snapshots = s3Adapter.NewClient(mc, a.Cfg.S3.Bucket, a.Log)
	a.Log.Info("s3 connected successfully", "bucket", a.Cfg.S3.Bucket)

	return services
}

// initKafkaProducers producer на каждое подключение с topic и без consumer group
func (a *App) initKafkaProducers() map[string]*kafkaAdapter.Producer {
	producers := make(map[string]*kafkaAdapter.Producer)
	for _, kafkaCfg := range a.Cfg.Kafka.List {
		if kafkaCfg.Config.Topic == "" || kafkaCfg.Config.ConsumerGroup != "" {
			continue
		}
		prod, err := kafkaAdapter.NewProducer(kafkaCfg.Config, a.Log)
		if err != nil {
			a.Log.Warn("failed to create kafka producer", "error", err, "name", kafkaCfg.Name)
			continue
		}
		producers[kafkaCfg.Name] = prod
	}
	return producers
}

func (a *App) initKafkaConsumers(astroService *astroUsecase.Service, canReply bool) map[string]*kafkaConsumerAdapter.Consumer {
	consumers := make(map[string]*kafkaConsumerAdapter.Consumer)
	for _, kafkaCfg := range a.Cfg.Kafka.List {
		if kafkaCfg.Config.ConsumerGroup == "" {
			continue
		}
		if kafkaCfg.Name != kafkaAdapter.ChartRequestsName {
			a.Log.Warn("no handler for kafka topic, skipping consumer", "name", kafkaCfg.Name)
			continue
		}
		if !canReply {
			a.Log.Warn("chart events producer is not configured, skipping chart requests consumer")
			continue
		}

		handler := kafkaHandlers.NewChartRequestHandler(astroService, a.Log)
		consumer, err := kafkaConsumerAdapter.NewConsumer(kafkaCfg.Config, handler, a.Log)
		if err != nil {
			a.Log.Warn("failed to create kafka consumer", "error", err, "name", kafkaCfg.Name)
			continue
		}
		consumers[kafkaCfg.Name] = consumer
	}
	return consumers
}

// initHTTP инициализирует HTTP сервер и контроллеры
func (a *App) initHTTP(db *pg.DB, external *externalServices, astroService *astroUsecase.Service) *http.Server {
	checks := map[string]healthcheckController.Pinger{"postgres": db}
	if external.redisClient != nil {
		checks["redis"] = external.redisClient
	}

	controllers := []server.Controller{
		healthcheckController.New(a.Log, checks),
		astroController.New(astroService, a.Log),
	}

	return server.NewHTTPServer(a.Cfg.Server, a.Log, controllers...)
}

// initJobScheduler регистрирует прогрев кэша, nil если джобы выключены
func (a *App) initJobScheduler(astroService *astroUsecase.Service) (*jobScheduler.Scheduler, error) {
	if !a.Cfg.Jobs.Enabled {
		a.Log.Info("jobs are disabled")
		return nil, nil
	}

	locations, err := a.Cfg.WarmLocations()
	if err != nil {
		return nil, err
	}

	scheduler := jobScheduler.NewScheduler(a.Log, a.Cfg.Jobs.RunOnStart)
	if client := alerterAdapter.NewClient(a.Cfg.Alerter, a.Log); client != nil {
		scheduler.WithAlerter(client)
		a.Log.Info("job failure alerts enabled", "chat_id", a.Cfg.Alerter.ChatID)
	}
	if len(locations) > 0 {
		scheduler.Register(jobScheduler.NewPanchangWarmer(astroService, locations, a.Cfg.Jobs, a.Log))
		a.Log.Info("panchang warmer job registered", "locations", len(locations))
	}
	scheduler.Register(jobScheduler.NewHoroscopeWarmer(astroService, a.Cfg.Jobs, a.Log))
	a.Log.Info("horoscope warmer job registered")

	return scheduler, nil
}
