package redis

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"time"

	"github.com/redis/go-redis/v9"
)

type Config struct {
	// URL redis[s]://user:pass@host:port/db, если задан, имеет приоритет над Host/Port
	URL      string `envconfig:"URL"`
	Host     string `envconfig:"HOST" default:"localhost"`
	Port     string `envconfig:"PORT" default:"6379"`
	Username string `envconfig:"USERNAME"`
	Password string `envconfig:"PASSWORD"`
	Database int    `envconfig:"DATABASE" default:"0"`
	TLS      bool   `envconfig:"TLS"`

	MaxRetries      int           `envconfig:"MAX_RETRIES" default:"3"`
	DialTimeout     time.Duration `envconfig:"DIAL_TIMEOUT" default:"5s"`
	ReadTimeout     time.Duration `envconfig:"READ_TIMEOUT" default:"3s"`
	WriteTimeout    time.Duration `envconfig:"WRITE_TIMEOUT" default:"3s"`
	PoolSize        int           `envconfig:"POOL_SIZE" default:"10"`
	MinIdleConns    int           `envconfig:"MIN_IDLE_CONNS" default:"2"`
	ConnMaxLifetime time.Duration `envconfig:"CONN_MAX_LIFETIME" default:"30m"`
	ConnMaxIdleTime time.Duration `envconfig:"CONN_MAX_IDLE_TIME" default:"5m"`

	// KeyPrefix общий префикс ключей кэша, чтобы делить инстанс с другими сервисами
	KeyPrefix string `envconfig:"KEY_PREFIX" default:"jyotish:"`
}

func (c *Config) options() (*redis.Options, error) {
	opts := &redis.Options{
		Addr:     net.JoinHostPort(c.Host, c.Port),
		Username: c.Username,
		Password: c.Password,
		DB:       c.Database,
	}
	if c.URL != "" {
		parsed, err := redis.ParseURL(c.URL)
		if err != nil {
			return nil, fmt.Errorf("invalid redis url: %w", err)
		}
		opts = parsed
	}
	if c.TLS && opts.TLSConfig == nil {
		opts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}

	opts.MaxRetries = c.MaxRetries
	opts.DialTimeout = c.DialTimeout
	opts.ReadTimeout = c.ReadTimeout
	opts.WriteTimeout = c.WriteTimeout
	opts.PoolSize = c.PoolSize
	opts.MinIdleConns = c.MinIdleConns
	opts.ConnMaxLifetime = c.ConnMaxLifetime
	opts.ConnMaxIdleTime = c.ConnMaxIdleTime
	return opts, nil
}

// NewConnection создаёт подключение к Redis и проверяет его через PING
func (c *Config) NewConnection(ctx context.Context) (*redis.Client, error) {
	opts, err := c.options()
	if err != nil {
		return nil, err
	}
	rdb := redis.NewClient(opts)

	timeout := c.DialTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping %s failed: %w", opts.Addr, err)
	}

	return rdb, nil
}
