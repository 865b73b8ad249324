package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type AppCfg struct {
	Name string
	Env  string
	Host string
	Port int
}

type LogCfg struct {
	Level  string
	Format string // json or console
}

type DBCfg struct {
	Name        string
	DSN         string
	MaxOpen     int
	MaxIdle     int
	AutoMigrate bool
}

type RedisCfg struct {
	Addr     string
	Password string
	DB       int
	PoolSize int
	TTLSec   int
}

type MQCfg struct {
	URL      string
	Exchange string
}

type S3Cfg struct {
	Endpoint         string
	Region           string
	AccessKey        string
	SecretKey        string
	Bucket           string
	UsePathStyle     bool
	PresignExpireSec int
	SSE              string
}

type TelemetryCfg struct {
	Enabled      bool
	OtlpEndpoint string
	SampleRatio  float64
}

type Config struct {
	App       AppCfg
	Log       LogCfg
	Database  DBCfg
	Redis     RedisCfg
	RabbitMQ  MQCfg
	S3        S3Cfg
	Telemetry TelemetryCfg
}

// Load reads configs/config.yaml or ./config.yaml when present, expanding
// ${ENV} references, then applies APP_* environment overrides
// (APP_DATABASE_DSN -> database.dsn) on top of the defaults.
func Load() (*Config, error) {
	return LoadFrom("./configs", ".")
}

func LoadFrom(paths ...string) (*Config, error) {
	base := newViper()
	base.SetConfigName("config")
	for _, p := range paths {
		base.AddConfigPath(p)
	}

	v := base
	if err := base.ReadInConfig(); err == nil {
		raw, err := os.ReadFile(base.ConfigFileUsed())
		if err != nil {
			return nil, err
		}
		v = newViper()
		if err := v.ReadConfig(bytes.NewBufferString(os.ExpandEnv(string(raw)))); err != nil {
			return nil, err
		}
	} else {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := new(Config)
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetEnvPrefix("APP")
	setDefaults(v)
	return v
}

func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return errors.New("database.dsn is required")
	}
	if c.App.Port <= 0 {
		return fmt.Errorf("invalid app.port %d", c.App.Port)
	}
	return nil
}

// PresignExpire is how long export download links stay valid.
func (c *Config) PresignExpire() time.Duration {
	if c.S3.PresignExpireSec <= 0 {
		return 15 * time.Minute
	}
	return time.Duration(c.S3.PresignExpireSec) * time.Second
}

// CacheTTL is the lifetime of cached product type lists.
func (c *Config) CacheTTL() time.Duration {
	if c.Redis.TTLSec <= 0 {
		return 5 * time.Minute
	}
	return time.Duration(c.Redis.TTLSec) * time.Second
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "project-tracker")
	v.SetDefault("app.env", "debug")
	v.SetDefault("app.host", "0.0.0.0")
	v.SetDefault("app.port", 8080)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("database.name", "project-tracker")
	v.SetDefault("database.dsn", "host=localhost user=postgres password=postgres dbname=project_tracker port=5432 sslmode=disable")
	v.SetDefault("database.maxOpen", 20)
	v.SetDefault("database.maxIdle", 5)
	v.SetDefault("database.autoMigrate", true)
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.poolSize", 10)
	v.SetDefault("redis.ttlSec", 300)
	v.SetDefault("rabbitmq.url", "")
	v.SetDefault("rabbitmq.exchange", "project_tracker.events")
	v.SetDefault("s3.bucket", "")
	v.SetDefault("s3.region", "auto")
	v.SetDefault("s3.usePathStyle", true)
	v.SetDefault("s3.presignExpireSec", 900)
	v.SetDefault("telemetry.enabled", false)
	v.SetDefault("telemetry.sampleRatio", 1.0)
}
