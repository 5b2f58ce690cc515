package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

type Config struct {
	Env  string `validate:"required,oneof=development stage production"`
	Http Http

	Cors CORS `validate:"required"`

	Storage Storage `validate:"required"`

	Kafka Kafka

	// Postgres проверяется только для драйвера postgres, см. Validate
	Postgres Postgres `validate:"-"`

	Cache Cache

	Redis Redis
}

type Http struct {
	Host           string        `validate:"required,hostname|ip"`
	Port           string        `validate:"required,numeric"`
	RequestTimeout time.Duration `validate:"gt=0"`
}

type Storage struct {
	Driver   string `validate:"required,oneof=postgres memory"`
	SeedFile string `validate:"omitempty,file"`
}

type Kafka struct {
	// пустой список брокеров отключает kafka: события пишутся в лог, синхронизации клиентов нет
	Brokers []string `validate:"omitempty,dive,hostname_port"`
	GroupID string   `validate:"required_with=Brokers"`

	CustomersTopic string `validate:"required_with=Brokers"`
	EventsTopic    string `validate:"required_with=Brokers"`

	ReaderMaxWait time.Duration `validate:"gte=0"`
	BatchTimeout  time.Duration `validate:"gte=0"`
}

type Postgres struct {
	Host     string `validate:"required,hostname|ip"`
	Port     int    `validate:"required,gt=0,lte=65535"`
	DBName   string `validate:"required"`
	User     string `validate:"required"`
	Password string `validate:"required"`

	SSLMode string `validate:"required,oneof=disable require verify-ca verify-full"`

	MaxOpenConns    int           `validate:"gte=1"`
	MaxIdleConns    int           `validate:"gte=0"`
	ConnMaxLifetime time.Duration `validate:"gte=0"`
}

type CORS struct {
	AllowedOrigins []string `validate:"required,min=1,dive,url"`
}

type Cache struct {
	Capacity int           `validate:"gte=0"`
	TTL      time.Duration `validate:"gt=0"`
}

type Redis struct {
	// пустой адрес отключает поддержку Idempotency-Key
	Addr           string        `validate:"omitempty,hostname_port"`
	Password       string        `validate:"-"`
	DB             int           `validate:"gte=0"`
	IdempotencyTTL time.Duration `validate:"gt=0"`
}

func New() Config {
	return Config{
		Env: env("ENV", "development"),

		Http: Http{
			Host:           env("HOST", "localhost"),
			Port:           env("PORT", "8080"),
			RequestTimeout: envDuration("REQUEST_TIMEOUT", 10*time.Second),
		},

		Cors: CORS{
			AllowedOrigins: strings.Split(env("ALLOWED_CORS_ORIGINS", "http://localhost:3000,http://localhost:3001"), ","),
		},

		Storage: Storage{
			Driver:   env("STORAGE_DRIVER", StorageDriverPostgres),
			SeedFile: env("SEED_FILE", ""),
		},

		Kafka: Kafka{
			Brokers:        envList("KAFKA_BROKERS"),
			GroupID:        env("KAFKA_GROUP_ID", "tractor-order-service"),
			CustomersTopic: env("KAFKA_CUSTOMERS_TOPIC", "customers"),
			EventsTopic:    env("KAFKA_EVENTS_TOPIC", "order-events"),

			ReaderMaxWait: envDuration("KAFKA_READER_MAX_WAIT", 10*time.Millisecond),
			BatchTimeout:  envDuration("KAFKA_BATCH_TIMEOUT", 10*time.Millisecond),
		},

		Postgres: Postgres{
			Port:     envInt("POSTGRES_PORT", 5432),
			Host:     env("POSTGRES_HOST", "localhost"),
			DBName:   env("POSTGRES_DB", "orders"),
			User:     env("POSTGRES_USER", ""),
			Password: env("POSTGRES_PASSWORD", ""),

			SSLMode: env("POSTGRES_SSL_MODE", "disable"),

			MaxOpenConns:    envInt("POSTGRES_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    envInt("POSTGRES_MAX_IDLE_CONNS", 25),
			ConnMaxLifetime: envDuration("POSTGRES_CONN_MAX_LIFETIME", 5*time.Minute),
		},

		Cache: Cache{
			Capacity: envInt("CACHE_CAPACITY", 1000),
			TTL:      envDuration("CACHE_TTL", 10*time.Minute),
		},

		Redis: Redis{
			Addr:           env("REDIS_ADDR", ""),
			Password:       env("REDIS_PASSWORD", ""),
			DB:             envInt("REDIS_DB", 0),
			IdempotencyTTL: envDuration("IDEMPOTENCY_TTL", 24*time.Hour),
		},
	}
}

func (c Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return err
	}
	if c.Storage.Driver == StorageDriverPostgres {
		return c.Postgres.Validate()
	}
	return nil
}

func (p Postgres) Validate() error {
	return validator.New().Struct(p)
}

func env(key string, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func envList(key string) []string {
	value := env(key, "")
	if value == "" {
		return nil
	}
	return strings.Split(value, ",")
}

func envInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		i, err := strconv.Atoi(value)
		if err == nil {
			return i
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return fallback
}
