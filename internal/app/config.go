package app

import (
	"time"

	"github.com/vladislavdragonenkov/boutique/internal/messaging/kafka"
)

const (
	// StorageDriverMemory хранит заказы в памяти процесса.
	StorageDriverMemory = "memory"
	// StorageDriverPostgres хранит заказы в PostgreSQL.
	StorageDriverPostgres = "postgres"
)

// Config описывает настройки запуска сервиса заказов.
type Config struct {
	GRPCAddr    string
	HTTPAddr    string
	MetricsAddr string

	StorageDriver       string
	PostgresDSN         string
	PostgresAutoMigrate bool
	// CatalogSeedPath указывает YAML-файл с клиентами и товарами. Пустой путь означает встроенный каталог.
	CatalogSeedPath string

	// KafkaBrokers перечисляет брокеры через запятую. Пустая строка отключает Kafka.
	KafkaBrokers     string
	OrderEventsTopic string

	OutboxPollInterval time.Duration
	OutboxBatchSize    int
	OutboxMaxAttempts  int
	OutboxRetryDelay   time.Duration
	// OutboxParallelism — число заказов, события которых worker публикует одновременно.
	OutboxParallelism int
	// OutboxMaxLag — возраст самого старого pending-события, после которого /healthz деградирует.
	OutboxMaxLag time.Duration

	ShutdownTimeout time.Duration
}

// DefaultConfig возвращает настройки для локального запуска.
func DefaultConfig() Config {
	return Config{
		GRPCAddr:            ":50051",
		HTTPAddr:            ":8080",
		MetricsAddr:         ":9090",
		StorageDriver:       StorageDriverMemory,
		PostgresAutoMigrate: true,
		OrderEventsTopic:    kafka.TopicOrderEvents,
		OutboxPollInterval:  time.Second,
		OutboxBatchSize:     100,
		OutboxMaxAttempts:   3,
		OutboxRetryDelay:    50 * time.Millisecond,
		OutboxParallelism:   4,
		OutboxMaxLag:        time.Minute,
		ShutdownTimeout:     5 * time.Second,
	}
}
