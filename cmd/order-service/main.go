package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/boutique/internal/app"
	"github.com/vladislavdragonenkov/boutique/internal/version"
)

const (
	envGRPCAddr            = "BOUTIQUE_GRPC_ADDR"
	envHTTPAddr            = "BOUTIQUE_HTTP_ADDR"
	envMetricsAddr         = "BOUTIQUE_METRICS_ADDR"
	envStorageDriver       = "BOUTIQUE_STORAGE_DRIVER"
	envPostgresDSN         = "BOUTIQUE_POSTGRES_DSN"
	envPostgresAutoMigrate = "BOUTIQUE_POSTGRES_AUTO_MIGRATE"
	envCatalogSeed         = "BOUTIQUE_CATALOG_SEED"
	envKafkaBrokers        = "KAFKA_BROKERS"
	envOrderEventsTopic    = "BOUTIQUE_ORDER_EVENTS_TOPIC"
	envOutboxPollInterval  = "BOUTIQUE_OUTBOX_POLL_INTERVAL"
	envOutboxBatchSize     = "BOUTIQUE_OUTBOX_BATCH_SIZE"
	envOutboxMaxAttempts   = "BOUTIQUE_OUTBOX_MAX_ATTEMPTS"
	envOutboxRetryDelay    = "BOUTIQUE_OUTBOX_RETRY_DELAY"
	envOutboxMaxLag        = "BOUTIQUE_OUTBOX_MAX_LAG"
	envOutboxParallelism   = "BOUTIQUE_OUTBOX_PARALLELISM"
	envLogLevel            = "BOUTIQUE_LOG_LEVEL"
)

type envLookup func(key string) (string, bool)

// setupLogger настраивает формат и уровень логирования для сервиса.
func setupLogger(lookup envLookup) {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	log.SetLevel(log.InfoLevel)

	raw, ok := lookup(envLogLevel)
	if !ok || strings.TrimSpace(raw) == "" {
		return
	}
	level, err := log.ParseLevel(strings.TrimSpace(raw))
	if err != nil {
		log.WithError(err).WithField("env", envLogLevel).Warn("invalid log level, keeping info")
		return
	}
	log.SetLevel(level)
}

// readConfigFromEnv накладывает переменные окружения на DefaultConfig.
// Некорректные значения не применяются и возвращаются как предупреждения.
func readConfigFromEnv(lookup envLookup) (app.Config, []string) {
	cfg := app.DefaultConfig()
	var warnings []string
	warn := func(key, raw string, err error) {
		warnings = append(warnings, fmt.Sprintf("%s=%q ignored: %v", key, raw, err))
	}

	setString := func(key string, target *string) {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			*target = strings.TrimSpace(v)
		}
	}
	setString(envGRPCAddr, &cfg.GRPCAddr)
	setString(envHTTPAddr, &cfg.HTTPAddr)
	setString(envMetricsAddr, &cfg.MetricsAddr)
	setString(envPostgresDSN, &cfg.PostgresDSN)
	setString(envCatalogSeed, &cfg.CatalogSeedPath)
	setString(envKafkaBrokers, &cfg.KafkaBrokers)
	setString(envOrderEventsTopic, &cfg.OrderEventsTopic)

	if v, ok := lookup(envStorageDriver); ok && strings.TrimSpace(v) != "" {
		cfg.StorageDriver = strings.ToLower(strings.TrimSpace(v))
	}

	if v, ok := lookup(envPostgresAutoMigrate); ok {
		parsed, err := parseBool(v)
		if err != nil {
			warn(envPostgresAutoMigrate, v, err)
		} else {
			cfg.PostgresAutoMigrate = parsed
		}
	}

	positiveInt := func(v int) bool { return v > 0 }
	positiveDuration := func(v time.Duration) bool { return v > 0 }
	nonNegativeDuration := func(v time.Duration) bool { return v >= 0 }

	durations := []struct {
		key    string
		target *time.Duration
		valid  func(time.Duration) bool
		rule   string
	}{
		{envOutboxPollInterval, &cfg.OutboxPollInterval, positiveDuration, "must be > 0"},
		{envOutboxRetryDelay, &cfg.OutboxRetryDelay, nonNegativeDuration, "must be >= 0"},
		{envOutboxMaxLag, &cfg.OutboxMaxLag, positiveDuration, "must be > 0"},
	}
	for _, d := range durations {
		v, ok := lookup(d.key)
		if !ok {
			continue
		}
		parsed, err := parseDuration(v, d.valid, d.rule)
		if err != nil {
			warn(d.key, v, err)
			continue
		}
		*d.target = parsed
	}

	ints := []struct {
		key    string
		target *int
	}{
		{envOutboxBatchSize, &cfg.OutboxBatchSize},
		{envOutboxMaxAttempts, &cfg.OutboxMaxAttempts},
		{envOutboxParallelism, &cfg.OutboxParallelism},
	}
	for _, i := range ints {
		v, ok := lookup(i.key)
		if !ok {
			continue
		}
		parsed, err := parseInt(v, positiveInt, "must be > 0")
		if err != nil {
			warn(i.key, v, err)
			continue
		}
		*i.target = parsed
	}

	return cfg, warnings
}

func parseBool(raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "yes", "on":
		return true, nil
	case "0", "false", "no", "off":
		return false, nil
	default:
		return false, fmt.Errorf("invalid bool value %q", raw)
	}
}

func parseInt(raw string, valid func(int) bool, rule string) (int, error) {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, err
	}
	if !valid(value) {
		return 0, errors.New(rule)
	}
	return value, nil
}

func parseDuration(raw string, valid func(time.Duration) bool, rule string) (time.Duration, error) {
	value, err := time.ParseDuration(strings.TrimSpace(raw))
	if err != nil {
		return 0, err
	}
	if !valid(value) {
		return 0, errors.New(rule)
	}
	return value, nil
}

func main() {
	setupLogger(os.LookupEnv)
	cfg, warnings := readConfigFromEnv(os.LookupEnv)
	for _, warning := range warnings {
		log.Warn(warning)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.WithFields(log.Fields{
		"version":        version.String(),
		"grpc_addr":      cfg.GRPCAddr,
		"http_addr":      cfg.HTTPAddr,
		"metrics_addr":   cfg.MetricsAddr,
		"storage_driver": cfg.StorageDriver,
		"kafka_enabled":  cfg.KafkaBrokers != "",
	}).Info("запускаем OrderService")

	if err := app.Run(ctx, cfg); err != nil && !errors.Is(err, context.Canceled) {
		log.WithError(err).Fatal("приложение завершилось с ошибкой")
	}

	log.Info("OrderService остановлен")
}
