package config

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	sharedcfg "github.com/couchcryptid/storm-data-shared/config"
)

// Compression codecs accepted by KAFKA_COMPRESSION.
var compressionCodecs = []string{"none", "gzip", "snappy", "lz4", "zstd"}

// Config holds all service settings, populated from environment variables.
type Config struct {
	KafkaBrokers     []string
	KafkaSourceTopic string
	KafkaSinkTopic   string
	KafkaGroupID     string
	KafkaMaxBytes    int
	// KafkaCompression is the codec used for sink messages.
	KafkaCompression string

	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	BatchSize          int
	BatchFlushInterval time.Duration

	// RejectNonCanonical fails records whose input line differs from its
	// re-encoding instead of publishing them with canonical=false.
	RejectNonCanonical bool
}

// Load reads configuration from environment variables, applying defaults
// where unset, and validates the result.
func Load() (*Config, error) {
	cfg := &Config{
		KafkaBrokers:     sharedcfg.ParseBrokers(sharedcfg.EnvOrDefault("KAFKA_BROKERS", "localhost:9092")),
		KafkaSourceTopic: sharedcfg.EnvOrDefault("KAFKA_SOURCE_TOPIC", "raw-imma-records"),
		KafkaSinkTopic:   sharedcfg.EnvOrDefault("KAFKA_SINK_TOPIC", "decoded-marine-observations"),
		KafkaGroupID:     sharedcfg.EnvOrDefault("KAFKA_GROUP_ID", "imma-etl"),
		KafkaCompression: strings.ToLower(sharedcfg.EnvOrDefault("KAFKA_COMPRESSION", "snappy")),
		HTTPAddr:         sharedcfg.EnvOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:         sharedcfg.EnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:        sharedcfg.EnvOrDefault("LOG_FORMAT", "json"),
	}

	var err error
	if cfg.ShutdownTimeout, err = sharedcfg.ParseShutdownTimeout(); err != nil {
		return nil, err
	}
	if cfg.BatchSize, err = sharedcfg.ParseBatchSize(); err != nil {
		return nil, err
	}
	if cfg.BatchFlushInterval, err = sharedcfg.ParseBatchFlushInterval(); err != nil {
		return nil, err
	}
	if cfg.KafkaMaxBytes, err = parsePositiveInt("KAFKA_MAX_BYTES", "10000000"); err != nil {
		return nil, err
	}
	if cfg.RejectNonCanonical, err = parseBool("REJECT_NON_CANONICAL", "false"); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings that cannot be caught while parsing a single
// variable.
func (c *Config) Validate() error {
	var errs []error
	if len(c.KafkaBrokers) == 0 {
		errs = append(errs, errors.New("KAFKA_BROKERS is required"))
	}
	if c.KafkaSourceTopic == "" {
		errs = append(errs, errors.New("KAFKA_SOURCE_TOPIC is required"))
	}
	if c.KafkaSinkTopic == "" {
		errs = append(errs, errors.New("KAFKA_SINK_TOPIC is required"))
	}
	if c.KafkaSourceTopic != "" && c.KafkaSourceTopic == c.KafkaSinkTopic {
		errs = append(errs, errors.New("KAFKA_SOURCE_TOPIC and KAFKA_SINK_TOPIC must differ"))
	}
	if !slices.Contains(compressionCodecs, c.KafkaCompression) {
		errs = append(errs, fmt.Errorf("invalid KAFKA_COMPRESSION %q: want one of %s",
			c.KafkaCompression, strings.Join(compressionCodecs, ", ")))
	}
	return errors.Join(errs...)
}

func parsePositiveInt(key, def string) (int, error) {
	s := sharedcfg.EnvOrDefault(key, def)
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid %s: %q", key, s)
	}
	return n, nil
}

func parseBool(key, def string) (bool, error) {
	b, err := strconv.ParseBool(sharedcfg.EnvOrDefault(key, def))
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return b, nil
}
