package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"sales/internal/pkg/errs"
)

type Config struct {
	HTTPPort               string
	DBHost                 string
	DBPort                 string
	DBUser                 string
	DBPassword             string
	DBName                 string
	DBSslMode              string
	KafkaHost              string
	KafkaConsumerGroup     string
	KafkaOrderPlacedTopic  string
	KafkaOrderChangedTopic string
	KafkaInboundTopic      string
	CatalogFile            string
	LogMode                string
	RelayBatchSize         int
	OutboxRetention        time.Duration
}

const (
	defaultHTTPPort        = "8080"
	defaultDBSslMode       = "disable"
	defaultCatalogFile     = "configs/catalog.yaml"
	defaultRelayBatchSize  = 100
	defaultOutboxRetention = 7 * 24 * time.Hour
)

// LoadConfig reads the configuration through getenv. Optional keys fall back
// to defaults; missing required keys are reported together.
func LoadConfig(getenv func(string) string) (Config, error) {
	c := Config{
		HTTPPort:               valueOr(getenv("HTTP_PORT"), defaultHTTPPort),
		DBHost:                 getenv("DB_HOST"),
		DBPort:                 getenv("DB_PORT"),
		DBUser:                 getenv("DB_USER"),
		DBPassword:             getenv("DB_PASSWORD"),
		DBName:                 getenv("DB_NAME"),
		DBSslMode:              valueOr(getenv("DB_SSLMODE"), defaultDBSslMode),
		KafkaHost:              getenv("KAFKA_HOST"),
		KafkaConsumerGroup:     getenv("KAFKA_CONSUMER_GROUP"),
		KafkaOrderPlacedTopic:  getenv("KAFKA_ORDER_PLACED_TOPIC"),
		KafkaOrderChangedTopic: getenv("KAFKA_ORDER_CHANGED_TOPIC"),
		KafkaInboundTopic:      getenv("KAFKA_INBOUND_ORDERS_TOPIC"),
		CatalogFile:            valueOr(getenv("CATALOG_FILE"), defaultCatalogFile),
		LogMode:                getenv("LOG_MODE"),
		RelayBatchSize:         defaultRelayBatchSize,
		OutboxRetention:        defaultOutboxRetention,
	}

	var problems []error
	for key, value := range map[string]string{
		"DB_HOST":                   c.DBHost,
		"DB_PORT":                   c.DBPort,
		"DB_USER":                   c.DBUser,
		"DB_NAME":                   c.DBName,
		"KAFKA_HOST":                c.KafkaHost,
		"KAFKA_ORDER_PLACED_TOPIC":  c.KafkaOrderPlacedTopic,
		"KAFKA_ORDER_CHANGED_TOPIC": c.KafkaOrderChangedTopic,
	} {
		if strings.TrimSpace(value) == "" {
			problems = append(problems, errs.NewValueIsRequiredError(key))
		}
	}

	if raw := getenv("OUTBOX_RELAY_BATCH_SIZE"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			problems = append(problems, errs.NewValueIsInvalidErrorWithCause("OUTBOX_RELAY_BATCH_SIZE", err))
		}
		c.RelayBatchSize = n
	}
	if raw := getenv("OUTBOX_RETENTION"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			problems = append(problems, errs.NewValueIsInvalidErrorWithCause("OUTBOX_RETENTION", err))
		}
		c.OutboxRetention = d
	}

	if err := errors.Join(problems...); err != nil {
		return Config{}, err
	}
	return c, nil
}

// DSN is the PostgreSQL connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// KafkaBrokers splits KAFKA_HOST on commas.
func (c Config) KafkaBrokers() []string {
	var brokers []string
	for _, b := range strings.Split(c.KafkaHost, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

func valueOr(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
