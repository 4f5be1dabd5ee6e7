package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/gunpla-hub/service-storefront/internal/platform/database"
)

// RedisConfig holds session state store settings. An empty Addr selects the
// in-memory store.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// KafkaConfig holds broker settings. When Enabled is false events are only
// logged and no consumer is started.
type KafkaConfig struct {
	Enabled     bool
	Brokers     []string
	GroupPrefix string
}

// Storage backends for products, discounts and orders.
const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

// SeedConfig controls demo data loaded at startup.
type SeedConfig struct {
	Discounts bool
	ValidFrom time.Time
	ValidTo   time.Time
}

// ServiceConfig holds all configuration for the storefront service.
type ServiceConfig struct {
	Port          string
	AppEnv        string
	Storage       string
	DBConfig      database.PostgresConfig
	RedisConfig   RedisConfig
	KafkaConfig   KafkaConfig
	Seed          SeedConfig
	StateTTL      time.Duration
	AdminToken    string
	Currency      string
	CheckoutDelay time.Duration
}

// Load reads an optional .env file and then the environment.
func Load() (*ServiceConfig, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	setDefaults(v)

	return fromViper(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("SERVICE_PORT", ":8084")
	v.SetDefault("STORAGE", StoragePostgres)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "storefront")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("STATE_TTL", "720h")
	v.SetDefault("KAFKA_ENABLED", true)
	v.SetDefault("KAFKA_BROKERS", "localhost:9092")
	v.SetDefault("KAFKA_GROUP_PREFIX", "")
	v.SetDefault("CURRENCY", "USD")
	v.SetDefault("SEED_DISCOUNTS", true)
	v.SetDefault("SEED_VALID_FROM", "2024-01-01T00:00:00Z")
	v.SetDefault("SEED_VALID_TO", "2024-12-31T23:59:59Z")
	v.SetDefault("CHECKOUT_DELAY", "0s")
}

func fromViper(v *viper.Viper) (*ServiceConfig, error) {
	validFrom, err := time.Parse(time.RFC3339, v.GetString("SEED_VALID_FROM"))
	if err != nil {
		return nil, fmt.Errorf("invalid SEED_VALID_FROM (use RFC3339): %w", err)
	}
	validTo, err := time.Parse(time.RFC3339, v.GetString("SEED_VALID_TO"))
	if err != nil {
		return nil, fmt.Errorf("invalid SEED_VALID_TO (use RFC3339): %w", err)
	}
	if validTo.Before(validFrom) {
		return nil, fmt.Errorf("SEED_VALID_TO is before SEED_VALID_FROM")
	}

	storage := strings.ToLower(v.GetString("STORAGE"))
	if storage != StoragePostgres && storage != StorageMemory {
		return nil, fmt.Errorf("invalid STORAGE %q (use %s or %s)", storage, StoragePostgres, StorageMemory)
	}

	port := v.GetString("SERVICE_PORT")
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	return &ServiceConfig{
		Port:    port,
		AppEnv:  v.GetString("APP_ENV"),
		Storage: storage,
		DBConfig: database.PostgresConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			DBName:   v.GetString("DB_NAME"),
			SSLMode:  v.GetString("DB_SSLMODE"),
		},
		RedisConfig: RedisConfig{
			Addr:     v.GetString("REDIS_ADDR"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		KafkaConfig: KafkaConfig{
			Enabled:     v.GetBool("KAFKA_ENABLED"),
			Brokers:     splitList(v.GetString("KAFKA_BROKERS")),
			GroupPrefix: v.GetString("KAFKA_GROUP_PREFIX"),
		},
		Seed: SeedConfig{
			Discounts: v.GetBool("SEED_DISCOUNTS"),
			ValidFrom: validFrom,
			ValidTo:   validTo,
		},
		StateTTL:      v.GetDuration("STATE_TTL"),
		AdminToken:    v.GetString("ADMIN_TOKEN"),
		Currency:      strings.ToUpper(v.GetString("CURRENCY")),
		CheckoutDelay: v.GetDuration("CHECKOUT_DELAY"),
	}, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
