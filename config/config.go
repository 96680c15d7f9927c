package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/fekuna/omnipos-supplychain-service/pkg/cache"
	"github.com/fekuna/omnipos-supplychain-service/pkg/database/postgres"
	"github.com/fekuna/omnipos-supplychain-service/pkg/logger"
)

type Config struct {
	Server            ServerConfig
	Logger            LoggerConfig
	InventoryPostgres PostgresConfig
	OrderPostgres     PostgresConfig
	Redis             RedisConfig
	Kafka             KafkaConfig
	Elastic           ElasticsearchConfig
	Analytics         AnalyticsConfig
	Admin             AdminConfig
	Seed              SeedConfig
}

type ServerConfig struct {
	AppEnv          string
	HTTPPort        string
	GRPCPort        string
	ShutdownTimeout time.Duration
	HealthInterval  time.Duration
	AutoMigrate     bool
}

type LoggerConfig struct {
	Level             string
	Encoding          string
	DisableCaller     bool
	DisableStacktrace bool
}

type PostgresConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime int
	ConnMaxIdleTime int
}

type RedisConfig struct {
	Enabled  bool
	Addr     string
	Password string
	DB       int
}

type KafkaConfig struct {
	Enabled bool
	Brokers []string
	Topic   string
}

type ElasticsearchConfig struct {
	Enabled   bool
	Addresses []string
	Username  string
	Password  string
}

type AnalyticsConfig struct {
	TopN int
}

type AdminConfig struct {
	ResetEnabled bool
}

type SeedConfig struct {
	Suppliers int
	Products  int
	Customers int
	Orders    int
	Seed      int64 // 0 picks a random seed
}

func LoadEnv() *Config {
	return &Config{
		Server: ServerConfig{
			AppEnv:          getEnv("APP_ENV", "dev"),
			HTTPPort:        getEnv("HTTP_PORT", ":8000"),
			GRPCPort:        getEnv("GRPC_PORT", ":8082"),
			ShutdownTimeout: time.Duration(getEnvInt("SHUTDOWN_TIMEOUT", 10)) * time.Second,
			HealthInterval:  time.Duration(getEnvInt("HEALTH_INTERVAL", 15)) * time.Second,
			AutoMigrate:     getEnvBool("AUTO_MIGRATE", true),
		},
		Logger: LoggerConfig{
			Level:             getEnv("LOGGER_LEVEL", "debug"),
			Encoding:          getEnv("LOGGER_ENCODING", "console"),
			DisableCaller:     getEnvBool("LOGGER_DISABLE_CALLER", false),
			DisableStacktrace: getEnvBool("LOGGER_DISABLE_STACKTRACE", true),
		},
		InventoryPostgres: loadPostgres("INVENTORY", "scm_inventory"),
		OrderPostgres:     loadPostgres("ORDERS", "scm_orders"),
		Redis: RedisConfig{
			Enabled:  getEnvBool("REDIS_ENABLED", true),
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Kafka: KafkaConfig{
			Enabled: getEnvBool("KAFKA_ENABLED", false),
			Brokers: getEnvSlice("KAFKA_BROKERS", []string{"localhost:9092"}),
			Topic:   getEnv("KAFKA_TOPIC_ORDERS", "orders.events"),
		},
		Elastic: ElasticsearchConfig{
			Enabled:   getEnvBool("ELASTICSEARCH_ENABLED", false),
			Addresses: getEnvSlice("ELASTICSEARCH_ADDRESSES", []string{"http://localhost:9200"}),
			Username:  getEnv("ELASTICSEARCH_USERNAME", ""),
			Password:  getEnv("ELASTICSEARCH_PASSWORD", ""),
		},
		Analytics: AnalyticsConfig{
			TopN: getEnvInt("ANALYTICS_TOP_N", 10),
		},
		Admin: AdminConfig{
			ResetEnabled: getEnvBool("ADMIN_RESET_ENABLED", false),
		},
		Seed: SeedConfig{
			Suppliers: getEnvInt("SEED_SUPPLIERS", 50),
			Products:  getEnvInt("SEED_PRODUCTS", 200),
			Customers: getEnvInt("SEED_CUSTOMERS", 100),
			Orders:    getEnvInt("SEED_ORDERS", 300),
			Seed:      int64(getEnvInt("SEED_RANDOM_SEED", 0)),
		},
	}
}

// loadPostgres reads one store's settings. INVENTORY_POSTGRES_HOST overrides
// POSTGRES_HOST, so both stores can share a server and differ only by name.
func loadPostgres(prefix, defaultDB string) PostgresConfig {
	env := func(key, fallback string) string {
		return getEnv(prefix+"_"+key, getEnv(key, fallback))
	}
	envInt := func(key string, fallback int) int {
		return getEnvInt(prefix+"_"+key, getEnvInt(key, fallback))
	}
	return PostgresConfig{
		Host:            env("POSTGRES_HOST", "localhost"),
		Port:            env("POSTGRES_PORT", "5432"),
		User:            env("POSTGRES_USER", "scm"),
		Password:        env("POSTGRES_PASSWORD", "scm"),
		DBName:          getEnv(prefix+"_POSTGRES_DB", defaultDB),
		SSLMode:         env("POSTGRES_SSLMODE", "disable"),
		MaxOpenConns:    envInt("POSTGRES_MAX_OPEN_CONNS", 10),
		MaxIdleConns:    envInt("POSTGRES_MAX_IDLE_CONNS", 5),
		ConnMaxLifetime: envInt("POSTGRES_CONN_MAX_LIFETIME", 300),
		ConnMaxIdleTime: envInt("POSTGRES_CONN_MAX_IDLE_TIME", 60),
	}
}

func (p PostgresConfig) Database() *postgres.Config {
	return &postgres.Config{
		Host:            p.Host,
		Port:            p.Port,
		User:            p.User,
		Password:        p.Password,
		DBName:          p.DBName,
		SSLMode:         p.SSLMode,
		MaxOpenConns:    p.MaxOpenConns,
		MaxIdleConns:    p.MaxIdleConns,
		ConnMaxLifetime: time.Duration(p.ConnMaxLifetime) * time.Second,
		ConnMaxIdleTime: time.Duration(p.ConnMaxIdleTime) * time.Second,
	}
}

func (r RedisConfig) Cache() *cache.Config {
	return &cache.Config{Addr: r.Addr, Password: r.Password, DB: r.DB}
}

// ZapLogger builds the logger config. Development forces console output at
// debug level.
func (c *Config) ZapLogger() *logger.ZapLoggerConfig {
	cfg := &logger.ZapLoggerConfig{
		Encoding:          c.Logger.Encoding,
		Level:             c.Logger.Level,
		DisableCaller:     c.Logger.DisableCaller,
		DisableStacktrace: c.Logger.DisableStacktrace,
	}
	if c.Server.AppEnv == "development" {
		cfg.IsDevelopment = true
		cfg.Encoding = "console"
		cfg.Level = "debug"
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvSlice(key string, fallback []string) []string {
	if value, ok := os.LookupEnv(key); ok {
		parts := strings.Split(value, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		return out
	}
	return fallback
}
