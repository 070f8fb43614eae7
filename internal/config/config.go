// Package config loads the service configuration from config.yaml and the
// environment. Environment variables win over the file.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Store    StoreConfig    `mapstructure:"store"`
	DynamoDB DynamoDBConfig `mapstructure:"dynamodb"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	MinIO    MinIOConfig    `mapstructure:"minio"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Log      LogConfig      `mapstructure:"log"`
	Business BusinessConfig `mapstructure:"business"`
}

type ServerConfig struct {
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

// StoreConfig selects the table store: dynamodb, postgres or memory.
type StoreConfig struct {
	Driver      string `mapstructure:"driver"`
	TablePrefix string `mapstructure:"table_prefix"`
}

type DynamoDBConfig struct {
	Region          string `mapstructure:"region"`
	Endpoint        string `mapstructure:"endpoint"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN renders the libpq connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

type RedisConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	Host      string `mapstructure:"host"`
	Port      int    `mapstructure:"port"`
	Password  string `mapstructure:"password"`
	DB        int    `mapstructure:"db"`
	Namespace string `mapstructure:"namespace"`
}

func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type MinIOConfig struct {
	Enabled   bool          `mapstructure:"enabled"`
	Endpoint  string        `mapstructure:"endpoint"`
	AccessKey string        `mapstructure:"access_key"`
	SecretKey string        `mapstructure:"secret_key"`
	Bucket    string        `mapstructure:"bucket"`
	UseSSL    bool          `mapstructure:"use_ssl"`
	URLExpiry time.Duration `mapstructure:"url_expiry"`
}

type JWTConfig struct {
	Secret            string        `mapstructure:"secret"`
	AccessTokenExpire time.Duration `mapstructure:"access_token_expire"`
	Issuer            string        `mapstructure:"issuer"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// BusinessConfig holds the rules an operator may tune per installation.
type BusinessConfig struct {
	DeliveredStatus       string   `mapstructure:"delivered_status"`
	FullVisibilitySectors []string `mapstructure:"full_visibility_sectors"`
	PreferencesPath       string   `mapstructure:"preferences_path"`
	AdminName             string   `mapstructure:"admin_name"`
	AdminEmail            string   `mapstructure:"admin_email"`
	AdminPassword         string   `mapstructure:"admin_password"`
}

// Load reads ./configs/config.yaml or ./config.yaml when present, then the environment.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath(".")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	bindEnvVariables(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects configurations the service cannot start with.
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case "dynamodb", "postgres", "memory":
	default:
		return fmt.Errorf("unknown store driver %q", c.Store.Driver)
	}
	if strings.TrimSpace(c.JWT.Secret) == "" {
		return errors.New("jwt secret is required")
	}
	if strings.TrimSpace(c.Business.DeliveredStatus) == "" {
		return errors.New("delivered status is required")
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "release")

	v.SetDefault("store.driver", "dynamodb")
	v.SetDefault("store.table_prefix", "")

	// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
	v.SetDefault("dynamodb.region", "us-east-1")
	v.SetDefault("dynamodb.access_key_id", "local")
	v.SetDefault("dynamodb.secret_access_key", "local")

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.dbname", "compras")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_open_conns", 20)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime", time.Hour)

	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.namespace", "compras")

	v.SetDefault("minio.bucket", "relatorios")
	v.SetDefault("minio.url_expiry", 24*time.Hour)

	v.SetDefault("jwt.secret", "change-me")
	v.SetDefault("jwt.access_token_expire", 12*time.Hour)
	v.SetDefault("jwt.issuer", "gestao-compras")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.SetDefault("business.delivered_status", "Entregue")
	v.SetDefault("business.full_visibility_sectors", []string{"Gerente", "Diretor"})
	v.SetDefault("business.preferences_path", "preferences.yaml")
	v.SetDefault("business.admin_name", "Administrador")
	v.SetDefault("business.admin_email", "admin@empresa.com")
	v.SetDefault("business.admin_password", "admin123")
}

func bindEnvVariables(v *viper.Viper) {
	// Server
	v.BindEnv("server.port", "PORT")
	v.BindEnv("server.mode", "GIN_MODE")

	// Store
	v.BindEnv("store.driver", "STORE_DRIVER")
	v.BindEnv("store.table_prefix", "TABLE_PREFIX")

	// DynamoDB
	v.BindEnv("dynamodb.region", "AWS_REGION")
	v.BindEnv("dynamodb.endpoint", "DYNAMODB_ENDPOINT")
	v.BindEnv("dynamodb.access_key_id", "AWS_ACCESS_KEY_ID")
	v.BindEnv("dynamodb.secret_access_key", "AWS_SECRET_ACCESS_KEY")

	// Database
	v.BindEnv("database.host", "DB_HOST")
	v.BindEnv("database.port", "DB_PORT")
	v.BindEnv("database.user", "DB_USER")
	v.BindEnv("database.password", "DB_PASSWORD")
	v.BindEnv("database.dbname", "DB_NAME")
	v.BindEnv("database.sslmode", "DB_SSLMODE")

	// Redis
	v.BindEnv("redis.enabled", "REDIS_ENABLED")
	v.BindEnv("redis.host", "REDIS_HOST")
	v.BindEnv("redis.port", "REDIS_PORT")
	v.BindEnv("redis.password", "REDIS_PASSWORD")

	// MinIO
	v.BindEnv("minio.enabled", "MINIO_ENABLED")
	v.BindEnv("minio.endpoint", "MINIO_ENDPOINT")
	v.BindEnv("minio.access_key", "MINIO_ACCESS_KEY")
	v.BindEnv("minio.secret_key", "MINIO_SECRET_KEY")
	v.BindEnv("minio.bucket", "MINIO_BUCKET")

	// JWT
	v.BindEnv("jwt.secret", "JWT_SECRET")

	// Log
	v.BindEnv("log.level", "LOG_LEVEL")
	v.BindEnv("log.format", "LOG_FORMAT")

	// Business
	v.BindEnv("business.delivered_status", "DELIVERED_STATUS")
	v.BindEnv("business.preferences_path", "PREFERENCES_PATH")
	v.BindEnv("business.admin_email", "ADMIN_EMAIL")
	v.BindEnv("business.admin_password", "ADMIN_PASSWORD")
}
