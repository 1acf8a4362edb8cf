package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	DB        DBConfig
	S3        S3Config
	Log       LogConfig
	CORS      CORSConfig
	XMLParser XMLParserConfig
	Upload    UploadConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// S3Config holds object storage settings for uploaded invoice documents.
type S3Config struct {
	Region    string `mapstructure:"region"`
	Bucket    string `mapstructure:"bucket"`
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// XMLParserConfig holds settings for the XML invoice parser service. Token is
// the shared secret sent as X-API-Token; a parser service started with an
// empty token accepts unauthenticated requests.
type XMLParserConfig struct {
	URL         string `mapstructure:"url"`
	Token       string `mapstructure:"token"`
	TimeoutSecs int    `mapstructure:"timeout_secs"`
}

// UploadConfig holds limits for uploaded documents.
type UploadConfig struct {
	MaxFileSizeMB int64 `mapstructure:"max_file_size_mb"`
}

// MaxFileSizeBytes returns the upload limit in bytes.
func (u *UploadConfig) MaxFileSizeBytes() int64 {
	return u.MaxFileSizeMB * 1024 * 1024
}

// Load reads configuration from environment variables with the SOLAROPS_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("SOLAROPS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "solarops")
	v.SetDefault("db.password", "solarops_secret")
	v.SetDefault("db.name", "solarops_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// S3 defaults
	v.SetDefault("s3.region", "eu-central-1")
	v.SetDefault("s3.bucket", "solarops-invoices")
	v.SetDefault("s3.endpoint", "")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:5173,http://localhost:3000")

	// XML parser defaults
	v.SetDefault("xmlparser.url", "http://localhost:5000")
	v.SetDefault("xmlparser.token", "")
	v.SetDefault("xmlparser.timeout_secs", 30)

	// Upload defaults
	v.SetDefault("upload.max_file_size_mb", 16)

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":             "SOLAROPS_SERVER_PORT",
		"server.read_timeout":     "SOLAROPS_SERVER_READ_TIMEOUT",
		"server.write_timeout":    "SOLAROPS_SERVER_WRITE_TIMEOUT",
		"server.environment":      "SOLAROPS_SERVER_ENVIRONMENT",
		"db.host":                 "SOLAROPS_DB_HOST",
		"db.port":                 "SOLAROPS_DB_PORT",
		"db.user":                 "SOLAROPS_DB_USER",
		"db.password":             "SOLAROPS_DB_PASSWORD",
		"db.name":                 "SOLAROPS_DB_NAME",
		"db.sslmode":              "SOLAROPS_DB_SSLMODE",
		"db.max_open":             "SOLAROPS_DB_MAX_OPEN",
		"db.max_idle":             "SOLAROPS_DB_MAX_IDLE",
		"s3.region":               "SOLAROPS_S3_REGION",
		"s3.bucket":               "SOLAROPS_S3_BUCKET",
		"s3.endpoint":             "SOLAROPS_S3_ENDPOINT",
		"s3.access_key":           "SOLAROPS_S3_ACCESS_KEY",
		"s3.secret_key":           "SOLAROPS_S3_SECRET_KEY",
		"log.level":               "SOLAROPS_LOG_LEVEL",
		"log.format":              "SOLAROPS_LOG_FORMAT",
		"cors.allowed_origins":    "SOLAROPS_CORS_ALLOWED_ORIGINS",
		"xmlparser.url":           "SOLAROPS_XMLPARSER_URL",
		"xmlparser.token":         "SOLAROPS_XMLPARSER_TOKEN",
		"xmlparser.timeout_secs":  "SOLAROPS_XMLPARSER_TIMEOUT_SECS",
		"upload.max_file_size_mb": "SOLAROPS_UPLOAD_MAX_FILE_SIZE_MB",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if SOLAROPS_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("SOLAROPS_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.S3 = S3Config{
		Region:    v.GetString("s3.region"),
		Bucket:    v.GetString("s3.bucket"),
		Endpoint:  v.GetString("s3.endpoint"),
		AccessKey: v.GetString("s3.access_key"),
		SecretKey: v.GetString("s3.secret_key"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}

	cfg.XMLParser = XMLParserConfig{
		URL:         v.GetString("xmlparser.url"),
		Token:       v.GetString("xmlparser.token"),
		TimeoutSecs: v.GetInt("xmlparser.timeout_secs"),
	}
	cfg.Upload = UploadConfig{
		MaxFileSizeMB: v.GetInt64("upload.max_file_size_mb"),
	}

	return cfg, nil
}
