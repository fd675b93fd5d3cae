// Package config loads settings for the media importer from the environment.
// A .env file in the working directory is read first when present; real
// environment variables take precedence over it.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultHost     = "127.0.0.1"
	DefaultPort     = 27017
	DefaultDatabase = "media"
	DefaultLogFile  = "db.log"
)

type Config struct {
	Mongo   MongoConfig
	Logging LoggingConfig
	Backup  BackupConfig
}

// MongoConfig holds the document store address.
type MongoConfig struct {
	Host     string
	Port     int
	Database string

	// ConnectTimeout bounds connect+ping when set through
	// MONGO_CONNECT_TIMEOUT. Zero leaves the driver's server selection
	// timeout in charge.
	ConnectTimeout time.Duration
}

type LoggingConfig struct {
	// Level is one of debug, info, warn, error (default: info)
	Level string
	// Format is text or json (default: text)
	Format string
	// File is the append-only log sink. Empty disables it.
	File string
}

type BackupConfig struct {
	Dir    string
	Format string
}

// URI returns the connection string for the configured host and port.
func (c MongoConfig) URI() string {
	return fmt.Sprintf("mongodb://%s:%d", c.Host, c.Port)
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Mongo: MongoConfig{
			Host:     DefaultHost,
			Port:     DefaultPort,
			Database: DefaultDatabase,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			File:   DefaultLogFile,
		},
		Backup: BackupConfig{
			Dir:    "./backups",
			Format: "json",
		},
	}
}

// Load reads .env (if any) and the environment on top of Default.
func Load() Config {
	_ = godotenv.Load()

	def := Default()
	return Config{
		Mongo: MongoConfig{
			Host:           getEnv("MONGO_HOST", def.Mongo.Host),
			Port:           getEnvInt("MONGO_PORT", def.Mongo.Port),
			Database:       getEnv("MONGO_DATABASE", def.Mongo.Database),
			ConnectTimeout: getEnvDuration("MONGO_CONNECT_TIMEOUT", def.Mongo.ConnectTimeout),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", def.Logging.Level),
			Format: getEnv("LOG_FORMAT", def.Logging.Format),
			File:   getEnv("LOG_FILE", def.Logging.File),
		},
		Backup: BackupConfig{
			Dir:    getEnv("BACKUP_DIR", def.Backup.Dir),
			Format: getEnv("BACKUP_FORMAT", def.Backup.Format),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err == nil {
			return d
		}
	}
	return def
}
