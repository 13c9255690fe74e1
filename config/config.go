package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/farellandr/bookcatalog/internal/models"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type (
	Config struct {
		HTTP
		Database
		Log
		Auth
		Seed
		Global
	}

	HTTP struct {
		Host           string
		Port           int
		APIPrefix      string
		GinMode        string
		AllowedOrigins []string
	}

	Database struct {
		Driver   string
		Host     string
		Port     string
		User     string
		Password string
		Name     string
		SSLMode  string
		Path     string // sqlite only
		Debug    bool
	}

	Log struct {
		Level string
		JSON  bool
	}

	Auth struct {
		JWTSecret string
	}

	Seed struct {
		OnStart bool
	}

	Global struct {
		ShutdownTimeout time.Duration
	}
)

// LoadConfig reads the environment, after loading the given .env files
// (".env" when none are given). Missing env files are not an error.
func LoadConfig(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("loading %s: %w", file, err)
		}
	}

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("HOST", "0.0.0.0")
	v.SetDefault("PORT", 8080)
	v.SetDefault("API_PREFIX", "/api")
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("DB_DRIVER", DriverPostgres)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_NAME", "bookcatalog")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_PATH", "./bookcatalog.db")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_JSON", true)
	v.SetDefault("SEED_ON_START", false)
	v.SetDefault("SHUTDOWN_TIMEOUT_IN_SECONDS", 5)

	cfg := &Config{
		HTTP: HTTP{
			Host:           v.GetString("HOST"),
			Port:           v.GetInt("PORT"),
			APIPrefix:      v.GetString("API_PREFIX"),
			GinMode:        v.GetString("GIN_MODE"),
			AllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
		Database: Database{
			Driver:   v.GetString("DB_DRIVER"),
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			Name:     v.GetString("DB_NAME"),
			SSLMode:  v.GetString("DB_SSLMODE"),
			Path:     v.GetString("DB_PATH"),
			Debug:    v.GetString("LOG_LEVEL") == "debug",
		},
		Log: Log{
			Level: v.GetString("LOG_LEVEL"),
			JSON:  v.GetBool("LOG_JSON"),
		},
		Auth: Auth{
			JWTSecret: v.GetString("JWT_SECRET"),
		},
		Seed: Seed{
			OnStart: v.GetBool("SEED_ON_START"),
		},
		Global: Global{
			ShutdownTimeout: time.Duration(v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS")) * time.Second,
		},
	}

	if err := cfg.HTTP.validate(); err != nil {
		return nil, err
	}
	if err := cfg.Database.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// splitList parses a comma separated env value, dropping blank entries.
func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

func (h HTTP) validate() error {
	switch h.GinMode {
	case "debug", "release", "test":
		return nil
	default:
		return fmt.Errorf("unsupported GIN_MODE %q", h.GinMode)
	}
}

func (d Database) validate() error {
	switch d.Driver {
	case DriverPostgres, DriverSQLite:
		return nil
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", d.Driver)
	}
}

func (d Database) Dialector() (gorm.Dialector, error) {
	switch d.Driver {
	case DriverPostgres:
		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
			d.Host, d.User, d.Password, d.Name, d.Port, d.SSLMode,
		)
		return postgres.Open(dsn), nil
	case DriverSQLite:
		return sqlite.Open(d.Path + "?_foreign_keys=on"), nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", d.Driver)
	}
}

// InitDatabase opens the configured database and migrates the catalog tables.
func InitDatabase(cfg Database) (*gorm.DB, error) {
	dialector, err := cfg.Dialector()
	if err != nil {
		return nil, err
	}

	logLevel := logger.Silent
	if cfg.Debug {
		logLevel = logger.Info
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	if err := db.AutoMigrate(&models.Category{}, &models.Book{}); err != nil {
		return nil, fmt.Errorf("migrating database: %w", err)
	}

	return db, nil
}

func CloseDatabase(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
