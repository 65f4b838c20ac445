package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env       string
	Port      int
	APIPrefix string

	Storage   StorageConfig
	Redis     RedisConfig
	JWT       JWTConfig
	CORS      CORSConfig
	Log       LogConfig
	Cache     CacheConfig
	Directory DirectoryConfig
	Exports   ExportsConfig
	Accounts  AccountsConfig
}

// StorageConfig locates the single-file content database.
type StorageConfig struct {
	Path string
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type JWTConfig struct {
	Secret     string
	Expiration time.Duration
	Issuer     string
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

// CacheConfig governs the optional redis response cache for public listings.
type CacheConfig struct {
	Enabled bool
	TTL     time.Duration
}

// DirectoryConfig overrides the default faculty directory ordering. Names in
// PriorityNames are forced to the top of PriorityDepartment, in the order given.
type DirectoryConfig struct {
	PriorityDepartment string
	PriorityNames      []string
}

// ExportsConfig gates the admin CSV/PDF export endpoints.
type ExportsConfig struct {
	Enabled bool
}

// AccountsConfig seeds the initial admin and faculty logins when the user
// collection is empty.
type AccountsConfig struct {
	AdminEmail      string
	AdminPassword   string
	FacultyPassword string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")
	cfg.APIPrefix = v.GetString("API_PREFIX")

	cfg.Storage = StorageConfig{Path: v.GetString("CONTENT_DB_PATH")}

	cfg.Redis = RedisConfig{
		Host:     v.GetString("REDIS_HOST"),
		Port:     v.GetInt("REDIS_PORT"),
		Password: v.GetString("REDIS_PASSWORD"),
		DB:       v.GetInt("REDIS_DB"),
	}

	cfg.JWT = JWTConfig{
		Secret:     v.GetString("JWT_SECRET"),
		Expiration: parseDuration(v.GetString("JWT_EXPIRATION"), 24*time.Hour),
		Issuer:     v.GetString("JWT_ISSUER"),
	}

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.Cache = CacheConfig{
		Enabled: v.GetBool("ENABLE_CACHE"),
		TTL:     parseDuration(v.GetString("CACHE_TTL"), 5*time.Minute),
	}

	cfg.Directory = DirectoryConfig{
		PriorityDepartment: v.GetString("DIRECTORY_PRIORITY_DEPARTMENT"),
		PriorityNames:      splitAndTrim(v.GetString("DIRECTORY_PRIORITY_NAMES")),
	}

	cfg.Exports = ExportsConfig{Enabled: v.GetBool("ENABLE_EXPORTS")}

	cfg.Accounts = AccountsConfig{
		AdminEmail:      v.GetString("SEED_ADMIN_EMAIL"),
		AdminPassword:   v.GetString("SEED_ADMIN_PASSWORD"),
		FacultyPassword: v.GetString("SEED_FACULTY_PASSWORD"),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8080)
	v.SetDefault("API_PREFIX", "/api/v1")

	v.SetDefault("CONTENT_DB_PATH", "./campus-content.db")

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("JWT_SECRET", "dev_secret")
	v.SetDefault("JWT_EXPIRATION", "24h")
	v.SetDefault("JWT_ISSUER", "campus-content-api")

	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("ENABLE_CACHE", false)
	v.SetDefault("CACHE_TTL", "5m")

	v.SetDefault("DIRECTORY_PRIORITY_DEPARTMENT", "Information Technology")
	v.SetDefault("DIRECTORY_PRIORITY_NAMES", "Sean Martin Fulay,Kenneth Gisalan")

	v.SetDefault("ENABLE_EXPORTS", true)

	v.SetDefault("SEED_ADMIN_EMAIL", "admin@sorsu-bulan.edu.ph")
	v.SetDefault("SEED_ADMIN_PASSWORD", "changeme-admin")
	v.SetDefault("SEED_FACULTY_PASSWORD", "changeme-faculty")
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return d
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
