package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ritikbusiness/career-academy-backend-sub003/aiclient"
	"github.com/ritikbusiness/career-academy-backend-sub003/cors"
	"github.com/ritikbusiness/career-academy-backend-sub003/db"
	"github.com/ritikbusiness/career-academy-backend-sub003/helpers"
	"github.com/ritikbusiness/career-academy-backend-sub003/models"
)

const (
	DefaultLoggingLevel  = "info"
	DefaultSweepInterval = 1 * time.Minute
	DefaultSessionTTL    = 24 * time.Hour

	DefaultUploadDir      = "uploads"
	DefaultUploadMaxBytes = 10 << 20

	EnvAppEnv      = "APP_ENV"
	EnvDatabaseURL = "DATABASE_URL"
	EnvAIAPIKey    = "AI_API_KEY"
)

var defaultServerConfig = helpers.ServerConfig{
	Port: 8080,
}

var defaultHealthConfig = helpers.HealthConfig{
	ServerConfig:          helpers.ServerConfig{Port: 8081},
	ReadinessCheckEnabled: true,
}

var defaultLoggingConfig = helpers.LoggingConfig{
	Level: DefaultLoggingLevel,
}

var defaultRateLimits = models.RateLimitGroups{
	General: models.RateLimitConfig{
		MaxAmount:        100,
		ValidDuration:    15 * time.Minute,
		RejectionMessage: "Too many requests from this IP, please try again later.",
	},
	Auth: models.RateLimitConfig{
		MaxAmount:        5,
		ValidDuration:    15 * time.Minute,
		RejectionMessage: "Too many authentication attempts, please try again later.",
	},
	AI: models.RateLimitConfig{
		MaxAmount:        10,
		ValidDuration:    1 * time.Minute,
		RejectionMessage: "Too many AI requests, please slow down.",
	},
	Upload: models.RateLimitConfig{
		MaxAmount:        20,
		ValidDuration:    1 * time.Hour,
		RejectionMessage: "Too many uploads, please try again later.",
	},
	SweepInterval: DefaultSweepInterval,
}

type UploadsConfig struct {
	Dir                 string   `yaml:"dir" json:"dir"`
	MaxBytes            int64    `yaml:"max_bytes" json:"max_bytes"`
	AllowedContentTypes []string `yaml:"allowed_content_types" json:"allowed_content_types"`
}

type CourseCacheConfig struct {
	TTL             time.Duration `yaml:"ttl" json:"ttl"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" json:"cleanup_interval"`
}

type Config struct {
	Environment string                       `yaml:"environment" json:"environment"`
	TrustProxy  bool                         `yaml:"trust_proxy" json:"trust_proxy"`
	SessionTTL  time.Duration                `yaml:"session_ttl" json:"session_ttl"`
	Logging     helpers.LoggingConfig        `yaml:"logging" json:"logging"`
	Server      helpers.ServerConfig         `yaml:"server" json:"server"`
	Health      helpers.HealthConfig         `yaml:"health" json:"health"`
	Db          map[string]db.DatabaseConfig `yaml:"db" json:"db,omitempty"`
	CORS        cors.Config                  `yaml:"cors" json:"cors"`
	RateLimit   models.RateLimitGroups       `yaml:"rate_limit" json:"rate_limit"`
	AI          aiclient.Config              `yaml:"ai" json:"-"`
	Uploads     UploadsConfig                `yaml:"uploads" json:"uploads"`
	CourseCache CourseCacheConfig            `yaml:"course_cache" json:"course_cache"`
	Info        models.Info                  `yaml:"info" json:"info"`
}

func (c *Config) SetLoggingLevel() {
	c.Logging.Level = strings.ToLower(c.Logging.Level)
}

func (c *Config) GetLogging() *helpers.LoggingConfig {
	return &c.Logging
}

func (c *Config) IsProduction() bool {
	return c.Environment == cors.EnvProduction
}

func defaultConfig() Config {
	return Config{
		Environment: cors.EnvDevelopment,
		SessionTTL:  DefaultSessionTTL,
		Logging:     defaultLoggingConfig,
		Server:      defaultServerConfig,
		Health:      defaultHealthConfig,
		Db:          make(map[string]db.DatabaseConfig),
		RateLimit:   defaultRateLimits,
		AI: aiclient.Config{
			Model:      "gpt-4o-mini",
			MaxTokens:  512,
			Timeout:    30 * time.Second,
			MaxRetries: 2,
		},
		Uploads: UploadsConfig{
			Dir:                 DefaultUploadDir,
			MaxBytes:            DefaultUploadMaxBytes,
			AllowedContentTypes: []string{"image/png", "image/jpeg", "application/pdf"},
		},
		CourseCache: CourseCacheConfig{
			TTL:             5 * time.Minute,
			CleanupInterval: 10 * time.Minute,
		},
		Info: models.Info{
			Name:        "career-academy-api",
			Description: "Career Academy learning platform API",
		},
	}
}

// LoadConfig reads the yaml file at filepath over the defaults and applies
// the environment overrides. An empty filepath yields the defaults.
func LoadConfig(filepath string) (*Config, error) {
	conf := defaultConfig()
	if err := helpers.LoadYamlFile(filepath, &conf); err != nil {
		return nil, err
	}
	loadEnv(&conf)
	conf.SetLoggingLevel()
	conf.Info.Environment = conf.Environment
	return &conf, nil
}

// loadEnv applies APP_ENV, DATABASE_URL and AI_API_KEY. DATABASE_URL
// serves every database that has no url of its own.
func loadEnv(conf *Config) {
	if env := os.Getenv(EnvAppEnv); env != "" {
		conf.Environment = strings.ToLower(env)
	}
	if key := os.Getenv(EnvAIAPIKey); key != "" {
		conf.AI.APIKey = key
	}
	if url := os.Getenv(EnvDatabaseURL); url != "" {
		for _, name := range []string{db.UserDb, db.CourseDb, db.QuizDb, db.ProgressDb} {
			dbConfig := conf.Db[name]
			if dbConfig.URL == "" {
				dbConfig.URL = url
				conf.Db[name] = dbConfig
			}
		}
	}
}

func (c *Config) Validate() error {
	if c.Environment != cors.EnvProduction && c.Environment != cors.EnvDevelopment {
		return fmt.Errorf("%w: environment must be %q or %q, got %q", helpers.ErrConfiguration, cors.EnvProduction, cors.EnvDevelopment, c.Environment)
	}

	for _, name := range []string{db.UserDb, db.CourseDb, db.QuizDb, db.ProgressDb} {
		if c.Db[name].URL == "" {
			return fmt.Errorf("%w: %s url is empty", helpers.ErrConfiguration, name)
		}
	}

	limits := map[string]models.RateLimitConfig{
		"general": c.RateLimit.General,
		"auth":    c.RateLimit.Auth,
		"ai":      c.RateLimit.AI,
		"upload":  c.RateLimit.Upload,
	}
	for name, limit := range limits {
		if limit.MaxAmount <= 0 {
			return fmt.Errorf("%w: rate_limit.%s.max_amount is equal or less than zero", helpers.ErrConfiguration, name)
		}
		if limit.ValidDuration <= 0 {
			return fmt.Errorf("%w: rate_limit.%s.valid_duration is equal or less than zero", helpers.ErrConfiguration, name)
		}
	}
	if c.RateLimit.SweepInterval <= 0 {
		return fmt.Errorf("%w: rate_limit.sweep_interval is equal or less than zero", helpers.ErrConfiguration)
	}

	if c.IsProduction() && len(c.CORS.AllowedOrigins) == 0 {
		return fmt.Errorf("%w: cors.allowed_origins is empty in production", helpers.ErrConfiguration)
	}

	if c.SessionTTL <= 0 {
		return fmt.Errorf("%w: session_ttl is equal or less than zero", helpers.ErrConfiguration)
	}

	if c.Uploads.Dir == "" {
		return fmt.Errorf("%w: uploads.dir is empty", helpers.ErrConfiguration)
	}
	if c.Uploads.MaxBytes <= 0 {
		return fmt.Errorf("%w: uploads.max_bytes is equal or less than zero", helpers.ErrConfiguration)
	}

	if c.CourseCache.TTL <= 0 {
		return fmt.Errorf("%w: course_cache.ttl is equal or less than zero", helpers.ErrConfiguration)
	}

	if c.AI.URL != "" && c.AI.APIKey == "" {
		return fmt.Errorf("%w: ai.api_key is empty", helpers.ErrConfiguration)
	}

	if err := c.Server.Validate(); err != nil {
		return err
	}
	if c.Health.ServerConfig.Port != 0 && c.Health.ServerConfig.Port == c.Server.Port {
		return fmt.Errorf("%w: health port %d is the same as the server port", helpers.ErrConfiguration, c.Server.Port)
	}

	return c.Health.Validate()
}
