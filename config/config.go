package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"smart-todo/pkg/datemath"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Storage
	Database DatabaseConfig

	// Smart ToDo specifics
	Parser         ParserConfig
	RateLimit      RateLimitConfig
	CORS           CORSConfig
	GoogleCalendar GoogleCalendarConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type DatabaseConfig struct {
	Path         string // SQLite file, or ":memory:"
	MaxOpenConns int
}

type ParserConfig struct {
	Timezone       string
	MaxInputLength int  // in characters
	PMCutoffHour   int  // bare hours below this read as PM
	BareHourTimes  bool // a lone number counts as a clock time
	WholeWordMatch bool // vocabulary matches whole words only
}

type RateLimitConfig struct {
	RequestsPerMin int // per client IP, on the parse endpoints
}

type CORSConfig struct {
	AllowedOrigins []string
}

// GoogleCalendarConfig enables calendar mirroring when CredentialsPath is set.
type GoogleCalendarConfig struct {
	CredentialsPath string
	TokenPath       string
	CalendarID      string
	EventDuration   time.Duration
}

// Enabled reports whether calendar mirroring is configured.
func (c GoogleCalendarConfig) Enabled() bool {
	return c.CredentialsPath != ""
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, . and /etc/app/
func Load() (*Config, error) {
	return LoadFrom("./config", ".", "/etc/app/")
}

// LoadFrom loads configuration searching config.yaml in the given paths.
// Environment variables override file values, with "." replaced by "_"
// (PARSER_TIMEZONE overrides parser.timezone).
func LoadFrom(paths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// Storage
	cfg.Database.Path = v.GetString("database.path")
	cfg.Database.MaxOpenConns = v.GetInt("database.max_open_conns")

	// Parser
	cfg.Parser.Timezone = v.GetString("parser.timezone")
	cfg.Parser.MaxInputLength = v.GetInt("parser.max_input_length")
	cfg.Parser.PMCutoffHour = v.GetInt("parser.pm_cutoff_hour")
	cfg.Parser.BareHourTimes = v.GetBool("parser.bare_hour_times")
	cfg.Parser.WholeWordMatch = v.GetBool("parser.whole_word_matching")

	// HTTP guards
	cfg.RateLimit.RequestsPerMin = v.GetInt("rate_limit.requests_per_min")
	cfg.CORS.AllowedOrigins = stringList(v, "cors.allowed_origins")

	// Google Calendar
	cfg.GoogleCalendar.CredentialsPath = expandEnvVar(v, v.GetString("google_calendar.credentials_path"))
	cfg.GoogleCalendar.TokenPath = expandEnvVar(v, v.GetString("google_calendar.token_path"))
	cfg.GoogleCalendar.CalendarID = v.GetString("google_calendar.calendar_id")
	cfg.GoogleCalendar.EventDuration = v.GetDuration("google_calendar.event_duration")

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	v.SetDefault("database.path", "data/smart-todo.db")
	v.SetDefault("database.max_open_conns", 4)

	v.SetDefault("parser.timezone", "UTC")
	v.SetDefault("parser.max_input_length", 1000)
	v.SetDefault("parser.pm_cutoff_hour", 8)
	v.SetDefault("parser.bare_hour_times", true)
	v.SetDefault("parser.whole_word_matching", false)

	v.SetDefault("rate_limit.requests_per_min", 60)
	v.SetDefault("cors.allowed_origins", "*")

	// Empty defaults so that env vars alone can set these keys.
	v.SetDefault("google_calendar.credentials_path", "")
	v.SetDefault("google_calendar.token_path", "token.json")
	v.SetDefault("google_calendar.calendar_id", "primary")
	v.SetDefault("google_calendar.event_duration", "30m")
}

func validate(cfg *Config) error {
	if cfg.HTTPServer.Port <= 0 || cfg.HTTPServer.Port > 65535 {
		return fmt.Errorf("http_server.port out of range: %d", cfg.HTTPServer.Port)
	}
	if cfg.Database.Path == "" {
		return errors.New("database.path is required")
	}
	if _, err := datemath.LoadLocation(cfg.Parser.Timezone); err != nil {
		return fmt.Errorf("parser.timezone: %w", err)
	}
	if cfg.Parser.MaxInputLength <= 0 {
		return fmt.Errorf("parser.max_input_length must be positive, got %d", cfg.Parser.MaxInputLength)
	}
	if cfg.Parser.PMCutoffHour < 0 || cfg.Parser.PMCutoffHour > 12 {
		return fmt.Errorf("parser.pm_cutoff_hour must be within 0..12, got %d", cfg.Parser.PMCutoffHour)
	}
	if cfg.RateLimit.RequestsPerMin < 0 {
		return fmt.Errorf("rate_limit.requests_per_min must not be negative, got %d", cfg.RateLimit.RequestsPerMin)
	}
	if cfg.GoogleCalendar.Enabled() && cfg.GoogleCalendar.EventDuration <= 0 {
		return fmt.Errorf("google_calendar.event_duration must be positive, got %s", cfg.GoogleCalendar.EventDuration)
	}
	return nil
}

// stringList reads a list that may come from YAML as a sequence or from
// the environment as a comma separated string.
func stringList(v *viper.Viper, key string) []string {
	raw, ok := v.Get(key).(string)
	if !ok {
		return v.GetStringSlice(key)
	}

	var out []string
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(v *viper.Viper, value string) string {
	if value == "" {
		return value
	}

	// Check if value is in format ${VAR_NAME}
	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		// Try viper first (handles both env and config)
		if envValue := v.GetString(envVar); envValue != "" {
			return envValue
		}
		// Try direct os.Getenv as last resort
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
	}

	return value
}
