package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"shippix/internal/pkg/errs"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// Handoff store backends.
const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
)

type Config struct {
	HTTPPort string
	LogLevel slog.Level

	HandoffStore         string
	HandoffTTL           time.Duration
	HandoffSweepSchedule string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	EstimateLatency   time.Duration
	EstimateTimeout   time.Duration
	SignupLatency     time.Duration
	LoginLatency      time.Duration
	AdminLoginLatency time.Duration
}

var defaults = map[string]any{
	"HTTP_PORT":              "8080",
	"LOG_LEVEL":              "info",
	"HANDOFF_STORE":          StoreMemory,
	"HANDOFF_TTL":            "30m",
	"HANDOFF_SWEEP_SCHEDULE": "0 * * * * *",
	"DB_HOST":                "localhost",
	"DB_PORT":                "5432",
	"DB_USER":                "postgres",
	"DB_PASSWORD":            "",
	"DB_NAME":                "shippix",
	"DB_SSLMODE":             "disable",
	"ESTIMATE_LATENCY":       "1.5s",
	"ESTIMATE_TIMEOUT":       "5s",
	"SIGNUP_LATENCY":         "1.5s",
	"LOGIN_LATENCY":          "1s",
	"ADMIN_LOGIN_LATENCY":    "1s",
}

// LoadConfig reads the configuration from the environment. Variables in envFile
// are loaded first without overriding ones already set; a missing file is not
// an error.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	v := viper.New()
	v.AutomaticEnv()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(v.GetString("LOG_LEVEL"))); err != nil {
		return Config{}, errs.NewValueIsInvalidErrorWithCause("LOG_LEVEL", err)
	}

	durations := durationReader{v: v}
	config := Config{
		HTTPPort:             v.GetString("HTTP_PORT"),
		LogLevel:             level,
		HandoffStore:         strings.ToLower(v.GetString("HANDOFF_STORE")),
		HandoffTTL:           durations.read("HANDOFF_TTL"),
		HandoffSweepSchedule: v.GetString("HANDOFF_SWEEP_SCHEDULE"),
		DBHost:               v.GetString("DB_HOST"),
		DBPort:               v.GetString("DB_PORT"),
		DBUser:               v.GetString("DB_USER"),
		DBPassword:           v.GetString("DB_PASSWORD"),
		DBName:               v.GetString("DB_NAME"),
		DBSslMode:            v.GetString("DB_SSLMODE"),
		EstimateLatency:      durations.read("ESTIMATE_LATENCY"),
		EstimateTimeout:      durations.read("ESTIMATE_TIMEOUT"),
		SignupLatency:        durations.read("SIGNUP_LATENCY"),
		LoginLatency:         durations.read("LOGIN_LATENCY"),
		AdminLoginLatency:    durations.read("ADMIN_LOGIN_LATENCY"),
	}
	if err := errors.Join(durations.errs...); err != nil {
		return Config{}, err
	}

	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

// durationReader parses duration keys and collects the ones that do not parse.
// viper's GetDuration would silently turn them into zero.
type durationReader struct {
	v    *viper.Viper
	errs []error
}

func (r *durationReader) read(key string) time.Duration {
	d, err := cast.ToDurationE(r.v.Get(key))
	if err != nil {
		r.errs = append(r.errs, errs.NewValueIsInvalidErrorWithCause(key, err))
		return 0
	}
	return d
}

func (c Config) Validate() error {
	var portErr, storeErr, ttlErr, scheduleErr, dbErr error

	if strings.TrimSpace(c.HTTPPort) == "" {
		portErr = errs.NewValueIsRequiredError("HTTP_PORT")
	}

	switch c.HandoffStore {
	case StoreMemory:
	case StorePostgres:
		if c.DBHost == "" || c.DBName == "" {
			dbErr = errs.NewValueIsRequiredError("DB_HOST and DB_NAME")
		}
	default:
		storeErr = errs.NewValueIsInvalidErrorWithCause(
			"HANDOFF_STORE", fmt.Errorf("%q is not %s or %s", c.HandoffStore, StoreMemory, StorePostgres))
	}

	if c.HandoffTTL <= 0 {
		ttlErr = errs.NewValueIsOutOfRangeError("HANDOFF_TTL", c.HandoffTTL, "1ns", "max duration")
	}

	parser := cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
	if _, err := parser.Parse(c.HandoffSweepSchedule); err != nil {
		scheduleErr = errs.NewValueIsInvalidErrorWithCause("HANDOFF_SWEEP_SCHEDULE", err)
	}

	var latencyErrs []error
	for key, d := range map[string]time.Duration{
		"ESTIMATE_LATENCY":    c.EstimateLatency,
		"ESTIMATE_TIMEOUT":    c.EstimateTimeout,
		"SIGNUP_LATENCY":      c.SignupLatency,
		"LOGIN_LATENCY":       c.LoginLatency,
		"ADMIN_LOGIN_LATENCY": c.AdminLoginLatency,
	} {
		if d < 0 {
			latencyErrs = append(latencyErrs, errs.NewValueIsOutOfRangeError(key, d, "0s", "max duration"))
		}
	}

	return errors.Join(portErr, storeErr, ttlErr, scheduleErr, dbErr, errors.Join(latencyErrs...))
}

// DSN is the postgres connection string of the handoff store.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}
