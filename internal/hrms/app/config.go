package app

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
	_ "time/tzdata"

	httpapi "github.com/aussiebroadwan/hrms/internal/hrms/http"
	"github.com/aussiebroadwan/hrms/pkg/httpx"
	"github.com/aussiebroadwan/hrms/pkg/jwtx"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. HRMS_JWT_SECRET.
const EnvPrefix = "HRMS"

// MinSecretLength is the shortest accepted HS256 secret, in bytes.
const MinSecretLength = 32

var (
	ErrMissingSecret = errors.New("config: HRMS_JWT_SECRET is required")
	ErrShortSecret   = fmt.Errorf("config: HRMS_JWT_SECRET must be at least %d bytes", MinSecretLength)
)

type Config struct {
	JWTSecret string        // Required: HS256 secret shared by signer and verifier
	Issuer    string        // Optional: iss claim (default: hrms)
	TokenTTL  time.Duration // Optional: token lifetime (default: 24h)

	DatabaseFile string // Optional: path to SQLite database file (default: hrms.db)
	Pepper       string // Optional: appended to passwords before hashing

	Env       string // Environment (dev, staging, prod) (default: dev)
	LogLevel  string // Log level (debug, info, warn, error) (default: info)
	LogFormat string // Log format (json, text) (default: json)

	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
	SweepInterval       time.Duration // Attendance sweep interval (default: 1h)
	Location            *time.Location

	// Bootstrap admin, created on startup when the employee table is empty.
	AdminName     string
	AdminEmail    string
	AdminPassword string

	Access httpapi.AccessPolicy // merged with the defaults
}

// LoadConfig reads defaults, then hrms.yaml (from HRMS_CONFIG, the working
// directory or /etc/hrms), then HRMS_* environment variables.
func LoadConfig() (Config, error) {
	v := viper.New()

	v.SetDefault("issuer", "hrms")
	v.SetDefault("token_ttl", jwtx.DefaultTokenTTL)
	v.SetDefault("database_file", "hrms.db")
	v.SetDefault("env", "dev")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")
	v.SetDefault("port", 8080)
	v.SetDefault("shutdown_grace_period", 10*time.Second)
	v.SetDefault("sweep_interval", time.Hour)
	v.SetDefault("timezone", "UTC")
	v.SetDefault("admin_name", "Administrator")

	if path := os.Getenv(EnvPrefix + "_CONFIG"); path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("hrms")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/hrms/")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("config: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := Config{
		JWTSecret:           v.GetString("jwt_secret"),
		Issuer:              v.GetString("issuer"),
		TokenTTL:            v.GetDuration("token_ttl"),
		DatabaseFile:        v.GetString("database_file"),
		Pepper:              v.GetString("pepper"),
		Env:                 v.GetString("env"),
		LogLevel:            v.GetString("log_level"),
		LogFormat:           v.GetString("log_format"),
		Port:                v.GetInt("port"),
		ShutdownGracePeriod: v.GetDuration("shutdown_grace_period"),
		SweepInterval:       v.GetDuration("sweep_interval"),
		AdminName:           v.GetString("admin_name"),
		AdminEmail:          v.GetString("admin_email"),
		AdminPassword:       v.GetString("admin_password"),
	}

	loc, err := time.LoadLocation(v.GetString("timezone"))
	if err != nil {
		return Config{}, fmt.Errorf("config: timezone: %w", err)
	}
	cfg.Location = loc

	if cfg.Access, err = loadAccess(v); err != nil {
		return Config{}, err
	}

	return cfg, cfg.Validate()
}

// loadAccess reads access.<group> for every known group. Each value may be a
// single role, a comma separated string (as environment variables are) or
// a list.
func loadAccess(v *viper.Viper) (httpapi.AccessPolicy, error) {
	overrides := httpapi.AccessPolicy{}
	for _, group := range httpapi.Groups() {
		raw := v.Get("access." + group)
		if raw == nil {
			continue
		}
		rs, err := httpx.ParseRoleSet(raw)
		if err != nil {
			return nil, fmt.Errorf("config: access.%s: %w", group, err)
		}
		overrides[group] = rs
	}
	return overrides.Merge()
}

// Validate checks the settings the server cannot start without.
func (c Config) Validate() error {
	switch {
	case c.JWTSecret == "":
		return ErrMissingSecret
	case len(c.JWTSecret) < MinSecretLength:
		return ErrShortSecret
	case c.Port <= 0 || c.Port > 65535:
		return fmt.Errorf("config: port %d out of range", c.Port)
	case c.TokenTTL <= 0:
		return fmt.Errorf("config: token_ttl must be positive")
	case (c.AdminEmail == "") != (c.AdminPassword == ""):
		return fmt.Errorf("config: admin_email and admin_password must be set together")
	}
	return nil
}
