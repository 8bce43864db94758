package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App           AppConfig
	DB            DBConfig
	Redis         RedisConfig
	JWT           JWTConfig
	Password      PasswordConfig
	Uploads       UploadsConfig
	AuthRateLimit AuthRateLimitConfig
	FeatureFlags  FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"MINISHOP_APP_ENV" required:"true"`
	Port         string `envconfig:"MINISHOP_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"MINISHOP_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"MINISHOP_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN string `envconfig:"MINISHOP_DB_DSN"`

	Host     string `envconfig:"MINISHOP_DB_HOST"`
	Port     int    `envconfig:"MINISHOP_DB_PORT" default:"5432"`
	User     string `envconfig:"MINISHOP_DB_USER"`
	Password string `envconfig:"MINISHOP_DB_PASSWORD"`
	Name     string `envconfig:"MINISHOP_DB_NAME"`
	SSLMode  string `envconfig:"MINISHOP_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"MINISHOP_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"MINISHOP_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"MINISHOP_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"MINISHOP_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"MINISHOP_REDIS_URL"`
	Address      string        `envconfig:"MINISHOP_REDIS_ADDR"`
	Password     string        `envconfig:"MINISHOP_REDIS_PASSWORD"`
	DB           int           `envconfig:"MINISHOP_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"MINISHOP_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"MINISHOP_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"MINISHOP_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"MINISHOP_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"MINISHOP_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// Configured reports whether any redis endpoint was supplied. Rate limiting
// is skipped entirely when it returns false.
func (r RedisConfig) Configured() bool {
	return r.URL != "" || r.Address != ""
}

type JWTConfig struct {
	Secret            string `envconfig:"MINISHOP_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"MINISHOP_JWT_ISSUER" default:"minishop"`
	ExpirationMinutes int    `envconfig:"MINISHOP_JWT_EXPIRATION_MINUTES" default:"1440"`
}

type PasswordConfig struct {
	BcryptCost int `envconfig:"MINISHOP_BCRYPT_COST" default:"10"`
}

type UploadsConfig struct {
	Dir         string `envconfig:"MINISHOP_UPLOADS_DIR" default:"public/uploads"`
	MaxUploadMB int    `envconfig:"MINISHOP_MAX_UPLOAD_MB" default:"10"`
}

// MaxBytes converts the configured cap to bytes.
func (u UploadsConfig) MaxBytes() int64 {
	if u.MaxUploadMB <= 0 {
		return 10 << 20
	}
	return int64(u.MaxUploadMB) << 20
}

type AuthRateLimitConfig struct {
	LoginWindow        time.Duration `envconfig:"MINISHOP_AUTH_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginEmailLimit    int           `envconfig:"MINISHOP_AUTH_RATE_LIMIT_LOGIN_EMAIL_LIMIT" default:"5"`
	LoginIPLimit       int           `envconfig:"MINISHOP_AUTH_RATE_LIMIT_LOGIN_IP_LIMIT" default:"20"`
	RegisterWindow     time.Duration `envconfig:"MINISHOP_AUTH_RATE_LIMIT_REGISTER_WINDOW" default:"5m"`
	RegisterEmailLimit int           `envconfig:"MINISHOP_AUTH_RATE_LIMIT_REGISTER_EMAIL_LIMIT" default:"3"`
	RegisterIPLimit    int           `envconfig:"MINISHOP_AUTH_RATE_LIMIT_REGISTER_IP_LIMIT" default:"20"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"MINISHOP_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	values := map[string]string{
		EnvDBHost: db.Host,
		EnvDBUser: db.User,
		EnvDBName: db.Name,
	}
	for _, env := range componentDBEnvVars {
		if values[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.User)
	if db.Password != "" {
		userInfo = url.UserPassword(db.User, db.Password)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.Host, db.Port),
		Path:   db.Name,
	}

	if db.SSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.SSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
