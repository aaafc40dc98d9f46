package flash

import (
	"net/http"
	"strings"
	"time"
)

// CookieConfig holds cookie store configuration loadable from the environment.
type CookieConfig struct {
	Secrets  string        `env:"NOTIFY_COOKIE_SECRETS" envDefault:""`
	Path     string        `env:"NOTIFY_COOKIE_PATH" envDefault:"/"`
	Domain   string        `env:"NOTIFY_COOKIE_DOMAIN" envDefault:""`
	Secure   bool          `env:"NOTIFY_COOKIE_SECURE" envDefault:"false"`
	SameSite http.SameSite `env:"NOTIFY_COOKIE_SAME_SITE" envDefault:"2"` // 2 = SameSiteLaxMode
}

// DefaultCookieConfig returns default cookie store configuration.
func DefaultCookieConfig() CookieConfig {
	return CookieConfig{
		Path:     "/",
		SameSite: http.SameSiteLaxMode,
	}
}

// parseSecrets splits the comma-separated secrets string.
func (c CookieConfig) parseSecrets() []string {
	if c.Secrets == "" {
		return nil
	}

	parts := strings.Split(c.Secrets, ",")
	secrets := make([]string, 0, len(parts))

	for _, s := range parts {
		if s = strings.TrimSpace(s); s != "" {
			secrets = append(secrets, s)
		}
	}

	return secrets
}

// NewCookieStoreFromConfig creates a CookieStore from the provided Config.
// Only non-zero values from the config are applied; explicit options take
// precedence.
func NewCookieStoreFromConfig(cfg CookieConfig, opts ...Option) (*CookieStore, error) {
	configOpts := make([]Option, 0, 4)

	if cfg.Path != "" {
		configOpts = append(configOpts, WithPath(cfg.Path))
	}
	if cfg.Domain != "" {
		configOpts = append(configOpts, WithDomain(cfg.Domain))
	}
	if cfg.Secure {
		configOpts = append(configOpts, WithSecure(cfg.Secure))
	}
	if cfg.SameSite != 0 {
		configOpts = append(configOpts, WithSameSite(cfg.SameSite))
	}

	configOpts = append(configOpts, opts...)

	return NewCookieStore(cfg.parseSecrets(), configOpts...)
}

// RedisConfig holds redis store configuration loadable from the environment.
type RedisConfig struct {
	ConnectionURL  string        `env:"NOTIFY_REDIS_URL" envDefault:"redis://localhost:6379/0"`
	BatchTTL       time.Duration `env:"NOTIFY_REDIS_BATCH_TTL" envDefault:"10m"`
	RetryAttempts  int           `env:"NOTIFY_REDIS_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval  time.Duration `env:"NOTIFY_REDIS_RETRY_INTERVAL" envDefault:"5s"`
	ConnectTimeout time.Duration `env:"NOTIFY_REDIS_CONNECT_TIMEOUT" envDefault:"30s"`
}

// DefaultRedisConfig returns default redis store configuration.
func DefaultRedisConfig() RedisConfig {
	return RedisConfig{
		ConnectionURL:  "redis://localhost:6379/0",
		BatchTTL:       10 * time.Minute,
		RetryAttempts:  3,
		RetryInterval:  5 * time.Second,
		ConnectTimeout: 30 * time.Second,
	}
}
