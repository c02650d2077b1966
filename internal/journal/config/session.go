package config

import "time"

// Хранилища сессий.
const (
	SessionBackendMemory = "memory"
	SessionBackendRedis  = "redis"
)

// SessionConfig представляет настройки сессий.
type SessionConfig struct {
	Secret          string        `yaml:"secret" env:"JOURNAL_SESSION_SECRET" env-default:""`
	TTL             time.Duration `yaml:"ttl" env:"JOURNAL_SESSION_TTL" env-default:"168h"`
	Backend         string        `yaml:"backend" env:"JOURNAL_SESSION_BACKEND" env-default:"memory"`
	CookieName      string        `yaml:"cookie_name" env:"JOURNAL_SESSION_COOKIE" env-default:"journal_session"`
	CookieSecure    bool          `yaml:"cookie_secure" env:"JOURNAL_SESSION_COOKIE_SECURE" env-default:"false"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" env:"JOURNAL_SESSION_CLEANUP_INTERVAL" env-default:"24h"`
}

// GetSecret возвращает секрет подписи токенов.
// Без явного секрета используется значение для локальной разработки.
func (c *SessionConfig) GetSecret() string {
	if c.Secret == "" {
		return "devjournal-local-secret"
	}
	return c.Secret
}
