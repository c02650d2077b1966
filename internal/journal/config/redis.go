package config

import (
	"net"
	"strconv"
	"time"
)

// RedisConfig представляет конфигурацию Redis для хранения сессий.
type RedisConfig struct {
	Host           string        `yaml:"host" env:"JOURNAL_REDIS_HOST" env-default:"localhost"`
	Port           int           `yaml:"port" env:"JOURNAL_REDIS_PORT" env-default:"6379"`
	Password       string        `yaml:"password" env:"JOURNAL_REDIS_PASSWORD" env-default:""`
	DB             int           `yaml:"db" env:"JOURNAL_REDIS_DB" env-default:"0"`
	KeyPrefix      string        `yaml:"key_prefix" env:"JOURNAL_REDIS_KEY_PREFIX" env-default:"journal:session:"`
	ConnectTimeout time.Duration `yaml:"connect_timeout" env:"JOURNAL_REDIS_CONNECT_TIMEOUT" env-default:"5s"`
	ReadTimeout    time.Duration `yaml:"read_timeout" env:"JOURNAL_REDIS_READ_TIMEOUT" env-default:"3s"`
	WriteTimeout   time.Duration `yaml:"write_timeout" env:"JOURNAL_REDIS_WRITE_TIMEOUT" env-default:"3s"`
	PoolSize       int           `yaml:"pool_size" env:"JOURNAL_REDIS_POOL_SIZE" env-default:"10"`
}

// GetAddress возвращает адрес Redis.
func (c *RedisConfig) GetAddress() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}
