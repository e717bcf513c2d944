package bootstrap

import (
	"time"

	"github.com/Lexv0lk/article-market/internal/pkg/database"
)

const (
	LockBackendLocal = "local"
	LockBackendRedis = "redis"
)

type MarketConfig struct {
	HttpPort        string                    `env:"HTTP_PORT" envDefault:":8080"`
	DbSettings      database.PostgresSettings `envPrefix:"DB_"`
	JwtSecret       string                    `env:"JWT_SECRET,required"`
	Lock            LockConfig
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

// LockConfig selects the commit lock. The local backend is only correct while
// a single instance serves the database.
type LockConfig struct {
	Backend    string        `env:"LOCK_BACKEND" envDefault:"local"`
	RedisAddr  string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	Expiry     time.Duration `env:"LOCK_EXPIRY" envDefault:"10s"`
	Tries      int           `env:"LOCK_TRIES" envDefault:"32"`
	RetryDelay time.Duration `env:"LOCK_RETRY_DELAY" envDefault:"50ms"`
}
