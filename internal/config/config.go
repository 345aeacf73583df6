package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port     string `envconfig:"PORT" default:"8080"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	DB    DBConfig
	Redis RedisConfig
	AMQP  AMQPConfig

	CORSAllowedOrigins []string      `envconfig:"CORS_ALLOWED_ORIGINS" default:"http://localhost:3000,https://react-shopping-cart-woowa.netlify.app"`
	ShutdownTimeout    time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"5s"`
}

type DBConfig struct {
	Driver       string        `envconfig:"DB_DRIVER" default:"mysql"`
	DSN          string        `envconfig:"DATABASE_DSN"`
	User         string        `envconfig:"MYSQL_USER"`
	Password     string        `envconfig:"MYSQL_PASSWORD"`
	Host         string        `envconfig:"MYSQL_HOST" default:"localhost"`
	Port         string        `envconfig:"MYSQL_PORT" default:"3306"`
	Name         string        `envconfig:"MYSQL_DATABASE" default:"cart"`
	AutoMigrate  bool          `envconfig:"DB_AUTO_MIGRATE" default:"true"`
	MaxOpenConns int           `envconfig:"DB_MAX_OPEN_CONNS" default:"100"`
	MaxIdleConns int           `envconfig:"DB_MAX_IDLE_CONNS" default:"20"`
	ConnMaxLife  time.Duration `envconfig:"DB_CONN_MAX_LIFETIME" default:"5m"`
}

type RedisConfig struct {
	Addr     string        `envconfig:"REDIS_ADDR"`
	DB       int           `envconfig:"REDIS_DB" default:"0"`
	OrderTTL time.Duration `envconfig:"ORDER_CACHE_TTL" default:"10s"`
}

type AMQPConfig struct {
	URL      string `envconfig:"RABBITMQ_URL"`
	Exchange string `envconfig:"RABBITMQ_EXCHANGE" default:"order.exchange"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.DB.Driver {
	case "mysql", "postgres":
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DB.Driver)
	}
	if c.DB.DSN == "" && c.DB.Driver == "postgres" {
		return fmt.Errorf("DATABASE_DSN is required for postgres")
	}
	return nil
}

// MySQLDSN builds the DSN from the MYSQL_* parts unless DATABASE_DSN is set.
func (c DBConfig) MySQLDSN() string {
	if c.DSN != "" {
		return c.DSN
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local", c.User, c.Password, c.Host, c.Port, c.Name)
}
