package postgres

import (
	"math/rand"
	"net"
	"net/url"
	"strconv"
	"time"
)

type Config struct {
	Host     string `yaml:"host" mapstructure:"host" default:"localhost"`
	Port     int    `yaml:"port" mapstructure:"port" default:"5432"`
	Name     string `yaml:"name" mapstructure:"name" default:"postgres"`
	User     string `yaml:"user" mapstructure:"user" default:"root"`
	Password string `yaml:"password" mapstructure:"password" default:""`
	SSLMode  string `yaml:"sslmode" mapstructure:"sslmode" default:"disable"`

	// Connection pool settings
	MaxOpenConns          int           `yaml:"max_open_conns" mapstructure:"max_open_conns" default:"10"`
	MaxIdleConns          int           `yaml:"max_idle_conns" mapstructure:"max_idle_conns" default:"4"`
	ConnMaxIdleTime       time.Duration `yaml:"conn_max_idle_time" mapstructure:"conn_max_idle_time" default:"5m"`
	ConnMaxLifetime       time.Duration `yaml:"conn_max_lifetime" mapstructure:"conn_max_lifetime" default:"5m"`
	ConnMaxLifetimeJitter time.Duration `yaml:"conn_max_lifetime_jitter" mapstructure:"conn_max_lifetime_jitter" default:"2m"`
}

// ConnectionURL returns the postgres:// URL of the database.
func (c Config) ConnectionURL() *url.URL {
	pgURL := &url.URL{
		Scheme: "postgres",
		Host:   net.JoinHostPort(c.Host, strconv.Itoa(c.Port)),
		User:   url.UserPassword(c.User, c.Password),
		Path:   c.Name,
	}
	sslMode := c.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	q := pgURL.Query()
	q.Add("sslmode", sslMode)
	pgURL.RawQuery = q.Encode()

	return pgURL
}

func (c Config) ConnMaxLifetimeWithJitter() time.Duration {
	var jitter time.Duration
	if c.ConnMaxLifetimeJitter > 0 {
		//nolint:gosec
		r := rand.New(rand.NewSource(time.Now().UnixNano()))
		jitter = time.Duration(r.Int63n(int64(c.ConnMaxLifetimeJitter)))
	}

	return c.ConnMaxLifetime + jitter
}
