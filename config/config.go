package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/cyverse-de/configurate"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// DefaultConfig contains the default configuration settings. Every setting may be overridden by a
// configuration file and then by an environment variable whose name is the upper-cased key with dots
// replaced by underscores; for example, `db.host` is overridden by DB_HOST.
const DefaultConfig = `
host: 0.0.0.0
port: 5000
log:
  level: info
db:
  host: localhost
  port: 5432
  name: vitalapp
  user: postgres
  password: postgres
  sslmode: disable
tls:
  enabled: false
  cert: ssl/server.crt
  key: ssl/server.key
seed:
  enabled: true
`

// TransportMode identifies how the HTTP listener is served.
type TransportMode string

const (
	// Plain serves unencrypted HTTP.
	Plain TransportMode = "plain"

	// TLS serves HTTPS using a certificate and key loaded from disk.
	TLS TransportMode = "tls"
)

// Transport describes how the HTTP listener is served. It's resolved once at startup.
type Transport struct {
	Mode     TransportMode
	CertFile string
	KeyFile  string
}

// DatabaseSettings contains the settings required to connect to PostgreSQL.
type DatabaseSettings struct {
	Host     string
	Port     int
	Name     string
	User     string
	Password string
	SSLMode  string
}

// URI returns the connection URI for the database.
func (d DatabaseSettings) URI() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:     "/" + d.Name,
		RawQuery: url.Values{"sslmode": []string{d.SSLMode}}.Encode(),
	}
	return u.String()
}

// Config contains the resolved settings for the service.
type Config struct {
	Host      string
	Port      int
	LogLevel  string
	Database  DatabaseSettings
	Transport Transport
	Seed      bool
}

// ListenAddress returns the address that the HTTP listener binds to.
func (c *Config) ListenAddress() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// newViper returns a viper instance containing the default settings merged with the settings in the
// configuration file at path, if one exists.
func newViper(path string) (*viper.Viper, error) {
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			return configurate.InitDefaults(path, DefaultConfig)
		}
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if err := v.ReadConfig(strings.NewReader(DefaultConfig)); err != nil {
		return nil, err
	}
	return v, nil
}

// Load reads the configuration, applying the configuration file at path (when present) and then the
// environment over the defaults. A missing configuration file isn't an error.
func Load(path string) (*Config, error) {
	wrapMsg := "unable to load the configuration"

	v, err := newViper(path)
	if err != nil {
		return nil, errors.Wrap(err, wrapMsg)
	}
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		Host:     v.GetString("host"),
		Port:     v.GetInt("port"),
		LogLevel: v.GetString("log.level"),
		Database: DatabaseSettings{
			Host:     v.GetString("db.host"),
			Port:     v.GetInt("db.port"),
			Name:     v.GetString("db.name"),
			User:     v.GetString("db.user"),
			Password: v.GetString("db.password"),
			SSLMode:  v.GetString("db.sslmode"),
		},
		Transport: Transport{Mode: Plain},
		Seed:      v.GetBool("seed.enabled"),
	}
	if v.GetBool("tls.enabled") {
		cfg.Transport = Transport{
			Mode:     TLS,
			CertFile: v.GetString("tls.cert"),
			KeyFile:  v.GetString("tls.key"),
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, wrapMsg)
	}

	return cfg, nil
}

// Validate verifies that the configuration can be used to start the service.
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	if c.Database.Port <= 0 || c.Database.Port > 65535 {
		return fmt.Errorf("invalid database port: %d", c.Database.Port)
	}
	if c.Transport.Mode == TLS {
		for _, path := range []string{c.Transport.CertFile, c.Transport.KeyFile} {
			if _, err := os.Stat(path); err != nil {
				return errors.Wrap(err, "TLS is enabled but the certificate material can't be read")
			}
		}
	}
	return nil
}
