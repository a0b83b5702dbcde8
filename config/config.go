package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/jooyongc/goldensnow360-dubai/catalog"
)

type Config struct {
	App   AppConfig         `yaml:"app"`
	Store StoreConfig       `yaml:"store"`
	Redis RedisConfig       `yaml:"redis"`
	AMQP  AMQPConfig        `yaml:"amqp"`
	Auth  AuthConfig        `yaml:"auth"`
	Map   catalog.MapConfig `yaml:"map"`
}

type AppConfig struct {
	Name        string `yaml:"name"`
	Port        string `yaml:"port"`
	Locale      string `yaml:"locale"`
	LogLevel    string `yaml:"log_level"`
	Placeholder string `yaml:"placeholder_image"`
}

// StoreConfig selects the backing store. "memory" serves the demo catalog and
// is what the site falls back to when nothing else is configured.
type StoreConfig struct {
	Driver   string         `yaml:"driver"`
	Mongo    MongoConfig    `yaml:"mongo"`
	Postgres PostgresConfig `yaml:"postgres"`
}

type MongoConfig struct {
	URI         string            `yaml:"uri"`
	Database    string            `yaml:"database"`
	Collections map[string]string `yaml:"collections"`
}

type PostgresConfig struct {
	DSN string `yaml:"dsn"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	TTL      string `yaml:"ttl"`
}

type AMQPConfig struct {
	URL      string `yaml:"url"`
	Exchange string `yaml:"exchange"`
}

type AuthConfig struct {
	JWTSecret     string `yaml:"jwt_secret"`
	ExpiryHours   int    `yaml:"expiry_hours"`
	AdminUsername string `yaml:"admin_username"`
	AdminPassword string `yaml:"admin_password"`
}

const (
	DriverMemory   = "memory"
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
)

// Collection keys used by the Mongo store.
const (
	CollectionProperties  = "properties"
	CollectionMessages    = "contact_submissions"
	CollectionHero        = "hero_sections"
	CollectionAbout       = "about_content"
	CollectionContactInfo = "contact_info"
	CollectionSettings    = "site_settings"
	CollectionAdmins      = "admin_users"
)

func Default() *Config {
	return &Config{
		App: AppConfig{
			Name:        "goldensnow360",
			Port:        "8080",
			Locale:      "en_US",
			LogLevel:    "info",
			Placeholder: catalog.DefaultPlaceholder,
		},
		Store: StoreConfig{
			Driver: DriverMemory,
			Mongo: MongoConfig{
				Database: "goldensnow360",
				Collections: map[string]string{
					CollectionProperties:  CollectionProperties,
					CollectionMessages:    CollectionMessages,
					CollectionHero:        CollectionHero,
					CollectionAbout:       CollectionAbout,
					CollectionContactInfo: CollectionContactInfo,
					CollectionSettings:    CollectionSettings,
					CollectionAdmins:      CollectionAdmins,
				},
			},
		},
		Redis: RedisConfig{TTL: "5m"},
		AMQP:  AMQPConfig{Exchange: "goldensnow360.events"},
		Auth:  AuthConfig{ExpiryHours: 24},
		Map:   catalog.DefaultMapConfig(),
	}
}

// Load reads the YAML file at path over the defaults, then applies
// environment overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		case errors.Is(err, os.ErrNotExist):
		default:
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}
	cfg.applyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	setString(&c.App.Port, "PORT")
	setString(&c.App.Locale, "LOCALE")
	setString(&c.App.LogLevel, "LOG_LEVEL")
	setString(&c.App.Placeholder, "PLACEHOLDER_IMAGE")

	setString(&c.Store.Driver, "DATA_DRIVER")
	setString(&c.Store.Mongo.URI, "MONGODB_URI")
	setString(&c.Store.Mongo.Database, "MONGODB_DATABASE")
	if c.Store.Mongo.Collections == nil {
		c.Store.Mongo.Collections = map[string]string{}
	}
	for _, key := range []string{
		CollectionProperties, CollectionMessages, CollectionHero, CollectionAbout,
		CollectionContactInfo, CollectionSettings, CollectionAdmins,
	} {
		if v := os.Getenv("MONGODB_COLLECTION_" + strings.ToUpper(key)); v != "" {
			c.Store.Mongo.Collections[key] = v
		}
	}
	setString(&c.Store.Postgres.DSN, "POSTGRES_DSN")

	setString(&c.Redis.Addr, "REDIS_ADDR")
	setString(&c.Redis.Password, "REDIS_PASSWORD")
	setString(&c.Redis.TTL, "REDIS_TTL")
	setInt(&c.Redis.DB, "REDIS_DB")

	setString(&c.AMQP.URL, "AMQP_URL")
	setString(&c.AMQP.Exchange, "AMQP_EXCHANGE")

	setString(&c.Auth.JWTSecret, "JWT_SECRET")
	setInt(&c.Auth.ExpiryHours, "JWT_EXPIRY_HOURS")
	setString(&c.Auth.AdminUsername, "ADMIN_USERNAME")
	setString(&c.Auth.AdminPassword, "ADMIN_PASSWORD")

	setInt(&c.Map.Width, "MAP_WIDTH")
	setInt(&c.Map.Height, "MAP_HEIGHT")
	setInt(&c.Map.Padding, "MAP_PADDING")
	setInt(&c.Map.MaxZoom, "MAP_MAX_ZOOM")
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	v := os.Getenv(key)
	if v == "" {
		return
	}
	if n, err := strconv.Atoi(v); err == nil {
		*dst = n
	}
}

func (c *Config) Validate() error {
	switch c.Store.Driver {
	case DriverMemory:
	case DriverMongo:
		if c.Store.Mongo.URI == "" {
			return errors.New("store driver mongo requires MONGODB_URI")
		}
	case DriverPostgres:
		if c.Store.Postgres.DSN == "" {
			return errors.New("store driver postgres requires POSTGRES_DSN")
		}
	default:
		return fmt.Errorf("unknown store driver %q", c.Store.Driver)
	}
	if c.Auth.JWTSecret == "" {
		return errors.New("JWT_SECRET not set")
	}
	if c.Auth.ExpiryHours <= 0 {
		c.Auth.ExpiryHours = 24
	}
	if c.Map.MaxZoom <= 0 {
		c.Map.MaxZoom = catalog.DefaultMapConfig().MaxZoom
	}
	if _, err := time.ParseDuration(c.Redis.TTL); err != nil {
		return fmt.Errorf("invalid redis ttl %q: %w", c.Redis.TTL, err)
	}
	return nil
}

func (c *Config) CacheTTL() time.Duration {
	d, err := time.ParseDuration(c.Redis.TTL)
	if err != nil {
		return 5 * time.Minute
	}
	return d
}

func (c *Config) Collection(key string) string {
	if name := c.Store.Mongo.Collections[key]; name != "" {
		return name
	}
	return key
}
