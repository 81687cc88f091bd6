package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	DBHost     string `yaml:"db_host"`
	DBPort     string `yaml:"db_port"`
	DBUser     string `yaml:"db_user"`
	DBPassword string `yaml:"db_password"`
	DBName     string `yaml:"db_name"`
	DBSSLMode  string `yaml:"db_sslmode"`
	DBLogSQL   bool   `yaml:"db_log_sql"`

	ServerPort string `yaml:"server_port"`
	GinMode    string `yaml:"gin_mode"`

	JWTSecret      string `yaml:"jwt_secret"`
	JWTExpiryHours int    `yaml:"jwt_expiry_hours"`

	AutoMigrate   bool   `yaml:"auto_migrate"`
	SeedEnabled   bool   `yaml:"seed_enabled"`
	AdminEmail    string `yaml:"admin_email"`
	AdminPassword string `yaml:"admin_password"`
}

func defaults() *Config {
	return &Config{
		DBHost:         "localhost",
		DBPort:         "5432",
		DBUser:         "taskmanager",
		DBPassword:     "taskmanager",
		DBName:         "taskmanager",
		DBSSLMode:      "disable",
		ServerPort:     "8080",
		GinMode:        "release",
		JWTSecret:      "supersecretkey",
		JWTExpiryHours: 24,
		AutoMigrate:    true,
		SeedEnabled:    true,
		AdminEmail:     "hexlet@example.com",
		AdminPassword:  "qwerty",
	}
}

// Load reads .env, then the YAML file named by CONFIG_FILE, then the
// environment. Later sources win.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  No .env file found, using system environment variables")
	}

	cfg := defaults()
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}
	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	c.DBHost = getEnv("DB_HOST", c.DBHost)
	c.DBPort = getEnv("DB_PORT", c.DBPort)
	c.DBUser = getEnv("DB_USER", c.DBUser)
	c.DBPassword = getEnv("DB_PASSWORD", c.DBPassword)
	c.DBName = getEnv("DB_NAME", c.DBName)
	c.DBSSLMode = getEnv("DB_SSLMODE", c.DBSSLMode)
	c.DBLogSQL = getEnvBool("DB_LOG_SQL", c.DBLogSQL)
	c.ServerPort = getEnv("SERVER_PORT", c.ServerPort)
	c.GinMode = getEnv("GIN_MODE", c.GinMode)
	c.JWTSecret = getEnv("JWT_SECRET", c.JWTSecret)
	c.JWTExpiryHours = getEnvInt("JWT_EXPIRY_HOURS", c.JWTExpiryHours)
	c.AutoMigrate = getEnvBool("AUTO_MIGRATE", c.AutoMigrate)
	c.SeedEnabled = getEnvBool("SEED_ENABLED", c.SeedEnabled)
	c.AdminEmail = getEnv("ADMIN_EMAIL", c.AdminEmail)
	c.AdminPassword = getEnv("ADMIN_PASSWORD", c.AdminPassword)
}

// DSN is the key=value connection string used by gorm.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}

// MigrationURL is the database URL understood by golang-migrate's pgx/v5 driver.
func (c *Config) MigrationURL() string {
	u := url.URL{
		Scheme:   "pgx5",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     c.DBHost + ":" + c.DBPort,
		Path:     "/" + c.DBName,
		RawQuery: url.Values{"sslmode": []string{c.DBSSLMode}}.Encode(),
	}
	return u.String()
}

func (c *Config) JWTExpiry() time.Duration {
	return time.Duration(c.JWTExpiryHours) * time.Hour
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultVal
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		log.Printf("⚠️  Ignoring %s=%q: not a boolean", key, value)
		return defaultVal
	}
	return parsed
}

func getEnvInt(key string, defaultVal int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultVal
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("⚠️  Ignoring %s=%q: not an integer", key, value)
		return defaultVal
	}
	return parsed
}
