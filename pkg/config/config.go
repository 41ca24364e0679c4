package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	JWT       JWTConfig
	Log       LogConfig
	RateLimit RateLimitConfig
	Events    EventsConfig
}

type AppConfig struct {
	Name        string
	Port        string
	Env         string
	FrontendURL string // CORS allow-origin
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
	LogLevel string // silent, error, warn, info (GORM logger)
}

// RedisConfig - ใช้เป็น storage ของ rate limiter เท่านั้น, URL ว่าง = in-memory
type RedisConfig struct {
	URL      string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret    string
	Issuer    string // ว่าง = ไม่ตรวจ iss
	Audience  string // ว่าง = ไม่ตรวจ aud
	ExpiresIn time.Duration
}

type LogConfig struct {
	Level      string // debug, info, warn, error
	Format     string // json, text
	Output     string // stdout, file, both
	FilePath   string
	MaxSize    int // MB
	MaxBackups int
	MaxAge     int // วัน
	Compress   bool
}

// RateLimitConfig - default เท่ากับ 100 requests ต่อ 15 นาทีต่อ IP
type RateLimitConfig struct {
	Max    int
	Window time.Duration
}

// EventsConfig เลือกช่องทางส่ง task events: none, nats, kafka
type EventsConfig struct {
	Driver            string
	NATSURL           string
	NATSSubjectPrefix string
	KafkaBrokers      string
	KafkaTopic        string
}

const (
	EventsDriverNone  = "none"
	EventsDriverNATS  = "nats"
	EventsDriverKafka = "kafka"
)

func LoadConfig() (*Config, error) {
	// ไม่ error ถ้าไม่มี .env file (ใช้ environment variables แทน)
	_ = godotenv.Load()

	jwtExpires, err := getDuration("JWT_EXPIRES_IN", 7*24*time.Hour)
	if err != nil {
		return nil, err
	}
	rateWindow, err := getDuration("RATE_LIMIT_WINDOW", 15*time.Minute)
	if err != nil {
		return nil, err
	}

	config := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Task Management API"),
			Port:        getEnv("APP_PORT", "3000"),
			Env:         getEnv("APP_ENV", "development"),
			FrontendURL: getEnv("FRONTEND_URL", "http://localhost:5173"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			DBName:   getEnv("DB_NAME", "task_management"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
			LogLevel: getEnv("DB_LOG_LEVEL", "warn"),
		},
		Redis: RedisConfig{
			URL:      getEnv("REDIS_URL", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getInt("REDIS_DB", 0),
		},
		JWT: JWTConfig{
			Secret:    getEnv("JWT_SECRET", ""),
			Issuer:    getEnv("JWT_ISSUER", ""),
			Audience:  getEnv("JWT_AUDIENCE", ""),
			ExpiresIn: jwtExpires,
		},
		Log: LogConfig{
			Level:      getEnv("LOG_LEVEL", "info"),
			Format:     getEnv("LOG_FORMAT", "json"),
			Output:     getEnv("LOG_OUTPUT", "stdout"),
			FilePath:   getEnv("LOG_FILE", "logs/app.log"),
			MaxSize:    getInt("LOG_MAX_SIZE", 100),
			MaxBackups: getInt("LOG_MAX_BACKUPS", 5),
			MaxAge:     getInt("LOG_MAX_AGE", 30),
			Compress:   getEnv("LOG_COMPRESS", "true") == "true",
		},
		RateLimit: RateLimitConfig{
			Max:    getInt("RATE_LIMIT_MAX", 100),
			Window: rateWindow,
		},
		Events: EventsConfig{
			Driver:            strings.ToLower(getEnv("EVENTS_DRIVER", EventsDriverNone)),
			NATSURL:           getEnv("NATS_URL", "nats://localhost:4222"),
			NATSSubjectPrefix: getEnv("NATS_SUBJECT_PREFIX", "tasks"),
			KafkaBrokers:      getEnv("KAFKA_BROKERS", "localhost:9092"),
			KafkaTopic:        getEnv("KAFKA_TOPIC", "task-events"),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate ตรวจค่าที่ขาดไม่ได้
func (c *Config) Validate() error {
	var errs []error
	if c.JWT.Secret == "" {
		errs = append(errs, errors.New("JWT_SECRET is required"))
	}
	if c.RateLimit.Max < 1 {
		errs = append(errs, fmt.Errorf("RATE_LIMIT_MAX must be positive, got %d", c.RateLimit.Max))
	}
	switch c.Events.Driver {
	case EventsDriverNone, EventsDriverNATS, EventsDriverKafka:
	default:
		errs = append(errs, fmt.Errorf("EVENTS_DRIVER must be one of none, nats, kafka, got %q", c.Events.Driver))
	}
	return errors.Join(errs...)
}

// DSN สำหรับ gorm postgres driver
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		d.Host, d.User, d.Password, d.DBName, d.Port, d.SSLMode)
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getInt(key string, defaultValue int) int {
	n, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return n
}

// getDuration รับทั้ง "15m" และตัวเลขล้วน (วินาที)
func getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue, nil
	}
	if secs, err := strconv.Atoi(raw); err == nil {
		return time.Duration(secs) * time.Second, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid duration %q", key, raw)
	}
	return d, nil
}

func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
