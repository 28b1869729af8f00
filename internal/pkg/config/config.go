package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection,
//   provider credentials) and security settings
// - default: Values common across all environments (clinic hours, hold TTL,
//   timeouts) and standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	Redis   RedisConfig
	CORS    CORSConfig
	Log     LogConfig
	JWT     JWTConfig
	Clinic  ClinicConfig
	Payment PaymentConfig
	Sweeper SweeperConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
}

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:"127.0.0.1:6379"`
	Username string `envconfig:"REDIS_USERNAME" default:""`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

type JWTConfig struct {
	Secret string `envconfig:"JWT_SECRET" required:"true"`
}

// ClinicConfig carries the business constants every booking rule evaluates
// against. All hour/weekday values are interpreted in TimeZone.
type ClinicConfig struct {
	TimeZone          string        `envconfig:"CLINIC_TIMEZONE" default:"America/Argentina/Buenos_Aires"`
	ClosedWeekday     int           `envconfig:"CLINIC_CLOSED_WEEKDAY" default:"0"`
	OpenHour          int           `envconfig:"CLINIC_OPEN_HOUR" default:"8"`
	CloseHour         int           `envconfig:"CLINIC_CLOSE_HOUR" default:"18"`
	SlotMinutes       int           `envconfig:"CLINIC_SLOT_MINUTES" default:"30"`
	MinNoticeHours    int           `envconfig:"CLINIC_MIN_NOTICE_HOURS" default:"2"`
	HoldTTL           time.Duration `envconfig:"CLINIC_HOLD_TTL" default:"10m"`
	CancelNoticeHours int           `envconfig:"CLINIC_CANCEL_NOTICE_HOURS" default:"24"`
}

type PaymentConfig struct {
	BaseURL          string        `envconfig:"PAYMENT_API_BASE_URL" default:"https://api.mercadopago.com"`
	AccessToken      string        `envconfig:"PAYMENT_ACCESS_TOKEN" required:"true"`
	RequestTimeout   time.Duration `envconfig:"PAYMENT_REQUEST_TIMEOUT" default:"10s"`
	MinHoldRemaining time.Duration `envconfig:"PAYMENT_MIN_HOLD_REMAINING" default:"2m"`
	SuccessURL       string        `envconfig:"PAYMENT_SUCCESS_URL" default:""`
	FailureURL       string        `envconfig:"PAYMENT_FAILURE_URL" default:""`
}

type SweeperConfig struct {
	Interval time.Duration `envconfig:"SWEEP_INTERVAL" default:"1m"`
	LockTTL  time.Duration `envconfig:"SWEEP_LOCK_TTL" default:"45s"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
	)
}

func (c *ClinicConfig) Location() (*time.Location, error) {
	return time.LoadLocation(c.TimeZone)
}

func LoadConfig() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret: "test-secret",
		},
		Clinic: ClinicConfig{
			TimeZone:          "America/Argentina/Buenos_Aires",
			ClosedWeekday:     0,
			OpenHour:          8,
			CloseHour:         18,
			SlotMinutes:       30,
			MinNoticeHours:    2,
			HoldTTL:           10 * time.Minute,
			CancelNoticeHours: 24,
		},
		Payment: PaymentConfig{
			BaseURL:          "http://localhost:9999",
			AccessToken:      "test-token",
			RequestTimeout:   2 * time.Second,
			MinHoldRemaining: 2 * time.Minute,
		},
		Sweeper: SweeperConfig{
			Interval: time.Minute,
			LockTTL:  45 * time.Second,
		},
	}
}
