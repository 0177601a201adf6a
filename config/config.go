package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App     AppConfig
	DB      DBConfig
	Redis   RedisConfig
	JWT     JWTConfig
	Booking BookingConfig
}

type AppConfig struct {
	Port           string
	Env            string
	MigrationsPath string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret        string
	AccessExpiry  time.Duration
	RefreshExpiry time.Duration
}

// BookingConfig holds the appointment booking business rules.
type BookingConfig struct {
	LeadTime         time.Duration // minimum gap between now and a bookable slot start
	Horizon          time.Duration // maximum gap between now and a bookable slot start
	CancelWindow     time.Duration // cancellation allowed until this long before start
	RescheduleWindow time.Duration // rescheduling allowed until this long before start
	SlotHorizonDays  int           // default slot generation window when no date given
	LockTTL          time.Duration // per-doctor booking lock lifetime
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	accessExpiry, err := time.ParseDuration(viper.GetString("JWT_ACCESS_EXPIRY"))
	if err != nil {
		accessExpiry = 15 * time.Minute
	}

	refreshExpiry, err := time.ParseDuration(viper.GetString("JWT_REFRESH_EXPIRY"))
	if err != nil {
		refreshExpiry = 7 * 24 * time.Hour
	}

	migrationsPath := viper.GetString("DB_MIGRATIONS_PATH")
	if migrationsPath == "" {
		migrationsPath = "db/migrations"
	}

	config := &Config{
		App: AppConfig{
			Port:           viper.GetString("APP_PORT"),
			Env:            viper.GetString("APP_ENV"),
			MigrationsPath: migrationsPath,
		},
		DB: DBConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret:        viper.GetString("JWT_SECRET"),
			AccessExpiry:  accessExpiry,
			RefreshExpiry: refreshExpiry,
		},
		Booking: loadBookingConfig(),
	}

	return config, nil
}

func loadBookingConfig() BookingConfig {
	cfg := BookingConfig{
		LeadTime:         24 * time.Hour,
		Horizon:          30 * 24 * time.Hour,
		CancelWindow:     24 * time.Hour,
		RescheduleWindow: 48 * time.Hour,
		SlotHorizonDays:  7,
		LockTTL:          10 * time.Second,
	}

	if d, err := time.ParseDuration(viper.GetString("BOOKING_LEAD_TIME")); err == nil {
		cfg.LeadTime = d
	}
	if d, err := time.ParseDuration(viper.GetString("BOOKING_HORIZON")); err == nil {
		cfg.Horizon = d
	}
	if d, err := time.ParseDuration(viper.GetString("BOOKING_CANCEL_WINDOW")); err == nil {
		cfg.CancelWindow = d
	}
	if d, err := time.ParseDuration(viper.GetString("BOOKING_RESCHEDULE_WINDOW")); err == nil {
		cfg.RescheduleWindow = d
	}
	if days := viper.GetInt("BOOKING_SLOT_HORIZON_DAYS"); days > 0 {
		cfg.SlotHorizonDays = days
	}
	if d, err := time.ParseDuration(viper.GetString("BOOKING_LOCK_TTL")); err == nil {
		cfg.LockTTL = d
	}

	return cfg
}
