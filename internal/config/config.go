package config

import (
	"errors"
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	RunAddress        string `env:"RUN_ADDRESS"`
	DatabaseDSN       string `env:"DATABASE_URI"`
	MigrationsDir     string `env:"MIGRATIONS_DIR"`
	JWTUserSecret     string `env:"JWT_USER_SECRET"`
	FxAPIAddress      string `env:"FX_API_ADDRESS"`
	PayoutAPIAddress  string `env:"PAYOUT_API_ADDRESS"`
	CardWebhookSecret string `env:"CARD_WEBHOOK_SECRET"`
	// PlatformAccountID — id служебного аккаунта платформы в таблице
	// collectives. Создается сидом миграции.
	PlatformAccountID int64 `env:"PLATFORM_ACCOUNT_ID"`
	// RecurringCron — расписание списаний по подпискам в формате cron.
	RecurringCron string `env:"RECURRING_CRON"`
}

func LoadConfig() (*Config, error) {
	// .env удобен при локальной разработке; в проде его нет и это не ошибка.
	_ = godotenv.Load()

	var flagsConfig, envConfig Config

	if envParseErr := env.Parse(&envConfig); envParseErr != nil {
		return nil, fmt.Errorf("parse env config: %s", envParseErr.Error())
	}

	loadFlags(&flagsConfig)

	conf := mergeConfig(&envConfig, &flagsConfig)
	if conf.DatabaseDSN == "" {
		return nil, errors.New("database DSN is not set")
	}
	if conf.JWTUserSecret == "" {
		return nil, errors.New("JWT secret is not set")
	}
	return conf, nil
}

func MustLoadConfig() *Config {
	config, err := LoadConfig()
	if err != nil {
		panic(err)
	}
	return config
}

func loadFlags(flagConfig *Config) {
	flag.StringVar(&flagConfig.RunAddress, "a", "localhost:8080", "Run address in format host:port")
	flag.StringVar(&flagConfig.DatabaseDSN, "d", "", "Database DSN")
	flag.StringVar(&flagConfig.MigrationsDir, "m", "internal/db/migrations", "Database migrations directory")
	flag.StringVar(&flagConfig.JWTUserSecret, "j", "", "JWT signing secret")
	flag.StringVar(&flagConfig.FxAPIAddress, "f", "", "FX rates provider base URL")
	flag.StringVar(&flagConfig.PayoutAPIAddress, "p", "", "Payout provider base URL")
	flag.StringVar(&flagConfig.CardWebhookSecret, "w", "", "Virtual card webhook shared secret")
	flag.Int64Var(&flagConfig.PlatformAccountID, "platform-id", 1, "Platform ledger account id")
	flag.StringVar(&flagConfig.RecurringCron, "cron", "@hourly", "Recurring charges cron schedule")

	flag.Parse()
}

func mergeConfig(envConfig, flagsConfig *Config) *Config {
	platformID := envConfig.PlatformAccountID
	if platformID == 0 {
		platformID = flagsConfig.PlatformAccountID
	}
	return &Config{
		RunAddress:        defaultIfBlank(envConfig.RunAddress, flagsConfig.RunAddress),
		DatabaseDSN:       defaultIfBlank(envConfig.DatabaseDSN, flagsConfig.DatabaseDSN),
		MigrationsDir:     defaultIfBlank(envConfig.MigrationsDir, flagsConfig.MigrationsDir),
		JWTUserSecret:     defaultIfBlank(envConfig.JWTUserSecret, flagsConfig.JWTUserSecret),
		FxAPIAddress:      defaultIfBlank(envConfig.FxAPIAddress, flagsConfig.FxAPIAddress),
		PayoutAPIAddress:  defaultIfBlank(envConfig.PayoutAPIAddress, flagsConfig.PayoutAPIAddress),
		CardWebhookSecret: defaultIfBlank(envConfig.CardWebhookSecret, flagsConfig.CardWebhookSecret),
		PlatformAccountID: platformID,
		RecurringCron:     defaultIfBlank(envConfig.RecurringCron, flagsConfig.RecurringCron),
	}
}

func defaultIfBlank(value string, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}
