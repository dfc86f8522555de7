package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	DatasetSourceCSV      = "csv"
	DatasetSourcePostgres = "postgres"
)

type Config struct {
	App                App                `mapstructure:",squash"`
	Server             Server             `mapstructure:",squash"`
	Dataset            Dataset            `mapstructure:",squash"`
	Database           Database           `mapstructure:",squash"`
	Dashboard          Dashboard          `mapstructure:",squash"`
	Forecast           Forecast           `mapstructure:",squash"`
	ForecastCacheSweep ForecastCacheSweep `mapstructure:",squash"`
	Auth               Auth               `mapstructure:",squash"`
	Cors               Cors               `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Dataset struct {
	Source string `mapstructure:"dataset_source"`
	Path   string `mapstructure:"dataset_path"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
	Table    string `mapstructure:"database_sales_table"`
}

type Dashboard struct {
	CurrencySymbol string `mapstructure:"currency_symbol"`
}

type Forecast struct {
	DefaultDays int           `mapstructure:"forecast_default_days"`
	MinDays     int           `mapstructure:"forecast_min_days"`
	MaxDays     int           `mapstructure:"forecast_max_days"`
	CacheSize   int           `mapstructure:"forecast_cache_size"`
	CacheTTL    time.Duration `mapstructure:"forecast_cache_ttl"`
}

type ForecastCacheSweep struct {
	CronSchedule string `mapstructure:"forecast_cache_sweep_cron"`
	Enabled      bool   `mapstructure:"forecast_cache_sweep_enabled"`
}

type Auth struct {
	Secret            string        `mapstructure:"auth_secret"`
	AdminEmail        string        `mapstructure:"admin_email"`
	AdminPasswordHash string        `mapstructure:"admin_password_hash"`
	TokenTTL          time.Duration `mapstructure:"auth_token_ttl"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATASET_SOURCE", DatasetSourceCSV)
	viper.SetDefault("DATASET_PATH", "dummy_sales_data.csv")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/sales?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_SALES_TABLE", "sales")

	viper.SetDefault("CURRENCY_SYMBOL", "R")

	// Limites do slider de previsão (em dias)
	viper.SetDefault("FORECAST_DEFAULT_DAYS", 30)
	viper.SetDefault("FORECAST_MIN_DAYS", 7)
	viper.SetDefault("FORECAST_MAX_DAYS", 90)
	viper.SetDefault("FORECAST_CACHE_SIZE", 128)
	viper.SetDefault("FORECAST_CACHE_TTL", "30m")

	viper.SetDefault("FORECAST_CACHE_SWEEP_CRON", "*/10 * * * *") // A cada 10 minutos
	viper.SetDefault("FORECAST_CACHE_SWEEP_ENABLED", true)

	viper.SetDefault("AUTH_SECRET", "your_secret_key")
	viper.SetDefault("ADMIN_EMAIL", "admin@localhost")
	viper.SetDefault("ADMIN_PASSWORD_HASH", "")
	viper.SetDefault("AUTH_TOKEN_TTL", "12h")

	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:8000")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Validate verifica combinações inválidas de configuração
func (c *Config) Validate() error {
	switch c.Dataset.Source {
	case DatasetSourceCSV:
		if c.Dataset.Path == "" {
			return fmt.Errorf("config: DATASET_PATH é obrigatório para a fonte csv")
		}
	case DatasetSourcePostgres:
	default:
		return fmt.Errorf("config: DATASET_SOURCE inválido: %q", c.Dataset.Source)
	}

	f := c.Forecast
	if f.MinDays < 1 || f.MinDays > f.MaxDays {
		return fmt.Errorf("config: intervalo de previsão inválido: %d..%d", f.MinDays, f.MaxDays)
	}
	if f.DefaultDays < f.MinDays || f.DefaultDays > f.MaxDays {
		return fmt.Errorf("config: FORECAST_DEFAULT_DAYS fora do intervalo: %d", f.DefaultDays)
	}

	return nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
