package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App              App              `mapstructure:",squash"`
	Server           Server           `mapstructure:",squash"`
	Database         Database         `mapstructure:",squash"`
	Stripe           Stripe           `mapstructure:",squash"`
	InsightCache     InsightCache     `mapstructure:",squash"`
	WebhookRetention WebhookRetention `mapstructure:",squash"`
	Auth             Auth             `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Stripe struct {
	BaseURL               string `mapstructure:"stripe_base_url"`
	URL                   string `mapstructure:"-"`
	APIVersion            string `mapstructure:"stripe_api_version"`
	SecretKey             string `mapstructure:"stripe_secret_key"`
	WebhookSecret         string `mapstructure:"stripe_webhook_secret"`
	RequestTimeoutSeconds int    `mapstructure:"stripe_request_timeout_seconds"`
	PageSize              int    `mapstructure:"stripe_page_size"`
}

type InsightCache struct {
	TTLMinutes int `mapstructure:"insight_cache_ttl_minutes"`
}

type WebhookRetention struct {
	CronSchedule   string `mapstructure:"webhook_retention_cron"`
	RetentionHours int    `mapstructure:"webhook_retention_hours"`
	Enabled        bool   `mapstructure:"webhook_retention_enabled"`
}

type Auth struct {
	Secret        string `mapstructure:"auth_secret"`
	TokenTTLHours int    `mapstructure:"auth_token_ttl_hours"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/insights")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("STRIPE_BASE_URL", "https://api.stripe.com")
	viper.SetDefault("STRIPE_API_VERSION", "2024-06-20")
	viper.SetDefault("STRIPE_SECRET_KEY", "sk_test_your_secret_key") // ONLY LOCAL
	viper.SetDefault("STRIPE_WEBHOOK_SECRET", "whsec_your_webhook_secret")
	viper.SetDefault("STRIPE_REQUEST_TIMEOUT_SECONDS", 30)
	viper.SetDefault("STRIPE_PAGE_SIZE", 100) // Máximo aceito pela API da Stripe

	// Tempo de vida do cache de insights em memória
	viper.SetDefault("INSIGHT_CACHE_TTL_MINUTES", 5)

	// Retenção de eventos de webhook processados (janela de retry da Stripe é de até 3 dias)
	viper.SetDefault("WEBHOOK_RETENTION_CRON", "0 2 * * *") // Todos os dias às 2h da manhã
	viper.SetDefault("WEBHOOK_RETENTION_HOURS", 72)
	viper.SetDefault("WEBHOOK_RETENTION_ENABLED", true)

	viper.SetDefault("AUTH_SECRET", "your_auth_secret")
	viper.SetDefault("AUTH_TOKEN_TTL_HOURS", 24)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Stripe.URL = fmt.Sprintf("%s/v1", config.Stripe.BaseURL)

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../.env"),            // Diretório acima
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
