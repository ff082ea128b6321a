package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	ProviderAuto   = "auto"
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
	ProviderDemo   = "demo"

	ClassifierKeyword = "keyword"
	ClassifierLLM     = "llm"
)

type Config struct {
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	Data           Data           `mapstructure:",squash"`
	Insight        Insight        `mapstructure:",squash"`
	SMTP           SMTP           `mapstructure:",squash"`
	CompetitorSync CompetitorSync `mapstructure:",squash"`
	Cors           Cors           `mapstructure:",squash"`
}

type App struct {
	Env      string `mapstructure:"app_env"`
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type Data struct {
	SnapshotFile   string `mapstructure:"data_file"`
	CompetitorFile string `mapstructure:"competitor_file"`
	OutboxFile     string `mapstructure:"outbox_file"`
}

type Insight struct {
	Provider      string        `mapstructure:"insight_provider"`
	Classifier    string        `mapstructure:"query_classifier"`
	Timeout       time.Duration `mapstructure:"insight_timeout"`
	MaxTokens     int           `mapstructure:"insight_max_tokens"`
	Temperature   float32       `mapstructure:"insight_temperature"`
	GeminiAPIKey  string        `mapstructure:"gemini_api_key"`
	GeminiModel   string        `mapstructure:"gemini_model"`
	GeminiBaseURL string        `mapstructure:"gemini_base_url"`
	OpenAIAPIKey  string        `mapstructure:"openai_api_key"`
	OpenAIModel   string        `mapstructure:"openai_model"`
}

type SMTP struct {
	Host     string `mapstructure:"smtp_host"`
	Port     int    `mapstructure:"smtp_port"`
	User     string `mapstructure:"smtp_user"`
	Password string `mapstructure:"smtp_pass"`
	From     string `mapstructure:"smtp_from"`
}

type CompetitorSync struct {
	CronSchedule string `mapstructure:"competitor_sync_cron"`
	Enabled      bool   `mapstructure:"competitor_sync_enabled"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

// Configured indica se todas as credenciais SMTP foram informadas
func (s SMTP) Configured() bool {
	return s.Host != "" && s.Port > 0 && s.User != "" && s.Password != ""
}

// ResolveProvider resolve "auto" para o primeiro provedor com chave configurada
func (i Insight) ResolveProvider() string {
	switch i.Provider {
	case ProviderGemini, ProviderOpenAI, ProviderDemo:
		return i.Provider
	}

	switch {
	case i.GeminiAPIKey != "":
		return ProviderGemini
	case i.OpenAIAPIKey != "":
		return ProviderOpenAI
	default:
		return ProviderDemo
	}
}

// ResolveClassifier usa o classificador LLM apenas quando há chave OpenAI
func (i Insight) ResolveClassifier() string {
	if i.Classifier == ClassifierKeyword || i.OpenAIAPIKey == "" {
		return ClassifierKeyword
	}
	return ClassifierLLM
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "debug")

	v.SetDefault("HOST", "localhost")
	v.SetDefault("PORT", "5000")
	v.SetDefault("SHUTDOWN_TIMEOUT", "10s")

	v.SetDefault("DATA_FILE", "data/mock_data.json")
	v.SetDefault("COMPETITOR_FILE", "data/competitor_data.json")
	v.SetDefault("OUTBOX_FILE", "data/outgoing_emails.json")

	v.SetDefault("INSIGHT_PROVIDER", ProviderAuto)
	v.SetDefault("QUERY_CLASSIFIER", ClassifierLLM)
	v.SetDefault("INSIGHT_TIMEOUT", "20s")
	v.SetDefault("INSIGHT_MAX_TOKENS", 1024)
	v.SetDefault("INSIGHT_TEMPERATURE", 0.7)
	v.SetDefault("GEMINI_API_KEY", "")
	v.SetDefault("GEMINI_MODEL", "gemini-1.5-flash")
	v.SetDefault("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta")
	v.SetDefault("OPENAI_API_KEY", "")
	v.SetDefault("OPENAI_MODEL", "gpt-4o-mini")

	v.SetDefault("SMTP_HOST", "")
	v.SetDefault("SMTP_PORT", 0)
	v.SetDefault("SMTP_USER", "")
	v.SetDefault("SMTP_PASS", "")
	v.SetDefault("SMTP_FROM", "")

	v.SetDefault("COMPETITOR_SYNC_CRON", "0 */6 * * *") // A cada 6 horas
	v.SetDefault("COMPETITOR_SYNC_ENABLED", false)

	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	v := viper.New()
	SetDefaults(v)

	v.SetConfigType("env")
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		logrus.Debug("config: using environment only (.env not read by viper): ", err)
	}

	config := &Config{}
	err := v.Unmarshal(config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if config.SMTP.From == "" {
		config.SMTP.From = config.SMTP.User
	}

	return config, nil
}

// loadEnvFile carrega o .env do diretório atual ou de um dos diretórios pais
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("config: could not resolve working directory: ", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("config: .env loaded from ", location)
			return
		}
	}

	logrus.Debug("config: no .env file found")
}
