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

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Database     Database     `mapstructure:",squash"`
	Auth         Auth         `mapstructure:",squash"`
	Analytics    Analytics    `mapstructure:",squash"`
	ReportExport ReportExport `mapstructure:",squash"`
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

// Auth guarda apenas o segredo de validação; os tokens são emitidos pelo serviço de login
type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

type Analytics struct {
	// Quantas consultas de estoque por loja podem rodar ao mesmo tempo
	LocationConcurrency int           `mapstructure:"analytics_location_concurrency"`
	DefaultPeriod       string        `mapstructure:"analytics_default_period"`
	RequestTimeout      time.Duration `mapstructure:"analytics_request_timeout"`
}

type ReportExport struct {
	CronSchedule string `mapstructure:"report_export_cron"`
	Enabled      bool   `mapstructure:"report_export_enabled"`
	Directory    string `mapstructure:"report_export_dir"`
	Period       string `mapstructure:"report_export_period"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/backoffice?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("AUTH_SECRET", "your_secret_key") // ONLY LOCAL

	viper.SetDefault("ANALYTICS_LOCATION_CONCURRENCY", 4)
	viper.SetDefault("ANALYTICS_DEFAULT_PERIOD", "monthly")
	viper.SetDefault("ANALYTICS_REQUEST_TIMEOUT", "30s")

	// Exportação agendada do relatório completo
	viper.SetDefault("REPORT_EXPORT_CRON", "0 6 * * 1") // Toda segunda-feira às 6h da manhã
	viper.SetDefault("REPORT_EXPORT_ENABLED", false)
	viper.SetDefault("REPORT_EXPORT_DIR", "./exports")
	viper.SetDefault("REPORT_EXPORT_PERIOD", "weekly")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
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

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
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

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
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
