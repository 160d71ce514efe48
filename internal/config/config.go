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

// Origens possíveis do snapshot de dados
const (
	DatasetSourceEmbedded = "embedded"
	DatasetSourceFile     = "file"
	DatasetSourcePostgres = "postgres"
)

type Config struct {
	App      App      `mapstructure:",squash"`
	Server   Server   `mapstructure:",squash"`
	Database Database `mapstructure:",squash"`
	Dataset  Dataset  `mapstructure:",squash"`
	Gate     Gate     `mapstructure:",squash"`
	Resolver Resolver `mapstructure:",squash"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type App struct {
	LogLevel    string `mapstructure:"log_level"`
	Environment string `mapstructure:"app_env"`
	AgencyLabel string `mapstructure:"agency_label"`
}

type Dataset struct {
	Source string `mapstructure:"dataset_source"`
	File   string `mapstructure:"dataset_file"`
}

// Gate configura o código de acesso compartilhado
type Gate struct {
	Enabled        bool          `mapstructure:"gate_enabled"`
	AccessCode     string        `mapstructure:"access_code"`
	AccessCodeHash string        `mapstructure:"access_code_hash"`
	SessionSecret  string        `mapstructure:"session_secret"`
	SessionTTL     time.Duration `mapstructure:"session_ttl"`
}

type Resolver struct {
	CacheSize uint64 `mapstructure:"resolver_cache_size"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("ALLOWED_ORIGINS", "*")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/dashboard")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("DATASET_SOURCE", DatasetSourceEmbedded)
	viper.SetDefault("DATASET_FILE", "")

	viper.SetDefault("GATE_ENABLED", true)
	viper.SetDefault("ACCESS_CODE", "northstar") // ONLY LOCAL
	viper.SetDefault("ACCESS_CODE_HASH", "")
	viper.SetDefault("SESSION_SECRET", "your_secret_key")
	viper.SetDefault("SESSION_TTL", "12h")

	viper.SetDefault("RESOLVER_CACHE_SIZE", 1024)

	viper.SetDefault("AGENCY_LABEL", "")
	viper.SetDefault("APP_ENV", "local")
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
		logrus.Debug("Usando variáveis de ambiente (viper não conseguiu ler .env): ", err)
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

// Validate confere combinações inválidas de configuração
func (c *Config) Validate() error {
	switch c.Dataset.Source {
	case DatasetSourceEmbedded, DatasetSourcePostgres:
	case DatasetSourceFile:
		if c.Dataset.File == "" {
			return fmt.Errorf("config: DATASET_FILE is required when DATASET_SOURCE=%s", DatasetSourceFile)
		}
	default:
		return fmt.Errorf("config: unknown DATASET_SOURCE %q", c.Dataset.Source)
	}

	if c.Gate.Enabled {
		if c.Gate.AccessCode == "" && c.Gate.AccessCodeHash == "" {
			return fmt.Errorf("config: ACCESS_CODE or ACCESS_CODE_HASH is required when the gate is enabled")
		}
		if c.Gate.SessionSecret == "" {
			return fmt.Errorf("config: SESSION_SECRET is required when the gate is enabled")
		}
		if c.Gate.SessionTTL <= 0 {
			return fmt.Errorf("config: SESSION_TTL must be positive")
		}
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

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Debug("Arquivo .env carregado de: ", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
