package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"path/filepath"
	"strings"
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
	Meta         Meta         `mapstructure:",squash"`
	Gemini       Gemini       `mapstructure:",squash"`
	Redis        Redis        `mapstructure:",squash"`
	SnapshotSync SnapshotSync `mapstructure:",squash"`
}

type App struct {
	LogLevel       string   `mapstructure:"log_level"`
	LogFile        string   `mapstructure:"log_file"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	URL      string `mapstructure:"database_url"`
	Host     string `mapstructure:"pghost"`
	Port     string `mapstructure:"pgport"`
	Name     string `mapstructure:"pgdatabase"`
	User     string `mapstructure:"pguser"`
	Password string `mapstructure:"pgpassword"`
	SSLMode  string `mapstructure:"pgsslmode"`
}

type Meta struct {
	BaseURL     string        `mapstructure:"meta_base_url"`
	Version     string        `mapstructure:"meta_version"`
	URL         string        `mapstructure:"-"`
	AccessToken string        `mapstructure:"facebook_access_token"`
	PageLimit   int           `mapstructure:"meta_page_limit"`
	PageDelay   time.Duration `mapstructure:"meta_page_delay"`
	DatePreset  string        `mapstructure:"meta_date_preset"`
	HTTPTimeout time.Duration `mapstructure:"meta_http_timeout"`
}

type Gemini struct {
	APIKey string `mapstructure:"gemini_api_key"`
	Model  string `mapstructure:"gemini_model"`
}

type Redis struct {
	URL           string        `mapstructure:"redis_url"`
	QueryCacheTTL time.Duration `mapstructure:"query_cache_ttl"`
}

type SnapshotSync struct {
	CronSchedule string `mapstructure:"snapshot_sync_cron"`
	AccountID    string `mapstructure:"snapshot_sync_account_id"`
	Enabled      bool   `mapstructure:"snapshot_sync_enabled"`
}

// SetDefaults registra todas as chaves conhecidas. O viper só entrega no
// Unmarshal as chaves que ele conhece, por isso até as vazias ficam aqui.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("HOST", "0.0.0.0")
	v.SetDefault("PORT", "8000")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FILE", "")
	v.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:8501")

	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("PGHOST", "localhost")
	v.SetDefault("PGPORT", "5432")
	v.SetDefault("PGDATABASE", "facebookdb")
	v.SetDefault("PGUSER", "postgres")
	v.SetDefault("PGPASSWORD", "")
	v.SetDefault("PGSSLMODE", "disable")

	v.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	v.SetDefault("META_VERSION", "v18.0")
	v.SetDefault("FACEBOOK_ACCESS_TOKEN", "")
	v.SetDefault("META_PAGE_LIMIT", 500)
	v.SetDefault("META_PAGE_DELAY", 100*time.Millisecond)
	v.SetDefault("META_DATE_PRESET", "last_30d")
	v.SetDefault("META_HTTP_TIMEOUT", 30*time.Second)

	v.SetDefault("GEMINI_API_KEY", "")
	v.SetDefault("GEMINI_MODEL", "gemini-2.5-flash")

	v.SetDefault("REDIS_URL", "")
	v.SetDefault("QUERY_CACHE_TTL", 10*time.Minute)

	v.SetDefault("SNAPSHOT_SYNC_CRON", "0 3 * * *") // Todos os dias às 3h da manhã
	v.SetDefault("SNAPSHOT_SYNC_ACCOUNT_ID", "")
	v.SetDefault("SNAPSHOT_SYNC_ENABLED", false)
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	v := viper.New()
	SetDefaults(v)

	v.SetConfigType("env")
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env): ", err)
	}

	config := &Config{}
	err := v.Unmarshal(config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, fmt.Errorf("erro ao decodificar configuração: %w", err)
	}

	config.Meta.URL = fmt.Sprintf("%s/%s", strings.TrimRight(config.Meta.BaseURL, "/"), config.Meta.Version)
	config.Database.DSN = BuildDSN(config.Database)

	return config, nil
}

// BuildDSN monta a string de conexão. DATABASE_URL tem precedência sobre as
// variáveis PG*; o esquema postgres:// é reescrito para postgresql://.
func BuildDSN(db Database) string {
	if db.URL != "" {
		if strings.HasPrefix(db.URL, "postgres://") {
			return "postgresql://" + strings.TrimPrefix(db.URL, "postgres://")
		}
		return db.URL
	}

	dsn := url.URL{
		Scheme: "postgresql",
		User:   url.UserPassword(db.User, db.Password),
		Host:   net.JoinHostPort(db.Host, db.Port),
		Path:   "/" + db.Name,
	}

	if db.SSLMode != "" {
		dsn.RawQuery = "sslmode=" + url.QueryEscape(db.SSLMode)
	}

	return dsn.String()
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
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de: ", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
