package config

import (
	"os"
	"path/filepath"
	"strconv"
	"unicode/utf8"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

var ErrInvalidConfig = errors.New("config: configuração inválida")

type Config struct {
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	Dataset        Dataset        `mapstructure:",squash"`
	Dashboard      Dashboard      `mapstructure:",squash"`
	Cors           Cors           `mapstructure:",squash"`
	ReportSnapshot ReportSnapshot `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Dataset struct {
	Path      string `mapstructure:"dataset_path"`
	Delimiter string `mapstructure:"dataset_delimiter"`
}

type Dashboard struct {
	Title       string `mapstructure:"dashboard_title"`
	ChartWidth  int    `mapstructure:"chart_width"`
	ChartHeight int    `mapstructure:"chart_height"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type ReportSnapshot struct {
	CronSchedule string `mapstructure:"report_snapshot_cron"`
	Enabled      bool   `mapstructure:"report_snapshot_enabled"`
	OutputDir    string `mapstructure:"report_snapshot_dir"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATASET_PATH", "Superstore_Sales_utf8.csv")
	viper.SetDefault("DATASET_DELIMITER", ",")

	viper.SetDefault("DASHBOARD_TITLE", "Data App Assignment")
	viper.SetDefault("CHART_WIDTH", 900)
	viper.SetDefault("CHART_HEIGHT", 420)

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	// Snapshot de relatórios
	viper.SetDefault("REPORT_SNAPSHOT_CRON", "0 6 * * *") // Todos os dias às 6h da manhã
	viper.SetDefault("REPORT_SNAPSHOT_ENABLED", false)
	viper.SetDefault("REPORT_SNAPSHOT_DIR", "reports")

	viper.SetDefault("LOG_LEVEL", "info")
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

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, errors.Wrap(err, "config: erro ao decodificar variáveis")
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate confere os valores que não podem ser corrigidos em tempo de execução
func (c *Config) Validate() error {
	port, err := strconv.Atoi(c.Server.Port)
	if err != nil || port <= 0 || port > 65535 {
		return errors.Wrapf(ErrInvalidConfig, "porta inválida: %q", c.Server.Port)
	}

	if c.Dataset.Path == "" {
		return errors.Wrap(ErrInvalidConfig, "DATASET_PATH não informado")
	}

	if utf8.RuneCountInString(c.Dataset.Delimiter) != 1 {
		return errors.Wrapf(ErrInvalidConfig, "delimitador deve ter um único caractere: %q", c.Dataset.Delimiter)
	}

	if c.Dashboard.ChartWidth <= 0 || c.Dashboard.ChartHeight <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "dimensões do gráfico inválidas: %dx%d",
			c.Dashboard.ChartWidth, c.Dashboard.ChartHeight)
	}

	if c.ReportSnapshot.Enabled && c.ReportSnapshot.OutputDir == "" {
		return errors.Wrap(ErrInvalidConfig, "REPORT_SNAPSHOT_DIR não informado")
	}

	return nil
}

// DelimiterRune retorna o separador do CSV, usando vírgula quando não configurado
func (c *Config) DelimiterRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Dataset.Delimiter)
	if r == utf8.RuneError {
		return ','
	}
	return r
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
		logrus.Debug("Tentando carregar .env de:", location)
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
