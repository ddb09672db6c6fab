package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	App    App    `mapstructure:",squash"`
	GA4    GA4    `mapstructure:",squash"`
	Export Export `mapstructure:",squash"`

	// EnvFile é o .env carregado, vazio quando nenhum foi encontrado
	EnvFile string `mapstructure:"-"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	LogFile  string `mapstructure:"log_file"`
}

type GA4 struct {
	PropertyID      string        `mapstructure:"ga4_property_id"`
	CredentialsFile string        `mapstructure:"ga4_credentials_file"`
	Endpoint        string        `mapstructure:"ga4_endpoint"`
	RequestTimeout  time.Duration `mapstructure:"ga4_request_timeout"`
}

type Export struct {
	OutputDir string `mapstructure:"output_dir"`
	StartDate string `mapstructure:"ga4_start_date"`
	EndDate   string `mapstructure:"ga4_end_date"`
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FILE", "ga-4-report.app.log")

	v.SetDefault("GA4_PROPERTY_ID", "354503001")
	v.SetDefault("GA4_CREDENTIALS_FILE", "./service-account.json")
	v.SetDefault("GA4_ENDPOINT", "")           // vazio usa o endpoint público da API
	v.SetDefault("GA4_REQUEST_TIMEOUT", "60s") // limite da chamada runReport

	v.SetDefault("OUTPUT_DIR", ".")
	v.SetDefault("GA4_START_DATE", "")
	v.SetDefault("GA4_END_DATE", "")
}

// flagKeys liga cada flag de linha de comando à chave de configuração que ela sobrescreve
var flagKeys = map[string]string{
	"start_date": "GA4_START_DATE",
	"end_date":   "GA4_END_DATE",
}

// RegisterFlags registra as flags de linha de comando aceitas pelo exportador
func RegisterFlags(flags *pflag.FlagSet) {
	flags.String("start_date", "", "Start date (YYYY-MM-DD)")
	flags.String("end_date", "", "End date (YYYY-MM-DD)")
}

// NewConfig combina defaults, .env, variáveis de ambiente e flags, nessa ordem de precedência crescente
func NewConfig(flags *pflag.FlagSet) (*Config, error) {
	envFile := loadEnvFile() // ONLY LOCAL

	v := viper.New()
	SetDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			flag := flags.Lookup(name)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, errors.Wrapf(err, "config: bind flag %s", name)
			}
		}
	}

	config := &Config{}
	err := v.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, errors.Wrap(err, "config: unmarshal")
	}

	config.EnvFile = envFile
	config.GA4.PropertyID = strings.TrimSpace(config.GA4.PropertyID)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			return location
		}
	}

	return ""
}
