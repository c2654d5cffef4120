package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// DefaultInformaticaURL is the case-update process used when INFORMATICA_URL is unset.
const DefaultInformaticaURL = "https://na1.ai.dm-us.informaticacloud.com/active-bpel/rt/UpdateCaseAITag"

type Config struct {
	Env             string        `mapstructure:"ENV"`
	Port            string        `mapstructure:"PORT"`
	APIKey          string        `mapstructure:"API_KEY"`
	CORSAllowed     string        `mapstructure:"CORS_ALLOWED_ORIGINS"`
	RequestTimeout  time.Duration `mapstructure:"REQUEST_TIMEOUT"`
	LogLevel        string        `mapstructure:"LOG_LEVEL"`
	OpenAIAPIKey    string        `mapstructure:"OPENAI_API_KEY"`
	OpenAIBaseURL   string        `mapstructure:"OPENAI_BASE_URL"`
	OpenAIModel     string        `mapstructure:"OPENAI_MODEL"`
	OracleTimeout   time.Duration `mapstructure:"ORACLE_TIMEOUT"`
	InformaticaURL  string        `mapstructure:"INFORMATICA_URL"`
	InformaticaKey  string        `mapstructure:"INFORMATICA_API_KEY"`
	NotifierEnabled bool          `mapstructure:"NOTIFIER_ENABLED"`
	NotifierTimeout time.Duration `mapstructure:"NOTIFIER_TIMEOUT"`
}

func Load() (Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	_ = v.ReadInConfig()

	v.SetDefault("ENV", "dev")
	v.SetDefault("PORT", "8080")
	v.SetDefault("API_KEY", "")
	v.SetDefault("REQUEST_TIMEOUT", "90s")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("OPENAI_API_KEY", "")
	v.SetDefault("OPENAI_BASE_URL", "")
	v.SetDefault("OPENAI_MODEL", "gpt-4-1106-preview")
	v.SetDefault("ORACLE_TIMEOUT", "60s")
	v.SetDefault("INFORMATICA_URL", DefaultInformaticaURL)
	v.SetDefault("INFORMATICA_API_KEY", "")
	v.SetDefault("NOTIFIER_ENABLED", true)
	v.SetDefault("NOTIFIER_TIMEOUT", "15s")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every missing required secret at once.
func (c Config) Validate() error {
	var missing []string
	if strings.TrimSpace(c.OpenAIAPIKey) == "" {
		missing = append(missing, "OPENAI_API_KEY")
	}
	if strings.TrimSpace(c.InformaticaKey) == "" {
		missing = append(missing, "INFORMATICA_API_KEY")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}
	if strings.TrimSpace(c.InformaticaURL) == "" {
		return errors.New("INFORMATICA_URL must not be empty")
	}
	return nil
}
