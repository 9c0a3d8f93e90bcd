package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
)

const envPrefix = "TAGZ"

var errMissingSecret = errors.New("JWT_SECRET must be set")
var errMissingDBConn = errors.New("DB_CONNECTION_URL must be set")

type App struct {
	Port            string `mapstructure:"PORT"`
	DBConnectionURL string `mapstructure:"DB_CONNECTION_URL"`
	JWTSecret       string `mapstructure:"JWT_SECRET"`
	TokenTTLHours   int    `mapstructure:"TOKEN_TTL_HOURS"`
	CORSOrigins     string `mapstructure:"CORS_ORIGINS"`
}

func NewApp() (App, error) {
	viper.SetEnvPrefix(envPrefix)

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("TOKEN_TTL_HOURS", 336) // 14 days
	viper.SetDefault("CORS_ORIGINS", "https://tagz.lol,https://www.tagz.lol,http://localhost:3000")
	viper.SetDefault("DB_CONNECTION_URL", "")
	viper.SetDefault("JWT_SECRET", "")

	envs := []string{"PORT", "DB_CONNECTION_URL", "JWT_SECRET", "TOKEN_TTL_HOURS", "CORS_ORIGINS"}
	for _, key := range envs {
		if err := viper.BindEnv(key); err != nil {
			return App{}, err
		}
	}

	cfg := App{}
	if err := viper.Unmarshal(&cfg); err != nil {
		return App{}, err
	}

	if err := validate(&cfg); err != nil {
		return App{}, err
	}

	return cfg, nil
}

// Origins splits the configured comma separated origin list.
func (a App) Origins() []string {
	parts := strings.Split(a.CORSOrigins, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

func validate(cfg *App) error {
	if cfg.JWTSecret == "" {
		return errMissingSecret
	}
	if cfg.DBConnectionURL == "" {
		return errMissingDBConn
	}
	return nil
}
