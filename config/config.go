package config

import (
	"fmt"

	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
)

type Config struct {
	DatabaseURL string `mapstructure:"DATABASE_URL"`
	DBHost      string `mapstructure:"DB_HOST"`
	DBPort      string `mapstructure:"DB_PORT"`
	DBUser      string `mapstructure:"DB_USER"`
	DBPassword  string `mapstructure:"DB_PASSWORD"`
	DBName      string `mapstructure:"DB_NAME"`

	RedisAddr string `mapstructure:"REDIS_ADDR"`

	JWTSecret       string `mapstructure:"JWT_SECRET"`
	TokenTTLMinutes int    `mapstructure:"TOKEN_TTL_MINUTES"`
	BcryptCost      int    `mapstructure:"BCRYPT_COST"`

	HTTPPort           string `mapstructure:"HTTP_PORT"`
	RateLimitPerMinute int    `mapstructure:"RATE_LIMIT_PER_MINUTE"`
	CORSOrigins        string `mapstructure:"CORS_ORIGINS"`
}

func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")

	viper.AutomaticEnv()

	// Viper only picks env vars up without a config file when they are
	// bound explicitly.
	viper.BindEnv("DATABASE_URL")
	viper.BindEnv("DB_HOST")
	viper.BindEnv("DB_PORT")
	viper.BindEnv("DB_USER")
	viper.BindEnv("DB_PASSWORD")
	viper.BindEnv("DB_NAME")
	viper.BindEnv("REDIS_ADDR")
	viper.BindEnv("JWT_SECRET")
	viper.BindEnv("TOKEN_TTL_MINUTES")
	viper.BindEnv("BCRYPT_COST")
	viper.BindEnv("HTTP_PORT")
	viper.BindEnv("RATE_LIMIT_PER_MINUTE")
	viper.BindEnv("CORS_ORIGINS")

	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_NAME", "lms_db")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("TOKEN_TTL_MINUTES", 30)
	viper.SetDefault("BCRYPT_COST", bcrypt.DefaultCost)
	viper.SetDefault("HTTP_PORT", "8864")
	viper.SetDefault("RATE_LIMIT_PER_MINUTE", 60)
	viper.SetDefault("CORS_ORIGINS", "http://localhost:3000")

	err = viper.ReadInConfig()
	if err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return
		}
		// No config file is fine, env vars carry the settings.
		err = nil
	}

	err = viper.Unmarshal(&config)
	return
}

// DSN returns the Postgres connection string. DATABASE_URL wins when set,
// otherwise the DSN is assembled from the individual DB_* settings.
func (c Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort)
}
