// internal/config/config.go
package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	Database struct {
		URL string `mapstructure:"url"`
	} `mapstructure:"database"`
	Server struct {
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`
	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
	App struct {
		PlanYear int `mapstructure:"plan_year"` // 읽기표 기준 연도 (0 이면 현재 연도)
	} `mapstructure:"app"`
	JWT struct {
		SecretKey    string `mapstructure:"secret_key"`
		ExpiresHours int    `mapstructure:"expires_hours"`
	} `mapstructure:"jwt"`
	Youtube struct {
		APIKey        string `mapstructure:"api_key"`
		PlaylistID    string `mapstructure:"playlist_id"`
		CacheTTLHours int    `mapstructure:"cache_ttl_hours"`
	} `mapstructure:"youtube"`
	CORS struct {
		AllowedOrigins   []string `mapstructure:"allowed_origins"`
		AllowedMethods   []string `mapstructure:"allowed_methods"`
		AllowedHeaders   []string `mapstructure:"allowed_headers"`
		ExposedHeaders   []string `mapstructure:"exposed_headers"`
		AllowCredentials bool     `mapstructure:"allow_credentials"`
		MaxAge           int      `mapstructure:"max_age"`
	} `mapstructure:"cors"`
}

var Cfg Config

func LoadConfig(path string) error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(path)
	viper.AddConfigPath(".")

	// 환경 변수 오버라이드 (예: APP_DATABASE_URL)
	viper.SetEnvPrefix("APP")
	viper.AutomaticEnv()
	viper.BindEnv("database.url", "DATABASE_URL")
	viper.BindEnv("jwt.secret_key", "JWT_SECRET_KEY")
	viper.BindEnv("youtube.api_key", "YOUTUBE_API_KEY")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Warning: Config file not found. Using defaults and environment variables.")
		} else {
			log.Printf("Error reading config file: %s\n", err)
			return err
		}
	}

	if err := viper.Unmarshal(&Cfg); err != nil {
		log.Printf("Error unmarshalling config: %s\n", err)
		return err
	}

	// --- 기본값 ---
	if Cfg.Server.Port == "" {
		Cfg.Server.Port = DefaultServerPort
	}
	if Cfg.Log.Level == "" {
		Cfg.Log.Level = DefaultLogLevel
	}
	if Cfg.JWT.ExpiresHours <= 0 {
		Cfg.JWT.ExpiresHours = DefaultJWTExpiresHours
	}
	if Cfg.Youtube.PlaylistID == "" {
		Cfg.Youtube.PlaylistID = DefaultPlaylistID
	}
	if Cfg.Youtube.CacheTTLHours <= 0 {
		Cfg.Youtube.CacheTTLHours = DefaultPlaylistCacheTTLHours
	}
	if Cfg.Database.URL == "" {
		log.Println("Warning: Database URL is not set in config.")
	}
	if Cfg.JWT.SecretKey == "" {
		log.Println("Warning: JWT secret key is not set in config.")
	}
	if Cfg.Youtube.APIKey == "" {
		log.Println("Warning: YouTube API key is not set. Video lookups will be disabled.")
	}

	log.Println("Config loaded successfully")
	return nil
}
