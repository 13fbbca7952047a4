package config

import (
	"errors"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	Server      struct {
		Port            string   `env:"PORT" envDefault:"3000"`
		ReadTimeout     int      `env:"READ_TIMEOUT" envDefault:"10"`
		WriteTimeout    int      `env:"WRITE_TIMEOUT" envDefault:"30"`
		IdleTimeout     int      `env:"IDLE_TIMEOUT" envDefault:"60"`
		ShutdownTimeout int      `env:"SHUTDOWN_TIMEOUT" envDefault:"10"`
		AllowedOrigins  []string `env:"ALLOWED_ORIGINS" envDefault:"*"`
	} `envPrefix:"SERVER_"`
	Drive struct {
		ClientEmail   string `env:"CLIENT_EMAIL,required"`
		PrivateKey    string `env:"PRIVATE_KEY,required"`
		FolderID      string `env:"DRIVE_FOLDER_ID,required"`
		UploadTimeout int    `env:"DRIVE_UPLOAD_TIMEOUT" envDefault:"60"`
	} `envPrefix:"GOOGLE_"`
	Render struct {
		LogoPath string `env:"LOGO_PATH" envDefault:"public/logo.png"`
	} `envPrefix:"RENDER_"`
	Email struct {
		Enabled bool   `env:"ENABLED" envDefault:"false"`
		From    string `env:"FROM"`
		SMTP    struct {
			Username    string `env:"USERNAME"`
			Password    string `env:"PASSWORD"`
			Host        string `env:"HOST"`
			Port        int    `env:"PORT" envDefault:"465"`
			DialTimeout int    `env:"DIAL_TIMEOUT" envDefault:"10"`
			SendTimeout int    `env:"SEND_TIMEOUT" envDefault:"15"`
		} `envPrefix:"SMTP_"`
	} `envPrefix:"EMAIL_"`
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		aggErr := env.AggregateError{}
		if ok := errors.As(err, &aggErr); ok {
			// 只返回第一个错误使得日志更清晰
			return nil, aggErr.Errors[0]
		}
		return nil, err
	}

	return cfg, nil
}
