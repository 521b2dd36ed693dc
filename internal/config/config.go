package config

import "os"

type AdminConfig struct {
	Username string
	Password string
}

type JWTConfig struct {
	Secret string
	Issuer string
}

type R2Config struct {
	AccountID       string
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
	PublicURL       string
}

type EmailConfig struct {
	FromAddress string
	FromName    string
}

type Config struct {
	DatabaseURL string
	Port        string
	Admin       AdminConfig
	JWT         JWTConfig
	R2          R2Config
	Email       EmailConfig
}

func LoadConfig() *Config {
	cfg := &Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		Port:        os.Getenv("PORT"),
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	cfg.Admin.Username = os.Getenv("ADMIN_USERNAME")
	cfg.Admin.Password = os.Getenv("ADMIN_PASSWORD")

	cfg.JWT.Secret = os.Getenv("JWT_SECRET")
	cfg.JWT.Issuer = os.Getenv("JWT_ISSUER")

	cfg.R2.AccountID = os.Getenv("R2_ACCOUNT_ID")
	cfg.R2.AccessKeyID = os.Getenv("R2_ACCESS_KEY_ID")
	cfg.R2.SecretAccessKey = os.Getenv("R2_SECRET_ACCESS_KEY")
	cfg.R2.Bucket = os.Getenv("R2_BUCKET")
	cfg.R2.PublicURL = os.Getenv("R2_PUBLIC_URL")

	cfg.Email.FromAddress = os.Getenv("EMAIL_FROM_ADDRESS")
	cfg.Email.FromName = os.Getenv("EMAIL_FROM_NAME")

	return cfg
}

// R2Enabled reports whether image uploads should go to R2 instead of being
// inlined as data URLs.
func (c *Config) R2Enabled() bool {
	return c.R2.AccountID != "" && c.R2.AccessKeyID != "" && c.R2.Bucket != ""
}
