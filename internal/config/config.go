package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	Port          string
	DataDir       string
	UploadsDir    string
	StorageDriver string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	ShopName         string
	SMTPHost         string
	SMTPPort         int
	MailSender       string
	MailClientID     string
	MailClientSecret string
	MailRefreshToken string

	RabbitMQEnabled bool
}

// Load builds the process configuration from the environment, once, in main.
func Load() Config {
	smtpPort, _ := strconv.Atoi(getEnvOrDefault("SMTP_PORT", "587"))

	return Config{
		Port:          getEnvOrDefault("PORT", "3000"),
		DataDir:       getEnvOrDefault("DATA_DIR", "./data"),
		UploadsDir:    getEnvOrDefault("UPLOADS_DIR", "./uploads"),
		StorageDriver: getEnvOrDefault("STORAGE_DRIVER", "file"),

		DBHost:     getEnvOrDefault("DB_HOST", "localhost"),
		DBPort:     getEnvOrDefault("DB_PORT", "5432"),
		DBUser:     getEnvOrDefault("DB_USER", "postgres"),
		DBPassword: getEnvOrDefault("DB_PASSWORD", "postgres"),
		DBName:     getEnvOrDefault("DB_NAME", "shop_db"),

		ShopName:         getEnvOrDefault("SHOP_NAME", "Electronics Store"),
		SMTPHost:         getEnvOrDefault("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:         smtpPort,
		MailSender:       os.Getenv("MAIL_SENDER"),
		MailClientID:     os.Getenv("MAIL_CLIENT_ID"),
		MailClientSecret: os.Getenv("MAIL_CLIENT_SECRET"),
		MailRefreshToken: os.Getenv("MAIL_REFRESH_TOKEN"),

		RabbitMQEnabled: getEnvOrDefault("RABBITMQ_ENABLED", "false") == "true",
	}
}

func (c Config) PostgresDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName,
	)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
