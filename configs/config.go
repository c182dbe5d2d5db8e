package config

import (
	"os"
)

type ServerConfig struct {
	Addr string
}

type DBConfig struct {
	Driver     string // "sqlite" (default) or "postgres"
	SQLitePath string

	PostgresHost     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresPort     string
}

type AfricaTalkingConfig struct {
	Username    string
	APIKey      string
	SMSURL      string
	SenderID    string
	NotifyPhone string // back-office number that receives order notifications
}

type EmailConfig struct {
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	AWSRegion          string
	SenderEmail        string
	NotifyEmail        string // back-office address that receives order notifications
}

func LoadServerConfig() ServerConfig {
	return ServerConfig{
		Addr: getEnvOrDefault("SERVER_ADDR", ":8080"),
	}
}

func LoadDBConfig() DBConfig {
	return DBConfig{
		Driver:           getEnvOrDefault("DB_DRIVER", "sqlite"),
		SQLitePath:       getEnvOrDefault("PEDIDOS_DB", "pedidos.db"),
		PostgresHost:     getEnvOrDefault("POSTGRES_HOST", "localhost"),
		PostgresUser:     getEnvOrDefault("POSTGRES_USER", "test"),
		PostgresPassword: getEnvOrDefault("POSTGRES_PASSWORD", "test"),
		PostgresDB:       getEnvOrDefault("POSTGRES_DB", "pedidos"),
		PostgresPort:     getEnvOrDefault("DB_PORT", "5432"),
	}
}

func LoadAfricaTalkingConfig() AfricaTalkingConfig {
	return AfricaTalkingConfig{
		Username:    os.Getenv("AT_USERNAME"),
		APIKey:      os.Getenv("AT_API_KEY"),
		SMSURL:      getEnvOrDefault("AT_SMS_URL", "https://api.sandbox.africastalking.com/version1/messaging"), // Sandbox URL
		SenderID:    getEnvOrDefault("AT_SENDER_ID", "AFRICASTKNG"),
		NotifyPhone: os.Getenv("AT_NOTIFY_PHONE"),
	}
}

func LoadEmailConfig() EmailConfig {
	return EmailConfig{
		AWSAccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
		AWSSecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
		AWSRegion:          getEnvOrDefault("AWS_REGION", "us-east-1"),
		SenderEmail:        os.Getenv("AWS_SENDER_ADDRESS"),
		NotifyEmail:        os.Getenv("ORDER_NOTIFY_EMAIL"),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
