package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
)

type (
	APP struct {
		Name string
		Host string
		Port string
		Env  string
	}
	DB struct {
		User     string
		Password string
		Name     string
		Host     string
		Port     string
	}
	// MediaKit holds the remote asset-store credentials and endpoints.
	// PrivateKey signs upload credentials and must never be logged.
	MediaKit struct {
		UploadEndpoint string
		APIEndpoint    string
		URLEndpoint    string
		PublicKey      string
		PrivateKey     string
	}
	History struct {
		MaxRetained      int
		MaxFileSizeBytes int64
		AllowedTypes     []string
		Quality          int
		Format           string
	}
	MQ struct {
		User         string
		Password     string
		Vhost        string
		Host         string
		AmqpPort     string
		Exchange     string
		ExchangeType string
		QueueName    string
	}

	Config struct {
		App      APP
		DB       DB
		MediaKit MediaKit
		History  History
		MQ       MQ
	}
)

const (
	defaultMaxRetained    = 3
	defaultMaxFileSizeMiB = 5
	defaultQuality        = 80
	defaultFormat         = "auto"
)

var defaultAllowedTypes = []string{"image/jpeg", "image/png", "image/webp", "image/gif"}

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}

func Load() Config {
	app := APP{
		Name: getEnv("SERVICE_NAME", "assethistory"),
		Host: getEnv("SERVICE_HOST", ""),
		Port: getEnv("SERVICE_PORT", ""),
		Env:  getEnv("SERVICE_ENV", ""),
	}
	db := DB{
		User:     getEnv("POSTGRES_USER", ""),
		Password: getEnv("POSTGRES_PASSWORD", ""),
		Name:     getEnv("POSTGRES_DB", ""),
		Host:     getEnv("POSTGRES_HOST", ""),
		Port:     getEnv("POSTGRES_PORT", ""),
	}
	mk := MediaKit{
		UploadEndpoint: getEnv("MEDIAKIT_UPLOAD_ENDPOINT", ""),
		APIEndpoint:    getEnv("MEDIAKIT_API_ENDPOINT", ""),
		URLEndpoint:    getEnv("MEDIAKIT_URL_ENDPOINT", ""),
		PublicKey:      getEnv("MEDIAKIT_PUBLIC_KEY", ""),
		PrivateKey:     getEnv("MEDIAKIT_PRIVATE_KEY", ""),
	}
	hist := History{
		MaxRetained:      getEnvInt("HISTORY_MAX_RETAINED", defaultMaxRetained),
		MaxFileSizeBytes: int64(getEnvInt("HISTORY_MAX_FILE_SIZE_MIB", defaultMaxFileSizeMiB)) << 20,
		AllowedTypes:     defaultAllowedTypes,
		Quality:          getEnvInt("HISTORY_VARIANT_QUALITY", defaultQuality),
		Format:           getEnv("HISTORY_VARIANT_FORMAT", defaultFormat),
	}
	if v := getEnv("HISTORY_ALLOWED_TYPES", ""); v != "" {
		parts := strings.Split(v, ",")
		types := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				types = append(types, p)
			}
		}
		if len(types) > 0 {
			hist.AllowedTypes = types
		}
	}
	mq := MQ{
		User:         getEnv("RABBITMQ_USER", ""),
		Password:     getEnv("RABBITMQ_PASSWORD", ""),
		Vhost:        getEnv("RABBITMQ_VHOST", ""),
		Host:         getEnv("RABBITMQ_HOST", ""),
		AmqpPort:     getEnv("RABBITMQ_AMQP_PORT", ""),
		Exchange:     getEnv("RABBITMQ_EXCHANGE", ""),
		ExchangeType: getEnv("RABBITMQ_EXCHANGE_TYPE", ""),
		QueueName:    getEnv("RABBITMQ_QUEUE_NAME", ""),
	}

	return Config{
		App:      app,
		DB:       db,
		MediaKit: mk,
		History:  hist,
		MQ:       mq,
	}
}

func (c Config) DBDSN() (string, error) {
	if c.DB.User == "" || c.DB.Name == "" || c.DB.Host == "" || c.DB.Port == "" {
		return "", fmt.Errorf("incomplete DB config")
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s",
		c.DB.User,
		c.DB.Password,
		c.DB.Host,
		c.DB.Port,
		c.DB.Name,
	), nil
}

func (c Config) AMQPDSN() (string, error) {
	if c.MQ.User == "" || c.MQ.Host == "" || c.MQ.AmqpPort == "" {
		return "", fmt.Errorf("invalid MQ config: user, host and amqp port are required")
	}

	return fmt.Sprintf(
		"%s://%s@%s:%s/%s",
		"amqp",
		url.UserPassword(c.MQ.User, c.MQ.Password).String(),
		c.MQ.Host,
		c.MQ.AmqpPort,
		url.PathEscape(c.MQ.Vhost),
	), nil
}
