package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServicePort   string
	MetricsPort   string
	Environment   string
	JWTSecret     string
	MongoDBConfig MongoDBConfig
	RedisConfig   RedisConfig
	KafkaConfig   KafkaConfig
	SMTPConfig    SMTPConfig
	MediaConfig   MediaConfig
	TracingConfig TracingConfig
}

type MongoDBConfig struct {
	DBHost string
	DBPort string
	DBName string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
}

type KafkaConfig struct {
	BrokerAddress   string
	BrokerTopic     string
	BrokerPartition int
}

type SMTPConfig struct {
	Host             string
	Port             int
	Sender           string
	Password         string
	ContactRecipient string
}

type MediaConfig struct {
	UploadURL string
	APIKey    string
}

type TracingConfig struct {
	CollectorHost string
}

func CreateNewConfig() *Config {
	godotenv.Load(".env")

	conf := Config{
		ServicePort: os.Getenv("SERVICE_PORT"),
		MetricsPort: os.Getenv("METRICS_PORT"),
		Environment: os.Getenv("ENVIRONMENT"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		MongoDBConfig: MongoDBConfig{
			DBHost: os.Getenv("DB_HOST"),
			DBPort: os.Getenv("DB_PORT"),
			DBName: os.Getenv("DB_NAME"),
		},
		RedisConfig: RedisConfig{
			Host:     os.Getenv("REDIS_HOST"),
			Port:     os.Getenv("REDIS_PORT"),
			Password: os.Getenv("REDIS_PASSWORD"),
		},
		KafkaConfig: KafkaConfig{
			BrokerAddress: os.Getenv("BROKER_ADDRESS"),
			BrokerTopic:   os.Getenv("BROKER_TOPIC"),
		},
		SMTPConfig: SMTPConfig{
			Host:             os.Getenv("SMTP_HOST"),
			Sender:           os.Getenv("SMTP_SENDER"),
			Password:         os.Getenv("SMTP_PASSWORD"),
			ContactRecipient: os.Getenv("CONTACT_RECEIVER_EMAIL"),
		},
		MediaConfig: MediaConfig{
			UploadURL: os.Getenv("MEDIA_UPLOAD_URL"),
			APIKey:    os.Getenv("MEDIA_API_KEY"),
		},
		TracingConfig: TracingConfig{
			CollectorHost: os.Getenv("COLLECTOR_HOST"),
		},
	}

	brokerPartition, err := strconv.Atoi(os.Getenv("BROKER_PARTITION"))
	if err == nil {
		conf.KafkaConfig.BrokerPartition = brokerPartition
	}

	smtpPort, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err == nil {
		conf.SMTPConfig.Port = smtpPort
	}

	return &conf
}
