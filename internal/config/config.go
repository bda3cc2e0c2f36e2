package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port           string
	MongoURI       string
	MongoDatabase  string
	RabbitURI      string
	EventExchange  string
	ConsulAddress  string
	ServiceName    string
	ServiceID      string
	ServiceAddress string
	UploadDir      string
	MaxUploadMB    int64
}

func New() *Config {
	maxUpload, _ := strconv.ParseInt(getEnv("MAX_UPLOAD_MB", "10"), 10, 64)

	return &Config{
		Port:           getEnv("PORT", "6700"),
		MongoURI:       getEnv("MONGO_URI", ""),
		MongoDatabase:  getEnv("EXAM_SERVICE_MONGO_DB", "exam_service"),
		RabbitURI:      getEnv("RABBITMQ_URI", ""),
		EventExchange:  getEnv("RABBITMQ_EXCHANGE", ""),
		ConsulAddress:  getEnv("CONSUL_ADDRESS", ""),
		ServiceName:    getEnv("EXAM_SERVICE_NAME", "exam-service"),
		ServiceID:      getEnv("EXAM_SERVICE_NAME", "exam-service") + "-" + getEnv("EXAM_HOSTNAME", "1"),
		ServiceAddress: getEnv("EXAM_SERVICE_ADDRESS", "exam-service"),
		UploadDir:      getEnv("FILE_UPLOAD_DIR", "uploads/paper2"),
		MaxUploadMB:    maxUpload,
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
