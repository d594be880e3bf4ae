package configs

import (
	"log"
	"sync"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values
type Config struct {
	Port        string
	JWTSecret   string
	JWTExpire   time.Duration
	AdminSecret string
	SchoolName  string

	PostgresUser     string
	PostgresPassword string
	PostgresHost     string
	PostgresPort     string
	PostgresDB       string

	RedisURL string

	KafkaBrokers []string
	KafkaTopic   string

	MinIOEndpoint  string
	MinIOAccessKey string
	MinIOSecretKey string
	MinIOBucket    string
}

var (
	ConfigInstance *Config
	once           sync.Once
)

// Load loads configuration from the .env file, falling back to
// environment variables and defaults.
func Load() *Config {
	once.Do(func() {
		viper.SetConfigName(".env")
		viper.SetConfigType("env")
		viper.AddConfigPath(".")

		viper.SetDefault("ELECTION_PORT", "8080")
		viper.SetDefault("ELECTION_JWT_SECRET", "secret")
		viper.SetDefault("ELECTION_JWT_EXPIRE", "1h")
		viper.SetDefault("ELECTION_ADMIN_SECRET", "")
		viper.SetDefault("SCHOOL_NAME", "Yeshua High School")
		viper.SetDefault("POSTGRES_USER", "postgres")
		viper.SetDefault("POSTGRES_PASSWORD", "password")
		viper.SetDefault("POSTGRES_HOST", "localhost")
		viper.SetDefault("POSTGRES_PORT", "5432")
		viper.SetDefault("POSTGRES_DB", "election")
		viper.SetDefault("REDIS_URL", "redis://127.0.0.1:6379/0")
		viper.SetDefault("KAFKA_BROKERS", []string{})
		viper.SetDefault("KAFKA_TOPIC", "election.votes")
		viper.SetDefault("MINIO_ENDPOINT", "")
		viper.SetDefault("MINIO_ACCESS_KEY", "")
		viper.SetDefault("MINIO_SECRET_KEY", "")
		viper.SetDefault("MINIO_BUCKET", "candidates")
		viper.AutomaticEnv()

		if err := viper.ReadInConfig(); err != nil {
			log.Printf("Warning: Error reading .env file: %v", err)
			log.Printf("Using environment variables and defaults")
		}

		expire, err := time.ParseDuration(viper.GetString("ELECTION_JWT_EXPIRE"))
		if err != nil {
			log.Fatal("Invalid ELECTION_JWT_EXPIRE format")
		}

		adminSecret := viper.GetString("ELECTION_ADMIN_SECRET")
		if adminSecret == "" {
			adminSecret = viper.GetString("ELECTION_JWT_SECRET")
		}

		ConfigInstance = &Config{
			Port:        viper.GetString("ELECTION_PORT"),
			JWTSecret:   viper.GetString("ELECTION_JWT_SECRET"),
			JWTExpire:   expire,
			AdminSecret: adminSecret,
			SchoolName:  viper.GetString("SCHOOL_NAME"),

			PostgresUser:     viper.GetString("POSTGRES_USER"),
			PostgresPassword: viper.GetString("POSTGRES_PASSWORD"),
			PostgresHost:     viper.GetString("POSTGRES_HOST"),
			PostgresPort:     viper.GetString("POSTGRES_PORT"),
			PostgresDB:       viper.GetString("POSTGRES_DB"),

			RedisURL: viper.GetString("REDIS_URL"),

			KafkaBrokers: viper.GetStringSlice("KAFKA_BROKERS"),
			KafkaTopic:   viper.GetString("KAFKA_TOPIC"),

			MinIOEndpoint:  viper.GetString("MINIO_ENDPOINT"),
			MinIOAccessKey: viper.GetString("MINIO_ACCESS_KEY"),
			MinIOSecretKey: viper.GetString("MINIO_SECRET_KEY"),
			MinIOBucket:    viper.GetString("MINIO_BUCKET"),
		}
	})
	return ConfigInstance
}
