package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// MustLoad loads the configuration from environment variables and .env file.
func MustLoad[T any](cfg T) {
	_ = godotenv.Load() // Load environment variables from .env file

	env.Must(cfg, env.Parse(cfg))
}

// Load loads the configuration from environment variables and .env file.
func Load[T any](cfg T) error {
	_ = godotenv.Load() // .env file is optional

	if err := env.Parse(cfg); err != nil {
		return err // Return error if environment variable parsing fails
	}

	return nil
}

// Config holds the configuration for the matching engine binary.
type Config struct {
	InputPath   string               `env:"INPUT_PATH"`                // Input CSV path; the first CLI argument overrides it
	OutputPath  string               `env:"OUTPUT_PATH"`               // Output CSV path; the second CLI argument overrides it
	LogLevel    string               `env:"LOG_LEVEL" envDefault:""`   // debug, info, warn, error
	KafkaConfig `envPrefix:"KAFKA_"` // Optional result-stream publishing
}

// KafkaConfig holds the configuration for the optional event publisher.
// Publishing is enabled only when at least one broker is configured.
type KafkaConfig struct {
	Topic   string   `env:"TOPIC" envDefault:"order-events"`
	Brokers []string `env:"BROKER" envDefault:""`
}

// PublishEnabled reports whether drained events should be published to Kafka.
func (k KafkaConfig) PublishEnabled() bool {
	return len(k.Brokers) > 0 && k.Brokers[0] != ""
}
