package config

import (
	"github.com/kelseyhightower/envconfig"
)

// App holds the runtime configuration, populated from the environment.
type App struct {
	Port          string `envconfig:"PORT" default:"8000"`
	Env           string `envconfig:"ENV" default:"dev"`
	MongoURI      string `envconfig:"MONGO_URI" default:"mongodb://localhost:27017"`
	MongoDatabase string `envconfig:"MONGO_DATABASE" default:"ordering"`
	JWTSecret     string `envconfig:"JWT_SECRET" required:"true"`
	// Kafka is optional; cart lifecycle events are skipped when no broker is set.
	KafkaBroker string `envconfig:"KAFKA_BROKER"`
	KafkaTopic  string `envconfig:"KAFKA_TOPIC" default:"order-events"`
	// OTLP trace export is optional; tracing stays no-op when unset.
	OTLPEndpoint string `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT"`
}

func Load() (App, error) {
	var c App
	err := envconfig.Process("", &c)
	return c, err
}
