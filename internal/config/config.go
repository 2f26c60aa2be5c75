// config.go
package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port        string `envconfig:"PORT" default:"8080"`
	MongoURI    string `envconfig:"MONGO_URI" default:"mongodb://localhost:27017"`
	MongoDBName string `envconfig:"MONGO_DB_NAME" default:"toy_store"`
	RabbitURL   string `envconfig:"RABBIT_URL" default:"amqp://localhost"`

	JWTSecret         string        `envconfig:"JWT_SECRET" required:"true"`
	JWTExpires        time.Duration `envconfig:"JWT_EXPIRES" default:"15m"`
	JWTRefreshExpires time.Duration `envconfig:"JWT_REFRESH_EXPIRES" default:"168h"`

	// Orígenes permitidos para el front (separados por coma).
	FrontendURLs []string `envconfig:"FRONTEND_URL" default:"http://localhost:3000"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
