package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// AcceptAnyPassword is the demo credential policy: logins matching
	// an email succeed with any password. Disable to reject logins
	// entirely (identities carry no credentials to verify against).
	AcceptAnyPassword bool `env:"ACCEPT_ANY_PASSWORD, default=true"`

	Storage StorageConfig
	Redis   RedisConfig
	Mongo   MongoConfig
}

type StorageConfig struct {
	// Backend selects the KeyValue adapter: memory, file, redis, mongo.
	Backend string `env:"STORAGE_BACKEND, default=memory"`
	// Dir is the root directory of the file backend.
	Dir string `env:"STORAGE_DIR,     default=./data"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=bloodconnect"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
