package config

import (
	"os"
)

type Config struct {
	MongoURI      string
	MongoDatabase string
	SeedSourceURL string
	HTTPPort      string
}

func ProcessEnvironmentVariables() (*Config, error) {
	// In all cases the default behavior should be for the docker compose setup
	env := Config{
		MongoURI:      "mongodb://localhost:27017",
		MongoDatabase: "sales",
		SeedSourceURL: "",
		HTTPPort:      "9452",
	}

	envMongoURI := os.Getenv("MONGO_URI")
	envMongoDatabase := os.Getenv("MONGO_DATABASE")
	envSeedSourceURL := os.Getenv("SEED_SOURCE_URL")
	envHTTPPort := os.Getenv("HTTP_PORT")

	if len(envMongoURI) != 0 {
		env.MongoURI = envMongoURI
	}

	if len(envMongoDatabase) != 0 {
		env.MongoDatabase = envMongoDatabase
	}

	if len(envSeedSourceURL) != 0 {
		env.SeedSourceURL = envSeedSourceURL
	}

	if len(envHTTPPort) != 0 {
		env.HTTPPort = envHTTPPort
	}

	return &env, nil
}
