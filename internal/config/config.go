package config

import "os"

type Config struct {
	HTTP     HTTPConfig
	Auth     AuthConfig
	CORS     CORSConfig
	Postgres PostgresConfig
}

type HTTPConfig struct {
	Port string
}

type AuthConfig struct {
	JWTSecret    string
	JWTAccessTTL string
}

type CORSConfig struct {
	Origin string
}

type PostgresConfig struct {
	DatabaseURL string
	Host        string
	Port        string
	User        string
	Password    string
	Database    string
	SSLMode     string
}

func Load() Config {
	return Config{
		HTTP: HTTPConfig{
			Port: getenv("PORT", "8080"),
		},
		Auth: AuthConfig{
			JWTSecret:    os.Getenv("JWT_SECRET"),
			JWTAccessTTL: getenv("JWT_ACCESS_TTL", "1h"),
		},
		CORS: CORSConfig{
			Origin: os.Getenv("CORS_ORIGIN"),
		},
		Postgres: PostgresConfig{
			DatabaseURL: os.Getenv("DATABASE_URL"),
			Host:        getenv("PGHOST", "localhost"),
			Port:        getenv("PGPORT", "5432"),
			User:        os.Getenv("PGUSER"),
			Password:    os.Getenv("PGPASSWORD"),
			Database:    os.Getenv("PGDATABASE"),
			SSLMode:     getenv("PGSSLMODE", "disable"),
		},
	}
}

func getenv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
