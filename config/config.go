package config

import "os"

type Config struct {
	// Addr is the listen address for this gateway.
	Addr string
	// UpstreamURL is the marketplace backend base URL.
	UpstreamURL string
	// RedisURL enables the shared response-cache backend when set.
	RedisURL string
}

func Load() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	} else if port[0] != ':' {
		port = ":" + port
	}

	upstream := os.Getenv("UPSTREAM_URL")
	if upstream == "" {
		upstream = "http://localhost:5000"
	}

	return Config{
		Addr:        port,
		UpstreamURL: upstream,
		RedisURL:    os.Getenv("REDIS_URL"),
	}
}
