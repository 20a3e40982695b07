package config

type Config struct {
	DatabaseURL     string
	JWTSecret       string
	OpenRouterKey   string
	OpenRouterModel string
	Environment     string
}
