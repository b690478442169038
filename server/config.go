package server

import "github.com/joeshaw/envdecode"

// Config is the server's environment configuration
type Config struct {
	Addr     string `env:"KLONDIKE_ADDR,default=:8000"`
	LogLevel string `env:"KLONDIKE_LOG_LEVEL,default=info"`
}

// LoadConfig reads the configuration from the environment
func LoadConfig() (Config, error) {
	var c Config
	if err := envdecode.StrictDecode(&c); err != nil {
		return Config{}, err
	}
	return c, nil
}
