package config

import (
	"os"
	"strconv"
)

type Config struct {
	ServerPort   string
	MaxPasteSize int
}

func LoadConfig() *Config {
	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		serverPort = "8080"
	}

	maxPasteSize := 1 * 1024 * 1024 // 1 MB
	if v := os.Getenv("MAX_PASTE_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			maxPasteSize = n
		}
	}

	return &Config{
		ServerPort:   serverPort,
		MaxPasteSize: maxPasteSize,
	}
}
