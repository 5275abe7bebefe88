package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// loadEnvFiles loads environment variables from .env/.env.local if present.
// Existing process environment variables are never overwritten, and a
// missing file is not an error.
func loadEnvFiles() {
	for _, envPath := range []string{".env", ".env.local"} {
		if _, err := os.Stat(envPath); os.IsNotExist(err) {
			continue
		}
		if err := godotenv.Load(envPath); err != nil {
			fmt.Fprintf(os.Stderr, "Note: %s couldn't be loaded: %v\n", envPath, err)
			continue
		}
		fmt.Fprintf(os.Stderr, "Loaded environment variables from %s\n", envPath)
		return
	}
}
