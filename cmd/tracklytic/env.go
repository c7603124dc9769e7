package main

import (
	"fmt"

	"github.com/joho/godotenv"
)

// loadEnvFile lets values in path override the process environment
func loadEnvFile(path string) error {
	if err := godotenv.Overload(path); err != nil {
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}
