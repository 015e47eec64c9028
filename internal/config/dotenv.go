package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// loadDotEnv loads each existing dotenv file into the process environment.
// Variables that are already set keep their values. Missing files are
// skipped.
func loadDotEnv(paths ...string) error {
	for _, path := range paths {
		if err := godotenv.Load(path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("error loading env file %s: %w", path, err)
		}
	}
	return nil
}
