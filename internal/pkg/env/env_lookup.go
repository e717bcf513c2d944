package env

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Load reads the optional dotenv files into the process environment and then
// parses T from it. Variables already present in the environment win over the
// files.
func Load[T any](dotenvFiles ...string) (T, error) {
	for _, file := range dotenvFiles {
		err := godotenv.Load(file)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			var zero T
			return zero, fmt.Errorf("failed to load %s: %w", file, err)
		}
	}

	cfg, err := env.ParseAs[T]()
	if err != nil {
		var zero T
		return zero, fmt.Errorf("failed to parse environment: %w", err)
	}

	return cfg, nil
}
