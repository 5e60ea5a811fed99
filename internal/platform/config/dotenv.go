package config

import (
	"errors"
	"io/fs"

	"leadlens/internal/platform/logger"

	"github.com/joho/godotenv"
)

// LoadDotenv reads KEY=VALUE files into the process environment
// variables already set win; missing files are skipped quietly
func LoadDotenv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		err := godotenv.Load(f)
		switch {
		case err == nil:
			logger.Get().Debug().Str("file", f).Msg("dotenv loaded")
		case errors.Is(err, fs.ErrNotExist):
			continue
		default:
			return err
		}
	}
	return nil
}
