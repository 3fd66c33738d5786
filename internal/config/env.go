package config

import (
	"log/slog"

	"github.com/joho/godotenv"

	"git.home.luguber.info/inful/docsite/internal/logfields"
)

var envFiles = []string{".env", ".env.local"}

// loadEnvFiles loads each existing env file. Variables already set in the
// process environment are kept.
func loadEnvFiles() {
	for _, f := range envFiles {
		if err := godotenv.Load(f); err == nil {
			slog.Debug("Loaded environment variables", logfields.File(f))
		}
	}
}
