package config

import (
	"fmt"
	"log"
	"os"
)

// DatabaseDSN builds the postgres connection string for the blob table.
// DATABASE_URL wins when set (hosted platforms inject it whole).
func (c *Config) DatabaseDSN() string {
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		log.Println("Using DATABASE_URL for connection")
		return databaseURL
	}

	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode,
	)
}
